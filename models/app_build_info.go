// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// notAvailable stands in for build metadata the linker did not stamp.
const notAvailable = "N/A"

// AppBuildInfo is the build metadata of the server binary, stamped with
// -ldflags "-X main.buildVersion=..." and friends.
type AppBuildInfo struct {
	version string
	date    string
	commit  string
}

func NewAppBuildInfo(version, date, commit string) AppBuildInfo {
	return AppBuildInfo{version: version, date: date, commit: commit}
}

func (a AppBuildInfo) BuildVersion() string { return a.version }

func (a AppBuildInfo) BuildDate() string { return a.date }

func (a AppBuildInfo) BuildCommit() string { return a.commit }

// VersionResponse renders the metadata for GET /api/version; unset fields
// read "N/A".
func (a AppBuildInfo) VersionResponse() VersionResponse {
	return VersionResponse{
		Version: orNotAvailable(a.version),
		Date:    orNotAvailable(a.date),
		Commit:  orNotAvailable(a.commit),
	}
}

func orNotAvailable(s string) string {
	if s == "" {
		return notAvailable
	}
	return s
}
