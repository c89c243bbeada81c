// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import "errors"

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")

	// ErrAccessDenied is the single answer for a blocked address, a locked
	// account and a failure that has just tripped either of them.
	ErrAccessDenied       = errors.New("access denied")
	ErrInvalidCredentials = errors.New("invalid username or password")

	ErrTokenCreationFailed     = errors.New("token creation failed")
	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")

	ErrLastAdmin = errors.New("cannot delete the last administrator")

	ErrCrossSectionReorder = errors.New("categories belong to different sections")
	ErrReorderFailed       = errors.New("reorder failed")

	ErrVersionIsNotSpecified = errors.New("app version is not specified")
)
