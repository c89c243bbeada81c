// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements linkctl, the administrator command line for the
// link directory server.
//
// Each invocation runs one command. Commands that need a session log in
// first with the configured credentials, prompting for the password on the
// terminal when none is configured.
package client
