// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import "context"

// Client runs one command line invocation.
type Client interface {
	Run(ctx context.Context, args []string) error
}

// PasswordReader reads a password without echoing it.
type PasswordReader func(prompt string) (string, error)
