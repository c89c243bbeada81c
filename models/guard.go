// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// GuardState is the position of an account or a source address in the
// login guard state machine.
type GuardState string

const (
	GuardStateNormal       GuardState = "normal"
	GuardStateAccumulating GuardState = "accumulating"
	GuardStateLocked       GuardState = "locked"
	GuardStateBlocked      GuardState = "blocked"
)

// AuthStatus is the outcome of a single login attempt.
type AuthStatus int

const (
	// AuthSuccess means the credentials were accepted.
	AuthSuccess AuthStatus = iota
	// AuthInvalidCredentials means a wrong username or password while
	// neither the account nor the address is locked.
	AuthInvalidCredentials
	// AuthAccessDenied covers a locked account, a blocked address and a
	// failure that has just tripped a lock or a block. Callers must not
	// reveal which of these applied.
	AuthAccessDenied
)

func (s AuthStatus) String() string {
	switch s {
	case AuthSuccess:
		return "success"
	case AuthInvalidCredentials:
		return "invalid_credentials"
	case AuthAccessDenied:
		return "access_denied"
	default:
		return "unknown"
	}
}

// AuthResult is returned by the login guard. User is set only on success.
type AuthResult struct {
	Status AuthStatus
	User   User
}

// LoginAttempt carries one login attempt into the guard.
type LoginAttempt struct {
	Username string
	Password string
	SourceIP string
}
