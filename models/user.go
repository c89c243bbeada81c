package models

import "time"

// User is an administrator account of the link directory.
//
// The failure counter and the lock flag are owned by the login guard:
// FailedLoginAttempts grows on every failed attempt against the account and
// IsLocked latches once the counter reaches the guard threshold. Only an
// explicit unlock clears IsLocked.
type User struct {
	ID                  int64
	Username            string
	PasswordHash        string
	CreatedAt           time.Time
	IsLocked            bool
	FailedLoginAttempts int
	LastFailedLogin     *time.Time
}

// GetID implements [Principal].
func (u User) GetID() int64 {
	return u.ID
}

// IsAuthenticated implements [Principal]. A user loaded from storage always
// has a non-zero ID.
func (u User) IsAuthenticated() bool {
	return u.ID != 0
}

// RegisterFailure counts one failed login attempt at now and latches the
// lock when the counter reaches threshold. It reports whether this call
// caused the transition into the locked state.
func (u *User) RegisterFailure(now time.Time, threshold int) bool {
	wasLocked := u.IsLocked

	u.FailedLoginAttempts++
	u.LastFailedLogin = &now
	if u.FailedLoginAttempts >= threshold {
		u.IsLocked = true
	}

	return !wasLocked && u.IsLocked
}

// ResetFailures clears the failure counter. The lock flag is left as is.
func (u *User) ResetFailures() {
	u.FailedLoginAttempts = 0
	u.LastFailedLogin = nil
}

// Unlock clears the lock and the failure counter.
func (u *User) Unlock() {
	u.IsLocked = false
	u.ResetFailures()
}

// GuardState reports where the account is in the login guard state machine.
func (u User) GuardState() GuardState {
	switch {
	case u.IsLocked:
		return GuardStateLocked
	case u.FailedLoginAttempts > 0:
		return GuardStateAccumulating
	default:
		return GuardStateNormal
	}
}
