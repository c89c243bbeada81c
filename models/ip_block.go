package models

import "time"

// IPBlock tracks failed login attempts coming from one source address.
// A record is created on the first failed attempt from the address.
type IPBlock struct {
	ID             int64
	IPAddress      string
	FailedAttempts int
	IsBlocked      bool
	LastAttempt    *time.Time
	CreatedAt      time.Time
}

// RegisterFailure counts one failed attempt at now and latches the block
// when the counter reaches threshold. It reports whether this call caused
// the transition into the blocked state.
func (b *IPBlock) RegisterFailure(now time.Time, threshold int) bool {
	wasBlocked := b.IsBlocked

	b.FailedAttempts++
	b.LastAttempt = &now
	if b.FailedAttempts >= threshold {
		b.IsBlocked = true
	}

	return !wasBlocked && b.IsBlocked
}

// ResetFailures clears the failure counter after a successful login.
// An existing block is not lifted.
func (b *IPBlock) ResetFailures() {
	b.FailedAttempts = 0
}

// Unblock lifts the block and forgets the attempt history.
func (b *IPBlock) Unblock() {
	b.IsBlocked = false
	b.FailedAttempts = 0
	b.LastAttempt = nil
}

// GuardState reports where the address is in the login guard state machine.
func (b IPBlock) GuardState() GuardState {
	switch {
	case b.IsBlocked:
		return GuardStateBlocked
	case b.FailedAttempts > 0:
		return GuardStateAccumulating
	default:
		return GuardStateNormal
	}
}
