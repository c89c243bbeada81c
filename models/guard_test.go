package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const threshold = 10

func TestUser_RegisterFailure_LocksAtThreshold(t *testing.T) {
	u := User{ID: 1}
	now := time.Date(2026, 10, 1, 12, 0, 0, 0, time.UTC)

	for i := 1; i < threshold; i++ {
		assert.False(t, u.RegisterFailure(now, threshold), "attempt %d", i)
		assert.Equal(t, GuardStateAccumulating, u.GuardState())
	}

	assert.True(t, u.RegisterFailure(now, threshold))
	assert.True(t, u.IsLocked)
	assert.Equal(t, threshold, u.FailedLoginAttempts)
	assert.Equal(t, GuardStateLocked, u.GuardState())
	require.NotNil(t, u.LastFailedLogin)
	assert.True(t, now.Equal(*u.LastFailedLogin))
}

func TestUser_RegisterFailure_TransitionReportedOnce(t *testing.T) {
	u := User{ID: 1, FailedLoginAttempts: threshold, IsLocked: true}

	assert.False(t, u.RegisterFailure(time.Now(), threshold))
	assert.True(t, u.IsLocked)
	assert.Equal(t, threshold+1, u.FailedLoginAttempts)
}

func TestUser_ResetFailuresKeepsLock(t *testing.T) {
	now := time.Now()
	u := User{ID: 1, FailedLoginAttempts: threshold, IsLocked: true, LastFailedLogin: &now}

	u.ResetFailures()

	assert.Zero(t, u.FailedLoginAttempts)
	assert.Nil(t, u.LastFailedLogin)
	assert.True(t, u.IsLocked)
	assert.Equal(t, GuardStateLocked, u.GuardState())
}

func TestUser_Unlock(t *testing.T) {
	now := time.Now()
	u := User{ID: 1, FailedLoginAttempts: 12, IsLocked: true, LastFailedLogin: &now}

	u.Unlock()

	assert.False(t, u.IsLocked)
	assert.Zero(t, u.FailedLoginAttempts)
	assert.Equal(t, GuardStateNormal, u.GuardState())
}

func TestIPBlock_RegisterFailure_BlocksAtThreshold(t *testing.T) {
	b := IPBlock{IPAddress: "10.0.0.1", FailedAttempts: threshold - 1}

	assert.True(t, b.RegisterFailure(time.Now(), threshold))
	assert.Equal(t, GuardStateBlocked, b.GuardState())
	assert.False(t, b.RegisterFailure(time.Now(), threshold))
}

func TestIPBlock_ResetFailuresKeepsBlock(t *testing.T) {
	now := time.Now()
	b := IPBlock{FailedAttempts: threshold, IsBlocked: true, LastAttempt: &now}

	b.ResetFailures()

	assert.Zero(t, b.FailedAttempts)
	assert.True(t, b.IsBlocked)
	assert.NotNil(t, b.LastAttempt)
}

func TestIPBlock_Unblock(t *testing.T) {
	now := time.Now()
	b := IPBlock{FailedAttempts: 11, IsBlocked: true, LastAttempt: &now}

	b.Unblock()

	assert.Equal(t, IPBlock{}, b)
	assert.Equal(t, GuardStateNormal, b.GuardState())
}

func TestAuthStatus_String(t *testing.T) {
	assert.Equal(t, "success", AuthSuccess.String())
	assert.Equal(t, "invalid_credentials", AuthInvalidCredentials.String())
	assert.Equal(t, "access_denied", AuthAccessDenied.String())
	assert.Equal(t, "unknown", AuthStatus(42).String())
}

func TestParseDirection(t *testing.T) {
	d, err := ParseDirection("up")
	require.NoError(t, err)
	assert.Equal(t, DirectionUp, d)

	d, err = ParseDirection("down")
	require.NoError(t, err)
	assert.Equal(t, DirectionDown, d)

	_, err = ParseDirection("sideways")
	assert.Error(t, err)

	_, err = ParseDirection("UP")
	assert.Error(t, err)
}
