package service

import (
	"context"
	"testing"
	"time"

	"github.com/maxazure/home/internal/config"
	"github.com/maxazure/home/internal/logger"
	"github.com/maxazure/home/internal/store"
	"github.com/maxazure/home/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestSessionService(db *store.DB) SessionService {
	return NewSessionService(db, config.App{
		TokenSignKey:     "test-key",
		TokenIssuer:      "home-test",
		TokenDuration:    time.Hour,
		RememberDuration: 48 * time.Hour,
	}, logger.Nop())
}

func TestSessionService_CreateToken(t *testing.T) {
	svc := newTestSessionService(nil)

	token, err := svc.CreateToken(context.Background(), models.User{ID: 7}, false)
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now().Add(time.Hour), token.ExpiresAt, time.Minute)

	parsed, err := svc.ParseToken(context.Background(), token.SignedString)
	require.NoError(t, err)
	assert.Equal(t, int64(7), parsed.UserID)
}

func TestSessionService_CreateTokenRemember(t *testing.T) {
	svc := newTestSessionService(nil)

	token, err := svc.CreateToken(context.Background(), models.User{ID: 7}, true)

	require.NoError(t, err)
	assert.WithinDuration(t, time.Now().Add(48*time.Hour), token.ExpiresAt, time.Minute)
}

func TestSessionService_ParseTokenInvalid(t *testing.T) {
	_, err := newTestSessionService(nil).ParseToken(context.Background(), "not-a-token")

	assert.ErrorIs(t, err, ErrTokenIsExpiredOrInvalid)
}

func TestSessionService_Principal(t *testing.T) {
	db := newTestDB(t)
	user := seedUser(t, db, "admin", "secret")
	svc := newTestSessionService(db)

	token, err := svc.CreateToken(context.Background(), user, false)
	require.NoError(t, err)

	p := svc.Principal(context.Background(), token.SignedString)

	assert.True(t, p.IsAuthenticated())
	assert.Equal(t, user.ID, p.GetID())
}

func TestSessionService_PrincipalOfDeletedUser(t *testing.T) {
	db := newTestDB(t)
	svc := newTestSessionService(db)

	token, err := svc.CreateToken(context.Background(), models.User{ID: 404}, false)
	require.NoError(t, err)

	assert.Equal(t, models.Anonymous{}, svc.Principal(context.Background(), token.SignedString))
}

func TestSessionService_PrincipalOfGarbage(t *testing.T) {
	assert.False(t, newTestSessionService(nil).Principal(context.Background(), "garbage").IsAuthenticated())
}
