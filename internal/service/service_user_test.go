package service

import (
	"context"
	"testing"

	"github.com/maxazure/home/internal/config"
	"github.com/maxazure/home/internal/logger"
	"github.com/maxazure/home/internal/store"
	"github.com/maxazure/home/internal/utils"
	"github.com/maxazure/home/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func newTestUserService(db *store.DB) UserService {
	return NewUserService(db, config.Security{BcryptCost: bcrypt.MinCost}, logger.Nop())
}

// ─────────────────────────────────────────────
// Delete
// ─────────────────────────────────────────────

func TestUserService_DeleteLastAdmin(t *testing.T) {
	db := newTestDB(t)
	user := seedUser(t, db, "admin", "secret")

	err := newTestUserService(db).Delete(context.Background(), user.ID)

	assert.ErrorIs(t, err, ErrLastAdmin)
	assert.Equal(t, "admin", loadUser(t, db, user.ID).Username)
}

func TestUserService_DeleteWithTwoUsers(t *testing.T) {
	db := newTestDB(t)
	first := seedUser(t, db, "admin", "secret")
	seedUser(t, db, "second", "secret")
	svc := newTestUserService(db)

	require.NoError(t, svc.Delete(context.Background(), first.ID))

	users, err := svc.List(context.Background())
	require.NoError(t, err)
	require.Len(t, users, 1)
	assert.Equal(t, "second", users[0].Username)
}

func TestUserService_DeleteNotFound(t *testing.T) {
	db := newTestDB(t)
	seedUser(t, db, "admin", "secret")

	err := newTestUserService(db).Delete(context.Background(), 404)

	assert.ErrorIs(t, err, store.ErrUserNotFound)
}

// ─────────────────────────────────────────────
// Create / Update
// ─────────────────────────────────────────────

func TestUserService_Create(t *testing.T) {
	db := newTestDB(t)
	svc := newTestUserService(db)

	user, err := svc.Create(context.Background(), models.UserRequest{Username: " editor ", Password: "pw"})

	require.NoError(t, err)
	assert.Equal(t, "editor", user.Username)
	assert.True(t, utils.VerifyPassword(user.PasswordHash, "pw"))
}

func TestUserService_CreateDuplicate(t *testing.T) {
	db := newTestDB(t)
	seedUser(t, db, "admin", "secret")

	_, err := newTestUserService(db).Create(context.Background(), models.UserRequest{Username: "admin", Password: "pw"})

	assert.ErrorIs(t, err, store.ErrUsernameAlreadyExists)
}

func TestUserService_CreateInvalid(t *testing.T) {
	db := newTestDB(t)

	_, err := newTestUserService(db).Create(context.Background(), models.UserRequest{Username: "admin"})

	assert.ErrorIs(t, err, ErrInvalidDataProvided)
}

func TestUserService_PasswordResetClearsCounterOnly(t *testing.T) {
	db := newTestDB(t)
	user := seedUser(t, db, "admin", "secret")
	require.NoError(t, store.WithinTx(context.Background(), db, func(uow store.UnitOfWork) error {
		u, err := uow.Users().LockByID(context.Background(), user.ID)
		if err != nil {
			return err
		}
		for i := 0; i < FailureThreshold; i++ {
			u.RegisterFailure(fixedNow, FailureThreshold)
		}
		return uow.Users().UpdateGuard(context.Background(), u)
	}))

	updated, err := newTestUserService(db).Update(context.Background(), user.ID, models.UserRequest{Password: "fresh"})

	require.NoError(t, err)
	assert.Zero(t, updated.FailedLoginAttempts)
	stored := loadUser(t, db, user.ID)
	assert.Zero(t, stored.FailedLoginAttempts)
	assert.True(t, stored.IsLocked, "only an explicit unlock clears the lock")
	assert.True(t, utils.VerifyPassword(stored.PasswordHash, "fresh"))
}

func TestUserService_RenameKeepsPassword(t *testing.T) {
	db := newTestDB(t)
	user := seedUser(t, db, "admin", "secret")

	_, err := newTestUserService(db).Update(context.Background(), user.ID, models.UserRequest{Username: "root"})

	require.NoError(t, err)
	stored := loadUser(t, db, user.ID)
	assert.Equal(t, "root", stored.Username)
	assert.True(t, utils.VerifyPassword(stored.PasswordHash, "secret"))
}

func TestUserService_UpdateNothing(t *testing.T) {
	db := newTestDB(t)
	user := seedUser(t, db, "admin", "secret")

	_, err := newTestUserService(db).Update(context.Background(), user.ID, models.UserRequest{})

	assert.ErrorIs(t, err, ErrInvalidDataProvided)
}

// ─────────────────────────────────────────────
// EnsureAdmin
// ─────────────────────────────────────────────

func TestUserService_EnsureAdmin(t *testing.T) {
	db := newTestDB(t)
	svc := newTestUserService(db)

	require.NoError(t, svc.EnsureAdmin(context.Background(), "admin", "secret"))
	require.NoError(t, svc.EnsureAdmin(context.Background(), "other", "secret"))

	users, err := svc.List(context.Background())
	require.NoError(t, err)
	require.Len(t, users, 1)
	assert.Equal(t, "admin", users[0].Username)
}

func TestUserService_EnsureAdminWithoutCredentials(t *testing.T) {
	db := newTestDB(t)

	err := newTestUserService(db).EnsureAdmin(context.Background(), "", "")

	assert.ErrorIs(t, err, ErrInvalidDataProvided)
}

func TestUserService_EnsureAdminSkipsWhenUsersExist(t *testing.T) {
	db := newTestDB(t)
	seedUser(t, db, "admin", "secret")

	assert.NoError(t, newTestUserService(db).EnsureAdmin(context.Background(), "", ""))
}
