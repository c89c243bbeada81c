package store

import (
	"context"
	"database/sql"

	sq "github.com/Masterminds/squirrel"
	"github.com/maxazure/home/internal/logger"
	"github.com/maxazure/home/models"
)

// userRepository is the SQL implementation of [UserRepository] bound to a
// single transaction.
type userRepository struct {
	sqlRepository
}

func scanUser(row rowScanner) (models.User, error) {
	var user models.User
	var lastFailed sql.NullTime

	err := row.Scan(&user.ID, &user.Username, &user.PasswordHash, &user.CreatedAt,
		&user.IsLocked, &user.FailedLoginAttempts, &lastFailed)
	if err != nil {
		return models.User{}, err
	}
	user.LastFailedLogin = timePtr(lastFailed)

	return user, nil
}

// Create inserts user and returns it with the assigned id.
//
// Error handling:
//   - unique violation on username → [ErrUsernameAlreadyExists].
func (r *userRepository) Create(ctx context.Context, user models.User) (models.User, error) {
	if user.CreatedAt.IsZero() {
		user.CreatedAt = nowUTC()
	}

	query, args, err := r.q.insertUser(user)
	err = r.queryRow(ctx, "userRepository.Create", query, args, err, ErrExecutingQuery, &user.ID)
	if err != nil {
		return models.User{}, r.constraintError(err, ErrUsernameAlreadyExists, nil)
	}

	logger.FromContext(ctx).Debug().
		Str("func", "userRepository.Create").
		Int64("user_id", user.ID).
		Msg("user created")

	return user, nil
}

func (r *userRepository) FindByID(ctx context.Context, id int64) (models.User, error) {
	query, args, err := r.q.selectUser(sq.Eq{"id": id}, false)
	return queryOne(ctx, r.sqlRepository, "userRepository.FindByID", query, args, err, ErrUserNotFound, scanUser)
}

func (r *userRepository) LockByID(ctx context.Context, id int64) (models.User, error) {
	query, args, err := r.q.selectUser(sq.Eq{"id": id}, true)
	return queryOne(ctx, r.sqlRepository, "userRepository.LockByID", query, args, err, ErrUserNotFound, scanUser)
}

// LockByUsername loads the user the login guard is about to update and
// locks its row until the unit of work ends.
func (r *userRepository) LockByUsername(ctx context.Context, username string) (models.User, error) {
	query, args, err := r.q.selectUser(sq.Eq{"username": username}, true)
	return queryOne(ctx, r.sqlRepository, "userRepository.LockByUsername", query, args, err, ErrUserNotFound, scanUser)
}

func (r *userRepository) List(ctx context.Context) ([]models.User, error) {
	query, args, err := r.q.selectUsers()
	return queryAll(ctx, r.sqlRepository, "userRepository.List", query, args, err, scanUser)
}

// CountForUpdate locks all user rows so that concurrent deletions cannot
// both observe more than one remaining user.
func (r *userRepository) CountForUpdate(ctx context.Context) (int, error) {
	query, args, err := r.q.selectUserIDsForUpdate()
	ids, err := queryAll(ctx, r.sqlRepository, "userRepository.CountForUpdate", query, args, err, func(row rowScanner) (int64, error) {
		var id int64
		return id, row.Scan(&id)
	})
	if err != nil {
		return 0, err
	}
	return len(ids), nil
}

func (r *userRepository) Update(ctx context.Context, user models.User) error {
	query, args, err := r.q.updateUser(user)
	err = r.execOne(ctx, "userRepository.Update", query, args, err, ErrUserNotFound)
	return r.constraintError(err, ErrUsernameAlreadyExists, nil)
}

func (r *userRepository) UpdateGuard(ctx context.Context, user models.User) error {
	query, args, err := r.q.updateUserGuard(user)
	return r.execOne(ctx, "userRepository.UpdateGuard", query, args, err, ErrUserNotFound)
}

func (r *userRepository) Delete(ctx context.Context, id int64) error {
	query, args, err := r.q.deleteByID(usersTable, id)
	return r.execOne(ctx, "userRepository.Delete", query, args, err, ErrUserNotFound)
}
