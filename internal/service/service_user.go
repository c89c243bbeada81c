package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/maxazure/home/internal/config"
	"github.com/maxazure/home/internal/logger"
	"github.com/maxazure/home/internal/store"
	"github.com/maxazure/home/internal/utils"
	"github.com/maxazure/home/internal/validators"
	"github.com/maxazure/home/models"
)

type userService struct {
	transactor store.Transactor
	validator  validators.Validator
	bcryptCost int

	logger *logger.Logger
}

func NewUserService(transactor store.Transactor, cfg config.Security, logger *logger.Logger) UserService {
	return &userService{
		transactor: transactor,
		validator:  validators.NewRequestValidator(),
		bcryptCost: cfg.BcryptCost,
		logger:     logger,
	}
}

func (s *userService) List(ctx context.Context) (users []models.User, err error) {
	err = store.ReadOnly(ctx, s.transactor, func(uow store.UnitOfWork) error {
		users, err = uow.Users().List(ctx)
		return err
	})
	return users, err
}

func (s *userService) Get(ctx context.Context, id int64) (user models.User, err error) {
	err = store.ReadOnly(ctx, s.transactor, func(uow store.UnitOfWork) error {
		user, err = uow.Users().FindByID(ctx, id)
		return err
	})
	return user, err
}

func (s *userService) Create(ctx context.Context, req models.UserRequest) (models.User, error) {
	log := logger.FromContext(ctx)

	if err := s.validator.Validate(ctx, req); err != nil {
		return models.User{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	hash, err := utils.HashPassword(req.Password, s.bcryptCost)
	if err != nil {
		return models.User{}, fmt.Errorf("hash password: %w", err)
	}

	var user models.User
	err = store.WithinTx(ctx, s.transactor, func(uow store.UnitOfWork) error {
		user, err = uow.Users().Create(ctx, models.User{Username: strings.TrimSpace(req.Username), PasswordHash: hash})
		return err
	})
	if err != nil {
		log.Err(err).Str("func", "userService.Create").Str("username", req.Username).Msg("user creation ended with error")
		return models.User{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	return user, nil
}

// Update changes the username and/or the password. A new password clears
// the failure counter; the lock flag stays until an explicit unlock.
func (s *userService) Update(ctx context.Context, id int64, req models.UserRequest) (models.User, error) {
	if err := s.validator.Validate(ctx, req, validators.FieldAny); err != nil {
		return models.User{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	var hash string
	if req.Password != "" {
		var err error
		if hash, err = utils.HashPassword(req.Password, s.bcryptCost); err != nil {
			return models.User{}, fmt.Errorf("hash password: %w", err)
		}
	}

	var user models.User
	err := store.WithinTx(ctx, s.transactor, func(uow store.UnitOfWork) error {
		var err error
		if user, err = uow.Users().LockByID(ctx, id); err != nil {
			return err
		}

		if name := strings.TrimSpace(req.Username); name != "" {
			user.Username = name
		}
		if hash != "" {
			user.PasswordHash = hash
		}
		if err = uow.Users().Update(ctx, user); err != nil {
			return err
		}

		if hash == "" {
			return nil
		}
		user.ResetFailures()
		return uow.Users().UpdateGuard(ctx, user)
	})
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "userService.Update").Int64("user_id", id).Msg("user update ended with error")
		return models.User{}, fmt.Errorf("user update ended with error: %w", err)
	}

	return user, nil
}

// Delete removes a user unless it is the only one left. The user table is
// locked for the count so two concurrent deletes cannot both pass.
func (s *userService) Delete(ctx context.Context, id int64) error {
	err := store.WithinTx(ctx, s.transactor, func(uow store.UnitOfWork) error {
		if _, err := uow.Users().LockByID(ctx, id); err != nil {
			return err
		}

		count, err := uow.Users().CountForUpdate(ctx)
		if err != nil {
			return err
		}
		if count <= 1 {
			return ErrLastAdmin
		}

		return uow.Users().Delete(ctx, id)
	})
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "userService.Delete").Int64("user_id", id).Msg("user deletion ended with error")
		return fmt.Errorf("user deletion ended with error: %w", err)
	}

	return nil
}

func (s *userService) EnsureAdmin(ctx context.Context, username, password string) error {
	log := logger.FromContext(ctx)

	return store.WithinTx(ctx, s.transactor, func(uow store.UnitOfWork) error {
		count, err := uow.Users().CountForUpdate(ctx)
		if err != nil {
			return err
		}
		if count > 0 {
			return nil
		}

		req := models.UserRequest{Username: username, Password: password}
		if err = s.validator.Validate(ctx, req); err != nil {
			return fmt.Errorf("%w: no users exist and no initial admin is configured: %w", ErrInvalidDataProvided, err)
		}

		hash, err := utils.HashPassword(password, s.bcryptCost)
		if err != nil {
			return fmt.Errorf("hash password: %w", err)
		}
		if _, err = uow.Users().Create(ctx, models.User{Username: strings.TrimSpace(username), PasswordHash: hash}); err != nil {
			return err
		}

		log.Info().Str("func", "userService.EnsureAdmin").Str("username", username).Msg("initial administrator created")
		return nil
	})
}
