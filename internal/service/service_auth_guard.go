package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/maxazure/home/internal/logger"
	"github.com/maxazure/home/internal/store"
	"github.com/maxazure/home/internal/utils"
	"github.com/maxazure/home/models"
)

// FailureThreshold is the number of failed attempts after which an account
// is locked or a source address is blocked. The counters never decay.
const FailureThreshold = 10

type authGuard struct {
	// now is swapped in tests.
	now func() time.Time

	logger *logger.Logger
}

func NewAuthGuard(logger *logger.Logger) AuthGuard {
	return &authGuard{
		now:    func() time.Time { return time.Now().UTC() },
		logger: logger,
	}
}

func (g *authGuard) AttemptLogin(ctx context.Context, uow store.UnitOfWork, attempt models.LoginAttempt) (models.AuthResult, error) {
	log := logger.FromContext(ctx)
	denied := models.AuthResult{Status: models.AuthAccessDenied}

	block, blockFound, err := g.lockIPBlock(ctx, uow, attempt.SourceIP)
	if err != nil {
		return models.AuthResult{}, err
	}
	if blockFound && block.IsBlocked {
		log.Warn().Str("func", "authGuard.AttemptLogin").Str("ip", attempt.SourceIP).Msg("login from blocked address")
		return denied, nil
	}

	user, userFound, err := g.lockUser(ctx, uow, attempt.Username)
	if err != nil {
		return models.AuthResult{}, err
	}

	now := g.now()

	if userFound && user.IsLocked {
		// A locked account is rejected before the password is looked at;
		// only the address is charged for the attempt.
		if _, err = g.registerIPFailure(ctx, uow, block, blockFound, attempt.SourceIP, now); err != nil {
			return models.AuthResult{}, err
		}
		log.Warn().Str("func", "authGuard.AttemptLogin").Int64("user_id", user.ID).Msg("login to locked account")
		return denied, nil
	}

	passwordOK := false
	if userFound {
		passwordOK = utils.VerifyPassword(user.PasswordHash, attempt.Password)
	} else {
		utils.BurnPasswordCheck(attempt.Password)
	}

	if passwordOK {
		user.ResetFailures()
		if err = uow.Users().UpdateGuard(ctx, user); err != nil {
			return models.AuthResult{}, err
		}
		if blockFound && block.FailedAttempts > 0 {
			block.ResetFailures()
			if err = uow.IPBlocks().UpdateGuard(ctx, block); err != nil {
				return models.AuthResult{}, err
			}
		}
		log.Info().Str("func", "authGuard.AttemptLogin").Int64("user_id", user.ID).Msg("login succeeded")
		return models.AuthResult{Status: models.AuthSuccess, User: user}, nil
	}

	blocked, err := g.registerIPFailure(ctx, uow, block, blockFound, attempt.SourceIP, now)
	if err != nil {
		return models.AuthResult{}, err
	}

	locked := false
	if userFound {
		locked = user.RegisterFailure(now, FailureThreshold)
		if err = uow.Users().UpdateGuard(ctx, user); err != nil {
			return models.AuthResult{}, err
		}
	}

	if blocked || locked {
		log.Warn().Str("func", "authGuard.AttemptLogin").
			Str("ip", attempt.SourceIP).
			Bool("ip_blocked", blocked).
			Bool("user_locked", locked).
			Msg("failure threshold reached")
		return denied, nil
	}

	log.Info().Str("func", "authGuard.AttemptLogin").Str("ip", attempt.SourceIP).Msg("invalid credentials")
	return models.AuthResult{Status: models.AuthInvalidCredentials}, nil
}

func (g *authGuard) lockIPBlock(ctx context.Context, uow store.UnitOfWork, ip string) (models.IPBlock, bool, error) {
	block, err := uow.IPBlocks().LockByAddress(ctx, ip)
	if errors.Is(err, store.ErrIPBlockNotFound) {
		return models.IPBlock{}, false, nil
	}
	if err != nil {
		return models.IPBlock{}, false, err
	}
	return block, true, nil
}

func (g *authGuard) lockUser(ctx context.Context, uow store.UnitOfWork, username string) (models.User, bool, error) {
	user, err := uow.Users().LockByUsername(ctx, username)
	if errors.Is(err, store.ErrUserNotFound) {
		return models.User{}, false, nil
	}
	if err != nil {
		return models.User{}, false, err
	}
	return user, true, nil
}

// registerIPFailure charges one failed attempt to the address, creating its
// record on the first failure. It reports whether the address became
// blocked on this attempt.
func (g *authGuard) registerIPFailure(ctx context.Context, uow store.UnitOfWork, block models.IPBlock, found bool, ip string, now time.Time) (bool, error) {
	if !found {
		created, err := uow.IPBlocks().InsertIfAbsent(ctx, models.IPBlock{
			IPAddress:      ip,
			FailedAttempts: 1,
			IsBlocked:      FailureThreshold <= 1,
			LastAttempt:    &now,
		})
		if err == nil {
			return created.IsBlocked, nil
		}
		if !errors.Is(err, store.ErrIPBlockAlreadyExists) {
			return false, err
		}

		// Another attempt created the record first.
		block, err = uow.IPBlocks().LockByAddress(ctx, ip)
		if err != nil {
			return false, err
		}
	}

	blocked := block.RegisterFailure(now, FailureThreshold)
	if err := uow.IPBlocks().UpdateGuard(ctx, block); err != nil {
		return false, err
	}
	return blocked, nil
}

func (g *authGuard) UnlockUser(ctx context.Context, uow store.UnitOfWork, userID int64) (models.User, error) {
	user, err := uow.Users().LockByID(ctx, userID)
	if err != nil {
		return models.User{}, fmt.Errorf("unlock user: %w", err)
	}

	user.Unlock()
	if err = uow.Users().UpdateGuard(ctx, user); err != nil {
		return models.User{}, fmt.Errorf("unlock user: %w", err)
	}

	logger.FromContext(ctx).Info().Str("func", "authGuard.UnlockUser").Int64("user_id", userID).Msg("user unlocked")
	return user, nil
}

func (g *authGuard) UnblockIP(ctx context.Context, uow store.UnitOfWork, blockID int64) (models.IPBlock, error) {
	block, err := uow.IPBlocks().LockByID(ctx, blockID)
	if err != nil {
		return models.IPBlock{}, fmt.Errorf("unblock ip: %w", err)
	}

	block.Unblock()
	if err = uow.IPBlocks().UpdateGuard(ctx, block); err != nil {
		return models.IPBlock{}, fmt.Errorf("unblock ip: %w", err)
	}

	logger.FromContext(ctx).Info().Str("func", "authGuard.UnblockIP").Str("ip", block.IPAddress).Msg("address unblocked")
	return block, nil
}

func (g *authGuard) ListIPBlocks(ctx context.Context, uow store.UnitOfWork) ([]models.IPBlock, error) {
	return uow.IPBlocks().List(ctx)
}
