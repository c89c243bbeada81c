package service

import (
	"context"
	"fmt"
	"time"

	"github.com/maxazure/home/internal/config"
	"github.com/maxazure/home/internal/logger"
	"github.com/maxazure/home/internal/store"
	"github.com/maxazure/home/internal/utils"
	"github.com/maxazure/home/models"
)

// sessionService issues and checks the signed session tokens handed out on
// login.
type sessionService struct {
	transactor store.Transactor

	// tokenSignKey is the HMAC secret used to sign and verify tokens.
	tokenSignKey string

	// tokenIssuer is the "iss" claim embedded in every issued token.
	// Tokens whose issuer does not match this value are rejected.
	tokenIssuer string

	tokenDuration    time.Duration
	rememberDuration time.Duration

	logger *logger.Logger
}

func NewSessionService(transactor store.Transactor, cfg config.App, logger *logger.Logger) SessionService {
	return &sessionService{
		transactor:       transactor,
		tokenSignKey:     cfg.TokenSignKey,
		tokenIssuer:      cfg.TokenIssuer,
		tokenDuration:    cfg.TokenDuration,
		rememberDuration: cfg.RememberDuration,
		logger:           logger,
	}
}

// CreateToken issues a token for user. A remembered session lives for
// RememberDuration instead of TokenDuration.
func (s *sessionService) CreateToken(ctx context.Context, user models.User, remember bool) (models.Token, error) {
	duration := s.tokenDuration
	if remember {
		duration = s.rememberDuration
	}

	token, err := utils.GenerateJWTToken(s.tokenIssuer, user.ID, duration, s.tokenSignKey)
	if err != nil {
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return token, nil
}

// ParseToken normalises every validation failure (expired, wrong issuer,
// malformed) to ErrTokenIsExpiredOrInvalid.
func (s *sessionService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	token, err := utils.ValidateAndParseJWTToken(tokenString, s.tokenSignKey, s.tokenIssuer)
	if err != nil {
		return models.Token{}, ErrTokenIsExpiredOrInvalid
	}

	return token, nil
}

func (s *sessionService) Principal(ctx context.Context, tokenString string) models.Principal {
	log := logger.FromContext(ctx)

	token, err := s.ParseToken(ctx, tokenString)
	if err != nil {
		return models.Anonymous{}
	}

	userID := token.UserID

	var user models.User
	err = store.ReadOnly(ctx, s.transactor, func(uow store.UnitOfWork) error {
		user, err = uow.Users().FindByID(ctx, userID)
		return err
	})
	if err != nil {
		log.Err(err).Str("func", "sessionService.Principal").Int64("user_id", userID).Msg("session user lookup failed")
		return models.Anonymous{}
	}

	return user
}
