package service

import (
	"context"
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/mercadito/catalog-service/internal/core/domain"
	"github.com/mercadito/catalog-service/internal/core/ports"
)

// LoginThrottle abstracts the failed-attempt store (Redis).
type LoginThrottle interface {
	TooManyFailures(ctx context.Context, email string) (bool, error)
	RecordFailure(ctx context.Context, email string) error
	Reset(ctx context.Context, email string) error
}

// AuthService verifies credentials and issues HS256 tokens.
type AuthService struct {
	repo      ports.AccountRepository
	throttle  LoginThrottle
	jwtSecret string
	tokenTTL  time.Duration
	logger    zerolog.Logger
}

func NewAuthService(repo ports.AccountRepository, throttle LoginThrottle, jwtSecret string, tokenTTL time.Duration, logger zerolog.Logger) *AuthService {
	if tokenTTL <= 0 {
		tokenTTL = 24 * time.Hour
	}
	return &AuthService{repo: repo, throttle: throttle, jwtSecret: jwtSecret, tokenTTL: tokenTTL, logger: logger}
}

// Login authenticates by email and password. Deactivated accounts cannot
// log in. Failed attempts are throttled per email; throttle store errors
// are logged and the login proceeds, so Redis downtime never locks
// everyone out.
func (s *AuthService) Login(ctx context.Context, email, password string) (string, *ports.AccountView, error) {
	if email == "" || password == "" {
		return "", nil, domain.ErrInvalidCredentials
	}

	blocked, err := s.throttle.TooManyFailures(ctx, email)
	if err != nil {
		s.logger.Warn().Err(err).Msg("login throttle check failed, continuing")
	} else if blocked {
		return "", nil, domain.ErrTooManyAttempts
	}

	account, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrAccountNotFound) {
			s.failed(ctx, email)
			return "", nil, domain.ErrInvalidCredentials
		}
		return "", nil, err
	}

	if !account.Active {
		return "", nil, domain.ErrInvalidCredentials
	}

	if bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte(password)) != nil {
		s.failed(ctx, email)
		return "", nil, domain.ErrInvalidCredentials
	}

	if err := s.throttle.Reset(ctx, email); err != nil {
		s.logger.Warn().Err(err).Msg("login throttle reset failed")
	}

	token, err := s.generateToken(account)
	if err != nil {
		return "", nil, err
	}

	view := toAccountView(account)
	return token, &view, nil
}

func (s *AuthService) failed(ctx context.Context, email string) {
	if err := s.throttle.RecordFailure(ctx, email); err != nil {
		s.logger.Warn().Err(err).Msg("login throttle record failed")
	}
}

func (s *AuthService) generateToken(a *domain.Account) (string, error) {
	claims := jwt.MapClaims{
		"uid":  a.ID,
		"role": a.Role,
		"exp":  time.Now().Add(s.tokenTTL).Unix(),
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString([]byte(s.jwtSecret))
}
