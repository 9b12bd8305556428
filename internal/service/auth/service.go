// Package auth registers accounts and issues access tokens.
package auth

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/heartmarshall/kanjilens-backend/internal/auth"
	"github.com/heartmarshall/kanjilens-backend/internal/config"
	"github.com/heartmarshall/kanjilens-backend/internal/domain"
)

// userRepo defines the user repository interface needed by auth service.
type userRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	GetByGoogleSub(ctx context.Context, sub string) (*domain.User, error)
	Create(ctx context.Context, u domain.User) (*domain.User, error)
	LinkGoogle(ctx context.Context, id uuid.UUID, sub string) (*domain.User, error)
}

// txManager defines the transaction manager interface needed by auth service.
type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// idTokenVerifier checks third-party identity tokens.
type idTokenVerifier interface {
	VerifyIDToken(ctx context.Context, rawToken string) (*auth.OAuthIdentity, error)
}

// jwtManager defines the JWT token management interface needed by auth service.
type jwtManager interface {
	GenerateAccessToken(userID uuid.UUID) (string, time.Time, error)
	ValidateAccessToken(token string) (uuid.UUID, error)
}

// Service implements auth operations.
type Service struct {
	log    *slog.Logger
	users  userRepo
	tx     txManager
	google idTokenVerifier
	jwt    jwtManager
	cfg    config.AuthConfig

	// decoyHash is compared against when the account has no password, so a
	// failed login costs the same whether or not the email exists.
	decoyHash func() []byte
}

// NewService creates a new auth service instance.
// google may be nil when Google sign-in is not configured.
func NewService(
	logger *slog.Logger,
	users userRepo,
	tx txManager,
	google idTokenVerifier,
	jwt jwtManager,
	cfg config.AuthConfig,
) *Service {
	return &Service{
		log:    logger.With("service", "auth"),
		users:  users,
		tx:     tx,
		google: google,
		jwt:    jwt,
		cfg:    cfg,
		decoyHash: sync.OnceValue(func() []byte {
			h, err := bcrypt.GenerateFromPassword([]byte(uuid.NewString()), cfg.PasswordHashCost)
			if err != nil {
				return nil
			}
			return h
		}),
	}
}

// issueToken signs an access token for user.
func (s *Service) issueToken(user *domain.User) (*AuthResult, error) {
	token, expires, err := s.jwt.GenerateAccessToken(user.ID)
	if err != nil {
		return nil, fmt.Errorf("generate access token: %w", err)
	}
	return &AuthResult{AccessToken: token, ExpiresAt: expires, User: user}, nil
}

// emailPrefix extracts the part before @ from an email address.
func emailPrefix(email string) string {
	if idx := strings.IndexByte(email, '@'); idx > 0 {
		return email[:idx]
	}
	return email
}
