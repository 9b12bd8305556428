package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/kanjilens-backend/internal/auth"
	"github.com/heartmarshall/kanjilens-backend/internal/domain"
)

// LoginWithGoogle signs in with a Google ID token.
// A first sign-in creates the account, or links the Google identity to an
// existing account with the same email.
func (s *Service) LoginWithGoogle(ctx context.Context, input GoogleLoginInput) (*AuthResult, error) {
	if s.google == nil {
		return nil, fmt.Errorf("auth.LoginWithGoogle: google sign-in disabled: %w", domain.ErrUnavailable)
	}
	if err := input.Validate(); err != nil {
		return nil, err
	}

	identity, err := s.google.VerifyIDToken(ctx, input.IDToken)
	if err != nil {
		return nil, fmt.Errorf("auth.LoginWithGoogle verify: %w", err)
	}
	identity.Email = domain.NormalizeEmail(identity.Email)

	user, err := s.users.GetByGoogleSub(ctx, identity.Subject)
	switch {
	case err == nil:
		s.log.InfoContext(ctx, "user logged in via google", slog.String("user_id", user.ID.String()))
	case errors.Is(err, domain.ErrNotFound):
		user, err = s.linkOrCreate(ctx, identity)
		if err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("auth.LoginWithGoogle get user: %w", err)
	}

	result, err := s.issueToken(user)
	if err != nil {
		return nil, fmt.Errorf("auth.LoginWithGoogle issue token: %w", err)
	}
	return result, nil
}

// linkOrCreate attaches the Google identity to the account with the same
// email, or registers a new account, in one transaction.
func (s *Service) linkOrCreate(ctx context.Context, identity *auth.OAuthIdentity) (*domain.User, error) {
	var user *domain.User
	linked := false

	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		existing, err := s.users.GetByEmail(txCtx, identity.Email)
		if err != nil && !errors.Is(err, domain.ErrNotFound) {
			return fmt.Errorf("get user by email: %w", err)
		}

		if existing != nil {
			if existing.GoogleSub != nil && *existing.GoogleSub != identity.Subject {
				// The email belongs to a different Google account.
				return domain.ErrAlreadyExists
			}
			user, err = s.users.LinkGoogle(txCtx, existing.ID, identity.Subject)
			if err != nil {
				return fmt.Errorf("link google: %w", err)
			}
			linked = true
			return nil
		}

		sub := identity.Subject
		now := time.Now()
		user, err = s.users.Create(txCtx, domain.User{
			ID:        uuid.New(),
			Email:     identity.Email,
			Username:  emailPrefix(identity.Email),
			GoogleSub: &sub,
			CreatedAt: now,
			UpdatedAt: now,
		})
		if err != nil {
			return fmt.Errorf("create user: %w", err)
		}
		return nil
	})

	if err != nil {
		if errors.Is(err, domain.ErrAlreadyExists) {
			// Race: a concurrent sign-in created the account first.
			u, retryErr := s.users.GetByGoogleSub(ctx, identity.Subject)
			if retryErr == nil {
				return u, nil
			}
			return nil, fmt.Errorf("auth.LoginWithGoogle: %w", domain.ErrAlreadyExists)
		}
		return nil, fmt.Errorf("auth.LoginWithGoogle: %w", err)
	}

	if linked {
		s.log.InfoContext(ctx, "google linked to existing account", slog.String("user_id", user.ID.String()))
	} else {
		s.log.InfoContext(ctx, "user registered via google", slog.String("user_id", user.ID.String()))
	}
	return user, nil
}
