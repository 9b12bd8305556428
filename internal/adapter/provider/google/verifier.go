package google

import (
	"context"
	"fmt"
	"log/slog"

	"google.golang.org/api/idtoken"

	"github.com/heartmarshall/kanjilens-backend/internal/auth"
	"github.com/heartmarshall/kanjilens-backend/internal/domain"
)

// validateFunc matches idtoken.Validate; replaced in tests.
type validateFunc func(ctx context.Context, idToken, audience string) (*idtoken.Payload, error)

// Verifier checks Google ID tokens issued to this application's client ID.
type Verifier struct {
	clientID string
	validate validateFunc
	log      *slog.Logger
}

// NewVerifier creates a verifier for tokens whose audience is clientID.
func NewVerifier(clientID string, logger *slog.Logger) *Verifier {
	return &Verifier{
		clientID: clientID,
		validate: idtoken.Validate,
		log:      logger.With("adapter", "google_idtoken"),
	}
}

// VerifyIDToken validates the token signature, audience and expiry and
// returns the identity it carries. Tokens for unverified emails are rejected.
func (v *Verifier) VerifyIDToken(ctx context.Context, rawToken string) (*auth.OAuthIdentity, error) {
	if rawToken == "" {
		return nil, fmt.Errorf("google: empty id token: %w", domain.ErrUnauthorized)
	}

	payload, err := v.validate(ctx, rawToken, v.clientID)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, ctxErr
		}
		v.log.WarnContext(ctx, "google id token rejected", slog.String("error", err.Error()))
		return nil, fmt.Errorf("google: invalid id token: %w", domain.ErrUnauthorized)
	}

	email, _ := payload.Claims["email"].(string)
	if payload.Subject == "" || email == "" {
		return nil, fmt.Errorf("google: token missing subject or email: %w", domain.ErrUnauthorized)
	}
	if !emailVerified(payload.Claims["email_verified"]) {
		return nil, fmt.Errorf("google: email not verified: %w", domain.ErrUnauthorized)
	}

	v.log.DebugContext(ctx, "google id token verified", slog.String("email", email))
	return &auth.OAuthIdentity{Subject: payload.Subject, Email: email}, nil
}

// emailVerified accepts both the boolean and the legacy string encoding.
func emailVerified(v any) bool {
	switch b := v.(type) {
	case bool:
		return b
	case string:
		return b == "true"
	default:
		return false
	}
}
