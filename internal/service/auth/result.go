package auth

import (
	"time"

	"github.com/heartmarshall/kanjilens-backend/internal/domain"
)

// AuthResult is returned by every sign-in operation.
type AuthResult struct {
	AccessToken string
	ExpiresAt   time.Time
	User        *domain.User
}
