// Package ctxutil carries per-request identity (user and request ID)
// through context.Context.
package ctxutil

import (
	"context"
	"sync/atomic"

	"github.com/google/uuid"
)

type (
	userIDKey    struct{}
	userSlotKey  struct{}
	requestIDKey struct{}
)

// UserSlot records the authenticated user for outer middleware that
// cannot see the context Auth derives further down the chain.
type UserSlot struct {
	id atomic.Pointer[uuid.UUID]
}

// Load returns the recorded user ID, if any.
func (s *UserSlot) Load() (uuid.UUID, bool) {
	if s == nil {
		return uuid.Nil, false
	}
	id := s.id.Load()
	if id == nil {
		return uuid.Nil, false
	}
	return *id, true
}

// WithUserSlot installs an empty UserSlot in the context.
func WithUserSlot(ctx context.Context) (context.Context, *UserSlot) {
	slot := &UserSlot{}
	return context.WithValue(ctx, userSlotKey{}, slot), slot
}

// WithUserID stores the user ID in the context and fills the UserSlot
// installed by WithUserSlot, if there is one.
func WithUserID(ctx context.Context, id uuid.UUID) context.Context {
	if slot, ok := ctx.Value(userSlotKey{}).(*UserSlot); ok && id != uuid.Nil {
		slot.id.Store(&id)
	}
	return context.WithValue(ctx, userIDKey{}, id)
}

// UserIDFromCtx returns the authenticated user. Anonymous requests report
// false.
func UserIDFromCtx(ctx context.Context) (uuid.UUID, bool) {
	id, ok := ctx.Value(userIDKey{}).(uuid.UUID)
	if !ok || id == uuid.Nil {
		return uuid.Nil, false
	}
	return id, true
}

// WithRequestID stores the request ID in the context.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey{}, id)
}

// RequestIDFromCtx returns the request ID, or "" outside a request.
func RequestIDFromCtx(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey{}).(string)
	return id
}
