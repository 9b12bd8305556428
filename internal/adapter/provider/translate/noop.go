package translate

import "context"

// Noop is the translator used when no provider is configured.
type Noop struct{}

// NewNoop creates a translator that never translates.
func NewNoop() *Noop { return &Noop{} }

// Translate always returns an empty translation.
func (Noop) Translate(context.Context, string) (string, error) {
	return "", nil
}
