// Package translate turns Japanese text into English with a generative model.
package translate

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/kanjilens-backend/internal/config"
)

const systemPrompt = `You translate Japanese text into natural, faithful English.
Reply with the English translation only: no notes, no romanization, no quotes.`

// Translator translates Japanese text into English.
type Translator interface {
	Translate(ctx context.Context, text string) (string, error)
}

// New builds the translator selected by cfg.Provider.
func New(cfg config.TranslationConfig, log *slog.Logger) (Translator, error) {
	switch cfg.NormalizedProvider() {
	case "", config.TranslationNone:
		return NewNoop(), nil
	case config.TranslationAnthropic:
		return NewAnthropic(cfg, log), nil
	case config.TranslationOpenAI:
		return NewOpenAI(cfg, log), nil
	default:
		return nil, fmt.Errorf("translate: unknown provider %q", cfg.Provider)
	}
}
