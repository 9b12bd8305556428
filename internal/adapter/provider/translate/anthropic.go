package translate

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	anthropic "github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"

	"github.com/heartmarshall/kanjilens-backend/internal/config"
	"github.com/heartmarshall/kanjilens-backend/internal/domain"
)

const defaultAnthropicModel = "claude-haiku-4-5"

// Anthropic translates with the Claude Messages API.
type Anthropic struct {
	client    anthropic.Client
	model     string
	maxTokens int64
	timeout   time.Duration
	log       *slog.Logger
}

// NewAnthropic creates a Claude-backed translator.
func NewAnthropic(cfg config.TranslationConfig, log *slog.Logger, opts ...option.RequestOption) *Anthropic {
	reqOpts := []option.RequestOption{option.WithAPIKey(cfg.APIKey)}
	if cfg.BaseURL != "" {
		reqOpts = append(reqOpts, option.WithBaseURL(cfg.BaseURL))
	}
	reqOpts = append(reqOpts, opts...)

	model := cfg.Model
	if model == "" {
		model = defaultAnthropicModel
	}
	maxTokens := cfg.MaxTokens
	if maxTokens <= 0 {
		maxTokens = 1024
	}
	return &Anthropic{
		client:    anthropic.NewClient(reqOpts...),
		model:     model,
		maxTokens: maxTokens,
		timeout:   cfg.Timeout,
		log:       log.With("adapter", "translate_anthropic"),
	}
}

// Translate sends text to the model and returns the cleaned answer.
func (a *Anthropic) Translate(ctx context.Context, text string) (string, error) {
	if a.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, a.timeout)
		defer cancel()
	}

	start := time.Now()
	msg, err := a.client.Messages.New(ctx, anthropic.MessageNewParams{
		Model:     anthropic.Model(a.model),
		MaxTokens: a.maxTokens,
		System:    []anthropic.TextBlockParam{{Text: systemPrompt}},
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(text)),
		},
	})
	if err != nil {
		return "", fmt.Errorf("anthropic translate: %w: %w", domain.ErrUnavailable, err)
	}

	var b strings.Builder
	for _, block := range msg.Content {
		if block.Type == "text" {
			b.WriteString(block.Text)
		}
	}
	out := Clean(b.String())
	if out == "" {
		return "", fmt.Errorf("anthropic translate: empty response: %w", domain.ErrUnavailable)
	}

	a.log.DebugContext(ctx, "translation done",
		slog.String("model", a.model),
		slog.Duration("duration", time.Since(start)),
		slog.Int("runes", len([]rune(text))),
	)
	return out, nil
}
