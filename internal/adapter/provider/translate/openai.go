package translate

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	openai "github.com/sashabaranov/go-openai"

	"github.com/heartmarshall/kanjilens-backend/internal/config"
	"github.com/heartmarshall/kanjilens-backend/internal/domain"
)

// OpenAI translates with an OpenAI-compatible chat completions endpoint.
type OpenAI struct {
	client    *openai.Client
	model     string
	maxTokens int
	timeout   time.Duration
	log       *slog.Logger
}

// NewOpenAI creates a chat-completions translator.
func NewOpenAI(cfg config.TranslationConfig, log *slog.Logger) *OpenAI {
	clientCfg := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		clientCfg.BaseURL = cfg.BaseURL
	}

	model := cfg.Model
	if model == "" {
		model = openai.GPT4oMini
	}
	return &OpenAI{
		client:    openai.NewClientWithConfig(clientCfg),
		model:     model,
		maxTokens: int(cfg.MaxTokens),
		timeout:   cfg.Timeout,
		log:       log.With("adapter", "translate_openai"),
	}
}

// Translate sends text to the model and returns the cleaned answer.
func (o *OpenAI) Translate(ctx context.Context, text string) (string, error) {
	if o.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, o.timeout)
		defer cancel()
	}

	start := time.Now()
	resp, err := o.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:     o.model,
		MaxTokens: o.maxTokens,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: systemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: text},
		},
	})
	if err != nil {
		return "", fmt.Errorf("openai translate: %w: %w", domain.ErrUnavailable, err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("openai translate: no choices: %w", domain.ErrUnavailable)
	}

	out := Clean(resp.Choices[0].Message.Content)
	if out == "" {
		return "", fmt.Errorf("openai translate: empty response: %w", domain.ErrUnavailable)
	}

	o.log.DebugContext(ctx, "translation done",
		slog.String("model", o.model),
		slog.Duration("duration", time.Since(start)),
		slog.Int("total_tokens", resp.Usage.TotalTokens),
	)
	return out, nil
}
