// Package text annotates Japanese text with readings, kanji metadata and an
// optional translation.
package text

import (
	"context"
	"log/slog"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
	"golang.org/x/sync/singleflight"

	"github.com/heartmarshall/kanjilens-backend/internal/domain"
)

// ---------------------------------------------------------------------------
// Consumer-defined interfaces (private)
// ---------------------------------------------------------------------------

type annotator interface {
	Tokenize(text string) []domain.Token
	Render(tokens []domain.Token) string
}

type kanjiProvider interface {
	FetchKanji(ctx context.Context, kanji string) (*domain.KanjiInfo, error)
}

type translator interface {
	Translate(ctx context.Context, text string) (string, error)
}

// ---------------------------------------------------------------------------
// Service
// ---------------------------------------------------------------------------

// Config bounds requests and sizes the kanji cache.
type Config struct {
	MaxRunes          int
	LookupConcurrency int
	CacheSize         int
	CacheTTL          time.Duration
	// LookupTimeout bounds one shared upstream kanji fetch, retries included.
	LookupTimeout time.Duration
}

// Service implements text annotation and kanji lookup.
type Service struct {
	log        *slog.Logger
	annotator  annotator
	kanji      kanjiProvider
	translator translator
	cfg        Config
	cache      *expirable.LRU[string, domain.KanjiInfo]
	lookups    singleflight.Group
}

// NewService creates a text service. translator may be nil.
func NewService(log *slog.Logger, a annotator, kanji kanjiProvider, tr translator, cfg Config) *Service {
	if cfg.LookupConcurrency < 1 {
		cfg.LookupConcurrency = 1
	}
	if cfg.CacheSize < 1 {
		cfg.CacheSize = 1024
	}
	if cfg.LookupTimeout <= 0 {
		cfg.LookupTimeout = 15 * time.Second
	}
	return &Service{
		log:        log.With("service", "text"),
		annotator:  a,
		kanji:      kanji,
		translator: tr,
		cfg:        cfg,
		cache:      expirable.NewLRU[string, domain.KanjiInfo](cfg.CacheSize, nil, cfg.CacheTTL),
	}
}
