// Package review records kanji reviews and serves each user's review state.
package review

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/kanjilens-backend/internal/domain"
	"github.com/heartmarshall/kanjilens-backend/internal/service/review/sm2"
)

// ---------------------------------------------------------------------------
// Consumer-defined interfaces (private)
// ---------------------------------------------------------------------------

type reviewRepo interface {
	Get(ctx context.Context, userID uuid.UUID, kanji string) (*domain.ReviewItem, error)
	Upsert(ctx context.Context, item domain.ReviewItem, expectedVersion int64) (*domain.ReviewItem, error)
	ListDue(ctx context.Context, userID uuid.UUID, today time.Time, limit int) ([]domain.ReviewItem, error)
	Stats(ctx context.Context, userID uuid.UUID, today time.Time) (domain.ReviewStats, error)
}

// ---------------------------------------------------------------------------
// Service
// ---------------------------------------------------------------------------

// Config holds the scheduling and queue settings of the service.
type Config struct {
	Params           sm2.Parameters
	MaxWriteAttempts int
	DefaultDueLimit  int
	MaxDueLimit      int
}

// DefaultConfig returns classic SM-2 parameters with three write attempts.
func DefaultConfig() Config {
	return Config{
		Params:           sm2.DefaultParameters(),
		MaxWriteAttempts: 3,
		DefaultDueLimit:  20,
		MaxDueLimit:      200,
	}
}

// Service implements the review store operations on top of the repository.
type Service struct {
	log     *slog.Logger
	repo    reviewRepo
	cfg     Config
	locks   *keyLock
	metrics *Metrics
}

// NewService creates a review service. metrics may be nil.
func NewService(log *slog.Logger, repo reviewRepo, cfg Config, metrics *Metrics) *Service {
	if cfg.MaxWriteAttempts < 1 {
		cfg.MaxWriteAttempts = 1
	}
	return &Service{
		log:     log.With("service", "review"),
		repo:    repo,
		cfg:     cfg,
		locks:   newKeyLock(),
		metrics: metrics,
	}
}

func toSM2(s domain.SchedulingState) sm2.State {
	return sm2.State{Interval: s.Interval, Repetition: s.Repetition, EaseFactor: s.EaseFactor}
}

func fromSM2(s sm2.State) domain.SchedulingState {
	return domain.SchedulingState{Interval: s.Interval, Repetition: s.Repetition, EaseFactor: s.EaseFactor}
}
