package review

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/kanjilens-backend/internal/domain"
	"github.com/heartmarshall/kanjilens-backend/internal/service/review/sm2"
)

// GetOrDefault returns the stored scheduling state of (userID, kanji), or the
// defaults {0, 0, 2.5} when the item has never been reviewed.
func (s *Service) GetOrDefault(ctx context.Context, userID uuid.UUID, kanji string) (domain.SchedulingState, error) {
	if userID == uuid.Nil {
		return domain.SchedulingState{}, domain.NewValidationError("user_id", "required")
	}
	kanji, err := domain.NormalizeKanji(kanji)
	if err != nil {
		return domain.SchedulingState{}, err
	}

	item, err := s.load(ctx, userID, kanji)
	if err != nil {
		return domain.SchedulingState{}, fmt.Errorf("get review state: %w", err)
	}
	return item.SchedulingState, nil
}

// RecordReview applies one grade to (userID, kanji) and persists the result.
//
// The read-compute-write cycle runs under a per-key lock and ends in a
// version-checked upsert; when another writer changes the row first the
// cycle restarts from a fresh read, up to Config.MaxWriteAttempts times.
// Invalid input is rejected before anything is read or written.
func (s *Service) RecordReview(ctx context.Context, input RecordReviewInput) (*domain.ReviewItem, error) {
	if err := input.Validate(); err != nil {
		s.metrics.observeFailure("validation")
		return nil, err
	}

	unlock := s.locks.Lock(input.UserID.String() + "/" + input.Kanji)
	defer unlock()

	for attempt := 1; ; attempt++ {
		saved, err := s.recordOnce(ctx, input)
		if err == nil {
			s.metrics.observeRecorded(domain.Grade(input.Grade).IsPassing(), saved.Interval)
			s.log.InfoContext(ctx, "review recorded",
				slog.String("user_id", input.UserID.String()),
				slog.String("kanji", input.Kanji),
				slog.Int("grade", input.Grade),
				slog.Float64("interval", saved.Interval),
				slog.Int("repetition", saved.Repetition),
				slog.Float64("ease_factor", saved.EaseFactor),
				slog.String("due_date", saved.DueDate.Format("2006-01-02")),
			)
			return saved, nil
		}

		if !errors.Is(err, domain.ErrConflict) {
			s.metrics.observeFailure(errorKind(err))
			return nil, fmt.Errorf("record review: %w", err)
		}
		s.metrics.observeConflict()
		if attempt >= s.cfg.MaxWriteAttempts {
			s.metrics.observeFailure("conflict")
			return nil, fmt.Errorf("record review after %d attempts: %w", attempt, err)
		}
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, fmt.Errorf("record review: %w", ctxErr)
		}
		s.log.WarnContext(ctx, "review write conflict, retrying",
			slog.String("user_id", input.UserID.String()),
			slog.String("kanji", input.Kanji),
			slog.Int("attempt", attempt),
		)
	}
}

func (s *Service) recordOnce(ctx context.Context, input RecordReviewInput) (*domain.ReviewItem, error) {
	current, err := s.load(ctx, input.UserID, input.Kanji)
	if err != nil {
		return nil, err
	}

	next := fromSM2(sm2.Schedule(s.cfg.Params, toSM2(current.SchedulingState), sm2.Quality(input.Grade)))
	now := input.Now.UTC()

	item := domain.ReviewItem{
		UserID:          input.UserID,
		Kanji:           input.Kanji,
		SchedulingState: next,
		DueDate:         domain.DueDateFor(now, next.Interval),
		LastReviewedAt:  now,
	}
	return s.repo.Upsert(ctx, item, current.Version)
}

// load returns the stored item or an unsaved item carrying default state
// and version 0.
func (s *Service) load(ctx context.Context, userID uuid.UUID, kanji string) (*domain.ReviewItem, error) {
	item, err := s.repo.Get(ctx, userID, kanji)
	if errors.Is(err, domain.ErrNotFound) {
		return &domain.ReviewItem{
			UserID:          userID,
			Kanji:           kanji,
			SchedulingState: s.defaultState(),
		}, nil
	}
	if err != nil {
		return nil, err
	}
	return item, nil
}

func (s *Service) defaultState() domain.SchedulingState {
	return fromSM2(s.cfg.Params.Initial())
}

func errorKind(err error) string {
	switch {
	case errors.Is(err, domain.ErrStorage):
		return "storage"
	case errors.Is(err, domain.ErrNotFound):
		return "not_found"
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return "context"
	default:
		return "other"
	}
}
