package review

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/kanjilens-backend/internal/domain"
)

// DueQueue returns the items due on or before the current UTC day.
func (s *Service) DueQueue(ctx context.Context, input DueQueueInput) ([]domain.ReviewItem, error) {
	if err := input.Validate(s.cfg.DefaultDueLimit, s.cfg.MaxDueLimit); err != nil {
		return nil, err
	}

	items, err := s.repo.ListDue(ctx, input.UserID, domain.CalendarDay(input.Now), input.Limit)
	if err != nil {
		return nil, fmt.Errorf("list due items: %w", err)
	}
	return items, nil
}

// Stats summarizes a user's review items relative to the current UTC day.
func (s *Service) Stats(ctx context.Context, userID uuid.UUID, now time.Time) (domain.ReviewStats, error) {
	if userID == uuid.Nil {
		return domain.ReviewStats{}, domain.NewValidationError("user_id", "required")
	}

	stats, err := s.repo.Stats(ctx, userID, domain.CalendarDay(now))
	if err != nil {
		return domain.ReviewStats{}, fmt.Errorf("review stats: %w", err)
	}
	return stats, nil
}
