package review

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/kanjilens-backend/internal/domain"
)

// memRepo is an in-memory reviewRepo with the same versioning rules as the
// PostgreSQL upsert.
type memRepo struct {
	mu    sync.Mutex
	items map[string]domain.ReviewItem
}

func newMemRepo() *memRepo {
	return &memRepo{items: make(map[string]domain.ReviewItem)}
}

func memKey(userID uuid.UUID, kanji string) string { return userID.String() + "/" + kanji }

func (r *memRepo) Get(_ context.Context, userID uuid.UUID, kanji string) (*domain.ReviewItem, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	it, ok := r.items[memKey(userID, kanji)]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &it, nil
}

func (r *memRepo) Upsert(_ context.Context, item domain.ReviewItem, expected int64) (*domain.ReviewItem, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	k := memKey(item.UserID, item.Kanji)
	cur, ok := r.items[k]
	switch {
	case !ok:
		item.Version = 1
		item.CreatedAt = item.LastReviewedAt
	case cur.Version != expected:
		return nil, domain.ErrConflict
	default:
		item.Version = cur.Version + 1
		item.CreatedAt = cur.CreatedAt
	}
	item.UpdatedAt = item.LastReviewedAt
	r.items[k] = item
	return &item, nil
}

func (r *memRepo) ListDue(_ context.Context, userID uuid.UUID, today time.Time, limit int) ([]domain.ReviewItem, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []domain.ReviewItem
	for _, it := range r.items {
		if it.UserID == userID && !it.DueDate.After(today) && len(out) < limit {
			out = append(out, it)
		}
	}
	return out, nil
}

func (r *memRepo) Stats(context.Context, uuid.UUID, time.Time) (domain.ReviewStats, error) {
	return domain.ReviewStats{}, nil
}

func (r *memRepo) len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.items)
}
