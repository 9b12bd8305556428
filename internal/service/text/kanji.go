package text

import (
	"context"
	"fmt"

	"github.com/heartmarshall/kanjilens-backend/internal/domain"
)

// LookupKanji returns dictionary metadata for a single kanji. Results are
// cached and concurrent lookups of the same kanji share one upstream call.
//
// The shared call is detached from the caller's cancellation and bounded by
// Config.LookupTimeout instead, so one cancelled request does not fail the
// others waiting on it. A cancelled caller stops waiting immediately.
func (s *Service) LookupKanji(ctx context.Context, kanji string) (*domain.KanjiInfo, error) {
	kanji, err := domain.NormalizeKanji(kanji)
	if err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("lookup kanji %s: %w", kanji, err)
	}

	if info, ok := s.cache.Get(kanji); ok {
		return &info, nil
	}

	ch := s.lookups.DoChan(kanji, func() (any, error) {
		if info, ok := s.cache.Get(kanji); ok {
			return info, nil
		}
		fetchCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), s.cfg.LookupTimeout)
		defer cancel()

		info, err := s.kanji.FetchKanji(fetchCtx, kanji)
		if err != nil {
			return nil, err
		}
		if info == nil {
			return nil, domain.ErrNotFound
		}
		s.cache.Add(kanji, *info)
		return *info, nil
	})

	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("lookup kanji %s: %w", kanji, ctx.Err())
	case res := <-ch:
		if res.Err != nil {
			return nil, fmt.Errorf("lookup kanji %s: %w", kanji, res.Err)
		}
		info := res.Val.(domain.KanjiInfo)
		return &info, nil
	}
}
