package text

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/heartmarshall/kanjilens-backend/internal/domain"
)

// Annotate tokenizes the text, resolves metadata for every distinct kanji in
// it and, when requested, translates it. Kanji metadata and translation
// failures are logged and leave gaps in the result; only cancellation and
// invalid input fail the call.
func (s *Service) Annotate(ctx context.Context, input AnnotateInput) (*domain.Annotation, error) {
	if err := input.Validate(s.cfg.MaxRunes); err != nil {
		return nil, err
	}

	tokens := s.annotator.Tokenize(input.Text)
	result := &domain.Annotation{
		Text:   input.Text,
		Tokens: tokens,
		HTML:   s.annotator.Render(tokens),
	}

	var wg sync.WaitGroup
	if input.Translate && s.translator != nil {
		wg.Add(1)
		go func() {
			defer wg.Done()
			s.translate(ctx, result)
		}()
	}

	kanji, err := s.lookupAll(ctx, distinctKanji(input.Text))
	wg.Wait()
	if err != nil {
		return nil, fmt.Errorf("annotate: %w", err)
	}
	result.Kanji = kanji

	s.log.DebugContext(ctx, "text annotated",
		slog.Int("tokens", len(tokens)),
		slog.Int("kanji", len(kanji)),
		slog.Bool("translated", result.Translation != ""),
	)
	return result, nil
}

func (s *Service) translate(ctx context.Context, result *domain.Annotation) {
	out, err := s.translator.Translate(ctx, result.Text)
	if err != nil {
		s.log.WarnContext(ctx, "translation failed", slog.String("error", err.Error()))
		result.TranslationError = "translation unavailable"
		return
	}
	result.Translation = out
}

// lookupAll resolves kanji with bounded concurrency and keeps input order.
// Unknown kanji and provider failures, shared fetch timeouts included, are
// skipped. Only cancellation of ctx aborts the batch.
func (s *Service) lookupAll(ctx context.Context, kanji []string) ([]domain.KanjiInfo, error) {
	infos := make([]*domain.KanjiInfo, len(kanji))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.cfg.LookupConcurrency)
	for i, k := range kanji {
		g.Go(func() error {
			info, err := s.LookupKanji(gctx, k)
			switch {
			case err == nil:
				infos[i] = info
			case gctx.Err() != nil:
				return gctx.Err()
			case errors.Is(err, domain.ErrNotFound):
			default:
				s.log.WarnContext(gctx, "kanji lookup failed", slog.String("kanji", k), slog.String("error", err.Error()))
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	out := make([]domain.KanjiInfo, 0, len(kanji))
	for _, info := range infos {
		if info != nil {
			out = append(out, *info)
		}
	}
	return out, nil
}

// distinctKanji returns the kanji of s in order of first appearance.
func distinctKanji(s string) []string {
	seen := make(map[rune]struct{})
	var out []string
	for _, r := range s {
		if !domain.IsKanji(r) {
			continue
		}
		if _, ok := seen[r]; ok {
			continue
		}
		seen[r] = struct{}{}
		out = append(out, string(r))
	}
	return out
}
