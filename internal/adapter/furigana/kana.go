package furigana

import (
	"strings"

	"github.com/heartmarshall/kanjilens-backend/internal/domain"
)

const (
	katakanaFirst = 'ァ'
	katakanaLast  = 'ヶ'
	kanaOffset    = 'ァ' - 'ぁ'
	iterationMark = '々'
)

// ToHiragana converts katakana to hiragana and leaves everything else,
// including the prolonged sound mark, unchanged.
func ToHiragana(s string) string {
	return strings.Map(func(r rune) rune {
		if r >= katakanaFirst && r <= katakanaLast {
			return r - kanaOffset
		}
		return r
	}, s)
}

func isKanjiLike(r rune) bool {
	return domain.IsKanji(r) || r == iterationMark
}

// run is a maximal stretch of surface text that is either all kanji or
// contains none.
type run struct {
	text  string
	kanji bool
}

func splitRuns(s string) []run {
	var runs []run
	var cur strings.Builder
	curKanji := false

	for i, r := range s {
		k := isKanjiLike(r)
		if i > 0 && k != curKanji {
			runs = append(runs, run{text: cur.String(), kanji: curKanji})
			cur.Reset()
		}
		curKanji = k
		cur.WriteRune(r)
	}
	if cur.Len() > 0 {
		runs = append(runs, run{text: cur.String(), kanji: curKanji})
	}
	return runs
}

// Align distributes reading over the kanji runs of surface so that okurigana
// and other kana stay unannotated: 食べる/たべる gives 食(た) べる.
// When the reading cannot be matched the whole surface carries it.
func Align(surface, reading string) []domain.RubySegment {
	if surface == "" {
		return nil
	}
	if reading == "" || !strings.ContainsFunc(surface, isKanjiLike) {
		return []domain.RubySegment{{Text: surface}}
	}

	runs := splitRuns(surface)
	readings, ok := match(runs, []rune(reading))
	if !ok {
		return []domain.RubySegment{{Text: surface, Reading: reading}}
	}

	segs := make([]domain.RubySegment, len(runs))
	for i, r := range runs {
		segs[i] = domain.RubySegment{Text: r.text}
		if r.kanji {
			segs[i].Reading = readings[i]
		}
	}
	return segs
}

// match assigns a non-empty slice of reading to every kanji run and checks
// that kana runs appear verbatim (compared as hiragana). It backtracks when
// the same kana occur both inside a kanji reading and as okurigana.
func match(runs []run, reading []rune) ([]string, bool) {
	if len(runs) == 0 {
		return nil, len(reading) == 0
	}

	head := runs[0]
	if !head.kanji {
		kana := []rune(ToHiragana(head.text))
		if len(reading) < len(kana) || string(reading[:len(kana)]) != string(kana) {
			return nil, false
		}
		rest, ok := match(runs[1:], reading[len(kana):])
		if !ok {
			return nil, false
		}
		return append([]string{""}, rest...), true
	}

	if len(runs) == 1 {
		if len(reading) == 0 {
			return nil, false
		}
		return []string{string(reading)}, true
	}

	for n := 1; n <= len(reading); n++ {
		rest, ok := match(runs[1:], reading[n:])
		if ok {
			return append([]string{string(reading[:n])}, rest...), true
		}
	}
	return nil, false
}
