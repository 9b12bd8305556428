package domain

import (
	"strings"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"
)

// CJK ideograph ranges accepted as a review key.
const (
	cjkUnifiedFirst = 0x4E00
	cjkUnifiedLast  = 0x9FFF
	cjkExtAFirst    = 0x3400
	cjkExtALast     = 0x4DBF
)

// IsKanji reports whether r lies in the CJK Unified Ideographs block
// or its Extension A.
func IsKanji(r rune) bool {
	return (r >= cjkUnifiedFirst && r <= cjkUnifiedLast) ||
		(r >= cjkExtAFirst && r <= cjkExtALast)
}

// ContainsKanji reports whether s has at least one kanji.
func ContainsKanji(s string) bool {
	return strings.IndexFunc(s, IsKanji) >= 0
}

// NormalizeKanji validates that s is exactly one kanji and returns its NFC form.
// Compatibility ideographs fold to their unified counterparts so that both
// spellings address the same review item.
func NormalizeKanji(s string) (string, error) {
	s = norm.NFC.String(strings.TrimSpace(s))
	if s == "" {
		return "", NewValidationError("kanji", "required")
	}
	if utf8.RuneCountInString(s) != 1 {
		return "", NewValidationError("kanji", "must be a single character")
	}
	r, _ := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError || !IsKanji(r) {
		return "", NewValidationError("kanji", "must be a CJK ideograph")
	}
	return s, nil
}

// KanjiInfo is dictionary metadata for a single kanji.
type KanjiInfo struct {
	Kanji        string
	Meanings     []string
	OnReadings   []string
	KunReadings  []string
	NameReadings []string
	Grade        *int
	JLPT         *int
	StrokeCount  int
	Unicode      string
	HeisigEN     string
}
