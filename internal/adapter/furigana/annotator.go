// Package furigana analyzes Japanese text into morphemes with kana readings.
package furigana

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/ikawaha/kagome-dict/ipa"
	"github.com/ikawaha/kagome/v2/tokenizer"

	"github.com/heartmarshall/kanjilens-backend/internal/domain"
)

// Annotator wraps a kagome tokenizer loaded with the IPA dictionary.
// The tokenizer is safe for concurrent use.
type Annotator struct {
	tok *tokenizer.Tokenizer
	log *slog.Logger
}

// New loads the dictionary and builds the tokenizer. Loading takes a while
// and should happen once at startup.
func New(log *slog.Logger) (*Annotator, error) {
	tok, err := tokenizer.New(ipa.Dict(), tokenizer.OmitBosEos())
	if err != nil {
		return nil, fmt.Errorf("furigana: create tokenizer: %w", err)
	}
	return &Annotator{tok: tok, log: log.With("adapter", "furigana")}, nil
}

// Tokenize splits text into tokens with hiragana readings and ruby segments.
func (a *Annotator) Tokenize(text string) []domain.Token {
	raw := a.tok.Tokenize(text)
	tokens := make([]domain.Token, 0, len(raw))

	for _, t := range raw {
		if t.Class == tokenizer.DUMMY {
			continue
		}
		tok := domain.Token{Surface: t.Surface}

		if pos := t.POS(); len(pos) > 0 && pos[0] != "*" {
			tok.PartOfSpeech = pos[0]
		}
		if base, ok := t.BaseForm(); ok && base != "*" {
			tok.BaseForm = base
		}
		if reading, ok := t.Reading(); ok && reading != "*" {
			tok.Reading = ToHiragana(reading)
		}

		tok.Segments = Align(tok.Surface, tok.Reading)
		tokens = append(tokens, tok)
	}
	a.log.Debug("text tokenized", slog.Int("runes", len([]rune(text))), slog.Int("tokens", len(tokens)))
	return tokens
}

// Render is HTML bound to the annotator.
func (a *Annotator) Render(tokens []domain.Token) string {
	return HTML(tokens)
}

// HTML renders tokens as HTML with <ruby> annotations over kanji.
// All text is escaped.
func HTML(tokens []domain.Token) string {
	var b strings.Builder
	for _, t := range tokens {
		for _, seg := range t.Segments {
			if seg.Reading == "" {
				b.WriteString(escape(seg.Text))
				continue
			}
			b.WriteString("<ruby>")
			b.WriteString(escape(seg.Text))
			b.WriteString("<rp>(</rp><rt>")
			b.WriteString(escape(seg.Reading))
			b.WriteString("</rt><rp>)</rp></ruby>")
		}
	}
	return b.String()
}

var htmlEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&#34;",
	"'", "&#39;",
	"\n", "<br>",
)

func escape(s string) string { return htmlEscaper.Replace(s) }
