package domain

// RubySegment is a run of surface text with an optional reading.
// Reading is empty for kana and other text that needs no annotation.
type RubySegment struct {
	Text    string
	Reading string
}

// Token is one morpheme of analyzed Japanese text.
type Token struct {
	Surface      string
	Reading      string // hiragana
	BaseForm     string
	PartOfSpeech string
	Segments     []RubySegment
}

// Annotation is the full result of annotating a piece of text.
type Annotation struct {
	Text             string
	Tokens           []Token
	Kanji            []KanjiInfo
	HTML             string
	Translation      string
	TranslationError string
}
