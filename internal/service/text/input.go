package text

import (
	"fmt"
	"unicode/utf8"

	"github.com/heartmarshall/kanjilens-backend/internal/domain"
)

// AnnotateInput is a request to annotate a piece of text.
type AnnotateInput struct {
	Text      string
	Translate bool
}

// Validate normalizes Text and checks its length.
func (i *AnnotateInput) Validate(maxRunes int) error {
	i.Text = domain.NormalizeText(i.Text)
	if i.Text == "" {
		return domain.NewValidationError("text", "required")
	}
	if maxRunes > 0 && utf8.RuneCountInString(i.Text) > maxRunes {
		return domain.NewValidationError("text", fmt.Sprintf("must be at most %d characters", maxRunes))
	}
	return nil
}
