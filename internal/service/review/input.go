package review

import (
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/kanjilens-backend/internal/domain"
)

// RecordReviewInput is one grading event.
type RecordReviewInput struct {
	UserID uuid.UUID
	Kanji  string
	Grade  int
	Now    time.Time
}

// Validate checks the input and normalizes Kanji in place.
func (i *RecordReviewInput) Validate() error {
	var errs []domain.FieldError

	if i.UserID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "user_id", Message: "required"})
	}
	kanji, err := domain.NormalizeKanji(i.Kanji)
	if err != nil {
		errs = append(errs, fieldErrors(err)...)
	} else {
		i.Kanji = kanji
	}
	if !domain.Grade(i.Grade).IsValid() {
		errs = append(errs, domain.FieldError{Field: "grade", Message: "must be an integer between 0 and 5"})
	}
	if i.Now.IsZero() {
		errs = append(errs, domain.FieldError{Field: "now", Message: "required"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// DueQueueInput selects the items a user should review now.
type DueQueueInput struct {
	UserID uuid.UUID
	Limit  int
	Now    time.Time
}

// Validate checks the input against the configured maximum page size.
// A zero Limit is replaced with def.
func (i *DueQueueInput) Validate(def, maxLimit int) error {
	var errs []domain.FieldError

	if i.UserID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "user_id", Message: "required"})
	}
	if i.Limit == 0 {
		i.Limit = def
	}
	if i.Limit < 1 || i.Limit > maxLimit {
		errs = append(errs, domain.FieldError{Field: "limit", Message: "out of range"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

func fieldErrors(err error) []domain.FieldError {
	var ve *domain.ValidationError
	if errors.As(err, &ve) {
		return ve.Errors
	}
	return []domain.FieldError{{Field: "unknown", Message: err.Error()}}
}
