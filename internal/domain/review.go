package domain

import (
	"time"

	"github.com/google/uuid"
)

// Default scheduling values for a kanji that has never been graded.
const (
	DefaultEaseFactor = 2.5
	MinEaseFactor     = 1.3
)

// Grade is the self-assessed recall quality of one review, 0 (blackout) to 5 (perfect).
type Grade int

const (
	GradeBlackout  Grade = 0
	GradeIncorrect Grade = 1
	GradeHard      Grade = 2
	GradeDifficult Grade = 3
	GradeGood      Grade = 4
	GradePerfect   Grade = 5
)

// IsValid reports whether the grade is within 0..5.
func (g Grade) IsValid() bool { return g >= GradeBlackout && g <= GradePerfect }

// IsPassing reports whether the grade counts as a successful recall.
func (g Grade) IsPassing() bool { return g >= GradeDifficult }

// SchedulingState is the mutable part of a review item.
type SchedulingState struct {
	Interval   float64 // days; 0 before the first review
	Repetition int     // consecutive passing reviews since the last lapse
	EaseFactor float64
}

// DefaultSchedulingState is the state of an item that has no stored row.
func DefaultSchedulingState() SchedulingState {
	return SchedulingState{Interval: 0, Repetition: 0, EaseFactor: DefaultEaseFactor}
}

// ReviewItem is the persisted spaced-repetition record of one kanji for one user.
type ReviewItem struct {
	UserID uuid.UUID
	Kanji  string
	SchedulingState
	DueDate        time.Time
	LastReviewedAt time.Time
	Version        int64
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// IsDue reports whether the item should be presented on the given day.
func (r *ReviewItem) IsDue(now time.Time) bool {
	return !r.DueDate.After(CalendarDay(now))
}

// ReviewStats aggregates a user's review items.
type ReviewStats struct {
	Total       int
	DueToday    int
	Lapsed      int
	AverageEase float64
}

// CalendarDay truncates t to midnight UTC of its UTC calendar date.
func CalendarDay(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// DueDateFor returns the calendar date interval whole days after now.
// Fractional days are truncated.
func DueDateFor(now time.Time, interval float64) time.Time {
	days := 0
	if interval > 0 {
		days = int(interval)
	}
	return CalendarDay(now).AddDate(0, 0, days)
}
