// Package sm2 implements the SuperMemo-2 scheduling rule used for kanji reviews.
package sm2

import "math"

// Quality is the recall grade of a single review, 0..5.
type Quality int

// State is the per-item scheduling state carried between reviews.
type State struct {
	Interval   float64
	Repetition int
	EaseFactor float64
}

// Parameters holds the tunable constants of the algorithm.
type Parameters struct {
	InitialEase    float64
	MinEase        float64
	PassingQuality Quality
	FirstInterval  float64
	SecondInterval float64
}

// DefaultParameters returns the classic SM-2 constants.
func DefaultParameters() Parameters {
	return Parameters{
		InitialEase:    2.5,
		MinEase:        1.3,
		PassingQuality: 3,
		FirstInterval:  1,
		SecondInterval: 6,
	}
}

// Initial returns the state of an item that has never been reviewed.
func (p Parameters) Initial() State {
	return State{Interval: 0, Repetition: 0, EaseFactor: p.InitialEase}
}

// EaseDelta is the SM-2 ease adjustment for quality q.
//
//	delta = 0.1 - (5-q) * (0.08 + (5-q) * 0.02)
func EaseDelta(q Quality) float64 {
	miss := float64(5 - q)
	return 0.1 - miss*(0.08+miss*0.02)
}

// Schedule computes the state after one review of quality q.
// q must already be range-checked by the caller.
//
// A failed review (q below PassingQuality) resets the repetition count and
// schedules the item for the next day. A passing review increments it; the
// third and later intervals grow by the ease factor the item carried into
// this review.
func Schedule(p Parameters, s State, q Quality) State {
	ease := nextEase(p, s.EaseFactor, q)

	if q < p.PassingQuality {
		return State{Interval: p.FirstInterval, Repetition: 0, EaseFactor: ease}
	}

	next := State{Repetition: s.Repetition + 1, EaseFactor: ease}
	switch next.Repetition {
	case 1:
		next.Interval = p.FirstInterval
	case 2:
		next.Interval = p.SecondInterval
	default:
		next.Interval = math.Round(s.Interval * s.EaseFactor)
	}
	return next
}

func nextEase(p Parameters, ease float64, q Quality) float64 {
	// Deltas are multiples of 0.01; rounding drops accumulated float error.
	e := math.Round((ease+EaseDelta(q))*100) / 100
	return math.Max(p.MinEase, e)
}
