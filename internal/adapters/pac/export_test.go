package pac

import "time"

// WithClock replaces the time source used by weekdayRange.
func (e *Evaluator) WithClock(now func() time.Time) *Evaluator {
	e.now = now
	return e
}
