package date

import (
	"fmt"
	"iter"
)

// Range represents a range of dates.
type Range struct{ From, To Date }

// NewRange creates a new date range. If 'from' is after 'to', they are swapped.
func NewRange(from, to Date) Range {
	if from.After(to) {
		from, to = to, from
	}
	return Range{From: from, To: to}
}

// MonthRange returns the range covering whole months, from the first day of from's month to
// the last day of to's month.
func MonthRange(from, to Date) Range {
	r := NewRange(from, to)
	return Range{From: r.From.StartOfMonth(), To: r.To.EndOfMonth()}
}

// Contains return true date is included in the range (boundaries included)
func (r Range) Contains(date Date) bool { return !date.Before(r.From) && !date.After(r.To) }

// Months iterates over the first day of every calendar month touched by the range, in order.
func (r Range) Months() iter.Seq[Date] {
	return func(yield func(Date) bool) {
		last := r.To.StartOfMonth()
		for m := r.From.StartOfMonth(); !m.After(last); m = m.AddMonth(1) {
			if !yield(m) {
				return
			}
		}
	}
}

// String returns "from_to".
func (r Range) String() string { return fmt.Sprintf("%s_%s", r.From, r.To) }
