package search

import (
	"errors"
	"fmt"
)

// NotFound is the index reported together with found == false.
const NotFound = -1

// Sentinel errors for Search.
var (
	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("search: invalid option supplied")

	// ErrBoundsOutOfRange is returned when the bounds window ends past the slice.
	ErrBoundsOutOfRange = errors.New("search: bounds out of range")

	// ErrNilComparator is returned when Search is called without a comparator.
	ErrNilComparator = errors.New("search: comparator is nil")
)

// Option configures Search via functional arguments.
// An invalid Option is recorded and surfaced as ErrOptionViolation
// when Search is invoked.
type Option func(*SearchOptions)

// SearchOptions holds the window and callbacks of a single Search call.
type SearchOptions struct {
	// Start and End delimit the half-open window [Start, End).
	// End < 0 means "up to len(seq)".
	Start int
	End   int

	// OnCompare is called after every probe with the probed index and
	// the comparator result (<0, 0, >0).
	OnCompare func(index int, cmp int)

	err error
}

// DefaultOptions returns SearchOptions covering the whole slice
// with a no-op OnCompare hook.
func DefaultOptions() SearchOptions {
	return SearchOptions{
		Start:     0,
		End:       -1,
		OnCompare: func(int, int) {},
	}
}

// WithBounds restricts the search to the half-open window [start, end).
//
//	start < 0 or end < start: ErrOptionViolation
//	end > len(seq):           ErrBoundsOutOfRange (checked by Search)
func WithBounds(start, end int) Option {
	return func(o *SearchOptions) {
		switch {
		case start < 0:
			o.err = fmt.Errorf("%w: start cannot be negative (%d)", ErrOptionViolation, start)
		case end < start:
			o.err = fmt.Errorf("%w: end %d precedes start %d", ErrOptionViolation, end, start)
		default:
			o.Start, o.End = start, end
		}
	}
}

// WithOnCompare registers a callback run after each probe.
func WithOnCompare(fn func(index int, cmp int)) Option {
	return func(o *SearchOptions) {
		if fn != nil {
			o.OnCompare = fn
		}
	}
}

// Result is the outcome of Search.
//   - Index:       matching index, or NotFound.
//   - Found:       whether the target is present in the window.
//   - Comparisons: number of probes performed.
type Result struct {
	Index       int
	Found       bool
	Comparisons int
}
