// Package visible maps the numbers shown to the user back to positions in the
// stored collection.
//
// Listings number only the entries the user can see: completed entries are
// hidden unless show-all is set. Commands that take a number must derive the
// same visibility to pick the right record.
package visible

import (
	"fmt"

	"tableflip.dev/ironlist/pkg/entry"
)

// RangeError reports a display number outside the visible entries.
type RangeError struct {
	Index   int
	Visible int
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("index out of range: %d (there are %d visible entries)", e.Index, e.Visible)
}

// Indices returns the absolute positions of the visible entries, in order.
func Indices(entries []*entry.Entry, showAll bool) []int {
	idx := make([]int, 0, len(entries))
	for i, e := range entries {
		if showAll || !e.IsComplete() {
			idx = append(idx, i)
		}
	}
	return idx
}

// Resolve maps the 1-based display number n to an absolute position.
func Resolve(entries []*entry.Entry, showAll bool, n int) (int, error) {
	idx := Indices(entries, showAll)
	if n < 1 || n > len(idx) {
		return 0, &RangeError{Index: n, Visible: len(idx)}
	}
	return idx[n-1], nil
}

// Numbers returns the display number of every visible entry keyed by its
// absolute position.
func Numbers(entries []*entry.Entry, showAll bool) map[int]int {
	idx := Indices(entries, showAll)
	numbers := make(map[int]int, len(idx))
	for n, i := range idx {
		numbers[i] = n + 1
	}
	return numbers
}
