// Package ordering holds the display-order rules shared by every orderable
// record: ascending order index inside a parent scope, then an optional
// per-entity tie-break. All sorts are stable, so ties without a tie-break keep
// the order in which the rows were read.
package ordering

import (
	"cmp"
	"slices"
	"strings"
)

// Indexed is implemented by records that carry an order index.
type Indexed interface {
	Index() int
}

// TieBreak orders two records whose indexes are equal.
type TieBreak[T any] func(a, b T) int

// Sort orders items in place by Index ascending, applying tieBreaks in turn
// for equal indexes.
func Sort[T Indexed](items []T, tieBreaks ...TieBreak[T]) {
	slices.SortStableFunc(items, func(a, b T) int {
		if c := cmp.Compare(a.Index(), b.Index()); c != 0 {
			return c
		}
		for _, tb := range tieBreaks {
			if c := tb(a, b); c != 0 {
				return c
			}
		}
		return 0
	})
}

// ByInt builds a tie-break on an integer key, ascending.
func ByInt[T any](key func(T) int) TieBreak[T] {
	return func(a, b T) int {
		return cmp.Compare(key(a), key(b))
	}
}

// ByClockString builds the activity tie-break. Times are compared as raw
// strings, not parsed, so "10:00" sorts before "9:00". A missing time is the
// empty string and therefore sorts ahead of every timed sibling.
func ByClockString[T any](key func(T) string) TieBreak[T] {
	return func(a, b T) int {
		return strings.Compare(key(a), key(b))
	}
}
