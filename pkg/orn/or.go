package orn

import (
	"cmp"
	"slices"
)

// Or0 is the zero-case sum. It has no constructors and no accessors; a value
// of it marks a code path that is never meant to be reached. Go has no
// uninhabited types (every type has a zero value), so unlike the positive
// arities this is a documentation-level guarantee, not a compile-time proof.
type Or0 struct{}

// Index panics: an Or0 has no active case.
func (Or0) Index() int {
	panic("orn: Or0 has no cases")
}

// Arity reports the number of cases.
func (Or0) Arity() int {
	return 0
}

// Indexed is implemented by every sum type in this package.
type Indexed interface {
	Index() int
	Arity() int
}

// SortByIndex reorders rows by ascending active case index, keeping the
// relative order of rows with equal cases. It is the normalization step
// before Or<K>IntoTuple when rows arrive scrambled.
func SortByIndex[S Indexed](rows []S) {
	slices.SortStableFunc(rows, func(a, b S) int {
		return cmp.Compare(a.Index(), b.Index())
	})
}
