package vector

import (
	"slices"

	"golang.org/x/exp/constraints"
)

// Equal reports whether a and b have the same length and pairwise equal
// elements. Capacities are ignored.
func Equal[T comparable](a, b *Vector[T]) bool {
	return slices.Equal(a.Slice(), b.Slice())
}

// EqualFunc is like Equal using eq to compare elements.
func EqualFunc[T, U any](a *Vector[T], b *Vector[U], eq func(T, U) bool) bool {
	return slices.EqualFunc(a.Slice(), b.Slice(), eq)
}

// Compare compares the elements of a and b lexicographically. A vector that
// is a prefix of the other is less. The result is -1, 0 or +1.
func Compare[T constraints.Ordered](a, b *Vector[T]) int {
	return CompareFunc(a, b, compareOrdered[T])
}

// CompareFunc is like Compare using cmp to compare elements.
func CompareFunc[T any](a, b *Vector[T], cmp func(T, T) int) int {
	return slices.CompareFunc(a.Slice(), b.Slice(), cmp)
}

func Less[T constraints.Ordered](a, b *Vector[T]) bool           { return Compare(a, b) < 0 }
func LessOrEqual[T constraints.Ordered](a, b *Vector[T]) bool    { return Compare(a, b) <= 0 }
func Greater[T constraints.Ordered](a, b *Vector[T]) bool        { return Compare(a, b) > 0 }
func GreaterOrEqual[T constraints.Ordered](a, b *Vector[T]) bool { return Compare(a, b) >= 0 }

func compareOrdered[T constraints.Ordered](x, y T) int {
	switch {
	case x < y:
		return -1
	case x > y:
		return +1
	}
	return 0
}
