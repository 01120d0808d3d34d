package vector

import "cmp"

// Equal reports whether a and b hold the same elements in the same order.
func Equal[T comparable](a, b *Vector[T]) bool {
	return EqualFunc(a, b, func(x, y T) bool { return x == y })
}

// NotEqual is the negation of Equal.
func NotEqual[T comparable](a, b *Vector[T]) bool {
	return !Equal(a, b)
}

// EqualFunc is like Equal but compares elements with eq.
func EqualFunc[T any](a, b *Vector[T], eq func(T, T) bool) bool {
	if a.size != b.size {
		return false
	}
	for i := range a.size {
		if !eq(a.Get(i), b.Get(i)) {
			return false
		}
	}
	return true
}

// Compare orders a and b lexicographically. It returns -1, 0 or +1.
// When one vector is a prefix of the other the shorter one is smaller.
func Compare[T cmp.Ordered](a, b *Vector[T]) int {
	return CompareFunc(a, b, cmp.Compare[T])
}

// CompareFunc is like Compare but orders elements with compare, whose sign
// is returned for the first differing pair.
func CompareFunc[T any](a, b *Vector[T], compare func(T, T) int) int {
	n := min(a.size, b.size)
	for i := range n {
		if c := compare(a.Get(i), b.Get(i)); c != 0 {
			return c
		}
	}
	return cmp.Compare(a.size, b.size)
}

// Less reports whether a orders before b.
func Less[T cmp.Ordered](a, b *Vector[T]) bool {
	return Compare(a, b) < 0
}

// LessEqual reports whether b does not order before a.
func LessEqual[T cmp.Ordered](a, b *Vector[T]) bool {
	return !Less(b, a)
}

// Greater reports whether a orders after b.
func Greater[T cmp.Ordered](a, b *Vector[T]) bool {
	return !LessEqual(a, b)
}

// GreaterEqual reports whether a does not order before b.
func GreaterEqual[T cmp.Ordered](a, b *Vector[T]) bool {
	return !Less(a, b)
}
