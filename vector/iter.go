package vector

import "iter"

// All returns an iterator over positions and present elements, front to back.
// The vector must not be reallocated while iterating.
func (v *Vector[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i := 0; i < v.size; i++ {
			if !yield(i, *v.items.At(i)) {
				return
			}
		}
	}
}

// Values returns an iterator over present elements, front to back.
func (v *Vector[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for i := 0; i < v.size; i++ {
			if !yield(*v.items.At(i)) {
				return
			}
		}
	}
}

// Backward returns an iterator over positions and present elements, back to
// front.
func (v *Vector[T]) Backward() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i := v.size - 1; i >= 0; i-- {
			if !yield(i, *v.items.At(i)) {
				return
			}
		}
	}
}
