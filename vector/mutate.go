package vector

import (
	"fmt"
	"math"

	"github.com/wippyai/simplevector/buffer"
	"github.com/wippyai/simplevector/errors"
)

// Reserve grows the capacity to exactly n when n exceeds it. Present
// elements are moved into the new storage. Smaller requests are a no-op.
func (v *Vector[T]) Reserve(n int) error {
	if n <= v.capacity {
		return nil
	}
	return v.reallocate("reserve", n, func(dst []T) {
		buffer.Move(dst, v.items.Slice(0, v.size))
	})
}

// PushBack appends item, doubling the capacity when the vector is full.
func (v *Vector[T]) PushBack(item T) error {
	if v.size < v.capacity {
		*v.items.At(v.size) = item
		v.size++
		return nil
	}

	err := v.reallocate("push_back", v.nextCapacity(), func(dst []T) {
		n := buffer.Move(dst, v.items.Slice(0, v.size))
		dst[n] = item
	})
	if err != nil {
		return err
	}
	v.size++
	return nil
}

// Insert places item at pos, shifting the elements at and after pos one slot
// toward the end, and returns pos. pos must be in [Begin(), End()]; it is not
// validated.
func (v *Vector[T]) Insert(pos int, item T) (int, error) {
	if v.size < v.capacity {
		data := v.items.Slice(0, v.size+1)
		copy(data[pos+1:], data[pos:v.size])
		data[pos] = item
		v.size++
		return pos, nil
	}

	err := v.reallocate("insert", v.nextCapacity(), func(dst []T) {
		old := v.items.Slice(0, v.size)
		head, tail := old[:pos], old[pos:]
		buffer.Move(dst[:pos], head)
		dst[pos] = item
		buffer.Move(dst[pos+1:], tail)
	})
	if err != nil {
		return 0, err
	}
	v.size++
	return pos, nil
}

// PopBack drops the last element. The vector must not be empty.
// The slot keeps its value until it is overwritten.
func (v *Vector[T]) PopBack() {
	v.size--
}

// Erase removes the element at pos, shifting the following elements one slot
// toward the front, and returns pos, which now holds the next element.
// pos must be in [Begin(), End()); it is not validated. Capacity is unchanged.
func (v *Vector[T]) Erase(pos int) int {
	data := v.items.Slice(0, v.size)
	copy(data[pos:], data[pos+1:])

	var zero T
	data[v.size-1] = zero
	v.size--
	return pos
}

// Clear drops all elements. Capacity and storage are kept.
func (v *Vector[T]) Clear() {
	v.size = 0
}

// Resize sets the number of present elements to n. Shrinking only moves the
// end; growing within capacity zeroes the new slots; growing beyond capacity
// reallocates to max(2*Cap(), n).
//
// A failure while reallocating leaves v unchanged.
func (v *Vector[T]) Resize(n int) error {
	switch {
	case n < 0:
		return errors.InvalidInput(errors.PhaseGrow, fmt.Sprintf("negative size %d", n))
	case n <= v.size:
		v.size = n
	case n <= v.capacity:
		clear(v.items.Slice(v.size, n))
		v.size = n
	default:
		newCap := max(v.doubled(), n)
		err := v.reallocate("resize", newCap, func(dst []T) {
			buffer.Move(dst, v.items.Slice(0, v.size))
		})
		if err != nil {
			return err
		}
		v.size = n
	}
	return nil
}

func (v *Vector[T]) doubled() int {
	if v.capacity > math.MaxInt/2 {
		return math.MaxInt
	}
	return v.capacity * 2
}

func (v *Vector[T]) nextCapacity() int {
	return max(1, v.doubled())
}

// reallocate replaces the storage with a fresh block of newCap slots.
// migrate moves the present elements into the new block, which zeroes them
// in the old one; the old block's remaining stale slots are cleared before it
// is dropped. Nothing is touched when the allocation fails.
func (v *Vector[T]) reallocate(op string, newCap int, migrate func(dst []T)) error {
	nb, err := buffer.New[T](newCap)
	if err != nil {
		return errors.Wrap(errors.PhaseGrow, kindOf(err), err, fmt.Sprintf("%s to %d slots", op, newCap))
	}

	migrate(nb.Raw())
	v.items.Swap(nb)
	if old := nb.Release(); len(old) > v.size {
		clear(old[v.size:])
	}

	logGrow(op, v.capacity, newCap, v.size)
	v.capacity = newCap
	v.grows++
	return nil
}
