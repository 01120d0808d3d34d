package vector

import (
	"fmt"

	"github.com/wippyai/simplevector"
	"github.com/wippyai/simplevector/buffer"
	"github.com/wippyai/simplevector/errors"
)

var _ simplevector.Sequence[int] = (*Vector[int])(nil)

// Vector is a growable contiguous sequence of T.
//
// Elements in [0, Len()) are present. Slots in [Len(), Cap()) are allocated
// but hold zero or stale values. A Vector exclusively owns its storage and
// must not be copied by value.
type Vector[T any] struct {
	items    buffer.Buffer[T]
	size     int
	capacity int
	grows    int
}

// New returns an empty vector with no storage.
func New[T any]() *Vector[T] {
	return &Vector[T]{}
}

// WithSize returns a vector of n zero values with capacity n.
func WithSize[T any](n int) (*Vector[T], error) {
	v := &Vector[T]{}
	if err := v.init(n); err != nil {
		return nil, err
	}
	v.size = n
	return v, nil
}

// Filled returns a vector of n copies of value with capacity n.
func Filled[T any](n int, value T) (*Vector[T], error) {
	v := &Vector[T]{}
	if err := v.init(n); err != nil {
		return nil, err
	}
	if err := fillElems(v.items.Raw(), value); err != nil {
		v.Free()
		return nil, err
	}
	v.size = n
	return v, nil
}

// Of returns a vector holding copies of items in order, with capacity
// exactly len(items).
func Of[T any](items ...T) (*Vector[T], error) {
	v := &Vector[T]{}
	if err := v.init(len(items)); err != nil {
		return nil, err
	}
	if err := copyElems(v.items.Raw(), items); err != nil {
		v.Free()
		return nil, err
	}
	v.size = len(items)
	return v, nil
}

// WithReservation returns an empty vector whose capacity is the reserved
// amount.
func WithReservation[T any](r Reservation) (*Vector[T], error) {
	v := &Vector[T]{}
	if err := v.init(r.capacity); err != nil {
		return nil, err
	}
	return v, nil
}

func (v *Vector[T]) init(n int) error {
	b, err := buffer.New[T](n)
	if err != nil {
		return errors.Wrap(errors.PhaseConstruct, kindOf(err), err, fmt.Sprintf("construct with %d slots", n))
	}
	v.items.Swap(b)
	v.capacity = n
	return nil
}

// Clone returns a copy with the same capacity and element-wise copies of the
// present elements. Elements are copied through Cloner when T implements it.
func (v *Vector[T]) Clone() (*Vector[T], error) {
	c := &Vector[T]{}
	if err := c.init(v.capacity); err != nil {
		return nil, err
	}
	if err := copyElems(c.items.Slice(0, v.size), v.items.Slice(0, v.size)); err != nil {
		c.Free()
		return nil, err
	}
	c.size = v.size
	return c, nil
}

// Assign replaces the contents of v with a copy of src. The copy is built
// first and swapped in afterwards, so v is left unchanged when copying fails.
func (v *Vector[T]) Assign(src *Vector[T]) error {
	if v == src {
		return nil
	}
	tmp, err := src.Clone()
	if err != nil {
		return err
	}
	v.Swap(tmp)
	tmp.Free()
	return nil
}

// Take transfers the contents of v to a new vector. v is left empty.
func (v *Vector[T]) Take() *Vector[T] {
	t := &Vector[T]{}
	t.Swap(v)
	return t
}

// MoveFrom replaces the contents of v with those of src and leaves src empty.
func (v *Vector[T]) MoveFrom(src *Vector[T]) {
	tmp := src.Take()
	v.Swap(tmp)
	tmp.Free()
}

// Swap exchanges the contents of v and other without copying elements.
func (v *Vector[T]) Swap(other *Vector[T]) {
	v.items.Swap(&other.items)
	v.size, other.size = other.size, v.size
	v.capacity, other.capacity = other.capacity, v.capacity
	v.grows, other.grows = other.grows, v.grows
}

// Free releases the storage. The vector is empty afterwards and may be reused.
func (v *Vector[T]) Free() {
	v.items.Free()
	v.size = 0
	v.capacity = 0
	v.grows = 0
}

// Len returns the number of present elements.
func (v *Vector[T]) Len() int {
	return v.size
}

// Cap returns the number of allocated slots.
func (v *Vector[T]) Cap() int {
	return v.capacity
}

// IsEmpty reports whether no element is present.
func (v *Vector[T]) IsEmpty() bool {
	return v.size == 0
}

// At returns the element at i, or an out-of-range error when i is not in
// [0, Len()).
func (v *Vector[T]) At(i int) (T, error) {
	p, err := v.AtRef(i)
	if err != nil {
		var zero T
		return zero, err
	}
	return *p, nil
}

// AtRef is the checked counterpart of Ref.
func (v *Vector[T]) AtRef(i int) (*T, error) {
	if i < 0 || i >= v.size {
		return nil, errors.OutOfRange(errors.PhaseAccess, i, v.size)
	}
	return v.items.At(i), nil
}

// Get returns the element at i without checking i against Len.
// The caller guarantees 0 <= i < Len(); indexes up to Cap() read stale slots
// and anything beyond panics.
func (v *Vector[T]) Get(i int) T {
	return *v.items.At(i)
}

// Ref returns a pointer to the element at i without checking i against Len.
// The pointer is invalidated by the next reallocation.
func (v *Vector[T]) Ref(i int) *T {
	return v.items.At(i)
}

// Set stores x at i without checking i against Len.
func (v *Vector[T]) Set(i int, x T) {
	*v.items.At(i) = x
}

// Front returns the first element. The vector must not be empty.
func (v *Vector[T]) Front() T {
	return v.Get(0)
}

// Back returns the last element. The vector must not be empty.
func (v *Vector[T]) Back() T {
	return v.Get(v.size - 1)
}

// Begin returns the position of the first element.
func (v *Vector[T]) Begin() int {
	return 0
}

// End returns the position one past the last element.
func (v *Vector[T]) End() int {
	return v.size
}

// Slice returns the present elements. The slice aliases the vector's storage
// and is valid until the next reallocation.
func (v *Vector[T]) Slice() []T {
	return v.items.Slice(0, v.size)
}

func (v *Vector[T]) String() string {
	return fmt.Sprint(v.Slice())
}

func kindOf(err error) errors.Kind {
	if e, ok := err.(*errors.Error); ok {
		return e.Kind
	}
	return errors.KindAllocation
}
