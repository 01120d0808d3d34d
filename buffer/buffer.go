package buffer

import (
	"fmt"
	"unsafe"

	"github.com/wippyai/simplevector/errors"
)

// fallbackAllocLimit is the allocation cap when the host memory size is unknown.
const fallbackAllocLimit = 4 << 30

// MaxAllocBytes caps a single allocation. Larger requests fail with an
// allocation error. It defaults to half of the host's physical memory.
// A request under the cap that the host still cannot back is a fatal
// runtime out-of-memory error, not an allocation error.
var MaxAllocBytes = defaultAllocLimit()

func defaultAllocLimit() uint64 {
	if mem := systemMemory(); mem > 0 {
		return mem / 2
	}
	return fallbackAllocLimit
}

// noCopy may be embedded into structs which must not be copied after first use.
// See https://golang.org/issues/8005#issuecomment-190753527
type noCopy struct{}

func (*noCopy) Lock()   {}
func (*noCopy) Unlock() {}

// Buffer exclusively owns a block of slots of T.
// The zero value holds no storage and is ready to use.
type Buffer[T any] struct {
	_    noCopy
	data []T
}

// Sizeof returns the size of T in bytes.
func Sizeof[T any]() uintptr {
	var zero T
	return unsafe.Sizeof(zero)
}

// New allocates a buffer of size zeroed slots. A size of zero holds no storage.
func New[T any](size int) (*Buffer[T], error) {
	data, err := allocate[T](size)
	if err != nil {
		return nil, err
	}
	return &Buffer[T]{data: data}, nil
}

// FromRaw takes ownership of a block allocated elsewhere.
// The caller must not use raw afterwards.
func FromRaw[T any](raw []T) *Buffer[T] {
	if len(raw) == 0 {
		return &Buffer[T]{}
	}
	return &Buffer[T]{data: raw[:len(raw):len(raw)]}
}

func allocate[T any](size int) ([]T, error) {
	if size < 0 {
		return nil, errors.InvalidInput(errors.PhaseAlloc, fmt.Sprintf("negative buffer size %d", size))
	}
	if size == 0 {
		return nil, nil
	}

	elem := Sizeof[T]()
	if elem > 0 && uint64(size) > MaxAllocBytes/uint64(elem) {
		return nil, allocFailed[T](size, elem)
	}
	return make([]T, size), nil
}

func allocFailed[T any](size int, elem uintptr) *errors.Error {
	logAllocFailed(size, elem, MaxAllocBytes)

	err := errors.AllocationFailed(errors.PhaseAlloc, size, elem)
	err.Type = fmt.Sprintf("%T", []T(nil))
	return err
}

// Release hands the block to the caller and leaves the buffer empty.
func (b *Buffer[T]) Release() []T {
	data := b.data
	b.data = nil
	return data
}

// Free releases the block. Slots are zeroed first so the collector does not
// see stale references through outstanding views. Free on an empty buffer is
// a no-op.
func (b *Buffer[T]) Free() {
	if b.data == nil {
		return
	}
	clear(b.data)
	b.data = nil
}

// At returns a pointer to slot i. The caller guarantees 0 <= i < Len().
func (b *Buffer[T]) At(i int) *T {
	return &b.data[i]
}

// Valid reports whether the buffer holds storage.
func (b *Buffer[T]) Valid() bool {
	return b.data != nil
}

// Len returns the number of slots.
func (b *Buffer[T]) Len() int {
	return len(b.data)
}

// Raw returns the whole block without transferring ownership.
func (b *Buffer[T]) Raw() []T {
	return b.data
}

// Slice returns the slots in [lo, hi) without transferring ownership.
func (b *Buffer[T]) Slice(lo, hi int) []T {
	return b.data[lo:hi]
}

// Swap exchanges blocks with other in constant time.
func (b *Buffer[T]) Swap(other *Buffer[T]) {
	b.data, other.data = other.data, b.data
}

// Move transfers src into dst and zeroes the moved-from slots of src.
// It returns the number of elements moved. dst and src must not overlap.
func Move[T any](dst, src []T) int {
	n := copy(dst, src)
	clear(src[:n])
	return n
}
