// Package buffer provides Buffer, the exclusive owner of one fixed-size block
// of element slots.
//
// A Buffer knows how many slots it holds but not how many are in use; that
// bookkeeping belongs to the container built on top of it.
//
//	buf, err := buffer.New[int](8) // 8 zeroed slots
//	if err != nil {
//	    return err // errors.ErrAllocation or errors.ErrInvalidInput
//	}
//	defer buf.Free()
//
//	*buf.At(0) = 42
//
// # Ownership
//
// Buffers must not be copied by value; go vet reports copies through the
// embedded noCopy marker. Ownership moves with Swap, or leaves the buffer
// entirely with Release, after which the caller is responsible for the block.
// Free releases the block exactly once and is a no-op on an empty buffer, so
// it is safe to defer on every path.
//
// At performs no range check of its own. An index beyond the block still
// panics through the Go runtime, which is the only guard on that path.
package buffer
