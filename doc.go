// Package simplevector provides a growable contiguous sequence built from first
// principles on an exclusively owned storage block.
//
// # Architecture Overview
//
// The module is organized into layered packages:
//
//	simplevector/        Root package with the Cloner and Sequence interfaces
//	├── buffer/          Owned Buffer: one fixed-size block with a single owner
//	├── vector/          Growable Sequence: size/capacity bookkeeping over a buffer
//	├── errors/          Structured error types
//	└── cmd/simplevector Scenario driver and interactive playground
//
// # Quick Start
//
//	v := vector.New[int]()
//	defer v.Free()
//
//	for i := range 3 {
//	    if err := v.PushBack(i + 1); err != nil {
//	        log.Fatal(err)
//	    }
//	}
//	fmt.Println(v.Len(), v.Cap()) // 3 4
//
//	x, err := v.At(5) // errors.ErrOutOfRange
//
// # Ownership
//
// A Vector owns its buffer exclusively. Values must not be copied with plain
// assignment; use Clone or Assign for deep copies and Take, MoveFrom or Swap to
// transfer ownership. After a transfer the source is empty.
//
// Growth doubles the capacity and moves elements into the new block; moved-from
// slots are zeroed. Copies happen only in the copying operations and go through
// Cloner when the element type implements it.
package simplevector
