// Package vector implements Vector, a growable contiguous sequence layered on
// an exclusively owned buffer.
//
// # Construction
//
//	v := vector.New[int]()                               // empty, no storage
//	v, err := vector.WithSize[int](8)                    // 8 zero values
//	v, err := vector.Filled(3, "x")                      // 3 copies of "x"
//	v, err := vector.Of(10, 20, 30)                      // exactly 3 slots
//	v, err := vector.WithReservation[int](vector.Reserve(64)) // cap 64, len 0
//
// # Growth
//
// When an operation needs more slots than Cap provides, the vector allocates
// a new buffer, moves the present elements into it and frees the old one.
// PushBack and Insert double the capacity (starting from 1). Resize beyond
// the capacity grows to max(2*Cap, n) so the request is met in one step.
// Reserve grows to exactly the requested capacity. Capacity never shrinks.
//
// Pointers from Ref, slices from Slice and running iterators are invalidated
// by any of these reallocations.
//
// # Access
//
// At and AtRef are checked and return errors.ErrOutOfRange for positions
// outside [0, Len()). Get, Ref, Set, Front and Back are unchecked: the caller
// guarantees the position, and a position past Len but within Cap reads a
// stale slot. Insert, Erase and PopBack take positions on the same terms.
//
// # Copying and moving
//
// Vectors are not copied by assignment. Clone and Assign copy element by
// element, calling Clone on payloads that implement simplevector.Cloner, so a
// payload that refuses copies surfaces as errors.ErrCopyFailed. Assign builds
// the copy before swapping it in and leaves the target intact on failure.
// Take, MoveFrom and Swap transfer ownership and never copy elements; neither
// do PushBack, Insert, Erase or any reallocation.
//
// Only the construction paths and Assign are failure-atomic. If a reallocation
// is interrupted by a panic in the middle of migrating elements, the vector
// may be left with some elements moved out.
//
// # Comparison
//
// Equal and Compare work for comparable and ordered element types; EqualFunc
// and CompareFunc take explicit element comparators. Ordering is
// lexicographic.
package vector
