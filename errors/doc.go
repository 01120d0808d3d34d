// Package errors provides structured error types for the simplevector module.
//
// Errors are categorized by Phase (which operation failed) and Kind (error category).
// The Error type carries the Go element type, the offending value and a cause chain.
//
// Use the Builder for structured error construction:
//
//	err := errors.New(errors.PhaseAlloc, errors.KindAllocation).
//		Type("[]int64").
//		Value(n).
//		Detail("request exceeds %d bytes", limit).
//		Build()
//
// Or use convenience constructors for common patterns:
//
//	err := errors.OutOfRange(errors.PhaseAccess, 10, 5)
//	err := errors.AllocationFailed(errors.PhaseAlloc, n, 8)
//
// All errors implement the standard error interface and support errors.Is/As.
// The package-level matchers (ErrOutOfRange, ErrAllocation, ...) match by Kind
// regardless of Phase:
//
//	if errors.Is(err, errors.ErrOutOfRange) { ... }
package errors
