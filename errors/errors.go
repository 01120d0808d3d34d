package errors

import (
	"fmt"
	"strings"
)

// Phase indicates which container operation produced the error
type Phase string

const (
	PhaseAlloc     Phase = "alloc"     // buffer allocation
	PhaseConstruct Phase = "construct" // vector construction
	PhaseAccess    Phase = "access"    // checked element access
	PhaseCopy      Phase = "copy"      // element copying (clone, assign)
	PhaseGrow      Phase = "grow"      // reallocation and migration
	PhaseParse     Phase = "parse"     // command parsing
)

// Kind categorizes the error
type Kind string

const (
	KindAllocation   Kind = "allocation"
	KindOutOfBounds  Kind = "out_of_bounds"
	KindInvalidInput Kind = "invalid_input"
	KindCopyFailed   Kind = "copy_failed"
	KindNotCopyable  Kind = "not_copyable"
	KindUnsupported  Kind = "unsupported"
)

// Error is the structured error type used throughout the module
type Error struct {
	Value  any
	Cause  error
	Phase  Phase
	Kind   Kind
	Type   string
	Detail string
}

// Error implements the error interface
func (e *Error) Error() string {
	var b strings.Builder

	b.WriteByte('[')
	b.WriteString(string(e.Phase))
	b.WriteString("] ")
	b.WriteString(string(e.Kind))

	if e.Type != "" {
		b.WriteString(": Go type ")
		b.WriteString(e.Type)
	}

	if e.Detail != "" {
		if e.Type != "" {
			b.WriteString(" - ")
		} else {
			b.WriteString(": ")
		}
		b.WriteString(e.Detail)
	}

	if e.Cause != nil {
		b.WriteString(" (caused by: ")
		b.WriteString(e.Cause.Error())
		b.WriteByte(')')
	}

	return b.String()
}

// Unwrap returns the underlying error
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error.
// An empty Phase on the target matches any phase.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	if t.Phase != "" && e.Phase != t.Phase {
		return false
	}
	return e.Kind == t.Kind
}

// Matchers for use with the standard errors.Is.
var (
	ErrAllocation   = &Error{Kind: KindAllocation}
	ErrOutOfRange   = &Error{Kind: KindOutOfBounds}
	ErrInvalidInput = &Error{Kind: KindInvalidInput}
	ErrCopyFailed   = &Error{Kind: KindCopyFailed}

	// ErrNotCopyable is returned by Clone implementations of payloads that
	// only support ownership transfer.
	ErrNotCopyable = &Error{Phase: PhaseCopy, Kind: KindNotCopyable, Detail: "value cannot be copied"}
)

// Builder provides structured error construction
type Builder struct {
	err Error
}

// New creates a new error builder
func New(phase Phase, kind Kind) *Builder {
	return &Builder{
		err: Error{
			Phase: phase,
			Kind:  kind,
		},
	}
}

// Type sets the Go type name
func (b *Builder) Type(t string) *Builder {
	b.err.Type = t
	return b
}

// Value sets the offending value
func (b *Builder) Value(v any) *Builder {
	b.err.Value = v
	return b
}

// Cause sets the underlying error
func (b *Builder) Cause(err error) *Builder {
	b.err.Cause = err
	return b
}

// Detail sets the human-readable detail message
func (b *Builder) Detail(msg string, args ...any) *Builder {
	if len(args) > 0 {
		b.err.Detail = fmt.Sprintf(msg, args...)
	} else {
		b.err.Detail = msg
	}
	return b
}

// Build returns the constructed error
func (b *Builder) Build() *Error {
	return &b.err
}

// Convenience constructors for common error patterns

// AllocationFailed creates an allocation failure error
func AllocationFailed(phase Phase, count int, elemSize uintptr) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindAllocation,
		Detail: fmt.Sprintf("failed to allocate %d elements of %d bytes", count, elemSize),
		Value:  count,
	}
}

// OutOfRange creates an out of range access error
func OutOfRange(phase Phase, index, size int) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindOutOfBounds,
		Detail: fmt.Sprintf("index %d out of range (size %d)", index, size),
		Value:  index,
	}
}

// InvalidInput creates an invalid input error
func InvalidInput(phase Phase, detail string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindInvalidInput,
		Detail: detail,
	}
}

// CopyFailed creates an error for an element copy that failed at index
func CopyFailed(phase Phase, index int, cause error) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindCopyFailed,
		Detail: fmt.Sprintf("copy element %d", index),
		Value:  index,
		Cause:  cause,
	}
}

// Unsupported creates an unsupported operation error
func Unsupported(phase Phase, what string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindUnsupported,
		Detail: what,
	}
}

// Wrap wraps an existing error with additional context
func Wrap(phase Phase, kind Kind, cause error, detail string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   kind,
		Detail: detail,
		Cause:  cause,
	}
}
