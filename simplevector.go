package simplevector

// Cloner is implemented by payload types whose copies must not share state
// with the original. Containers call Clone whenever they copy an element and
// abort the copy in progress if it fails. Payloads that may only be moved
// return errors.ErrNotCopyable.
type Cloner[T any] interface {
	Clone() (T, error)
}

// Sequence is a read-only view of a contiguous container.
type Sequence[T any] interface {
	Len() int
	Cap() int
	Get(i int) T
}
