package vector

import (
	"fmt"

	"github.com/dustin/go-humanize"

	"github.com/wippyai/simplevector/buffer"
)

// Stats describes the storage held by a vector.
type Stats struct {
	Len      int
	Cap      int
	ElemSize uint64
	Bytes    uint64 // allocated, present or not
	Grows    int    // reallocations since construction
}

// Stats returns a snapshot of the vector's storage usage.
func (v *Vector[T]) Stats() Stats {
	elem := uint64(buffer.Sizeof[T]())
	return Stats{
		Len:      v.size,
		Cap:      v.capacity,
		ElemSize: elem,
		Bytes:    elem * uint64(v.capacity),
		Grows:    v.grows,
	}
}

func (s Stats) String() string {
	return fmt.Sprintf("len=%d cap=%d elem=%s allocated=%s grows=%d",
		s.Len, s.Cap, humanize.IBytes(s.ElemSize), humanize.IBytes(s.Bytes), s.Grows)
}
