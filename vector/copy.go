package vector

import (
	"github.com/wippyai/simplevector"
	"github.com/wippyai/simplevector/errors"
)

// copierFor reports how elements of T are copied: through Clone when T or *T
// implements simplevector.Cloner[T]. A nil result means plain assignment.
func copierFor[T any]() func(*T) (T, error) {
	if _, ok := any((*T)(nil)).(simplevector.Cloner[T]); ok {
		return func(p *T) (T, error) {
			return any(p).(simplevector.Cloner[T]).Clone()
		}
	}
	var zero T
	if _, ok := any(zero).(simplevector.Cloner[T]); ok {
		return func(p *T) (T, error) {
			return any(*p).(simplevector.Cloner[T]).Clone()
		}
	}
	return nil
}

// copyElems copies src into dst element by element. It stops at the first
// failing Clone; dst may then be partially written.
func copyElems[T any](dst, src []T) error {
	cp := copierFor[T]()
	if cp == nil {
		copy(dst, src)
		return nil
	}
	for i := range src {
		x, err := cp(&src[i])
		if err != nil {
			return errors.CopyFailed(errors.PhaseCopy, i, err)
		}
		dst[i] = x
	}
	return nil
}

// fillElems writes a copy of value into every slot of dst.
func fillElems[T any](dst []T, value T) error {
	cp := copierFor[T]()
	if cp == nil {
		for i := range dst {
			dst[i] = value
		}
		return nil
	}
	for i := range dst {
		x, err := cp(&value)
		if err != nil {
			return errors.CopyFailed(errors.PhaseCopy, i, err)
		}
		dst[i] = x
	}
	return nil
}
