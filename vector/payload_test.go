package vector_test

import "github.com/wippyai/simplevector/errors"

// counted counts how many times it has been cloned.
type counted struct {
	v      int
	clones *int
}

func (c counted) Clone() (counted, error) {
	if c.clones != nil {
		*c.clones++
	}
	return c, nil
}

// flaky fails to clone the element whose value equals *failAt.
type flaky struct {
	v      int
	failAt *int
}

func (f flaky) Clone() (flaky, error) {
	if f.v == *f.failAt {
		return flaky{}, errors.New(errors.PhaseCopy, errors.KindCopyFailed).Detail("refusing to copy %d", f.v).Build()
	}
	return f, nil
}

// token may only be moved.
type token struct {
	id     int
	copies *int
}

func (t *token) Clone() (token, error) {
	*t.copies++
	return token{}, errors.ErrNotCopyable
}
