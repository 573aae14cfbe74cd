package engine

import "github.com/dhamidi/lexkit/reader"

// Contains matches if Sub occurs anywhere in the remaining input. After
// finding it, the rest of the input is consumed unconditionally, so the
// recognized span always extends to the end of the reader. Used for
// reserve-containing checks over a bounded identifier span.
type Contains struct {
	Sub Engine
}

func (c Contains) Match(r *reader.Reader) Code {
	if !TryMatch(Find{Condition: c.Sub}, r) {
		return ErrNotFound
	}
	return Any{}.Match(r)
}

func (c Contains) String() string {
	return "contains " + c.Sub.String()
}
