package engine

import "github.com/dhamidi/lexkit/reader"

// While repeatedly applies Sub until it fails. While always succeeds
// (zero-or-more) and never reports a code of its own.
type While struct {
	Sub Engine
}

func (w While) Match(r *reader.Reader) Code {
	for {
		mark := r.Mark()
		if w.Sub.Match(r) != OK {
			r.ResetTo(mark)
			return OK
		}
		// Guard against a sub-engine matching without consuming.
		if r.Mark() == mark {
			return OK
		}
	}
}

func (w While) String() string {
	return w.Sub.String() + "*"
}
