package engine

import "github.com/dhamidi/lexkit/reader"

// Find scans forward, one character at a time, until Condition matches at
// the cursor. It succeeds by leaving the cursor at the start of the match,
// without consuming the match itself. It fails with ErrNotFound if the input
// is exhausted first.
type Find struct {
	Condition Engine
}

func (f Find) Match(r *reader.Reader) Code {
	for {
		if Peek(f.Condition, r) {
			return OK
		}
		if r.EOF() {
			return ErrNotFound
		}
		r.Advance()
	}
}

func (f Find) String() string {
	return "find " + f.Condition.String()
}
