package engine

import "github.com/dhamidi/lexkit/reader"

// Any consumes the remaining input unconditionally. It always succeeds.
type Any struct{}

func (Any) Match(r *reader.Reader) Code {
	for !r.EOF() {
		r.Advance()
	}
	return OK
}

func (Any) String() string {
	return "anything"
}
