package engine

import (
	"strconv"

	"github.com/dhamidi/lexkit/reader"
)

// Literal matches an exact character sequence. On failure the cursor is left
// after the last matching character; it does not roll back.
type Literal string

func (l Literal) Match(r *reader.Reader) Code {
	for _, ch := range string(l) {
		if r.Peek() != ch {
			return ErrLiteral
		}
		r.Advance()
	}
	return OK
}

func (l Literal) String() string {
	return strconv.Quote(string(l))
}
