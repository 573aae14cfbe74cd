package engine

import (
	"strings"

	"github.com/dhamidi/lexkit/reader"
)

// Alternation tries each alternative from the same start position and keeps
// the longest match, so that the outcome does not depend on declaration
// order. It fails with ErrNotFound if no alternative matches.
type Alternation []Engine

func (a Alternation) Match(r *reader.Reader) Code {
	start := r.Mark()
	best := start
	matched := false
	for _, e := range a {
		r.ResetTo(start)
		if e.Match(r) != OK {
			continue
		}
		if end := r.Mark(); !matched || end.Offset > best.Offset {
			best = end
			matched = true
		}
	}
	if !matched {
		r.ResetTo(start)
		return ErrNotFound
	}
	r.ResetTo(best)
	return OK
}

func (a Alternation) String() string {
	parts := make([]string, len(a))
	for i, e := range a {
		parts[i] = e.String()
	}
	return strings.Join(parts, " / ")
}
