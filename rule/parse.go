package rule

import (
	"github.com/dhamidi/lexkit/callback"
	"github.com/dhamidi/lexkit/reader"
)

// Result is the outcome of running a bound rule: whether it matched, the
// callback's value, and any recoverable diagnostics recorded along the way.
type Result struct {
	Matched     bool
	Value       any
	Diagnostics []Diagnostic
}

// Success reports a clean match with no diagnostics.
func (res Result) Success() bool {
	return res.Matched && len(res.Diagnostics) == 0
}

// Recovered reports a match that recorded recoverable diagnostics.
func (res Result) Recovered() bool {
	return res.Matched && len(res.Diagnostics) > 0
}

// Bound pairs a rule with the callback consuming its values. The pairing is
// validated once, at composition time; parsing never re-checks it.
type Bound struct {
	rule Rule
	cb   callback.Callback
}

// Bind validates that the callback's overload set accepts every argument
// shape the rule can produce. A mismatch is a composition-time error
// surfaced here, before any input is seen.
func Bind(ru Rule, cb callback.Callback) (*Bound, error) {
	for _, shape := range ru.Shapes() {
		if !cb.Accepts(shape) {
			return nil, &callback.OverloadError{Shape: shape}
		}
	}
	return &Bound{rule: ru, cb: cb}, nil
}

// Parse runs the bound rule against the reader. The final continuation
// invokes the callback with the accumulated values.
func (b *Bound) Parse(r *reader.Reader) Result {
	ctx := &Context{}
	res := Result{}
	res.Matched = b.rule.Parse(ctx, r, nil, func(ctx *Context, r *reader.Reader, args []any) bool {
		res.Value = b.cb.Call(args)
		return true
	})
	res.Diagnostics = ctx.Diagnostics
	return res
}
