package rule

import (
	"fmt"

	"github.com/dhamidi/lexkit/callback"
	"github.com/dhamidi/lexkit/engine"
	"github.com/dhamidi/lexkit/reader"
)

// Keyword matches a literal string that must not be followed by a trailing
// identifier character; "if" matches as a keyword only when it is not the
// prefix of a longer identifier such as "ifx". Keywords produce no value.
type Keyword struct {
	text     string
	leading  engine.Engine
	trailing engine.Engine
}

// NewKeyword derives a keyword from the identifier it disambiguates
// against. The keyword text must not be empty.
func NewKeyword(text string, id Identifier) (Keyword, error) {
	if text == "" {
		return Keyword{}, fmt.Errorf("keyword must not be empty")
	}
	return Keyword{text: text, leading: id.leading, trailing: id.trailing}, nil
}

func (k Keyword) Text() string {
	return k.text
}

// Engine returns the keyword as a plain token engine: the literal followed
// by a negative lookahead for a trailing identifier character. Useful for
// speculative matching without diagnostics.
func (k Keyword) Engine() engine.Engine {
	return kwEngine{text: k.text, trailing: k.trailing}
}

type kwEngine struct {
	text     string
	trailing engine.Engine
}

func (e kwEngine) Match(r *reader.Reader) engine.Code {
	if ec := engine.Literal(e.text).Match(r); ec != engine.OK {
		return ec
	}
	if engine.Peek(e.trailing, r) {
		return engine.ErrLiteral
	}
	return engine.OK
}

func (e kwEngine) String() string {
	return fmt.Sprintf("keyword %q", e.text)
}

func (k Keyword) Parse(ctx *Context, r *reader.Reader, args []any, next Continuation) bool {
	begin := r.Mark()
	if engine.Literal(k.text).Match(r) == engine.OK && !engine.Peek(k.trailing, r) {
		return next(ctx, r, args)
	}

	// The keyword did not match, but the user wrote something
	// identifier-shaped there; report the diagnostic over that full span
	// rather than losing the position.
	if r.Mark() == begin {
		// Failed at the first character: re-run the identifier pattern.
		engine.TryMatch(pattern{leading: k.leading, trailing: k.trailing}, r)
	} else {
		// Already past the initial character: consume the trailing run.
		engine.While{Sub: k.trailing}.Match(r)
	}
	ctx.Error(NewDiagnostic(begin, r.Mark(), ExpectedKeyword, fmt.Sprintf("expected keyword %q", k.text)))
	return false
}

func (k Keyword) Shapes() []callback.Shape {
	return []callback.Shape{{}}
}
