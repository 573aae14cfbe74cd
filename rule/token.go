package rule

import (
	"reflect"

	"github.com/dhamidi/lexkit/callback"
	"github.com/dhamidi/lexkit/engine"
	"github.com/dhamidi/lexkit/reader"
)

var lexemeShape = callback.Shape{reflect.TypeFor[reader.Lexeme]()}

// Token wraps a token engine into a rule producing the matched span as a
// lexeme. On failure it reports an "expected pattern" diagnostic at the
// start position and hard-fails.
type Token struct {
	Engine engine.Engine
}

func (t Token) Parse(ctx *Context, r *reader.Reader, args []any, next Continuation) bool {
	begin := r.Mark()
	if t.Engine.Match(r) != engine.OK {
		ctx.Error(NewDiagnostic(begin, r.Mark(), ExpectedPattern, "expected "+t.Engine.String()))
		return false
	}
	return next(ctx, r, append(args, r.Lexeme(begin, r.Mark())))
}

func (t Token) Shapes() []callback.Shape {
	return []callback.Shape{lexemeShape}
}
