package rule

import (
	"fmt"
	"reflect"
	"strconv"

	"github.com/dhamidi/lexkit/callback"
	"github.com/dhamidi/lexkit/engine"
	"github.com/dhamidi/lexkit/reader"
)

// Identifier matches one leading character followed by zero or more trailing
// characters and produces the span as a lexeme. Matching is maximal: the
// trailing engine is applied until it fails.
//
// Reserved patterns exclude identifiers by policy, not by syntax: a reserved
// identifier still matches and reaches the continuation, but records a
// recoverable diagnostic. A pattern counts as reserved only if it matches
// the identifier span exactly; matching a prefix is not enough.
//
// Identifier values are immutable; the Reserve methods return extended
// copies.
type Identifier struct {
	leading  engine.Engine
	trailing engine.Engine
	reserved []engine.Engine
}

func NewIdentifier(leading, trailing engine.Engine) Identifier {
	return Identifier{leading: leading, trailing: trailing}
}

func (id Identifier) Leading() engine.Engine  { return id.leading }
func (id Identifier) Trailing() engine.Engine { return id.trailing }

// Pattern returns an engine matching the identifier shape (leading then
// trailing, greedily), ignoring reserved words.
func (id Identifier) Pattern() engine.Engine {
	return pattern{leading: id.leading, trailing: id.trailing}
}

type pattern struct {
	leading  engine.Engine
	trailing engine.Engine
}

func (p pattern) Match(r *reader.Reader) engine.Code {
	if ec := p.leading.Match(r); ec != engine.OK {
		return ec
	}
	return engine.While{Sub: p.trailing}.Match(r)
}

func (p pattern) String() string {
	return p.leading.String() + " " + p.trailing.String() + "*"
}

func (id Identifier) reserve(patterns ...engine.Engine) Identifier {
	reserved := make([]engine.Engine, 0, len(id.reserved)+len(patterns))
	reserved = append(reserved, id.reserved...)
	reserved = append(reserved, patterns...)
	return Identifier{leading: id.leading, trailing: id.trailing, reserved: reserved}
}

// Reserve adds reserved patterns, checked against the full identifier span.
func (id Identifier) Reserve(patterns ...engine.Engine) Identifier {
	return id.reserve(patterns...)
}

// ReserveKeywords reserves the given keywords. A keyword is only compatible
// if it was derived from an identifier with the same leading/trailing
// pattern pair; anything else is a configuration error. Compatible keywords
// are reduced to plain literal matches.
func (id Identifier) ReserveKeywords(kws ...Keyword) (Identifier, error) {
	patterns := make([]engine.Engine, 0, len(kws))
	for _, kw := range kws {
		if !sameEngine(kw.leading, id.leading) || !sameEngine(kw.trailing, id.trailing) {
			return Identifier{}, fmt.Errorf("cannot reserve keyword %q: defined over a different identifier pattern", kw.text)
		}
		patterns = append(patterns, engine.Literal(kw.text))
	}
	return id.reserve(patterns...), nil
}

// ReservePrefix reserves every identifier starting with one of the given
// literals.
func (id Identifier) ReservePrefix(prefixes ...string) Identifier {
	patterns := make([]engine.Engine, 0, len(prefixes))
	for _, p := range prefixes {
		patterns = append(patterns, prefixed{lit: engine.Literal(p)})
	}
	return id.reserve(patterns...)
}

// ReserveContaining reserves every identifier containing one of the given
// literals anywhere.
func (id Identifier) ReserveContaining(parts ...string) Identifier {
	patterns := make([]engine.Engine, 0, len(parts))
	for _, p := range parts {
		patterns = append(patterns, engine.Contains{Sub: engine.Literal(p)})
	}
	return id.reserve(patterns...)
}

// prefixed matches a literal followed by anything.
type prefixed struct {
	lit engine.Literal
}

func (p prefixed) Match(r *reader.Reader) engine.Code {
	if ec := p.lit.Match(r); ec != engine.OK {
		return ec
	}
	return engine.Any{}.Match(r)
}

func (p prefixed) String() string {
	return p.lit.String() + "..."
}

func sameEngine(a, b engine.Engine) bool {
	return reflect.DeepEqual(a, b)
}

func (id Identifier) Parse(ctx *Context, r *reader.Reader, args []any, next Continuation) bool {
	begin := r.Mark()
	if id.leading.Match(r) != engine.OK {
		ctx.Error(NewDiagnostic(begin, r.Mark(), ExpectedPattern, "expected "+id.leading.String()))
		return false
	}
	engine.While{Sub: id.trailing}.Match(r)
	end := r.Mark()

	if len(id.reserved) > 0 {
		// Re-scan the exact span: reserved only if the alternation
		// consumes it fully.
		sub := r.Bounded(begin, end)
		if engine.TryMatch(engine.Alternation(id.reserved), sub) && sub.Mark().Offset == end.Offset {
			lex := r.Lexeme(begin, end)
			ctx.Error(NewDiagnostic(begin, end, ReservedIdentifier, "reserved identifier "+strconv.Quote(lex.String())))
			// Trivially recovered: the span is still a well-formed
			// identifier, so the match proceeds.
		}
	}

	return next(ctx, r, append(args, r.Lexeme(begin, end)))
}

func (id Identifier) Shapes() []callback.Shape {
	return []callback.Shape{lexemeShape}
}
