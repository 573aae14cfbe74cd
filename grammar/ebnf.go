package grammar

import (
	"fmt"
	"os"
	"strings"

	"golang.org/x/exp/ebnf"

	"github.com/dhamidi/lexkit/engine"
	"github.com/dhamidi/lexkit/rule"
)

// FromEBNF compiles an identifier rule from an EBNF production of the form
//
//	ident = leading { trailing } .
//
// where leading and trailing are character-level expressions: single
// character tokens, ranges, alternatives of those, or names of productions
// of the same shape.
func FromEBNF(g ebnf.Grammar, production string) (rule.Identifier, error) {
	prod, ok := g[production]
	if !ok || prod.Expr == nil {
		return rule.Identifier{}, fmt.Errorf("production %q not found", production)
	}

	seq, ok := prod.Expr.(ebnf.Sequence)
	if !ok || len(seq) != 2 {
		return rule.Identifier{}, fmt.Errorf("production %q must have the form: leading { trailing }", production)
	}
	rep, ok := seq[1].(*ebnf.Repetition)
	if !ok {
		return rule.Identifier{}, fmt.Errorf("production %q must have the form: leading { trailing }", production)
	}

	leading, err := compileClass(g, production+" leading", seq[0])
	if err != nil {
		return rule.Identifier{}, err
	}
	trailing, err := compileClass(g, production+" trailing", rep.Body)
	if err != nil {
		return rule.Identifier{}, err
	}
	return rule.NewIdentifier(leading, trailing), nil
}

// LoadEBNF reads an EBNF grammar file and compiles the named production
// into a grammar with no keywords.
func LoadEBNF(path, production string) (*Grammar, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open grammar: %w", err)
	}
	defer f.Close()

	g, err := ebnf.Parse(path, f)
	if err != nil {
		return nil, fmt.Errorf("parse grammar: %w", err)
	}

	ident, err := FromEBNF(g, production)
	if err != nil {
		return nil, err
	}
	return &Grammar{ident: ident}, nil
}

func compileClass(g ebnf.Grammar, name string, expr ebnf.Expression) (*engine.Class, error) {
	ranges, err := collectRanges(g, expr, map[string]bool{})
	if err != nil {
		return nil, fmt.Errorf("class %s: %w", name, err)
	}
	return engine.NewClass(name, ranges...), nil
}

func collectRanges(g ebnf.Grammar, expr ebnf.Expression, visiting map[string]bool) ([]engine.ClassRange, error) {
	switch e := expr.(type) {
	case *ebnf.Token:
		runes := []rune(strings.Trim(e.String, "\""))
		if len(runes) != 1 {
			return nil, fmt.Errorf("token %q is not a single character", e.String)
		}
		return []engine.ClassRange{{Lo: runes[0], Hi: runes[0]}}, nil

	case *ebnf.Range:
		begin := []rune(strings.Trim(e.Begin.String, "\""))
		end := []rune(strings.Trim(e.End.String, "\""))
		if len(begin) != 1 || len(end) != 1 {
			return nil, fmt.Errorf("range %q…%q is not over single characters", e.Begin.String, e.End.String)
		}
		return []engine.ClassRange{{Lo: begin[0], Hi: end[0]}}, nil

	case ebnf.Alternative:
		var ranges []engine.ClassRange
		for _, alt := range e {
			rs, err := collectRanges(g, alt, visiting)
			if err != nil {
				return nil, err
			}
			ranges = append(ranges, rs...)
		}
		return ranges, nil

	case *ebnf.Group:
		return collectRanges(g, e.Body, visiting)

	case *ebnf.Name:
		if visiting[e.String] {
			return nil, fmt.Errorf("recursive production %q", e.String)
		}
		prod, ok := g[e.String]
		if !ok || prod.Expr == nil {
			return nil, fmt.Errorf("production %q not found", e.String)
		}
		visiting[e.String] = true
		defer delete(visiting, e.String)
		return collectRanges(g, prod.Expr, visiting)

	default:
		return nil, fmt.Errorf("unsupported expression %T in character class", expr)
	}
}
