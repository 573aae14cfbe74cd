// Package grammar compiles rule files into ready-to-run identifier and
// keyword rules and provides a token scan loop over whole inputs. Rule files
// are written in YAML or derived from EBNF productions.
package grammar

import (
	"fmt"
	"sort"
	"unicode"

	"github.com/dhamidi/lexkit/callback"
	"github.com/dhamidi/lexkit/engine"
	"github.com/dhamidi/lexkit/reader"
	"github.com/dhamidi/lexkit/rule"
)

type TokenKind int

const (
	TokenIdentifier TokenKind = iota
	TokenKeyword
)

func (k TokenKind) String() string {
	switch k {
	case TokenIdentifier:
		return "identifier"
	case TokenKeyword:
		return "keyword"
	}
	return "unknown"
}

// Token is one scanned token with its source span.
type Token struct {
	Kind  TokenKind
	Text  string
	Begin reader.Position
	End   reader.Position
}

func (t Token) String() string {
	return fmt.Sprintf("%s %s %q", t.Begin, t.Kind, t.Text)
}

// Grammar is a compiled rules file: an identifier rule with reservations
// applied, plus the keyword set. A Grammar is immutable and safe for
// concurrent use.
type Grammar struct {
	ident    rule.Identifier
	keywords []rule.Keyword
}

// New compiles a rules file. Keywords are reserved on the identifier rule,
// so an identifier parse flags them; the reservation policy (words,
// prefixes, containing) is applied on top.
func New(rf *RulesFile) (*Grammar, error) {
	leading, err := ParseClass("leading", rf.Identifier.Leading)
	if err != nil {
		return nil, err
	}
	trailing, err := ParseClass("trailing", rf.Identifier.Trailing)
	if err != nil {
		return nil, err
	}

	ident := rule.NewIdentifier(leading, trailing)

	keywords := make([]rule.Keyword, 0, len(rf.Keywords))
	for _, text := range rf.Keywords {
		if !validWord(text) {
			return nil, fmt.Errorf("invalid keyword %q", text)
		}
		kw, err := rule.NewKeyword(text, ident)
		if err != nil {
			return nil, err
		}
		keywords = append(keywords, kw)
	}
	ident, err = ident.ReserveKeywords(keywords...)
	if err != nil {
		return nil, err
	}

	for _, word := range rf.Reserved.Words {
		if !validWord(word) {
			return nil, fmt.Errorf("invalid reserved word %q", word)
		}
		ident = ident.Reserve(engine.Literal(word))
	}
	if len(rf.Reserved.Prefixes) > 0 {
		ident = ident.ReservePrefix(rf.Reserved.Prefixes...)
	}
	if len(rf.Reserved.Containing) > 0 {
		ident = ident.ReserveContaining(rf.Reserved.Containing...)
	}

	// Longer keywords first, so the scan loop is deterministic regardless
	// of declaration order.
	sort.SliceStable(keywords, func(i, j int) bool {
		return len(keywords[i].Text()) > len(keywords[j].Text())
	})

	return &Grammar{ident: ident, keywords: keywords}, nil
}

// Default returns the compiled DefaultRules grammar.
func Default() *Grammar {
	g, err := New(DefaultRules())
	if err != nil {
		panic(err)
	}
	return g
}

// Load compiles a YAML rules file from disk.
func Load(path string) (*Grammar, error) {
	rf, err := LoadRulesFile(path)
	if err != nil {
		return nil, err
	}
	return New(rf)
}

// Identifier returns the compiled identifier rule, reservations included.
func (g *Grammar) Identifier() rule.Identifier {
	return g.ident
}

// Keywords returns the compiled keyword rules.
func (g *Grammar) Keywords() []rule.Keyword {
	return g.keywords
}

// Scan tokenizes the whole input. Whitespace separates tokens; keywords win
// over identifiers; reserved identifiers and unexpected characters are
// reported as diagnostics without stopping the scan.
func (g *Grammar) Scan(input []byte, file string) ([]Token, []rule.Diagnostic) {
	r := reader.New(input, file)
	ctx := &rule.Context{}
	sink := callback.AsList[Token]().Sink()

	for {
		for unicode.IsSpace(r.Peek()) {
			r.Advance()
		}
		if r.EOF() {
			break
		}

		begin := r.Mark()
		if kw, ok := g.matchKeyword(r); ok {
			sink.Fold(Token{Kind: TokenKeyword, Text: kw.Text(), Begin: begin, End: r.Mark()})
			continue
		}

		if engine.Peek(g.ident.Leading(), r) {
			g.ident.Parse(ctx, r, nil, func(ctx *rule.Context, r *reader.Reader, args []any) bool {
				lex := args[0].(reader.Lexeme)
				sink.Fold(Token{Kind: TokenIdentifier, Text: lex.String(), Begin: lex.Begin, End: lex.End})
				return true
			})
			continue
		}

		ch := r.Advance()
		ctx.Error(rule.NewDiagnostic(begin, r.Mark(), rule.ExpectedPattern, fmt.Sprintf("unexpected character %q", ch)))
	}

	tokens, _ := sink.Finish().([]Token)
	return tokens, ctx.Diagnostics
}

func (g *Grammar) matchKeyword(r *reader.Reader) (rule.Keyword, bool) {
	for _, kw := range g.keywords {
		if engine.TryMatch(kw.Engine(), r) {
			return kw, true
		}
	}
	return rule.Keyword{}, false
}
