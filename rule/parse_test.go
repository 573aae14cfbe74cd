package rule

import (
	"errors"
	"testing"

	"github.com/dhamidi/lexkit/callback"
	"github.com/dhamidi/lexkit/engine"
	"github.com/dhamidi/lexkit/reader"
)

func TestBindChecksShapes(t *testing.T) {
	// Identifiers produce a lexeme; an integer callback cannot take one.
	_, err := Bind(testIdentifier(), callback.AsInteger[int]())
	if err == nil {
		t.Fatal("Bind must reject a callback without a matching overload")
	}
	var oe *callback.OverloadError
	if !errors.As(err, &oe) {
		t.Errorf("expected OverloadError, got %T", err)
	}

	if _, err := Bind(testIdentifier(), callback.AsString()); err != nil {
		t.Errorf("string callback accepts a lexeme: %v", err)
	}
	if _, err := Bind(testIdentifier(), callback.Forward[reader.Lexeme]()); err != nil {
		t.Errorf("forward accepts a lexeme: %v", err)
	}
}

func TestTokenRule(t *testing.T) {
	b, err := Bind(Token{Engine: engine.Literal("=>")}, callback.AsString())
	if err != nil {
		t.Fatalf("Bind: %v", err)
	}

	res := b.Parse(reader.New([]byte("=>rest"), ""))
	if !res.Success() {
		t.Fatalf("expected success, got %+v", res)
	}
	if res.Value != "=>" {
		t.Errorf("value: got %q, want %q", res.Value, "=>")
	}

	res = b.Parse(reader.New([]byte("=!"), ""))
	if res.Matched {
		t.Fatal("token should not match")
	}
	if len(res.Diagnostics) != 1 || res.Diagnostics[0].Tag != ExpectedPattern {
		t.Errorf("expected an expected-pattern diagnostic, got %v", res.Diagnostics)
	}
}

func TestResultStates(t *testing.T) {
	id := testIdentifier().Reserve(engine.Literal("let"))
	b, err := Bind(id, callback.AsString())
	if err != nil {
		t.Fatalf("Bind: %v", err)
	}

	clean := b.Parse(reader.New([]byte("abc"), ""))
	if !clean.Success() || clean.Recovered() {
		t.Errorf("clean match misclassified: %+v", clean)
	}

	recovered := b.Parse(reader.New([]byte("let"), ""))
	if recovered.Success() || !recovered.Recovered() {
		t.Errorf("recovered match misclassified: %+v", recovered)
	}

	failed := b.Parse(reader.New([]byte("123"), ""))
	if failed.Matched || failed.Success() || failed.Recovered() {
		t.Errorf("failure misclassified: %+v", failed)
	}
}

// End-to-end scenario: identifier over letters/alnum with keyword "let"
// reserved.
func TestLetScenario(t *testing.T) {
	id := testIdentifier()
	let, err := NewKeyword("let", id)
	if err != nil {
		t.Fatalf("NewKeyword: %v", err)
	}
	reserved, err := id.ReserveKeywords(let)
	if err != nil {
		t.Fatalf("ReserveKeywords: %v", err)
	}

	identRule, err := Bind(reserved, callback.AsString())
	if err != nil {
		t.Fatalf("Bind identifier: %v", err)
	}
	kwRule, err := Bind(let, callback.Noop)
	if err != nil {
		t.Fatalf("Bind keyword: %v", err)
	}

	// "letter" is an ordinary identifier: "let" does not span to its end.
	res := identRule.Parse(reader.New([]byte("letter"), ""))
	if !res.Success() || res.Value != "letter" {
		t.Errorf(`"letter": got %+v`, res)
	}

	// "let" via the keyword rule: matches, no value.
	res = kwRule.Parse(reader.New([]byte("let"), ""))
	if !res.Success() || res.Value != nil {
		t.Errorf(`keyword "let": got %+v`, res)
	}

	// "let" via the identifier rule: matches but is flagged reserved.
	res = identRule.Parse(reader.New([]byte("let"), ""))
	if !res.Recovered() || res.Value != "let" {
		t.Errorf(`identifier "let": got %+v`, res)
	}
	if len(res.Diagnostics) != 1 || res.Diagnostics[0].Tag != ReservedIdentifier {
		t.Errorf("diagnostics: %v", res.Diagnostics)
	}
}

// A composed rule value must be reusable across independent parses.
func TestRuleReentrancy(t *testing.T) {
	b, err := Bind(testIdentifier(), callback.AsString())
	if err != nil {
		t.Fatalf("Bind: %v", err)
	}

	for _, input := range []string{"one", "two", "three"} {
		res := b.Parse(reader.New([]byte(input), ""))
		if !res.Success() || res.Value != input {
			t.Errorf("%q: got %+v", input, res)
		}
	}
}
