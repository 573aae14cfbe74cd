package checker

import (
	"os"
	"path/filepath"
	"testing"

	protocol "github.com/tliron/glsp/protocol_3_16"

	"github.com/dhamidi/lexkit/grammar"
	"github.com/dhamidi/lexkit/reader"
	"github.com/dhamidi/lexkit/rule"
)

func testChecker(t *testing.T) *Checker {
	t.Helper()
	g, err := grammar.New(&grammar.RulesFile{
		Identifier: grammar.IdentifierRule{Leading: "letter _", Trailing: "alnum _"},
		Keywords:   []string{"let"},
		Reserved:   grammar.ReservedRule{Words: []string{"self"}},
	})
	if err != nil {
		t.Fatal(err)
	}
	return New(g)
}

func TestCheck(t *testing.T) {
	c := testChecker(t)

	if diags := c.Check([]byte("let foo"), "ok.src"); len(diags) != 0 {
		t.Errorf("clean input: got %v", diags)
	}

	diags := c.Check([]byte("self"), "bad.src")
	if len(diags) != 1 || diags[0].Tag != rule.ReservedIdentifier {
		t.Fatalf("got %v", diags)
	}
	if diags[0].Begin.File != "bad.src" {
		t.Errorf("file: got %q", diags[0].Begin.File)
	}
}

func TestCheckFile(t *testing.T) {
	c := testChecker(t)

	path := filepath.Join(t.TempDir(), "input.src")
	if err := os.WriteFile(path, []byte("foo self bar"), 0o644); err != nil {
		t.Fatal(err)
	}

	diags, err := c.CheckFile(path)
	if err != nil {
		t.Fatalf("CheckFile: %v", err)
	}
	if len(diags) != 1 {
		t.Errorf("got %v", diags)
	}

	if _, err := c.CheckFile(filepath.Join(t.TempDir(), "missing.src")); err == nil {
		t.Error("missing file must return an error")
	}
}

func TestToRange(t *testing.T) {
	d := rule.NewDiagnostic(
		reader.Position{Line: 1, Column: 5},
		reader.Position{Line: 1, Column: 9},
		rule.ReservedIdentifier, "")

	r := toRange(d)
	if r.Start.Line != 0 || r.Start.Character != 4 || r.End.Character != 8 {
		t.Errorf("got %+v", r)
	}
}

func TestToSeverity(t *testing.T) {
	if toSeverity(rule.ReservedIdentifier) != protocol.DiagnosticSeverityWarning {
		t.Error("reserved identifiers are warnings")
	}
	if toSeverity(rule.ExpectedKeyword) != protocol.DiagnosticSeverityError {
		t.Error("everything else is an error")
	}
}
