// Package checker runs a compiled grammar over files and reports the
// recoverable diagnostics it finds: reserved identifiers, keyword misuse,
// and characters outside the grammar. It also hosts the LSP server surfacing
// those diagnostics in editors.
package checker

import (
	"fmt"
	"os"

	"github.com/dhamidi/lexkit/grammar"
	"github.com/dhamidi/lexkit/rule"
)

type Checker struct {
	grammar *grammar.Grammar
}

func New(g *grammar.Grammar) *Checker {
	return &Checker{grammar: g}
}

// Check scans the input and returns its diagnostics.
func (c *Checker) Check(input []byte, file string) []rule.Diagnostic {
	_, diags := c.grammar.Scan(input, file)
	return diags
}

// CheckFile checks a file on disk.
func (c *Checker) CheckFile(path string) ([]rule.Diagnostic, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return c.Check(data, path), nil
}
