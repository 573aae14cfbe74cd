// Package rule provides the continuation-style composition framework and the
// identifier and keyword rules built on it. A rule parses its portion of the
// input and hands any values it produced to the next step; failure is a
// plain boolean that propagates up the composition chain, while recoverable
// problems are recorded on the context without aborting the match.
package rule

import (
	"fmt"

	"github.com/dhamidi/lexkit/callback"
	"github.com/dhamidi/lexkit/reader"
)

// Continuation is the rest of the parse: it receives the reader, advanced
// past whatever the rule matched, and the argument list accumulated so far.
type Continuation func(ctx *Context, r *reader.Reader, args []any) bool

// Rule is a composable grammar fragment. Parse either fails and returns
// false without invoking next, or matches and tail-invokes next exactly once
// with its produced values appended to args. A failing rule records any
// diagnostic on the context before returning.
//
// Rules hold no mutable state; the same rule value may drive any number of
// independent parses.
type Rule interface {
	Parse(ctx *Context, r *reader.Reader, args []any, next Continuation) bool
	// Shapes lists the argument shapes this rule appends, for
	// composition-time callback checking.
	Shapes() []callback.Shape
}

// Tag classifies a diagnostic.
type Tag string

const (
	ReservedIdentifier Tag = "reserved identifier"
	ExpectedKeyword    Tag = "expected keyword"
	ExpectedPattern    Tag = "expected pattern"
)

// Diagnostic is a recoverable error over a span of input. Recording a
// diagnostic does not abort parsing.
type Diagnostic struct {
	Begin   reader.Position
	End     reader.Position
	Tag     Tag
	Message string
}

func NewDiagnostic(begin, end reader.Position, tag Tag, message string) Diagnostic {
	return Diagnostic{Begin: begin, End: end, Tag: tag, Message: message}
}

func (d Diagnostic) String() string {
	msg := d.Message
	if msg == "" {
		msg = string(d.Tag)
	}
	return fmt.Sprintf("%s: %s", d.Begin, msg)
}

// Context carries the per-parse mutable state: the diagnostics recorded so
// far. Each parse owns its own context; contexts are never shared.
type Context struct {
	Diagnostics []Diagnostic
}

// Error records a recoverable diagnostic and returns. It never aborts the
// parse; hard failure is signaled separately by returning false from Parse.
func (c *Context) Error(d Diagnostic) {
	c.Diagnostics = append(c.Diagnostics, d)
}
