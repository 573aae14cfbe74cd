// Package engine provides minimal, stateless token matchers. An engine
// recognizes a primitive lexical pattern at the reader's cursor and reports
// the outcome as a plain error code instead of an error value, so engines can
// be composed and speculatively tried at the cost of a cursor snapshot.
package engine

import "github.com/dhamidi/lexkit/reader"

// Code reports the outcome of a match. The zero value means the engine
// matched; any other value names the failure.
type Code int

const (
	OK Code = iota
	// ErrLiteral: a literal engine hit a mismatching character.
	ErrLiteral
	// ErrClass: the character at the cursor is outside the class.
	ErrClass
	// ErrNotFound: a scanning engine exhausted the input.
	ErrNotFound
)

// Engine recognizes a pattern at the reader's cursor. On success the cursor
// has advanced past the recognized span. On failure the cursor position is
// unspecified; callers needing rollback must snapshot the cursor first (see
// TryMatch and Peek).
type Engine interface {
	Match(r *reader.Reader) Code
	String() string
}

// TryMatch attempts e and restores the cursor if it fails.
func TryMatch(e Engine, r *reader.Reader) bool {
	mark := r.Mark()
	if e.Match(r) == OK {
		return true
	}
	r.ResetTo(mark)
	return false
}

// Peek attempts e without consuming input, restoring the cursor either way.
func Peek(e Engine, r *reader.Reader) bool {
	mark := r.Mark()
	ok := e.Match(r) == OK
	r.ResetTo(mark)
	return ok
}
