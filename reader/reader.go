// Package reader provides the input cursor that token engines and rules
// consume. A Reader walks a byte slice rune by rune and tracks line/column
// information; a Position is both a source location and a restart point.
package reader

import (
	"fmt"
	"unicode/utf8"
)

// EOF is returned by Peek and Advance when no input is left.
const EOF rune = -1

type Position struct {
	File   string
	Offset int
	Line   int
	Column int
}

func (p Position) String() string {
	if p.File != "" {
		return fmt.Sprintf("%s:%d:%d", p.File, p.Line, p.Column)
	}
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}

// Reader is a cursor over immutable input. The input itself is never
// modified; only the cursor moves. Copy-free snapshots are taken with Mark
// and restored with ResetTo.
type Reader struct {
	input  []byte
	file   string
	pos    int
	line   int
	column int
	limit  int
}

func New(input []byte, file string) *Reader {
	return &Reader{
		input:  input,
		file:   file,
		pos:    0,
		line:   1,
		column: 1,
		limit:  len(input),
	}
}

// Bounded returns a new reader over the same input, restricted to the range
// [begin.Offset, end.Offset). Used to re-scan an already matched span, e.g.
// for reserved-word checks.
func (r *Reader) Bounded(begin, end Position) *Reader {
	return &Reader{
		input:  r.input,
		file:   r.file,
		pos:    begin.Offset,
		line:   begin.Line,
		column: begin.Column,
		limit:  end.Offset,
	}
}

func (r *Reader) EOF() bool {
	return r.pos >= r.limit
}

// Peek returns the rune at the cursor without consuming it, or EOF.
func (r *Reader) Peek() rune {
	if r.pos >= r.limit {
		return EOF
	}
	ch, _ := utf8.DecodeRune(r.input[r.pos:r.limit])
	return ch
}

// Advance consumes and returns the rune at the cursor, or EOF.
func (r *Reader) Advance() rune {
	if r.pos >= r.limit {
		return EOF
	}
	ch, size := utf8.DecodeRune(r.input[r.pos:r.limit])
	r.pos += size
	if ch == '\n' {
		r.line++
		r.column = 1
	} else {
		r.column++
	}
	return ch
}

// Mark captures the current cursor as a restart point.
func (r *Reader) Mark() Position {
	return Position{
		File:   r.file,
		Offset: r.pos,
		Line:   r.line,
		Column: r.column,
	}
}

// ResetTo moves the cursor back to a previously captured mark. The mark must
// come from this reader (or one sharing its input).
func (r *Reader) ResetTo(mark Position) {
	r.pos = mark.Offset
	r.line = mark.Line
	r.column = mark.Column
}

// Lexeme returns the span between two marks.
func (r *Reader) Lexeme(begin, end Position) Lexeme {
	return Lexeme{
		Begin: begin,
		End:   end,
		text:  r.input[begin.Offset:end.Offset],
	}
}
