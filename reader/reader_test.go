package reader

import "testing"

func TestPeekAdvance(t *testing.T) {
	r := New([]byte("ab\nc"), "test.txt")

	if got := r.Peek(); got != 'a' {
		t.Errorf("Peek: got %q, want %q", got, 'a')
	}
	if got := r.Advance(); got != 'a' {
		t.Errorf("Advance: got %q, want %q", got, 'a')
	}
	if got := r.Advance(); got != 'b' {
		t.Errorf("Advance: got %q, want %q", got, 'b')
	}
	if got := r.Advance(); got != '\n' {
		t.Errorf("Advance: got %q, want %q", got, '\n')
	}

	pos := r.Mark()
	if pos.Line != 2 || pos.Column != 1 {
		t.Errorf("after newline: got line %d column %d, want 2:1", pos.Line, pos.Column)
	}

	if got := r.Advance(); got != 'c' {
		t.Errorf("Advance: got %q, want %q", got, 'c')
	}
	if !r.EOF() {
		t.Error("expected EOF")
	}
	if got := r.Advance(); got != EOF {
		t.Errorf("Advance at end: got %q, want EOF", got)
	}
	if got := r.Peek(); got != EOF {
		t.Errorf("Peek at end: got %q, want EOF", got)
	}
}

func TestMarkResetTo(t *testing.T) {
	r := New([]byte("hello"), "")
	mark := r.Mark()
	r.Advance()
	r.Advance()
	if got := r.Peek(); got != 'l' {
		t.Fatalf("Peek: got %q, want %q", got, 'l')
	}
	r.ResetTo(mark)
	if got := r.Peek(); got != 'h' {
		t.Errorf("Peek after reset: got %q, want %q", got, 'h')
	}
}

func TestLexeme(t *testing.T) {
	r := New([]byte("hello world"), "test.txt")
	begin := r.Mark()
	for i := 0; i < 5; i++ {
		r.Advance()
	}
	end := r.Mark()

	lex := r.Lexeme(begin, end)
	if lex.String() != "hello" {
		t.Errorf("lexeme: got %q, want %q", lex.String(), "hello")
	}
	if lex.Len() != 5 {
		t.Errorf("len: got %d, want 5", lex.Len())
	}
	if lex.Empty() {
		t.Error("lexeme should not be empty")
	}

	empty := r.Lexeme(begin, begin)
	if !empty.Empty() {
		t.Error("zero-width lexeme should be empty")
	}
}

func TestBounded(t *testing.T) {
	r := New([]byte("letter"), "")
	begin := r.Mark()
	for i := 0; i < 3; i++ {
		r.Advance()
	}
	end := r.Mark()

	sub := r.Bounded(begin, end)
	var got []rune
	for !sub.EOF() {
		got = append(got, sub.Advance())
	}
	if string(got) != "let" {
		t.Errorf("bounded read: got %q, want %q", string(got), "let")
	}
	if sub.Advance() != EOF {
		t.Error("bounded reader must stop at its limit")
	}
}

func TestUnicode(t *testing.T) {
	r := New([]byte("über"), "")
	begin := r.Mark()
	if got := r.Advance(); got != 'ü' {
		t.Errorf("Advance: got %q, want %q", got, 'ü')
	}
	end := r.Mark()
	if end.Offset != 2 {
		t.Errorf("offset after multibyte rune: got %d, want 2", end.Offset)
	}
	if lex := r.Lexeme(begin, end); lex.String() != "ü" {
		t.Errorf("lexeme: got %q, want %q", lex.String(), "ü")
	}
}
