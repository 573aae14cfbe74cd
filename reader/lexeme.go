package reader

// Lexeme is a read-only view of the input between two cursor marks. It does
// not own the underlying bytes and must not outlive the input.
type Lexeme struct {
	Begin Position
	End   Position
	text  []byte
}

func (l Lexeme) Bytes() []byte {
	return l.text
}

func (l Lexeme) String() string {
	return string(l.text)
}

func (l Lexeme) Len() int {
	return l.End.Offset - l.Begin.Offset
}

func (l Lexeme) Empty() bool {
	return l.Len() == 0
}
