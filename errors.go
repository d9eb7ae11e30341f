package flamango

import "fmt"

// LexicalError reports input the lexer cannot classify: either a
// character outside the supported set, or an integer literal that does
// not fit in an int64 (Literal is set in that case).
type LexicalError struct {
	Char    rune
	Literal string
	Pos     int
}

func (e *LexicalError) Error() string {
	if e.Literal != "" {
		return fmt.Sprintf("integer literal out of range: %s at position %d", e.Literal, e.Pos)
	}
	return fmt.Sprintf("invalid character %q at position %d", e.Char, e.Pos)
}

func (e *LexicalError) Position() int {
	return e.Pos
}

// SyntaxError reports a token that does not fit the grammar.
type SyntaxError struct {
	Expected TokenKind
	Got      TokenKind
	Pos      int
}

func (e *SyntaxError) Error() string {
	if e.Got == EOF {
		return fmt.Sprintf("expected %v, got unexpected end of input at position %d", e.Expected, e.Pos)
	}
	return fmt.Sprintf("expected %v, got %v at position %d", e.Expected, e.Got, e.Pos)
}

func (e *SyntaxError) Position() int {
	return e.Pos
}

// ArithmeticError reports a failed operation during evaluation.
type ArithmeticError struct {
	Op  Op
	Msg string
	Pos int
}

func (e *ArithmeticError) Error() string {
	return fmt.Sprintf("%s in '%v' at position %d", e.Msg, e.Op, e.Pos)
}

func (e *ArithmeticError) Position() int {
	return e.Pos
}
