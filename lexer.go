package flamango

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"strconv"
	"strings"
	"unicode"
)

type TokenKind int

const (
	Integer TokenKind = iota
	Plus
	Minus
	Star
	Slash
	EOF
)

var tokenNames = [...]string{
	Integer: "INTEGER",
	Plus:    "PLUS",
	Minus:   "MINUS",
	Star:    "MUL",
	Slash:   "DIV",
	EOF:     "EOF",
}

func (k TokenKind) String() string {
	if k < 0 || int(k) >= len(tokenNames) {
		return fmt.Sprintf("TokenKind(%d)", int(k))
	}
	return tokenNames[k]
}

// Token is a single lexical unit. Value is only set for Integer tokens.
// Pos is the byte offset of the token in the input.
type Token struct {
	Kind  TokenKind
	Value int64
	Pos   int
}

func (t Token) String() string {
	switch t.Kind {
	case Integer:
		return fmt.Sprintf("Token(%v, %d)", t.Kind, t.Value)
	case EOF:
		return "Token(EOF)"
	default:
		return fmt.Sprintf("Token(%v, '%s')", t.Kind, operatorSymbols[t.Kind])
	}
}

var operatorSymbols = map[TokenKind]string{
	Plus:  "+",
	Minus: "-",
	Star:  "*",
	Slash: "/",
}

var operatorTokens = map[rune]TokenKind{
	'+': Plus,
	'-': Minus,
	'*': Star,
	'/': Slash,
}

type Lexer struct {
	buf  *bufio.Reader
	pos  int
	last int
}

func NewLexer(r io.Reader) *Lexer {
	return &Lexer{
		buf: bufio.NewReader(r),
	}
}

func (l *Lexer) Pos() int {
	return l.pos
}

func (l *Lexer) readRune() (rune, error) {
	r, n, err := l.buf.ReadRune()
	l.pos += n
	l.last = n
	return r, err
}

func (l *Lexer) unreadRune() error {
	err := l.buf.UnreadRune()
	if err == nil {
		l.pos -= l.last
		l.last = 0
	}
	return err
}

func (l *Lexer) SkipWhite() error {
	for {
		r, err := l.readRune()
		if err != nil {
			return err
		}
		if !unicode.IsSpace(r) {
			return l.unreadRune()
		}
	}
}

func isDigit(r rune) bool {
	return '0' <= r && r <= '9'
}

// NextToken returns the next token of the input. Once the input is
// exhausted it keeps returning EOF tokens.
func (l *Lexer) NextToken() (Token, error) {
	if err := l.SkipWhite(); err != nil && err != io.EOF {
		return Token{}, err
	}
	start := l.pos
	r, err := l.readRune()
	if err == io.EOF {
		return Token{Kind: EOF, Pos: start}, nil
	}
	if err != nil {
		return Token{}, err
	}

	if isDigit(r) {
		if err := l.unreadRune(); err != nil {
			return Token{}, err
		}
		return l.integer()
	}
	if kind, ok := operatorTokens[r]; ok {
		return Token{Kind: kind, Pos: start}, nil
	}
	return Token{}, &LexicalError{Char: r, Pos: start}
}

func (l *Lexer) integer() (Token, error) {
	start := l.pos
	var buf bytes.Buffer
	for {
		r, err := l.readRune()
		if err != nil {
			if err == io.EOF {
				break
			}
			return Token{}, err
		}
		if !isDigit(r) {
			if err := l.unreadRune(); err != nil {
				return Token{}, err
			}
			break
		}
		buf.WriteRune(r)
	}

	s := buf.String()
	i, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return Token{}, &LexicalError{Literal: s, Pos: start}
	}
	return Token{Kind: Integer, Value: i, Pos: start}, nil
}

// Tokenize lexes text up to and including the EOF token.
func Tokenize(text string) ([]Token, error) {
	l := NewLexer(strings.NewReader(text))
	var toks []Token
	for {
		tok, err := l.NextToken()
		if err != nil {
			return nil, err
		}
		toks = append(toks, tok)
		if tok.Kind == EOF {
			return toks, nil
		}
	}
}
