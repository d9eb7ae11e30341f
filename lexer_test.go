package flamango

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenize(t *testing.T) {
	tests := []struct {
		input string
		want  []Token
	}{
		{
			input: "",
			want:  []Token{{Kind: EOF, Pos: 0}},
		},
		{
			input: "   ",
			want:  []Token{{Kind: EOF, Pos: 3}},
		},
		{
			input: "12 + 3",
			want: []Token{
				{Kind: Integer, Value: 12, Pos: 0},
				{Kind: Plus, Pos: 3},
				{Kind: Integer, Value: 3, Pos: 5},
				{Kind: EOF, Pos: 6},
			},
		},
		{
			input: "1+2*3/4-5",
			want: []Token{
				{Kind: Integer, Value: 1, Pos: 0},
				{Kind: Plus, Pos: 1},
				{Kind: Integer, Value: 2, Pos: 2},
				{Kind: Star, Pos: 3},
				{Kind: Integer, Value: 3, Pos: 4},
				{Kind: Slash, Pos: 5},
				{Kind: Integer, Value: 4, Pos: 6},
				{Kind: Minus, Pos: 7},
				{Kind: Integer, Value: 5, Pos: 8},
				{Kind: EOF, Pos: 9},
			},
		},
		{
			input: "\t007\n",
			want: []Token{
				{Kind: Integer, Value: 7, Pos: 1},
				{Kind: EOF, Pos: 5},
			},
		},
	}
	for _, test := range tests {
		t.Logf("%q", test.input)
		got, err := Tokenize(test.input)
		if err != nil {
			t.Errorf("Tokenize(%q): unexpected error: %v", test.input, err)
			continue
		}
		if diff := cmp.Diff(test.want, got); diff != "" {
			t.Errorf("Tokenize(%q) mismatch (-want +got):\n%s", test.input, diff)
		}
	}
}

func TestNextTokenAfterEOF(t *testing.T) {
	l := NewLexer(strings.NewReader("1"))
	tok, err := l.NextToken()
	require.NoError(t, err)
	assert.Equal(t, Integer, tok.Kind)

	for i := 0; i < 3; i++ {
		tok, err = l.NextToken()
		require.NoError(t, err)
		assert.Equal(t, Token{Kind: EOF, Pos: 1}, tok)
	}
}

func TestLexicalErrors(t *testing.T) {
	tests := []struct {
		input string
		char  rune
		pos   int
	}{
		{"2 + a", 'a', 4},
		{"(1)", '(', 0},
		{"1.5", '.', 1},
		{"3 % 2", '%', 2},
		{"é", 'é', 0},
		{"1 ×", '×', 2},
	}
	for _, test := range tests {
		_, err := Tokenize(test.input)
		var lexErr *LexicalError
		if !errors.As(err, &lexErr) {
			t.Errorf("Tokenize(%q): want *LexicalError, got %v", test.input, err)
			continue
		}
		assert.Equal(t, test.char, lexErr.Char, test.input)
		assert.Equal(t, test.pos, lexErr.Position(), test.input)
	}
}

func TestLexicalErrorOutOfRange(t *testing.T) {
	_, err := Tokenize("1 + 99999999999999999999")
	var lexErr *LexicalError
	require.ErrorAs(t, err, &lexErr)
	assert.Equal(t, "99999999999999999999", lexErr.Literal)
	assert.Equal(t, 4, lexErr.Pos)
	assert.EqualError(t, err, "integer literal out of range: 99999999999999999999 at position 4")
}

func TestTokenString(t *testing.T) {
	tests := []struct {
		tok  Token
		want string
	}{
		{Token{Kind: Integer, Value: 3}, "Token(INTEGER, 3)"},
		{Token{Kind: Plus}, "Token(PLUS, '+')"},
		{Token{Kind: Star}, "Token(MUL, '*')"},
		{Token{Kind: EOF}, "Token(EOF)"},
	}
	for _, test := range tests {
		if got := test.tok.String(); got != test.want {
			t.Errorf("want %q but got %q", test.want, got)
		}
	}
}
