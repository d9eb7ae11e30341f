package flamango

import (
	"io"
	"strings"
)

// Parser builds an expression tree from the grammar
//
//	expr   := term ( (PLUS | MINUS) term )*
//	term   := factor ( (STAR | SLASH) factor )*
//	factor := INTEGER
type Parser struct {
	lex *Lexer
	tok Token
}

func NewParser(r io.Reader) *Parser {
	return &Parser{
		lex: NewLexer(r),
	}
}

func (p *Parser) advance() error {
	tok, err := p.lex.NextToken()
	if err != nil {
		return err
	}
	p.tok = tok
	return nil
}

func (p *Parser) eat(kind TokenKind) error {
	if p.tok.Kind != kind {
		return &SyntaxError{Expected: kind, Got: p.tok.Kind, Pos: p.tok.Pos}
	}
	return p.advance()
}

func (p *Parser) parseFactor() (Node, error) {
	tok := p.tok
	if err := p.eat(Integer); err != nil {
		return nil, err
	}
	return &Number{Value: tok.Value, Pos: tok.Pos}, nil
}

func (p *Parser) parseTerm() (Node, error) {
	return p.parseChain(p.parseFactor, Star, Slash)
}

func (p *Parser) parseExpr() (Node, error) {
	return p.parseChain(p.parseTerm, Plus, Minus)
}

// parseChain folds operands produced by sub into left-nested BinaryOp
// nodes for as long as the current token is one of ops.
func (p *Parser) parseChain(sub func() (Node, error), ops ...TokenKind) (Node, error) {
	node, err := sub()
	if err != nil {
		return nil, err
	}
	for p.tokIn(ops) {
		tok := p.tok
		if err := p.eat(tok.Kind); err != nil {
			return nil, err
		}
		right, err := sub()
		if err != nil {
			return nil, err
		}
		node = &BinaryOp{
			Op:    tokenOps[tok.Kind],
			Left:  node,
			Right: right,
			Pos:   tok.Pos,
		}
	}
	return node, nil
}

func (p *Parser) tokIn(kinds []TokenKind) bool {
	for _, k := range kinds {
		if p.tok.Kind == k {
			return true
		}
	}
	return false
}

// Parse parses a whole expression. Tokens left over after the
// expression are a SyntaxError.
func (p *Parser) Parse() (Node, error) {
	if err := p.advance(); err != nil {
		return nil, err
	}
	node, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	if p.tok.Kind != EOF {
		return nil, &SyntaxError{Expected: EOF, Got: p.tok.Kind, Pos: p.tok.Pos}
	}
	return node, nil
}

func ParseString(text string) (Node, error) {
	return NewParser(strings.NewReader(text)).Parse()
}
