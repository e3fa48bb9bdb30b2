package parser

import (
	"fmt"

	"github.com/leonardinius/gocalc/internal/calcerrors"
	"github.com/leonardinius/gocalc/internal/token"
)

// Parser checks that a token sequence alternates number, operator, number, ...,
// number and returns it ready for evaluation.
type Parser interface {
	Parse() ([]token.Token, error)
}

type parser struct {
	tokens  []token.Token
	current int
	err     error
}

func NewParser(tokens []token.Token) Parser {
	return &parser{tokens: tokens}
}

// Validate is a shorthand for NewParser(tokens).Parse() that drops the result.
func Validate(tokens []token.Token) error {
	_, err := NewParser(tokens).Parse()
	return err
}

// GoString implements fmt.GoStringer.
func (p *parser) GoString() string {
	return fmt.Sprintf("parser{tokens: %#v, current: %d, err: %#v}", p.tokens, p.current, p.err)
}

// String implements fmt.Stringer.
func (p *parser) String() string {
	return fmt.Sprintf("parser{tokens: %d, err: %v}", len(p.tokens), p.err)
}

// Parse implements Parser.
func (p *parser) Parse() ([]token.Token, error) {
	if len(p.tokens) == 0 {
		return nil, calcerrors.NewMalformedError("empty expression")
	}

	sequence := make([]token.Token, 0, len(p.tokens))
	sequence = append(sequence, p.number())
	for !p.isDone() {
		operator := p.operator()
		operand := p.number()
		sequence = append(sequence, operator, operand)
	}

	if p.err != nil {
		return nil, p.err
	}
	return sequence, nil
}

func (p *parser) number() token.Token {
	if p.isDone() {
		return p.reportError("expression ends with operator '%s'", p.previous().Lexeme)
	}
	if !p.peek().IsNumber() {
		return p.reportError("expected number at token %d, found '%s'", p.current+1, p.peek().Lexeme)
	}
	return *p.advance()
}

func (p *parser) operator() token.Token {
	if !p.peek().Type.IsOperator() {
		return p.reportError("expected operator at token %d, found '%s'", p.current+1, p.peek().Lexeme)
	}
	return *p.advance()
}

func (p *parser) peek() *token.Token {
	return &p.tokens[p.current]
}

func (p *parser) previous() *token.Token {
	return &p.tokens[p.current-1]
}

func (p *parser) advance() *token.Token {
	if !p.isAtEnd() {
		p.current++
	}
	return p.previous()
}

func (p *parser) isAtEnd() bool {
	return p.current >= len(p.tokens)
}

func (p *parser) isDone() bool {
	return p.isAtEnd() || p.err != nil
}

func (p *parser) reportError(format string, args ...any) token.Token {
	if p.err == nil {
		p.err = calcerrors.NewMalformedError(fmt.Sprintf(format, args...))
	}
	return token.Token{}
}

var _ Parser = (*parser)(nil)
