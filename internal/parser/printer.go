package parser

import (
	"strings"

	"github.com/leonardinius/gocalc/internal/token"
)

// InfixPrinter renders a sequence as space separated infix text.
type InfixPrinter struct{}

func NewInfixPrinter() *InfixPrinter {
	return &InfixPrinter{}
}

func (p *InfixPrinter) Print(tokens []token.Token) string {
	out := new(strings.Builder)
	for i, tok := range tokens {
		if i > 0 {
			_, _ = out.WriteString(" ")
		}
		_, _ = out.WriteString(lexeme(tok))
	}
	return out.String()
}

// RPNPrinter renders a valid sequence in reverse Polish notation, so that
// "2 + 3 * 4" becomes "2 3 4 * +".
type RPNPrinter struct{}

func NewRPNPrinter() *RPNPrinter {
	return &RPNPrinter{}
}

func (p *RPNPrinter) Print(tokens []token.Token) string {
	var output []string
	var pending []token.Token

	for _, tok := range tokens {
		if tok.IsNumber() {
			output = append(output, lexeme(tok))
			continue
		}
		for len(pending) > 0 && precedence(pending[len(pending)-1]) >= precedence(tok) {
			output = append(output, pending[len(pending)-1].Lexeme)
			pending = pending[:len(pending)-1]
		}
		pending = append(pending, tok)
	}
	for i := len(pending) - 1; i >= 0; i-- {
		output = append(output, pending[i].Lexeme)
	}

	return strings.Join(output, " ")
}

func precedence(tok token.Token) int {
	if tok.Type.IsHighPrecedence() {
		return 2
	}
	return 1
}

func lexeme(tok token.Token) string {
	if tok.IsNumber() {
		return token.NewNumber(tok.Literal).Lexeme
	}
	return tok.Lexeme
}
