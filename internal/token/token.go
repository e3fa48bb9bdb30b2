package token

import (
	"fmt"
	"strconv"
)

// Token represents a lexical token.
type Token struct {
	Type    TokenType
	Lexeme  string
	Literal float64
}

func NewToken(t TokenType, lexeme string, literal float64) Token {
	return Token{
		Type:    t,
		Lexeme:  lexeme,
		Literal: literal,
	}
}

func NewNumber(value float64) Token {
	return NewToken(NUMBER, strconv.FormatFloat(value, 'g', -1, 64), value)
}

func NewOperator(t TokenType) Token {
	for symbol, tt := range Operators {
		if tt == t {
			return NewToken(t, string(symbol), 0)
		}
	}
	panic(fmt.Sprintf("not an operator: %s", t))
}

func (t Token) IsNumber() bool {
	return t.Type == NUMBER
}

// String implements fmt.Stringer.
func (t Token) String() string {
	if t.IsNumber() {
		return fmt.Sprintf("%s %s %v", t.Type, t.Lexeme, t.Literal)
	}
	return fmt.Sprintf("%s %s", t.Type, t.Lexeme)
}

// GoString implements fmt.GoStringer.
func (t Token) GoString() string {
	return fmt.Sprintf("{Type: %s, Lexeme: %q, Literal: %#v}", t.Type, t.Lexeme, t.Literal)
}

var _ fmt.Stringer = (*Token)(nil)
var _ fmt.GoStringer = (*Token)(nil)
