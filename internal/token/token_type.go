package token

type TokenType int

const (
	NUMBER TokenType = iota

	PLUS
	MINUS
	STAR
	SLASH
)

var tokenTypeNames = [...]string{
	NUMBER: "NUMBER",
	PLUS:   "PLUS",
	MINUS:  "MINUS",
	STAR:   "STAR",
	SLASH:  "SLASH",
}

// Operators maps operator symbols to their token types.
var Operators = map[rune]TokenType{
	'+': PLUS,
	'-': MINUS,
	'*': STAR,
	'/': SLASH,
}

func (t TokenType) String() string {
	if t < 0 || int(t) >= len(tokenTypeNames) {
		return "UNKNOWN"
	}
	return tokenTypeNames[t]
}

func (t TokenType) IsOperator() bool {
	return t == PLUS || t == MINUS || t == STAR || t == SLASH
}

// IsHighPrecedence reports whether t binds tighter than + and -.
func (t TokenType) IsHighPrecedence() bool {
	return t == STAR || t == SLASH
}
