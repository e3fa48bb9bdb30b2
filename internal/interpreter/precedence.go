package interpreter

import (
	"fmt"

	"github.com/leonardinius/gocalc/internal/calcerrors"
	"github.com/leonardinius/gocalc/internal/parser"
	"github.com/leonardinius/gocalc/internal/token"
)

// ResolveHighPrecedence collapses every '*' and '/' of a valid sequence into
// its computed value, left to right, keeping the '+' and '-' operators and
// their operands in order. The input slice is not modified.
func ResolveHighPrecedence(tokens []token.Token) ([]token.Token, error) {
	if err := parser.Validate(tokens); err != nil {
		return nil, err
	}

	result := make([]token.Token, 0, len(tokens))
	for i := 0; i < len(tokens); i++ {
		tok := tokens[i]
		if !tok.Type.IsHighPrecedence() {
			result = append(result, tok)
			continue
		}

		// valid sequences never end with an operator
		left, right := result[len(result)-1], tokens[i+1]
		value, err := apply(tok, left.Literal, right.Literal)
		if err != nil {
			return nil, err
		}
		result[len(result)-1] = token.NewNumber(value)
		i++
	}

	return result, nil
}

// ResolveLowPrecedence folds a sequence holding only numbers, '+' and '-'
// into a single value, left to right.
func ResolveLowPrecedence(tokens []token.Token) (float64, error) {
	if err := parser.Validate(tokens); err != nil {
		return 0, err
	}

	result := tokens[0].Literal
	for i := 1; i < len(tokens); i += 2 {
		operator, operand := tokens[i], tokens[i+1]
		if operator.Type.IsHighPrecedence() {
			return 0, calcerrors.NewMalformedError(fmt.Sprintf("unresolved operator '%s'", operator.Lexeme))
		}

		value, err := apply(operator, result, operand.Literal)
		if err != nil {
			return 0, err
		}
		result = value
	}

	return result, nil
}

func apply(operator token.Token, left, right float64) (float64, error) {
	switch operator.Type {
	case token.PLUS:
		return left + right, nil
	case token.MINUS:
		return left - right, nil
	case token.STAR:
		return left * right, nil
	case token.SLASH:
		if right == 0 {
			return 0, calcerrors.NewEvalError(operator.Lexeme, calcerrors.ErrDivisionByZero)
		}
		return left / right, nil
	}

	return 0, calcerrors.NewMalformedError(fmt.Sprintf("unknown operator %s", operator.Type))
}
