package interpreter

import (
	"context"
	"log/slog"

	"github.com/leonardinius/gocalc/internal/parser"
	"github.com/leonardinius/gocalc/internal/scanner"
	"github.com/leonardinius/gocalc/internal/token"
)

type Interpreter interface {
	// Interpret reduces a token sequence to its value: multiplication and
	// division first, then addition and subtraction, each pass left to right.
	//
	// Stateless, safe to call repeatedly.
	Interpret(ctx context.Context, tokens []token.Token) (float64, error)

	// Evaluate scans, validates and interprets the given expression.
	Evaluate(ctx context.Context, expression string) (float64, error)
}

type interpreter struct {
	logger *slog.Logger
}

func NewInterpreter(options ...InterpreterOption) Interpreter {
	opts := newInterpreterOpts(options...)
	return &interpreter{logger: opts.logger}
}

// Evaluate is the one-shot form of NewInterpreter().Evaluate.
func Evaluate(expression string) (float64, error) {
	return NewInterpreter().Evaluate(context.Background(), expression)
}

// Interpret implements Interpreter.
func (i *interpreter) Interpret(ctx context.Context, tokens []token.Token) (float64, error) {
	reduced, err := ResolveHighPrecedence(tokens)
	if err != nil {
		return 0, err
	}
	i.logger.DebugContext(ctx, "resolved high precedence", "sequence", parser.NewInfixPrinter().Print(reduced))

	value, err := ResolveLowPrecedence(reduced)
	if err != nil {
		return 0, err
	}
	i.logger.DebugContext(ctx, "resolved low precedence", "value", value)

	return value, nil
}

// Evaluate implements Interpreter.
func (i *interpreter) Evaluate(ctx context.Context, expression string) (float64, error) {
	tokens, err := scanner.NewScanner(expression).Scan()
	if err != nil {
		return 0, err
	}
	i.logger.DebugContext(ctx, "scanned", "expression", expression, "tokens", len(tokens))

	sequence, err := parser.NewParser(tokens).Parse()
	if err != nil {
		return 0, err
	}

	return i.Interpret(ctx, sequence)
}

var _ Interpreter = (*interpreter)(nil)
