package scanner_test

import (
	"testing"

	"github.com/leonardinius/gocalc/internal/calcerrors"
	"github.com/leonardinius/gocalc/internal/scanner"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScanTokens(t *testing.T) {
	t.Parallel()

	testcases := []struct {
		name     string
		input    string
		expected []string
		err      string
	}{
		{"empty", "", []string{}, ""},
		{"whitespace only", " \t\r\n ", []string{}, ""},
		{"invalid character", "3+a", nil, "invalid character 'a' at column 3"},
		{"invalid unicode character", "1+⌘", nil, "invalid character '⌘' at column 3"},
		{"parenthesis is invalid", "(1+2)", nil, "invalid character '(' at column 1"},
		{"bare dot", "1+.", nil, `invalid number "." at column 3`},
		{"multiple dots", "1.2.3", nil, `invalid number "1.2.3" at column 1`},
		{
			"operators",
			"+-*/",
			[]string{
				`{Type: PLUS, Lexeme: "+", Literal: 0}`,
				`{Type: MINUS, Lexeme: "-", Literal: 0}`,
				`{Type: STAR, Lexeme: "*", Literal: 0}`,
				`{Type: SLASH, Lexeme: "/", Literal: 0}`,
			},
			"",
		},
		{
			"number-integer",
			`10`,
			[]string{
				`{Type: NUMBER, Lexeme: "10", Literal: 10}`,
			},
			"",
		},
		{
			"number-integer-leading-zeroes",
			`0010`,
			[]string{
				`{Type: NUMBER, Lexeme: "0010", Literal: 10}`,
			},
			"",
		},
		{
			"number-decimal",
			`12.34`,
			[]string{
				`{Type: NUMBER, Lexeme: "12.34", Literal: 12.34}`,
			},
			"",
		},
		{
			"number-trailing-dot",
			`12.`,
			[]string{
				`{Type: NUMBER, Lexeme: "12.", Literal: 12}`,
			},
			"",
		},
		{
			"number-leading-dot",
			`.5`,
			[]string{
				`{Type: NUMBER, Lexeme: ".5", Literal: 0.5}`,
			},
			"",
		},
		{
			"expression",
			"12+7*3-4/2",
			[]string{
				`{Type: NUMBER, Lexeme: "12", Literal: 12}`,
				`{Type: PLUS, Lexeme: "+", Literal: 0}`,
				`{Type: NUMBER, Lexeme: "7", Literal: 7}`,
				`{Type: STAR, Lexeme: "*", Literal: 0}`,
				`{Type: NUMBER, Lexeme: "3", Literal: 3}`,
				`{Type: MINUS, Lexeme: "-", Literal: 0}`,
				`{Type: NUMBER, Lexeme: "4", Literal: 4}`,
				`{Type: SLASH, Lexeme: "/", Literal: 0}`,
				`{Type: NUMBER, Lexeme: "2", Literal: 2}`,
			},
			"",
		},
		{
			"spaces",
			"1 +\t2",
			[]string{
				`{Type: NUMBER, Lexeme: "1", Literal: 1}`,
				`{Type: PLUS, Lexeme: "+", Literal: 0}`,
				`{Type: NUMBER, Lexeme: "2", Literal: 2}`,
			},
			"",
		},
		{
			"spaces inside number",
			"1 2",
			[]string{
				`{Type: NUMBER, Lexeme: "12", Literal: 12}`,
			},
			"",
		},
		{
			"consecutive operators are left to the parser",
			"5++",
			[]string{
				`{Type: NUMBER, Lexeme: "5", Literal: 5}`,
				`{Type: PLUS, Lexeme: "+", Literal: 0}`,
				`{Type: PLUS, Lexeme: "+", Literal: 0}`,
			},
			"",
		},
	}

	for _, tc := range testcases {
		t.Run(tc.name, func(tt *testing.T) {
			s := scanner.NewScanner(tc.input)
			tokens, err := s.Scan()
			if tc.err != "" {
				assert.ErrorContainsf(tt, err, tc.err, "expected error %v, got %v", tc.err, err)
				assert.Nil(tt, tokens)
			} else {
				require.NoError(tt, err)
				tokensAsStrings := make([]string, len(tokens))
				for i, token := range tokens {
					tokensAsStrings[i] = token.GoString()
				}
				assert.Equal(tt, tc.expected, tokensAsStrings)
			}
		})
	}
}

func TestScanErrorKinds(t *testing.T) {
	t.Parallel()

	_, err := scanner.NewScanner("3+a").Scan()
	require.ErrorIs(t, err, calcerrors.ErrInvalidCharacter)

	var scanErr *calcerrors.ScannerError
	require.ErrorAs(t, err, &scanErr)
	assert.Equal(t, 3, scanErr.Col())

	_, err = scanner.NewScanner("2 * 1..5").Scan()
	require.ErrorIs(t, err, calcerrors.ErrNumericParse)
	require.ErrorAs(t, err, &scanErr)
	assert.Equal(t, 5, scanErr.Col())
}
