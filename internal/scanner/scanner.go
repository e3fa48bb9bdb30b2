package scanner

import (
	"strconv"
	"unicode"

	"github.com/leonardinius/gocalc/internal/calcerrors"
	"github.com/leonardinius/gocalc/internal/token"
)

// Scanner turns an expression into a flat token sequence.
type Scanner interface {
	Scan() ([]token.Token, error)
}

type scanner struct {
	source  []rune
	tokens  []token.Token
	number  []rune
	start   int
	current int
	err     error
}

// NewScanner returns a new Scanner.
func NewScanner(input string) Scanner {
	return &scanner{source: []rune(input)}
}

// Scan implements Scanner.
//
// Whitespace is insignificant everywhere, including between digits:
// "1 2" scans as the single number 12.
func (s *scanner) Scan() ([]token.Token, error) {
	for !s.isDone() {
		s.scanToken()
	}

	if !s.hasErr() {
		s.flushNumber()
	}

	if s.hasErr() {
		return nil, s.err
	}

	return s.tokens, nil
}

func (s *scanner) isAtEnd() bool {
	return s.current >= len(s.source)
}

func (s *scanner) hasErr() bool {
	return s.err != nil
}

func (s *scanner) isDone() bool {
	return s.isAtEnd() || s.hasErr()
}

func (s *scanner) scanToken() {
	c := s.advance()

	if unicode.IsSpace(c) {
		return
	}

	if s.isDigit(c) || c == '.' {
		if len(s.number) == 0 {
			s.start = s.current
		}
		s.number = append(s.number, c)
		return
	}

	if tokenType, ok := token.Operators[c]; ok {
		s.flushNumber()
		s.addToken(tokenType, c)
		return
	}

	s.reportInvalidCharacter(c)
}

func (s *scanner) advance() rune {
	s.current++
	return s.source[s.current-1]
}

func (s *scanner) addToken(t token.TokenType, symbol rune) {
	s.tokens = append(s.tokens, token.NewToken(t, string(symbol), 0))
}

func (s *scanner) flushNumber() {
	if len(s.number) == 0 || s.hasErr() {
		return
	}

	lexeme := string(s.number)
	s.number = s.number[:0]

	value, err := strconv.ParseFloat(lexeme, 64)
	if err != nil {
		s.err = calcerrors.NewScanError(s.start, calcerrors.ErrNumericParse, strconv.Quote(lexeme))
		return
	}
	s.tokens = append(s.tokens, token.NewToken(token.NUMBER, lexeme, value))
}

func (s *scanner) isDigit(c rune) bool {
	return c >= '0' && c <= '9'
}

func (s *scanner) reportInvalidCharacter(c rune) {
	s.err = calcerrors.NewScanError(s.current, calcerrors.ErrInvalidCharacter, strconv.QuoteRune(c))
}

var _ Scanner = (*scanner)(nil)
