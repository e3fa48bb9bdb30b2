package calcerrors

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidCharacter = errors.New("invalid character")
	ErrNumericParse     = errors.New("invalid number")
)

type ScannerError struct {
	col     int
	cause   error
	details string
}

func NewScanError(col int, cause error, details string) *ScannerError {
	return &ScannerError{col, cause, details}
}

// Col returns the 1-based column of the offending input.
func (s *ScannerError) Col() int {
	return s.col
}

// Error implements error.
func (s *ScannerError) Error() string {
	details := s.details
	if details != "" {
		details = " " + details
	}
	return fmt.Sprintf("%v%s at column %d", s.cause, details, s.col)
}

func (s *ScannerError) Unwrap() error {
	return s.cause
}

var _ error = (*ScannerError)(nil)
var _ unwrapInterface = (*ScannerError)(nil)
