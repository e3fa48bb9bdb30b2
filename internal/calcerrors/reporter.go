package calcerrors

import (
	"fmt"
	"io"
)

const errorPrefix = "Erro:"

type ErrReporter interface {
	ReportPanic(err error)
	ReportError(err error)
}

type errReporter struct {
	w io.Writer
}

func NewErrReporter(w io.Writer) *errReporter {
	return &errReporter{w: w}
}

// ReportPanic implements ErrReporter.
func (e *errReporter) ReportPanic(err error) {
	writePanic(e.w, err)
}

// ReportError implements ErrReporter.
func (e *errReporter) ReportError(err error) {
	writeError(e.w, err)
}

func writePanic(w io.Writer, err error) {
	fmt.Fprintf(w, "%s internal failure: %v\n\n", errorPrefix, err)
}

func writeError(w io.Writer, err error) {
	fmt.Fprintf(w, "%s %v\n\n", errorPrefix, err)
}

var _ ErrReporter = (*errReporter)(nil)
