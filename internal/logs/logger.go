package logs

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/google/uuid"
	slogmulti "github.com/samber/slog-multi"
)

type Options struct {
	Level slog.Level
	// File, when set, receives every record as JSON in addition to the terminal.
	File string
}

// New returns a logger writing text records to w and, optionally, JSON records
// to a file. The returned close func releases the file.
func New(w io.Writer, opts Options) (*slog.Logger, func() error, error) {
	level := new(slog.LevelVar)
	level.Set(opts.Level)

	handlers := []slog.Handler{
		slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}),
	}

	closeFn := func() error { return nil }
	if opts.File != "" {
		f, err := os.OpenFile(opts.File, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("open log file: %w", err)
		}
		handlers = append(handlers, slog.NewJSONHandler(f, &slog.HandlerOptions{Level: level}))
		closeFn = f.Close
	}

	return slog.New(slogmulti.Fanout(handlers...)), closeFn, nil
}

// WithSession tags every record of logger with a fresh session id.
func WithSession(logger *slog.Logger) *slog.Logger {
	return logger.With("session", uuid.NewString())
}
