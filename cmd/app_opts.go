package cmd

import (
	"io"
	"os"

	"github.com/chzyer/readline"

	"github.com/leonardinius/gocalc/internal/config"
)

// LineReader is the console input used by the interactive prompt.
// *readline.Instance implements it.
type LineReader interface {
	Readline() (string, error)
	Close() error
}

type appOpts struct {
	stdout        io.Writer
	stderr        io.Writer
	newLineReader func(cfg *config.Config) (LineReader, error)
}

type AppOption func(*appOpts)

func WithStdout(stdout io.Writer) AppOption {
	return func(opts *appOpts) {
		opts.stdout = stdout
	}
}

func WithStderr(stderr io.Writer) AppOption {
	return func(opts *appOpts) {
		opts.stderr = stderr
	}
}

func WithLineReader(newLineReader func(cfg *config.Config) (LineReader, error)) AppOption {
	return func(opts *appOpts) {
		opts.newLineReader = newLineReader
	}
}

func newAppOpts(options ...AppOption) *appOpts {
	opts := appOpts{
		stdout:        os.Stdout,
		stderr:        os.Stderr,
		newLineReader: newReadline,
	}
	for _, opt := range options {
		opt(&opts)
	}
	return &opts
}

func newReadline(cfg *config.Config) (LineReader, error) {
	return readline.NewEx(&readline.Config{
		Prompt:          cfg.Prompt,
		HistoryFile:     cfg.HistoryFile,
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",
	})
}
