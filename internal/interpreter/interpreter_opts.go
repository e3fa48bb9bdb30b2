package interpreter

import (
	"log/slog"
)

type interpreterOpts struct {
	logger *slog.Logger
}

type InterpreterOption func(*interpreterOpts)

func WithLogger(logger *slog.Logger) InterpreterOption {
	return func(opts *interpreterOpts) {
		opts.logger = logger
	}
}

func newInterpreterOpts(options ...InterpreterOption) *interpreterOpts {
	opts := interpreterOpts{}
	for _, opt := range options {
		opt(&opts)
	}

	if opts.logger == nil {
		opts.logger = slog.Default()
	}

	return &opts
}
