package input

import (
	"io"
	"log/slog"
)

type parser struct {
	logger *slog.Logger
}

type option func(parser) parser

func newParser(opts ...option) parser {
	p := parser{
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		p = opt(p)
	}
	return p
}

// WithLogger makes the parser report skipped lines at debug level.
func WithLogger(logger *slog.Logger) option {
	return func(p parser) parser {
		if logger != nil {
			p.logger = logger
		}
		return p
	}
}
