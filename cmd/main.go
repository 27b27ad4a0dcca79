package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/pterm/pterm"

	"github.com/luca-patrignani/camel-cards/domain/hand"
	"github.com/luca-patrignani/camel-cards/domain/ranking"
	"github.com/luca-patrignani/camel-cards/input"
)

const inputFile = "day-7.txt"

func main() {
	logger := newLogger(os.Stderr)

	if err := run(os.Stdout, inputFile, logger); err != nil {
		logger.Error("failed to rank hands", "error", err.Error())
		os.Exit(1)
	}
}

// newLogger builds a slog logger on top of the pterm logger, writing to w.
func newLogger(w io.Writer) *slog.Logger {
	handler := pterm.NewSlogHandler(pterm.DefaultLogger.WithWriter(w))
	return slog.New(handler)
}

// run ranks the hands in path and prints the plain total and then the
// wildcard total to w. Both totals are computed before anything is written.
func run(w io.Writer, path string, logger *slog.Logger) error {
	hands, err := input.ParseFile(path, input.WithLogger(logger))
	if err != nil {
		return err
	}

	report := ranking.Evaluate(hands)

	if logger.Enabled(context.Background(), slog.LevelDebug) {
		for _, rule := range hand.Rules {
			table, err := renderStandings(ranking.Standings(hands, rule), rule)
			if err != nil {
				logger.Warn("cannot render ranking table", "rule", rule.String(), "error", err.Error())
				continue
			}
			logger.Debug("ranking\n"+table, "rule", rule.String(), "total", report.Total(rule))
		}
	}

	_, err = fmt.Fprintf(w, "%d\n%d\n", report.Plain, report.Wildcard)
	return err
}
