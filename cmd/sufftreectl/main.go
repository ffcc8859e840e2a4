// Command sufftreectl is an illustrative CLI harness over the sufftree
// library: build a tree from a handful of strings given on the command
// line and run one query against it. It is a thin adapter over the
// library and carries none of its own domain logic.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/lmittmann/tint"
	"github.com/mattn/go-isatty"
)

func main() {
	slog.SetDefault(slog.New(newHandler(os.Stderr)))

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "sufftreectl:", err)
		os.Exit(1)
	}
}

// newHandler picks a colorized handler for an interactive terminal and
// falls back to plain text otherwise, following the pattern several
// CLIs in the retrieved pack use for slog setup.
func newHandler(w *os.File) slog.Handler {
	if isatty.IsTerminal(w.Fd()) {
		return tint.NewHandler(w, &tint.Options{Level: slog.LevelInfo})
	}
	return slog.NewTextHandler(w, &slog.HandlerOptions{Level: slog.LevelInfo})
}
