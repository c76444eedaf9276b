// Package logging creates the logger used by the command.  Messages are text on stderr
// (so they don't mix with results on stdout) and only warnings and errors are shown
// unless verbose output is asked for.
package logging

import (
	"io"
	"log/slog"
)

// Level returns the minimum level that is logged
func Level(verbose bool) slog.Level {
	if verbose {
		return slog.LevelDebug
	}
	return slog.LevelWarn
}

// New returns a logger that writes text to w
func New(w io.Writer, verbose bool) *slog.Logger {
	handler := slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: Level(verbose),
	})
	return slog.New(handler.WithAttrs([]slog.Attr{slog.String("app", "gqlpath")}))
}
