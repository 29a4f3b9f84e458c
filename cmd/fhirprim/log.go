package main

import (
	"io"
	"log/slog"
	"os"
)

// theLog writes run summaries to stderr, keeping stdout for results. Set
// FHIRPRIM_VERBOSE for full records.
var theLog = newLog(os.Stderr, os.Getenv("FHIRPRIM_VERBOSE") != "")

func newLog(w io.Writer, verbose bool) *slog.Logger {
	opts := &slog.HandlerOptions{}
	if verbose {
		opts.Level = slog.LevelDebug
	} else {
		opts.ReplaceAttr = terse
	}
	return slog.New(slog.NewTextHandler(w, opts))
}

// terse drops the time of records and the level of those below warning.
func terse(groups []string, a slog.Attr) slog.Attr {
	if len(groups) != 0 {
		return a
	}
	switch a.Key {
	case slog.TimeKey:
		return slog.Attr{}
	case slog.LevelKey:
		if lv, ok := a.Value.Any().(slog.Level); ok && lv < slog.LevelWarn {
			return slog.Attr{}
		}
	}
	return a
}
