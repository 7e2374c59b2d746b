package main

import (
	"io"

	"github.com/go-kit/log"
)

// newLogger returns the logfmt logger used for diagnostics. Results for
// the user go to stdout separately, so this normally writes to stderr.
func newLogger(w io.Writer, quiet bool) log.Logger {
	if quiet {
		return log.NewNopLogger()
	}
	l := log.NewLogfmtLogger(log.NewSyncWriter(w))
	return log.With(l, "ts", log.DefaultTimestampUTC, "caller", log.DefaultCaller)
}
