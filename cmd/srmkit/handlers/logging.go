package handlers

import (
	"fmt"
	"io"
	"os"

	"github.com/go-logr/logr"
	"github.com/go-logr/logr/funcr"
)

// logOutput receives the log lines; tests replace it.
var logOutput io.Writer = os.Stderr

// newLogger returns a logger writing key/value lines to logOutput. Debug
// lines (V(1)) are only written in verbose mode.
func newLogger(verbose bool) logr.Logger {
	verbosity := 0
	if verbose {
		verbosity = 1
	}
	return funcr.New(func(prefix, args string) {
		if prefix != "" {
			fmt.Fprintf(logOutput, "%s: %s\n", prefix, args)
			return
		}
		fmt.Fprintln(logOutput, args)
	}, funcr.Options{
		Verbosity:    verbosity,
		LogTimestamp: verbose,
	})
}
