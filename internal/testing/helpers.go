package testing

import (
	"context"
	"testing"
	"time"

	"github.com/go-logr/logr"
	"github.com/go-logr/logr/funcr"
)

// TestContext returns a context with a reasonable timeout for tests.
func TestContext(t *testing.T) context.Context {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	t.Cleanup(cancel)
	return ctx
}

// TestLogger returns a logger writing every line, debug included, to t.Log.
func TestLogger(t *testing.T) logr.Logger {
	return funcr.New(func(prefix, args string) {
		t.Helper()
		if prefix != "" {
			t.Logf("%s: %s", prefix, args)
			return
		}
		t.Log(args)
	}, funcr.Options{Verbosity: 1})
}
