// Package testutil provides shared helpers for tests that need a scratch
// directory, a store, or a quiet logger.
package testutil

import (
	"io"
	"log/slog"
	"strconv"
	"testing"
	"time"

	"github.com/starford/boreacrutis/internal/storage"
)

// Epoch is the fixed instant used by deterministic clocks in tests.
var Epoch = time.Date(2024, 1, 15, 9, 30, 0, 0, time.UTC)

// Clock returns a clock that always reports Epoch.
func Clock() func() time.Time {
	return func() time.Time { return Epoch }
}

// Logger returns a logger that discards everything.
func Logger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// TestFS creates a temporary directory wrapped in a storage.FS.
func TestFS(t *testing.T) (string, *storage.FS) {
	t.Helper()
	dir := t.TempDir()
	fs, err := storage.NewFS(dir)
	if err != nil {
		t.Fatal(err)
	}
	return dir, fs
}

// Sequence returns an id generator yielding prefix-1, prefix-2, ...
func Sequence() func(prefix string) string {
	n := 0
	return func(prefix string) string {
		n++
		return prefix + "-" + strconv.Itoa(n)
	}
}

