// Package report delivers internal error reports from the bridge. Reporting
// is fire-and-forget: the bridge never consumes a result and never fails
// because a sink did.
package report

import (
	"context"
	"log/slog"
	"os"
	"sync/atomic"
	"time"

	slogmulti "github.com/samber/slog-multi"
	slogjournal "github.com/systemd/slog-journal"
)

var level = new(slog.LevelVar)

var logger atomic.Pointer[slog.Logger]

func init() {
	logger.Store(newLogger())
}

// SetLevel adjusts the minimum level of the terminal sink.
func SetLevel(l slog.Level) {
	level.Set(l)
}

func newLogger() *slog.Logger {
	terminal := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})
	handlers := []slog.Handler{terminal}

	// systemd journal, when the process runs under one
	journalHandler, err := slogjournal.NewHandler(&slogjournal.Options{})
	if err != nil {
		record := slog.NewRecord(time.Now(), slog.LevelWarn, "new systemd journal handler", 0)
		record.Add("error", err)
		_ = terminal.Handle(context.Background(), record)
	} else {
		handlers = append(handlers, journalHandler)
	}

	return slog.New(slogmulti.Fanout(handlers...))
}

// Internal reports an internal bridge error. It never panics and never
// blocks on sink failures.
func Internal(msg string) {
	logger.Load().Error(msg)
}

// Swap installs a handler in place of the configured sinks and returns a
// restore func. Tests use it to observe reports.
func Swap(h slog.Handler) (restore func()) {
	prev := logger.Swap(slog.New(h))
	return func() {
		logger.Store(prev)
	}
}
