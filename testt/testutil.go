// Package testt (for test tools), provides a couple of useful helpers
// for the tests of listsort and its users: deterministic list
// builders, contexts bound to the test's lifetime, and observed
// loggers.
package testt

import (
	"context"
	"math/rand/v2"
	"testing"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/tychoish/listsort/seq"
)

// Context creates a context and attaches its cancellation function to
// the test execution's Cleanup. Given the execution of tests, this
// means that the context is canceled *after* the test functions
// defers have run.
func Context(t testing.TB) context.Context {
	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)
	return ctx
}

// ContextWithTimeout creates a context with the specified timeout,
// and attaches the cancellation to the test execution's cleanup.
func ContextWithTimeout(t testing.TB, dur time.Duration) context.Context {
	ctx, cancel := context.WithTimeout(context.Background(), dur)
	t.Cleanup(cancel)
	return ctx
}

// Log calls t.Log with the given arguments *if* the test has failed.
func Log(t testing.TB, args ...any) {
	t.Helper()
	if t.Failed() {
		t.Log(args...)
	}
}

// Logf calls t.Log with the given arguments *if* the test has failed.
func Logf(t testing.TB, format string, args ...any) {
	t.Helper()
	if t.Failed() {
		t.Logf(format, args...)
	}
}

// Rand returns a random number generator with a fixed seed, so that
// every run of a test sees the same inputs.
func Rand(t testing.TB) *rand.Rand {
	t.Helper()
	return rand.New(rand.NewPCG(314159265, 1618033989))
}

// Ascending builds the list 0, 1, ..., size-1.
func Ascending(size int) *seq.List[int] {
	list := &seq.List[int]{}
	for i := 0; i < size; i++ {
		list.PushBack(i)
	}
	return list
}

// Random builds a list of size values drawn uniformly from [0, limit).
func Random(rng *rand.Rand, size, limit int) *seq.List[int] {
	list := &seq.List[int]{}
	for i := 0; i < size; i++ {
		list.PushBack(rng.IntN(limit))
	}
	return list
}

// Logger returns a logger that records every entry at or above the
// level, and the log of recorded entries.
func Logger(t testing.TB, level zapcore.Level) (*zap.Logger, *observer.ObservedLogs) {
	t.Helper()
	core, logs := observer.New(level)
	logger := zap.New(core)
	t.Cleanup(func() { _ = logger.Sync() })
	return logger, logs
}
