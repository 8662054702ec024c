package testutils

import (
	"testing"

	"github.com/edaniels/golog"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest"
	"go.uber.org/zap/zaptest/observer"
)

// NewObservedLogger returns a logger named name that writes to the go test log and also saves every entry
// to an in memory observer.
func NewObservedLogger(t *testing.T, name string) (golog.Logger, *observer.ObservedLogs) {
	t.Helper()
	observerCore, observedLogs := observer.New(zap.LevelEnablerFunc(zapcore.DebugLevel.Enabled))
	logger := zaptest.NewLogger(t, zaptest.WrapOptions(zap.WrapCore(func(c zapcore.Core) zapcore.Core {
		return zapcore.NewTee(c, observerCore)
	})))
	return logger.Sugar().Named(name), observedLogs
}

// Warnings returns the warn level entries whose message contains snippet.
func Warnings(logs *observer.ObservedLogs, snippet string) []observer.LoggedEntry {
	return logs.FilterLevelExact(zapcore.WarnLevel).FilterMessageSnippet(snippet).All()
}
