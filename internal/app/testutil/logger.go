package testutil

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

// NewObservedLogger returns a logger that records every entry at debug level
// and above, for assertions on messages and fields.
func NewObservedLogger() (*zap.Logger, *observer.ObservedLogs) {
	core, logs := observer.New(zapcore.DebugLevel)
	return zap.New(core), logs
}

// FieldValues flattens the context of each entry into a map keyed by field name
func FieldValues(entry observer.LoggedEntry) map[string]interface{} {
	return entry.ContextMap()
}
