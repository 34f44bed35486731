// Package logging wraps zap.Logger with the engine-scoped field
// conventions used by NewEngine: a loaded kernel's path and segment
// count are attached as structured fields rather than interpolated into
// the message string. The chain resolver does not log, so the
// barycenter fallback leaves no log entry.
//
// Grounded on data-power-io-noesis-connectors/libs/go/logging/structured.go's
// ConnectorLogger wrapper shape, adapted to this engine's narrower needs
// (construction-time diagnostics, not a general request-logging facade).
package logging

import "go.uber.org/zap"

// Logger wraps *zap.Logger. A nil *Logger is valid and logs nothing,
// matching every other ambient-stack component's nil-safe-default shape
// in this module (so Engine construction never requires a logger).
type Logger struct {
	z *zap.Logger
}

// New wraps an existing zap.Logger. Passing nil yields a no-op Logger.
func New(z *zap.Logger) *Logger {
	if z == nil {
		z = zap.NewNop()
	}
	return &Logger{z: z}
}

// Nop returns a Logger that discards everything, the engine's default
// when EngineConfig.Logger is unset.
func Nop() *Logger { return &Logger{z: zap.NewNop()} }

// With returns a derived Logger with additional structured fields attached.
func (l *Logger) With(fields ...zap.Field) *Logger {
	if l == nil {
		return Nop()
	}
	return &Logger{z: l.z.With(fields...)}
}

func (l *Logger) Debug(msg string, fields ...zap.Field) {
	if l == nil {
		return
	}
	l.z.Debug(msg, fields...)
}

func (l *Logger) Info(msg string, fields ...zap.Field) {
	if l == nil {
		return
	}
	l.z.Info(msg, fields...)
}

func (l *Logger) Warn(msg string, fields ...zap.Field) {
	if l == nil {
		return
	}
	l.z.Warn(msg, fields...)
}

func (l *Logger) Error(msg string, fields ...zap.Field) {
	if l == nil {
		return
	}
	l.z.Error(msg, fields...)
}

// Sync flushes any buffered log entries.
func (l *Logger) Sync() error {
	if l == nil {
		return nil
	}
	return l.z.Sync()
}
