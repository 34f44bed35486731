package logging

import (
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestNopDiscardsWithoutPanicking(t *testing.T) {
	l := Nop()
	require.NotPanics(t, func() {
		l.Debug("debug")
		l.Info("info", zap.String("k", "v"))
		l.Warn("warn")
		l.Error("error")
		require.NoError(t, l.Sync())
	})
}

func TestNilLoggerIsSafe(t *testing.T) {
	var l *Logger
	require.NotPanics(t, func() {
		l.Info("ignored")
		require.NoError(t, l.Sync())
	})
	require.NotNil(t, l.With(zap.String("k", "v")))
}

func TestNewWrapsNilAsNop(t *testing.T) {
	l := New(nil)
	require.NotPanics(t, func() { l.Info("ignored") })
}

func TestWithAttachesFields(t *testing.T) {
	l := Nop().With(zap.String("component", "test"))
	require.NotPanics(t, func() { l.Info("hello") })
}
