package logger_test

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
	"go.trai.ch/kiln/internal/adapters/logger"
)

// newTestLogger creates a logger with an injected bytes.Buffer for isolated testing.
func newTestLogger(t *testing.T) (*logger.Logger, *bytes.Buffer) {
	t.Helper()
	buf := &bytes.Buffer{}
	lg := logger.New().(*logger.Logger)
	lg.SetOutput(buf)
	return lg, buf
}

func TestLogger_Info(t *testing.T) {
	lg, buf := newTestLogger(t)
	lg.Info("building stage base")

	out := buf.String()
	require.Contains(t, out, "level=INFO")
	require.Contains(t, out, "building stage base")
}

func TestLogger_Warn(t *testing.T) {
	lg, buf := newTestLogger(t)
	lg.Warn("no lockfile found")

	out := buf.String()
	require.Contains(t, out, "level=WARN")
	require.Contains(t, out, "no lockfile found")
}

func TestLogger_Error(t *testing.T) {
	lg, buf := newTestLogger(t)
	lg.Error(errors.New("stage base failed"))

	out := buf.String()
	require.Contains(t, out, "level=ERROR")
	require.Contains(t, out, "stage base failed")
}

func TestLogger_ConcurrentUse(t *testing.T) {
	lg, _ := newTestLogger(t)

	done := make(chan struct{})
	go func() {
		defer close(done)
		for range 100 {
			lg.Info("concurrent message")
		}
	}()
	for range 100 {
		lg.SetOutput(&bytes.Buffer{})
	}
	<-done
}
