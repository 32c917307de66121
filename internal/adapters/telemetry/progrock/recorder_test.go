package progrock_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/kiln/internal/adapters/telemetry/progrock"
	"go.trai.ch/kiln/internal/core/domain"
)

func TestNew(t *testing.T) {
	recorder := progrock.New(new(bytes.Buffer))
	assert.NotNil(t, recorder)
}

// TestRecorder_RendersStepOutput verifies that whatever a stage writes to its
// vertex streams actually reaches the operator-facing output.
func TestRecorder_RendersStepOutput(t *testing.T) {
	var out bytes.Buffer
	recorder := progrock.New(&out)

	_, vertex := recorder.Record(context.Background(), "backend-deps")
	_, err := vertex.Stdout().Write([]byte("uv sync --locked output\n"))
	require.NoError(t, err)
	vertex.Complete(nil)

	require.NoError(t, recorder.Close())
	assert.Contains(t, out.String(), "backend-deps")
	assert.Contains(t, out.String(), "uv sync --locked output")
}

// TestRecorder_RendersWarnings verifies that vertex log messages are rendered.
func TestRecorder_RendersWarnings(t *testing.T) {
	var out bytes.Buffer
	recorder := progrock.New(&out)

	_, vertex := recorder.Record(context.Background(), "frontend-deps")
	vertex.Log(domain.LogLevelWarn, "frontend lockfile missing, dependency versions are not pinned")
	vertex.Complete(nil)

	require.NoError(t, recorder.Close())
	assert.Contains(t, out.String(), "dependency versions are not pinned")
}

func TestRecorder_RendersFailedVertex(t *testing.T) {
	var out bytes.Buffer
	recorder := progrock.New(&out)

	_, vertex := recorder.Record(context.Background(), "source")
	vertex.Complete(assert.AnError)

	require.NoError(t, recorder.Close())
	assert.Contains(t, out.String(), "source")
}
