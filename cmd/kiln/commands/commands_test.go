package commands_test

import (
	"bytes"
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/kiln/cmd/kiln/commands"
	"go.trai.ch/kiln/internal/adapters/config"
	"go.trai.ch/kiln/internal/app"
	"go.trai.ch/kiln/internal/build"
)

type mockApp struct {
	buildFunc  func(ctx context.Context, root string, force bool) error
	launchFunc func(ctx context.Context, root string) error
	exportFunc func(w io.Writer, root string) error
}

func (m *mockApp) Build(ctx context.Context, root string, force bool) error {
	if m.buildFunc != nil {
		return m.buildFunc(ctx, root, force)
	}
	return nil
}

func (m *mockApp) Launch(ctx context.Context, root string) error {
	if m.launchFunc != nil {
		return m.launchFunc(ctx, root)
	}
	return nil
}

func (m *mockApp) Export(w io.Writer, root string) error {
	if m.exportFunc != nil {
		return m.exportFunc(w, root)
	}
	return nil
}

func TestCommands_Build(t *testing.T) {
	t.Run("wires flags correctly", func(t *testing.T) {
		var capturedRoot string
		var capturedForce bool
		called := false

		mock := &mockApp{
			buildFunc: func(_ context.Context, root string, force bool) error {
				capturedRoot = root
				capturedForce = force
				called = true
				return nil
			},
		}

		cli := commands.New(mock)
		cli.SetArgs([]string{"build", "--force", "--root", "/srv/project"})
		cli.SetOutput(io.Discard, io.Discard)

		require.NoError(t, cli.Execute(context.Background()))
		assert.True(t, called)
		assert.True(t, capturedForce)
		assert.Equal(t, "/srv/project", capturedRoot)
	})

	t.Run("defaults to current directory", func(t *testing.T) {
		var capturedRoot string
		mock := &mockApp{
			buildFunc: func(_ context.Context, root string, _ bool) error {
				capturedRoot = root
				return nil
			},
		}

		cli := commands.New(mock)
		cli.SetArgs([]string{"build"})
		cli.SetOutput(io.Discard, io.Discard)

		require.NoError(t, cli.Execute(context.Background()))
		assert.Equal(t, ".", capturedRoot)
	})

	t.Run("returns error on build failure", func(t *testing.T) {
		mock := &mockApp{
			buildFunc: func(_ context.Context, _ string, _ bool) error {
				return errors.New("simulated error")
			},
		}

		cli := commands.New(mock)
		cli.SetArgs([]string{"build"})
		cli.SetOutput(io.Discard, io.Discard)

		err := cli.Execute(context.Background())
		require.Error(t, err)
		assert.Contains(t, err.Error(), "simulated error")
	})

	t.Run("rejects positional arguments", func(t *testing.T) {
		cli := commands.New(&mockApp{})
		cli.SetArgs([]string{"build", "extra"})
		cli.SetOutput(io.Discard, io.Discard)

		require.Error(t, cli.Execute(context.Background()))
	})
}

func TestCommands_Launch(t *testing.T) {
	var capturedRoot string
	mock := &mockApp{
		launchFunc: func(_ context.Context, root string) error {
			capturedRoot = root
			return nil
		},
	}

	cli := commands.New(mock)
	cli.SetArgs([]string{"launch", "-r", "/srv/project"})
	cli.SetOutput(io.Discard, io.Discard)

	require.NoError(t, cli.Execute(context.Background()))
	assert.Equal(t, "/srv/project", capturedRoot)
}

func TestCommands_Export(t *testing.T) {
	t.Run("writes to stdout by default", func(t *testing.T) {
		mock := &mockApp{
			exportFunc: func(w io.Writer, _ string) error {
				_, err := io.WriteString(w, "FROM python:3.12-slim\n")
				return err
			},
		}

		var out bytes.Buffer
		cli := commands.New(mock)
		cli.SetArgs([]string{"export"})
		cli.SetOutput(&out, io.Discard)

		require.NoError(t, cli.Execute(context.Background()))
		assert.Contains(t, out.String(), "FROM python:3.12-slim")
	})

	t.Run("propagates render errors", func(t *testing.T) {
		mock := &mockApp{
			exportFunc: func(_ io.Writer, _ string) error {
				return errors.New("render failed")
			},
		}

		cli := commands.New(mock)
		cli.SetArgs([]string{"export"})
		cli.SetOutput(io.Discard, io.Discard)

		require.Error(t, cli.Execute(context.Background()))
	})
}

func TestCommands_ConfigHook(t *testing.T) {
	t.Run("receives the config flag value", func(t *testing.T) {
		var captured string
		cli := commands.New(&mockApp{})
		cli.SetConfigHook(func(path string) { captured = path })
		cli.SetArgs([]string{"version", "--config", "other.yaml"})
		cli.SetOutput(io.Discard, io.Discard)

		require.NoError(t, cli.Execute(context.Background()))
		assert.Equal(t, "other.yaml", captured)
	})

	t.Run("receives the default when the flag is omitted", func(t *testing.T) {
		var captured string
		cli := commands.New(&mockApp{})
		cli.SetConfigHook(func(path string) { captured = path })
		cli.SetArgs([]string{"version"})
		cli.SetOutput(io.Discard, io.Discard)

		require.NoError(t, cli.Execute(context.Background()))
		assert.Equal(t, "kiln.yaml", captured)
	})
}

type nopLogger struct{}

func (nopLogger) Info(string) {}
func (nopLogger) Warn(string) {}
func (nopLogger) Error(error) {}

// TestCommands_ConfigFlagSelectsFile runs export against a real loader and
// verifies that -c points the pipeline at the alternate configuration file.
func TestCommands_ConfigFlagSelectsFile(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.WriteFile(
		filepath.Join(root, "kiln.yaml"),
		[]byte("image:\n  base: python:3.12-slim\n"),
		0o600,
	))
	require.NoError(t, os.WriteFile(
		filepath.Join(root, "other.yaml"),
		[]byte("image:\n  base: python:3.13-bookworm\n"),
		0o600,
	))

	loader := config.NewFileLoader("kiln.yaml")
	a := app.New(loader, nil, nil, nopLogger{})

	var out bytes.Buffer
	cli := commands.New(a)
	cli.SetConfigHook(loader.SetFilename)
	cli.SetArgs([]string{"export", "-c", "other.yaml", "-r", root})
	cli.SetOutput(&out, io.Discard)

	require.NoError(t, cli.Execute(context.Background()))
	assert.Contains(t, out.String(), "FROM python:3.13-bookworm")
	assert.NotContains(t, out.String(), "python:3.12-slim")
}

func TestCommands_Version(t *testing.T) {
	var out bytes.Buffer
	cli := commands.New(&mockApp{})
	cli.SetArgs([]string{"version"})
	cli.SetOutput(&out, io.Discard)

	require.NoError(t, cli.Execute(context.Background()))
	assert.Equal(t, build.Version, strings.TrimSpace(out.String()))
}
