// Package app implements the application layer for kiln.
package app

import (
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"

	"go.trai.ch/kiln/internal/adapters/dockerfile"
	"go.trai.ch/kiln/internal/adapters/oci"
	"go.trai.ch/kiln/internal/core/domain"
	"go.trai.ch/kiln/internal/core/ports"
	"go.trai.ch/kiln/internal/engine/launch"
	"go.trai.ch/kiln/internal/engine/runner"
	"go.trai.ch/kiln/internal/engine/stages"
	"go.trai.ch/zerr"
)

// App represents the main application logic.
type App struct {
	loader   ports.BlueprintLoader
	runner   *runner.Runner
	launcher *launch.Launcher
	logger   ports.Logger
}

// New creates a new App instance.
func New(loader ports.BlueprintLoader, r *runner.Runner, l *launch.Launcher, logger ports.Logger) *App {
	return &App{
		loader:   loader,
		runner:   r,
		launcher: l,
		logger:   logger,
	}
}

// Build runs the full pipeline against the given project root and, on
// success, emits the OCI image config describing the layer chain and entry
// point.
func (a *App) Build(ctx context.Context, root string, force bool) error {
	bp, err := a.loader.Load(root)
	if err != nil {
		return zerr.Wrap(err, "failed to load configuration")
	}

	pipeline, err := stages.Compile(root, bp)
	if err != nil {
		return zerr.Wrap(err, "failed to compile pipeline")
	}

	layers, err := a.runner.Run(ctx, pipeline, root, force)
	if err != nil {
		a.logger.Error(err)
		return errors.Join(domain.ErrBuildExecutionFailed, err)
	}

	writer := oci.NewWriter(filepath.Join(root, ".kiln", "image.json"))
	if err := writer.Write(bp, layers); err != nil {
		return zerr.Wrap(err, "failed to write image config")
	}

	a.logger.Info("build complete")
	return nil
}

// Launch starts the backend process as defined by the entry-point contract
// and blocks until it exits.
func (a *App) Launch(ctx context.Context, root string) error {
	bp, err := a.loader.Load(root)
	if err != nil {
		return zerr.Wrap(err, "failed to load configuration")
	}

	return a.launcher.Launch(ctx, bp.Launch, root, os.Environ())
}

// Export renders the blueprint as an equivalent container build file.
func (a *App) Export(w io.Writer, root string) error {
	bp, err := a.loader.Load(root)
	if err != nil {
		return zerr.Wrap(err, "failed to load configuration")
	}

	lockPath := filepath.Join(root, bp.Frontend.Dir, bp.Frontend.Lockfile)
	_, statErr := os.Stat(lockPath)
	return dockerfile.Render(w, bp, statErr == nil)
}
