package fs

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"runtime"

	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

// Copier mirrors a project tree into a staging directory. It is used by the
// source assembly stage; the dependency environments are ignored so that a
// copy never touches what the earlier stages materialized.
type Copier struct {
	walker *Walker
}

// NewCopier creates a new Copier.
func NewCopier(walker *Walker) *Copier {
	return &Copier{walker: walker}
}

// CopyTree copies every file under src into dst, preserving relative paths
// and file modes. Files are copied with bounded parallelism; the pipeline
// contract only requires that the stage as a whole completes before the next
// begins.
func (c *Copier) CopyTree(ctx context.Context, src, dst string, ignores []string) error {
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.NumCPU())

	for path := range c.walker.WalkFiles(src, ignores) {
		rel, err := filepath.Rel(src, path)
		if err != nil {
			return zerr.With(zerr.Wrap(err, "failed to relativize path"), "path", path)
		}

		g.Go(func() error {
			if gctx.Err() != nil {
				return gctx.Err()
			}
			return copyFile(path, filepath.Join(dst, rel))
		})
	}

	return g.Wait()
}

func copyFile(src, dst string) error {
	info, err := os.Stat(src)
	if err != nil {
		return zerr.With(zerr.Wrap(err, "failed to stat source"), "path", src)
	}

	if err := os.MkdirAll(filepath.Dir(dst), 0o755); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to create target directory"), "path", dst)
	}

	in, err := os.Open(src) //nolint:gosec // Path comes from the walked tree
	if err != nil {
		return zerr.With(zerr.Wrap(err, "failed to open source"), "path", src)
	}
	defer in.Close() //nolint:errcheck // Best effort close in defer

	out, err := os.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, info.Mode().Perm()) //nolint:gosec // Path derived from walked tree
	if err != nil {
		return zerr.With(zerr.Wrap(err, "failed to create target"), "path", dst)
	}

	if _, err := io.Copy(out, in); err != nil {
		_ = out.Close()
		return zerr.With(zerr.Wrap(err, "failed to copy file"), "path", dst)
	}

	if err := out.Close(); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to close target"), "path", dst)
	}
	return nil
}
