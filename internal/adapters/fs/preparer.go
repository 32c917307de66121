package fs

import (
	iofs "io/fs"
	"os"

	"go.trai.ch/kiln/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.DirPreparer = (*Preparer)(nil)

// Preparer implements ports.DirPreparer for writable runtime directories.
type Preparer struct{}

// NewPreparer creates a new Preparer.
func NewPreparer() *Preparer {
	return &Preparer{}
}

// Prepare creates the directory if absent and sets its permission bits
// explicitly. MkdirAll tolerates an existing directory, and the chmod runs
// unconditionally so the bits are fixed even when the directory pre-dates
// the build. Existing contents are never touched.
func (p *Preparer) Prepare(path string, mode iofs.FileMode) error {
	if err := os.MkdirAll(path, mode); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to create runtime directory"), "path", path)
	}
	if err := os.Chmod(path, mode); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to set directory mode"), "path", path)
	}
	return nil
}
