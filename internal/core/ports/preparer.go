package ports

import "io/fs"

// DirPreparer defines the interface for preparing writable runtime directories.
//
//go:generate go run go.uber.org/mock/mockgen -source=preparer.go -destination=mocks/mock_preparer.go -package=mocks
type DirPreparer interface {
	// Prepare creates the directory if absent and sets its permission bits
	// explicitly. It is idempotent: an existing directory is re-chmodded but
	// its contents are never touched.
	Prepare(path string, mode fs.FileMode) error
}
