package domain

import "path/filepath"

// Environment is an explicit handle for one isolated dependency environment.
// The backend virtualenv and the frontend node_modules tree coexist in the
// same image with no shared namespace; each is addressed through its handle
// rather than through ambient global state.
type Environment struct {
	// Name identifies the environment ("backend", "frontend").
	Name string

	// Root is the environment's directory, relative to the project root
	// (".venv", "frontend/node_modules").
	Root string

	// Runtime names the interpreter the environment serves ("python", "node").
	Runtime string
}

// BinDir returns the directory containing the environment's executables.
func (e Environment) BinDir() string {
	switch e.Runtime {
	case "node":
		return filepath.Join(e.Root, ".bin")
	default:
		return filepath.Join(e.Root, "bin")
	}
}

// Interpreter returns the path to the environment's interpreter binary.
func (e Environment) Interpreter() string {
	return filepath.Join(e.BinDir(), e.Runtime)
}
