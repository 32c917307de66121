package domain

// StageKind identifies which part of the provisioning sequence a stage implements.
type StageKind string

const (
	// KindBase provisions the operating environment: system packages and the
	// second language runtime.
	KindBase StageKind = "base"
	// KindBackendDeps materializes the backend dependency environment from its
	// manifest and lockfile.
	KindBackendDeps StageKind = "backend-deps"
	// KindFrontendDeps materializes the frontend dependency tree in production mode.
	KindFrontendDeps StageKind = "frontend-deps"
	// KindSource assembles the remaining project tree after both dependency stages.
	KindSource StageKind = "source"
	// KindRuntimeDirs prepares writable runtime directories with fixed permissions.
	KindRuntimeDirs StageKind = "runtime-dirs"
)

// Step is a single command invocation executed as part of a stage.
type Step struct {
	// Name is a short human-readable label for progress display.
	Name string
	// Command is the argv to execute. Empty commands are no-ops.
	Command []string
	// Environment holds per-step environment variable overrides.
	Environment map[string]string
}

// Stage is one sequential unit of the pipeline. A stage's cache key is
// derived from its definition plus the content of its inputs, so two stages
// with identical definitions and inputs produce identical layers.
type Stage struct {
	Name InternedString
	Kind StageKind

	// WorkingDir is the directory steps run in, relative to the build root.
	WorkingDir string

	// Inputs are files that must exist and whose content keys the layer cache.
	Inputs []InternedString

	// OptionalInputs are files whose presence and content key the cache but
	// whose absence is tolerated. The frontend lockfile is the only current use.
	OptionalInputs []InternedString

	// Steps run in order; the first failure aborts the stage and the build.
	Steps []Step

	// Environment holds stage-wide environment variable overrides.
	Environment map[string]string

	// Unpinned marks a stage that fell back to manifest-only resolution
	// because its lockfile was absent. Surfaced as a determinism warning.
	Unpinned bool

	// AssembleTo is the destination directory for a source assembly stage.
	// Empty means the tree is built in place and only verified.
	AssembleTo string

	// Ignores lists directory names excluded from source walks: the
	// dependency environments and the state directory, so that assembling
	// source never invalidates or touches the dependency layers.
	Ignores []string

	// Dirs lists writable runtime directories a runtime-dirs stage prepares.
	Dirs []DirSpec
}

// DirSpec describes one writable runtime directory with fixed permissions.
type DirSpec struct {
	Path string
	Mode uint32
}
