package domain

// Blueprint is the validated, declarative description of one deployable unit,
// as read from the project's kiln.yaml. The stage compiler turns it into a
// Pipeline; the exporters turn it into other build formats.
type Blueprint struct {
	// BaseImage is the interpreter base the pipeline provisions on top of.
	BaseImage string

	// SystemPackages are installed by the base stage (compiler, fetch tool,
	// version control).
	SystemPackages []string

	// NodeSetupURL is the vendor-provided script that installs the second
	// scripting runtime.
	NodeSetupURL string

	// Backend describes the backend dependency ecosystem.
	Backend BackendSpec

	// Frontend describes the frontend dependency ecosystem.
	Frontend FrontendSpec

	// AssembleDir is the directory the source tree is assembled into. Empty
	// means the build runs in place and the source stage only keys the cache.
	AssembleDir string

	// UploadDir is the writable runtime directory for uploaded artifacts.
	UploadDir string

	// UploadDirMode holds the fixed permission bits for UploadDir.
	UploadDirMode uint32

	// Launch is the process entry point of the image.
	Launch LaunchSpec
}

// BackendSpec describes the backend runtime and its dependency inputs.
type BackendSpec struct {
	Manifest string
	Lockfile string
	Entry    string
	EnvRoot  string
}

// FrontendSpec describes the frontend runtime and its dependency inputs.
type FrontendSpec struct {
	Dir      string
	Manifest string
	Lockfile string
}
