package domain

// DependencySet pairs a dependency manifest with its (possibly absent)
// lockfile. The lockfile is a nullable input: its absence is tolerated for
// the frontend but makes the resulting layer non-reproducible.
type DependencySet struct {
	// Manifest is the path to the manifest file, relative to the project root.
	Manifest string

	// Lockfile is the path to the lockfile, relative to the project root.
	// Empty means no lockfile is declared.
	Lockfile string

	// LockfilePresent records whether the declared lockfile actually existed
	// when the pipeline was compiled.
	LockfilePresent bool

	// Production excludes development-only dependencies from the install.
	Production bool
}

// Pinned reports whether the install is fully reproducible from a lockfile.
func (d DependencySet) Pinned() bool {
	return d.Lockfile != "" && d.LockfilePresent
}
