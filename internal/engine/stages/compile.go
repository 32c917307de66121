// Package stages compiles a blueprint into the fixed provisioning sequence.
package stages

import (
	"os"
	"path"
	"path/filepath"

	"go.trai.ch/kiln/internal/core/domain"
	"go.trai.ch/zerr"
)

// Stage names of the fixed sequence, in order.
const (
	StageBase         = "base"
	StageBackendDeps  = "backend-deps"
	StageFrontendDeps = "frontend-deps"
	StageSource       = "source"
	StageRuntimeDirs  = "runtime-dirs"
)

// Compile turns a blueprint into the linear five-stage pipeline. The frontend
// lockfile is probed on disk here: its presence selects the pinned install
// path, its absence the manifest-only fallback.
func Compile(root string, bp *domain.Blueprint) (*domain.Pipeline, error) {
	if bp.Backend.Manifest == "" {
		return nil, zerr.With(domain.ErrManifestMissing, "ecosystem", "backend")
	}
	if bp.Frontend.Manifest == "" {
		return nil, zerr.With(domain.ErrManifestMissing, "ecosystem", "frontend")
	}

	backend := domain.DependencySet{
		Manifest:        bp.Backend.Manifest,
		Lockfile:        bp.Backend.Lockfile,
		LockfilePresent: fileExists(filepath.Join(root, bp.Backend.Lockfile)),
	}
	frontend := domain.DependencySet{
		Manifest:        path.Join(bp.Frontend.Dir, bp.Frontend.Manifest),
		Lockfile:        path.Join(bp.Frontend.Dir, bp.Frontend.Lockfile),
		LockfilePresent: fileExists(filepath.Join(root, bp.Frontend.Dir, bp.Frontend.Lockfile)),
		Production:      true,
	}

	// The backend lockfile is not optional: an unpinned backend is a
	// misconfiguration, not a fallback.
	if !backend.Pinned() {
		return nil, zerr.With(domain.ErrInputMissing, "path", bp.Backend.Lockfile)
	}

	ignores := []string{
		".kiln",
		"node_modules",
		filepath.Base(bp.Backend.EnvRoot),
	}

	p := domain.NewPipeline()
	p.Launch = bp.Launch

	for _, stage := range []domain.Stage{
		baseStage(bp),
		backendStage(bp, backend),
		frontendStage(bp, frontend),
		sourceStage(bp, ignores),
		runtimeStage(bp),
	} {
		if err := p.Append(stage); err != nil {
			return nil, err
		}
	}

	if err := p.Validate(); err != nil {
		return nil, err
	}
	return p, nil
}

func baseStage(bp *domain.Blueprint) domain.Stage {
	return domain.Stage{
		Name: domain.NewInternedString(StageBase),
		Kind: domain.KindBase,
		Environment: map[string]string{
			"DEBIAN_FRONTEND": "noninteractive",
		},
		Steps: []domain.Step{
			{Name: "apt-update", Command: []string{"apt-get", "update"}},
			{Name: "apt-install", Command: append([]string{"apt-get", "install", "-y"}, bp.SystemPackages...)},
			{Name: "node-setup", Command: []string{"bash", "-c", "curl -fsSL " + bp.NodeSetupURL + " | bash -"}},
			{Name: "node-install", Command: []string{"apt-get", "install", "-y", "nodejs"}},
			{Name: "apt-clean", Command: []string{"bash", "-c", "apt-get clean && rm -rf /var/lib/apt/lists/*"}},
		},
	}
}

func backendStage(bp *domain.Blueprint, deps domain.DependencySet) domain.Stage {
	return domain.Stage{
		Name: domain.NewInternedString(StageBackendDeps),
		Kind: domain.KindBackendDeps,
		Inputs: []domain.InternedString{
			domain.NewInternedString(deps.Manifest),
			domain.NewInternedString(deps.Lockfile),
		},
		Steps: []domain.Step{
			{Name: "install-uv", Command: []string{"pip", "install", "uv"}},
			{Name: "create-venv", Command: []string{"uv", "venv", bp.Backend.EnvRoot}},
			{Name: "sync-locked", Command: []string{"uv", "sync", "--locked"}},
		},
	}
}

func frontendStage(bp *domain.Blueprint, deps domain.DependencySet) domain.Stage {
	s := domain.Stage{
		Name:       domain.NewInternedString(StageFrontendDeps),
		Kind:       domain.KindFrontendDeps,
		WorkingDir: bp.Frontend.Dir,
		Inputs: []domain.InternedString{
			domain.NewInternedString(deps.Manifest),
		},
		OptionalInputs: []domain.InternedString{
			domain.NewInternedString(deps.Lockfile),
		},
	}

	if deps.Pinned() {
		s.Steps = []domain.Step{
			{Name: "npm-ci", Command: []string{"npm", "ci", "--omit=dev", "--legacy-peer-deps"}},
		}
	} else {
		// Non-reproducible fallback: resolution happens at install time.
		s.Unpinned = true
		s.Steps = []domain.Step{
			{Name: "npm-install", Command: []string{"npm", "install", "--omit=dev", "--legacy-peer-deps"}},
		}
	}
	return s
}

func sourceStage(bp *domain.Blueprint, ignores []string) domain.Stage {
	return domain.Stage{
		Name:       domain.NewInternedString(StageSource),
		Kind:       domain.KindSource,
		Inputs:     []domain.InternedString{domain.NewInternedString(".")},
		Ignores:    ignores,
		AssembleTo: bp.AssembleDir,
	}
}

func runtimeStage(bp *domain.Blueprint) domain.Stage {
	return domain.Stage{
		Name: domain.NewInternedString(StageRuntimeDirs),
		Kind: domain.KindRuntimeDirs,
		Dirs: []domain.DirSpec{
			{Path: bp.UploadDir, Mode: bp.UploadDirMode},
		},
	}
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
