// Package config provides the configuration loader for kiln.
package config

import (
	"os"
	"path/filepath"
	"strconv"

	"go.trai.ch/kiln/internal/core/domain"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// Defaults applied when kiln.yaml omits a field. They match the stock
// Python-backend, Node-frontend project layout this tool provisions.
const (
	defaultBase        = "python:3.12-slim"
	defaultNodeSetup   = "https://deb.nodesource.com/setup_20.x"
	defaultExpose      = 3456
	defaultManifest    = "pyproject.toml"
	defaultLockfile    = "uv.lock"
	defaultEntry       = "main.py"
	defaultVenv        = ".venv"
	defaultFrontend    = "frontend"
	defaultNPMManifest = "package.json"
	defaultNPMLockfile = "package-lock.json"
	defaultUploadDir   = "uploaded_files"
	defaultDirMode     = 0o755
)

// FileLoader implements ports.BlueprintLoader using a YAML file.
type FileLoader struct {
	Filename string
}

// NewFileLoader creates a loader for the given configuration file name.
func NewFileLoader(filename string) *FileLoader {
	if filename == "" {
		filename = "kiln.yaml"
	}
	return &FileLoader{Filename: filename}
}

// SetFilename redirects the loader to an alternate configuration file.
// An empty name keeps the current file.
func (l *FileLoader) SetFilename(filename string) {
	if filename != "" {
		l.Filename = filename
	}
}

// Load reads the configuration from the given project root.
// A missing file is not an error: the defaults describe a complete pipeline.
func (l *FileLoader) Load(root string) (*domain.Blueprint, error) {
	path := l.Filename
	if !filepath.IsAbs(path) {
		path = filepath.Join(root, path)
	}

	var kf Kilnfile
	data, err := os.ReadFile(path) //nolint:gosec // path is provided by user
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, &kf); err != nil {
			return nil, zerr.With(zerr.Wrap(err, "failed to parse config file"), "path", path)
		}
	case os.IsNotExist(err):
		// Fall through to defaults.
	default:
		return nil, zerr.With(zerr.Wrap(err, "failed to read config file"), "path", path)
	}

	return compile(&kf)
}

func compile(kf *Kilnfile) (*domain.Blueprint, error) {
	bp := &domain.Blueprint{
		BaseImage:      orDefault(kf.Image.Base, defaultBase),
		SystemPackages: kf.Image.SystemPackages,
		NodeSetupURL:   orDefault(kf.Image.NodeSetup, defaultNodeSetup),
		AssembleDir:    kf.Image.AssembleDir,
		Backend: domain.BackendSpec{
			Manifest: orDefault(kf.Backend.Manifest, defaultManifest),
			Lockfile: orDefault(kf.Backend.Lockfile, defaultLockfile),
			Entry:    orDefault(kf.Backend.Entry, defaultEntry),
			EnvRoot:  orDefault(kf.Backend.Venv, defaultVenv),
		},
		Frontend: domain.FrontendSpec{
			Dir:      orDefault(kf.Frontend.Dir, defaultFrontend),
			Manifest: orDefault(kf.Frontend.Manifest, defaultNPMManifest),
			Lockfile: orDefault(kf.Frontend.Lockfile, defaultNPMLockfile),
		},
		UploadDir: orDefault(kf.Runtime.UploadDir, defaultUploadDir),
	}

	if len(bp.SystemPackages) == 0 {
		bp.SystemPackages = []string{"gcc", "curl", "git"}
	}

	mode, err := parseMode(kf.Runtime.Mode)
	if err != nil {
		return nil, err
	}
	bp.UploadDirMode = mode

	expose := kf.Image.Expose
	if expose == 0 {
		expose = defaultExpose
	}
	if expose < 1 || expose > 65535 {
		return nil, zerr.With(zerr.New("invalid exposed port"), "port", expose)
	}

	port := strconv.Itoa(expose)
	env := map[string]string{
		"HOST":             "0.0.0.0",
		"PORT":             port,
		"PYTHONUNBUFFERED": "1",
	}
	for k, v := range kf.Env {
		env[k] = v
	}

	backendEnv := domain.Environment{Name: "backend", Root: bp.Backend.EnvRoot, Runtime: "python"}
	bp.Launch = domain.LaunchSpec{
		Interpreter: backendEnv.Interpreter(),
		Script:      bp.Backend.Entry,
		Host:        env["HOST"],
		Port:        env["PORT"],
		Env:         env,
		ExposePort:  expose,
	}

	return bp, nil
}

func parseMode(s string) (uint32, error) {
	if s == "" {
		return defaultDirMode, nil
	}
	mode, err := strconv.ParseUint(s, 8, 32)
	if err != nil {
		return 0, zerr.With(zerr.Wrap(err, "invalid directory mode"), "mode", s)
	}
	return uint32(mode), nil
}

func orDefault(v, def string) string {
	if v == "" {
		return def
	}
	return v
}
