package config

// Kilnfile represents the structure of the kiln.yaml configuration file.
type Kilnfile struct {
	Version  string            `yaml:"version"`
	Image    ImageDTO          `yaml:"image"`
	Backend  BackendDTO        `yaml:"backend"`
	Frontend FrontendDTO       `yaml:"frontend"`
	Runtime  RuntimeDTO        `yaml:"runtime"`
	Env      map[string]string `yaml:"env"`
}

// ImageDTO describes the base environment and the network surface.
type ImageDTO struct {
	Base           string   `yaml:"base"`
	SystemPackages []string `yaml:"systemPackages"`
	NodeSetup      string   `yaml:"nodeSetup"`
	AssembleDir    string   `yaml:"assembleDir"`
	Expose         int      `yaml:"expose"`
}

// BackendDTO describes the backend dependency ecosystem.
type BackendDTO struct {
	Manifest string `yaml:"manifest"`
	Lockfile string `yaml:"lockfile"`
	Entry    string `yaml:"entry"`
	Venv     string `yaml:"venv"`
}

// FrontendDTO describes the frontend dependency ecosystem.
type FrontendDTO struct {
	Dir      string `yaml:"dir"`
	Manifest string `yaml:"manifest"`
	Lockfile string `yaml:"lockfile"`
}

// RuntimeDTO describes writable runtime directories.
type RuntimeDTO struct {
	UploadDir string `yaml:"uploadDir"`
	Mode      string `yaml:"mode"`
}
