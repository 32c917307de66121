package domain

import "strings"

// LaunchSpec describes the process entry point of the built image: the
// interpreter from the backend dependency environment, the entry script, the
// exposed port and the default environment.
type LaunchSpec struct {
	// Interpreter is the backend interpreter path inside the isolated
	// environment (".venv/bin/python").
	Interpreter string

	// Script is the entry-point script ("main.py").
	Script string

	// Host and Port are the hard-coded defaults baked into the launch command.
	Host string
	Port string

	// Env holds default environment variables (HOST, PORT, PYTHONUNBUFFERED),
	// overridable at container start.
	Env map[string]string

	// ExposePort is the declared network surface of the image.
	ExposePort int
}

// ResolveAddress returns the host and port the process will bind to.
// Precedence, highest first: the actual process environment, the spec's env
// defaults, the hard-coded values. Environment variables win over the baked
// flags so that a container-start override takes effect without rebuilding.
func (s LaunchSpec) ResolveAddress(environ []string) (host, port string) {
	host, port = s.Host, s.Port
	if v, ok := s.Env["HOST"]; ok && v != "" {
		host = v
	}
	if v, ok := s.Env["PORT"]; ok && v != "" {
		port = v
	}
	for _, kv := range environ {
		k, v, ok := strings.Cut(kv, "=")
		if !ok || v == "" {
			continue
		}
		switch k {
		case "HOST":
			host = v
		case "PORT":
			port = v
		}
	}
	return host, port
}

// Command returns the argv used to start the backend process, with the
// resolved host and port bound as explicit flags.
func (s LaunchSpec) Command(environ []string) []string {
	host, port := s.ResolveAddress(environ)
	return []string{s.Interpreter, s.Script, "--host", host, "--port", port}
}
