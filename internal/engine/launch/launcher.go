// Package launch starts the backend process through the entry-point contract.
package launch

import (
	"context"
	"errors"
	"fmt"
	"os"

	"go.trai.ch/kiln/internal/core/domain"
	"go.trai.ch/kiln/internal/core/ports"
)

// Launcher runs the image's entry point: the backend interpreter from the
// isolated dependency environment against the entry script. It defines no
// restart or health-check logic; a non-zero exit propagates unchanged and
// restart policy belongs to the external supervisor.
type Launcher struct {
	executor ports.Executor
	logger   ports.Logger
}

// NewLauncher creates a new Launcher.
func NewLauncher(executor ports.Executor, logger ports.Logger) *Launcher {
	return &Launcher{
		executor: executor,
		logger:   logger,
	}
}

// Launch blocks until the backend process exits. Host and port come from the
// process environment first, then the spec defaults; the resolved values are
// passed as explicit --host/--port flags. The spec's env defaults are merged
// under the process environment so an operator override always wins.
func (l *Launcher) Launch(ctx context.Context, spec domain.LaunchSpec, root string, environ []string) error {
	host, port := spec.ResolveAddress(environ)
	l.logger.Info(fmt.Sprintf("starting %s %s on %s:%s", spec.Interpreter, spec.Script, host, port))

	step := domain.Step{
		Name:        "entrypoint",
		Command:     spec.Command(environ),
		Environment: defaultedEnv(spec.Env, environ),
	}

	if err := l.executor.Execute(ctx, &step, root, nil, os.Stdout, os.Stderr); err != nil {
		return errors.Join(domain.ErrLaunchFailed, err)
	}
	return nil
}

// defaultedEnv returns the spec defaults that are not already set in the
// process environment.
func defaultedEnv(defaults map[string]string, environ []string) map[string]string {
	present := make(map[string]bool, len(environ))
	for _, kv := range environ {
		for i := 0; i < len(kv); i++ {
			if kv[i] == '=' {
				present[kv[:i]] = true
				break
			}
		}
	}

	out := make(map[string]string, len(defaults))
	for k, v := range defaults {
		if !present[k] {
			out[k] = v
		}
	}
	return out
}
