// Package shell provides the shell executor adapter.
package shell

import (
	"context"
	"io"
	"os"
	"os/exec"
	"strings"

	"go.trai.ch/kiln/internal/core/domain"
	"go.trai.ch/kiln/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.Executor = (*Executor)(nil)

// Executor implements ports.Executor using os/exec.
type Executor struct {
	logger ports.Logger
}

// NewExecutor creates a new shell Executor.
func NewExecutor(logger ports.Logger) *Executor {
	return &Executor{
		logger: logger,
	}
}

// Execute runs the step's command with the specified environment.
// The environment is merged with the following priority (low to high):
// 1. os.Environ() (system base)
// 2. env (stage environment)
// 3. step.Environment (per-step overrides)
func (e *Executor) Execute(ctx context.Context, step *domain.Step, workdir string, env []string, stdout, stderr io.Writer) error {
	if len(step.Command) == 0 {
		return nil
	}

	name := step.Command[0]
	args := step.Command[1:]

	cmd := exec.CommandContext(ctx, name, args...) //nolint:gosec // step commands come from the compiled pipeline
	cmd.Dir = workdir
	cmd.Env = resolveEnvironment(os.Environ(), env, step.Environment)

	if stdout == nil {
		stdout = io.Discard
	}
	if stderr == nil {
		stderr = io.Discard
	}
	cmd.Stdout = stdout
	cmd.Stderr = stderr

	if e.logger != nil {
		e.logger.Info("exec: " + strings.Join(step.Command, " "))
	}

	if err := cmd.Run(); err != nil {
		var exitCode int
		if exitErr, ok := err.(*exec.ExitError); ok {
			exitCode = exitErr.ExitCode()
		} else {
			exitCode = -1
		}

		stepErr := zerr.With(zerr.Wrap(err, "command failed"), "step", step.Name)
		return zerr.With(stepErr, "exit_code", exitCode)
	}

	return nil
}

// resolveEnvironment merges environment variables with the defined priority.
// PATH entries from the stage environment are prepended to the system PATH so
// tools installed by earlier stages resolve first.
func resolveEnvironment(sysEnv, stageEnv []string, stepEnv map[string]string) []string {
	envMap := make(map[string]string)
	for _, entry := range sysEnv {
		k, v, ok := strings.Cut(entry, "=")
		if ok {
			envMap[k] = v
		}
	}

	for _, entry := range stageEnv {
		k, v, ok := strings.Cut(entry, "=")
		if !ok {
			continue
		}
		if k == "PATH" {
			if sysPath, exists := envMap["PATH"]; exists && sysPath != "" {
				envMap[k] = v + string(os.PathListSeparator) + sysPath
			} else {
				envMap[k] = v
			}
		} else {
			envMap[k] = v
		}
	}

	for k, v := range stepEnv {
		envMap[k] = v
	}

	result := make([]string, 0, len(envMap))
	for k, v := range envMap {
		result = append(result, k+"="+v)
	}
	return result
}
