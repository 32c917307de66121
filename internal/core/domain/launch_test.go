package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/kiln/internal/core/domain"
)

func launchSpec() domain.LaunchSpec {
	return domain.LaunchSpec{
		Interpreter: ".venv/bin/python",
		Script:      "main.py",
		Host:        "0.0.0.0",
		Port:        "3456",
		Env: map[string]string{
			"HOST":             "0.0.0.0",
			"PORT":             "3456",
			"PYTHONUNBUFFERED": "1",
		},
		ExposePort: 3456,
	}
}

func TestLaunchSpec_ResolveAddress_Defaults(t *testing.T) {
	host, port := launchSpec().ResolveAddress(nil)
	assert.Equal(t, "0.0.0.0", host)
	assert.Equal(t, "3456", port)
}

func TestLaunchSpec_ResolveAddress_EnvironWins(t *testing.T) {
	environ := []string{"HOST=127.0.0.1", "PORT=9000", "OTHER=x"}
	host, port := launchSpec().ResolveAddress(environ)
	assert.Equal(t, "127.0.0.1", host)
	assert.Equal(t, "9000", port)
}

func TestLaunchSpec_ResolveAddress_EmptyValueIgnored(t *testing.T) {
	host, port := launchSpec().ResolveAddress([]string{"HOST=", "PORT="})
	assert.Equal(t, "0.0.0.0", host)
	assert.Equal(t, "3456", port)
}

func TestLaunchSpec_Command(t *testing.T) {
	cmd := launchSpec().Command([]string{"PORT=8080"})
	assert.Equal(t, []string{".venv/bin/python", "main.py", "--host", "0.0.0.0", "--port", "8080"}, cmd)
}
