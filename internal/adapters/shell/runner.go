// Package shell runs resolver plugin executables.
package shell

import (
	"bytes"
	"context"
	"os"
	"os/exec"
	"strings"
	"time"

	"go.trai.ch/tapresolver/internal/core/domain"
	"go.trai.ch/zerr"
)

// DefaultTimeout bounds a single plugin invocation.
const DefaultTimeout = 10 * time.Second

// Runner executes a plugin with a request on stdin and returns its stdout.
type Runner struct {
	timeout time.Duration
}

// NewRunner creates a Runner using DefaultTimeout.
func NewRunner() *Runner {
	return &Runner{timeout: DefaultTimeout}
}

// Run starts executable in dir with env added to the process environment,
// writes input to its stdin and returns what it printed on stdout.
func (r *Runner) Run(ctx context.Context, executable, dir string, env map[string]string, input []byte) ([]byte, error) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	//nolint:gosec // the executable is configured by the keg owner
	cmd := exec.CommandContext(ctx, executable)
	cmd.Dir = dir
	cmd.Env = resolveEnvironment(os.Environ(), env)
	cmd.Stdin = bytes.NewReader(input)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		err = zerr.With(zerr.Wrap(err, domain.ErrPluginFailed.Error()), "plugin", executable)
		if msg := strings.TrimSpace(stderr.String()); msg != "" {
			err = zerr.With(err, "stderr", msg)
		}
		return nil, err
	}

	return stdout.Bytes(), nil
}

// resolveEnvironment overrides entries of sysEnv with env.
func resolveEnvironment(sysEnv []string, env map[string]string) []string {
	envMap := make(map[string]string, len(sysEnv)+len(env))
	order := make([]string, 0, len(sysEnv)+len(env))
	for _, entry := range sysEnv {
		k, v, ok := strings.Cut(entry, "=")
		if !ok {
			continue
		}
		if _, seen := envMap[k]; !seen {
			order = append(order, k)
		}
		envMap[k] = v
	}

	for k, v := range env {
		if _, seen := envMap[k]; !seen {
			order = append(order, k)
		}
		envMap[k] = v
	}

	result := make([]string, 0, len(order))
	for _, k := range order {
		result = append(result, k+"="+envMap[k])
	}
	return result
}

// IsExecutable reports whether file is a regular file with an execute bit set.
func IsExecutable(file string) bool {
	d, err := os.Stat(file)
	if err != nil {
		return false
	}
	m := d.Mode()
	return m.IsRegular() && m&0o111 != 0
}
