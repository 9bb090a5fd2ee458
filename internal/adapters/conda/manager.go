// Package conda adapts the conda CLI to the EnvironmentManager port.
package conda

import (
	"context"
	"encoding/json"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/condatools/condasnap/internal/core/domain"
	"go.trai.ch/zerr"
)

const binary = "conda"

// Manager implements ports.EnvironmentManager using the conda CLI.
type Manager struct{}

// NewManager creates a new EnvironmentManager backed by the conda CLI.
func NewManager() *Manager {
	return &Manager{}
}

// envList mirrors the JSON payload of `conda env list --json`.
type envList struct {
	Envs []string `json:"envs"`
}

// EnvironmentExists reports whether name is a registered environment.
// conda lists environments as prefix paths; the environment name is the final
// path element.
func (m *Manager) EnvironmentExists(ctx context.Context, name string) (bool, error) {
	out, err := m.run(ctx, "env", "list", "--json")
	if err != nil {
		return false, err
	}

	var list envList
	if err := json.Unmarshal(out, &list); err != nil {
		return false, zerr.Wrap(err, "failed to parse conda environment list")
	}

	for _, prefix := range list.Envs {
		if filepath.Base(prefix) == name {
			return true, nil
		}
	}
	return false, nil
}

// exportArgs maps a strategy to the conda invocation that serializes it.
func exportArgs(name string, strategy domain.Strategy) []string {
	switch strategy {
	case domain.ExplicitLock:
		return []string{"list", "--explicit", "-n", name}
	case domain.FullDeclarative:
		return []string{"env", "export", "-n", name}
	case domain.HistoryDeclarative:
		return []string{"env", "export", "--from-history", "-n", name}
	}
	return nil
}

// Export serializes the environment with the given strategy. The invocation
// only reads resolved local metadata; the environment is never mutated.
func (m *Manager) Export(ctx context.Context, name string, strategy domain.Strategy) ([]byte, error) {
	args := exportArgs(name, strategy)
	if args == nil {
		return nil, zerr.With(zerr.New("unknown export strategy"), "strategy", int(strategy))
	}
	return m.run(ctx, args...)
}

// CreateFromExplicit creates a new environment from an explicit lock file.
func (m *Manager) CreateFromExplicit(ctx context.Context, name, lockPath string) error {
	_, err := m.run(ctx, "create", "--yes", "-n", name, "--file", lockPath)
	return err
}

// CreateFromDescriptor creates a new environment from a declarative
// descriptor, re-resolving its dependencies on the host.
func (m *Manager) CreateFromDescriptor(ctx context.Context, name, descriptorPath string) error {
	_, err := m.run(ctx, "env", "create", "--yes", "-n", name, "-f", descriptorPath)
	return err
}

// run invokes conda and classifies failures from its stderr.
func (m *Manager) run(ctx context.Context, args ...string) ([]byte, error) {
	//nolint:gosec // args are constructed from validated inputs
	cmd := exec.CommandContext(ctx, binary, args...)

	out, err := cmd.Output()
	if err == nil {
		return out, nil
	}

	if ctx.Err() != nil {
		timeoutErr := zerr.Wrap(ctx.Err(), "conda invocation timed out")
		return nil, zerr.With(timeoutErr, "args", strings.Join(args, " "))
	}

	if exitErr, ok := err.(*exec.ExitError); ok {
		stderr := strings.TrimSpace(string(exitErr.Stderr))
		return nil, classify(exitErr, stderr, args)
	}

	invokeErr := zerr.Wrap(err, "failed to invoke conda")
	return nil, zerr.With(invokeErr, "args", strings.Join(args, " "))
}

// classify maps known conda error signatures onto the domain taxonomy.
func classify(exitErr *exec.ExitError, stderr string, args []string) error {
	switch {
	case strings.Contains(stderr, "PackagesNotFoundError"):
		// Wrap the sentinel so callers can match it with errors.Is.
		matchErr := zerr.Wrap(domain.ErrPlatformMismatch, "conda could not satisfy the lock list")
		matchErr = zerr.With(matchErr, "packages", strings.Join(missingPackages(stderr), ", "))
		matchErr = zerr.With(matchErr, "args", strings.Join(args, " "))
		return zerr.With(matchErr, "stderr", stderr)
	case strings.Contains(stderr, "EnvironmentLocationNotFound"),
		strings.Contains(stderr, "EnvironmentNameNotFound"):
		notFound := zerr.Wrap(domain.ErrEnvironmentNotFound, "conda could not locate the environment")
		return zerr.With(notFound, "stderr", stderr)
	}

	condaErr := zerr.Wrap(exitErr, "conda command failed")
	condaErr = zerr.With(condaErr, "exit_code", exitErr.ExitCode())
	condaErr = zerr.With(condaErr, "args", strings.Join(args, " "))
	return zerr.With(condaErr, "stderr", stderr)
}

// missingPackages pulls the package identifiers out of a PackagesNotFoundError
// listing. conda prints each one indented with a leading "- " bullet.
func missingPackages(stderr string) []string {
	var pkgs []string
	for _, line := range strings.Split(stderr, "\n") {
		line = strings.TrimSpace(line)
		if rest, ok := strings.CutPrefix(line, "- "); ok {
			pkgs = append(pkgs, strings.TrimSpace(rest))
		}
	}
	return pkgs
}
