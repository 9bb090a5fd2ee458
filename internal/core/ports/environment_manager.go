// Package ports defines the core interfaces for the application.
package ports

import (
	"context"

	"github.com/condatools/condasnap/internal/core/domain"
)

// EnvironmentManager abstracts the host package manager used to inspect and
// recreate environments.
//
//go:generate go run go.uber.org/mock/mockgen -source=environment_manager.go -destination=mocks/mock_environment_manager.go -package=mocks
type EnvironmentManager interface {
	// EnvironmentExists reports whether name is a registered environment.
	EnvironmentExists(ctx context.Context, name string) (bool, error)

	// Export serializes the environment with the given strategy and returns
	// the artifact content. Exports are read-only: the source environment is
	// never mutated.
	Export(ctx context.Context, name string, strategy domain.Strategy) ([]byte, error)

	// CreateFromExplicit creates a new environment from an explicit lock file,
	// reproducing exact package builds. Returns ErrPlatformMismatch when the
	// pinned builds are unavailable for the host platform.
	CreateFromExplicit(ctx context.Context, name, lockPath string) error

	// CreateFromDescriptor creates a new environment from a declarative
	// descriptor. Dependency resolution runs fresh, so transitive versions may
	// differ from the capture.
	CreateFromDescriptor(ctx context.Context, name, descriptorPath string) error
}
