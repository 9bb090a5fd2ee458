package ports

import "github.com/condatools/condasnap/internal/core/domain"

// ManifestStore defines the interface for persisting capture manifests next to
// the artifacts they describe.
//
//go:generate go run go.uber.org/mock/mockgen -source=store.go -destination=mocks/mock_store.go -package=mocks
type ManifestStore interface {
	// Write persists the manifest at the given path, overwriting any previous
	// manifest.
	Write(path string, m *domain.Manifest) error

	// Read loads the manifest at the given path.
	Read(path string) (*domain.Manifest, error)
}
