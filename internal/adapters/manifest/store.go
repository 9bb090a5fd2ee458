// Package manifest implements capture manifest persistence and artifact
// checksums.
package manifest

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/condatools/condasnap/internal/core/domain"
	"go.trai.ch/zerr"
)

// Store implements ports.ManifestStore using a flat JSON file.
type Store struct{}

// NewStore creates a new ManifestStore.
func NewStore() *Store {
	return &Store{}
}

// Write persists the manifest at the given path, overwriting any previous
// manifest for the same basename.
func (s *Store) Write(path string, m *domain.Manifest) error {
	data, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return zerr.Wrap(err, "failed to marshal manifest")
	}

	//nolint:gosec // Path is derived from the user-provided basename
	if err := os.WriteFile(filepath.Clean(path), data, 0o644); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to write manifest"), "path", path)
	}

	return nil
}

// Read loads the manifest at the given path.
func (s *Store) Read(path string) (*domain.Manifest, error) {
	//nolint:gosec // Path is derived from the user-provided basename
	data, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to read manifest"), "path", path)
	}

	var m domain.Manifest
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to unmarshal manifest"), "path", path)
	}

	return &m, nil
}
