package domain

import (
	"strings"

	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// EnvironmentFile is the declarative environment descriptor produced by the
// full and from-history exports. Dependencies mixes plain conda match specs
// (e.g. "numpy=1.24.3=py311h64a7726_0") with a nested pip requirement block.
type EnvironmentFile struct {
	Name         string   `yaml:"name"`
	Channels     []string `yaml:"channels"`
	Dependencies []any    `yaml:"dependencies"`
	Prefix       string   `yaml:"prefix,omitempty"`
}

// ParseEnvironmentFile decodes a declarative descriptor. A document without a
// dependencies section is rejected: it cannot describe an installable
// environment.
func ParseEnvironmentFile(data []byte) (*EnvironmentFile, error) {
	var f EnvironmentFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, zerr.Wrap(err, "failed to parse environment descriptor")
	}
	if f.Dependencies == nil {
		return nil, zerr.New("environment descriptor has no dependencies section")
	}
	return &f, nil
}

// PackageNames returns the normalized names of every package the descriptor
// references, including entries in the pip block.
func (f *EnvironmentFile) PackageNames() []string {
	names := make([]string, 0, len(f.Dependencies))
	for _, dep := range f.Dependencies {
		switch d := dep.(type) {
		case string:
			names = append(names, SpecName(d))
		case map[string]any:
			// Nested requirement blocks, in practice only {pip: [...]}.
			for _, vals := range d {
				list, ok := vals.([]any)
				if !ok {
					continue
				}
				for _, v := range list {
					if s, ok := v.(string); ok {
						names = append(names, PipSpecName(s))
					}
				}
			}
		}
	}
	return names
}

// SpecName extracts the normalized package name from a conda match spec such
// as "numpy=1.24.3=py311h64a7726_0", "python>=3.10" or "conda-forge::xarray".
func SpecName(spec string) string {
	name := spec
	if i := strings.IndexAny(name, "=<>!~ "); i >= 0 {
		name = name[:i]
	}
	if i := strings.LastIndex(name, "::"); i >= 0 {
		name = name[i+2:]
	}
	return strings.ToLower(strings.TrimSpace(name))
}

// PipSpecName extracts the normalized package name from a pip requirement
// specifier such as "cartopy==0.21.1".
func PipSpecName(spec string) string {
	name := spec
	if i := strings.IndexAny(name, "=<>!~; ["); i >= 0 {
		name = name[:i]
	}
	return strings.ToLower(strings.TrimSpace(name))
}

// ArtifactKind classifies a serialized capture artifact for restore.
type ArtifactKind int

const (
	// KindExplicitLock is the platform-specific, build-pinned package list.
	KindExplicitLock ArtifactKind = iota

	// KindDeclarative is a cross-platform descriptor that is re-resolved at
	// restore time.
	KindDeclarative
)

// DetectArtifactKind classifies descriptor content for restore. Explicit lock
// lists carry conda's @EXPLICIT marker; anything that parses as a YAML mapping
// with a dependencies section is declarative.
func DetectArtifactKind(data []byte) (ArtifactKind, error) {
	for _, line := range strings.Split(string(data), "\n") {
		if strings.TrimSpace(line) == "@EXPLICIT" {
			return KindExplicitLock, nil
		}
	}
	if _, err := ParseEnvironmentFile(data); err == nil {
		return KindDeclarative, nil
	}
	return 0, ErrUnknownArtifact
}
