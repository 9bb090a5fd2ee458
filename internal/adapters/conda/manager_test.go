package conda //nolint:testpackage // Allow testing internals

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/condatools/condasnap/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// installFakeConda places a scripted conda binary on PATH for the duration of
// the test.
func installFakeConda(t *testing.T, script string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "conda")
	require.NoError(t, os.WriteFile(path, []byte("#!/bin/sh\n"+script), 0o755)) //nolint:gosec // test binary must be executable
	t.Setenv("PATH", dir+string(os.PathListSeparator)+os.Getenv("PATH"))
	return dir
}

func TestExportArgs(t *testing.T) {
	tests := []struct {
		name     string
		strategy domain.Strategy
		expected []string
	}{
		{"explicit", domain.ExplicitLock, []string{"list", "--explicit", "-n", "climates"}},
		{"full", domain.FullDeclarative, []string{"env", "export", "-n", "climates"}},
		{"from-history", domain.HistoryDeclarative, []string{"env", "export", "--from-history", "-n", "climates"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, exportArgs("climates", tt.strategy))
		})
	}
}

func TestMissingPackages(t *testing.T) {
	stderr := `PackagesNotFoundError: The following packages are not available from current channels:

  - numpy=1.24.3=py311h64a7726_0
  - libgfortran5=12.2.0=h337968e_19

Current channels:
`
	assert.Equal(t,
		[]string{"numpy=1.24.3=py311h64a7726_0", "libgfortran5=12.2.0=h337968e_19"},
		missingPackages(stderr),
	)
}

func TestEnvironmentExists(t *testing.T) {
	installFakeConda(t, `
if [ "$1" = "env" ] && [ "$2" = "list" ]; then
  echo '{"envs": ["/opt/conda", "/opt/conda/envs/climates"]}'
  exit 0
fi
exit 2
`)
	m := NewManager()

	exists, err := m.EnvironmentExists(context.Background(), "climates")
	require.NoError(t, err)
	assert.True(t, exists)

	exists, err = m.EnvironmentExists(context.Background(), "absent")
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestExport_Explicit(t *testing.T) {
	installFakeConda(t, `
if [ "$1" = "list" ] && [ "$2" = "--explicit" ]; then
  printf '# This file may be used to create an environment using:\n@EXPLICIT\nhttps://conda.anaconda.org/conda-forge/linux-64/python-3.11.4-hab00c5b_0.conda\n'
  exit 0
fi
exit 2
`)
	m := NewManager()

	out, err := m.Export(context.Background(), "climates", domain.ExplicitLock)
	require.NoError(t, err)
	assert.Contains(t, string(out), "@EXPLICIT")
	assert.Contains(t, string(out), "python-3.11.4")
}

func TestExport_Timeout(t *testing.T) {
	installFakeConda(t, "sleep 10\n")
	m := NewManager()

	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer cancel()

	_, err := m.Export(ctx, "climates", domain.FullDeclarative)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "timed out")
}

func TestCreateFromExplicit_Invocation(t *testing.T) {
	dir := installFakeConda(t, `echo "$@" > "$(dirname "$0")/invocation.log"`+"\n")
	m := NewManager()

	require.NoError(t, m.CreateFromExplicit(context.Background(), "climates-copy", "/tmp/climates.txt"))

	log, err := os.ReadFile(filepath.Join(dir, "invocation.log")) //nolint:gosec // test file
	require.NoError(t, err)
	line := strings.TrimSpace(string(log))
	assert.Equal(t, "create --yes -n climates-copy --file /tmp/climates.txt", line)
}

func TestCreateFromDescriptor_Invocation(t *testing.T) {
	dir := installFakeConda(t, `echo "$@" > "$(dirname "$0")/invocation.log"`+"\n")
	m := NewManager()

	require.NoError(t, m.CreateFromDescriptor(context.Background(), "climates-copy", "/tmp/climates.yml"))

	log, err := os.ReadFile(filepath.Join(dir, "invocation.log")) //nolint:gosec // test file
	require.NoError(t, err)
	line := strings.TrimSpace(string(log))
	assert.Equal(t, "env create --yes -n climates-copy -f /tmp/climates.yml", line)
}

func TestCreateFromExplicit_PlatformMismatch(t *testing.T) {
	installFakeConda(t, `
cat >&2 <<'EOF'
PackagesNotFoundError: The following packages are not available from current channels:

  - python-3.11.4-hab00c5b_0
EOF
exit 1
`)
	m := NewManager()

	err := m.CreateFromExplicit(context.Background(), "climates-copy", "/tmp/climates.txt")
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrPlatformMismatch))
}

func TestRun_EnvironmentNotFound(t *testing.T) {
	installFakeConda(t, `
echo "EnvironmentLocationNotFound: Not a conda environment: /opt/conda/envs/absent" >&2
exit 1
`)
	m := NewManager()

	_, err := m.Export(context.Background(), "absent", domain.FullDeclarative)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrEnvironmentNotFound))
}
