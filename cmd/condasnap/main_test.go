package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const fakeConda = `#!/bin/sh
if [ "$1" = "env" ] && [ "$2" = "list" ]; then
  echo '{"envs": ["/opt/conda", "/opt/conda/envs/climates"]}'
  exit 0
fi
if [ "$1" = "list" ] && [ "$2" = "--explicit" ]; then
  printf '# This file may be used to create an environment using:\n@EXPLICIT\nhttps://conda.anaconda.org/conda-forge/linux-64/python-3.11.4-hab00c5b_0.conda\n'
  exit 0
fi
if [ "$1" = "env" ] && [ "$2" = "export" ]; then
  case "$*" in
  *--from-history*)
    printf 'name: climates\nchannels:\n  - conda-forge\ndependencies:\n  - python=3.11\n'
    ;;
  *)
    printf 'name: climates\nchannels:\n  - conda-forge\ndependencies:\n  - python=3.11.4=hab00c5b_0\n  - numpy=1.24.3=py311h64a7726_0\n'
    ;;
  esac
  exit 0
fi
exit 2
`

// brokenHistoryConda fails only the from-history export.
const brokenHistoryConda = `#!/bin/sh
case "$*" in
*--from-history*)
  echo "CondaError: history metadata corrupted" >&2
  exit 1
  ;;
esac
if [ "$1" = "env" ] && [ "$2" = "list" ]; then
  echo '{"envs": ["/opt/conda", "/opt/conda/envs/climates"]}'
  exit 0
fi
if [ "$1" = "list" ] && [ "$2" = "--explicit" ]; then
  printf '@EXPLICIT\nhttps://conda.anaconda.org/conda-forge/linux-64/python-3.11.4-hab00c5b_0.conda\n'
  exit 0
fi
if [ "$1" = "env" ] && [ "$2" = "export" ]; then
  printf 'name: climates\ndependencies:\n  - python=3.11.4=hab00c5b_0\n'
  exit 0
fi
exit 2
`

func installFakeConda(t *testing.T, script string) {
	t.Helper()
	dir := t.TempDir()
	//nolint:gosec // test binary must be executable
	require.NoError(t, os.WriteFile(filepath.Join(dir, "conda"), []byte(script), 0o755))
	t.Setenv("PATH", dir+string(os.PathListSeparator)+os.Getenv("PATH"))
}

func chdirTemp(t *testing.T) string {
	t.Helper()
	tmpDir := t.TempDir()
	originalWd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(tmpDir))
	t.Cleanup(func() {
		_ = os.Chdir(originalWd)
	})
	return tmpDir
}

func setArgs(t *testing.T, args ...string) {
	t.Helper()
	originalArgs := os.Args
	os.Args = append([]string{"condasnap"}, args...)
	t.Cleanup(func() {
		os.Args = originalArgs
	})
}

func TestRun_SaveSuccess(t *testing.T) {
	installFakeConda(t, fakeConda)
	tmpDir := chdirTemp(t)
	setArgs(t, "save", "climates")

	assert.Equal(t, 0, run())

	assert.FileExists(t, filepath.Join(tmpDir, "climates.txt"))
	assert.FileExists(t, filepath.Join(tmpDir, "climates.yml"))
	assert.FileExists(t, filepath.Join(tmpDir, "climates_fh.yml"))
	assert.FileExists(t, filepath.Join(tmpDir, "climates.manifest.json"))
}

func TestRun_SavePartialFailure(t *testing.T) {
	installFakeConda(t, brokenHistoryConda)
	tmpDir := chdirTemp(t)
	setArgs(t, "save", "climates")

	// from-history is strategy bit 2: 0b1000 | 0b100.
	assert.Equal(t, 12, run())

	assert.FileExists(t, filepath.Join(tmpDir, "climates.txt"))
	assert.FileExists(t, filepath.Join(tmpDir, "climates.yml"))
	assert.NoFileExists(t, filepath.Join(tmpDir, "climates_fh.yml"))
}

func TestRun_SaveUnknownEnvironment(t *testing.T) {
	installFakeConda(t, fakeConda)
	tmpDir := chdirTemp(t)
	setArgs(t, "save", "absent")

	assert.Equal(t, 1, run())

	entries, err := os.ReadDir(tmpDir)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestRun_SaveMissingArgument(t *testing.T) {
	installFakeConda(t, fakeConda)
	chdirTemp(t)
	setArgs(t, "save")

	assert.Equal(t, 1, run())
}

func TestRun_SaveThenVerify(t *testing.T) {
	installFakeConda(t, fakeConda)
	chdirTemp(t)

	setArgs(t, "save", "climates")
	require.Equal(t, 0, run())

	setArgs(t, "verify", "climates")
	assert.Equal(t, 0, run())
}

func TestRun_Version(t *testing.T) {
	setArgs(t, "version")
	assert.Equal(t, 0, run())
}
