package envloader

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLine(t *testing.T) {
	tests := []struct {
		line       string
		key, value string
		ok         bool
	}{
		{"FIBFINDER_LOG_LEVEL=debug", "FIBFINDER_LOG_LEVEL", "debug", true},
		{`  FIBFINDER_LOG_FILE = "logs/fib.log" `, "FIBFINDER_LOG_FILE", "logs/fib.log", true},
		{"export FIBFINDER_LOG_JSON='true'", "FIBFINDER_LOG_JSON", "true", true},
		{"EMPTY=", "EMPTY", "", true},
		{"# comment", "", "", false},
		{"", "", "", false},
		{"no separator", "", "", false},
		{"=value", "", "", false},
	}

	for _, tt := range tests {
		key, value, ok := parseLine(tt.line)
		assert.Equal(t, tt.ok, ok, "line %q", tt.line)
		assert.Equal(t, tt.key, key, "line %q", tt.line)
		assert.Equal(t, tt.value, value, "line %q", tt.line)
	}
}

func TestLoadEnvFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("# diagnostics\nFIBFINDER_TEST_LEVEL=info\n"), 0644))
	t.Setenv("FIBFINDER_TEST_LEVEL", "error")

	require.NoError(t, LoadEnvFile(path))
	assert.Equal(t, "info", os.Getenv("FIBFINDER_TEST_LEVEL"))
}

func TestLoadEnvFile_Missing(t *testing.T) {
	err := LoadEnvFile(filepath.Join(t.TempDir(), "nope"))
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestLoadEnv_FromWorkingDir(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("FIBFINDER_TEST_CWD=yes\n"), 0644))
	t.Chdir(dir)
	t.Setenv("FIBFINDER_TEST_CWD", "")

	path, err := LoadEnv()
	require.NoError(t, err)
	assert.Equal(t, ".env", filepath.Base(path))
	assert.Equal(t, "yes", os.Getenv("FIBFINDER_TEST_CWD"))
}
