package source

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadReadsFileContents(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "program.ml")
	require.NoError(t, os.WriteFile(path, []byte("print(1)\n"), 0o644))

	src, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "print(1)\n", src)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.ml"))
	assert.Error(t, err)
}
