package output

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrint(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Print(&buf, []string{"", "a", "b"}))
	assert.Equal(t, "\na\nb\n", buf.String())
}

func TestWriteFileCreatesDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "reports")

	path, err := WriteFile(dir, "2024-01-07", []string{"", "first", "last"})
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "2024-01-07.txt"), path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "\nfirst\nlast", string(data))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1, "temporary file left behind")
}

func TestWriteFileOverwrites(t *testing.T) {
	dir := t.TempDir()

	_, err := WriteFile(dir, "2024-01-07", []string{"old", "report", "body"})
	require.NoError(t, err)
	path, err := WriteFile(dir, "2024-01-07", []string{"new"})
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "new", string(data))
}

func TestWriteFileBadDirectory(t *testing.T) {
	file := filepath.Join(t.TempDir(), "not-a-dir")
	require.NoError(t, os.WriteFile(file, nil, 0644))

	_, err := WriteFile(filepath.Join(file, "reports"), "2024-01-07", []string{"x"})
	assert.Error(t, err)
}
