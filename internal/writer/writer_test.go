package writer

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileWriter_WriteAll(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "tree.txt")

	w := &FileWriter{Path: path}
	require.NoError(t, w.WriteAll([]byte("first\n")))
	require.NoError(t, w.WriteAll([]byte("second\n")))

	got, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "second\n", string(got))

	// No temp files left behind.
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

func TestFileWriter_MissingDir(t *testing.T) {
	w := &FileWriter{Path: filepath.Join(t.TempDir(), "nope", "tree.txt")}
	assert.Error(t, w.WriteAll([]byte("x")))
}

func TestMemWriter_WriteAll(t *testing.T) {
	var sink Sink = &MemWriter{}
	src := []byte("abc")
	require.NoError(t, sink.WriteAll(src))
	src[0] = 'z'

	assert.Equal(t, "abc", string(sink.(*MemWriter).Buf))
}
