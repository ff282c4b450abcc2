package fsutil_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iw2rmb/codepad/internal/fsutil"
)

func TestWriteAtomic_CreatesAndReplaces(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "snippet.yaml")

	require.NoError(t, fsutil.WriteAtomic(context.Background(), path, []byte("one"), 0))
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "one", string(data))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, fsutil.DefaultFileMode, info.Mode().Perm())

	require.NoError(t, fsutil.WriteAtomic(context.Background(), path, []byte("two"), 0o600))
	data, err = os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "two", string(data))

	entries, err := os.ReadDir(filepath.Dir(path))
	require.NoError(t, err)
	assert.Len(t, entries, 1, "temp files must not be left behind")
}

func TestWriteAtomic_CanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	path := filepath.Join(t.TempDir(), "x")
	err := fsutil.WriteAtomic(ctx, path, []byte("x"), 0)
	require.ErrorIs(t, err, context.Canceled)
	_, statErr := os.Stat(path)
	assert.True(t, os.IsNotExist(statErr))
}
