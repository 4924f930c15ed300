package assets

import (
	"os"
	"testing"

	"learnalert/internal/pkg/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPersistWritesFile(t *testing.T) {
	store, err := NewStore(t.TempDir(), logger.New())
	require.NoError(t, err)

	payload := []byte("not-really-a-png")
	path, err := store.Persist(payload)
	require.NoError(t, err)

	written, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, payload, written)
}

func TestPersistUsesFreshNames(t *testing.T) {
	store, err := NewStore(t.TempDir(), logger.New())
	require.NoError(t, err)

	first, err := store.Persist([]byte("a"))
	require.NoError(t, err)
	second, err := store.Persist([]byte("b"))
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}

func TestNewStoreCreatesDirectory(t *testing.T) {
	dir := t.TempDir() + "/nested/assets"
	_, err := NewStore(dir, logger.New())
	require.NoError(t, err)

	info, err := os.Stat(dir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}
