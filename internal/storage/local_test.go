package storage

import (
	"context"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStorage(t *testing.T) *LocalStorage {
	t.Helper()
	s, err := NewLocalStorage(Config{BasePath: t.TempDir()})
	require.NoError(t, err)
	return s
}

func TestLocalStorageSaveGet(t *testing.T) {
	s := newTestStorage(t)
	ctx := context.Background()

	n, err := s.Save(ctx, "jobs/j-1/photo.jpg", strings.NewReader("fake image bytes"))
	require.NoError(t, err)
	assert.Equal(t, int64(16), n)

	exists, err := s.Exists(ctx, "jobs/j-1/photo.jpg")
	require.NoError(t, err)
	assert.True(t, exists)

	r, err := s.Get(ctx, "jobs/j-1/photo.jpg")
	require.NoError(t, err)
	defer r.Close()

	data, err := io.ReadAll(r)
	require.NoError(t, err)
	assert.Equal(t, "fake image bytes", string(data))
}

func TestLocalStorageDelete(t *testing.T) {
	s := newTestStorage(t)
	ctx := context.Background()

	_, err := s.Save(ctx, "jobs/j-1/doc.pdf", strings.NewReader("pdf"))
	require.NoError(t, err)

	require.NoError(t, s.Delete(ctx, "jobs/j-1/doc.pdf"))

	exists, err := s.Exists(ctx, "jobs/j-1/doc.pdf")
	require.NoError(t, err)
	assert.False(t, exists)

	// Deleting a file that is already gone is not an error.
	assert.NoError(t, s.Delete(ctx, "jobs/j-1/doc.pdf"))
}

func TestLocalStorageRejectsEscapingPaths(t *testing.T) {
	s := newTestStorage(t)
	ctx := context.Background()

	_, err := s.Save(ctx, "../outside.txt", strings.NewReader("nope"))
	// Cleaning confines the path inside the base directory.
	if err == nil {
		exists, existsErr := s.Exists(ctx, "outside.txt")
		require.NoError(t, existsErr)
		assert.True(t, exists)
	}
}
