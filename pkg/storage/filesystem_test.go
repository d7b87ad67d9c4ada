package storage

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExportStorageRoundTrip(t *testing.T) {
	store, err := NewExportStorage(t.TempDir())
	require.NoError(t, err)

	name, err := store.Save("student_roster_exp-1.csv", []byte("Mã học viên,Họ tên\n"))
	require.NoError(t, err)
	assert.Equal(t, "student_roster_exp-1.csv", name)

	file, err := store.Open(name)
	require.NoError(t, err)
	defer file.Close() //nolint:errcheck
	content, err := os.ReadFile(file.Name())
	require.NoError(t, err)
	assert.Contains(t, string(content), "Mã học viên")

	require.NoError(t, store.Delete(name))
	_, err = store.Open(name)
	assert.Error(t, err)
}

func TestExportStorageStripsDirectoryComponents(t *testing.T) {
	dir := t.TempDir()
	store, err := NewExportStorage(dir)
	require.NoError(t, err)

	name, err := store.Save("../escape.csv", []byte("x"))
	require.NoError(t, err)
	assert.Equal(t, "escape.csv", name)
	_, err = os.Stat(filepath.Join(dir, "escape.csv"))
	require.NoError(t, err)
}

func TestExportStorageCleanupOlderThan(t *testing.T) {
	dir := t.TempDir()
	store, err := NewExportStorage(dir)
	require.NoError(t, err)

	stale, err := store.Save("stale.csv", []byte("old"))
	require.NoError(t, err)
	old := time.Now().Add(-48 * time.Hour)
	require.NoError(t, os.Chtimes(filepath.Join(dir, stale), old, old))

	fresh, err := store.Save("fresh.csv", []byte("new"))
	require.NoError(t, err)

	deleted, err := store.CleanupOlderThan(24 * time.Hour)
	require.NoError(t, err)
	assert.Equal(t, []string{"stale.csv"}, deleted)

	_, err = store.Open(fresh)
	assert.NoError(t, err)
}
