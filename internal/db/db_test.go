package db

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeGarbage(t *testing.T, path string) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, bytes.Repeat([]byte("not a database "), 300), 0o644))
}

func TestOpenDB_RejectsGarbageFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tt.db")
	writeGarbage(t, path)

	_, err := OpenDB(path)
	require.Error(t, err)
	assert.True(t, IsUnreadable(err))
}

func TestOpenOrRecover_MovesGarbageAside(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "tt.db")
	writeGarbage(t, path)

	var buf bytes.Buffer
	db, err := OpenOrRecover(path, zerolog.New(&buf))
	require.NoError(t, err)
	defer db.Close()

	_, err = db.Exec(`INSERT INTO shortcuts (name, customer, project) VALUES ('x', 'a', 'b')`)
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "unreadable")
	assert.Contains(t, buf.String(), `"level":"warn"`)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	var backups []string
	for _, e := range entries {
		if strings.HasPrefix(e.Name(), "tt.db.corrupt-") {
			backups = append(backups, e.Name())
		}
	}
	require.Len(t, backups, 1)
	kept, err := os.ReadFile(filepath.Join(dir, backups[0]))
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(kept, []byte("not a database")))
}

func TestOpenOrRecover_HealthyFileIsKept(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tt.db")
	first, err := OpenDB(path)
	require.NoError(t, err)
	_, err = first.Exec(`INSERT INTO shortcuts (name, customer, project) VALUES ('x', 'a', 'b')`)
	require.NoError(t, err)
	require.NoError(t, first.Close())

	var buf bytes.Buffer
	db, err := OpenOrRecover(path, zerolog.New(&buf))
	require.NoError(t, err)
	defer db.Close()

	var n int
	require.NoError(t, db.QueryRow(`SELECT COUNT(*) FROM shortcuts`).Scan(&n))
	assert.Equal(t, 1, n)
	assert.Empty(t, buf.String())
}

func TestIsUnreadable_OtherErrors(t *testing.T) {
	assert.False(t, IsUnreadable(nil))
	assert.False(t, IsUnreadable(errors.New("file is not a database")))
}
