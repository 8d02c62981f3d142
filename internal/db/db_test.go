package db

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunMigrationsWithMissingPath(t *testing.T) {
	// zero *.up.sql files is valid and never touches the connection
	err := RunMigrations(nil, "./does-not-exist")
	assert.NoError(t, err)
}

func TestRunMigrationsSkipsDownFiles(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "0001_init.down.sql"), []byte("DROP TABLE users;"), 0o644))

	err := RunMigrations(nil, dir)
	assert.NoError(t, err)
}

func TestStoreIntegration(t *testing.T) {
	dbURL := os.Getenv("TEST_DATABASE_URL")
	if dbURL == "" {
		t.Skip("TEST_DATABASE_URL not set")
	}

	conn, err := Open(dbURL)
	require.NoError(t, err)
	defer conn.Close()
	require.NoError(t, RunMigrations(conn, "../../migrations"))

	store := NewStore(conn)
	testContactMessages(t, store)
}
