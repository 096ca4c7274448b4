package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitializeAPI(t *testing.T) {
	dir := t.TempDir()
	configPath := filepath.Join(dir, "app.yml")

	configContent := fmt.Sprintf(`
apiPort: 8080
database:
  type: sqlite
  path: %s
auth:
  jwtSecret: test
`, filepath.Join(dir, "data", "fitcoach.db"))
	require.NoError(t, os.WriteFile(configPath, []byte(configContent), 0644))

	a, db, err := initializeAPI(context.Background(), configPath)
	require.NoError(t, err)
	defer db.Close()
	assert.NotNil(t, a)
	assert.Equal(t, 8080, a.Config.APIPort)

	_, err = os.Stat(filepath.Join(dir, "data", "fitcoach.db"))
	assert.NoError(t, err)
}

func TestInitializeAPIBadDatabase(t *testing.T) {
	dir := t.TempDir()
	configPath := filepath.Join(dir, "app.yml")
	require.NoError(t, os.WriteFile(configPath, []byte("database:\n  type: oracle\n"), 0644))

	_, _, err := initializeAPI(context.Background(), configPath)
	assert.ErrorContains(t, err, "unsupported database type")
}
