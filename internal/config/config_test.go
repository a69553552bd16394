package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	assert.Equal(t, 4, cfg.Players)
	assert.Equal(t, 3, cfg.ClumpLimit)
	assert.Empty(t, cfg.Scenario)
	assert.Zero(t, cfg.Seed)
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	data := `
scenario: fog-island
players: 6
seed: 12345
clump_limit: 2
database: /tmp/boards.db
`
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "fog-island", cfg.Scenario)
	assert.Equal(t, 6, cfg.Players)
	assert.Equal(t, int64(12345), cfg.Seed)
	assert.Equal(t, 2, cfg.ClumpLimit)
	assert.Equal(t, "/tmp/boards.db", cfg.Database)
}

func TestLoadDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("scenario: classic\n"), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 4, cfg.Players)
	assert.Equal(t, 3, cfg.ClumpLimit)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read config file")
}

func TestLoadBadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("players: [not a number\n"), 0o644))

	_, err := Load(path)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse config file")
}
