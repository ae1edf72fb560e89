package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "dbrow.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "sqlite", cfg.Source.Type)
	assert.Equal(t, "sqlite", cfg.Target.Type)
}

func TestLoadFromFile(t *testing.T) {
	path := writeConfig(t, `
source:
  type: postgres
  host: src.example.com
  port: 5432
  database: appdb
  username: reader
target:
  type: sqlite
  path: /tmp/out.db
copy:
  table: people
  partitions:
    - SELECT * FROM people WHERE id <= 100
    - SELECT * FROM people WHERE id > 100
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "postgres", cfg.Source.Type)
	assert.Equal(t, "src.example.com", cfg.Source.Host)
	assert.Equal(t, 5432, cfg.Source.Port)
	assert.Equal(t, "appdb", cfg.Source.Database)
	assert.Equal(t, "/tmp/out.db", cfg.Target.Path)
	assert.Equal(t, "people", cfg.Copy.Table)
	assert.Len(t, cfg.Copy.Partitions, 2)
}

func TestLoadEnvOverridesFile(t *testing.T) {
	path := writeConfig(t, `
source:
  type: postgres
  host: src.example.com
`)

	t.Setenv("DBROW_SOURCE_HOST", "replica.example.com")
	t.Setenv("DBROW_TARGET_TYPE", "duckdb")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "postgres", cfg.Source.Type)
	assert.Equal(t, "replica.example.com", cfg.Source.Host)
	assert.Equal(t, "duckdb", cfg.Target.Type)
}

func TestLoadExplicitFileMissing(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestEndpointAdapterConfig(t *testing.T) {
	e := Endpoint{
		Type:     "postgres",
		Host:     "db.example.com",
		Port:     5432,
		Database: "appdb",
		Username: "reader",
		Password: "secret",
		Schema:   "public",
		Options:  map[string]string{"sslmode": "disable"},
	}

	ac := e.AdapterConfig()
	assert.Equal(t, e.Type, ac.Type)
	assert.Equal(t, e.Host, ac.Host)
	assert.Equal(t, e.Port, ac.Port)
	assert.Equal(t, e.Options, ac.Options)
}
