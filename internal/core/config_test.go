package core

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/inovacc/earthinspires/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_MissingFile(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), ConfigFileName))
	require.NoError(t, err)
	assert.Equal(t, model.DefaultConfig(), cfg)
}

func TestLoadConfig_EmptyPath(t *testing.T) {
	cfg, err := LoadConfig("")
	require.NoError(t, err)
	assert.Equal(t, model.DefaultConfig(), cfg)
}

func TestLoadConfig_PartialOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), ConfigFileName)
	content := `
[storage]
backend = sqlite

[log]
level = debug
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, model.BackendSQLite, cfg.Storage.Backend)
	assert.Equal(t, "debug", cfg.Log.Level)

	// Untouched keys keep their defaults
	assert.Equal(t, "text", cfg.Log.Format)
	assert.Equal(t, "picsum.photos", cfg.Capture.PlaceholderHost)
}

func TestSaveConfig_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", ConfigFileName)

	cfg := model.DefaultConfig()
	cfg.Storage.Backend = model.BackendSQLite
	cfg.Storage.Path = "/var/lib/earth.db"
	cfg.Capture.PlaceholderHost = "images.example.com"
	cfg.Log.Format = "json"

	require.NoError(t, SaveConfig(path, cfg))

	got, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, got)
}

func TestShowConfig(t *testing.T) {
	cfg := model.DefaultConfig()
	cfg.DataDir = "/tmp/earth"

	var buf bytes.Buffer
	ShowConfig(&buf, cfg)

	out := buf.String()
	assert.Contains(t, out, "Data Directory:   /tmp/earth")
	assert.Contains(t, out, "Storage Backend:  bolt")
	assert.NotContains(t, out, "Storage Path:")
}
