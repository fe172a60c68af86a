package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, 20, cfg.ScanWindow)
	assert.NoError(t, cfg.Validate())
}

func TestValidate(t *testing.T) {
	cfg := DefaultConfig()
	cfg.LogLevel = "verbose"
	assert.Error(t, cfg.Validate())

	cfg = DefaultConfig()
	cfg.ScanWindow = 0
	assert.Error(t, cfg.Validate())

	cfg = DefaultConfig()
	cfg.SecuritySchemes = []SecurityScheme{{Summary: "no name"}}
	assert.Error(t, cfg.Validate())
}

func TestLoadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rovo-lsp.yaml")
	data := `log_level: debug
scan_window: 10
security_schemes:
  - name: mtls
    summary: Mutual TLS
`
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, 10, cfg.ScanWindow)
	require.Len(t, cfg.SecuritySchemes, 1)
	assert.Equal(t, "mtls", cfg.SecuritySchemes[0].Name)
}

func TestLoadConfigPartialFileKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rovo-lsp.yaml")
	require.NoError(t, os.WriteFile(path, []byte("log_level: warn\n"), 0o644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "warn", cfg.LogLevel)
	assert.Equal(t, 20, cfg.ScanWindow)
}

func TestLoadConfigMissingExplicitFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestLoadConfigInvalidValues(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rovo-lsp.yaml")
	require.NoError(t, os.WriteFile(path, []byte("scan_window: -1\n"), 0o644))

	_, err := LoadConfig(path)
	assert.ErrorContains(t, err, "scan_window")
}
