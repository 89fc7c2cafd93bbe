package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMorphServer(t *testing.T) {
	tests := []struct {
		name   string
		server string
		want   string
	}{
		{name: "bare host and port", server: "example.com:8080", want: "http://example.com:8080"},
		{name: "already http", server: "http://example.com:8080", want: "http://example.com:8080"},
		{name: "already https", server: "https://example.com", want: "https://example.com"},
		{name: "trailing slash", server: "http://example.com/", want: "http://example.com"},
		{name: "multiple trailing slashes", server: "example.com//", want: "http://example.com"},
		{name: "empty", server: "", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, MorphServer(tt.server))
		})
	}
}

func TestLoadConfigFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	cfg := &Config{Version: "0.1.0", ServerURL: "example.com:8080"}
	require.NoError(t, cfg.WriteConfig(path))

	t.Setenv(ServerEnvVar, "")
	require.NoError(t, LoadConfig(path))
	assert.Equal(t, "http://example.com:8080", GetConfig().GetServerURL())
}

func TestLoadConfigEnvOverridesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	cfg := &Config{Version: "0.1.0", ServerURL: "configured.example.com"}
	require.NoError(t, cfg.WriteConfig(path))

	t.Setenv(ServerEnvVar, "override.example.com:9090")
	require.NoError(t, LoadConfig(path))
	assert.Equal(t, "http://override.example.com:9090", GetConfig().GetServerURL())
}

func TestLoadConfigEnvMakesMissingFileAcceptable(t *testing.T) {
	t.Setenv(ServerEnvVar, "env-only.example.com")
	require.NoError(t, LoadConfig(filepath.Join(t.TempDir(), "absent.yaml")))
	assert.Equal(t, "http://env-only.example.com", GetConfig().GetServerURL())
}

func TestLoadConfigMissingFileWithoutEnv(t *testing.T) {
	t.Setenv(ServerEnvVar, "")
	err := LoadConfig(filepath.Join(t.TempDir(), "absent.yaml"))
	require.Error(t, err)
}

func TestWriteConfigPermissions(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")
	cfg := &Config{Version: "0.1.0", ServerURL: "example.com"}
	require.NoError(t, cfg.WriteConfig(path))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0600), info.Mode().Perm())
}
