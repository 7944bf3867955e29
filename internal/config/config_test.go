package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	cfg, err := Load(viper.New())
	require.NoError(t, err)

	assert.Equal(t, "http://localhost:5000", cfg.ServerURL)
	assert.Equal(t, 10*time.Second, cfg.Timeout)
	assert.Equal(t, BackendTOML, cfg.StoreBackend)
	assert.Equal(t, filepath.Join(home, ".pwsync", "session.toml"), cfg.StorePath)
	assert.Equal(t, "warn", cfg.LogLevel)
}

func TestLoadReadsConfigFileAndEnvOverrides(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	require.NoError(t, os.MkdirAll(filepath.Join(home, ".pwsync"), 0o700))
	require.NoError(t, os.WriteFile(filepath.Join(home, ".pwsync", "config.toml"), []byte(`
[server]
url = "https://vault.example.com/"
timeout = "3s"

[store]
backend = "file"
`), 0o600))
	t.Setenv("PWSYNC_LOG_LEVEL", "debug")

	cfg, err := Load(viper.New())
	require.NoError(t, err)

	assert.Equal(t, "https://vault.example.com", cfg.ServerURL)
	assert.Equal(t, 3*time.Second, cfg.Timeout)
	assert.Equal(t, BackendFile, cfg.StoreBackend)
	assert.Equal(t, "debug", cfg.LogLevel)
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	tests := []struct {
		name    string
		env     map[string]string
		wantErr string
	}{
		{name: "scheme", env: map[string]string{"PWSYNC_SERVER_URL": "ftp://example.com"}, wantErr: "must use http or https"},
		{name: "host", env: map[string]string{"PWSYNC_SERVER_URL": "http://"}, wantErr: "host is required"},
		{name: "backend", env: map[string]string{"PWSYNC_STORE_BACKEND": "sqlite"}, wantErr: "unsupported store.backend"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Setenv("HOME", t.TempDir())
			for key, value := range tc.env {
				t.Setenv(key, value)
			}

			_, err := Load(viper.New())
			require.Error(t, err)
			assert.ErrorContains(t, err, tc.wantErr)
		})
	}
}
