package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dataferry/dataferry/internal/config"
)

// loadConfigFromYAML creates a temp config file and loads it using Load().
// This ensures tests use the exact same config loading code as the application.
func loadConfigFromYAML(t *testing.T, yaml string) config.Config {
	t.Helper()

	tmpDir := t.TempDir()
	configFile := filepath.Join(tmpDir, "config.yaml")

	err := os.WriteFile(configFile, []byte(yaml), 0644)
	require.NoError(t, err, "failed to write temp config file")

	cfg, err := config.Load(config.LoadOptions{ConfigFile: configFile})
	require.NoError(t, err, "failed to load config")

	return cfg
}

func TestConfigDefaults(t *testing.T) {
	tests := []struct {
		name  string
		yaml  string
		check func(t *testing.T, cfg config.Config)
	}{
		{
			name: "empty config uses all defaults",
			yaml: "",
			check: func(t *testing.T, cfg config.Config) {
				assert.Equal(t, "[::]:8617", cfg.Server.Listen)
				assert.Equal(t, "dataferry.db", cfg.Database.Path)
				assert.Equal(t, 5*time.Minute, cfg.Sync.PassInterval)
				assert.Equal(t, config.DefaultLargeFileThreshold, cfg.Sync.LargeFileThreshold)
				assert.Equal(t, config.DefaultListRetries, cfg.Sync.ListRetries)
			},
		},
		{
			name: "server listen can be overridden",
			yaml: `
server:
  listen: "0.0.0.0:9000"
`,
			check: func(t *testing.T, cfg config.Config) {
				assert.Equal(t, "0.0.0.0:9000", cfg.Server.Listen)
				// Other defaults still apply
				assert.Equal(t, "dataferry.db", cfg.Database.Path)
			},
		},
		{
			name: "sync settings can be overridden",
			yaml: `
sync:
  passInterval: 90s
  largeFileThreshold: 52428800
  listRetries: 5
  defaultLab: cortexlab
`,
			check: func(t *testing.T, cfg config.Config) {
				assert.Equal(t, 90*time.Second, cfg.Sync.PassInterval)
				assert.Equal(t, int64(52428800), cfg.Sync.LargeFileThreshold)
				assert.Equal(t, 5, cfg.Sync.ListRetries)
				assert.Equal(t, "cortexlab", cfg.Sync.DefaultLab)
			},
		},
		{
			name: "database path can be overridden",
			yaml: `
database:
  path: /var/lib/dataferry/meta.db
  debug: true
`,
			check: func(t *testing.T, cfg config.Config) {
				assert.Equal(t, "/var/lib/dataferry/meta.db", cfg.Database.Path)
				assert.True(t, cfg.Database.Debug)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := loadConfigFromYAML(t, tt.yaml)
			tt.check(t, cfg)
		})
	}
}

func TestConfigEndpoints(t *testing.T) {
	cfg := loadConfigFromYAML(t, `
backend:
  type: rclone
  endpoints:
    flatiron:
      remote: ":sftp,host=flatiron.example.org,user=ferry,key_file=/keys/id:/"
    acq-rig01:
      remote: /mnt/acquisition
`)

	require.Len(t, cfg.Backend.Endpoints, 2)
	assert.Equal(t, "/mnt/acquisition", cfg.Backend.Endpoints["acq-rig01"].Remote)
	assert.Contains(t, cfg.Backend.Endpoints["flatiron"].Remote, "sftp")
}

func TestConfigValidation(t *testing.T) {
	tests := []struct {
		name    string
		yaml    string
		wantErr string
	}{
		{
			name: "unknown backend type",
			yaml: `
backend:
  type: teleport
`,
			wantErr: "unknown backend",
		},
		{
			name: "endpoint without remote",
			yaml: `
backend:
  endpoints:
    flatiron: {}
`,
			wantErr: `endpoint "flatiron": remote is required`,
		},
		{
			name: "zero large file threshold",
			yaml: `
sync:
  largeFileThreshold: 0
`,
			wantErr: "largeFileThreshold must be positive",
		},
		{
			name: "zero list retries",
			yaml: `
sync:
  listRetries: 0
`,
			wantErr: "listRetries must be at least 1",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tmpDir := t.TempDir()
			configFile := filepath.Join(tmpDir, "config.yaml")
			require.NoError(t, os.WriteFile(configFile, []byte(tt.yaml), 0644))

			_, err := config.Load(config.LoadOptions{ConfigFile: configFile})
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestConfigEnvOverrides(t *testing.T) {
	t.Run("simple value from env", func(t *testing.T) {
		t.Setenv("DATAFERRY_SERVER_LISTEN", "127.0.0.1:7777")

		cfg := loadConfigFromYAML(t, "")
		assert.Equal(t, "127.0.0.1:7777", cfg.Server.Listen)
	})

	t.Run("dynamic endpoint map from env", func(t *testing.T) {
		t.Setenv("DATAFERRY_ENDPOINTS", "flatiron")
		t.Setenv("DATAFERRY_BACKEND_ENDPOINTS_FLATIRON_REMOTE", "/srv/flatiron")

		cfg := loadConfigFromYAML(t, "")
		require.Contains(t, cfg.Backend.Endpoints, "flatiron")
		assert.Equal(t, "/srv/flatiron", cfg.Backend.Endpoints["flatiron"].Remote)
	})
}
