package testing

import (
	"testing"

	"gopkg.in/yaml.v3"

	"github.com/dataferry/dataferry/internal/config"
)

// ValidConfig returns a fully populated, valid config.Config struct.
// The returned config passes all validation checks and can be used as a
// starting point for tests that need to modify specific fields.
func ValidConfig(t *testing.T) config.Config {
	t.Helper()

	return config.Config{
		Server: config.ServerConfig{
			Listen: "[::]:8617",
		},
		Database: config.DatabaseConfig{
			Path: t.TempDir() + "/dataferry.db",
		},
		Backend: config.BackendConfig{
			Type: "rclone",
			Endpoints: map[string]config.EndpointConfig{
				"flatiron": {Remote: t.TempDir()},
				"acq-rig":  {Remote: t.TempDir()},
			},
		},
		Sync: config.SyncConfig{
			PassInterval:       config.DefaultPassInterval,
			LargeFileThreshold: config.DefaultLargeFileThreshold,
			ListRetries:        config.DefaultListRetries,
		},
	}
}

// ConfigToYAML converts a config.Config struct to a YAML string.
// This is useful for tests that need to load config via the YAML parser.
// Note: config.Config uses mapstructure tags which yaml.Marshal handles correctly.
func ConfigToYAML(t *testing.T, cfg config.Config) string {
	t.Helper()

	//nolint:musttag // config.Config uses mapstructure tags, yaml.Marshal uses field names
	data, err := yaml.Marshal(cfg)
	if err != nil {
		t.Fatalf("failed to marshal config to YAML: %v", err)
	}

	return string(data)
}
