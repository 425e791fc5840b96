// Package config provides application configuration.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Default configuration values.
const (
	DefaultPassInterval       = 5 * time.Minute
	DefaultLargeFileThreshold = int64(1) << 30 // 1 GiB
	DefaultListRetries        = 3
)

// Config is the application configuration.
type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	Database DatabaseConfig `mapstructure:"database"`
	Backend  BackendConfig  `mapstructure:"backend"`
	Sync     SyncConfig     `mapstructure:"sync"`
}

// ServerConfig holds HTTP server configuration.
type ServerConfig struct {
	Listen string `mapstructure:"listen"`
}

// DatabaseConfig holds metadata store configuration.
type DatabaseConfig struct {
	Path  string `mapstructure:"path"`
	Debug bool   `mapstructure:"debug"` // log SQL queries
}

// BackendConfig holds transfer backend configuration.
type BackendConfig struct {
	Type      string                    `mapstructure:"type"` // storage backend: "rclone" (default)
	Endpoints map[string]EndpointConfig `mapstructure:"endpoints"`
}

// EndpointConfig binds a repository endpoint id to a backend remote.
type EndpointConfig struct {
	// Remote is the rclone remote string: a plain path for node-local
	// storage, or a connection string for a remote transfer agent.
	Remote string `mapstructure:"remote"`
}

// SyncConfig holds replication pass configuration.
type SyncConfig struct {
	PassInterval       time.Duration `mapstructure:"passInterval"`       // interval between automatic reconcile+transfer passes in serve mode
	LargeFileThreshold int64         `mapstructure:"largeFileThreshold"` // bytes; datasets at or above this size are scheduled in a separate job class
	ListRetries        int           `mapstructure:"listRetries"`        // bounded retries for transient listing failures
	DefaultLab         string        `mapstructure:"defaultLab"`         // lab scope applied when a command passes no --lab
}

// LoadOptions configures how configuration is loaded.
type LoadOptions struct {
	// ConfigFile is an explicit config file path. If empty, default locations are searched.
	ConfigFile string
}

// Load reads configuration from file and environment variables.
// If opts.ConfigFile is set, that file is used directly.
// Otherwise, it searches default locations: $HOME, current directory, /config
// for files named .dataferry.yaml, dataferry.yaml, or config.yaml.
//
// Environment variables with prefix DATAFERRY_ override config file values.
// For the dynamic endpoints map, set DATAFERRY_ENDPOINTS to a comma-separated
// list of endpoint ids to enable env var binding for those entries.
func Load(opts LoadOptions) (Config, error) {
	v := viper.NewWithOptions(viper.ExperimentalBindStruct())

	if opts.ConfigFile != "" {
		v.SetConfigFile(opts.ConfigFile)
	} else {
		home, err := os.UserHomeDir()
		if err == nil {
			v.AddConfigPath(home)
		}
		v.AddConfigPath(".")
		v.AddConfigPath("/config")
		v.SetConfigType("yaml")
		v.SetConfigName(".dataferry")
		v.SetConfigName("dataferry")
		v.SetConfigName("config")
	}

	// Environment variables
	v.SetEnvPrefix("DATAFERRY")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Bind env vars for dynamic map keys if specified
	bindEndpointEnvVars(v)

	// Set defaults
	v.SetDefault("server.listen", "[::]:8617")
	v.SetDefault("database.path", "dataferry.db")
	v.SetDefault("sync.passInterval", "5m")
	v.SetDefault("sync.largeFileThreshold", DefaultLargeFileThreshold)
	v.SetDefault("sync.listRetries", DefaultListRetries)

	// Read config file (ignore error if not found)
	_ = v.ReadInConfig()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, err
	}

	if err := validate(&cfg); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Valid backend types.
//
//nolint:gochecknoglobals // validation lookup table
var validBackendTypes = map[string]bool{
	"":       true, // empty means default (rclone)
	"rclone": true,
}

// validate checks that the configuration is valid.
func validate(cfg *Config) error {
	var errs []error

	if !validBackendTypes[cfg.Backend.Type] {
		errs = append(errs, fmt.Errorf("backend.type: unknown backend %q", cfg.Backend.Type))
	}

	for id, ep := range cfg.Backend.Endpoints {
		if ep.Remote == "" {
			errs = append(errs, fmt.Errorf("endpoint %q: remote is required", id))
		}
	}

	if cfg.Database.Path == "" {
		errs = append(errs, errors.New("database.path is required"))
	}

	if cfg.Sync.LargeFileThreshold <= 0 {
		errs = append(errs, errors.New("sync.largeFileThreshold must be positive"))
	}
	if cfg.Sync.ListRetries < 1 {
		errs = append(errs, errors.New("sync.listRetries must be at least 1"))
	}

	if len(errs) > 0 {
		return errors.Join(errs...)
	}

	return nil
}

// endpointEnvFields lists all EndpointConfig fields for env var binding.
// This must be kept in sync with the EndpointConfig struct.
// Tests verify this list matches the struct fields.
//
//nolint:gochecknoglobals // env var binding field list
var endpointEnvFields = []string{
	"remote",
}

// bindEndpointEnvVars reads the DATAFERRY_ENDPOINTS env var to get the list
// of endpoint ids, then binds all endpoint fields for each id using
// MustBindEnv. This allows viper to discover dynamic map keys from
// environment variables. The list env var is unset after reading to prevent
// viper from treating it as the "endpoints" config key (which would cause a
// type mismatch).
func bindEndpointEnvVars(v *viper.Viper) {
	endpointsEnv := os.Getenv("DATAFERRY_ENDPOINTS")
	if endpointsEnv == "" {
		return
	}

	// Unset the list env var so viper doesn't interpret it as endpoints=string
	_ = os.Unsetenv("DATAFERRY_ENDPOINTS")

	for id := range strings.SplitSeq(endpointsEnv, ",") {
		id = strings.TrimSpace(id)
		if id == "" {
			continue
		}

		for _, field := range endpointEnvFields {
			key := "backend.endpoints." + id + "." + field
			v.MustBindEnv(key)
		}
	}
}
