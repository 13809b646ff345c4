// Package config loads tt settings from an optional YAML file and TT_*
// environment variables.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/alexanderramin/tt/internal/billing"
	"github.com/spf13/viper"
)

const (
	DriverSQLite = "sqlite"
	DriverJSON   = "json"

	// EnvConfigPath overrides the config file location.
	EnvConfigPath = "TT_CONFIG"
)

type Config struct {
	Storage StorageConfig `mapstructure:"storage"`
	Billing BillingConfig `mapstructure:"billing"`
	Logging LoggingConfig `mapstructure:"logging"`
}

type StorageConfig struct {
	Driver string `mapstructure:"driver"`
	// Path is the database file (sqlite) or data file (json). Empty means
	// the driver default.
	Path        string `mapstructure:"path"`
	CatalogPath string `mapstructure:"catalog_path"` // json driver only
}

type BillingConfig struct {
	QuantumMinutes int `mapstructure:"quantum_minutes"`
}

type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"` // console or json
}

// Quantum returns the billing quantum in seconds.
func (c *Config) Quantum() int64 {
	return billing.QuantumFromMinutes(c.Billing.QuantumMinutes)
}

// DefaultDir is ~/.tt.
func DefaultDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("locating home directory: %w", err)
	}
	return filepath.Join(home, ".tt"), nil
}

// ResolvePath returns the config file to use: explicit if set, then
// $TT_CONFIG, then ~/.tt/config.yaml.
func ResolvePath(explicit string) (string, error) {
	if explicit != "" {
		return expandHome(explicit)
	}
	if env := os.Getenv(EnvConfigPath); env != "" {
		return expandHome(env)
	}
	dir, err := DefaultDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.yaml"), nil
}

// Load reads path (a missing file is fine), applies TT_* overrides and fills
// in driver-specific default paths.
func Load(path string) (*Config, error) {
	v := newViper(path)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshalling config: %w", err)
	}
	cfg.Storage.Driver = strings.ToLower(strings.TrimSpace(cfg.Storage.Driver))

	if err := validate(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	if err := resolvePaths(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// WriteDefaults writes a config file holding the default settings. It refuses
// to overwrite an existing file.
func WriteDefaults(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}
	v := viper.New()
	setDefaults(v)
	if err := v.SafeWriteConfigAs(path); err != nil {
		var exists viper.ConfigFileAlreadyExistsError
		if errors.As(err, &exists) {
			return fmt.Errorf("config file %s already exists", path)
		}
		return fmt.Errorf("writing config file: %w", err)
	}
	return nil
}

func newViper(path string) *viper.Viper {
	v := viper.New()
	setDefaults(v)

	v.SetConfigFile(path)
	v.SetConfigType("yaml")
	v.SetEnvPrefix("TT")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return v
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("storage.driver", DriverSQLite)
	v.SetDefault("storage.path", "")
	v.SetDefault("storage.catalog_path", "")

	v.SetDefault("billing.quantum_minutes", 15)

	v.SetDefault("logging.level", "warn")
	v.SetDefault("logging.format", "console")
}

func validate(cfg *Config) error {
	switch cfg.Storage.Driver {
	case DriverSQLite, DriverJSON:
	default:
		return fmt.Errorf("unknown storage driver %q (want %s or %s)", cfg.Storage.Driver, DriverSQLite, DriverJSON)
	}

	if cfg.Billing.QuantumMinutes <= 0 {
		return fmt.Errorf("billing.quantum_minutes must be positive, got %d", cfg.Billing.QuantumMinutes)
	}

	switch strings.ToLower(cfg.Logging.Level) {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("invalid log level %q", cfg.Logging.Level)
	}

	switch cfg.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("invalid log format %q", cfg.Logging.Format)
	}
	return nil
}

func resolvePaths(cfg *Config) error {
	home, err := os.UserHomeDir()
	if err != nil {
		return fmt.Errorf("locating home directory: %w", err)
	}

	if cfg.Storage.Path == "" {
		switch cfg.Storage.Driver {
		case DriverJSON:
			cfg.Storage.Path = filepath.Join(home, ".tt_data.json")
		default:
			cfg.Storage.Path = filepath.Join(home, ".tt", "tt.db")
		}
	}
	if cfg.Storage.CatalogPath == "" {
		cfg.Storage.CatalogPath = filepath.Join(home, ".tt_config.json")
	}

	if cfg.Storage.Path, err = expandHome(cfg.Storage.Path); err != nil {
		return err
	}
	if cfg.Storage.CatalogPath, err = expandHome(cfg.Storage.CatalogPath); err != nil {
		return err
	}
	return nil
}

func expandHome(path string) (string, error) {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("locating home directory: %w", err)
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~")), nil
}
