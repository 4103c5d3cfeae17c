package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	BackendJSON   = "json"
	BackendSQLite = "sqlite"

	envPrefix = "EXPENSE"
	fileName  = "expense-tracker"
)

// Config represents the application configuration
type Config struct {
	Storage  StorageConfig `mapstructure:"storage"`
	Currency string        `mapstructure:"currency"` // printed before amounts
	LogLevel string        `mapstructure:"log_level"`
}

// StorageConfig selects and locates the backing store
type StorageConfig struct {
	Backend    string `mapstructure:"backend"` // "json" or "sqlite"
	File       string `mapstructure:"file"`
	SQLitePath string `mapstructure:"sqlite_path"`
}

// LoadConfig loads configuration from file and environment variables
func LoadConfig(configPath string) (*Config, error) {
	return Load(viper.New(), configPath)
}

// Load reads configuration into v, which may already carry bound flags.
// An empty configPath looks for an optional expense-tracker.toml in the
// working directory; an explicit path must exist.
func Load(v *viper.Viper, configPath string) (*Config, error) {
	if err := loadDotEnv(".env"); err != nil {
		return nil, err
	}

	v.SetDefault("storage.backend", BackendJSON)
	v.SetDefault("storage.file", "./expenses.json")
	v.SetDefault("storage.sqlite_path", "./expenses.db")
	v.SetDefault("currency", "$")
	v.SetDefault("log_level", "warn")

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetConfigType("toml")
	if configPath != "" {
		v.SetConfigFile(configPath)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	} else {
		v.SetConfigName(fileName)
		v.AddConfigPath(".")
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return nil, fmt.Errorf("failed to read config file: %w", err)
			}
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return &config, nil
}

// Validate rejects settings no backend can serve
func (c *Config) Validate() error {
	switch c.Storage.Backend {
	case BackendJSON:
		if c.Storage.File == "" {
			return errors.New("invalid config: storage.file must not be empty")
		}
	case BackendSQLite:
		if c.Storage.SQLitePath == "" {
			return errors.New("invalid config: storage.sqlite_path must not be empty")
		}
	default:
		return fmt.Errorf("invalid config: unknown storage backend %q", c.Storage.Backend)
	}
	return nil
}

func loadDotEnv(path string) error {
	if err := godotenv.Load(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("failed to load %s: %w", path, err)
	}
	return nil
}
