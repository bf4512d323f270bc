// Package config loads forgelog configuration from defaults, an optional
// config file and FORGELOG_* environment variables, in that order.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Config is the full application configuration.
type Config struct {
	Database DatabaseConfig `mapstructure:"database"`
	Logging  LoggingConfig  `mapstructure:"logging"`
}

// DatabaseConfig selects and parameterizes the storage backend.
type DatabaseConfig struct {
	Type     string `mapstructure:"type"` // "sqlite" or "postgres"
	Path     string `mapstructure:"path"` // sqlite file path
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	User     string `mapstructure:"user"`
	Password string `mapstructure:"password"`
	Name     string `mapstructure:"name"`
	SSLMode  string `mapstructure:"sslmode"`
}

// LoggingConfig controls the zap logger.
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"` // "console" or "json"
}

// Load reads configuration. A missing config file is not an error; defaults
// and environment variables still apply.
func Load() (*Config, error) {
	v := viper.New()

	v.SetDefault("database.type", "sqlite")
	v.SetDefault("database.path", defaultDBPath())
	v.SetDefault("database.host", "localhost")
	v.SetDefault("database.port", 5432)
	v.SetDefault("database.user", "postgres")
	v.SetDefault("database.password", "")
	v.SetDefault("database.name", "forgelog")
	v.SetDefault("database.sslmode", "disable")
	v.SetDefault("logging.level", "warn")
	v.SetDefault("logging.format", "console")

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	if dir, err := os.UserConfigDir(); err == nil {
		v.AddConfigPath(filepath.Join(dir, "forgelog"))
	}
	v.AddConfigPath(".")

	v.SetEnvPrefix("FORGELOG")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if cfg.Database.Type != "sqlite" && cfg.Database.Type != "postgres" {
		return nil, fmt.Errorf("unsupported database type %q", cfg.Database.Type)
	}

	return cfg, nil
}

// DSN builds the backend connection string.
func (c DatabaseConfig) DSN() string {
	if c.Type == "postgres" {
		return fmt.Sprintf(
			"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
			c.Host, c.Port, c.User, c.Password, c.Name, c.SSLMode,
		)
	}
	// Foreign keys are off by default in SQLite; the cascade invariants
	// depend on the pragma.
	return c.Path + "?_foreign_keys=on"
}

func defaultDBPath() string {
	if home, err := os.UserHomeDir(); err == nil {
		return filepath.Join(home, ".forgelog", "forgelog.sqlite")
	}
	return "forgelog.sqlite"
}
