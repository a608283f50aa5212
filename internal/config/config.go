package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/viper"
)

// DirName is the per-project directory holding config.json and the database.
const DirName = ".taskboard"

// Defaults
const (
	DefaultCacheTTL = 5 * time.Minute
	DefaultLogLevel = "warn"
	EnvPrefix       = "TASKBOARD"
)

// Config represents the flat taskboard configuration
type Config struct {
	Version  string        `mapstructure:"version"`
	DBPath   string        `mapstructure:"db_path"`   // sqlite file
	RedisURL string        `mapstructure:"redis_url"` // empty disables the cache
	CacheTTL time.Duration `mapstructure:"cache_ttl"`
	LogLevel string        `mapstructure:"log_level"`
	Member   string        `mapstructure:"member"` // acting member for activities
}

// LoadConfig reads .taskboard/config.json from the specified directory.
// A missing file is not an error: defaults apply. TASKBOARD_* environment
// variables override both, e.g. TASKBOARD_DB_PATH.
func LoadConfig(dir string) (*Config, error) {
	v := newViper(dir)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.Is(err, fs.ErrNotExist) && !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	return &cfg, nil
}

// SaveConfig writes config.json to directory
func SaveConfig(dir string, cfg *Config) error {
	boardDir := filepath.Join(dir, DirName)
	if err := os.MkdirAll(boardDir, 0755); err != nil {
		return fmt.Errorf("failed to create %s dir: %w", DirName, err)
	}

	v := viper.New()
	v.Set("version", cfg.Version)
	v.Set("db_path", cfg.DBPath)
	v.Set("redis_url", cfg.RedisURL)
	v.Set("cache_ttl", cfg.CacheTTL.String())
	v.Set("log_level", cfg.LogLevel)
	v.Set("member", cfg.Member)

	if err := v.WriteConfigAs(Path(dir)); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	return nil
}

// Path returns the config file location for dir.
func Path(dir string) string {
	return filepath.Join(dir, DirName, "config.json")
}

// DefaultDBPath returns the database location used when db_path is unset.
func DefaultDBPath(dir string) string {
	return filepath.Join(dir, DirName, "taskboard.db")
}

func newViper(dir string) *viper.Viper {
	v := viper.New()
	v.SetConfigFile(Path(dir))
	v.SetConfigType("json")

	v.SetDefault("version", "1")
	v.SetDefault("db_path", DefaultDBPath(dir))
	v.SetDefault("redis_url", "")
	v.SetDefault("cache_ttl", DefaultCacheTTL.String())
	v.SetDefault("log_level", DefaultLogLevel)
	v.SetDefault("member", "")

	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()
	return v
}
