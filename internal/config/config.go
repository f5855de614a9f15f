// Package config loads gridsystem settings from a TOML file.
//
// The file lives at $XDG_CONFIG_HOME/gridsystem/config.toml (or
// ~/.config/gridsystem/config.toml). A missing file is not an error: every
// field has a default, and the file only needs to name what it changes.
//
//	profile = "legacy"
//	log_level = "debug"
//
//	[cache]
//	backend = "redis"
//	ttl = "24h"
//	namespace = "staging"
//
//	[redis]
//	addr = "localhost:6379"
//
//	[server]
//	addr = ":8080"
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/charmbracelet/log"

	"github.com/newjenk/gridsystem/pkg/cache"
	"github.com/newjenk/gridsystem/pkg/grid"
)

// AppName names the config and cache directories.
const AppName = "gridsystem"

// Cache backends.
const (
	BackendFile  = "file"
	BackendRedis = "redis"
	BackendNone  = "none"
)

// Environment overrides, applied after the file.
const (
	EnvRedisAddr     = "GRIDSYSTEM_REDIS_ADDR"
	EnvRedisPassword = "GRIDSYSTEM_REDIS_PASSWORD"
	EnvRedisDB       = "GRIDSYSTEM_REDIS_DB"
	EnvServerAddr    = "GRIDSYSTEM_ADDR"
)

// Config is the on-disk configuration.
type Config struct {
	Profile  grid.Profile `toml:"profile"`
	LogLevel string       `toml:"log_level"`
	Cache    CacheConfig  `toml:"cache"`
	Redis    RedisConfig  `toml:"redis"`
	Server   ServerConfig `toml:"server"`
}

// CacheConfig selects where rendered classes are memoized.
type CacheConfig struct {
	Backend string   `toml:"backend"`
	Dir     string   `toml:"dir"`
	TTL     Duration `toml:"ttl"`

	// Namespace prefixes every cache key, so several setups can share
	// one directory or Redis database without seeing each other's entries.
	Namespace string `toml:"namespace"`
}

// RedisConfig is used when Cache.Backend is "redis".
type RedisConfig struct {
	Addr     string `toml:"addr"`
	Password string `toml:"password"`
	DB       int    `toml:"db"`
	Prefix   string `toml:"prefix"`
}

// ServerConfig configures the serve command.
type ServerConfig struct {
	Addr         string   `toml:"addr"`
	ReadTimeout  Duration `toml:"read_timeout"`
	WriteTimeout Duration `toml:"write_timeout"`
}

// Duration is a time.Duration written as "30s" or "24h" in TOML.
type Duration struct {
	time.Duration
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (d *Duration) UnmarshalText(b []byte) error {
	v, err := time.ParseDuration(string(b))
	if err != nil {
		return err
	}
	d.Duration = v
	return nil
}

// MarshalText implements encoding.TextMarshaler.
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// Default returns the configuration used when no file exists.
func Default() Config {
	return Config{
		Profile:  grid.Canonical,
		LogLevel: "info",
		Cache: CacheConfig{
			Backend: BackendFile,
			TTL:     Duration{cache.TTLClasses},
		},
		Redis: RedisConfig{
			Addr:   "localhost:6379",
			Prefix: cache.DefaultRedisPrefix,
		},
		Server: ServerConfig{
			Addr:         ":8080",
			ReadTimeout:  Duration{10 * time.Second},
			WriteTimeout: Duration{10 * time.Second},
		},
	}
}

// DefaultPath returns the XDG location of config.toml.
func DefaultPath() (string, error) {
	if home := os.Getenv("XDG_CONFIG_HOME"); home != "" {
		return filepath.Join(home, AppName, "config.toml"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", AppName, "config.toml"), nil
}

// CacheDir returns the XDG cache directory (~/.cache/gridsystem).
func CacheDir() (string, error) {
	if home := os.Getenv("XDG_CACHE_HOME"); home != "" {
		return filepath.Join(home, AppName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".cache", AppName), nil
}

// Load reads path over the defaults. An empty path means DefaultPath; a
// missing default file yields the defaults, while a missing explicit path
// is an error.
func Load(path string) (Config, error) {
	cfg := Default()
	explicit := path != ""
	if !explicit {
		p, err := DefaultPath()
		if err != nil {
			return cfg, nil
		}
		path = p
	}

	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		if errors.Is(err, fs.ErrNotExist) && !explicit {
			return cfg.withEnv()
		}
		return cfg, fmt.Errorf("load config %s: %w", path, err)
	}
	cfg, err := cfg.withEnv()
	if err != nil {
		return cfg, err
	}
	return cfg, cfg.Validate()
}

func (c Config) withEnv() (Config, error) {
	if v := os.Getenv(EnvRedisAddr); v != "" {
		c.Redis.Addr = v
	}
	if v := os.Getenv(EnvRedisPassword); v != "" {
		c.Redis.Password = v
	}
	if v := os.Getenv(EnvRedisDB); v != "" {
		db, err := strconv.Atoi(v)
		if err != nil {
			return c, fmt.Errorf("%s: %w", EnvRedisDB, err)
		}
		c.Redis.DB = db
	}
	if v := os.Getenv(EnvServerAddr); v != "" {
		c.Server.Addr = v
	}
	return c, nil
}

// Validate rejects settings no command could act on.
func (c Config) Validate() error {
	switch c.Cache.Backend {
	case BackendFile, BackendRedis, BackendNone:
	default:
		return fmt.Errorf("cache backend %q: must be file, redis or none", c.Cache.Backend)
	}
	if _, err := c.Level(); err != nil {
		return fmt.Errorf("log level %q: %w", c.LogLevel, err)
	}
	if c.Cache.TTL.Duration < 0 {
		return fmt.Errorf("cache ttl must not be negative")
	}
	return nil
}

// Level parses LogLevel.
func (c Config) Level() (log.Level, error) {
	if c.LogLevel == "" {
		return log.InfoLevel, nil
	}
	return log.ParseLevel(c.LogLevel)
}

// Write encodes c as TOML to path, creating parent directories.
func Write(path string, c Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := toml.NewEncoder(f).Encode(c); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
