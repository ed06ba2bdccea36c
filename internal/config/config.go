// Package config provides configuration management for the reviews API.
//
// Values are layered, later layers winning:
//  1. Built-in defaults
//  2. YAML config file
//  3. .env file in the working directory
//  4. GAMEREVIEWS_* environment variables
//
// Config file locations (priority order):
//  1. -config flag
//  2. $GAMEREVIEWS_CONFIG
//  3. ./gamereviews.yaml
//  4. ~/.config/gamereviews/config.yaml
//  5. /etc/gamereviews/config.yaml
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"
	yamlv3 "gopkg.in/yaml.v3"
)

// EnvPrefix prefixes every environment override, e.g. GAMEREVIEWS_DATABASE_DSN
const EnvPrefix = "GAMEREVIEWS_"

// Config is the complete server configuration
type Config struct {
	Server   ServerConfig   `koanf:"server" yaml:"server"`
	Database DatabaseConfig `koanf:"database" yaml:"database"`
	Logging  LoggingConfig  `koanf:"logging" yaml:"logging"`
	CORS     CORSConfig     `koanf:"cors" yaml:"cors"`
}

// ServerConfig controls the HTTP listener
type ServerConfig struct {
	Addr            string        `koanf:"addr" yaml:"addr"`
	ReadTimeout     time.Duration `koanf:"read_timeout" yaml:"read_timeout"`
	WriteTimeout    time.Duration `koanf:"write_timeout" yaml:"write_timeout"`
	IdleTimeout     time.Duration `koanf:"idle_timeout" yaml:"idle_timeout"`
	ShutdownTimeout time.Duration `koanf:"shutdown_timeout" yaml:"shutdown_timeout"`
}

// DatabaseConfig selects the store.
// Seed names an embedded fixture ("test", "development") or a dataset file;
// when set the store is reset and loaded from it at startup. Watch reloads a
// seed file whenever it changes on disk.
type DatabaseConfig struct {
	Driver string `koanf:"driver" yaml:"driver"`
	DSN    string `koanf:"dsn" yaml:"dsn"`
	Seed   string `koanf:"seed" yaml:"seed,omitempty"`
	Watch  bool   `koanf:"watch" yaml:"watch,omitempty"`
}

// LoggingConfig controls log output
type LoggingConfig struct {
	Level  string `koanf:"level" yaml:"level"`
	Format string `koanf:"format" yaml:"format"`
	Caller bool   `koanf:"caller" yaml:"caller"`
}

// CORSConfig lists origins allowed to call the API from a browser
type CORSConfig struct {
	AllowedOrigins []string `koanf:"allowed_origins" yaml:"allowed_origins"`
}

// DefaultConfig returns sensible defaults for a new installation
func DefaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Addr:            ":9090",
			ReadTimeout:     10 * time.Second,
			WriteTimeout:    30 * time.Second,
			IdleTimeout:     60 * time.Second,
			ShutdownTimeout: 10 * time.Second,
		},
		Database: DatabaseConfig{
			Driver: "sqlite",
			DSN:    "./gamereviews.db",
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
		},
		CORS: CORSConfig{
			AllowedOrigins: []string{"*"},
		},
	}
}

// Load builds the configuration. path overrides the config file search;
// the returned string is the file actually used, or "" for none.
func Load(path string) (*Config, string, error) {
	if path == "" {
		path = FindConfigPath()
	}

	k := koanf.New(".")

	if err := k.Load(structs.Provider(DefaultConfig(), "koanf"), nil); err != nil {
		return nil, path, fmt.Errorf("load defaults: %w", err)
	}

	if path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, path, fmt.Errorf("read config %s: %w", path, err)
		}
	}

	// .env never overrides variables already set in the process
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, path, fmt.Errorf("read .env: %w", err)
	}

	if err := k.Load(env.Provider(EnvPrefix, ".", envTransformFunc), nil); err != nil {
		return nil, path, fmt.Errorf("load environment: %w", err)
	}

	if err := splitOrigins(k); err != nil {
		return nil, path, err
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, path, fmt.Errorf("parse config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, path, err
	}

	return &cfg, path, nil
}

// envTransformFunc maps GAMEREVIEWS_DATABASE_DSN to database.dsn and
// GAMEREVIEWS_SERVER_READ_TIMEOUT to server.read_timeout
func envTransformFunc(key string) string {
	key = strings.ToLower(strings.TrimPrefix(key, EnvPrefix))
	return strings.Replace(key, "_", ".", 1)
}

// splitOrigins turns a comma-separated env value into a list
func splitOrigins(k *koanf.Koanf) error {
	const path = "cors.allowed_origins"
	raw, ok := k.Get(path).(string)
	if !ok {
		return nil
	}

	var origins []string
	for _, o := range strings.Split(raw, ",") {
		if o = strings.TrimSpace(o); o != "" {
			origins = append(origins, o)
		}
	}
	if err := k.Set(path, origins); err != nil {
		return fmt.Errorf("set %s: %w", path, err)
	}
	return nil
}

// Validate rejects configurations the server cannot start with
func (c *Config) Validate() error {
	var errs []string

	if c.Server.Addr == "" {
		errs = append(errs, "server.addr is required")
	}
	switch c.Database.Driver {
	case "sqlite", "postgres":
	default:
		errs = append(errs, fmt.Sprintf("database.driver must be sqlite or postgres, got %q", c.Database.Driver))
	}
	if c.Database.DSN == "" {
		errs = append(errs, "database.dsn is required")
	}
	switch c.Logging.Format {
	case "json", "console":
	default:
		errs = append(errs, fmt.Sprintf("logging.format must be json or console, got %q", c.Logging.Format))
	}
	if c.Server.ShutdownTimeout < 0 {
		errs = append(errs, "server.shutdown_timeout must not be negative")
	}

	if len(errs) > 0 {
		return fmt.Errorf("invalid config: %s", strings.Join(errs, "; "))
	}
	return nil
}

// Save writes config to the specified path
func (c *Config) Save(path string) error {
	if err := EnsureConfigDir(path); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}

	data, err := yamlv3.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}

	return os.WriteFile(path, data, 0644)
}
