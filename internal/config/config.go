// Package config loads the aires configuration file.
//
// Configuration is YAML with strict decoding: unknown fields are an error,
// so a typo never silently falls back to a default. Absent fields take the
// documented defaults.
package config

import (
	"bytes"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"aires/internal/logging"
)

// Config is the root configuration.
type Config struct {
	Log   LogConfig   `yaml:"log"`
	Store StoreConfig `yaml:"store"`
}

// LogConfig configures the production logging sink.
type LogConfig struct {
	// Level is the minimum level emitted: trace, debug, info, warning,
	// error, or critical. Defaults to info.
	Level string `yaml:"level"`

	// Format is the sink encoding: json or text. Defaults to json.
	Format string `yaml:"format"`
}

// StoreConfig configures booklet persistence.
type StoreConfig struct {
	// Backend selects the store implementation: memory or sqlite.
	// Defaults to sqlite.
	Backend string `yaml:"backend"`

	// Database is the SQLite database path. Required for the sqlite
	// backend.
	Database string `yaml:"database"`

	// Directory is the default partition booklets are saved into when a
	// command does not name one.
	Directory string `yaml:"directory"`
}

// Default returns the configuration used when no file is supplied.
func Default() Config {
	return Config{
		Log: LogConfig{
			Level:  string(logging.LevelInfo),
			Format: "json",
		},
		Store: StoreConfig{
			Backend:   "sqlite",
			Database:  "aires.db",
			Directory: "/booklets",
		},
	}
}

// Load reads and validates the configuration at path. Fields absent from
// the file keep their defaults.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config %s: %w", path, err)
	}

	cfg := Default()
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse config %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks every field against its allowed values.
func (c Config) Validate() error {
	if err := logging.ValidateLevel(c.Log.Level); err != nil {
		return err
	}

	switch c.Log.Format {
	case "", "json", "text":
	default:
		return fmt.Errorf("invalid log format %q: must be json or text", c.Log.Format)
	}

	switch c.Store.Backend {
	case "memory":
	case "", "sqlite":
		if c.Store.Database == "" {
			return fmt.Errorf("sqlite backend requires store.database")
		}
	default:
		return fmt.Errorf("invalid store backend %q: must be memory or sqlite", c.Store.Backend)
	}

	if c.Store.Directory == "" {
		return fmt.Errorf("store.directory must not be empty")
	}

	return nil
}
