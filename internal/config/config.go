// Package config loads the planlevel configuration file. The file is
// optional; every field has a usable default, and the database path can
// be overridden with PLANLEVEL_DB for one-off runs.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/avelarde/planlevel/internal/logging"
)

type Config struct {
	// DBPath is the SQLite database location.
	DBPath string         `yaml:"db_path"`
	Log    logging.Config `yaml:"log"`
	HTTP   HTTPConfig     `yaml:"http"`
}

type HTTPConfig struct {
	// Addr is the listen address of `planlevel serve`.
	Addr string `yaml:"addr"`
}

// DefaultPath returns the config file location: $PLANLEVEL_CONFIG if set,
// otherwise ~/.planlevel/config.yaml.
func DefaultPath() string {
	if p := os.Getenv("PLANLEVEL_CONFIG"); p != "" {
		return p
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".planlevel", "config.yaml")
}

// Default returns the built-in configuration.
func Default() Config {
	cfg := Config{
		Log:  logging.Config{Level: "info"},
		HTTP: HTTPConfig{Addr: "127.0.0.1:8433"},
	}
	if home, err := os.UserHomeDir(); err == nil {
		cfg.DBPath = filepath.Join(home, ".planlevel", "planlevel.db")
	} else {
		cfg.DBPath = "planlevel.db"
	}
	return cfg
}

// Load reads the config file at path, layering it over the defaults.
// A missing file is not an error; a malformed one is.
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case os.IsNotExist(err):
			// defaults only
		case err != nil:
			return cfg, fmt.Errorf("reading config %s: %w", path, err)
		default:
			if err := yaml.Unmarshal(data, &cfg); err != nil {
				return cfg, fmt.Errorf("parsing config %s: %w", path, err)
			}
		}
	}

	if db := os.Getenv("PLANLEVEL_DB"); db != "" {
		cfg.DBPath = db
	}

	if err := cfg.validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func (c Config) validate() error {
	if c.DBPath == "" {
		return fmt.Errorf("db_path must not be empty")
	}
	if c.HTTP.Addr == "" {
		return fmt.Errorf("http.addr must not be empty")
	}
	return nil
}
