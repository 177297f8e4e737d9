package names

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Options tunes the connection pool of the MySQL store
type Options struct {
	MaxOpenConns    int           `yaml:"max_open_conns"`    // Maximum open connections (0 means unlimited)
	MaxIdleConns    int           `yaml:"max_idle_conns"`    // Maximum idle connections
	ConnMaxLifetime time.Duration `yaml:"conn_max_lifetime"` // Maximum lifetime of a connection, e.g. "5m"
}

// DefaultOptions returns the pool settings used when no options file is given
func DefaultOptions() Options {
	return Options{
		MaxOpenConns:    10,
		MaxIdleConns:    5,
		ConnMaxLifetime: 5 * time.Minute,
	}
}

// LoadOptions reads pool options from a YAML file. Missing keys keep their defaults
func LoadOptions(path string) (Options, error) {
	opts := DefaultOptions()

	data, err := os.ReadFile(path)
	if err != nil {
		return opts, fmt.Errorf("failed to read store options file: %w", err)
	}

	if err := yaml.Unmarshal(data, &opts); err != nil {
		return opts, fmt.Errorf("failed to parse store options file: %w", err)
	}

	return opts, nil
}
