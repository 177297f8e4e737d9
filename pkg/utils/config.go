package utils

import (
	"maps"
	"net"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/go-sql-driver/mysql"
)

// Config is a thread-safe set of string settings, usually loaded from the environment
type Config struct {
	mu     sync.RWMutex
	values map[string]string
}

// NewConfig creates a new Config holding a copy of the provided key-value pairs
func NewConfig(values map[string]string) *Config {
	config := &Config{
		values: make(map[string]string, len(values)),
	}

	maps.Copy(config.values, values)

	return config
}

// NewConfigFromEnv creates a new Config from the process environment after loading the given .env files
func NewConfigFromEnv(files ...string) *Config {
	return NewConfig(LoadEnv(files...))
}

// Get retrieves a configuration value by key, or an empty string if it is not set
func (c *Config) Get(key string) string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.values[key]
}

// lookup returns the value for key and whether it is set to something non-empty
func (c *Config) lookup(key string) (string, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	value, exists := c.values[key]
	value = strings.TrimSpace(value)
	return value, exists && value != ""
}

// GetWithDefault retrieves a configuration value by key with a fallback default
func (c *Config) GetWithDefault(key, defaultValue string) string {
	if value, ok := c.lookup(key); ok {
		return value
	}
	return defaultValue
}

// GetBoolWithDefault parses a boolean setting. Unset or unparsable values give the default
func (c *Config) GetBoolWithDefault(key string, defaultValue bool) bool {
	value, ok := c.lookup(key)
	if !ok {
		return defaultValue
	}

	switch strings.ToLower(value) {
	case "1", "t", "true", "yes", "on", "enabled":
		return true
	case "0", "f", "false", "no", "off", "disabled":
		return false
	default:
		return defaultValue
	}
}

// GetIntWithDefault parses an integer setting. Unset or unparsable values give the default
func (c *Config) GetIntWithDefault(key string, defaultValue int) int {
	value, ok := c.lookup(key)
	if !ok {
		return defaultValue
	}

	parsed, err := strconv.Atoi(value)
	if err != nil {
		return defaultValue
	}
	return parsed
}

// GetFloatWithDefault parses a float setting. Unset or unparsable values give the default
func (c *Config) GetFloatWithDefault(key string, defaultValue float64) float64 {
	value, ok := c.lookup(key)
	if !ok {
		return defaultValue
	}

	parsed, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return defaultValue
	}
	return parsed
}

// GetDurationWithDefault parses a duration setting such as "30s". Unset or unparsable values give the default
func (c *Config) GetDurationWithDefault(key string, defaultValue time.Duration) time.Duration {
	value, ok := c.lookup(key)
	if !ok {
		return defaultValue
	}

	parsed, err := time.ParseDuration(value)
	if err != nil {
		return defaultValue
	}
	return parsed
}

// Set modifies a configuration value
func (c *Config) Set(key, value string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.values[key] = value
}

// Has checks if a configuration key exists
func (c *Config) Has(key string) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	_, exists := c.values[key]
	return exists
}

// DatabaseDSN returns the MySQL DSN for the names store.
// DATABASE_URL wins when set; otherwise the DSN is built from the MYSQL_* settings.
// An empty string means no database is configured
func (c *Config) DatabaseDSN() string {
	if dsn, ok := c.lookup("DATABASE_URL"); ok {
		return dsn
	}

	dbName, ok := c.lookup("MYSQL_DATABASE")
	if !ok {
		return ""
	}

	dbConfig := mysql.NewConfig()
	dbConfig.User = c.Get("MYSQL_USER")
	dbConfig.Passwd = c.Get("MYSQL_ROOT_PASSWORD")
	dbConfig.Net = "tcp"
	dbConfig.Addr = net.JoinHostPort(c.GetWithDefault("MYSQL_HOST", "127.0.0.1"), c.GetWithDefault("MYSQL_PORT", "3306"))
	dbConfig.DBName = dbName
	dbConfig.ParseTime = true
	dbConfig.Loc = time.UTC

	return dbConfig.FormatDSN()
}
