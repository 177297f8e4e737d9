package utils

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/go-sql-driver/mysql"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConfig(t *testing.T) {
	t.Run("with nil values", func(t *testing.T) {
		config := NewConfig(nil)
		require.NotNil(t, config)
		assert.False(t, config.Has("anything"))
	})

	t.Run("copies values", func(t *testing.T) {
		values := map[string]string{"key1": "value1"}
		config := NewConfig(values)

		values["key1"] = "modified"
		assert.Equal(t, "value1", config.Get("key1"))
	})
}

func TestNewConfigFromEnv(t *testing.T) {
	envFile := filepath.Join(t.TempDir(), "test.env")
	require.NoError(t, os.WriteFile(envFile, []byte("NAMES_TEST_FROM_FILE=from_file\n"), 0o600))
	t.Cleanup(func() { os.Unsetenv("NAMES_TEST_FROM_FILE") })

	t.Setenv("NAMES_TEST_FROM_ENV", "from_env")

	config := NewConfigFromEnv(envFile, filepath.Join(t.TempDir(), "missing.env"))
	assert.Equal(t, "from_file", config.Get("NAMES_TEST_FROM_FILE"))
	assert.Equal(t, "from_env", config.Get("NAMES_TEST_FROM_ENV"))
}

func TestConfigGetWithDefault(t *testing.T) {
	config := NewConfig(map[string]string{
		"existing": "value",
		"empty":    "",
		"spaces":   "  ",
	})

	tests := []struct {
		key      string
		expected string
	}{
		{"existing", "value"},
		{"missing", "default"},
		{"empty", "default"},
		{"spaces", "default"},
	}

	for _, test := range tests {
		t.Run(test.key, func(t *testing.T) {
			assert.Equal(t, test.expected, config.GetWithDefault(test.key, "default"))
		})
	}
}

func TestConfigGetBoolWithDefault(t *testing.T) {
	config := NewConfig(map[string]string{
		"true_bool":      "true",
		"false_bool":     "false",
		"true_yes":       "YES",
		"false_off":      "off",
		"true_enabled":   "enabled",
		"false_disabled": "disabled",
		"invalid":        "maybe",
		"empty":          "",
	})

	tests := []struct {
		key          string
		defaultValue bool
		expected     bool
	}{
		{"true_bool", false, true},
		{"false_bool", true, false},
		{"true_yes", false, true},
		{"false_off", true, false},
		{"true_enabled", false, true},
		{"false_disabled", true, false},
		{"invalid", true, true},
		{"empty", true, true},
		{"missing", false, false},
	}

	for _, test := range tests {
		t.Run(test.key, func(t *testing.T) {
			got := config.GetBoolWithDefault(test.key, test.defaultValue)
			assert.Equal(t, test.expected, got, "GetBoolWithDefault(%s)", test.key)
		})
	}
}

func TestConfigNumbers(t *testing.T) {
	config := NewConfig(map[string]string{
		"int":      "42",
		"negative": "-10",
		"float":    "2.5",
		"duration": "90s",
		"invalid":  "not_a_number",
	})

	assert.Equal(t, 42, config.GetIntWithDefault("int", 0))
	assert.Equal(t, -10, config.GetIntWithDefault("negative", 0))
	assert.Equal(t, 7, config.GetIntWithDefault("invalid", 7))
	assert.Equal(t, 7, config.GetIntWithDefault("missing", 7))

	assert.Equal(t, 2.5, config.GetFloatWithDefault("float", 0))
	assert.Equal(t, 1.5, config.GetFloatWithDefault("invalid", 1.5))

	assert.Equal(t, 90*time.Second, config.GetDurationWithDefault("duration", 0))
	assert.Equal(t, time.Minute, config.GetDurationWithDefault("invalid", time.Minute))
}

func TestConfigSet(t *testing.T) {
	config := NewConfig(nil)

	config.Set("new_key", "new_value")
	assert.True(t, config.Has("new_key"))
	assert.Equal(t, "new_value", config.Get("new_key"))

	config.Set("new_key", "updated_value")
	assert.Equal(t, "updated_value", config.Get("new_key"))
}

func TestConfigDatabaseDSN(t *testing.T) {
	t.Run("no database configured", func(t *testing.T) {
		config := NewConfig(map[string]string{"MYSQL_USER": "root"})
		assert.Empty(t, config.DatabaseDSN())
	})

	t.Run("database url wins", func(t *testing.T) {
		config := NewConfig(map[string]string{
			"DATABASE_URL":   "user:pass@tcp(db:3306)/other?parseTime=true",
			"MYSQL_DATABASE": "names",
		})
		assert.Equal(t, "user:pass@tcp(db:3306)/other?parseTime=true", config.DatabaseDSN())
	})

	t.Run("built from mysql settings", func(t *testing.T) {
		config := NewConfig(map[string]string{
			"MYSQL_USER":          "app",
			"MYSQL_ROOT_PASSWORD": "secret",
			"MYSQL_HOST":          "db",
			"MYSQL_PORT":          "3307",
			"MYSQL_DATABASE":      "names",
		})

		parsed, err := mysql.ParseDSN(config.DatabaseDSN())
		require.NoError(t, err)
		assert.Equal(t, "app", parsed.User)
		assert.Equal(t, "secret", parsed.Passwd)
		assert.Equal(t, "tcp", parsed.Net)
		assert.Equal(t, "db:3307", parsed.Addr)
		assert.Equal(t, "names", parsed.DBName)
		assert.True(t, parsed.ParseTime)
		assert.Equal(t, time.UTC, parsed.Loc)
	})

	t.Run("default host and port", func(t *testing.T) {
		config := NewConfig(map[string]string{"MYSQL_DATABASE": "names"})

		parsed, err := mysql.ParseDSN(config.DatabaseDSN())
		require.NoError(t, err)
		assert.Equal(t, "127.0.0.1:3306", parsed.Addr)
	})
}
