package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/h0tak88r/fibonacciFinder/internal/modules/utils"
)

// DefaultConfigFile is read from the working directory when
// FIBFINDER_CONFIG is not set.
const DefaultConfigFile = "fibfinder.yaml"

// Environment keys. Each one overrides the matching YAML value.
const (
	EnvConfigFile = "FIBFINDER_CONFIG"
	EnvLogLevel   = "FIBFINDER_LOG_LEVEL"
	EnvLogFile    = "FIBFINDER_LOG_FILE"
	EnvLogJSON    = "FIBFINDER_LOG_JSON"
)

// Config holds diagnostic settings. None of it affects program output.
type Config struct {
	Log utils.LogConfig `yaml:"log"`
}

// Default returns the configuration used when nothing is set.
func Default() Config {
	return Config{Log: utils.DefaultLogConfig()}
}

// GetConfigFile returns the config file path
func GetConfigFile() string {
	return GetConfigValue(EnvConfigFile, DefaultConfigFile)
}

// Load reads path (a missing file is not an error) and then applies
// environment overrides.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
	case err != nil:
		return cfg, fmt.Errorf("failed to read config %s: %w", path, err)
	default:
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Default(), fmt.Errorf("failed to parse config %s: %w", path, err)
		}
	}

	cfg.applyEnv()
	return cfg, nil
}

func (c *Config) applyEnv() {
	c.Log.Level = GetConfigValue(EnvLogLevel, c.Log.Level)
	c.Log.FilePath = GetConfigValue(EnvLogFile, c.Log.FilePath)
	if v := os.Getenv(EnvLogJSON); v != "" {
		if b, err := strconv.ParseBool(strings.TrimSpace(v)); err == nil {
			c.Log.JSONFormat = b
		}
	}
}

// GetConfigValue gets a value from environment or returns defaultValue
func GetConfigValue(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
