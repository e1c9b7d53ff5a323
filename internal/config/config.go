// Package config reads runtime settings from the environment.
package config

import (
	"os"
	"strconv"
	"strings"
)

// Config holds the runtime settings shared by the MCP server, the web API and
// the CLI.
type Config struct {
	LogLevel string
	Web      WebConfig
	Swatch   SwatchConfig
}

// WebConfig configures the HTTP upload API.
type WebConfig struct {
	Host          string // defaults to 0.0.0.0
	Port          int    // defaults to 8080
	MaxUploadSize int64  // bytes, from SHADE_MAX_UPLOAD_MB (default 10)
}

// SwatchConfig configures rendered color swatches.
type SwatchConfig struct {
	Size int // edge length of one swatch square in pixels, defaults to 120
}

// Debug reports whether verbose logging was requested.
func (c *Config) Debug() bool {
	return strings.EqualFold(c.LogLevel, "debug")
}

// envInt reads an environment variable and parses it as a positive integer.
// Returns the default value if the env var is unset, empty, or invalid.
func envInt(key string, defaultVal int) int {
	s := os.Getenv(key)
	if s == "" {
		return defaultVal
	}
	if n, err := strconv.Atoi(s); err == nil && n > 0 {
		return n
	}
	return defaultVal
}

func envString(key, defaultVal string) string {
	if s := os.Getenv(key); s != "" {
		return s
	}
	return defaultVal
}

// Load reads the configuration from the environment, falling back to defaults
// for unset or invalid values.
func Load() *Config {
	return &Config{
		LogLevel: os.Getenv("SHADE_MCP_LOG_LEVEL"),
		Web: WebConfig{
			Host:          envString("SHADE_WEB_HOST", "0.0.0.0"),
			Port:          envInt("SHADE_WEB_PORT", 8080),
			MaxUploadSize: int64(envInt("SHADE_MAX_UPLOAD_MB", 10)) << 20,
		},
		Swatch: SwatchConfig{
			Size: envInt("SHADE_SWATCH_SIZE", 120),
		},
	}
}
