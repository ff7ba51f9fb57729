package app

import "fmt"

// Config holds everything an App instance needs to run.
type Config struct {
	ManifestPath string
	LogFormat    string
	LogLevel     string
}

// NewConfig applies defaults and validates a Config.
func NewConfig(c Config) (*Config, error) {
	if c.ManifestPath == "" {
		c.ManifestPath = "modules"
	}
	if c.LogFormat == "" {
		c.LogFormat = "text"
	}
	if c.LogLevel == "" {
		c.LogLevel = "info"
	}

	switch c.LogFormat {
	case "text", "json":
	default:
		return nil, fmt.Errorf("invalid log format '%s'", c.LogFormat)
	}
	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return nil, fmt.Errorf("invalid log level '%s'", c.LogLevel)
	}

	return &c, nil
}
