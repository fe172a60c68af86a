package config

import (
	"fmt"
)

const (
	DefaultConfigFile = "rovo-lsp.yaml"
)

// SecurityScheme is one extra scheme merged into the hover and completion
// tables at startup.
type SecurityScheme struct {
	Name          string `yaml:"name" json:"name"`
	Summary       string `yaml:"summary,omitempty" json:"summary,omitempty"`
	Documentation string `yaml:"documentation,omitempty" json:"documentation,omitempty"`
}

// Config is the server and checker configuration.
type Config struct {
	// LogLevel controls zap's level for the server: debug, info, warn, error.
	LogLevel string `yaml:"log_level" json:"log_level"`

	// ScanWindow is the maximum number of lines between a comment block and
	// its handler marker.
	ScanWindow int `yaml:"scan_window" json:"scan_window"`

	// SecuritySchemes lists additional schemes beyond the built-in
	// bearer, basic, apiKey, and oauth2.
	SecuritySchemes []SecurityScheme `yaml:"security_schemes,omitempty" json:"security_schemes,omitempty"`
}

func DefaultConfig() *Config {
	return &Config{
		LogLevel:   "info",
		ScanWindow: 20,
	}
}

func (c *Config) Validate() error {
	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("invalid log_level: %q, must be one of debug, info, warn, error", c.LogLevel)
	}
	if c.ScanWindow <= 0 {
		return fmt.Errorf("invalid scan_window: %d, must be positive", c.ScanWindow)
	}
	for i, s := range c.SecuritySchemes {
		if s.Name == "" {
			return fmt.Errorf("security_schemes[%d]: name is required", i)
		}
	}
	return nil
}
