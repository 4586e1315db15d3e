// Package config defines the configuration types and defaults for php-ls.
package config

import (
	"fmt"
	"strings"

	"php-ls/internal/format"
)

// Config is the top-level configuration.
type Config struct {
	Format FormatConfig `yaml:"format"`
	Log    LogConfig    `yaml:"log"`
	Files  FilesConfig  `yaml:"files"`
}

// FormatConfig holds the indentation used when a client does not send its own.
type FormatConfig struct {
	TabSize      int  `yaml:"tab_size"`
	InsertSpaces bool `yaml:"insert_spaces"`
}

// LogConfig controls the server log. An empty file logs to stderr.
type LogConfig struct {
	Level string `yaml:"level"`
	File  string `yaml:"file"`
}

// FilesConfig selects the documents that are parsed as PHP.
type FilesConfig struct {
	Extensions []string `yaml:"extensions"`
}

// DefaultConfig returns a Config with all default values.
func DefaultConfig() *Config {
	return &Config{
		Format: FormatConfig{
			TabSize:      4,
			InsertSpaces: true,
		},
		Log: LogConfig{
			Level: "info",
		},
		Files: FilesConfig{
			Extensions: []string{".php", ".phtml", ".inc", ".module"},
		},
	}
}

// Validate reports the first invalid setting
func (c *Config) Validate() error {
	if c.Format.TabSize < 1 {
		return fmt.Errorf("format.tab_size must be positive, got %d", c.Format.TabSize)
	}
	switch strings.ToLower(c.Log.Level) {
	case "debug", "info", "warn", "warning", "error":
	default:
		return fmt.Errorf("log.level must be one of debug, info, warn, error; got %q", c.Log.Level)
	}
	for _, ext := range c.Files.Extensions {
		if !strings.HasPrefix(ext, ".") {
			return fmt.Errorf("files.extensions entries must start with a dot, got %q", ext)
		}
	}
	return nil
}

// FormatOptions converts the format section to formatter options
func (c *Config) FormatOptions() format.Options {
	return format.Options{
		InsertSpaces: c.Format.InsertSpaces,
		TabSize:      c.Format.TabSize,
	}
}
