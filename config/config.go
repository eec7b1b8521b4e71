// Package config loads and saves clikit settings. TOML is the native format,
// YAML is accepted for files ending in .yaml or .yml.
package config

import (
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/adrg/xdg"
	"github.com/pelletier/go-toml/v2"
	"github.com/vbauerster/clikit"
	"github.com/vbauerster/clikit/clierr"
	"gopkg.in/yaml.v3"
)

// Config is the whole settings file.
type Config struct {
	Logger    Logger            `toml:"logger" yaml:"logger"`
	Templates map[string]string `toml:"templates" yaml:"templates"`
	Progress  Progress          `toml:"progress" yaml:"progress"`
}

type Logger struct {
	Level     string `toml:"level" yaml:"level"`
	Color     bool   `toml:"color" yaml:"color"`
	Timestamp bool   `toml:"timestamp" yaml:"timestamp"`
}

// Progress holds registry wide bar defaults.
type Progress struct {
	Width         int     `toml:"width" yaml:"width"`
	Style         string  `toml:"style" yaml:"style"`
	FinishMessage string  `toml:"finish_message" yaml:"finish_message"`
	EwmaAge       float64 `toml:"ewma_age" yaml:"ewma_age"`
	Bytes         bool    `toml:"bytes" yaml:"bytes"`
}

// Default returns settings used when no file exists.
func Default() *Config {
	return &Config{
		Logger: Logger{
			Level:     "info",
			Color:     true,
			Timestamp: true,
		},
		Templates: map[string]string{},
		Progress: Progress{
			Width:         30,
			Style:         "[=> ]",
			FinishMessage: "done",
		},
	}
}

// DefaultPath returns $XDG_CONFIG_HOME/clikit/config.toml.
func DefaultPath() string {
	return filepath.Join(xdg.ConfigHome, "clikit", "config.toml")
}

// Load reads path over Default, so absent keys keep their default values.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, clierr.IOError(err)
	}
	c := Default()
	if isYAML(path) {
		err = yaml.Unmarshal(data, c)
	} else {
		err = toml.Unmarshal(data, c)
	}
	if err != nil {
		return nil, clierr.Wrap(clierr.KindConfig, err, "parse "+path)
	}
	if c.Templates == nil {
		c.Templates = map[string]string{}
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// Save writes c to path, creating parent directories.
func (c *Config) Save(path string) error {
	var data []byte
	var err error
	if isYAML(path) {
		data, err = yaml.Marshal(c)
	} else {
		data, err = toml.Marshal(c)
	}
	if err != nil {
		return clierr.Wrap(clierr.KindConfig, err, "encode")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return clierr.IOError(err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return clierr.IOError(err)
	}
	return nil
}

// Validate checks values that options would otherwise silently ignore.
func (c *Config) Validate() error {
	switch strings.ToLower(c.Logger.Level) {
	case "debug", "info", "warn", "warning", "error":
	default:
		return clierr.ConfigError("unknown logger level " + c.Logger.Level)
	}
	if c.Progress.Width < 0 {
		return clierr.ConfigError("progress width must not be negative")
	}
	if s := c.Progress.Style; s != "" && utf8.RuneCountInString(s) != 5 {
		return clierr.ConfigError("progress style must be 5 characters")
	}
	if c.Progress.EwmaAge < 0 {
		return clierr.ConfigError("progress ewma_age must not be negative")
	}
	return nil
}

// RegistryOptions maps the progress section onto registry options.
func (c *Config) RegistryOptions() []clikit.RegistryOption {
	p := c.Progress
	opts := []clikit.RegistryOption{
		clikit.WithWidth(p.Width),
		clikit.WithStyle(p.Style),
	}
	if p.FinishMessage != "" {
		opts = append(opts, clikit.WithFinishMessage(p.FinishMessage))
	}
	if p.EwmaAge > 0 {
		opts = append(opts, clikit.WithEwmaSpeed(p.EwmaAge))
	}
	if p.Bytes {
		opts = append(opts, clikit.WithBytesUnit())
	}
	return opts
}

func isYAML(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return true
	}
	return false
}
