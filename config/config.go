// Package config handles lifegrid run configuration from YAML files.
package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

// Config is the full set of generator parameters. Zero values are
// replaced by the documented defaults; only Username has no default.
type Config struct {
	Username      string  `yaml:"username"`
	Steps         int     `yaml:"steps"`
	FrameDuration float64 `yaml:"frame_duration"` // seconds per frame
	Cell          int     `yaml:"cell"`           // px
	Gap           int     `yaml:"gap"`            // px
	AliveColor    string  `yaml:"alive_color"`
	DeadColor     string  `yaml:"dead_color"`
	Out           string  `yaml:"out"`
}

// Default returns a Config with every defaultable field populated.
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

// LoadFile reads a YAML configuration file and applies defaults.
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}

	cfg.applyDefaults()
	return &cfg, nil
}

func (c *Config) applyDefaults() {
	if c.Steps <= 0 {
		c.Steps = 60
	}
	if c.FrameDuration <= 0 {
		c.FrameDuration = 0.08
	}
	if c.Cell <= 0 {
		c.Cell = 10
	}
	if c.Gap <= 0 {
		c.Gap = 2
	}
	if c.AliveColor == "" {
		c.AliveColor = "#2ea043"
	}
	if c.DeadColor == "" {
		c.DeadColor = "#ebedf0"
	}
	if c.Out == "" {
		c.Out = "assets/life.svg"
	}
}
