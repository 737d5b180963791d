// Package config loads application settings from an optional YAML file
// with environment-variable overrides.
package config

import (
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

type Config struct {
	// DataDir holds tasks.json and backups.
	DataDir string `yaml:"data_dir" json:"data_dir"`

	// ReminderMinutes is how far ahead a task counts as upcoming.
	ReminderMinutes int `yaml:"reminder_minutes" json:"reminder_minutes"`

	// NoColor disables styled table output.
	NoColor bool `yaml:"no_color" json:"no_color"`
}

func Default() Config {
	dataDir := "."
	if home, err := os.UserHomeDir(); err == nil {
		dataDir = filepath.Join(home, ".cli-todo")
	}
	return Config{
		DataDir:         dataDir,
		ReminderMinutes: 30,
	}
}

func (c *Config) ApplyDefaults() {
	def := Default()
	if c.DataDir == "" {
		c.DataDir = def.DataDir
	}
	if c.ReminderMinutes <= 0 {
		c.ReminderMinutes = def.ReminderMinutes
	}
}

// Load reads the config file at path. A missing file yields the
// defaults; a present but malformed file is an error.
func Load(path string) (Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return FromEnv(Default()), nil
		}
		return Config{}, err
	}
	var c Config
	if err := yaml.Unmarshal(b, &c); err != nil {
		return Config{}, err
	}
	c.ApplyDefaults()
	return FromEnv(c), nil
}
