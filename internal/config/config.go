// Package config is the phonebot application configuration: the shared bot
// runtime settings plus the optional lookup journal database.
package config

import (
	"fmt"

	coreconfig "github.com/m3rciful/phonebot/core/config"
	coredatabase "github.com/m3rciful/phonebot/core/database"
)

// Config aggregates everything phonebot reads at startup.
type Config struct {
	coreconfig.Config `yaml:",inline"`
	Database          coredatabase.Config `yaml:"database"`
}

// CoreConfig exposes the embedded runtime configuration.
func (c *Config) CoreConfig() *coreconfig.Config {
	return &c.Config
}

// Load reads path (optional) and the environment, then validates both sections.
func Load(path string) (*Config, error) {
	var cfg Config
	if err := coreconfig.ReadInto(path, &cfg); err != nil {
		return nil, err
	}
	if err := coreconfig.Normalize(&cfg.Config); err != nil {
		return nil, err
	}
	if err := cfg.Database.Normalize(); err != nil {
		return nil, fmt.Errorf("database config: %w", err)
	}
	return &cfg, nil
}
