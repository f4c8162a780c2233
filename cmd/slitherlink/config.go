package main

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v2"
)

// fileConfig holds defaults for the solve command, overridable by
// flags. It is optional: a puzzle can be solved with no config file
// at all. TimeoutSeconds is plain seconds rather than a duration
// string since yaml.v2 has no built-in time.Duration support.
type fileConfig struct {
	TimeoutSeconds int   `yaml:"timeout_seconds"`
	Heuristics     *bool `yaml:"heuristics"`
}

func (c *fileConfig) timeout() time.Duration {
	return time.Duration(c.TimeoutSeconds) * time.Second
}

func loadConfig(path string) (*fileConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}

	var cfg fileConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	return &cfg, nil
}
