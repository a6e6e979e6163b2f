package vecsh

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config describes the vector a script runs against.
type Config struct {
	Capacity int    `yaml:"capacity"`
	Handler  string `yaml:"handler"`
	Fill     struct {
		Count int `yaml:"count"`
		Value int `yaml:"value"`
	} `yaml:"fill"`
}

func defaultConfig() Config {
	return Config{Capacity: 10, Handler: "abort"}
}

// LoadConfig reads a YAML config. Missing fields keep their defaults.
func LoadConfig(path string) (Config, error) {
	cfg := defaultConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse %s: %w", path, err)
	}
	return cfg, cfg.Validate()
}

func (c *Config) Validate() error {
	if c.Capacity < 0 {
		return fmt.Errorf("invalid capacity: %d", c.Capacity)
	}
	if c.Fill.Count < 0 {
		return fmt.Errorf("invalid fill count: %d", c.Fill.Count)
	}
	if _, ok := handlers[c.Handler]; !ok {
		return fmt.Errorf("unknown handler: %q", c.Handler)
	}
	return nil
}
