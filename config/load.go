package config

import (
	"fmt"
	"os"

	"sigs.k8s.io/yaml"
)

// LoadYAML parses a YAML document into an option tree and merges it over
// the current options. JSON is a YAML subset, so LoadJSON is an alias
// kept for callers that want to state their format.
func (c *Config) LoadYAML(data []byte) error {
	m := map[string]any{}
	if err := yaml.Unmarshal(data, &m); err != nil {
		return fmt.Errorf("config: cannot decode options: %w", err)
	}
	return c.SetOptions(m, "")
}

// LoadJSON parses a JSON document into an option tree and merges it over
// the current options.
func (c *Config) LoadJSON(data []byte) error {
	return c.LoadYAML(data)
}

// LoadFile reads path and merges its options over the current ones.
func (c *Config) LoadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("config: cannot read %s: %w", path, err)
	}
	return c.LoadYAML(data)
}
