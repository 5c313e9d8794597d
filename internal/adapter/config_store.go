package adapter

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	m "github.com/mouse-blink/alsgen/internal/model"
)

// ConfigStore persists and retrieves generator configuration.
type ConfigStore interface {
	// Load reads path over the default configuration. An empty path yields
	// the defaults.
	Load(path m.Path) (m.Config, error)
	Save(path m.Path, cfg m.Config) error
	Marshal(cfg m.Config) ([]byte, error)
}

// LocalConfigStore is the YAML-file ConfigStore.
type LocalConfigStore struct{}

// NewConfigStore constructs a ConfigStore implementation.
func NewConfigStore() ConfigStore {
	return &LocalConfigStore{}
}

// Load decodes the YAML file at path on top of m.DefaultConfig, so omitted
// keys keep their default values.
func (cs *LocalConfigStore) Load(path m.Path) (m.Config, error) {
	cfg := m.DefaultConfig()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(string(path))
	if err != nil {
		return m.Config{}, fmt.Errorf("failed to read config: %w", err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return m.Config{}, fmt.Errorf("failed to parse config %s: %w", path, err)
	}

	return cfg, nil
}

// Save writes cfg as YAML, creating parent directories as needed.
func (cs *LocalConfigStore) Save(path m.Path, cfg m.Config) error {
	data, err := cs.Marshal(cfg)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(string(path)), 0o750); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	if err := os.WriteFile(string(path), data, 0o600); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	return nil
}

// Marshal encodes cfg as YAML.
func (cs *LocalConfigStore) Marshal(cfg m.Config) ([]byte, error) {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal config: %w", err)
	}

	return data, nil
}
