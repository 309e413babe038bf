package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadFlappy loads Flappy Bird configuration.
// Search order: customPath -> ~/.arcade/configs/flappy.yaml ->
// ./configs/flappy.yaml -> embedded default.
func LoadFlappy(customPath string) (FlappyConfig, error) {
	var cfg FlappyConfig
	if err := load("flappy.yaml", customPath, defaultFlappyYAML, &cfg); err != nil {
		if customPath != "" {
			return cfg, err
		}
		return DefaultFlappyConfig(), nil
	}
	return cfg, nil
}

// LoadInvaders loads Space Invaders configuration.
// Search order: customPath -> ~/.arcade/configs/invaders.yaml ->
// ./configs/invaders.yaml -> embedded default.
func LoadInvaders(customPath string) (InvadersConfig, error) {
	var cfg InvadersConfig
	if err := load("invaders.yaml", customPath, defaultInvadersYAML, &cfg); err != nil {
		if customPath != "" {
			return cfg, err
		}
		return DefaultInvadersConfig(), nil
	}
	return cfg, nil
}

// load resolves and parses a game config following the standard search
// order. A custom path is authoritative: read errors there are returned
// instead of falling through.
func load(filename, customPath string, embedded []byte, out any) error {
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return fmt.Errorf("config: failed to read %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, out); err != nil {
			return fmt.Errorf("config: failed to parse %s: %w", customPath, err)
		}
		return nil
	}

	if userPath := userConfigPath(filename); userPath != "" {
		if data, err := os.ReadFile(userPath); err == nil {
			if err := yaml.Unmarshal(data, out); err == nil {
				return nil
			}
		}
	}

	if data, err := os.ReadFile(filepath.Join("configs", filename)); err == nil {
		if err := yaml.Unmarshal(data, out); err == nil {
			return nil
		}
	}

	if err := yaml.Unmarshal(embedded, out); err != nil {
		return fmt.Errorf("config: failed to parse embedded %s: %w", filename, err)
	}
	return nil
}

// userConfigPath returns the path to a user config file, or empty if the
// home directory is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".arcade", "configs", filename)
}
