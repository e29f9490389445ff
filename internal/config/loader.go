package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadHome loads the game configuration.
// Search order: customPath -> ~/.homebound/configs/home.yaml -> ./configs/home.yaml -> embedded default
//
// Files are decoded over the defaults, so a custom file only needs the keys it changes.
func LoadHome(customPath string) (HomeConfig, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return HomeConfig{}, fmt.Errorf("config: failed to read %s: %w", customPath, err)
		}
		cfg, err := parseHome(data)
		if err != nil {
			return HomeConfig{}, fmt.Errorf("config: failed to parse %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory, then the local configs directory
	for _, path := range []string{userConfigPath("home.yaml"), filepath.Join("configs", "home.yaml")} {
		if path == "" {
			continue
		}
		if data, err := os.ReadFile(path); err == nil {
			if cfg, err := parseHome(data); err == nil {
				return cfg, nil
			}
		}
	}

	// Use embedded default YAML
	var cfg HomeConfig
	if err := yaml.Unmarshal(defaultHomeYAML, &cfg); err != nil {
		return DefaultHomeConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// parseHome decodes YAML over the defaults and validates the result.
func parseHome(data []byte) (HomeConfig, error) {
	cfg := DefaultHomeConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return HomeConfig{}, err
	}
	if err := cfg.Validate(); err != nil {
		return HomeConfig{}, err
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".homebound", "configs", filename)
}
