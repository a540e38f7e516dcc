package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// FileName is the configuration file looked up in every search location.
const FileName = "steelwall.yaml"

// LoadSteel loads the Steelwall configuration.
// Search order: customPath -> ~/.steelwall/configs/steelwall.yaml -> ./configs/steelwall.yaml -> embedded default
//
// Values missing from a file keep their defaults.
func LoadSteel(customPath string) (SteelConfig, error) {
	cfg := DefaultSteelConfig()

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := decode(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath(FileName); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if err := decode(data, &cfg); err == nil {
				return cfg, nil
			}
			cfg = DefaultSteelConfig()
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile(filepath.Join("configs", FileName)); err == nil {
		if err := decode(data, &cfg); err == nil {
			return cfg, nil
		}
		cfg = DefaultSteelConfig()
	}

	// Use embedded default YAML
	if err := decode(defaultSteelYAML, &cfg); err != nil {
		return DefaultSteelConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// decode unmarshals data over cfg. Sequences in the file replace the
// defaults rather than merging with them.
func decode(data []byte, cfg *SteelConfig) error {
	return yaml.Unmarshal(data, cfg)
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".steelwall", "configs", filename)
}

// WriteDefault writes the embedded default configuration to path, creating
// parent directories. It refuses to overwrite an existing file.
func WriteDefault(path string) error {
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("config %s already exists", path)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create config dir: %w", err)
	}
	if err := os.WriteFile(path, defaultSteelYAML, 0o644); err != nil {
		return fmt.Errorf("failed to write config %s: %w", path, err)
	}
	return nil
}

// UserConfigPath returns the per-user configuration path, or empty if the
// home directory is unavailable.
func UserConfigPath() string {
	return userConfigPath(FileName)
}
