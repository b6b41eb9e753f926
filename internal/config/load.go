package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"gopkg.in/yaml.v3"
)

// ErrInvalid marks a config value outside its allowed range.
var ErrInvalid = errors.New("invalid config")

// Load loads configuration with priority: defaults < file < flags.
func Load() (*Config, error) {
	cfg := Default()

	configPath := ConfigPath()
	if configPath == "" {
		configPath = findConfigFile()
	}

	if configPath != "" {
		if err := loadFromFile(cfg, configPath); err != nil {
			return nil, fmt.Errorf("loading config from %s: %w", configPath, err)
		}
	}

	applyFlags(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadFile reads a config file on top of the defaults, without flags.
func LoadFile(path string) (*Config, error) {
	cfg := Default()
	if err := loadFromFile(cfg, path); err != nil {
		return nil, fmt.Errorf("loading config from %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate rejects values the application cannot run with.
func (c *Config) Validate() error {
	switch {
	case c.Graphics.Width <= 0 || c.Graphics.Height <= 0:
		return fmt.Errorf("%w: window size %dx%d", ErrInvalid, c.Graphics.Width, c.Graphics.Height)
	case c.Graphics.FOV <= 0 || c.Graphics.FOV >= 180:
		return fmt.Errorf("%w: fov %v", ErrInvalid, c.Graphics.FOV)
	case c.Controls.MinScale < ScaleFloor:
		return fmt.Errorf("%w: min_scale %v below %v", ErrInvalid, c.Controls.MinScale, ScaleFloor)
	case c.MiniGame.MinOdds < 1 || c.MiniGame.MaxOdds < c.MiniGame.MinOdds:
		return fmt.Errorf("%w: odds range [%d, %d]", ErrInvalid, c.MiniGame.MinOdds, c.MiniGame.MaxOdds)
	case c.MiniGame.MaxActive < 1:
		return fmt.Errorf("%w: max_active must be at least 1", ErrInvalid)
	case c.MiniGame.RiseSpeed <= 0 || c.MiniGame.MaxHeight <= 0:
		return fmt.Errorf("%w: rise_speed and max_height must be positive", ErrInvalid)
	}
	return nil
}

// findConfigFile looks for config in standard locations.
func findConfigFile() string {
	candidates := []string{
		"./config.yaml",
		filepath.Join(ConfigDir(), "config.yaml"),
	}

	for _, path := range candidates {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return ""
}

// ConfigDir returns the OS-appropriate config directory.
func ConfigDir() string {
	switch runtime.GOOS {
	case "darwin":
		home, _ := os.UserHomeDir()
		return filepath.Join(home, "Library", "Application Support", "Roam3D")
	case "windows":
		return filepath.Join(os.Getenv("APPDATA"), "Roam3D")
	default:
		if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
			return filepath.Join(xdg, "roam3d")
		}
		home, _ := os.UserHomeDir()
		return filepath.Join(home, ".config", "roam3d")
	}
}

// loadFromFile merges a YAML file into cfg.
func loadFromFile(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return yaml.Unmarshal(data, cfg)
}
