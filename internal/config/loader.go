package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"gopkg.in/yaml.v3"
)

const fileName = "hooprun.yaml"

// Load resolves the configuration.
// Search order: customPath -> ~/.hooprun/config.yaml -> ./configs/hooprun.yaml -> embedded default
//
// A customPath that cannot be read or parsed is an error. Files found on
// the search path that fail to parse are skipped. Keys missing from a file
// keep their default values.
func Load(customPath string) (Config, error) {
	if customPath != "" {
		cfg, err := loadFile(customPath)
		if err != nil {
			return Default(), err
		}
		return cfg, nil
	}

	for _, path := range searchPaths() {
		if cfg, err := loadFile(path); err == nil {
			return cfg, nil
		}
	}

	cfg := Default()
	if err := yaml.Unmarshal(defaultYAML, &cfg); err != nil {
		return Default(), nil
	}
	return cfg, nil
}

// searchPaths returns the implicit config locations in priority order.
func searchPaths() []string {
	var paths []string
	if p := userConfigPath(); p != "" {
		paths = append(paths, p)
	}
	return append(paths, filepath.Join("configs", fileName))
}

// userConfigPath returns the path to the user config file, or empty if
// home is unavailable.
func userConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".hooprun", "config.yaml")
}

func loadFile(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("failed to read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

// Validation errors.
var (
	ErrTickRate = errors.New("display.tick_rate must be between 1 and 240")
	ErrVolume   = errors.New("audio.volume must be between 0 and 1")
	ErrAddress  = errors.New("server.address must not be empty")
)

// Validate checks value ranges.
func (c Config) Validate() error {
	var errs []error
	if c.Display.TickRate < 1 || c.Display.TickRate > 240 {
		errs = append(errs, ErrTickRate)
	}
	if c.Audio.Volume < 0 || c.Audio.Volume > 1 {
		errs = append(errs, ErrVolume)
	}
	if c.Server.Address == "" {
		errs = append(errs, ErrAddress)
	}
	if _, err := log.ParseLevel(c.Log.Level); err != nil {
		errs = append(errs, fmt.Errorf("log.level: %w", err))
	}
	return errors.Join(errs...)
}

// LogLevel returns the configured level, falling back to info.
func (c Config) LogLevel() log.Level {
	lvl, err := log.ParseLevel(c.Log.Level)
	if err != nil {
		return log.InfoLevel
	}
	return lvl
}
