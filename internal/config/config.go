// Package config loads the application settings for Hoop Runner:
// display, audio, SSH server and logging. Gameplay tuning is fixed in
// the game package and is not configurable.
package config

import "time"

// Config is the root of hooprun.yaml.
type Config struct {
	Display DisplayConfig `yaml:"display"`
	Audio   AudioConfig   `yaml:"audio"`
	Server  ServerConfig  `yaml:"server"`
	Log     LogConfig     `yaml:"log"`
}

// DisplayConfig controls the terminal frontend.
type DisplayConfig struct {
	TickRate int  `yaml:"tick_rate"` // simulation ticks per second
	ShowHelp bool `yaml:"show_help"` // key help bar under the field
}

// AudioConfig controls sound cues for local play.
type AudioConfig struct {
	Enabled bool    `yaml:"enabled"`
	Volume  float64 `yaml:"volume"` // 0.0 - 1.0
}

// ServerConfig controls the SSH server.
type ServerConfig struct {
	Address            string `yaml:"address"`
	HostKey            string `yaml:"host_key"`
	IdleTimeoutMinutes int    `yaml:"idle_timeout_minutes"`
}

// IdleTimeout returns the idle timeout as a duration.
func (s ServerConfig) IdleTimeout() time.Duration {
	return time.Duration(s.IdleTimeoutMinutes) * time.Minute
}

// LogConfig controls the charmbracelet logger.
type LogConfig struct {
	Level string `yaml:"level"` // debug, info, warn, error
}
