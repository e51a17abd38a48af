package config

import (
	_ "embed"
)

//go:embed defaults/hooprun.yaml
var defaultYAML []byte

// Default returns the hardcoded configuration. It matches
// defaults/hooprun.yaml and is used if the embedded file cannot be parsed.
func Default() Config {
	return Config{
		Display: DisplayConfig{
			TickRate: 60,
			ShowHelp: true,
		},
		Audio: AudioConfig{
			Enabled: false,
			Volume:  0.5,
		},
		Server: ServerConfig{
			Address:            "0.0.0.0:2222",
			HostKey:            ".ssh/hooprun_ed25519",
			IdleTimeoutMinutes: 10,
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}
