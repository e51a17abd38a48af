package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/charmbracelet/log"
	"gopkg.in/yaml.v3"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "hooprun.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestEmbeddedMatchesDefault(t *testing.T) {
	cfg := Default()
	if err := yaml.Unmarshal(defaultYAML, &cfg); err != nil {
		t.Fatalf("embedded default does not parse: %v", err)
	}
	if cfg != Default() {
		t.Errorf("embedded default = %+v, expected %+v", cfg, Default())
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config invalid: %v", err)
	}
}

func TestLoadCustomPath(t *testing.T) {
	path := writeConfig(t, `
display:
  tick_rate: 30
audio:
  enabled: true
log:
  level: debug
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg.Display.TickRate != 30 {
		t.Errorf("TickRate = %d, expected 30", cfg.Display.TickRate)
	}
	if !cfg.Audio.Enabled {
		t.Error("Audio.Enabled should be true")
	}
	if cfg.Audio.Volume != Default().Audio.Volume {
		t.Errorf("missing key should keep default volume, got %v", cfg.Audio.Volume)
	}
	if cfg.Server.Address != Default().Server.Address {
		t.Errorf("Server.Address = %q, expected default", cfg.Server.Address)
	}
	if cfg.LogLevel() != log.DebugLevel {
		t.Errorf("LogLevel() = %v, expected debug", cfg.LogLevel())
	}
}

func TestLoadCustomPathErrors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		missing bool
		wantErr error
	}{
		{name: "missing file", missing: true, wantErr: os.ErrNotExist},
		{name: "bad yaml", content: "display: [", wantErr: nil},
		{name: "tick rate", content: "display:\n  tick_rate: 0\n", wantErr: ErrTickRate},
		{name: "volume", content: "audio:\n  volume: 3\n", wantErr: ErrVolume},
		{name: "address", content: "server:\n  address: \"\"\n", wantErr: ErrAddress},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "nope.yaml")
			if !tt.missing {
				path = writeConfig(t, tt.content)
			}

			cfg, err := Load(path)
			if err == nil {
				t.Fatal("Load() expected error")
			}
			if tt.wantErr != nil && !errors.Is(err, tt.wantErr) {
				t.Errorf("Load() error = %v, expected %v", err, tt.wantErr)
			}
			if cfg != Default() {
				t.Error("failed Load should return defaults")
			}
		})
	}
}

func TestLoadSearchPath(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	dir := t.TempDir()
	if err := os.MkdirAll(filepath.Join(dir, "configs"), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "configs", fileName), []byte("display:\n  tick_rate: 45\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	t.Chdir(dir)

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg.Display.TickRate != 45 {
		t.Errorf("TickRate = %d, expected 45 from ./configs", cfg.Display.TickRate)
	}

	// User config wins over the local one.
	home := os.Getenv("HOME")
	if err := os.MkdirAll(filepath.Join(home, ".hooprun"), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(home, ".hooprun", "config.yaml"), []byte("display:\n  tick_rate: 20\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err = Load("")
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg.Display.TickRate != 20 {
		t.Errorf("TickRate = %d, expected 20 from home", cfg.Display.TickRate)
	}
}

func TestLoadFallsBackToEmbedded(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Chdir(t.TempDir())

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg != Default() {
		t.Errorf("Load() = %+v, expected defaults", cfg)
	}
}

func TestLogLevelFallback(t *testing.T) {
	cfg := Default()
	cfg.Log.Level = "chatty"
	if cfg.LogLevel() != log.InfoLevel {
		t.Errorf("LogLevel() = %v, expected info", cfg.LogLevel())
	}
	if err := cfg.Validate(); err == nil {
		t.Error("Validate() should reject unknown log level")
	}
}

func TestIdleTimeout(t *testing.T) {
	s := ServerConfig{IdleTimeoutMinutes: 3}
	if s.IdleTimeout() != 3*time.Minute {
		t.Errorf("IdleTimeout() = %v", s.IdleTimeout())
	}
}
