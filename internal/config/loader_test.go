package config

import (
	"math"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
	"time"

	"gopkg.in/yaml.v3"
)

func TestEmbeddedMatchesHardcoded(t *testing.T) {
	var cfg PongConfig
	if err := yaml.Unmarshal(DefaultYAML(), &cfg); err != nil {
		t.Fatalf("embedded YAML does not parse: %v", err)
	}
	if !reflect.DeepEqual(cfg, DefaultPongConfig()) {
		t.Errorf("embedded YAML = %+v\nexpected %+v", cfg, DefaultPongConfig())
	}
}

func TestDefaultIsValid(t *testing.T) {
	if err := DefaultPongConfig().Validate(); err != nil {
		t.Errorf("Validate() on defaults failed: %v", err)
	}
	if DefaultPongConfig().Delay() != 10*time.Millisecond {
		t.Errorf("Delay() = %v, expected 10ms", DefaultPongConfig().Delay())
	}
}

func TestLoadCustomYAMLKeepsMissingDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	content := "ball:\n  speed: 3\nboard:\n  background: navy\n"
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, source, err := Load(path)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if source != path {
		t.Errorf("source = %q, expected %q", source, path)
	}
	if cfg.Ball.Speed != 3 {
		t.Errorf("Ball.Speed = %v, expected 3", cfg.Ball.Speed)
	}
	if cfg.Board.Background != "navy" {
		t.Errorf("Board.Background = %q, expected navy", cfg.Board.Background)
	}
	if cfg.Paddles.Speed != 50 {
		t.Errorf("Paddles.Speed = %v, expected default 50", cfg.Paddles.Speed)
	}
}

func TestLoadCustomTOML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.toml")
	content := `
[paddles]
speed = 25.0

[paddles.player1]
color = "gold"
up = "i"
down = "k"
`
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, _, err := Load(path)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.Paddles.Speed != 25 {
		t.Errorf("Paddles.Speed = %v, expected 25", cfg.Paddles.Speed)
	}
	if cfg.Paddles.Player1.Up != "i" || cfg.Paddles.Player1.Down != "k" {
		t.Errorf("Player1 keys = %q/%q, expected i/k", cfg.Paddles.Player1.Up, cfg.Paddles.Player1.Down)
	}
	if cfg.Paddles.Player2.Up != "ArrowUp" {
		t.Errorf("Player2.Up = %q, expected default ArrowUp", cfg.Paddles.Player2.Up)
	}
}

func TestLoadCustomMissingFile(t *testing.T) {
	_, _, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	if err == nil {
		t.Fatal("Load() with missing custom file should fail")
	}
	if !strings.Contains(err.Error(), "failed to read") {
		t.Errorf("error = %v, expected read failure", err)
	}
}

func TestLoadCustomInvalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("ball:\n  speed: -1\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	if _, _, err := Load(path); err == nil {
		t.Error("Load() should reject a negative ball speed")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*PongConfig)
	}{
		{"zero delay", func(c *PongConfig) { c.Timing.DelayMS = 0 }},
		{"negative margin", func(c *PongConfig) { c.Board.MarginX = -1 }},
		{"unknown background", func(c *PongConfig) { c.Board.Background = "plaid" }},
		{"zero radius", func(c *PongConfig) { c.Ball.Radius = 0 }},
		{"zero paddle height", func(c *PongConfig) { c.Paddles.Height = 0 }},
		{"NaN paddle width", func(c *PongConfig) { c.Paddles.Width = math.NaN() }},
		{"NaN paddle height", func(c *PongConfig) { c.Paddles.Height = math.NaN() }},
		{"infinite paddle width", func(c *PongConfig) { c.Paddles.Width = math.Inf(1) }},
		{"ball speed above limit", func(c *PongConfig) { c.Ball.Speed = MaxBallSpeed + 1 }},
		{"NaN ball speed", func(c *PongConfig) { c.Ball.Speed = math.NaN() }},
		{"paddle speed above limit", func(c *PongConfig) { c.Paddles.Speed = MaxPaddleSpeed + 1 }},
		{"zero paddle speed", func(c *PongConfig) { c.Paddles.Speed = 0 }},
		{"empty key", func(c *PongConfig) { c.Paddles.Player2.Down = "" }},
		{"duplicate key", func(c *PongConfig) { c.Paddles.Player2.Up = "w" }},
		{"settings key bound", func(c *PongConfig) { c.Controls.SettingsKey = "s" }},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultPongConfig()
			tc.mutate(&cfg)
			if err := cfg.Validate(); err == nil {
				t.Error("Validate() = nil, expected error")
			}
		})
	}
}

func TestLoadCustomTOMLRejectsNaN(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nan.toml")
	content := "[paddles]\nwidth = nan\nheight = nan\n"
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, _, err := Load(path)
	if err == nil {
		t.Fatalf("Load() accepted NaN paddle size: %+v", cfg.Paddles)
	}
	if !strings.Contains(err.Error(), "paddle size") {
		t.Errorf("error = %v, expected paddle size failure", err)
	}
}

func TestValidateErrorOrderIsStable(t *testing.T) {
	cfg := DefaultPongConfig()
	cfg.Board.Background = "plaid"
	cfg.Paddles.Player2.Color = "tartan"

	first := cfg.Validate()
	if first == nil {
		t.Fatal("Validate() = nil, expected error")
	}

	msg := first.Error()
	bg := strings.Index(msg, "board.background")
	p2 := strings.Index(msg, "paddles.player2.color")
	if bg < 0 || p2 < 0 || bg > p2 {
		t.Errorf("Validate() = %q, expected board.background before paddles.player2.color", msg)
	}

	for i := 0; i < 20; i++ {
		if got := cfg.Validate().Error(); got != msg {
			t.Fatalf("Validate() = %q, expected the same message %q", got, msg)
		}
	}
}
