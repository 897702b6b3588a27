// Package config provides YAML and TOML startup configuration for the game.
// The file only seeds the initial values; runtime changes made through the
// settings session are never written back.
package config

import (
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/vovakirdan/tui-pong/internal/core"
)

// Upper speed limits shared by the startup config and runtime settings.
const (
	MaxBallSpeed   = 500.0
	MaxPaddleSpeed = 500.0
)

// PongConfig contains all startup configuration for Pong.
type PongConfig struct {
	Timing   TimingConfig   `yaml:"timing" toml:"timing"`
	Board    BoardConfig    `yaml:"board" toml:"board"`
	Ball     BallConfig     `yaml:"ball" toml:"ball"`
	Paddles  PaddlesConfig  `yaml:"paddles" toml:"paddles"`
	Controls ControlsConfig `yaml:"controls" toml:"controls"`
}

// TimingConfig defines the fixed loop delay.
type TimingConfig struct {
	DelayMS int `yaml:"delay_ms" toml:"delay_ms"`
}

// BoardConfig defines the playfield.
type BoardConfig struct {
	Background string `yaml:"background" toml:"background"`
	MarginX    int    `yaml:"margin_x" toml:"margin_x"` // Subtracted from viewport width
	MarginY    int    `yaml:"margin_y" toml:"margin_y"` // Subtracted from viewport height
}

// BallConfig defines the ball.
type BallConfig struct {
	Speed       float64 `yaml:"speed" toml:"speed"`
	Radius      float64 `yaml:"radius" toml:"radius"`
	Color       string  `yaml:"color" toml:"color"`
	BorderColor string  `yaml:"border_color" toml:"border_color"`
}

// PaddlesConfig defines both paddles.
type PaddlesConfig struct {
	Width       float64      `yaml:"width" toml:"width"`
	Height      float64      `yaml:"height" toml:"height"`
	Speed       float64      `yaml:"speed" toml:"speed"`
	BorderColor string       `yaml:"border_color" toml:"border_color"`
	Player1     PlayerConfig `yaml:"player1" toml:"player1"`
	Player2     PlayerConfig `yaml:"player2" toml:"player2"`
}

// PlayerConfig defines one player's paddle colour and key bindings.
type PlayerConfig struct {
	Color string `yaml:"color" toml:"color"`
	Up    string `yaml:"up" toml:"up"`
	Down  string `yaml:"down" toml:"down"`
}

// ControlsConfig defines fixed control keys.
type ControlsConfig struct {
	SettingsKey string `yaml:"settings_key" toml:"settings_key"`
}

// Delay returns the tick delay as a duration.
func (c PongConfig) Delay() time.Duration {
	return time.Duration(c.Timing.DelayMS) * time.Millisecond
}

// Validate checks that every value can be used by the game.
func (c PongConfig) Validate() error {
	var errs []error

	if c.Timing.DelayMS <= 0 {
		errs = append(errs, fmt.Errorf("timing.delay_ms must be positive, got %d", c.Timing.DelayMS))
	}
	if c.Board.MarginX < 0 || c.Board.MarginY < 0 {
		errs = append(errs, fmt.Errorf("board margins must not be negative"))
	}
	if !finite(c.Ball.Speed) || c.Ball.Speed < 0 || c.Ball.Speed > MaxBallSpeed {
		errs = append(errs, fmt.Errorf("ball.speed must be between 0 and %g, got %v", MaxBallSpeed, c.Ball.Speed))
	}
	if !finite(c.Ball.Radius) || c.Ball.Radius <= 0 {
		errs = append(errs, fmt.Errorf("ball.radius must be positive, got %v", c.Ball.Radius))
	}
	if !finite(c.Paddles.Width) || !finite(c.Paddles.Height) || c.Paddles.Width <= 0 || c.Paddles.Height <= 0 {
		errs = append(errs, fmt.Errorf("paddle size must be positive, got %vx%v", c.Paddles.Width, c.Paddles.Height))
	}
	if !finite(c.Paddles.Speed) || c.Paddles.Speed <= 0 || c.Paddles.Speed > MaxPaddleSpeed {
		errs = append(errs, fmt.Errorf("paddles.speed must be above 0 and at most %g, got %v", MaxPaddleSpeed, c.Paddles.Speed))
	}

	colors := []struct {
		field, value string
	}{
		{"board.background", c.Board.Background},
		{"ball.color", c.Ball.Color},
		{"ball.border_color", c.Ball.BorderColor},
		{"paddles.border_color", c.Paddles.BorderColor},
		{"paddles.player1.color", c.Paddles.Player1.Color},
		{"paddles.player2.color", c.Paddles.Player2.Color},
	}
	for _, col := range colors {
		if _, err := core.ParseColor(col.value); err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", col.field, err))
		}
	}

	keys := []string{
		c.Paddles.Player1.Up, c.Paddles.Player1.Down,
		c.Paddles.Player2.Up, c.Paddles.Player2.Down,
		c.Controls.SettingsKey,
	}
	seen := make(map[string]bool, len(keys))
	for _, k := range keys {
		if k == "" {
			errs = append(errs, fmt.Errorf("key bindings must not be empty"))
			continue
		}
		if seen[k] {
			errs = append(errs, fmt.Errorf("key %q is bound twice", k))
		}
		seen[k] = true
	}

	if len(errs) > 0 {
		return fmt.Errorf("config: invalid: %w", errors.Join(errs...))
	}
	return nil
}

func finite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
