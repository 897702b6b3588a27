package config

import (
	_ "embed"
)

//go:embed defaults/pong.yaml
var defaultPongYAML []byte

// DefaultPongConfig returns the hardcoded default configuration.
// It matches defaults/pong.yaml.
func DefaultPongConfig() PongConfig {
	return PongConfig{
		Timing: TimingConfig{
			DelayMS: 10,
		},
		Board: BoardConfig{
			Background: "forestgreen",
			MarginX:    120,
			MarginY:    100,
		},
		Ball: BallConfig{
			Speed:       1,
			Radius:      12.5,
			Color:       "white",
			BorderColor: "black",
		},
		Paddles: PaddlesConfig{
			Width:       25,
			Height:      100,
			Speed:       50,
			BorderColor: "black",
			Player1: PlayerConfig{
				Color: "lightblue",
				Up:    "w",
				Down:  "s",
			},
			Player2: PlayerConfig{
				Color: "red",
				Up:    "ArrowUp",
				Down:  "ArrowDown",
			},
		},
		Controls: ControlsConfig{
			SettingsKey: "Escape",
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultPongYAML
}
