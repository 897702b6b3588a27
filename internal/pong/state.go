package pong

import (
	"fmt"

	"github.com/vovakirdan/tui-pong/internal/core"
)

// PlayerID identifies one of the two players.
type PlayerID int

const (
	NoPlayer PlayerID = iota
	Player1           // Left paddle
	Player2           // Right paddle
)

// String returns a human-readable name for the player.
func (p PlayerID) String() string {
	switch p {
	case Player1:
		return "player 1"
	case Player2:
		return "player 2"
	default:
		return "none"
	}
}

// Playfield is the fixed drawing area in pixels.
type Playfield struct {
	W, H float64
}

// NewPlayfield derives the playfield from the viewport once at startup.
// Each side is floored so that both paddles and a serve still fit.
func NewPlayfield(viewportW, viewportH, marginX, marginY int, paddleW, paddleH float64) Playfield {
	w := float64(viewportW - marginX)
	h := float64(viewportH - marginY)
	return Playfield{
		W: max(w, 4*paddleW),
		H: max(h, 2*paddleH),
	}
}

// Center returns the centre point of the playfield.
func (f Playfield) Center() (float64, float64) {
	return f.W / 2, f.H / 2
}

// Paddle is one player's bat.
type Paddle struct {
	X, Y          float64
	Width, Height float64
	Color         core.Color
	BorderColor   core.Color
	Up, Down      string // Key identifiers
}

// Rect returns the paddle's bounding box.
func (p Paddle) Rect() core.RectF {
	return core.NewRectF(p.X, p.Y, p.Width, p.Height)
}

// Ball is the single ball in play.
type Ball struct {
	X, Y        float64
	Radius      float64
	Speed       float64
	XDir, YDir  int // Each is -1 or +1
	Color       core.Color
	BorderColor core.Color
}

// Settings holds values the players can change at runtime plus the scores.
type Settings struct {
	BackgroundColor string     // As entered, lower-cased
	Background      core.Color // Resolved BackgroundColor
	PaddleSpeed     float64
	Player1Score    int
	Player2Score    int
	OpenSettingsKey string
}

// ScoreText formats the scores the way the score display shows them.
func (s Settings) ScoreText() string {
	return fmt.Sprintf("%d : %d", s.Player1Score, s.Player2Score)
}

// ScoreDisplay receives the score text whenever a point is scored or the
// game is reset.
type ScoreDisplay interface {
	SetScore(text string)
}
