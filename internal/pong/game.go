// Package pong implements a two-player Pong game on a fixed playfield.
// Player 1 owns the left paddle, player 2 the right one; both share a keyboard.
//
// The package is pure game logic. Platforms translate their key events to
// key identifiers, provide a Surface to draw on and drive the Loop.
package pong

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/vovakirdan/tui-pong/internal/config"
	"github.com/vovakirdan/tui-pong/internal/core"
)

// Game owns every piece of mutable state: paddles, ball, settings and scores.
// It is not safe for concurrent use; the platform drives it from one goroutine.
type Game struct {
	field   Playfield
	paddles [2]Paddle
	ball    Ball
	set     Settings

	rng     *rand.Rand
	display ScoreDisplay

	// settingsOpen suspends physics while a settings session is active
	settingsOpen bool
	ticks        uint64
}

// New creates a game from startup configuration and the platform viewport.
func New(cfg config.PongConfig, rt core.RuntimeConfig) (*Game, error) {
	seed := rt.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	colors, err := resolveColors(cfg)
	if err != nil {
		return nil, err
	}

	pc := cfg.Paddles
	field := NewPlayfield(rt.ViewportW, rt.ViewportH, cfg.Board.MarginX, cfg.Board.MarginY, pc.Width, pc.Height)

	g := &Game{
		field: field,
		rng:   rand.New(rand.NewSource(seed)),
	}

	// Player 1 starts top-left, player 2 bottom-right
	g.paddles[0] = Paddle{
		X: 0, Y: 0,
		Width: pc.Width, Height: pc.Height,
		Color:       colors["player1"],
		BorderColor: colors["paddle_border"],
		Up:          pc.Player1.Up,
		Down:        pc.Player1.Down,
	}
	g.paddles[1] = Paddle{
		X: field.W - pc.Width, Y: field.H - pc.Height,
		Width: pc.Width, Height: pc.Height,
		Color:       colors["player2"],
		BorderColor: colors["paddle_border"],
		Up:          pc.Player2.Up,
		Down:        pc.Player2.Down,
	}

	cx, cy := field.Center()
	g.ball = Ball{
		X: cx, Y: cy,
		Radius:      cfg.Ball.Radius,
		Speed:       cfg.Ball.Speed,
		XDir:        1,
		YDir:        1,
		Color:       colors["ball"],
		BorderColor: colors["ball_border"],
	}

	g.set = Settings{
		BackgroundColor: cfg.Board.Background,
		Background:      colors["background"],
		PaddleSpeed:     pc.Speed,
		OpenSettingsKey: cfg.Controls.SettingsKey,
	}

	return g, nil
}

func resolveColors(cfg config.PongConfig) (map[string]core.Color, error) {
	named := map[string]string{
		"background":    cfg.Board.Background,
		"ball":          cfg.Ball.Color,
		"ball_border":   cfg.Ball.BorderColor,
		"paddle_border": cfg.Paddles.BorderColor,
		"player1":       cfg.Paddles.Player1.Color,
		"player2":       cfg.Paddles.Player2.Color,
	}

	out := make(map[string]core.Color, len(named))
	for k, v := range named {
		c, err := core.ParseColor(v)
		if err != nil {
			return nil, fmt.Errorf("pong: %s color: %w", k, err)
		}
		out[k] = c
	}
	return out, nil
}

// Field returns the playfield.
func (g *Game) Field() Playfield {
	return g.field
}

// Paddle returns a copy of the given player's paddle.
func (g *Game) Paddle(id PlayerID) Paddle {
	return *g.paddle(id)
}

func (g *Game) paddle(id PlayerID) *Paddle {
	if id == Player2 {
		return &g.paddles[1]
	}
	return &g.paddles[0]
}

// Ball returns a copy of the ball.
func (g *Game) Ball() Ball {
	return g.ball
}

// Settings returns a copy of the runtime settings and scores.
func (g *Game) Settings() Settings {
	return g.set
}

// ScoreText returns the current score as "<p1> : <p2>".
func (g *Game) ScoreText() string {
	return g.set.ScoreText()
}

// Ticks returns how many physics steps ran since the last reset.
func (g *Game) Ticks() uint64 {
	return g.ticks
}

// SettingsOpen reports whether a settings session is suspending physics.
func (g *Game) SettingsOpen() bool {
	return g.settingsOpen
}

// SetScoreDisplay attaches the score display and refreshes it.
// A nil display disables score output.
func (g *Game) SetScoreDisplay(d ScoreDisplay) {
	g.display = d
	g.refreshScore()
}

func (g *Game) refreshScore() {
	if g.display == nil {
		return
	}
	g.display.SetScore(g.set.ScoreText())
}

// Serve re-rolls the ball direction without moving it.
func (g *Game) Serve() {
	g.ball.XDir = g.randomDir()
	g.ball.YDir = g.randomDir()
}

// ResetBall recentres the ball and re-rolls its direction.
func (g *Game) ResetBall() {
	g.ball.X, g.ball.Y = g.field.Center()
	g.Serve()
}

// Reset zeroes both scores, refreshes the display and resets the ball.
// Paddle positions and settings are untouched.
func (g *Game) Reset() {
	g.set.Player1Score = 0
	g.set.Player2Score = 0
	g.ticks = 0
	g.refreshScore()
	g.ResetBall()
}

func (g *Game) randomDir() int {
	if g.rng.Float64() < 0.5 {
		return 1
	}
	return -1
}
