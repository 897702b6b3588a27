package pong

import (
	"testing"

	"github.com/vovakirdan/tui-pong/internal/config"
	"github.com/vovakirdan/tui-pong/internal/core"
)

// newTestGame creates a game on an 800x600 playfield with a fixed seed.
func newTestGame(t *testing.T) *Game {
	t.Helper()
	g, err := New(config.DefaultPongConfig(), core.RuntimeConfig{
		ViewportW: 920,
		ViewportH: 700,
		Seed:      42,
	})
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}
	return g
}

type recordingDisplay struct {
	texts []string
}

func (d *recordingDisplay) SetScore(text string) {
	d.texts = append(d.texts, text)
}

func (d *recordingDisplay) last() string {
	if len(d.texts) == 0 {
		return ""
	}
	return d.texts[len(d.texts)-1]
}

func TestNewGameLayout(t *testing.T) {
	g := newTestGame(t)

	f := g.Field()
	if f.W != 800 || f.H != 600 {
		t.Fatalf("Field() = %vx%v, expected 800x600", f.W, f.H)
	}

	p1 := g.Paddle(Player1)
	if p1.X != 0 || p1.Y != 0 {
		t.Errorf("paddle 1 at (%v, %v), expected top-left (0, 0)", p1.X, p1.Y)
	}
	p2 := g.Paddle(Player2)
	if p2.X != 775 || p2.Y != 500 {
		t.Errorf("paddle 2 at (%v, %v), expected bottom-right (775, 500)", p2.X, p2.Y)
	}
	if p1.Up != "w" || p1.Down != "s" || p2.Up != "ArrowUp" || p2.Down != "ArrowDown" {
		t.Errorf("default bindings = %q/%q %q/%q", p1.Up, p1.Down, p2.Up, p2.Down)
	}

	b := g.Ball()
	if b.X != 400 || b.Y != 300 {
		t.Errorf("ball at (%v, %v), expected centre (400, 300)", b.X, b.Y)
	}
	if b.Radius != 12.5 || b.Speed != 1 {
		t.Errorf("ball radius/speed = %v/%v, expected 12.5/1", b.Radius, b.Speed)
	}

	s := g.Settings()
	if s.BackgroundColor != "forestgreen" || s.PaddleSpeed != 50 || s.OpenSettingsKey != "Escape" {
		t.Errorf("settings = %+v", s)
	}
	if g.ScoreText() != "0 : 0" {
		t.Errorf("ScoreText() = %q, expected %q", g.ScoreText(), "0 : 0")
	}
}

func TestNewRejectsBadColor(t *testing.T) {
	cfg := config.DefaultPongConfig()
	cfg.Ball.Color = "plaid"
	if _, err := New(cfg, core.DefaultConfig()); err == nil {
		t.Error("New() should fail on an unknown ball colour")
	}
}

func TestNewPlayfieldFloor(t *testing.T) {
	f := NewPlayfield(50, 50, 120, 100, 25, 100)
	if f.W != 100 || f.H != 200 {
		t.Errorf("NewPlayfield() on a tiny viewport = %vx%v, expected floor 100x200", f.W, f.H)
	}
}

func TestServeDirections(t *testing.T) {
	g := newTestGame(t)
	seen := make(map[[2]int]bool)

	for range 200 {
		g.Serve()
		b := g.Ball()
		if (b.XDir != 1 && b.XDir != -1) || (b.YDir != 1 && b.YDir != -1) {
			t.Fatalf("Serve() gave direction (%d, %d)", b.XDir, b.YDir)
		}
		seen[[2]int{b.XDir, b.YDir}] = true
	}

	if len(seen) != 4 {
		t.Errorf("Serve() produced %d of the 4 diagonals", len(seen))
	}
}

func TestServeKeepsPosition(t *testing.T) {
	g := newTestGame(t)
	g.ball.X, g.ball.Y = 10, 20
	g.Serve()
	if g.ball.X != 10 || g.ball.Y != 20 {
		t.Errorf("Serve() moved the ball to (%v, %v)", g.ball.X, g.ball.Y)
	}
}

func TestResetIdempotent(t *testing.T) {
	g := newTestGame(t)
	d := &recordingDisplay{}
	g.SetScoreDisplay(d)

	g.set.Player1Score = 3
	g.set.Player2Score = 7
	g.ball.X, g.ball.Y = 12, 34
	g.paddles[0].Y = 150

	g.Reset()
	first := g.Settings()
	firstBall := g.Ball()

	g.Reset()
	second := g.Settings()
	secondBall := g.Ball()

	if first.Player1Score != 0 || first.Player2Score != 0 {
		t.Errorf("Reset() scores = %d/%d, expected 0/0", first.Player1Score, first.Player2Score)
	}
	if first != second {
		t.Errorf("second Reset() changed settings: %+v vs %+v", first, second)
	}
	if firstBall.X != 400 || firstBall.Y != 300 || secondBall.X != firstBall.X || secondBall.Y != firstBall.Y {
		t.Errorf("Reset() ball at (%v, %v) then (%v, %v), expected centre", firstBall.X, firstBall.Y, secondBall.X, secondBall.Y)
	}
	if g.Paddle(Player1).Y != 150 {
		t.Errorf("Reset() moved paddle 1 to %v", g.Paddle(Player1).Y)
	}
	if d.last() != "0 : 0" {
		t.Errorf("display = %q after reset, expected %q", d.last(), "0 : 0")
	}
}

func TestSetScoreDisplayRefreshes(t *testing.T) {
	g := newTestGame(t)
	d := &recordingDisplay{}
	g.SetScoreDisplay(d)

	if len(d.texts) != 1 || d.texts[0] != "0 : 0" {
		t.Errorf("attaching display wrote %v, expected [\"0 : 0\"]", d.texts)
	}

	// Detaching must not panic on later updates
	g.SetScoreDisplay(nil)
	g.addPoint(Player1)
	g.Reset()
}

func TestPlayerIDString(t *testing.T) {
	if Player1.String() != "player 1" || Player2.String() != "player 2" || NoPlayer.String() != "none" {
		t.Error("PlayerID.String() returned unexpected names")
	}
}
