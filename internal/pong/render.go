package pong

import "github.com/vovakirdan/tui-pong/internal/core"

// Outline widths used when drawing.
const (
	PaddleBorderWidth = 2.0
	BallBorderWidth   = 2.0
)

// Surface is a 2D drawing target in playfield pixels.
type Surface interface {
	FillRect(r core.RectF, c core.Color)
	StrokeRect(r core.RectF, c core.Color, width float64)
	FillCircle(cx, cy, radius float64, c core.Color)
	StrokeCircle(cx, cy, radius float64, c core.Color, width float64)
}

// Renderer draws the game onto a Surface. With no surface every call is a
// no-op, so the game runs headless.
type Renderer struct {
	surface Surface
}

// NewRenderer creates a renderer for the given surface, which may be nil.
func NewRenderer(s Surface) Renderer {
	return Renderer{surface: s}
}

// ClearBoard fills the whole playfield with the background colour.
func (r Renderer) ClearBoard(g *Game) {
	if r.surface == nil {
		return
	}
	r.surface.FillRect(core.NewRectF(0, 0, g.field.W, g.field.H), g.set.Background)
}

// RenderPaddles draws both paddles as filled, outlined rectangles.
func (r Renderer) RenderPaddles(g *Game) {
	if r.surface == nil {
		return
	}
	for _, p := range g.paddles {
		r.surface.FillRect(p.Rect(), p.Color)
		r.surface.StrokeRect(p.Rect(), p.BorderColor, PaddleBorderWidth)
	}
}

// RenderBall draws the ball at (x, y).
func (r Renderer) RenderBall(g *Game, x, y float64) {
	if r.surface == nil {
		return
	}
	b := g.ball
	r.surface.StrokeCircle(x, y, b.Radius, b.BorderColor, BallBorderWidth)
	r.surface.FillCircle(x, y, b.Radius, b.Color)
}

// Draw renders one full frame without advancing the game.
func (r Renderer) Draw(g *Game) {
	r.ClearBoard(g)
	r.RenderPaddles(g)
	r.RenderBall(g, g.ball.X, g.ball.Y)
}
