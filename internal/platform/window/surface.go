package window

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/vovakirdan/tui-pong/internal/core"
)

// imageSurface draws the game onto an ebiten image in playfield pixels.
type imageSurface struct {
	dst *ebiten.Image
}

func (s imageSurface) FillRect(r core.RectF, c core.Color) {
	vector.DrawFilledRect(s.dst, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), c, false)
}

func (s imageSurface) StrokeRect(r core.RectF, c core.Color, width float64) {
	vector.StrokeRect(s.dst, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), float32(width), c, false)
}

func (s imageSurface) FillCircle(cx, cy, radius float64, c core.Color) {
	vector.DrawFilledCircle(s.dst, float32(cx), float32(cy), float32(radius), c, true)
}

func (s imageSurface) StrokeCircle(cx, cy, radius float64, c core.Color, width float64) {
	vector.StrokeCircle(s.dst, float32(cx), float32(cy), float32(radius), float32(width), c, true)
}
