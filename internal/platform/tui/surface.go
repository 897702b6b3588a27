package tui

import (
	"math"
	"time"

	"github.com/vovakirdan/tui-pong/internal/core"
)

// One terminal cell stands for this many playfield pixels.
const (
	CellWidth  = 8
	CellHeight = 16
)

// CellsFor returns the screen size in cells that covers a playfield.
func CellsFor(w, h float64) (int, int) {
	return int(math.Ceil(w / CellWidth)), int(math.Ceil(h / CellHeight))
}

// SessionRuntime converts a terminal size in cells to the game's pixel
// viewport, leaving room for the side panel.
func SessionRuntime(cols, rows int, delay time.Duration, seed int64) core.RuntimeConfig {
	return core.RuntimeConfig{
		ViewportW: max(cols-PanelColumns, 0) * CellWidth,
		ViewportH: rows * CellHeight,
		Delay:     delay,
		Seed:      seed,
	}
}

// CellSurface draws playfield pixels onto a cell buffer. Rectangles cover
// every cell they touch; circles cover the cells whose centre lies inside.
type CellSurface struct {
	screen *core.Screen
}

// NewCellSurface creates a surface over the given screen.
func NewCellSurface(s *core.Screen) *CellSurface {
	return &CellSurface{screen: s}
}

func span(lo, hi float64, size int) (int, int) {
	a := int(math.Floor(lo / float64(size)))
	b := int(math.Ceil(hi / float64(size)))
	if b <= a {
		b = a + 1
	}
	return a, b
}

func cellRect(r core.RectF) core.Rect {
	x0, x1 := span(r.X, r.Right(), CellWidth)
	y0, y1 := span(r.Y, r.Bottom(), CellHeight)
	return core.NewRect(x0, y0, x1-x0, y1-y0)
}

// FillRect paints the covered cells with the colour as background.
func (c *CellSurface) FillRect(r core.RectF, col core.Color) {
	c.screen.FillRect(cellRect(r), core.Style{}.WithBg(col))
}

// StrokeRect outlines the covered cells with box-drawing runes. The width
// is ignored; a cell is the thinnest line a terminal can draw.
func (c *CellSurface) StrokeRect(r core.RectF, col core.Color, _ float64) {
	c.screen.DrawBox(cellRect(r), core.Style{}.WithFg(col))
}

// FillCircle paints the cells inside the circle.
func (c *CellSurface) FillCircle(cx, cy, radius float64, col core.Color) {
	c.circleCells(cx, cy, radius, func(x, y int) {
		c.screen.SetCell(x, y, core.Cell{Rune: ' ', Style: core.Style{}.WithBg(col)})
	})
}

// StrokeCircle paints the cells inside the circle grown by width. A fill
// drawn afterwards leaves only the outer ring visible.
func (c *CellSurface) StrokeCircle(cx, cy, radius float64, col core.Color, width float64) {
	c.circleCells(cx, cy, radius+width, func(x, y int) {
		c.screen.SetCell(x, y, core.Cell{Rune: ' ', Style: core.Style{}.WithBg(col)})
	})
}

func (c *CellSurface) circleCells(cx, cy, radius float64, fn func(x, y int)) {
	x0 := int(math.Floor((cx - radius) / CellWidth))
	x1 := int(math.Floor((cx + radius) / CellWidth))
	y0 := int(math.Floor((cy - radius) / CellHeight))
	y1 := int(math.Floor((cy + radius) / CellHeight))

	hit := false
	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			px := (float64(x) + 0.5) * CellWidth
			py := (float64(y) + 0.5) * CellHeight
			if (px-cx)*(px-cx)+(py-cy)*(py-cy) <= radius*radius {
				fn(x, y)
				hit = true
			}
		}
	}

	// Small circles still show up
	if !hit {
		fn(int(math.Floor(cx/CellWidth)), int(math.Floor(cy/CellHeight)))
	}
}
