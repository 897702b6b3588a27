package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-pong/internal/core"
)

// styleCache maps cell styles to lipgloss styles.
type styleCache map[core.Style]lipgloss.Style

func (c styleCache) get(st core.Style) lipgloss.Style {
	if ls, ok := c[st]; ok {
		return ls
	}
	ls := lipgloss.NewStyle()
	if st.FgSet {
		ls = ls.Foreground(lipgloss.Color(st.Fg.Hex()))
	}
	if st.BgSet {
		ls = ls.Background(lipgloss.Color(st.Bg.Hex()))
	}
	c[st] = ls
	return ls
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same style to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen) string {
	styles := styleCache{}

	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			start := s.GetCell(x, y).Style

			var run strings.Builder
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.Style != start {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			sb.WriteString(styles.get(start).Render(run.String()))
		}
	}
	return sb.String()
}
