package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-pong/internal/core"
	"github.com/vovakirdan/tui-pong/internal/pong"
)

const panelWidth = 26

// PanelColumns is the terminal width the side panel takes next to the board.
const PanelColumns = panelWidth + 4

// panelField is the panel input holding focus.
type panelField int

const (
	fieldNone panelField = iota
	fieldBallSpeed
	fieldBackground
)

// Panel is the side form with ball speed and background fields. Applying a
// field restarts the loop.
type Panel struct {
	speed      textinput.Model
	background textinput.Model
	focus      panelField
	notice     string
}

// NewPanel creates a panel showing the game's current values.
func NewPanel(g *pong.Game) Panel {
	speed := textinput.New()
	speed.Prompt = "ball speed > "
	speed.CharLimit = 12
	speed.Width = 8

	bg := textinput.New()
	bg.Prompt = "background > "
	bg.CharLimit = 32
	bg.Width = 12
	bg.ShowSuggestions = true
	bg.SetSuggestions(core.ColorNames())
	// Tab belongs to panel focus
	bg.KeyMap.AcceptSuggestion = key.NewBinding(key.WithKeys("shift+tab"))

	p := Panel{speed: speed, background: bg}
	p.Sync(g)
	return p
}

// Sync copies the game's values into the fields.
func (p *Panel) Sync(g *pong.Game) {
	p.speed.SetValue(strconv.FormatFloat(g.Ball().Speed, 'f', -1, 64))
	p.background.SetValue(g.Settings().BackgroundColor)
}

// Focused reports whether a panel field has keyboard focus.
func (p Panel) Focused() bool {
	return p.focus != fieldNone
}

// FocusNext moves focus none -> ball speed -> background -> none.
func (p *Panel) FocusNext() tea.Cmd {
	p.speed.Blur()
	p.background.Blur()
	p.focus = (p.focus + 1) % 3

	switch p.focus {
	case fieldBallSpeed:
		return p.speed.Focus()
	case fieldBackground:
		return p.background.Focus()
	}
	return nil
}

// Blur releases focus.
func (p *Panel) Blur() {
	p.speed.Blur()
	p.background.Blur()
	p.focus = fieldNone
}

// Update forwards a key to the focused input.
func (p *Panel) Update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	switch p.focus {
	case fieldBallSpeed:
		p.speed, cmd = p.speed.Update(msg)
	case fieldBackground:
		p.background, cmd = p.background.Update(msg)
	}
	return cmd
}

// Apply validates the focused field and writes it to the game. The panel
// refuses ball speeds below MinPanelBallSpeed.
func (p *Panel) Apply(g *pong.Game) (string, error) {
	var change string
	var err error

	switch p.focus {
	case fieldBallSpeed:
		change, err = applyPanelSpeed(g, p.speed.Value())
	case fieldBackground:
		if err = g.SetBackground(p.background.Value()); err == nil {
			change = "background color = " + g.Settings().BackgroundColor
		}
	default:
		return "", nil
	}

	if err != nil {
		p.notice = err.Error()
		return "", err
	}
	p.notice = change
	p.Sync(g)
	return change, nil
}

func applyPanelSpeed(g *pong.Game, input string) (string, error) {
	v, err := pong.ParseBallSpeed(input)
	if err != nil {
		return "", err
	}
	if v < pong.MinPanelBallSpeed {
		return "", &pong.ValidationError{
			Field: "ball speed",
			Input: input,
			Err:   fmt.Errorf("%w: panel minimum is %g", pong.ErrOutOfRange, pong.MinPanelBallSpeed),
		}
	}
	if err := g.SetBallSpeed(v); err != nil {
		return "", err
	}
	return "ball speed = " + strconv.FormatFloat(v, 'f', -1, 64), nil
}

var (
	panelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1).
			Width(panelWidth)
	panelFocusStyle = panelStyle.BorderForeground(lipgloss.Color("229"))
	noticeStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Italic(true)
)

// View renders the panel.
func (p Panel) View() string {
	var b strings.Builder
	b.WriteString("Settings\n")
	b.WriteString(p.speed.View())
	b.WriteString("\n")
	b.WriteString(p.background.View())
	if p.notice != "" {
		b.WriteString("\n")
		b.WriteString(noticeStyle.Render(p.notice))
	}

	if p.Focused() {
		return panelFocusStyle.Render(b.String())
	}
	return panelStyle.Render(b.String())
}
