package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// namedKeys maps Bubble Tea key types to the browser-style identifiers the
// game binds to.
var namedKeys = map[tea.KeyType]string{
	tea.KeyUp:        "ArrowUp",
	tea.KeyDown:      "ArrowDown",
	tea.KeyLeft:      "ArrowLeft",
	tea.KeyRight:     "ArrowRight",
	tea.KeyEsc:       "Escape",
	tea.KeyEnter:     "Enter",
	tea.KeyTab:       "Tab",
	tea.KeyBackspace: "Backspace",
	tea.KeyDelete:    "Delete",
	tea.KeyHome:      "Home",
	tea.KeyEnd:       "End",
	tea.KeyPgUp:      "PageUp",
	tea.KeyPgDown:    "PageDown",
	tea.KeySpace:     " ",
}

// KeyIdentifier translates a key message to the identifier used by the game
// bindings: printable characters verbatim, named keys as "ArrowUp",
// "Escape" and so on. Returns "" for keys that have no identifier.
func KeyIdentifier(msg tea.KeyMsg) string {
	if msg.Alt {
		return ""
	}
	if msg.Type == tea.KeyRunes {
		return string(msg.Runes)
	}
	return namedKeys[msg.Type]
}

// ControlKeyMap defines the platform bindings. They are checked before
// the game sees a key.
type ControlKeyMap struct {
	Quit       key.Binding
	Reset      key.Binding
	Panel      key.Binding
	History    key.Binding
	Screenshot key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k ControlKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Reset, k.Panel, k.History, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k ControlKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Reset, k.Panel, k.History},
		{k.Screenshot, k.Quit},
	}
}

// DefaultControlKeyMap returns default key bindings.
func DefaultControlKeyMap() ControlKeyMap {
	return ControlKeyMap{
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "quit"),
		),
		Reset: key.NewBinding(
			key.WithKeys("ctrl+r"),
			key.WithHelp("ctrl+r", "reset score"),
		),
		Panel: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "settings panel"),
		),
		History: key.NewBinding(
			key.WithKeys("ctrl+h"),
			key.WithHelp("ctrl+h", "match history"),
		),
		Screenshot: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "screenshot"),
		),
	}
}
