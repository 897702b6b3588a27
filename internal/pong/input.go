package pong

import "github.com/vovakirdan/tui-pong/internal/core"

// Action is what a key means to the game, abstracted from the key itself.
type Action int

const (
	ActionNone Action = iota
	ActionUp
	ActionDown
	ActionOpenSettings
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionUp:
		return "Up"
	case ActionDown:
		return "Down"
	case ActionOpenSettings:
		return "OpenSettings"
	default:
		return "Unknown"
	}
}

// KeyResult tells the platform what a key press did. The flags are
// advisory: a platform with its own default key handling (scrolling on
// arrow keys) suppresses it when PreventDefault is set, the terminal and
// window backends have none and only act on OpenSettings.
type KeyResult struct {
	Player         PlayerID // Paddle that moved, if any
	Action         Action
	PreventDefault bool // Suppress the platform's own handling of the key
}

// Handled reports whether the key meant anything to the game.
func (r KeyResult) Handled() bool {
	return r.Action != ActionNone
}

// OpenSettings reports whether the caller should start a settings session.
func (r KeyResult) OpenSettings() bool {
	return r.Action == ActionOpenSettings
}

// Resolve maps a key identifier to a player and action using the current
// bindings. Player 1's bindings win over player 2's, which win over the
// settings key.
func (g *Game) Resolve(key string) (PlayerID, Action) {
	p1, p2 := &g.paddles[0], &g.paddles[1]

	switch key {
	case p1.Up:
		return Player1, ActionUp
	case p1.Down:
		return Player1, ActionDown
	case p2.Up:
		return Player2, ActionUp
	case p2.Down:
		return Player2, ActionDown
	case g.set.OpenSettingsKey:
		return NoPlayer, ActionOpenSettings
	}
	return NoPlayer, ActionNone
}

// HandleKey applies one key press. Each press is one discrete jump of
// PaddleSpeed; platform key repeat produces repeated jumps.
func (g *Game) HandleKey(key string) KeyResult {
	id, action := g.Resolve(key)
	res := KeyResult{Player: id, Action: action}

	switch action {
	case ActionUp, ActionDown:
		g.MovePaddle(id, action)
		// Player 2's defaults are arrow keys, which would otherwise scroll
		res.PreventDefault = id == Player2
	}

	return res
}

// MovePaddle moves a paddle one step, clamped to [0, H - height].
func (g *Game) MovePaddle(id PlayerID, action Action) {
	p := g.paddle(id)

	switch action {
	case ActionUp:
		p.Y -= g.set.PaddleSpeed
	case ActionDown:
		p.Y += g.set.PaddleSpeed
	default:
		return
	}

	p.Y = core.ClampF(p.Y, 0, g.field.H-p.Height)
}
