package pong

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/vovakirdan/tui-pong/internal/config"
	"github.com/vovakirdan/tui-pong/internal/core"
)

// Limits applied to settings input.
const (
	MaxBallSpeed       = config.MaxBallSpeed
	MaxPaddleSpeed     = config.MaxPaddleSpeed
	MinPanelBallSpeed  = 1.0 // The form panel's numeric field minimum
	maxKeyIdentifierSz = 32
)

// Menu tokens understood by the settings session.
const (
	TokenQuit        = "q"
	TokenBallSpeed   = "bs"
	TokenBackground  = "bg"
	TokenPaddleSpeed = "ps"
	TokenKeys        = "k"
)

// Sentinel reasons wrapped by ValidationError.
var (
	ErrNotANumber   = errors.New("not a number")
	ErrOutOfRange   = errors.New("out of range")
	ErrUnknownColor = core.ErrUnknownColor
	ErrBadKey       = errors.New("invalid key")
)

// ValidationError is a rejected settings value.
type ValidationError struct {
	Field string
	Input string
	Err   error
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %q rejected: %v", e.Field, e.Input, e.Err)
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

func reject(field, input string, err error) error {
	return &ValidationError{Field: field, Input: input, Err: err}
}

func parseNumber(field, s string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, reject(field, s, ErrNotANumber)
	}
	return v, nil
}

// ParseBallSpeed validates a ball speed in [0, MaxBallSpeed].
func ParseBallSpeed(s string) (float64, error) {
	v, err := parseNumber("ball speed", s)
	if err != nil {
		return 0, err
	}
	if v < 0 || v > MaxBallSpeed {
		return 0, reject("ball speed", s, fmt.Errorf("%w: must be between 0 and %g", ErrOutOfRange, MaxBallSpeed))
	}
	return v, nil
}

// ParsePaddleSpeed validates a paddle speed in (0, MaxPaddleSpeed].
func ParsePaddleSpeed(s string) (float64, error) {
	v, err := parseNumber("paddle speed", s)
	if err != nil {
		return 0, err
	}
	if v <= 0 || v > MaxPaddleSpeed {
		return 0, reject("paddle speed", s, fmt.Errorf("%w: must be above 0 and at most %g", ErrOutOfRange, MaxPaddleSpeed))
	}
	return v, nil
}

// ParseBackground lower-cases a colour and checks it can be drawn.
func ParseBackground(s string) (string, core.Color, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	c, err := core.ParseColor(name)
	if err != nil {
		return "", core.Color{}, reject("background color", s, ErrUnknownColor)
	}
	return name, c, nil
}

// ParseKey checks a key identifier. Keys are kept verbatim, so " " is a
// valid identifier for the space bar.
func ParseKey(s string) (string, error) {
	if s == "" {
		return "", reject("key", s, fmt.Errorf("%w: empty", ErrBadKey))
	}
	if len(s) > maxKeyIdentifierSz {
		return "", reject("key", s, fmt.Errorf("%w: too long", ErrBadKey))
	}
	return s, nil
}

// SetBallSpeed sets the ball speed after validation.
func (g *Game) SetBallSpeed(v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 || v > MaxBallSpeed {
		return reject("ball speed", strconv.FormatFloat(v, 'f', -1, 64), ErrOutOfRange)
	}
	g.ball.Speed = v
	return nil
}

// SetPaddleSpeed sets the paddle speed after validation.
func (g *Game) SetPaddleSpeed(v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) || v <= 0 || v > MaxPaddleSpeed {
		return reject("paddle speed", strconv.FormatFloat(v, 'f', -1, 64), ErrOutOfRange)
	}
	g.set.PaddleSpeed = v
	return nil
}

// SetBackground sets the background colour from a CSS name or hex code.
func (g *Game) SetBackground(s string) error {
	name, c, err := ParseBackground(s)
	if err != nil {
		return err
	}
	g.set.BackgroundColor = name
	g.set.Background = c
	return nil
}

// SetKeys rebinds one player's up and down keys. The pair must be distinct,
// must not take the settings key and must not steal the other player's keys.
func (g *Game) SetKeys(id PlayerID, up, down string) error {
	if id != Player1 && id != Player2 {
		return reject("player", id.String(), ErrOutOfRange)
	}
	for _, k := range []string{up, down} {
		if _, err := ParseKey(k); err != nil {
			return err
		}
		if k == g.set.OpenSettingsKey {
			return reject("key", k, fmt.Errorf("%w: reserved for settings", ErrBadKey))
		}
	}
	if up == down {
		return reject("key", down, fmt.Errorf("%w: same as up key", ErrBadKey))
	}

	other := g.paddle(Player1)
	if id == Player1 {
		other = g.paddle(Player2)
	}
	for _, k := range []string{up, down} {
		if k == other.Up || k == other.Down {
			return reject("key", k, fmt.Errorf("%w: already bound to the other player", ErrBadKey))
		}
	}

	p := g.paddle(id)
	p.Up, p.Down = up, down
	return nil
}

// SettingsState is the step a settings session is waiting on.
type SettingsState int

const (
	StateMenu SettingsState = iota
	StateBallSpeed
	StateBackground
	StatePaddleSpeed
	StateKeyPlayer
	StateKeyUp
	StateKeyDown
	StateClosed
)

// String returns a human-readable name for the state.
func (s SettingsState) String() string {
	switch s {
	case StateMenu:
		return "Menu"
	case StateBallSpeed:
		return "BallSpeed"
	case StateBackground:
		return "Background"
	case StatePaddleSpeed:
		return "PaddleSpeed"
	case StateKeyPlayer:
		return "KeyPlayer"
	case StateKeyUp:
		return "KeyUp"
	case StateKeyDown:
		return "KeyDown"
	case StateClosed:
		return "Closed"
	default:
		return "Unknown"
	}
}

// SubmitResult describes the effect of one submitted line.
type SubmitResult struct {
	Applied string // Human-readable description of an applied change
	Err     error  // Non-nil if the input was rejected
	Closed  bool   // Session ended
}

// SettingsSession is a finite-state settings menu that accepts one line at
// a time. Physics is suspended while it is open.
type SettingsSession struct {
	game    *Game
	state   SettingsState
	player  PlayerID
	pending string // Up key waiting for its down key
	lastErr error
}

// OpenSettings starts a settings session at the menu.
func (g *Game) OpenSettings() *SettingsSession {
	g.settingsOpen = true
	return &SettingsSession{game: g, state: StateMenu}
}

// State returns what the session is waiting for.
func (s *SettingsSession) State() SettingsState {
	return s.state
}

// Closed reports whether the session has ended.
func (s *SettingsSession) Closed() bool {
	return s.state == StateClosed
}

// LastError returns the reason the previous input was rejected, if any.
func (s *SettingsSession) LastError() error {
	return s.lastErr
}

// Prompt returns the text to show for the current state. The menu lists the
// current values each time it is shown.
func (s *SettingsSession) Prompt() string {
	switch s.state {
	case StateMenu:
		return s.menuText()
	case StateBallSpeed:
		return "Set ball speed: "
	case StateBackground:
		return "Set background color: "
	case StatePaddleSpeed:
		return "Set paddle speed: "
	case StateKeyPlayer:
		return "For which player do you want to customize keys? (1/2): "
	case StateKeyUp:
		return "Enter your up key: "
	case StateKeyDown:
		return "Enter your down key: "
	default:
		return ""
	}
}

func (s *SettingsSession) menuText() string {
	g := s.game
	p1, p2 := g.paddles[0], g.paddles[1]

	var b strings.Builder
	b.WriteString("-----------\nSETTINGS\n-----------\n")
	b.WriteString("q = quit and save\n")
	fmt.Fprintf(&b, "bs = ball speed (%s)\n", formatNumber(g.ball.Speed))
	fmt.Fprintf(&b, "bg = background color (%s)\n", g.set.BackgroundColor)
	fmt.Fprintf(&b, "ps = paddle speed (%s)\n", formatNumber(g.set.PaddleSpeed))
	fmt.Fprintf(&b, "k = keys configuration (p1: (%s, %s), p2: (%s, %s))\n",
		strings.ToUpper(p1.Up), strings.ToUpper(p1.Down),
		strings.ToUpper(p2.Up), strings.ToUpper(p2.Down))
	return b.String()
}

func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// Submit feeds one line of input to the session.
func (s *SettingsSession) Submit(input string) SubmitResult {
	res := s.submit(input)
	s.lastErr = res.Err
	if res.Closed {
		s.close()
	}
	return res
}

func (s *SettingsSession) submit(input string) SubmitResult {
	g := s.game

	switch s.state {
	case StateMenu:
		return s.chooseToken(input)

	case StateBallSpeed:
		s.state = StateMenu
		v, err := ParseBallSpeed(input)
		if err != nil {
			return SubmitResult{Err: err}
		}
		g.ball.Speed = v
		return SubmitResult{Applied: "ball speed = " + formatNumber(v)}

	case StateBackground:
		s.state = StateMenu
		if err := g.SetBackground(input); err != nil {
			return SubmitResult{Err: err}
		}
		return SubmitResult{Applied: "background color = " + g.set.BackgroundColor}

	case StatePaddleSpeed:
		s.state = StateMenu
		v, err := ParsePaddleSpeed(input)
		if err != nil {
			return SubmitResult{Err: err}
		}
		g.set.PaddleSpeed = v
		return SubmitResult{Applied: "paddle speed = " + formatNumber(v)}

	case StateKeyPlayer:
		// Anything other than 1 or 2 silently returns to the menu
		s.state = StateMenu
		v, err := strconv.ParseFloat(strings.TrimSpace(input), 64)
		if err != nil {
			return SubmitResult{}
		}
		switch v {
		case 1:
			s.player = Player1
		case 2:
			s.player = Player2
		default:
			return SubmitResult{}
		}
		s.state = StateKeyUp
		return SubmitResult{}

	case StateKeyUp:
		k, err := ParseKey(input)
		if err != nil {
			s.state = StateMenu
			return SubmitResult{Err: err}
		}
		s.pending = k
		s.state = StateKeyDown
		return SubmitResult{}

	case StateKeyDown:
		s.state = StateMenu
		if err := g.SetKeys(s.player, s.pending, input); err != nil {
			return SubmitResult{Err: err}
		}
		return SubmitResult{Applied: fmt.Sprintf("%s keys = (%s, %s)", s.player, s.pending, input)}
	}

	return SubmitResult{Closed: true}
}

func (s *SettingsSession) chooseToken(input string) SubmitResult {
	switch strings.ToLower(strings.TrimSpace(input)) {
	case TokenQuit:
		return SubmitResult{Closed: true}
	case TokenBallSpeed:
		s.state = StateBallSpeed
	case TokenBackground:
		s.state = StateBackground
	case TokenPaddleSpeed:
		s.state = StatePaddleSpeed
	case TokenKeys:
		s.state = StateKeyPlayer
	}
	// Unrecognized tokens leave the menu as it is
	return SubmitResult{}
}

// Cancel abandons the current prompt. From a sub-prompt it returns to the
// menu; from the menu it closes the session.
func (s *SettingsSession) Cancel() SubmitResult {
	if s.state == StateMenu {
		s.close()
		return SubmitResult{Closed: true}
	}
	if s.state != StateClosed {
		s.state = StateMenu
	}
	s.lastErr = nil
	return SubmitResult{}
}

func (s *SettingsSession) close() {
	s.state = StateClosed
	s.pending = ""
	s.game.settingsOpen = false
}
