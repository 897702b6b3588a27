package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-pong/internal/config"
	"github.com/vovakirdan/tui-pong/internal/core"
	"github.com/vovakirdan/tui-pong/internal/pong"
	"github.com/vovakirdan/tui-pong/internal/storage"
)

// Options configures a terminal game.
type Options struct {
	Config  config.PongConfig
	Runtime core.RuntimeConfig

	Store  *storage.Store // nil disables match history
	Logger *log.Logger    // nil discards log output

	ScreenshotDir string // Defaults to ~/.pong/screenshots
	NoScreenshots bool
	Now           func() time.Time
}

// scoreLabel is the terminal score display.
type scoreLabel struct {
	text string
}

func (l *scoreLabel) SetScore(text string) {
	l.text = text
}

// Model is the Bubble Tea model for one local two-player game.
type Model struct {
	game     *pong.Game
	loop     *pong.Loop
	handle   pong.Handle
	renderer pong.Renderer
	screen   *core.Screen
	score    *scoreLabel

	store   *storage.Store
	logger  *log.Logger
	now     func() time.Time
	shotDir string
	noShots bool

	keys  ControlKeyMap
	help  help.Model
	panel Panel

	session *pong.SettingsSession
	prompt  textinput.Model
	notice  string

	history *HistoryModel

	width, height int
	matchStart    time.Time
	quitting      bool
}

// NewModel creates the game, draws the first frame and arms the loop.
func NewModel(opts Options) (Model, error) {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	now := opts.Now
	if now == nil {
		now = time.Now
	}

	game, err := pong.New(opts.Config, opts.Runtime)
	if err != nil {
		return Model{}, err
	}

	f := game.Field()
	screen := core.NewScreen(CellsFor(f.W, f.H))
	surface := NewCellSurface(screen)

	score := &scoreLabel{}
	game.SetScoreDisplay(score)

	delay := opts.Runtime.Delay
	if delay <= 0 {
		delay = opts.Config.Delay()
	}

	shotDir := opts.ScreenshotDir
	if shotDir == "" {
		if home, homeErr := os.UserHomeDir(); homeErr == nil {
			shotDir = filepath.Join(home, ".pong", "screenshots")
		}
	}

	prompt := textinput.New()
	prompt.Prompt = "> "
	prompt.CharLimit = 32

	m := Model{
		game:       game,
		loop:       pong.NewLoop(game, surface, delay),
		renderer:   pong.NewRenderer(surface),
		screen:     screen,
		score:      score,
		store:      opts.Store,
		logger:     logger,
		now:        now,
		shotDir:    shotDir,
		noShots:    opts.NoScreenshots,
		keys:       DefaultControlKeyMap(),
		help:       help.New(),
		panel:      NewPanel(game),
		prompt:     prompt,
		matchStart: now(),
	}

	m.handle = m.loop.Start()
	m.renderer.Draw(game)
	logger.Debug("game started", "field", fmt.Sprintf("%gx%g", f.W, f.H), "delay", delay)
	return m, nil
}

// Init starts the tick chain.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.loop.Delay(), m.handle.Generation())
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		// The playfield keeps its startup size
		m.width, m.height = msg.Width, msg.Height
		m.help.Width = msg.Width
		if m.history != nil {
			return m.updateHistory(msg)
		}
		return m, nil

	case TickMsg:
		return m.handleTick(msg)
	}

	// Cursor blinks and the like go to whichever input is active
	var cmd tea.Cmd
	switch {
	case m.session != nil:
		m.prompt, cmd = m.prompt.Update(msg)
	case m.panel.Focused():
		cmd = m.panel.Update(msg)
	}
	return m, cmd
}

// handleKey processes keyboard input. Platform controls come first.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Quit) {
		return m.quit()
	}
	if m.history != nil {
		return m.updateHistory(msg)
	}

	switch {
	case key.Matches(msg, m.keys.Reset):
		m.reset()
		return m, nil
	case key.Matches(msg, m.keys.Screenshot):
		m.saveScreenshot()
		return m, nil
	case key.Matches(msg, m.keys.History) && m.session == nil:
		return m.openHistory()
	case key.Matches(msg, m.keys.Panel) && m.session == nil:
		return m, m.panel.FocusNext()
	}

	if m.session != nil {
		return m.updatePrompt(msg)
	}
	if m.panel.Focused() {
		return m.updatePanel(msg)
	}

	id := KeyIdentifier(msg)
	res := m.game.HandleKey(id)
	switch {
	case res.OpenSettings():
		return m.openSettings()
	case !res.Handled():
		m.logger.Debug("unbound key", "key", id)
	}
	return m, nil
}

// handleTick runs one loop tick and re-arms the chain. Ticks from a
// cancelled chain are dropped without re-arming.
func (m Model) handleTick(msg TickMsg) (tea.Model, tea.Cmd) {
	res, ok := m.loop.Step(msg.Gen)
	if !ok {
		return m, nil
	}
	if res.Scorer != pong.NoPlayer {
		m.logger.Debug("point scored", "scorer", res.Scorer, "score", m.game.ScoreText())
	}
	return m, tickCmd(m.loop.Delay(), msg.Gen)
}

// restartLoop cancels the live chain and arms a fresh one.
func (m *Model) restartLoop() tea.Cmd {
	m.handle = m.loop.Start()
	return tickCmd(m.loop.Delay(), m.handle.Generation())
}

func (m Model) openSettings() (tea.Model, tea.Cmd) {
	m.session = m.game.OpenSettings()
	m.panel.Blur()
	m.prompt.Reset()
	m.notice = ""
	m.logger.Debug("settings opened")
	return m, m.prompt.Focus()
}

func (m *Model) closeSettings() {
	m.session = nil
	m.prompt.Blur()
	m.prompt.Reset()
	m.logger.Debug("settings closed")
}

func (m Model) updatePrompt(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEnter:
		input := m.prompt.Value()
		m.prompt.Reset()
		res := m.session.Submit(input)
		m.noteSettings(res)
		if res.Closed {
			m.closeSettings()
		}
		return m, nil

	case tea.KeyEsc:
		m.notice = ""
		if res := m.session.Cancel(); res.Closed {
			m.closeSettings()
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.prompt, cmd = m.prompt.Update(msg)
	return m, cmd
}

func (m *Model) noteSettings(res pong.SubmitResult) {
	switch {
	case res.Err != nil:
		m.logger.Warn("settings input rejected", "error", res.Err)
		m.notice = res.Err.Error()
	case res.Applied != "":
		m.logger.Info("settings changed", "change", res.Applied)
		m.notice = res.Applied
		m.panel.Sync(m.game)
	}
}

func (m Model) updatePanel(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEnter:
		change, err := m.panel.Apply(m.game)
		if err != nil {
			m.logger.Warn("panel input rejected", "error", err)
			return m, nil
		}
		if change == "" {
			return m, nil
		}
		m.logger.Info("settings changed", "change", change)
		return m, m.restartLoop()

	case tea.KeyEsc:
		m.panel.Blur()
		m.panel.Sync(m.game)
		return m, nil
	}

	return m, m.panel.Update(msg)
}

func (m Model) openHistory() (tea.Model, tea.Cmd) {
	if m.store == nil {
		m.notice = "match history is unavailable"
		return m, nil
	}
	h := NewHistoryModel(m.store, m.width, m.height)
	m.history = &h
	m.loop.Stop()
	return m, nil
}

func (m Model) updateHistory(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.history.Update(msg)
	h, _ := next.(HistoryModel)

	switch {
	case h.IsQuitting():
		return m.quit()
	case h.IsGoingBack():
		m.history = nil
		return m, m.restartLoop()
	}

	m.history = &h
	return m, cmd
}

func (m Model) quit() (tea.Model, tea.Cmd) {
	m.finishMatch(storage.EndQuit)
	m.loop.Stop()
	m.quitting = true
	return m, tea.Quit
}

// reset ends the current match and zeroes the score.
func (m *Model) reset() {
	m.finishMatch(storage.EndReset)
	m.game.Reset()
	m.matchStart = m.now()
	m.notice = ""
	m.logger.Info("score reset")
}

// finishMatch saves the match if anyone scored. Saving is best-effort.
func (m *Model) finishMatch(reason string) {
	set := m.game.Settings()
	if set.Player1Score+set.Player2Score == 0 || m.store == nil {
		return
	}

	rec, err := m.store.SaveMatch(storage.MatchRecord{
		Player1Score: set.Player1Score,
		Player2Score: set.Player2Score,
		EndReason:    reason,
		Ticks:        m.game.Ticks(),
		StartedAt:    m.matchStart,
		EndedAt:      m.now(),
	})
	if err != nil {
		m.logger.Error("could not save match", "error", err)
		return
	}
	m.logger.Info("match saved", "id", rec.ID, "score", set.ScoreText(), "reason", reason)
}

// saveScreenshot saves the current board to a file.
func (m *Model) saveScreenshot() {
	if m.noShots || m.shotDir == "" {
		m.notice = "screenshots are disabled"
		return
	}

	if err := os.MkdirAll(m.shotDir, 0o755); err != nil {
		m.logger.Warn("could not create screenshot directory", "error", err)
		m.notice = "screenshot failed"
		return
	}

	timestamp := m.now().Format("20060102_150405")
	path := filepath.Join(m.shotDir, fmt.Sprintf("pong_%s.txt", timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("could not save screenshot", "error", err)
		m.notice = "screenshot failed"
		return
	}

	m.notice = "screenshot saved to " + path
	m.logger.Info("screenshot saved", "path", path)
}

var (
	scoreStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("229")).
			Align(lipgloss.Center)
	settingsStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("229")).
			Padding(0, 1).
			Width(panelWidth)
	helpStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if m.history != nil {
		return m.history.View()
	}

	board := lipgloss.JoinVertical(lipgloss.Left,
		scoreStyle.Width(m.screen.Width()).Render(m.score.text),
		RenderScreen(m.screen),
	)

	side := m.panel.View()
	if m.session != nil {
		side = m.settingsView()
	}

	var body string
	if m.width == 0 || m.width >= m.screen.Width()+lipgloss.Width(side)+1 {
		body = lipgloss.JoinHorizontal(lipgloss.Top, board, " ", side)
	} else {
		body = lipgloss.JoinVertical(lipgloss.Left, board, side)
	}

	footer := m.help.View(m.keys)
	if m.notice != "" && m.session == nil {
		footer += "  " + m.notice
	}
	return lipgloss.JoinVertical(lipgloss.Left, body, helpStyle.Render(footer))
}

func (m Model) settingsView() string {
	var b strings.Builder
	b.WriteString(strings.TrimRight(m.session.Prompt(), "\n"))
	b.WriteString("\n")
	b.WriteString(m.prompt.View())
	if m.notice != "" {
		b.WriteString("\n")
		b.WriteString(noticeStyle.Render(m.notice))
	}
	return settingsStyle.Render(b.String())
}

// Game returns the running game.
func (m Model) Game() *pong.Game {
	return m.game
}

// Generation returns the live tick chain's tag.
func (m Model) Generation() uint64 {
	return m.handle.Generation()
}

// Session returns the open settings session, or nil.
func (m Model) Session() *pong.SettingsSession {
	return m.session
}

// Notice returns the last status message.
func (m Model) Notice() string {
	return m.notice
}

// PanelFocused reports whether the side panel has focus.
func (m Model) PanelFocused() bool {
	return m.panel.Focused()
}

// HistoryOpen reports whether the match history is shown.
func (m Model) HistoryOpen() bool {
	return m.history != nil
}

// Quitting reports whether the model asked to quit.
func (m Model) Quitting() bool {
	return m.quitting
}

// Run starts the Bubble Tea program for a local game.
func Run(opts Options) error {
	model, err := NewModel(opts)
	if err != nil {
		return err
	}

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err = p.Run()
	return err
}
