// Package window runs the Pong game in a desktop window through ebiten.
// There is no side panel; settings use the same text menu as the terminal,
// drawn over the board.
package window

import (
	"image/color"
	"io"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/vovakirdan/tui-pong/internal/config"
	"github.com/vovakirdan/tui-pong/internal/core"
	"github.com/vovakirdan/tui-pong/internal/pong"
	"github.com/vovakirdan/tui-pong/internal/storage"
)

// Height of the strip under the board holding the score and hints.
const hudHeight = 40

// Debug font metrics used to lay out text.
const (
	lineHeight = 16
	charWidth  = 6
)

var overlayColor = color.RGBA{0, 0, 0, 190}

// Options configures a window game.
type Options struct {
	Config  config.PongConfig
	Runtime core.RuntimeConfig
	Store   *storage.Store // nil disables match history
	Logger  *log.Logger    // nil discards log output
}

// Game adapts a pong game to ebiten.Game. Each Update is one loop tick.
type Game struct {
	game     *pong.Game
	loop     *pong.Loop
	handle   pong.Handle
	renderer pong.Renderer
	surface  *imageSurface

	store  *storage.Store
	logger *log.Logger

	session *pong.SettingsSession
	input   []rune
	notice  string
	score   string

	keys       []ebiten.Key
	chars      []rune
	matchStart time.Time
}

// SetScore implements pong.ScoreDisplay.
func (w *Game) SetScore(text string) {
	w.score = text
}

// New creates the window game.
func New(opts Options) (*Game, error) {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	game, err := pong.New(opts.Config, opts.Runtime)
	if err != nil {
		return nil, err
	}

	delay := opts.Runtime.Delay
	if delay <= 0 {
		delay = opts.Config.Delay()
	}

	surface := &imageSurface{}
	w := &Game{
		game:       game,
		loop:       pong.NewLoop(game, nil, delay),
		renderer:   pong.NewRenderer(surface),
		surface:    surface,
		store:      opts.Store,
		logger:     logger,
		matchStart: time.Now(),
	}
	game.SetScoreDisplay(w)
	w.handle = w.loop.Start()
	return w, nil
}

// Update handles input and advances the game by one tick.
func (w *Game) Update() error {
	if ebiten.IsWindowBeingClosed() {
		w.finishMatch(storage.EndQuit)
		w.loop.Stop()
		return ebiten.Termination
	}

	if w.session != nil {
		w.keys = pressedKeys(w.keys[:0], firesInPrompt)
		w.updatePrompt()
	} else {
		w.keys = pressedKeys(w.keys[:0], firesInGame)
		w.updateKeys()
	}

	res, ok := w.loop.Step(w.handle.Generation())
	if ok && res.Scorer != pong.NoPlayer {
		w.logger.Debug("point scored", "scorer", res.Scorer, "score", w.game.ScoreText())
	}
	return nil
}

func (w *Game) updateKeys() {
	for _, k := range w.keys {
		// Platform control
		if k == ebiten.KeyF5 {
			w.reset()
			continue
		}
		if res := w.game.HandleKey(KeyIdentifier(k.String())); res.OpenSettings() {
			w.session = w.game.OpenSettings()
			w.input = w.input[:0]
			w.notice = ""
			return
		}
	}
}

func (w *Game) updatePrompt() {
	w.chars = ebiten.AppendInputChars(w.chars[:0])
	w.input = append(w.input, w.chars...)

	for _, k := range w.keys {
		switch k {
		case ebiten.KeyBackspace:
			if len(w.input) > 0 {
				w.input = w.input[:len(w.input)-1]
			}
		case ebiten.KeyEnter, ebiten.KeyNumpadEnter:
			w.submit(string(w.input))
			w.input = w.input[:0]
		case ebiten.KeyEscape:
			w.notice = ""
			w.input = w.input[:0]
			if res := w.session.Cancel(); res.Closed {
				w.session = nil
			}
		}
		if w.session == nil {
			return
		}
	}
}

func (w *Game) submit(input string) {
	res := w.session.Submit(input)
	switch {
	case res.Err != nil:
		w.logger.Warn("settings input rejected", "error", res.Err)
		w.notice = res.Err.Error()
	case res.Applied != "":
		w.logger.Info("settings changed", "change", res.Applied)
		w.notice = res.Applied
	}
	if res.Closed {
		w.session = nil
	}
}

func (w *Game) reset() {
	w.finishMatch(storage.EndReset)
	w.game.Reset()
	w.matchStart = time.Now()
	w.logger.Info("score reset")
}

// finishMatch saves the match if anyone scored.
func (w *Game) finishMatch(reason string) {
	set := w.game.Settings()
	if set.Player1Score+set.Player2Score == 0 || w.store == nil {
		return
	}
	rec, err := w.store.SaveMatch(storage.MatchRecord{
		Player1Score: set.Player1Score,
		Player2Score: set.Player2Score,
		EndReason:    reason,
		Ticks:        w.game.Ticks(),
		StartedAt:    w.matchStart,
		EndedAt:      time.Now(),
	})
	if err != nil {
		w.logger.Error("could not save match", "error", err)
		return
	}
	w.logger.Info("match saved", "id", rec.ID, "score", set.ScoreText(), "reason", reason)
}

// Draw renders the board, the score strip and the settings overlay.
func (w *Game) Draw(screen *ebiten.Image) {
	w.surface.dst = screen
	w.renderer.Draw(w.game)

	f := w.game.Field()
	fh := int(f.H)
	ebitenutil.DebugPrintAt(screen, w.score, int(f.W)/2-len(w.score)*charWidth/2, fh+4)
	ebitenutil.DebugPrintAt(screen, "F5 reset score   "+w.game.Settings().OpenSettingsKey+" settings", 8, fh+4+lineHeight)

	if w.session != nil {
		w.drawSettings(screen)
	}
}

func (w *Game) drawSettings(screen *ebiten.Image) {
	f := w.game.Field()
	lines := strings.Split(strings.TrimRight(w.session.Prompt(), "\n"), "\n")
	lines = append(lines, "> "+string(w.input)+"_")
	if w.notice != "" {
		lines = append(lines, "", w.notice)
	}

	width := 0
	for _, l := range lines {
		width = max(width, utf8.RuneCountInString(l))
	}
	boxW := float32(width*charWidth + 24)
	boxH := float32(len(lines)*lineHeight + 16)
	x := (float32(f.W) - boxW) / 2
	y := (float32(f.H) - boxH) / 2

	vector.DrawFilledRect(screen, x, y, boxW, boxH, overlayColor, false)
	for i, l := range lines {
		ebitenutil.DebugPrintAt(screen, l, int(x)+12, int(y)+8+i*lineHeight)
	}
}

// Layout fixes the logical screen to the playfield plus the score strip.
func (w *Game) Layout(_, _ int) (int, int) {
	f := w.game.Field()
	return int(f.W), int(f.H) + hudHeight
}

// Run opens the window and blocks until it is closed.
func Run(opts Options) error {
	w, err := New(opts)
	if err != nil {
		return err
	}

	f := w.game.Field()
	ebiten.SetWindowSize(int(f.W), int(f.H)+hudHeight)
	ebiten.SetWindowTitle("Pong")
	ebiten.SetTPS(core.RuntimeConfig{Delay: w.loop.Delay()}.TicksPerSecond())
	ebiten.SetWindowClosingHandled(true)

	return ebiten.RunGame(w)
}
