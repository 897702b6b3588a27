package pong

import (
	"context"
	"time"

	"github.com/vovakirdan/tui-pong/internal/core"
)

// Loop drives the game at a fixed delay. Every Start cancels the previous
// chain, so at most one chain is ever live.
type Loop struct {
	game     *Game
	renderer Renderer
	delay    time.Duration

	gen    uint64 // Generation of the live chain
	active bool
}

// Handle identifies one started chain.
type Handle struct {
	loop *Loop
	gen  uint64
}

// Active reports whether this chain is still the live one.
func (h Handle) Active() bool {
	return h.loop != nil && h.loop.active && h.loop.gen == h.gen
}

// Generation returns the chain's generation tag.
func (h Handle) Generation() uint64 {
	return h.gen
}

// Stop cancels this chain. Stopping a stale handle does nothing.
func (h Handle) Stop() {
	if h.Active() {
		h.loop.active = false
	}
}

// NewLoop creates a loop for the game drawing onto surface (may be nil).
func NewLoop(g *Game, s Surface, delay time.Duration) *Loop {
	if delay <= 0 {
		delay = core.DefaultDelay
	}
	return &Loop{
		game:     g,
		renderer: NewRenderer(s),
		delay:    delay,
	}
}

// Delay returns the fixed delay between ticks.
func (l *Loop) Delay() time.Duration {
	return l.delay
}

// Running reports whether a chain is live.
func (l *Loop) Running() bool {
	return l.active
}

// Start re-rolls the ball direction and arms a fresh chain, cancelling any
// previous one.
func (l *Loop) Start() Handle {
	l.game.Serve()
	l.gen++
	l.active = true
	return Handle{loop: l, gen: l.gen}
}

// Stop cancels the live chain.
func (l *Loop) Stop() {
	l.active = false
}

// Step runs one tick if gen belongs to the live chain. Drivers use it to
// drop ticks that were armed before a restart.
func (l *Loop) Step(gen uint64) (TickResult, bool) {
	if !l.active || gen != l.gen {
		return TickResult{}, false
	}
	return l.Tick(), true
}

// Tick runs one unit of work: clear, paddles, move, ball, collisions.
// While a settings session is open only the drawing happens.
func (l *Loop) Tick() TickResult {
	g := l.game
	suspended := g.settingsOpen

	l.renderer.ClearBoard(g)
	l.renderer.RenderPaddles(g)
	if !suspended {
		g.ticks++
		g.MoveBall()
	}
	l.renderer.RenderBall(g, g.ball.X, g.ball.Y)

	if suspended {
		return TickResult{Suspended: true}
	}
	return g.CheckCollision()
}

// Run drives ticks with a fire-once timer that is re-armed after each tick
// completes, so ticks never overlap. It starts a chain if none is live and
// returns when the chain is stopped or ctx is done. onTick may be nil.
func (l *Loop) Run(ctx context.Context, onTick func(TickResult)) error {
	if !l.active {
		l.Start()
	}

	timer := time.NewTimer(l.delay)
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			l.Stop()
			return ctx.Err()
		case <-timer.C:
			if !l.active {
				return nil
			}
			res := l.Tick()
			if onTick != nil {
				onTick(res)
			}
			if !l.active {
				return nil
			}
			timer.Reset(l.delay)
		}
	}
}

// RunTicks starts a fresh chain and runs it for n ticks, or until ctx is
// done. Zero ticks returns immediately.
func (l *Loop) RunTicks(ctx context.Context, n uint64, onTick func(TickResult)) error {
	if n == 0 {
		return nil
	}

	h := l.Start()
	var count uint64
	return l.Run(ctx, func(res TickResult) {
		count++
		if onTick != nil {
			onTick(res)
		}
		if count >= n {
			h.Stop()
		}
	})
}
