package pong

// TickResult reports what happened during one physics step.
type TickResult struct {
	WallBounce   bool
	PaddleBounce bool
	Scorer       PlayerID // NoPlayer if nobody scored
	Suspended    bool     // Physics skipped while settings are open
}

// MoveBall advances the ball one fixed step: position += speed * direction.
func (g *Game) MoveBall() {
	g.ball.X += g.ball.Speed * float64(g.ball.XDir)
	g.ball.Y += g.ball.Speed * float64(g.ball.YDir)
}

// CheckCollision evaluates walls, paddles and scoring on the post-move
// position. The three checks are independent and all run every tick.
func (g *Game) CheckCollision() TickResult {
	var res TickResult
	b := &g.ball

	// Top and bottom walls. Position is not clamped, the ball may overshoot
	// by up to one step.
	if b.Y <= 0 || b.Y >= g.field.H {
		b.YDir = -b.YDir
		res.WallBounce = true
	}

	// Paddles. Only the ball centre is tested against the paddle's span.
	p1, p2 := g.paddles[0].Rect(), g.paddles[1].Rect()
	hitLeft := b.X-b.Radius <= p1.Right() && p1.SpansY(b.Y)
	hitRight := b.X+b.Radius >= p2.X && p2.SpansY(b.Y)
	if hitLeft || hitRight {
		b.XDir = -b.XDir
		res.PaddleBounce = true
	}

	// Scoring
	switch {
	case b.X <= 0:
		res.Scorer = Player2
	case b.X >= g.field.W:
		res.Scorer = Player1
	}
	if res.Scorer != NoPlayer {
		g.addPoint(res.Scorer)
		g.ResetBall()
	}

	return res
}

// addPoint increments the scorer's counter and refreshes the display.
func (g *Game) addPoint(id PlayerID) {
	if id == Player1 {
		g.set.Player1Score++
	} else {
		g.set.Player2Score++
	}
	g.refreshScore()
}
