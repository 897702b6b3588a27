package pong

import "testing"

func TestMoveBall(t *testing.T) {
	tests := []struct {
		name       string
		speed      float64
		xDir, yDir int
		wantX      float64
		wantY      float64
	}{
		{"down-right", 1, 1, 1, 401, 301},
		{"up-left", 1, -1, -1, 399, 299},
		{"fast", 7.5, 1, -1, 407.5, 292.5},
		{"stopped", 0, -1, 1, 400, 300},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			g := newTestGame(t)
			g.ball.Speed = tc.speed
			g.ball.XDir, g.ball.YDir = tc.xDir, tc.yDir

			g.MoveBall()

			if g.ball.X != tc.wantX || g.ball.Y != tc.wantY {
				t.Errorf("MoveBall() = (%v, %v), expected (%v, %v)", g.ball.X, g.ball.Y, tc.wantX, tc.wantY)
			}
		})
	}
}

func TestWallBounce(t *testing.T) {
	tests := []struct {
		name     string
		y        float64
		yDir     int
		flipped  bool
		wantYDir int
	}{
		{"top edge", 0, -1, true, 1},
		{"past top", -0.5, -1, true, 1},
		{"bottom edge", 600, 1, true, -1},
		{"past bottom", 601, 1, true, -1},
		{"inside", 300, 1, false, 1},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			g := newTestGame(t)
			g.ball.X = 400
			g.ball.Y = tc.y
			g.ball.YDir = tc.yDir

			res := g.CheckCollision()

			if res.WallBounce != tc.flipped {
				t.Errorf("WallBounce = %v, expected %v", res.WallBounce, tc.flipped)
			}
			if g.ball.YDir != tc.wantYDir {
				t.Errorf("YDir = %d, expected %d", g.ball.YDir, tc.wantYDir)
			}
			if g.ball.Y != tc.y {
				t.Errorf("CheckCollision() moved the ball to y=%v, position must not be clamped", g.ball.Y)
			}
		})
	}
}

func TestPaddleBounce(t *testing.T) {
	tests := []struct {
		name    string
		x, y    float64
		xDir    int
		bounced bool
	}{
		// Paddle 1 spans x 0..25, y 0..100
		{"left paddle edge contact", 37.5, 50, -1, true},
		{"left paddle top inclusive", 30, 0, -1, true},
		{"left paddle bottom inclusive", 30, 100, -1, true},
		{"left paddle missed below", 30, 100.5, -1, false},
		{"left not yet touching", 38, 50, -1, false},
		// Paddle 2 spans x 775..800, y 500..600
		{"right paddle edge contact", 762.5, 550, 1, true},
		{"right paddle missed above", 770, 499, 1, false},
		{"centre of field", 400, 300, 1, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			g := newTestGame(t)
			g.ball.X, g.ball.Y = tc.x, tc.y
			g.ball.XDir = tc.xDir

			res := g.CheckCollision()

			if res.PaddleBounce != tc.bounced {
				t.Errorf("PaddleBounce = %v, expected %v", res.PaddleBounce, tc.bounced)
			}
			want := tc.xDir
			if tc.bounced {
				want = -tc.xDir
			}
			if g.ball.XDir != want {
				t.Errorf("XDir = %d, expected %d", g.ball.XDir, want)
			}
			if tc.bounced && res.Scorer != NoPlayer {
				t.Errorf("bounce tick also scored for %v", res.Scorer)
			}
		})
	}
}

func TestPaddleBounceIgnoresRadiusVertically(t *testing.T) {
	g := newTestGame(t)
	// Centre is just below the paddle; the ball's top would overlap it,
	// but only the centre is tested.
	g.ball.X, g.ball.Y = 30, 105
	g.ball.XDir = -1

	if res := g.CheckCollision(); res.PaddleBounce {
		t.Error("ball centre outside the paddle span should not bounce")
	}
}

func TestScoring(t *testing.T) {
	tests := []struct {
		name   string
		x      float64
		scorer PlayerID
		p1, p2 int
	}{
		{"left edge scores player 2", 0, Player2, 0, 1},
		{"past left scores player 2", -3, Player2, 0, 1},
		{"right edge scores player 1", 800, Player1, 1, 0},
		{"past right scores player 1", 805, Player1, 1, 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			g := newTestGame(t)
			d := &recordingDisplay{}
			g.SetScoreDisplay(d)
			// Vertically clear of both paddles
			g.ball.X, g.ball.Y = tc.x, 300

			res := g.CheckCollision()

			if res.Scorer != tc.scorer {
				t.Errorf("Scorer = %v, expected %v", res.Scorer, tc.scorer)
			}
			s := g.Settings()
			if s.Player1Score != tc.p1 || s.Player2Score != tc.p2 {
				t.Errorf("scores = %d/%d, expected %d/%d", s.Player1Score, s.Player2Score, tc.p1, tc.p2)
			}
			if g.ball.X != 400 || g.ball.Y != 300 {
				t.Errorf("ball at (%v, %v) after score, expected (400, 300)", g.ball.X, g.ball.Y)
			}
			if d.last() != g.ScoreText() {
				t.Errorf("display = %q, expected %q", d.last(), g.ScoreText())
			}
		})
	}
}

func TestScoreScenario(t *testing.T) {
	tests := []struct {
		name  string
		x     float64
		speed float64
	}{
		{"one pixel from the edge", 1, 1},
		{"five pixels at speed five", 5, 5},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			g := newTestGame(t)
			loop := NewLoop(g, nil, 0)
			loop.Start()
			g.ball.X, g.ball.Y = tc.x, 300
			g.ball.XDir, g.ball.YDir = -1, 1
			g.ball.Speed = tc.speed

			res := loop.Tick()

			if res.Scorer != Player2 {
				t.Fatalf("Scorer = %v, expected player 2", res.Scorer)
			}
			if g.Settings().Player2Score != 1 {
				t.Errorf("player 2 score = %d, expected 1", g.Settings().Player2Score)
			}
			if g.ball.X != 400 || g.ball.Y != 300 {
				t.Errorf("ball at (%v, %v), expected (400, 300)", g.ball.X, g.ball.Y)
			}
		})
	}
}

func TestNoScoreJustInsideEdge(t *testing.T) {
	g := newTestGame(t)
	loop := NewLoop(g, nil, 0)
	loop.Start()
	g.ball.X, g.ball.Y = 5, 300
	g.ball.XDir, g.ball.YDir = -1, 1
	g.ball.Speed = 1

	if res := loop.Tick(); res.Scorer != NoPlayer {
		t.Errorf("ball at x=4 scored for %v", res.Scorer)
	}
}

func TestWallAndScoreSameTick(t *testing.T) {
	g := newTestGame(t)
	// Corner: below the bottom wall and past the right edge, clear of paddle 2
	g.paddles[1].Y = 0
	g.ball.X, g.ball.Y = 801, 601
	g.ball.YDir = 1

	res := g.CheckCollision()

	if !res.WallBounce || res.Scorer != Player1 {
		t.Errorf("CheckCollision() = %+v, expected wall bounce and player 1 score", res)
	}
}
