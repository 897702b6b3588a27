package pong

import "testing"

func TestHandleKeyMovesPaddles(t *testing.T) {
	tests := []struct {
		name           string
		key            string
		player         PlayerID
		startY         float64
		wantY          float64
		preventDefault bool
	}{
		{"p1 down", "s", Player1, 0, 50, false},
		{"p1 up", "w", Player1, 200, 150, false},
		{"p2 up", "ArrowUp", Player2, 500, 450, true},
		{"p2 down", "ArrowDown", Player2, 100, 150, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			g := newTestGame(t)
			g.paddle(tc.player).Y = tc.startY

			res := g.HandleKey(tc.key)

			if !res.Handled() || res.Player != tc.player {
				t.Errorf("HandleKey(%q) = %+v, expected handled for %v", tc.key, res, tc.player)
			}
			if res.PreventDefault != tc.preventDefault {
				t.Errorf("PreventDefault = %v, expected %v", res.PreventDefault, tc.preventDefault)
			}
			if got := g.Paddle(tc.player).Y; got != tc.wantY {
				t.Errorf("paddle y = %v, expected %v", got, tc.wantY)
			}
		})
	}
}

func TestHandleKeyClampsAtTop(t *testing.T) {
	g := newTestGame(t)

	res := g.HandleKey("w")

	if !res.Handled() {
		t.Fatal("up key should be handled")
	}
	if y := g.Paddle(Player1).Y; y != 0 {
		t.Errorf("paddle 1 y = %v after up at the top, expected 0", y)
	}
}

func TestHandleKeyClampsPartialStep(t *testing.T) {
	g := newTestGame(t)
	g.paddles[0].Y = 30

	g.HandleKey("w")
	if y := g.Paddle(Player1).Y; y != 0 {
		t.Errorf("paddle 1 y = %v, expected clamp to 0", y)
	}

	g.paddles[1].Y = 480
	g.HandleKey("ArrowDown")
	if y := g.Paddle(Player2).Y; y != 500 {
		t.Errorf("paddle 2 y = %v, expected clamp to 500", y)
	}
}

func TestPaddleClampInvariant(t *testing.T) {
	g := newTestGame(t)
	g.set.PaddleSpeed = 37
	keys := []string{"w", "s", "ArrowUp", "ArrowDown"}
	maxY := g.Field().H - g.Paddle(Player1).Height

	// Deterministic pseudo-random key sequence
	seq := uint32(7)
	for i := range 2000 {
		seq = seq*1103515245 + 12345
		g.HandleKey(keys[seq>>16%4])

		for _, id := range []PlayerID{Player1, Player2} {
			y := g.Paddle(id).Y
			if y < 0 || y > maxY {
				t.Fatalf("step %d: %v y = %v outside [0, %v]", i, id, y, maxY)
			}
		}
	}
}

func TestHandleKeyOpenSettings(t *testing.T) {
	g := newTestGame(t)

	res := g.HandleKey("Escape")

	if !res.OpenSettings() {
		t.Errorf("HandleKey(Escape) = %+v, expected OpenSettings", res)
	}
	if res.PreventDefault {
		t.Error("settings key should not suppress default handling")
	}
}

func TestHandleKeyUnknown(t *testing.T) {
	g := newTestGame(t)
	before := g.Paddle(Player1)

	res := g.HandleKey("x")

	if res.Handled() {
		t.Errorf("HandleKey(x) = %+v, expected no effect", res)
	}
	if g.Paddle(Player1) != before {
		t.Error("unknown key moved a paddle")
	}
}

func TestHandleKeyIsCaseSensitive(t *testing.T) {
	g := newTestGame(t)
	g.paddles[0].Y = 200

	if res := g.HandleKey("W"); res.Handled() {
		t.Error("\"W\" should not match the \"w\" binding")
	}
}

func TestHandleKeyAfterRebind(t *testing.T) {
	g := newTestGame(t)
	if err := g.SetKeys(Player1, "i", "k"); err != nil {
		t.Fatalf("SetKeys() failed: %v", err)
	}

	if res := g.HandleKey("w"); res.Handled() {
		t.Error("old binding should no longer move paddle 1")
	}
	if res := g.HandleKey("k"); res.Player != Player1 || res.Action != ActionDown {
		t.Errorf("HandleKey(k) = %+v, expected player 1 down", res)
	}
}

func TestActionString(t *testing.T) {
	tests := map[Action]string{
		ActionNone:         "None",
		ActionUp:           "Up",
		ActionDown:         "Down",
		ActionOpenSettings: "OpenSettings",
		Action(99):         "Unknown",
	}
	for a, want := range tests {
		if a.String() != want {
			t.Errorf("Action(%d).String() = %q, expected %q", int(a), a.String(), want)
		}
	}
}
