package window

import (
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Key repeat timing in ticks, close to a desktop keyboard at 100 TPS.
const (
	repeatDelay    = 50
	repeatInterval = 4
)

// KeyIdentifier converts an ebiten key name to the identifier the game
// binds to: letters lower-cased, "Digit1" as "1", "Space" as " ", other
// names ("ArrowUp", "Escape") unchanged.
func KeyIdentifier(name string) string {
	switch {
	case len(name) == 1:
		return strings.ToLower(name)
	case name == "Space":
		return " "
	case strings.HasPrefix(name, "Digit") && len(name) == len("Digit")+1:
		return name[len("Digit"):]
	}
	return name
}

// repeats reports whether a key held for d ticks fires this tick.
func repeats(d int) bool {
	if d == 1 {
		return true
	}
	return d >= repeatDelay && (d-repeatDelay)%repeatInterval == 0
}

// firesInGame applies key repeat to every key.
func firesInGame(_ ebiten.Key, d int) bool {
	return repeats(d)
}

// firesInPrompt lets the prompt controls fire once per press, the same test
// as inpututil.IsKeyJustPressed. Typed text comes from AppendInputChars.
func firesInPrompt(k ebiten.Key, d int) bool {
	switch k {
	case ebiten.KeyEscape, ebiten.KeyEnter, ebiten.KeyNumpadEnter, ebiten.KeyBackspace:
		return d == 1
	}
	return false
}

// pressedKeys appends the held keys that fire this tick.
func pressedKeys(buf []ebiten.Key, fires func(ebiten.Key, int) bool) []ebiten.Key {
	for _, k := range inpututil.AppendPressedKeys(nil) {
		if fires(k, inpututil.KeyPressDuration(k)) {
			buf = append(buf, k)
		}
	}
	return buf
}
