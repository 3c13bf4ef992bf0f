package terminal

import (
	"sync"
	"time"
	"unicode"

	"github.com/gdamore/tcell/v2"
	"github.com/golangdaddy/pulsekart/pkg/input"
	"github.com/golangdaddy/pulsekart/pkg/loop"
)

// HoldFor is how long a key counts as held after its last press event.
// Terminals report presses and auto-repeats but never releases.
const HoldFor = 180 * time.Millisecond

// Latch turns terminal key presses into a held-key set. Events arrive on
// the polling goroutine while the tick goroutine takes snapshots.
type Latch struct {
	mu    sync.Mutex
	clock loop.Clock
	hold  time.Duration
	until map[string]time.Time
}

// NewLatch creates a latch holding keys for hold after each press
func NewLatch(clock loop.Clock, hold time.Duration) *Latch {
	return &Latch{
		clock: clock,
		hold:  hold,
		until: make(map[string]time.Time),
	}
}

// Press records a press of every named key
func (l *Latch) Press(keys ...string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	deadline := l.clock.Now().Add(l.hold)
	for _, k := range keys {
		l.until[k] = deadline
	}
}

// HandleKey maps a tcell key event onto the latch
func (l *Latch) HandleKey(ev *tcell.EventKey) {
	if keys := KeyNames(ev); len(keys) > 0 {
		l.Press(keys...)
	}
}

// Snapshot returns the keys pressed within the hold window and forgets the rest
func (l *Latch) Snapshot() input.Keys {
	l.mu.Lock()
	defer l.mu.Unlock()
	now := l.clock.Now()
	held := make(input.Snapshot, len(l.until))
	for k, deadline := range l.until {
		if now.Before(deadline) {
			held[k] = true
			continue
		}
		delete(l.until, k)
	}
	return held
}

// KeyNames returns the key names an event stands for. An uppercase letter
// also reports Shift, since the terminal folds the modifier into the rune.
func KeyNames(ev *tcell.EventKey) []string {
	var names []string
	if ev.Modifiers()&tcell.ModShift != 0 {
		names = append(names, input.Shift)
	}
	switch ev.Key() {
	case tcell.KeyLeft:
		return append(names, input.ArrowLeft)
	case tcell.KeyRight:
		return append(names, input.ArrowRight)
	case tcell.KeyUp:
		return append(names, input.ArrowUp)
	case tcell.KeyDown:
		return append(names, input.ArrowDown)
	case tcell.KeyEscape:
		return append(names, input.Escape)
	case tcell.KeyRune:
	default:
		return names
	}

	r := ev.Rune()
	switch lower := unicode.ToLower(r); lower {
	case 'w', 'a', 's', 'd':
		if unicode.IsUpper(r) && len(names) == 0 {
			names = append(names, input.Shift)
		}
		return append(names, string(lower))
	case ' ':
		return append(names, input.Space)
	}
	return names
}
