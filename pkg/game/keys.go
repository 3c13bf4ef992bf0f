package game

import (
	"github.com/golangdaddy/pulsekart/pkg/input"
	"github.com/hajimehoshi/ebiten/v2"
)

var keyNames = map[ebiten.Key]string{
	ebiten.KeyArrowLeft:  input.ArrowLeft,
	ebiten.KeyArrowRight: input.ArrowRight,
	ebiten.KeyArrowUp:    input.ArrowUp,
	ebiten.KeyArrowDown:  input.ArrowDown,
	ebiten.KeyW:          input.KeyW,
	ebiten.KeyA:          input.KeyA,
	ebiten.KeyS:          input.KeyS,
	ebiten.KeyD:          input.KeyD,
	ebiten.KeyShift:      input.Shift,
	ebiten.KeySpace:      input.Space,
	ebiten.KeyEscape:     input.Escape,
}

// KeySource reads held keys straight from ebiten. Ebiten polls input on
// the same goroutine that calls Update, so no locking is needed.
type KeySource struct{}

func (KeySource) Snapshot() input.Keys {
	held := input.Snapshot{}
	for key, name := range keyNames {
		if ebiten.IsKeyPressed(key) {
			held[name] = true
		}
	}
	return held
}
