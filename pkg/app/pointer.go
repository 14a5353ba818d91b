package app

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// pointer is the primary pointer for one frame: the first active touch if any,
// else the mouse.
type pointer struct {
	X, Y     int
	Pressed  bool
	Touching bool
}

// readPointer samples touch first so mobile builds aim and fire with one
// finger. Two or more touches count as the slow-motion gesture.
func readPointer() (p pointer, slow bool) {
	touchIDs := ebiten.AppendTouchIDs(nil)
	if len(touchIDs) > 0 {
		p.X, p.Y = ebiten.TouchPosition(touchIDs[0])
		p.Pressed = true
		p.Touching = true
		return p, len(touchIDs) > 1
	}

	p.X, p.Y = ebiten.CursorPosition()
	p.Pressed = ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
	return p, ebiten.IsMouseButtonPressed(ebiten.MouseButtonRight)
}
