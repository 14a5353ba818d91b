package game

import "github.com/BurnteToaster/unnamed-galaga-roguelike/pkg/utils"

// FrameInput is everything the simulation needs from the outside for one tick.
// The ebiten adapter and the headless runner both fill it.
type FrameInput struct {
	// DeltaTime is the elapsed real time since the last tick, in seconds.
	DeltaTime float64

	FirePressed bool // left mouse button held
	SlowPressed bool // right mouse button held

	// WheelDelta is the vertical mouse-wheel movement of this frame.
	WheelDelta float64

	// PointerMoves are fresh pointer positions in world coordinates, oldest
	// first. Only the last one matters; an empty slice keeps the previous cursor.
	PointerMoves []utils.Vec2

	// Viewport size in world units. Zero keeps the previous size.
	ViewportWidth  float64
	ViewportHeight float64
}

// LastPointer returns the most recent pointer position, if any.
func (in FrameInput) LastPointer() (utils.Vec2, bool) {
	if len(in.PointerMoves) == 0 {
		return utils.Vec2{}, false
	}
	return in.PointerMoves[len(in.PointerMoves)-1], true
}
