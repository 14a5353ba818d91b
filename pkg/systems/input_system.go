package systems

import (
	"log"

	"github.com/BurnteToaster/unnamed-galaga-roguelike/pkg/game"
)

// InputSystem applies the frame input to the simulation context: viewport
// size, cursor position and the time scale.
//
// The time scale is recomputed from scratch every tick, so it can jump
// between the normal and slow values from one frame to the next.
type InputSystem struct {
	gameState *game.GameState
	verbose   bool
}

// NewInputSystem creates an input system.
func NewInputSystem(gs *game.GameState) *InputSystem {
	return &InputSystem{gameState: gs}
}

// SetVerbose enables logging of time-scale changes.
func (s *InputSystem) SetVerbose(verbose bool) {
	s.verbose = verbose
}

// Update copies the current frame input into the game state.
func (s *InputSystem) Update(deltaTime float64) error {
	gs := s.gameState
	in := gs.Input

	if in.ViewportWidth > 0 {
		gs.ViewportWidth = in.ViewportWidth
	}
	if in.ViewportHeight > 0 {
		gs.ViewportHeight = in.ViewportHeight
	}

	if p, ok := in.LastPointer(); ok && p.IsFinite() {
		gs.Cursor = p
	}

	scale := gs.Config.TimeScale.Normal
	if in.SlowPressed {
		scale = gs.Config.TimeScale.Slow
	}
	if scale != gs.TimeScale && s.verbose {
		log.Printf("[InputSystem] Time scale %.2f -> %.2f", gs.TimeScale, scale)
	}
	gs.TimeScale = scale

	return nil
}
