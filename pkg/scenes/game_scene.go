package scenes

import (
	"fmt"
	"log"
	"math"

	"github.com/BurnteToaster/unnamed-galaga-roguelike/pkg/components"
	"github.com/BurnteToaster/unnamed-galaga-roguelike/pkg/config"
	"github.com/BurnteToaster/unnamed-galaga-roguelike/pkg/ecs"
	"github.com/BurnteToaster/unnamed-galaga-roguelike/pkg/entities"
	"github.com/BurnteToaster/unnamed-galaga-roguelike/pkg/game"
	"github.com/BurnteToaster/unnamed-galaga-roguelike/pkg/systems"
)

// System is one step of the tick pipeline.
type System interface {
	Update(deltaTime float64) error
}

// Stage is a named pipeline step. When FlushAfter is set, entities destroyed
// by the stage are removed before the next stage runs.
type Stage struct {
	Name       string
	System     System
	FlushAfter bool
}

// GameScene owns one simulation session: the entity store, the simulation
// context and the ordered stage list.
type GameScene struct {
	entityManager *ecs.EntityManager
	gameState     *game.GameState
	stages        []Stage
	playerID      ecs.EntityID

	inputSystem *systems.InputSystem
	waveSystem  *systems.WaveSystem
}

// SceneOption configures a GameScene.
type SceneOption func(*GameScene)

// WithVerbose records per-entity events in the SimLog and logs time-scale
// changes.
func WithVerbose(verbose bool) SceneOption {
	return func(s *GameScene) {
		s.gameState.Log.SetVerbose(verbose)
		s.inputSystem.SetVerbose(verbose)
	}
}

// NewGameScene builds a scene from cfg. cfg is validated first.
//
// Stage order, per tick:
//
//	input -> player movement -> player fire -> motion -> physics -> bounds -> enemy spawn -> wave
//
// Motion runs before physics so collisions use this tick's positions, and
// physics runs before spawn and wave so a clearing kill is seen in the same
// tick.
func NewGameScene(cfg *config.GameConfig, opts ...SceneOption) (*GameScene, error) {
	if cfg == nil {
		return nil, fmt.Errorf("game config cannot be nil")
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid game config: %w", err)
	}

	em := ecs.NewEntityManager()
	gs := game.NewGameState(cfg)

	playerID, err := entities.NewPlayer(em, cfg.Player)
	if err != nil {
		return nil, fmt.Errorf("failed to create player: %w", err)
	}

	s := &GameScene{
		entityManager: em,
		gameState:     gs,
		playerID:      playerID,
		inputSystem:   systems.NewInputSystem(gs),
		waveSystem:    systems.NewWaveSystem(gs),
	}
	s.stages = []Stage{
		{Name: "input", System: s.inputSystem},
		{Name: "player_movement", System: systems.NewPlayerMovementSystem(em, gs)},
		{Name: "player_fire", System: systems.NewPlayerFireSystem(em, gs)},
		{Name: "motion", System: systems.NewMotionSystem(em, gs)},
		{Name: "physics", System: systems.NewPhysicsSystem(em, gs), FlushAfter: true},
		{Name: "bounds", System: systems.NewBoundsSystem(em, gs), FlushAfter: true},
		{Name: "enemy_spawn", System: systems.NewEnemySpawnSystem(em, gs)},
		{Name: "wave", System: s.waveSystem},
	}

	for _, opt := range opts {
		opt(s)
	}

	log.Printf("[GameScene] Level %d: %d enemies, transition delay %.1fs",
		gs.Wave.Level, gs.Wave.TotalEnemies, cfg.Wave.TransitionDelay)
	return s, nil
}

// clampDelta bounds a frame duration to [0, maxDelta]. Non-finite or negative
// durations become 0.
func clampDelta(deltaTime, maxDelta float64) float64 {
	if math.IsNaN(deltaTime) || deltaTime <= 0 {
		return 0
	}
	if deltaTime > maxDelta {
		return maxDelta
	}
	return deltaTime
}

// Update runs one simulation tick.
//
// A stage error aborts the tick; the scene should not be ticked again.
func (s *GameScene) Update(in game.FrameInput) error {
	gs := s.gameState
	deltaTime := clampDelta(in.DeltaTime, gs.Config.Simulation.MaxDeltaTime)

	gs.Input = in
	gs.ElapsedTime += deltaTime

	for _, stage := range s.stages {
		if err := stage.System.Update(deltaTime); err != nil {
			return fmt.Errorf("tick %d, stage %s: %w", gs.Tick, stage.Name, err)
		}
		if stage.FlushAfter {
			s.entityManager.RemoveMarkedEntities()
		}
	}

	s.entityManager.RemoveMarkedEntities()
	gs.Tick++
	return nil
}

// Snapshot returns every live entity in ascending ID order.
func (s *GameScene) Snapshot() []EntityView {
	em := s.entityManager
	ids := ecs.GetEntitiesWith2[*components.KindComponent, *components.TransformComponent](em)
	views := make([]EntityView, 0, len(ids))
	for _, id := range ids {
		kind, _ := ecs.GetComponent[*components.KindComponent](em, id)
		transform, _ := ecs.GetComponent[*components.TransformComponent](em, id)
		view := EntityView{
			ID:       id,
			Kind:     kind.Kind,
			X:        transform.X,
			Y:        transform.Y,
			Rotation: transform.Rotation,
		}
		if col, ok := ecs.GetComponent[*components.CollisionComponent](em, id); ok {
			view.HalfWidth = col.HalfWidth
			view.HalfHeight = col.HalfHeight
		}
		views = append(views, view)
	}
	return views
}

// HUD returns the values for on-screen text.
func (s *GameScene) HUD() HUD {
	gs := s.gameState
	hud := HUD{
		Level:        gs.Wave.Level,
		TotalEnemies: gs.Wave.TotalEnemies,
		TimeScale:    gs.TimeScale,
		Remaining:    gs.Enemies.Curr,
		Kills:        gs.Kills,
		Escaped:      gs.Escaped,
		Phase:        gs.Wave.Phase,
	}
	if player, ok := ecs.GetComponent[*components.PlayerComponent](s.entityManager, s.playerID); ok {
		hud.ShotLimit = player.ShotLimit
		hud.MaxShots = player.MaxShots
	}
	return hud
}

// GameState exposes the simulation context for tests and tools.
func (s *GameScene) GameState() *game.GameState {
	return s.gameState
}

// EntityManager exposes the entity store for tests and tools.
func (s *GameScene) EntityManager() *ecs.EntityManager {
	return s.entityManager
}

// Stages returns the stage names in execution order.
func (s *GameScene) Stages() []string {
	names := make([]string, len(s.stages))
	for i, stage := range s.stages {
		names[i] = stage.Name
	}
	return names
}
