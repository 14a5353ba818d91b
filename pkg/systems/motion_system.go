package systems

import (
	"math"

	"github.com/BurnteToaster/unnamed-galaga-roguelike/pkg/components"
	"github.com/BurnteToaster/unnamed-galaga-roguelike/pkg/ecs"
	"github.com/BurnteToaster/unnamed-galaga-roguelike/pkg/game"
	"github.com/BurnteToaster/unnamed-galaga-roguelike/pkg/types"
	"github.com/BurnteToaster/unnamed-galaga-roguelike/pkg/utils"
)

// MotionSystem moves projectiles and enemies.
//
// Projectiles fly straight:
//
//	pos += dir * speed * deltaTime * timeScale
//
// Enemies weave around their approach direction d while above the descend
// line, then go straight down for good:
//
//	seeking:    disp = d + sin(2π·f·t) · (-d.y, d.x)
//	descending: disp = (0, -1)
//	pos += disp * speed * deltaTime * timeScale
//
// t is the unscaled simulation time, so the weave does not depend on frame rate.
// disp is not normalized; the weave makes the speed vary on purpose.
type MotionSystem struct {
	entityManager *ecs.EntityManager
	gameState     *game.GameState
}

// NewMotionSystem creates a motion system.
func NewMotionSystem(em *ecs.EntityManager, gs *game.GameState) *MotionSystem {
	return &MotionSystem{entityManager: em, gameState: gs}
}

// Update advances all moving entities by one tick.
func (s *MotionSystem) Update(deltaTime float64) error {
	scaled := deltaTime * s.gameState.TimeScale

	for _, id := range ecs.GetEntitiesWith2[*components.ProjectileComponent, *components.TransformComponent](s.entityManager) {
		proj, _ := ecs.GetComponent[*components.ProjectileComponent](s.entityManager, id)
		transform, _ := ecs.GetComponent[*components.TransformComponent](s.entityManager, id)

		step := proj.Direction().Scale(proj.Speed * scaled)
		transform.X += step.X
		transform.Y += step.Y
	}

	descendY := s.gameState.Config.Enemy.DescendY
	weave := math.Sin(2 * math.Pi * s.gameState.Config.Enemy.WeaveFrequency * s.gameState.ElapsedTime)

	for _, id := range ecs.GetEntitiesWith2[*components.EnemyComponent, *components.TransformComponent](s.entityManager) {
		enemy, _ := ecs.GetComponent[*components.EnemyComponent](s.entityManager, id)
		transform, _ := ecs.GetComponent[*components.TransformComponent](s.entityManager, id)

		if enemy.Phase == types.EnemySeeking && transform.Y < descendY {
			enemy.Phase = types.EnemyDescending
		}

		var disp utils.Vec2
		if enemy.Phase == types.EnemyDescending {
			disp = utils.Down
		} else {
			disp = enemy.Direction.Add(enemy.Direction.Perp().Scale(weave))
		}

		step := disp.Scale(enemy.MovementSpeed * scaled)
		transform.X += step.X
		transform.Y += step.Y
	}

	return nil
}
