package systems

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/BurnteToaster/unnamed-galaga-roguelike/pkg/components"
	"github.com/BurnteToaster/unnamed-galaga-roguelike/pkg/config"
	"github.com/BurnteToaster/unnamed-galaga-roguelike/pkg/ecs"
	"github.com/BurnteToaster/unnamed-galaga-roguelike/pkg/entities"
	"github.com/BurnteToaster/unnamed-galaga-roguelike/pkg/game"
	"github.com/BurnteToaster/unnamed-galaga-roguelike/pkg/utils"
)

// testWorld bundles what most system tests need.
type testWorld struct {
	em       *ecs.EntityManager
	gs       *game.GameState
	playerID ecs.EntityID
}

// newTestWorld creates an entity manager, a game state from the default
// config (optionally modified) and the player.
func newTestWorld(t *testing.T, modify func(cfg *config.GameConfig)) *testWorld {
	t.Helper()
	cfg := config.DefaultGameConfig()
	if modify != nil {
		modify(cfg)
	}
	require.NoError(t, cfg.Validate())

	em := ecs.NewEntityManager()
	gs := game.NewGameState(cfg)
	playerID, err := entities.NewPlayer(em, cfg.Player)
	require.NoError(t, err)
	return &testWorld{em: em, gs: gs, playerID: playerID}
}

func (w *testWorld) player(t *testing.T) (*components.PlayerComponent, *components.TransformComponent) {
	t.Helper()
	_, player, transform, err := entities.FindPlayer(w.em)
	require.NoError(t, err)
	return player, transform
}

func (w *testWorld) addProjectile(t *testing.T, x, y float64, dir utils.Vec2) ecs.EntityID {
	t.Helper()
	pc := w.gs.Config.Projectile
	id, err := entities.NewProjectile(w.em, entities.ProjectileSpawn{
		Origin:     utils.Vec2{X: x, Y: y},
		Direction:  dir,
		Speed:      pc.Speed,
		HalfWidth:  pc.HalfWidth,
		HalfHeight: pc.HalfHeight,
	})
	require.NoError(t, err)
	return id
}

func (w *testWorld) addEnemy(t *testing.T, x, y float64, health int) ecs.EntityID {
	t.Helper()
	ec := w.gs.Config.Enemy
	id, err := entities.NewEnemy(w.em, entities.EnemySpawn{
		Position:   utils.Vec2{X: x, Y: y},
		Target:     utils.Vec2{X: x, Y: y - 100},
		Speed:      ec.MovementSpeed,
		Health:     health,
		Level:      w.gs.Wave.Level,
		HalfWidth:  ec.HalfWidth,
		HalfHeight: ec.HalfHeight,
	})
	require.NoError(t, err)
	return id
}

func transformOf(t *testing.T, em *ecs.EntityManager, id ecs.EntityID) *components.TransformComponent {
	t.Helper()
	transform, ok := ecs.GetComponent[*components.TransformComponent](em, id)
	require.True(t, ok, "entity %d has no transform", id)
	return transform
}
