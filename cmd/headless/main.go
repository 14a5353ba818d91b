package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/BurnteToaster/unnamed-galaga-roguelike/pkg/components"
	"github.com/BurnteToaster/unnamed-galaga-roguelike/pkg/config"
	"github.com/BurnteToaster/unnamed-galaga-roguelike/pkg/ecs"
	"github.com/BurnteToaster/unnamed-galaga-roguelike/pkg/game"
	"github.com/BurnteToaster/unnamed-galaga-roguelike/pkg/scenes"
	"github.com/BurnteToaster/unnamed-galaga-roguelike/pkg/types"
	"github.com/BurnteToaster/unnamed-galaga-roguelike/pkg/utils"
)

type runStats struct {
	runIndex int
	seed     int64
	ticks    int

	levelReached int
	kills        int
	escaped      int
	shotsFired   int

	firstSpawnTick  int
	firstKillTick   int
	firstEscapeTick int
	levelsStarted   int
	wavesCleared    int

	err error
}

func main() {
	var runs int
	var ticks int
	var seedBase int64
	var seedStep int64
	var dt float64
	var configPath string
	var verbose bool

	flag.IntVar(&runs, "runs", 5, "number of headless simulation runs")
	flag.IntVar(&ticks, "ticks", 3600, "ticks per run")
	flag.Int64Var(&seedBase, "seed-base", 42, "base RNG seed for run 1")
	flag.Int64Var(&seedStep, "seed-step", 1, "seed increment between runs")
	flag.Float64Var(&dt, "dt", 1.0/60.0, "frame delta in seconds")
	flag.StringVar(&configPath, "config", "", "game config YAML (defaults when empty)")
	flag.BoolVar(&verbose, "verbose", false, "print the simulation log of every run")
	flag.Parse()

	if runs <= 0 {
		fmt.Println("error: -runs must be > 0")
		os.Exit(2)
	}
	if ticks <= 0 {
		fmt.Println("error: -ticks must be > 0")
		os.Exit(2)
	}
	if dt <= 0 {
		fmt.Println("error: -dt must be > 0")
		os.Exit(2)
	}
	if !verbose {
		log.SetOutput(io.Discard)
	}

	base := config.DefaultGameConfig()
	if configPath != "" {
		loaded, err := config.LoadGameConfig(configPath)
		if err != nil {
			fmt.Printf("error: %v\n", err)
			os.Exit(1)
		}
		base = loaded
	}

	fmt.Printf("=== Headless Wave Report ===\n")
	fmt.Printf("runs=%d ticks=%d dt=%.4f seed_base=%d seed_step=%d\n\n", runs, ticks, dt, seedBase, seedStep)

	all := make([]runStats, 0, runs)
	failed := false
	for i := 0; i < runs; i++ {
		cfg := *base
		cfg.Simulation.Seed = seedBase + int64(i)*seedStep
		stats := runAutopilot(i+1, &cfg, ticks, dt, verbose)
		all = append(all, stats)
		printRun(stats)
		if stats.err != nil {
			failed = true
		}
	}

	printAggregate(all)
	if failed {
		os.Exit(1)
	}
}

// runAutopilot plays one run with the scripted pilot and collects stats.
func runAutopilot(runIndex int, cfg *config.GameConfig, ticks int, dt float64, verbose bool) runStats {
	rs := runStats{runIndex: runIndex, seed: cfg.Simulation.Seed}

	scene, err := scenes.NewGameScene(cfg, scenes.WithVerbose(verbose))
	if err != nil {
		rs.err = err
		return rs
	}

	for i := 0; i < ticks; i++ {
		in := pilotInput(scene.Snapshot(), anyDescending(scene.EntityManager()), dt, cfg.Viewport)
		if err := scene.Update(in); err != nil {
			rs.err = err
			break
		}
		rs.ticks++
	}

	gs := scene.GameState()
	entries := gs.Log.Entries()
	rs.levelReached = gs.Wave.Level
	rs.kills = gs.Kills
	rs.escaped = gs.Escaped
	rs.shotsFired = gs.ShotsFired
	rs.firstSpawnTick = firstTick(entries, game.LogCategorySpawn, "enemy_spawned")
	rs.firstKillTick = firstTick(entries, game.LogCategoryCombat, "kill")
	rs.firstEscapeTick = firstTick(entries, game.LogCategoryBounds, "enemy_escaped")
	rs.levelsStarted = gs.Log.Count(game.LogCategoryWave, "level_start")
	rs.wavesCleared = gs.Log.Count(game.LogCategoryWave, "cleared")

	if verbose {
		fmt.Print(gs.Log.Format())
	}
	return rs
}

// pilotInput aims at the lowest enemy, keeps the trigger held and holds
// slow motion while any enemy is descending.
func pilotInput(views []scenes.EntityView, descending bool, dt float64, vp config.ViewportConfig) game.FrameInput {
	in := game.FrameInput{
		DeltaTime:      dt,
		FirePressed:    true,
		SlowPressed:    descending,
		ViewportWidth:  vp.Width,
		ViewportHeight: vp.Height,
	}
	if target, ok := lowestEnemy(views); ok {
		in.PointerMoves = []utils.Vec2{target}
	}
	return in
}

// lowestEnemy returns the position of the enemy closest to the bottom edge.
// Ties keep the lower entity ID.
func lowestEnemy(views []scenes.EntityView) (utils.Vec2, bool) {
	found := false
	var best scenes.EntityView
	for _, v := range views {
		if v.Kind != types.KindEnemy {
			continue
		}
		if !found || v.Y < best.Y {
			best = v
			found = true
		}
	}
	return utils.Vec2{X: best.X, Y: best.Y}, found
}

func anyDescending(em *ecs.EntityManager) bool {
	for _, id := range ecs.GetEntitiesWith1[*components.EnemyComponent](em) {
		enemy, ok := ecs.GetComponent[*components.EnemyComponent](em, id)
		if ok && enemy.Phase == types.EnemyDescending {
			return true
		}
	}
	return false
}

func firstTick(entries []game.SimLogEntry, category, key string) int {
	for _, e := range entries {
		if e.Category == category && e.Key == key {
			return e.Tick
		}
	}
	return -1
}

func printRun(rs runStats) {
	fmt.Printf("--- Run %d (seed=%d) ---\n", rs.runIndex, rs.seed)
	fmt.Printf("ticks=%d level_reached=%d levels_started=%d waves_cleared=%d\n",
		rs.ticks, rs.levelReached, rs.levelsStarted, rs.wavesCleared)
	fmt.Printf("combat: kills=%d escaped=%d shots_fired=%d accuracy=%s\n",
		rs.kills, rs.escaped, rs.shotsFired, accuracyString(rs.kills, rs.shotsFired))
	fmt.Printf("phase_markers: first_spawn=%d first_kill=%d first_escape=%d\n",
		rs.firstSpawnTick, rs.firstKillTick, rs.firstEscapeTick)
	if rs.err != nil {
		fmt.Printf("error: %v\n", rs.err)
	}
	fmt.Println()
}

func printAggregate(all []runStats) {
	totalKills := 0
	totalEscaped := 0
	totalShots := 0
	totalLevel := 0
	maxLevel := 0
	failures := 0

	for _, rs := range all {
		totalKills += rs.kills
		totalEscaped += rs.escaped
		totalShots += rs.shotsFired
		totalLevel += rs.levelReached
		if rs.levelReached > maxLevel {
			maxLevel = rs.levelReached
		}
		if rs.err != nil {
			failures++
		}
	}

	fmt.Println("=== Aggregate ===")
	fmt.Printf("runs=%d failures=%d\n", len(all), failures)
	fmt.Printf("avg_per_run: level=%.1f kills=%.1f escaped=%.1f shots=%.1f\n",
		avg(totalLevel, len(all)), avg(totalKills, len(all)), avg(totalEscaped, len(all)), avg(totalShots, len(all)))
	fmt.Printf("max_level=%d overall_accuracy=%s\n", maxLevel, accuracyString(totalKills, totalShots))
}

func avg(sum int, n int) float64 {
	if n <= 0 {
		return 0
	}
	return float64(sum) / float64(n)
}

func accuracyString(kills, shots int) string {
	if shots == 0 {
		return "n/a"
	}
	return fmt.Sprintf("%.1f%%", float64(kills)/float64(shots)*100)
}
