package main

import (
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/BurnteToaster/unnamed-galaga-roguelike/pkg/app"
	"github.com/BurnteToaster/unnamed-galaga-roguelike/pkg/config"
	"github.com/BurnteToaster/unnamed-galaga-roguelike/pkg/embedded"
)

func main() {
	verbose := flag.Bool("verbose", false, "enable log output")
	configPath := flag.String("config", config.DefaultConfigPath, "game config YAML (data/ paths are embedded)")
	seed := flag.Int64("seed", 0, "override the spawn RNG seed (0 keeps the config value)")
	flag.Parse()

	embedded.Init(dataFS)

	gameApp, err := app.NewApp(app.Config{
		Verbose:    *verbose,
		ConfigPath: *configPath,
		Seed:       *seed,
	})
	if err != nil {
		log.Fatalf("failed to start: %v", err)
	}

	ebiten.SetWindowSize(gameApp.WindowSize())
	ebiten.SetWindowTitle("Unnamed Galaga Roguelike")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGame(gameApp); err != nil {
		log.Fatalf("game stopped: %v", err)
	}
}
