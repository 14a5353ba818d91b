// Command validate_config checks game config YAML files.
//
// Usage:
//
//	go run ./cmd/validate_config data/game.yaml [more.yaml ...]
package main

import (
	"fmt"
	"os"

	"github.com/BurnteToaster/unnamed-galaga-roguelike/pkg/config"
)

func main() {
	paths := os.Args[1:]
	if len(paths) == 0 {
		paths = []string{config.DefaultConfigPath}
	}

	failed := 0
	for _, path := range paths {
		if err := validate(path); err != nil {
			fmt.Printf("FAIL %s: %v\n", path, err)
			failed++
			continue
		}
		fmt.Printf("ok   %s\n", path)
	}

	if failed > 0 {
		fmt.Printf("%d of %d config file(s) invalid\n", failed, len(paths))
		os.Exit(1)
	}
}

func validate(path string) error {
	cfg, err := config.LoadGameConfig(path)
	if err != nil {
		return err
	}
	fmt.Printf("     level=%d enemies=%d curr=%d next=%d seed=%d\n",
		cfg.Wave.Level, cfg.Wave.TotalEnemies, cfg.Wave.Curr, cfg.Wave.Next, cfg.Simulation.Seed)
	return nil
}
