//go:build mobile

// Package mobile is the ebitenmobile binding entry point.
//
// Build with the mobile tag after copying data/ next to this file:
//
//	cp -r data mobile/ && ebitenmobile bind -target android -tags mobile -androidapi 23 -javapkg com.burntetoaster.galaga -o build/android/galaga.aar ./mobile
package mobile

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2/mobile"

	"github.com/BurnteToaster/unnamed-galaga-roguelike/pkg/app"
	"github.com/BurnteToaster/unnamed-galaga-roguelike/pkg/embedded"
)

func init() {
	embedded.Init(dataFS)

	gameApp, err := app.NewApp(app.Config{Verbose: true})
	if err != nil {
		log.Fatalf("failed to start: %v", err)
	}

	mobile.SetGame(gameApp)
}

// Dummy is an exported no-op so ebitenmobile recognises the package.
func Dummy() {}
