// Package app wraps the simulation in an ebiten.Game.
//
// Startup logic lives here rather than in package main so the desktop entry
// point (main.go) and the mobile binding (mobile/mobile.go) share it.
package app

import (
	"fmt"
	"image/color"
	"io"
	"log"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"

	"github.com/BurnteToaster/unnamed-galaga-roguelike/pkg/config"
	"github.com/BurnteToaster/unnamed-galaga-roguelike/pkg/game"
	"github.com/BurnteToaster/unnamed-galaga-roguelike/pkg/scenes"
	"github.com/BurnteToaster/unnamed-galaga-roguelike/pkg/types"
	"github.com/BurnteToaster/unnamed-galaga-roguelike/pkg/utils"
)

// Config is the application startup configuration.
type Config struct {
	// Verbose enables log output.
	Verbose bool
	// ConfigPath is the game config to load; empty means data/game.yaml.
	ConfigPath string
	// Seed overrides simulation.seed when non-zero.
	Seed int64
}

var (
	backgroundColor = color.RGBA{R: 12, G: 12, B: 24, A: 255}
	playerColor     = color.RGBA{R: 80, G: 200, B: 255, A: 255}
	enemyColor      = color.RGBA{R: 240, G: 80, B: 80, A: 255}
	projectileColor = color.RGBA{R: 255, G: 230, B: 120, A: 255}
)

// App implements ebiten.Game around a single GameScene.
type App struct {
	scene    scenes.Scene
	gameCfg  *config.GameConfig
	hudFace  text.Face
	verbose  bool
	paused   bool
	lastTick time.Time

	// logical screen size, set by Layout
	width  int
	height int

	lastCursorX, lastCursorY int
	cursorKnown              bool

	pendingWindowSizeReset   bool
	windowSizeResetCountdown int
}

// NewApp loads the configuration and creates the game scene.
//
// embedded.Init must be called first when ConfigPath points into data/.
func NewApp(cfg Config) (*App, error) {
	if !cfg.Verbose {
		log.SetOutput(io.Discard)
		log.SetFlags(0)
	}

	path := cfg.ConfigPath
	if path == "" {
		path = config.DefaultConfigPath
	}
	gameCfg, err := config.LoadGameConfig(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load game config: %w", err)
	}
	if cfg.Seed != 0 {
		gameCfg.Simulation.Seed = cfg.Seed
	}
	log.Printf("[App] Loaded %s (seed %d, mobile %v)", path, gameCfg.Simulation.Seed, utils.IsMobile())

	scene, err := scenes.NewGameScene(gameCfg, scenes.WithVerbose(cfg.Verbose))
	if err != nil {
		return nil, fmt.Errorf("failed to create game scene: %w", err)
	}

	return &App{
		scene:    scene,
		gameCfg:  gameCfg,
		hudFace:  text.NewGoXFace(basicfont.Face7x13),
		verbose:  cfg.Verbose,
		lastTick: time.Now(),
		width:    int(gameCfg.Viewport.Width),
		height:   int(gameCfg.Viewport.Height),
	}, nil
}

// WindowSize returns the configured window size in pixels.
func (a *App) WindowSize() (int, int) {
	return int(a.gameCfg.Viewport.Width), int(a.gameCfg.Viewport.Height)
}

// Update polls input and runs one simulation tick.
// A scene error stops the game loop.
func (a *App) Update() error {
	now := time.Now()
	deltaTime := now.Sub(a.lastTick).Seconds()
	a.lastTick = now

	a.handleWindowKeys()

	if inpututil.IsKeyJustPressed(ebiten.KeyP) {
		a.paused = !a.paused
		log.Printf("[App] Paused: %v", a.paused)
	}
	if a.paused {
		return nil
	}

	return a.scene.Update(a.pollInput(deltaTime))
}

// pollInput converts ebiten input state to a FrameInput.
func (a *App) pollInput(deltaTime float64) game.FrameInput {
	p, slow := readPointer()
	_, wheelY := ebiten.Wheel()
	in := game.FrameInput{
		DeltaTime:      deltaTime,
		FirePressed:    p.Pressed,
		SlowPressed:    slow,
		WheelDelta:     wheelY,
		ViewportWidth:  float64(a.width),
		ViewportHeight: float64(a.height),
	}

	// a stationary mouse produces no move event; an active touch always does
	if !a.cursorKnown || p.Touching || p.X != a.lastCursorX || p.Y != a.lastCursorY {
		a.lastCursorX, a.lastCursorY, a.cursorKnown = p.X, p.Y, true
		in.PointerMoves = []utils.Vec2{
			utils.ScreenToWorld(float64(p.X), float64(p.Y), float64(a.width), float64(a.height)),
		}
	}
	return in
}

// handleWindowKeys toggles fullscreen with F11.
func (a *App) handleWindowKeys() {
	if utils.IsMobile() {
		return
	}

	// leaving fullscreen needs a few frames before the window size sticks
	if a.pendingWindowSizeReset {
		a.windowSizeResetCountdown--
		if a.windowSizeResetCountdown <= 0 {
			ebiten.SetWindowSize(a.WindowSize())
			a.pendingWindowSizeReset = false
		}
	}

	if !inpututil.IsKeyJustPressed(ebiten.KeyF11) {
		return
	}
	if ebiten.IsFullscreen() {
		ebiten.SetFullscreen(false)
		if ebiten.IsWindowMaximized() || ebiten.IsWindowMinimized() {
			ebiten.RestoreWindow()
		}
		a.pendingWindowSizeReset = true
		a.windowSizeResetCountdown = 3
		log.Printf("[App] Exit fullscreen, will reset window size in 3 frames")
	} else {
		ebiten.SetFullscreen(true)
	}
}

// Draw renders every entity as a flat rectangle and the HUD as text.
func (a *App) Draw(screen *ebiten.Image) {
	screen.Fill(backgroundColor)

	w, h := float64(a.width), float64(a.height)
	for _, v := range a.scene.Snapshot() {
		sx, sy := utils.WorldToScreen(utils.Vec2{X: v.X, Y: v.Y}, w, h)
		vector.DrawFilledRect(screen,
			float32(sx-v.HalfWidth), float32(sy-v.HalfHeight),
			float32(2*v.HalfWidth), float32(2*v.HalfHeight),
			kindColor(v.Kind), false)
	}

	for i, line := range a.scene.HUD().Lines() {
		op := &text.DrawOptions{}
		op.GeoM.Translate(10, float64(10+i*16))
		op.ColorScale.ScaleWithColor(color.White)
		text.Draw(screen, line, a.hudFace, op)
	}
	if a.paused {
		op := &text.DrawOptions{}
		op.GeoM.Translate(w/2-21, h/2)
		op.ColorScale.ScaleWithColor(color.White)
		text.Draw(screen, "PAUSED", a.hudFace, op)
	}
}

func kindColor(kind types.EntityKind) color.Color {
	switch kind {
	case types.KindPlayer:
		return playerColor
	case types.KindEnemy:
		return enemyColor
	case types.KindProjectile:
		return projectileColor
	default:
		return color.White
	}
}

// DrawFinalScreen letterboxes the offscreen image in black when the window
// aspect ratio differs from the logical screen.
func (a *App) DrawFinalScreen(screen ebiten.FinalScreen, offscreen *ebiten.Image, geoM ebiten.GeoM) {
	screen.Fill(color.Black)
	op := &ebiten.DrawImageOptions{}
	op.GeoM = geoM
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(offscreen, op)
}

// Layout keeps the logical screen at the configured size; ebiten scales it to
// the window.
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	a.width, a.height = a.WindowSize()
	return a.width, a.height
}

// IsVerbose reports whether verbose logging is on.
func (a *App) IsVerbose() bool {
	return a.verbose
}
