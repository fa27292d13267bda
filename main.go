package main

import (
	"flag"
	"image"
	"log"

	"github.com/automoto/starlane/config"
	"github.com/automoto/starlane/fonts"
	"github.com/automoto/starlane/scenes"
	"github.com/automoto/starlane/systems"
	"github.com/hajimehoshi/ebiten/v2"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
)

type Scene interface {
	Update()
	Draw(screen *ebiten.Image)
}

type Game struct {
	bounds image.Rectangle
	scene  Scene
}

// ChangeScene switches to a new scene
func (g *Game) ChangeScene(scene interface{}) {
	g.scene = scene.(Scene)
}

func loadFonts() error {
	return fonts.LoadAll(
		fonts.Spec{Name: fonts.HUD, TTF: goregular.TTF, Size: config.HUD.FontSize},
		fonts.Spec{Name: fonts.HUDSmall, TTF: goregular.TTF, Size: config.HUD.SmallSize},
		fonts.Spec{Name: fonts.Menu, TTF: gobold.TTF, Size: config.HUD.MenuSize},
		fonts.Spec{Name: fonts.Title, TTF: gobold.TTF, Size: config.HUD.TitleSize},
	)
}

func NewGame() *Game {
	g := &Game{
		bounds: image.Rectangle{},
	}

	if config.Debug.SkipMenu {
		g.scene = scenes.NewWorldScene(g, config.Debug.StartLevel)
	} else {
		g.scene = scenes.NewMenuScene(g)
	}

	return g
}

func (g *Game) Update() error {
	g.scene.Update()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	g.bounds = image.Rect(0, 0, config.C.Width, config.C.Height)
	return config.C.Width, config.C.Height
}

func main() {
	flag.BoolVar(&config.Debug.SkipMenu, "skip-menu", false, "Start the campaign without the main menu")
	flag.IntVar(&config.Debug.StartLevel, "level", config.Wave.StartLevel, "Level to start from with -skip-menu")
	flag.StringVar(&config.Debug.LevelsDir, "levels", "", "Read NNN.json level files from this directory instead of the built-in campaign")
	flag.BoolVar(&config.Debug.DrawHitbox, "hitbox", false, "Outline collision boxes")
	flag.BoolVar(&config.Debug.Overlay, "debug", false, "Show frame and wave stats")
	flag.BoolVar(&config.Debug.GodMode, "god", false, "Player takes no damage")
	flag.BoolVar(&config.Debug.Mute, "mute", false, "Disable sound effects")
	flag.Int64Var(&config.Wave.Seed, "seed", 0, "Random seed (0 = from the clock)")
	flag.Parse()

	if err := loadFonts(); err != nil {
		log.Fatalf("Failed to load fonts: %v", err)
	}

	ebiten.SetWindowSize(config.C.Width, config.C.Height)
	ebiten.SetWindowTitle("Starlane")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeOnlyFullscreenEnabled)
	ebiten.SetTPS(config.C.TPS)

	if err := systems.InitPersistence(); err != nil {
		log.Printf("Warning: Could not initialize persistence: %v", err)
	}

	if config.Debug.Mute {
		systems.SetSFXVolume(0)
	} else {
		systems.PreloadAllSFX()
	}

	if err := ebiten.RunGame(NewGame()); err != nil {
		log.Fatal(err)
	}
}
