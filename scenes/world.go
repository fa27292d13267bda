package scenes

import (
	"image/color"
	"log"
	"math/rand"
	"sync"
	"time"

	"github.com/automoto/starlane/assets"
	cfg "github.com/automoto/starlane/config"
	"github.com/automoto/starlane/formation"
	"github.com/automoto/starlane/gamemath"
	"github.com/automoto/starlane/systems"
	"github.com/automoto/starlane/systems/factory"
	"github.com/automoto/starlane/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// Frames the finished run stays on screen before the game over scene.
const runOverFrames = 90

type WorldScene struct {
	ecs          *ecs.ECS
	sceneChanger SceneChanger
	startLevel   int
	overFrames   int
	canvas       *ebiten.Image // World layer, drawn with the shake offset
	once         sync.Once
}

// NewWorldScene creates a campaign starting at the given level.
func NewWorldScene(sc SceneChanger, startLevel int) *WorldScene {
	return &WorldScene{sceneChanger: sc, startLevel: startLevel}
}

func (ws *WorldScene) Update() {
	ws.once.Do(ws.configure)
	ws.ecs.Update()

	if systems.GetOrCreatePause(ws.ecs).QuitToMenu {
		ws.sceneChanger.ChangeScene(NewMenuScene(ws.sceneChanger))
		return
	}

	if !systems.IsRunOver(ws.ecs) {
		return
	}
	ws.overFrames++
	_, playerAlive := tags.Player.First(ws.ecs.World)
	if playerAlive && ws.overFrames < runOverFrames {
		return
	}

	result := systems.CampaignResult(ws.ecs)
	_ = systems.SaveGameProgress(result.Level, result.HighScore)
	ws.sceneChanger.ChangeScene(NewGameOverScene(ws.sceneChanger, result))
}

func (ws *WorldScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if ws.ecs == nil {
		return
	}
	if ws.canvas == nil {
		ws.canvas = ebiten.NewImage(cfg.C.Width, cfg.C.Height)
	}
	ws.canvas.Clear()
	ws.ecs.Draw(ws.canvas)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(systems.CameraOffset(ws.ecs))
	screen.DrawImage(ws.canvas, op)
}

func (ws *WorldScene) configure() {
	ecs := ecs.NewECS(donburi.NewWorld())

	// Systems that always run
	ecs.AddSystem(systems.UpdateAudio)
	ecs.AddSystem(systems.UpdateInput)
	ecs.AddSystem(systems.UpdatePause)

	// Game systems wrapped with pause and run-over checks
	ecs.AddSystem(systems.WithGameplayChecks(systems.UpdatePlayer))
	ecs.AddSystem(systems.WithGameplayChecks(systems.UpdateCampaign))
	ecs.AddSystem(systems.WithGameplayChecks(systems.UpdateAliens))
	ecs.AddSystem(systems.WithGameplayChecks(systems.UpdateBullets))
	ecs.AddSystem(systems.WithGameplayChecks(systems.UpdateBonuses))
	ecs.AddSystem(systems.WithGameplayChecks(systems.UpdateObjects))
	ecs.AddSystem(systems.WithGameplayChecks(systems.UpdateCollisions))
	ecs.AddSystem(systems.WithGameplayChecks(systems.UpdateScore))

	// Background and explosions keep playing after the run ends
	ecs.AddSystem(systems.WithPauseCheck(systems.UpdateStars))
	ecs.AddSystem(systems.WithPauseCheck(systems.UpdateBanner))
	ecs.AddSystem(systems.WithPauseCheck(systems.UpdateDeaths))
	ecs.AddSystem(systems.WithPauseCheck(systems.UpdateEffects))
	ecs.AddSystem(systems.WithPauseCheck(systems.UpdateCamera))

	// Add renderers
	ecs.AddRenderer(cfg.Default, systems.DrawBackground)
	ecs.AddRenderer(cfg.Default, systems.DrawBonuses)
	ecs.AddRenderer(cfg.Default, systems.DrawAliens)
	ecs.AddRenderer(cfg.Default, systems.DrawBullets)
	ecs.AddRenderer(cfg.Default, systems.DrawPlayer)
	ecs.AddRenderer(cfg.Default, systems.DrawEffects)
	ecs.AddRenderer(cfg.Default, systems.DrawDebug)
	ecs.AddRenderer(cfg.Default, systems.DrawHUD)
	ecs.AddRenderer(cfg.Default, systems.DrawBanner)
	ecs.AddRenderer(cfg.Default, systems.DrawPause)

	ws.ecs = ecs

	seed := cfg.Wave.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	factory.CreateSpace(ws.ecs, cfg.C.Width, cfg.C.Height, 16, 16)
	factory.CreateCamera(ws.ecs)
	factory.CreateStarfield(ws.ecs, rng)
	factory.CreatePlayer(ws.ecs)

	layout := loadLayout()
	if _, err := systems.NewCampaign(ws.ecs, systems.CampaignOptions{
		Levels:     assets.Levels(cfg.Debug.LevelsDir),
		Layout:     &layout,
		StartLevel: ws.startLevel,
		HighScore:  systems.HighScore(),
		Rand:       rng,
	}); err != nil {
		log.Printf("Warning: Could not start campaign: %v", err)
	}
}

// loadLayout reads entry anchors and the play area from the arena map,
// keeping the built-in values for anything the map leaves out.
func loadLayout() formation.Layout {
	arena, err := assets.Arena(cfg.Wave.ArenaPath)
	if err != nil {
		log.Printf("Warning: %v, using default layout", err)
		return formation.DefaultLayout()
	}
	if arena.PlayLeft != nil && arena.PlayRight != nil {
		area := gamemath.PlayArea{Left: *arena.PlayLeft, Right: *arena.PlayRight}
		if area.Valid() {
			cfg.PlayArea = area
		}
	}
	return formation.LayoutFromArena(arena)
}
