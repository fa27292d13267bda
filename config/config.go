package config

import (
	"image/color"
	"time"

	"github.com/automoto/starlane/gamemath"
	"github.com/yohamta/donburi/ecs"
)

// Default is the only render layer.
const Default ecs.LayerID = 0

// Config holds general game configuration
type Config struct {
	Width  int
	Height int
	TPS    int
}

// WaveConfig controls group sequencing and where levels are read from
type WaveConfig struct {
	InterGroupDelay time.Duration
	LevelTransition time.Duration
	ArenaPath       string
	StartLevel      int
	Seed            int64 // 0 = seed from the clock
}

// AlienCategoryConfig contains per-category alien dimensions and visuals
type AlienCategoryConfig struct {
	Width  float64
	Height float64
	Color  color.RGBA
}

// AlienConfig contains alien configuration shared by every group
type AlienConfig struct {
	Small AlienCategoryConfig
	Large AlienCategoryConfig
	Boss  AlienCategoryConfig

	MinLegSeconds  float64 // Shortest tween between two path waypoints
	ContactDamage  int
	HitFlashFrames int
	DeathFrames    int
}

// PlayerConfig contains all player-related configuration values
type PlayerConfig struct {
	Speed          float64
	Width          float64
	Height         float64
	BottomMargin   float64
	StartingLives  int
	ExtraLifeEvery int // points, 0 disables
	InvulnFrames   int
	FireCooldown   int // frames
	Color          color.RGBA
}

// BulletConfig contains projectile configuration
type BulletConfig struct {
	PlayerSpeed  float64
	AlienSpeed   float64
	Width        float64
	Height       float64
	PlayerDamage int
	SpreadCount  int
	SpreadAngle  float64 // radians between neighbouring spread shots
	RingCount    int
	DoubleOffset float64 // x offset of each barrel while double shot is active
	PlayerColor  color.RGBA
	AlienColor   color.RGBA
}

// ScoreConfig contains combo scoring values
type ScoreConfig struct {
	ComboTimeout         time.Duration
	ComboStep            float64 // Bonus fraction per combo level
	BonusLevelMultiplier int
}

// BonusConfig contains drop weights and power-up effects
type BonusConfig struct {
	WeightExtraLife  int
	WeightScore      int
	WeightDoubleShot int
	WeightSpeed      int
	WeightMultiplier int

	ScoreValue       int
	SpeedFactor      float64
	MultiplierFactor int
	Duration         time.Duration
	FallSpeed        float64
	Size             float64
}

// BannerConfig contains the level banner overlay
type BannerConfig struct {
	FadeIn  float32 // seconds
	Hold    float32
	FadeOut float32
	Y       float64
	Color   color.RGBA
}

// HUDConfig contains HUD layout values
type HUDConfig struct {
	Margin      float64
	LineHeight  float64
	BarHeight   float64
	TextColor   color.RGBA
	ComboColor  color.RGBA
	BandColor   color.RGBA // Fill outside the play area
	FontSize    float64
	SmallSize   float64
	TitleSize   float64
	MenuSize    float64
	StarCount   int
	StarColor   color.RGBA
	StarSpeed   float64
	StarMaxSize float64
}

// PauseConfig contains pause menu configuration values
type PauseConfig struct {
	OverlayColor      color.RGBA
	TitleColor        color.RGBA
	TextColorNormal   color.RGBA
	TextColorSelected color.RGBA
	MenuItemHeight    float64
	MenuItemGap       float64
	MenuOptions       []string
	OnFocusLoss       bool // Pause while the window is out of focus
}

// MenuConfig contains main menu configuration values
type MenuConfig struct {
	BackgroundColor   color.RGBA
	TitleColor        color.RGBA
	TextColorNormal   color.RGBA
	TextColorSelected color.RGBA
	TitleY            float64
	MenuStartY        float64
	MenuItemHeight    float64
	MenuItemGap       float64
}

// GameOverConfig contains game over screen configuration values
type GameOverConfig struct {
	BackgroundColor   color.RGBA
	TitleColor        color.RGBA
	TextColorNormal   color.RGBA
	TextColorSelected color.RGBA
	TitleY            float64
	MenuStartY        float64
	MenuItemHeight    float64
	MenuItemGap       float64
	MenuOptions       []string
}

// DebugConfig contains debug/testing command-line options
type DebugConfig struct {
	SkipMenu   bool // Skip menu and go directly to game
	DrawHitbox bool // Outline resolv objects
	Overlay    bool // Print frame and orchestrator stats
	Mute       bool
	LevelsDir  string // Read levels from disk instead of the embedded set
	GodMode    bool
	StartLevel int
}

// Global configuration instances
var C *Config
var PlayArea gamemath.PlayArea
var Wave WaveConfig
var Aliens AlienConfig
var Player PlayerConfig
var Bullet BulletConfig
var Score ScoreConfig
var Bonus BonusConfig
var Banner BannerConfig
var HUD HUDConfig
var Pause PauseConfig
var Menu MenuConfig
var GameOver GameOverConfig
var Debug DebugConfig

// Shared RGBA color constants
var (
	White        = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Yellow       = color.RGBA{R: 255, G: 255, B: 0, A: 255}
	Orange       = color.RGBA{R: 255, G: 140, B: 0, A: 255}
	BrightOrange = color.RGBA{R: 255, G: 180, B: 50, A: 255}
	Red          = color.RGBA{R: 255, G: 0, B: 0, A: 255}
	LightRed     = color.RGBA{R: 255, G: 60, B: 60, A: 255}
	BrightGreen  = color.RGBA{R: 0, G: 255, B: 60, A: 255}
	LightGreen   = color.RGBA{R: 100, G: 255, B: 100, A: 255}
	Purple       = color.RGBA{R: 128, G: 0, B: 255, A: 255}
	Magenta      = color.RGBA{R: 255, G: 0, B: 255, A: 255}
	LightBlue    = color.RGBA{R: 100, G: 180, B: 255, A: 255}
	BlackOverlay = color.RGBA{R: 0, G: 0, B: 0, A: 180}
)

func init() {
	C = &Config{
		Width:  800,
		Height: 600,
		TPS:    60,
	}

	// Aliens and the player stay between these fractions of the screen width
	PlayArea = gamemath.PlayArea{Left: 0.115, Right: 0.885}

	Wave = WaveConfig{
		InterGroupDelay: 3 * time.Second,
		LevelTransition: 2 * time.Second,
		ArenaPath:       "arena/arena.tmx",
		StartLevel:      1,
	}

	Aliens = AlienConfig{
		Small: AlienCategoryConfig{Width: 24, Height: 18, Color: LightGreen},
		Large: AlienCategoryConfig{Width: 36, Height: 28, Color: Magenta},
		Boss:  AlienCategoryConfig{Width: 96, Height: 64, Color: LightRed},

		MinLegSeconds:  0.25,
		ContactDamage:  1,
		HitFlashFrames: 4,
		DeathFrames:    12,
	}

	Player = PlayerConfig{
		Speed:          5,
		Width:          32,
		Height:         24,
		BottomMargin:   20,
		StartingLives:  3,
		ExtraLifeEvery: 20000,
		InvulnFrames:   90,
		FireCooldown:   12,
		Color:          LightBlue,
	}

	Bullet = BulletConfig{
		PlayerSpeed:  9,
		AlienSpeed:   4,
		Width:        4,
		Height:       10,
		PlayerDamage: 1,
		SpreadCount:  3,
		SpreadAngle:  0.26, // ~15 degrees
		RingCount:    8,
		DoubleOffset: 8,
		PlayerColor:  Yellow,
		AlienColor:   BrightOrange,
	}

	Score = ScoreConfig{
		ComboTimeout:         2 * time.Second,
		ComboStep:            0.1,
		BonusLevelMultiplier: 3,
	}

	Bonus = BonusConfig{
		WeightExtraLife:  1,
		WeightScore:      4,
		WeightDoubleShot: 3,
		WeightSpeed:      3,
		WeightMultiplier: 2,

		ScoreValue:       500,
		SpeedFactor:      1.5,
		MultiplierFactor: 2,
		Duration:         10 * time.Second,
		FallSpeed:        2,
		Size:             20,
	}

	Banner = BannerConfig{
		FadeIn:  0.4,
		Hold:    1.2,
		FadeOut: 0.6,
		Y:       260,
		Color:   White,
	}

	HUD = HUDConfig{
		Margin:      10,
		LineHeight:  20,
		BarHeight:   28,
		TextColor:   White,
		ComboColor:  Yellow,
		BandColor:   color.RGBA{R: 10, G: 10, B: 24, A: 255},
		FontSize:    16,
		SmallSize:   12,
		TitleSize:   40,
		MenuSize:    22,
		StarCount:   80,
		StarColor:   color.RGBA{R: 200, G: 200, B: 220, A: 255},
		StarSpeed:   0.8,
		StarMaxSize: 2,
	}

	Pause = PauseConfig{
		OverlayColor:      BlackOverlay,
		TitleColor:        Orange,
		TextColorNormal:   White,
		TextColorSelected: BrightOrange,
		MenuItemHeight:    30,
		MenuItemGap:       15,
		MenuOptions:       []string{"Resume", "Main Menu", "Exit"},
		OnFocusLoss:       true,
	}

	Menu = MenuConfig{
		BackgroundColor:   color.RGBA{R: 5, G: 5, B: 20, A: 255},
		TitleColor:        Orange,
		TextColorNormal:   White,
		TextColorSelected: BrightOrange,
		TitleY:            160,
		MenuStartY:        280,
		MenuItemHeight:    30,
		MenuItemGap:       12,
	}

	GameOver = GameOverConfig{
		BackgroundColor:   color.RGBA{R: 40, G: 10, B: 10, A: 255},
		TitleColor:        LightRed,
		TextColorNormal:   White,
		TextColorSelected: BrightOrange,
		TitleY:            180,
		MenuStartY:        300,
		MenuItemHeight:    30,
		MenuItemGap:       15,
		MenuOptions:       []string{"Retry", "Main Menu"},
	}

	// Debug Config (defaults, can be overridden by CLI flags)
	Debug = DebugConfig{
		SkipMenu: false,
	}
}
