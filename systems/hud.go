package systems

import (
	"fmt"
	"image/color"

	"github.com/automoto/starlane/components"
	cfg "github.com/automoto/starlane/config"
	"github.com/automoto/starlane/fonts"
	"github.com/automoto/starlane/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
	"golang.org/x/image/font"
)

const (
	lifeIconWidth  = 14
	lifeIconHeight = 10
	lifeIconGap    = 6
)

// DrawHUD renders the score bar along the top of the screen and the lives
// counter in the bottom-left margin.
func DrawHUD(ecs *ecs.ECS, screen *ebiten.Image) {
	entry, ok := components.Campaign.First(ecs.World)
	if !ok {
		return
	}
	campaign := components.Campaign.Get(entry)
	score := components.Score.Get(entry)

	width := float64(screen.Bounds().Dx())
	margin := cfg.HUD.Margin
	face := fonts.HUD.Get()
	small := fonts.HUDSmall.Get()
	baseline := int(margin + cfg.HUD.LineHeight)

	vector.FillRect(screen, 0, 0, float32(width), float32(cfg.HUD.BarHeight), cfg.HUD.BandColor, false)

	text.Draw(screen, fmt.Sprintf("SCORE %07d", score.Score), face, int(margin), baseline, cfg.HUD.TextColor)

	hi := fmt.Sprintf("HI %07d", score.HighScore)
	text.Draw(screen, hi, face, centredX(hi, face, width), baseline, cfg.HUD.TextColor)

	level := fmt.Sprintf("LEVEL %d", campaign.Level)
	if campaign.Orchestrator != nil {
		level = fmt.Sprintf("LEVEL %d  GROUPS %d", campaign.Level, campaign.Orchestrator.Remaining()+campaign.Orchestrator.ActiveGroups())
	}
	text.Draw(screen, level, face, rightX(level, face, width, margin), baseline, cfg.HUD.TextColor)

	// Combo and multiplier sit under the score
	y := baseline + int(cfg.HUD.LineHeight)
	if score.Combo > 1 {
		text.Draw(screen, fmt.Sprintf("COMBO x%d", score.Combo), small, int(margin), y, cfg.HUD.ComboColor)
		y += int(cfg.HUD.LineHeight)
	}
	if score.Multiplier > 1 || score.LevelMultiplier > 1 {
		mult := fmt.Sprintf("MULT x%d", max(score.Multiplier, 1)*max(score.LevelMultiplier, 1))
		text.Draw(screen, mult, small, int(margin), y, cfg.HUD.ComboColor)
	}

	drawLives(ecs, screen)
}

func drawLives(ecs *ecs.ECS, screen *ebiten.Image) {
	playerEntry, ok := tags.Player.First(ecs.World)
	if !ok {
		return
	}
	lives := components.Lives.Get(playerEntry)
	player := components.Player.Get(playerEntry)

	margin := float32(cfg.HUD.Margin)
	y := float32(screen.Bounds().Dy()) - margin - lifeIconHeight
	for i := 0; i < lives.Lives; i++ {
		x := margin + float32(i)*(lifeIconWidth+lifeIconGap)
		vector.FillRect(screen, x, y, lifeIconWidth, lifeIconHeight, cfg.Player.Color, false)
	}

	// Active power-ups above the lives
	small := fonts.HUDSmall.Get()
	line := int(y) - lifeIconGap
	if player.DoubleShot > 0 {
		text.Draw(screen, fmt.Sprintf("DOUBLE %.0fs", player.DoubleShot.Seconds()), small, int(margin), line, cfg.LightBlue)
		line -= int(cfg.HUD.LineHeight)
	}
	if player.SpeedBoost > 0 {
		text.Draw(screen, fmt.Sprintf("SPEED %.0fs", player.SpeedBoost.Seconds()), small, int(margin), line, cfg.BrightGreen)
	}
}

// DrawBanner renders the level banner at its current fade.
func DrawBanner(ecs *ecs.ECS, screen *ebiten.Image) {
	entry, ok := components.Banner.First(ecs.World)
	if !ok {
		return
	}
	banner := components.Banner.Get(entry)
	if banner.Alpha <= 0 {
		return
	}
	width := float64(screen.Bounds().Dx())

	title := fonts.Title.Get()
	clr := fade(cfg.Banner.Color, banner.Alpha)
	text.Draw(screen, banner.Title, title, centredX(banner.Title, title, width), int(cfg.Banner.Y), clr)

	if banner.Subtitle != "" {
		face := fonts.HUD.Get()
		text.Draw(screen, banner.Subtitle, face, centredX(banner.Subtitle, face, width),
			int(cfg.Banner.Y+cfg.HUD.LineHeight*2), fade(cfg.HUD.ComboColor, banner.Alpha))
	}
}

// fade scales a colour by alpha in [0, 1]. text.Draw expects premultiplied
// colours so every channel is scaled.
func fade(c color.RGBA, alpha float32) color.RGBA {
	a := min(max(alpha, 0), 1)
	return color.RGBA{
		R: uint8(float32(c.R) * a),
		G: uint8(float32(c.G) * a),
		B: uint8(float32(c.B) * a),
		A: uint8(float32(c.A) * a),
	}
}

// centredX returns the x at which s is horizontally centred.
func centredX(s string, face font.Face, width float64) int {
	w := font.MeasureString(face, s).Ceil()
	return int((width - float64(w)) / 2)
}

func rightX(s string, face font.Face, width, margin float64) int {
	w := font.MeasureString(face, s).Ceil()
	return int(width-margin) - w
}
