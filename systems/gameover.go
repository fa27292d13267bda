package systems

import (
	"fmt"

	"github.com/automoto/starlane/components"
	cfg "github.com/automoto/starlane/config"
	"github.com/automoto/starlane/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

// NewUpdateGameOver creates an UpdateGameOver system with scene transition capability
func NewUpdateGameOver(sceneChanger SceneChanger, createWorldScene func(level int) interface{}, createMenuScene func() interface{}) ecs.System {
	return func(e *ecs.ECS) {
		gameOver := GetOrCreateGameOver(e)
		input := getOrCreateInput(e)

		numOptions := int(components.GameOverMenu) + 1
		gameOver.SelectedOption = components.GameOverOption(
			navigateMenu(e, input, int(gameOver.SelectedOption), numOptions),
		)

		if menuSelected(e, input) {
			switch gameOver.SelectedOption {
			case components.GameOverRetry:
				sceneChanger.ChangeScene(createWorldScene(RetryLevel(*gameOver)))
			case components.GameOverMenu:
				sceneChanger.ChangeScene(createMenuScene())
			}
		}
	}
}

// RetryLevel is where a retry starts: the level the run ended on, or the
// first level after a win.
func RetryLevel(result components.GameOverData) int {
	if result.Victory || result.Level < cfg.Wave.StartLevel {
		return cfg.Wave.StartLevel
	}
	return result.Level
}

// DrawGameOver renders the game over screen
func DrawGameOver(e *ecs.ECS, screen *ebiten.Image) {
	gameOver := GetOrCreateGameOver(e)

	width := float64(screen.Bounds().Dx())
	height := float64(screen.Bounds().Dy())

	vector.FillRect(
		screen,
		0, 0,
		float32(width), float32(height),
		cfg.GameOver.BackgroundColor,
		false,
	)

	titleFont := fonts.Title.Get()
	title := "GAME OVER"
	if gameOver.Victory {
		title = "ALL LEVELS CLEARED"
	}
	text.Draw(screen, title, titleFont, centredX(title, titleFont, width), int(cfg.GameOver.TitleY), cfg.GameOver.TitleColor)

	hudFont := fonts.HUD.Get()
	summary := fmt.Sprintf("LEVEL %d   SCORE %d", gameOver.Level, gameOver.Score)
	text.Draw(screen, summary, hudFont, centredX(summary, hudFont, width), int(cfg.GameOver.TitleY)+50, cfg.GameOver.TextColorNormal)
	if gameOver.Score > 0 && gameOver.Score >= gameOver.HighScore {
		best := "NEW HIGH SCORE"
		text.Draw(screen, best, hudFont, centredX(best, hudFont, width), int(cfg.GameOver.TitleY)+75, cfg.HUD.ComboColor)
	}

	menuFont := fonts.Menu.Get()
	for i, option := range cfg.GameOver.MenuOptions {
		y := cfg.GameOver.MenuStartY + float64(i)*(cfg.GameOver.MenuItemHeight+cfg.GameOver.MenuItemGap)

		textColor := cfg.GameOver.TextColorNormal
		if components.GameOverOption(i) == gameOver.SelectedOption {
			textColor = cfg.GameOver.TextColorSelected
		}

		text.Draw(screen, option, menuFont, centredX(option, menuFont, width), int(y)+int(cfg.GameOver.MenuItemHeight), textColor)
	}

	hintFont := fonts.HUDSmall.Get()
	hint := getMenuHint(getOrCreateInput(e).LastInputMethod)
	text.Draw(screen, hint, hintFont, centredX(hint, hintFont, width), int(height)-12, cfg.GameOver.TextColorNormal)
}

// GetOrCreateGameOver returns the singleton GameOver component, creating if needed
func GetOrCreateGameOver(e *ecs.ECS) *components.GameOverData {
	if _, ok := components.GameOver.First(e.World); !ok {
		ent := e.World.Entry(e.World.Create(components.GameOver))
		components.GameOver.SetValue(ent, components.GameOverData{
			SelectedOption: components.GameOverRetry,
		})
	}

	ent, _ := components.GameOver.First(e.World)
	return components.GameOver.Get(ent)
}

// SetGameOverResult stores the figures of the finished run.
func SetGameOverResult(e *ecs.ECS, result components.GameOverData) {
	gameOver := GetOrCreateGameOver(e)
	result.SelectedOption = components.GameOverRetry
	*gameOver = result
}
