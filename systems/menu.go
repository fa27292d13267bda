package systems

import (
	"fmt"
	"os"

	"github.com/automoto/starlane/components"
	cfg "github.com/automoto/starlane/config"
	"github.com/automoto/starlane/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

// SceneChanger allows systems to trigger scene transitions
type SceneChanger interface {
	ChangeScene(scene interface{})
}

// NewUpdateMenu creates an UpdateMenu system with scene transition capability.
// createWorldScene receives the level the campaign starts from.
func NewUpdateMenu(sceneChanger SceneChanger, createWorldScene func(level int) interface{}) ecs.System {
	return func(e *ecs.ECS) {
		menu := GetOrCreateMenu(e)
		input := getOrCreateInput(e)

		if len(menu.VisibleOptions) == 0 {
			return
		}
		menu.SelectedIndex = navigateMenu(e, input, menu.SelectedIndex, len(menu.VisibleOptions))

		if menuSelected(e, input) {
			switch menu.VisibleOptions[menu.SelectedIndex] {
			case components.MainMenuStart:
				_ = ClearGameProgress()
				sceneChanger.ChangeScene(createWorldScene(cfg.Wave.StartLevel))
			case components.MainMenuContinue:
				sceneChanger.ChangeScene(createWorldScene(menu.SavedLevel))
			case components.MainMenuExit:
				os.Exit(0)
			}
		}

		// Allow back/escape to exit
		if GetAction(input, cfg.ActionMenuBack).JustPressed {
			os.Exit(0)
		}
	}
}

// navigateMenu moves a selection up or down with wrap-around and returns
// the new index.
func navigateMenu(e *ecs.ECS, input *components.InputData, selected, count int) int {
	if count <= 0 {
		return 0
	}
	step := 0
	if GetAction(input, cfg.ActionMenuUp).Repeated {
		step--
	}
	if GetAction(input, cfg.ActionMenuDown).Repeated {
		step++
	}
	if step == 0 {
		return selected
	}
	PlaySFX(e, cfg.SoundMenuNavigate)
	return ((selected+step)%count + count) % count
}

// menuSelected reports a select press, with its sound.
func menuSelected(e *ecs.ECS, input *components.InputData) bool {
	if !GetAction(input, cfg.ActionMenuSelect).JustPressed {
		return false
	}
	PlaySFX(e, cfg.SoundMenuSelect)
	return true
}

// DrawMenu renders the main menu screen
func DrawMenu(e *ecs.ECS, screen *ebiten.Image) {
	menu := GetOrCreateMenu(e)

	width := float64(screen.Bounds().Dx())
	height := float64(screen.Bounds().Dy())

	vector.FillRect(
		screen,
		0, 0,
		float32(width), float32(height),
		cfg.Menu.BackgroundColor,
		false,
	)
	DrawBackground(e, screen)

	titleFont := fonts.Title.Get()
	title := "STARLANE"
	text.Draw(screen, title, titleFont, centredX(title, titleFont, width), int(cfg.Menu.TitleY), cfg.Menu.TitleColor)

	if menu.HighScore > 0 {
		hudFont := fonts.HUD.Get()
		hi := fmt.Sprintf("HIGH SCORE %07d", menu.HighScore)
		if menu.BestLevel > 0 {
			hi += fmt.Sprintf("   BEST LEVEL %d", menu.BestLevel)
		}
		text.Draw(screen, hi, hudFont, centredX(hi, hudFont, width), int(cfg.Menu.TitleY)+40, cfg.HUD.ComboColor)
	}

	menuFont := fonts.Menu.Get()
	for i, option := range menu.VisibleOptions {
		y := cfg.Menu.MenuStartY + float64(i)*(cfg.Menu.MenuItemHeight+cfg.Menu.MenuItemGap)

		textColor := cfg.Menu.TextColorNormal
		if i == menu.SelectedIndex {
			textColor = cfg.Menu.TextColorSelected
		}

		label := option.Label(menu.SavedLevel)
		text.Draw(screen, label, menuFont, centredX(label, menuFont, width), int(y)+int(cfg.Menu.MenuItemHeight), textColor)
	}

	input := getOrCreateInput(e)
	hint := getMenuHint(input.LastInputMethod)
	hintFont := fonts.HUDSmall.Get()
	text.Draw(screen, hint, hintFont, centredX(hint, hintFont, width), int(height)-12, cfg.Menu.TextColorNormal)
}

// getMenuHint returns the appropriate hint for menu navigation
func getMenuHint(method components.InputMethod) string {
	switch method {
	case components.InputPlayStation:
		return "Left Stick/D-Pad: Navigate   Cross: Select"
	case components.InputXbox:
		return "Left Stick/D-Pad: Navigate   A: Select"
	}
	return "Arrows: Navigate   Enter: Select"
}

// menuOptions lists Continue only when a level past the first was reached.
func menuOptions(savedLevel int) []components.MainMenuOption {
	if savedLevel > cfg.Wave.StartLevel {
		return []components.MainMenuOption{
			components.MainMenuContinue,
			components.MainMenuStart,
			components.MainMenuExit,
		}
	}
	return []components.MainMenuOption{
		components.MainMenuStart,
		components.MainMenuExit,
	}
}

// GetOrCreateMenu returns the singleton Menu component, creating if needed
func GetOrCreateMenu(e *ecs.ECS) *components.MenuData {
	if _, ok := components.Menu.First(e.World); !ok {
		var saved components.MenuData
		if progress, _ := LoadGameProgress(); progress != nil {
			saved.SavedLevel = progress.Level
			saved.BestLevel = progress.BestLevel
			saved.HighScore = progress.HighScore
		}

		ent := e.World.Entry(e.World.Create(components.Menu))
		components.Menu.SetValue(ent, components.MenuData{
			SelectedIndex:  0,
			VisibleOptions: menuOptions(saved.SavedLevel),
			SavedLevel:     saved.SavedLevel,
			BestLevel:      saved.BestLevel,
			HighScore:      saved.HighScore,
		})
	}

	ent, _ := components.Menu.First(e.World)
	return components.Menu.Get(ent)
}
