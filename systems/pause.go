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

// UpdatePause toggles pause, pauses while the window is out of focus and
// drives the pause menu. Runs after UpdateInput and before the game systems.
func UpdatePause(ecs *ecs.ECS) {
	pause := GetOrCreatePause(ecs)
	if IsRunOver(ecs) {
		pause.IsPaused = false
		return
	}
	if cfg.Pause.OnFocusLoss {
		applyFocus(pause, ebiten.IsFocused())
	}

	input := getOrCreateInput(ecs)
	if GetAction(input, cfg.ActionPause).JustPressed {
		pause.IsPaused = !pause.IsPaused
		pause.AutoPaused = false
		pause.SelectedOption = components.MenuResume
		return
	}
	if !pause.IsPaused {
		return
	}

	numOptions := int(components.MenuExit) + 1
	pause.SelectedOption = components.PauseMenuOption(
		navigateMenu(ecs, input, int(pause.SelectedOption), numOptions),
	)

	if menuSelected(ecs, input) {
		switch pause.SelectedOption {
		case components.MenuResume:
			pause.IsPaused = false
		case components.MenuMainMenu:
			pause.QuitToMenu = true
		case components.MenuExit:
			os.Exit(0)
		}
	}
}

// applyFocus pauses when the window loses focus and lifts only a pause it
// started itself.
func applyFocus(pause *components.PauseData, focused bool) {
	switch {
	case !focused && !pause.IsPaused:
		pause.IsPaused = true
		pause.AutoPaused = true
		pause.SelectedOption = components.MenuResume
	case focused && pause.AutoPaused:
		pause.IsPaused = false
		pause.AutoPaused = false
	}
}

// DrawPause renders the pause overlay and menu.
func DrawPause(ecs *ecs.ECS, screen *ebiten.Image) {
	pause := GetOrCreatePause(ecs)

	if !pause.IsPaused {
		return
	}

	width := float64(screen.Bounds().Dx())
	height := float64(screen.Bounds().Dy())

	vector.FillRect(
		screen,
		0, 0,
		float32(width), float32(height),
		cfg.Pause.OverlayColor,
		false,
	)

	menuOptions := cfg.Pause.MenuOptions
	totalMenuHeight := float64(len(menuOptions)) * (cfg.Pause.MenuItemHeight + cfg.Pause.MenuItemGap)
	startY := (height - totalMenuHeight) / 2

	titleFace := fonts.Title.Get()
	title := "PAUSED"
	text.Draw(screen, title, titleFace, centredX(title, titleFace, width), int(startY)-60, cfg.Pause.TitleColor)
	if status := pauseStatus(ecs); status != "" {
		face := fonts.HUD.Get()
		text.Draw(screen, status, face, centredX(status, face, width), int(startY)-20, cfg.Pause.TextColorNormal)
	}

	fontFace := fonts.Menu.Get()

	for i, option := range menuOptions {
		y := startY + float64(i)*(cfg.Pause.MenuItemHeight+cfg.Pause.MenuItemGap)

		textColor := cfg.Pause.TextColorNormal
		if components.PauseMenuOption(i) == pause.SelectedOption {
			textColor = cfg.Pause.TextColorSelected
		}

		x := centredX(option, fontFace, width)
		text.Draw(screen, option, fontFace, x, int(y)+int(cfg.Pause.MenuItemHeight), textColor)
	}

	input := getOrCreateInput(ecs)
	hint := getPauseHint(input.LastInputMethod)
	hintFont := fonts.HUDSmall.Get()
	text.Draw(screen, hint, hintFont, centredX(hint, hintFont, width), int(height)-12, cfg.Pause.TextColorNormal)
}

// pauseStatus summarises the run for the pause screen.
func pauseStatus(ecs *ecs.ECS) string {
	entry, ok := components.Campaign.First(ecs.World)
	if !ok {
		return ""
	}
	campaign := components.Campaign.Get(entry)
	status := fmt.Sprintf("LEVEL %d   SCORE %d", campaign.Level, components.Score.Get(entry).Score)
	if o := campaign.Orchestrator; o != nil {
		status += fmt.Sprintf("   GROUPS LEFT %d", o.Remaining()+o.ActiveGroups())
	}
	return status
}

// getPauseHint returns the appropriate hint for pause menu
func getPauseHint(method components.InputMethod) string {
	switch method {
	case components.InputPlayStation:
		return "Left Stick/D-Pad: Navigate   Cross: Select   Options: Resume"
	case components.InputXbox:
		return "Left Stick/D-Pad: Navigate   A: Select   Start: Resume"
	}
	return "Arrows: Navigate   Enter: Select   Esc: Resume"
}

// WithPauseCheck wraps a system to skip execution when paused.
func WithPauseCheck(system ecs.System) ecs.System {
	return func(e *ecs.ECS) {
		if pause := GetOrCreatePause(e); pause.IsPaused {
			return
		}
		system(e)
	}
}

// WithGameplayChecks wraps a system to skip execution when paused or once
// the run is over.
func WithGameplayChecks(system ecs.System) ecs.System {
	return WithPauseCheck(func(e *ecs.ECS) {
		if IsRunOver(e) {
			return
		}
		system(e)
	})
}

// GetOrCreatePause returns the singleton Pause component, creating if needed.
func GetOrCreatePause(ecs *ecs.ECS) *components.PauseData {
	if _, ok := components.Pause.First(ecs.World); !ok {
		ent := ecs.World.Entry(ecs.World.Create(components.Pause))
		components.Pause.SetValue(ent, components.PauseData{
			IsPaused:       false,
			SelectedOption: components.MenuResume,
		})
	}

	ent, _ := components.Pause.First(ecs.World)
	return components.Pause.Get(ent)
}
