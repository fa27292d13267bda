package components

import (
	"fmt"

	"github.com/yohamta/donburi"
)

// MainMenuOption represents the available main menu selections
type MainMenuOption int

const (
	MainMenuStart MainMenuOption = iota
	MainMenuContinue
	MainMenuExit
)

func (o MainMenuOption) Label(level int) string {
	switch o {
	case MainMenuStart:
		return "New Game"
	case MainMenuContinue:
		return fmt.Sprintf("Continue (Level %d)", level)
	case MainMenuExit:
		return "Exit"
	}
	return ""
}

// MenuData stores the current state of the main menu
type MenuData struct {
	SelectedIndex  int              // Current selection index in VisibleOptions
	VisibleOptions []MainMenuOption // Options to display (depends on save state)
	SavedLevel     int              // Level Continue resumes at, 0 = no progress
	BestLevel      int
	HighScore      int
}

// Menu is the component type for main menu state
var Menu = donburi.NewComponentType[MenuData]()
