package components

import "github.com/yohamta/donburi"

// PauseMenuOption represents menu items in the pause menu
type PauseMenuOption int

const (
	MenuResume PauseMenuOption = iota
	MenuMainMenu
	MenuExit
)

// PauseData stores the pause state and menu selection
type PauseData struct {
	IsPaused       bool
	SelectedOption PauseMenuOption
	QuitToMenu     bool // Set when the player leaves the run from the pause menu
	// Paused because the window lost focus; resumes when it comes back
	AutoPaused bool
}

var Pause = donburi.NewComponentType[PauseData]()
