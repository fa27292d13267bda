package components

import (
	cfg "github.com/automoto/starlane/config"
	"github.com/yohamta/donburi"
)

// InputMethod represents the type of input device being used
type InputMethod int

const (
	InputKeyboard InputMethod = iota
	InputXbox
	InputPlayStation
)

// ActionState is one action as seen this frame.
type ActionState struct {
	Pressed      bool // Currently held down
	JustPressed  bool // Pressed this frame
	JustReleased bool // Released this frame
	// Repeated fires on the press and then at the repeat interval while held,
	// for scrolling through menus.
	Repeated bool
	Frames   int // How long the action has been held
}

// InputData counts, per action, the frames it has been held. A count of
// zero means released.
type InputData struct {
	Held            [cfg.ActionCount]int
	Released        [cfg.ActionCount]bool // Let go this frame
	LastInputMethod InputMethod
}

var Input = donburi.NewComponentType[InputData]()
