package systems

import (
	"slices"
	"strings"

	"github.com/automoto/starlane/components"
	cfg "github.com/automoto/starlane/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi/ecs"
)

// Reused between frames to avoid allocations
var gamepadIDs []ebiten.GamepadID

var controllerTypeCache = make(map[ebiten.GamepadID]components.InputMethod)

// UpdateInput polls keyboard and gamepads into the Input singleton.
// Must run before any system that reads actions.
func UpdateInput(ecs *ecs.ECS) {
	input := getOrCreateInput(ecs)

	var pressed [cfg.ActionCount]bool
	keyboardUsed := pollKeyboard(&pressed)
	gamepadID, gamepadUsed := pollGamepads(&pressed)

	// Gamepad takes priority if both used
	if gamepadUsed {
		input.LastInputMethod = getControllerType(gamepadID)
	} else if keyboardUsed {
		input.LastInputMethod = components.InputKeyboard
	}

	stepInput(input, pressed)
}

// stepInput advances the held counters by one frame.
func stepInput(input *components.InputData, pressed [cfg.ActionCount]bool) {
	for id := range input.Held {
		input.Released[id] = !pressed[id] && input.Held[id] > 0
		if pressed[id] {
			input.Held[id]++
		} else {
			input.Held[id] = 0
		}
	}
}

func pollKeyboard(pressed *[cfg.ActionCount]bool) bool {
	used := false
	for id, binding := range cfg.Input.Bindings {
		if slices.ContainsFunc(binding.Keys, ebiten.IsKeyPressed) {
			pressed[id] = true
			used = true
		}
	}
	return used
}

// pollGamepads merges every standard-layout gamepad's buttons and left stick
// into pressed. It returns the last pad that was touched.
func pollGamepads(pressed *[cfg.ActionCount]bool) (ebiten.GamepadID, bool) {
	gamepadIDs = ebiten.AppendGamepadIDs(gamepadIDs[:0])

	var active ebiten.GamepadID
	used := false
	press := func(id cfg.ActionID, gpID ebiten.GamepadID) {
		pressed[id] = true
		active, used = gpID, true
	}

	deadzone := cfg.Input.AnalogDeadzone
	for _, gpID := range gamepadIDs {
		if !ebiten.IsStandardGamepadLayoutAvailable(gpID) {
			continue
		}
		for id, binding := range cfg.Input.Bindings {
			for _, btn := range binding.StandardGamepadButtons {
				if ebiten.IsStandardGamepadButtonPressed(gpID, btn) {
					press(id, gpID)
				}
			}
		}

		// The stick steers the ship and scrolls menus
		h := ebiten.StandardGamepadAxisValue(gpID, ebiten.StandardGamepadAxisLeftStickHorizontal)
		v := ebiten.StandardGamepadAxisValue(gpID, ebiten.StandardGamepadAxisLeftStickVertical)
		switch {
		case h < -deadzone:
			press(cfg.ActionMoveLeft, gpID)
		case h > deadzone:
			press(cfg.ActionMoveRight, gpID)
		}
		switch {
		case v < -deadzone:
			press(cfg.ActionMenuUp, gpID)
		case v > deadzone:
			press(cfg.ActionMenuDown, gpID)
		}
	}
	return active, used
}

// getControllerType returns cached controller type, detecting on first access
func getControllerType(gpID ebiten.GamepadID) components.InputMethod {
	if method, ok := controllerTypeCache[gpID]; ok {
		return method
	}

	name := strings.ToLower(ebiten.GamepadName(gpID))
	method := components.InputXbox
	for _, fragment := range cfg.Input.PlayStationNames {
		if strings.Contains(name, fragment) {
			method = components.InputPlayStation
			break
		}
	}

	controllerTypeCache[gpID] = method
	return method
}

// getOrCreateInput returns the singleton Input component, creating if needed
func getOrCreateInput(ecs *ecs.ECS) *components.InputData {
	entry, ok := components.Input.First(ecs.World)
	if !ok {
		entry = ecs.World.Entry(ecs.World.Create(components.Input))
	}
	return components.Input.Get(entry)
}

// GetAction returns the state of an action derived from its held count.
func GetAction(input *components.InputData, id cfg.ActionID) components.ActionState {
	frames := input.Held[id]
	repeated := frames == 1
	if delay := cfg.Input.RepeatDelay; frames > delay && cfg.Input.RepeatInterval > 0 {
		repeated = (frames-delay)%cfg.Input.RepeatInterval == 0
	}
	return components.ActionState{
		Pressed:      frames > 0,
		JustPressed:  frames == 1,
		JustReleased: input.Released[id],
		Repeated:     repeated,
		Frames:       frames,
	}
}
