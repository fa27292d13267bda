package components

import (
	"math/rand"

	"github.com/automoto/starlane/movement"
	"github.com/automoto/starlane/wave"
	"github.com/yohamta/donburi"
)

// CampaignData ties the world to the wave orchestrator driving it.
type CampaignData struct {
	Orchestrator *wave.Orchestrator
	// Engine moves aliens outside group behavior, one at a time
	Engine *movement.Engine
	// GroupEngine is the orchestrator's engine for group-behavior groups
	GroupEngine *movement.Engine
	Rand        *rand.Rand
	Level       int
	Bonus       bool // Current level carries the bonus multiplier
	Shake       bool // Every kill shakes the screen
	PowerUps    float64
	Finished    bool // Campaign ran out of levels
	Elapsed     float64
}

var Campaign = donburi.NewComponentType[CampaignData]()
