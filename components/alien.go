package components

import (
	"github.com/automoto/starlane/leveldata"
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

type AlienData struct {
	Type          leveldata.AlienType
	Level         int
	Movement      leveldata.Movement
	GroupBehavior bool // Moved by the wave orchestrator, not by its own path
	Speed         float64
	Points        int

	ShootInterval float64 // seconds, 0 never fires
	ShootTimer    float64

	// Path following for aliens outside group behavior. Waypoints are
	// viewport fractions; each leg is a pair of tweens.
	Path      []leveldata.PathPoint
	PathIndex int
	LegX      *gween.Tween
	LegY      *gween.Tween
	Wait      float64
	Clock     float64
}

// OnPath reports whether the alien still has waypoints to visit.
func (a *AlienData) OnPath() bool {
	return a.PathIndex < len(a.Path) || a.LegX != nil || a.Wait > 0
}

var Alien = donburi.NewComponentType[AlienData]()
