package components

import (
	"image/color"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

// ParticleData is one fragment of an explosion. It has no collision object.
type ParticleData struct {
	Position math.Vec2
	Velocity math.Vec2
	Life     int // frames remaining
	MaxLife  int
	Size     float64
	Color    color.RGBA
}

var Particle = donburi.NewComponentType[ParticleData]()
