package systems

import (
	"github.com/automoto/starlane/components"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// Velocity kept per frame, so fragments slow as they spread
const particleDrag = 0.94

// UpdateEffects moves explosion particles and removes the spent ones
func UpdateEffects(ecs *ecs.ECS) {
	var toDestroy []*donburi.Entry

	components.Particle.Each(ecs.World, func(e *donburi.Entry) {
		p := components.Particle.Get(e)
		p.Position.X += p.Velocity.X
		p.Position.Y += p.Velocity.Y
		p.Velocity.X *= particleDrag
		p.Velocity.Y *= particleDrag

		p.Life--
		if p.Life <= 0 {
			toDestroy = append(toDestroy, e)
		}
	})

	for _, e := range toDestroy {
		ecs.World.Remove(e.Entity())
	}
}

// DrawEffects draws particles fading out over their lifetime
func DrawEffects(ecs *ecs.ECS, screen *ebiten.Image) {
	components.Particle.Each(ecs.World, func(e *donburi.Entry) {
		p := components.Particle.Get(e)
		alpha := float32(p.Life) / float32(max(p.MaxLife, 1))
		half := p.Size / 2
		vector.FillRect(screen,
			float32(p.Position.X-half), float32(p.Position.Y-half),
			float32(p.Size), float32(p.Size),
			fade(p.Color, alpha), false)
	})
}
