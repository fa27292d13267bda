package factory

import (
	"image/color"
	"math"
	"math/rand"

	"github.com/automoto/starlane/archetypes"
	"github.com/automoto/starlane/components"
	cfg "github.com/automoto/starlane/config"
	"github.com/yohamta/donburi/ecs"
	dmath "github.com/yohamta/donburi/features/math"
)

// CreateExplosion bursts count particles outward from (cx, cy).
func CreateExplosion(ecs *ecs.ECS, cx, cy float64, clr color.RGBA, count int, rng *rand.Rand) {
	for i := 0; i < count; i++ {
		angle := 2 * math.Pi * float64(i) / float64(count)
		speed := cfg.Explosion.Speed * (0.3 + 0.7*rng.Float64())
		// Stagger lifetimes so the burst thins out instead of vanishing at once
		life := cfg.Explosion.Life/2 + rng.Intn(cfg.Explosion.Life/2+1)

		p := archetypes.Particle.Spawn(ecs)
		components.Particle.SetValue(p, components.ParticleData{
			Position: dmath.Vec2{X: cx, Y: cy},
			Velocity: dmath.Vec2{X: math.Cos(angle) * speed, Y: math.Sin(angle) * speed},
			Life:     life,
			MaxLife:  life,
			Size:     cfg.Explosion.Size,
			Color:    clr,
		})
	}
}
