package archetypes

import (
	"github.com/automoto/starlane/components"
	cfg "github.com/automoto/starlane/config"
	"github.com/automoto/starlane/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	Player = newArchetype(
		tags.Player,
		components.Player,
		components.Object,
		components.Lives,
		components.Flash,
	)
	Alien = newArchetype(
		tags.Alien,
		components.Alien,
		components.Object,
		components.Health,
		components.Flash,
	)
	Bullet = newArchetype(
		tags.Bullet,
		components.Bullet,
		components.Object,
	)
	Bonus = newArchetype(
		tags.Bonus,
		components.Bonus,
		components.Object,
	)
	Space = newArchetype(
		components.Space,
	)
	Campaign = newArchetype(
		components.Campaign,
		components.Score,
	)
	Banner = newArchetype(
		components.Banner,
	)
	Star = newArchetype(
		components.Star,
	)
	Camera = newArchetype(
		components.Camera,
	)
	Particle = newArchetype(
		components.Particle,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(ecs *ecs.ECS, cs ...donburi.IComponentType) *donburi.Entry {
	e := ecs.World.Entry(ecs.Create(
		cfg.Default,
		append(a.components, cs...)...,
	))
	return e
}
