package factory

import (
	"github.com/automoto/starlane/archetypes"
	"github.com/automoto/starlane/components"
	cfg "github.com/automoto/starlane/config"
	"github.com/automoto/starlane/leveldata"
	"github.com/automoto/starlane/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// AlienParams carries the group settings for one new alien.
type AlienParams struct {
	Level int
	Group leveldata.GroupDescriptor
	Index int
}

// AlienStyle returns the size and colour used for an alien category.
func AlienStyle(t leveldata.AlienType) cfg.AlienCategoryConfig {
	switch t.Category {
	case leveldata.CategoryLarge:
		return cfg.Aliens.Large
	case leveldata.CategoryBoss:
		return cfg.Aliens.Boss
	}
	return cfg.Aliens.Small
}

// CreateAlien spawns one group member with its top-left corner at (x, y).
func CreateAlien(ecs *ecs.ECS, t leveldata.AlienType, x, y float64, p AlienParams) *donburi.Entry {
	alien := archetypes.Alien.Spawn(ecs)
	style := AlienStyle(t)

	obj := resolv.NewObject(x, y, style.Width, style.Height, tags.ResolvAlien)
	obj.Data = alien
	components.Object.SetValue(alien, components.ObjectData{Object: obj})
	addToSpace(ecs, obj)

	health := p.Group.Health
	if health < 1 {
		health = t.BaseHealth()
	}
	components.Health.SetValue(alien, components.HealthData{Current: health, Max: health})

	var path []leveldata.PathPoint
	if !p.Group.GroupBehavior {
		path = p.Group.Path
	}
	// Stagger the first volley across the group
	firstShot := p.Group.ShootInterval * (1 + 0.15*float64(p.Index))

	components.Alien.SetValue(alien, components.AlienData{
		Type:          t,
		Level:         p.Level,
		Movement:      p.Group.Movement,
		GroupBehavior: p.Group.GroupBehavior,
		Speed:         p.Group.Speed,
		Points:        t.Points(),
		ShootInterval: p.Group.ShootInterval,
		ShootTimer:    firstShot,
		Path:          path,
	})

	return alien
}
