package systems

import (
	"github.com/automoto/starlane/components"
	cfg "github.com/automoto/starlane/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateObjects refreshes the space cells of every moved object.
func UpdateObjects(ecs *ecs.ECS) {
	for e := range components.Object.Iter(ecs.World) {
		obj := components.Object.Get(e)
		obj.Update()
	}
}

// UpdateStars scrolls the background, faster on levels with a higher
// background speed.
func UpdateStars(ecs *ecs.ECS) {
	factor := 1.0
	if entry, ok := components.Campaign.First(ecs.World); ok {
		if o := components.Campaign.Get(entry).Orchestrator; o != nil && o.Descriptor() != nil {
			factor = o.Descriptor().BackgroundSpeed
		}
	}
	h := float64(cfg.C.Height)
	components.Star.Each(ecs.World, func(e *donburi.Entry) {
		star := components.Star.Get(e)
		star.Y += star.Speed * factor
		if star.Y > h {
			star.Y -= h
		}
	})
}

// UpdateBanner plays the level banner fade and removes it when done.
func UpdateBanner(ecs *ecs.ECS) {
	entry, ok := components.Banner.First(ecs.World)
	if !ok {
		return
	}
	banner := components.Banner.Get(entry)
	alpha, _, done := banner.Fade.Update(float32(tickDuration().Seconds()))
	banner.Alpha = alpha
	if done {
		ecs.World.Remove(entry.Entity())
	}
}
