package factory

import (
	"math/rand"

	"github.com/automoto/starlane/archetypes"
	"github.com/automoto/starlane/components"
	cfg "github.com/automoto/starlane/config"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateBanner shows a title that fades in, holds and fades out.
func CreateBanner(ecs *ecs.ECS, title, subtitle string) *donburi.Entry {
	// Only one banner at a time
	if old, ok := components.Banner.First(ecs.World); ok {
		ecs.World.Remove(old.Entity())
	}

	b := archetypes.Banner.Spawn(ecs)
	tw := gween.NewSequence()
	tw.Add(
		gween.New(0, 1, cfg.Banner.FadeIn, ease.OutQuad),
		gween.New(1, 1, cfg.Banner.Hold, ease.Linear),
		gween.New(1, 0, cfg.Banner.FadeOut, ease.InQuad),
	)
	components.Banner.SetValue(b, components.BannerData{
		Title:    title,
		Subtitle: subtitle,
		Fade:     tw,
	})
	return b
}

// CreateStarfield scatters the background stars.
func CreateStarfield(ecs *ecs.ECS, rng *rand.Rand) {
	w, h := float64(cfg.C.Width), float64(cfg.C.Height)
	for i := 0; i < cfg.HUD.StarCount; i++ {
		s := archetypes.Star.Spawn(ecs)
		size := 1 + rng.Float64()*(cfg.HUD.StarMaxSize-1)
		components.Star.SetValue(s, components.StarData{
			X:     rng.Float64() * w,
			Y:     rng.Float64() * h,
			Size:  size,
			Speed: cfg.HUD.StarSpeed * size,
		})
	}
}
