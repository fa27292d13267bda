package factory

import (
	"github.com/automoto/starlane/archetypes"
	"github.com/automoto/starlane/components"
	cfg "github.com/automoto/starlane/config"
	"github.com/automoto/starlane/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateBonus drops a power-up centred on (cx, cy).
func CreateBonus(ecs *ecs.ECS, kind components.BonusKind, cx, cy float64) *donburi.Entry {
	b := archetypes.Bonus.Spawn(ecs)

	size := cfg.Bonus.Size
	obj := resolv.NewObject(cx-size/2, cy-size/2, size, size, tags.ResolvBonus)
	obj.Data = b
	components.Object.SetValue(b, components.ObjectData{Object: obj})
	addToSpace(ecs, obj)

	components.Bonus.SetValue(b, components.BonusData{
		Kind:  kind,
		Speed: cfg.Bonus.FallSpeed,
	})
	return b
}
