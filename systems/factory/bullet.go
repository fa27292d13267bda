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

// CreateBullet spawns a projectile centred on (cx, cy).
func CreateBullet(ecs *ecs.ECS, cx, cy float64, data components.BulletData) *donburi.Entry {
	b := archetypes.Bullet.Spawn(ecs)

	tag := tags.ResolvAlienShot
	if data.Owner == components.OwnerPlayer {
		tag = tags.ResolvPlayerShot
	}
	w, h := cfg.Bullet.Width, cfg.Bullet.Height
	obj := resolv.NewObject(cx-w/2, cy-h/2, w, h, tag)
	obj.Data = b
	components.Object.SetValue(b, components.ObjectData{Object: obj})
	addToSpace(ecs, obj)

	components.Bullet.SetValue(b, data)
	return b
}
