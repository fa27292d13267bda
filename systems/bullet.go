package systems

import (
	"math"

	"github.com/automoto/starlane/components"
	cfg "github.com/automoto/starlane/config"
	"github.com/automoto/starlane/gamemath"
	"github.com/automoto/starlane/leveldata"
	"github.com/automoto/starlane/systems/factory"
	"github.com/automoto/starlane/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// StepBullet is the single update rule shared by every projectile. It returns
// the position one tick later.
func StepBullet(b *components.BulletData, x, y float64) (float64, float64) {
	switch b.Kind {
	case components.BulletStraight:
		return x, y + b.Speed
	case components.BulletAimed:
		return x + b.VX, y + b.VY
	case components.BulletSpread:
		return x + math.Sin(b.Angle)*b.Speed, y + math.Cos(b.Angle)*b.Speed
	}
	return x, y
}

// AlienVolley returns the shots an alien of type t fires from (cx, cy).
// Small aliens aim at the player, large ones fan out three ways around
// straight down and bosses fire a full ring.
func AlienVolley(t leveldata.AlienType, cx, cy, px, py float64, hasPlayer bool) []components.BulletData {
	speed := cfg.Bullet.AlienSpeed

	switch t.Category {
	case leveldata.CategoryLarge:
		n := max(cfg.Bullet.SpreadCount, 1)
		shots := make([]components.BulletData, n)
		for i := range shots {
			offset := float64(i) - float64(n-1)/2
			shots[i] = components.BulletData{
				Kind:   components.BulletSpread,
				Owner:  components.OwnerAlien,
				Speed:  speed,
				Angle:  offset * cfg.Bullet.SpreadAngle,
				Damage: 1,
			}
		}
		return shots
	case leveldata.CategoryBoss:
		n := max(cfg.Bullet.RingCount, 1)
		shots := make([]components.BulletData, n)
		for i := range shots {
			shots[i] = components.BulletData{
				Kind:   components.BulletSpread,
				Owner:  components.OwnerAlien,
				Speed:  speed,
				Angle:  2 * math.Pi * float64(i) / float64(n),
				Damage: 1,
			}
		}
		return shots
	}

	if !hasPlayer {
		return []components.BulletData{{
			Kind:   components.BulletStraight,
			Owner:  components.OwnerAlien,
			Speed:  speed,
			Damage: 1,
		}}
	}
	vx, vy := gamemath.HomingVelocity(cx, cy, px, py, speed)
	if vx == 0 && vy == 0 {
		vy = speed
	}
	return []components.BulletData{{
		Kind:   components.BulletAimed,
		Owner:  components.OwnerAlien,
		VX:     vx,
		VY:     vy,
		Damage: 1,
	}}
}

// PlayerVolley returns the x offsets of the player's shots.
func PlayerVolley(doubleShot bool) []float64 {
	if doubleShot {
		return []float64{-cfg.Bullet.DoubleOffset, cfg.Bullet.DoubleOffset}
	}
	return []float64{0}
}

func firePlayerShots(ecs *ecs.ECS, cx, cy float64, doubleShot bool) {
	PlaySFX(ecs, cfg.SoundPlayerShot)
	for _, dx := range PlayerVolley(doubleShot) {
		factory.CreateBullet(ecs, cx+dx, cy, components.BulletData{
			Kind:   components.BulletStraight,
			Owner:  components.OwnerPlayer,
			Speed:  -cfg.Bullet.PlayerSpeed,
			Damage: cfg.Bullet.PlayerDamage,
		})
	}
}

func fireAlienVolley(ecs *ecs.ECS, t leveldata.AlienType, cx, cy float64) {
	px, py, ok := playerCentre(ecs)
	shots := AlienVolley(t, cx, cy, px, py, ok)
	for _, shot := range shots {
		factory.CreateBullet(ecs, cx, cy, shot)
	}
	if len(shots) > 0 {
		PlaySFX(ecs, cfg.SoundAlienShot)
	}
}

// UpdateBullets moves every projectile and discards those off screen.
func UpdateBullets(ecs *ecs.ECS) {
	w, h := float64(cfg.C.Width), float64(cfg.C.Height)

	var gone []*donburi.Entry
	tags.Bullet.Each(ecs.World, func(e *donburi.Entry) {
		bullet := components.Bullet.Get(e)
		obj := components.Object.Get(e)
		obj.X, obj.Y = StepBullet(bullet, obj.X, obj.Y)

		if obj.Y+obj.H < 0 || obj.Y > h || obj.X+obj.W < 0 || obj.X > w {
			gone = append(gone, e)
		}
	})
	for _, e := range gone {
		factory.Destroy(ecs, e)
	}
}
