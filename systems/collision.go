package systems

import (
	"github.com/automoto/starlane/components"
	cfg "github.com/automoto/starlane/config"
	"github.com/automoto/starlane/systems/factory"
	"github.com/automoto/starlane/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateCollisions resolves shots against ships and bonuses against the
// player. Must run after UpdateObjects so the space is current.
func UpdateCollisions(ecs *ecs.ECS) {
	var spent []*donburi.Entry

	tags.Bullet.Each(ecs.World, func(e *donburi.Entry) {
		bullet := components.Bullet.Get(e)
		obj := components.Object.Get(e)

		target := tags.ResolvAlien
		if bullet.Owner == components.OwnerAlien {
			target = tags.ResolvPlayer
		}
		hit := firstOverlap(obj, target, func(other *donburi.Entry) bool {
			if bullet.Owner == components.OwnerAlien {
				return hitPlayer(ecs, other)
			}
			if !damageAlien(other, bullet.Damage) {
				return false
			}
			PlaySFX(ecs, cfg.SoundHit)
			return true
		})
		if hit {
			spent = append(spent, e)
		}
	})

	if playerEntry, ok := tags.Player.First(ecs.World); ok {
		obj := components.Object.Get(playerEntry)
		firstOverlap(obj, tags.ResolvAlien, func(alien *donburi.Entry) bool {
			if alien.HasComponent(components.Death) || !hitPlayer(ecs, playerEntry) {
				return false
			}
			damageAlien(alien, cfg.Aliens.ContactDamage)
			return true
		})
		collectBonuses(ecs, playerEntry, &spent)
	}

	for _, e := range spent {
		factory.Destroy(ecs, e)
	}
}

// firstOverlap calls onHit for objects with the tag that overlap obj until
// one of the calls returns true.
func firstOverlap(obj *components.ObjectData, tag string, onHit func(*donburi.Entry) bool) bool {
	check := obj.Check(0, 0, tag)
	if check == nil {
		return false
	}
	for _, other := range check.ObjectsByTags(tag) {
		if !obj.Overlaps(other) {
			continue
		}
		entry, ok := other.Data.(*donburi.Entry)
		if !ok || !entry.Valid() {
			continue
		}
		if onHit(entry) {
			return true
		}
	}
	return false
}

// hitPlayer is HitPlayer plus the feedback of a landed hit.
func hitPlayer(ecs *ecs.ECS, e *donburi.Entry) bool {
	if !HitPlayer(e) {
		return false
	}
	PlaySFX(ecs, cfg.SoundPlayerHit)
	TriggerScreenShake(ecs, cfg.Camera.HitShake, cfg.Camera.HitShakeFrames)
	return true
}

func damageAlien(e *donburi.Entry, damage int) bool {
	if e.HasComponent(components.Death) {
		return false
	}
	health := components.Health.Get(e)
	health.Current -= damage
	components.Flash.Get(e).Frames = cfg.Aliens.HitFlashFrames
	return true
}

func collectBonuses(ecs *ecs.ECS, playerEntry *donburi.Entry, spent *[]*donburi.Entry) {
	scoreEntry, ok := components.Score.First(ecs.World)
	if !ok {
		return
	}
	obj := components.Object.Get(playerEntry)
	check := obj.Check(0, 0, tags.ResolvBonus)
	if check == nil {
		return
	}
	for _, other := range check.ObjectsByTags(tags.ResolvBonus) {
		entry, ok := other.Data.(*donburi.Entry)
		if !ok || !entry.Valid() || !obj.Overlaps(other) {
			continue
		}
		ApplyBonus(components.Bonus.Get(entry).Kind,
			components.Player.Get(playerEntry),
			components.Lives.Get(playerEntry),
			components.Score.Get(scoreEntry),
		)
		*spent = append(*spent, entry)
		PlaySFX(ecs, cfg.SoundBonus)
	}
}
