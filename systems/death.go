package systems

import (
	"github.com/automoto/starlane/components"
	cfg "github.com/automoto/starlane/config"
	"github.com/automoto/starlane/leveldata"
	"github.com/automoto/starlane/systems/factory"
	"github.com/automoto/starlane/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// Game over delay in frames (45 frames = 0.75 seconds at 60fps)
const gameOverDelayFrames = 45

// UpdateDeaths starts the death sequence of destroyed aliens and of a player
// out of lives, then removes them once their timer runs out. Runs while the
// run is over so the last explosion still plays.
func UpdateDeaths(ecs *ecs.ECS) {
	var dying []*donburi.Entry
	tags.Alien.Each(ecs.World, func(e *donburi.Entry) {
		if !e.HasComponent(components.Death) && components.Health.Get(e).Current <= 0 {
			dying = append(dying, e)
		}
	})
	for _, e := range dying {
		killAlien(ecs, e)
	}

	if playerEntry, ok := tags.Player.First(ecs.World); ok {
		if !playerEntry.HasComponent(components.Death) && components.Lives.Get(playerEntry).Lives <= 0 {
			donburi.Add(playerEntry, components.Death, &components.DeathData{Timer: gameOverDelayFrames})
		}
	}

	var done []*donburi.Entry
	components.Death.Each(ecs.World, func(e *donburi.Entry) {
		death := components.Death.Get(e)
		death.Timer--
		if death.Timer <= 0 {
			done = append(done, e)
		}
	})
	for _, e := range done {
		factory.Destroy(ecs, e)
	}
}

// killAlien scores the kill, rolls a bonus drop and starts the explosion.
// The orchestrator sees the alien as dead from here on.
func killAlien(ecs *ecs.ECS, e *donburi.Entry) {
	alien := components.Alien.Get(e)
	cx, cy := components.Object.Get(e).Centre()
	points := alien.Points
	boss := alien.Type.Category == leveldata.CategoryBoss

	PlaySFX(ecs, cfg.SoundExplosion)
	if boss {
		TriggerScreenShake(ecs, cfg.Camera.BossShake, cfg.Camera.BossShakeFrames)
	}

	donburi.Add(e, components.Death, &components.DeathData{
		Timer:  cfg.Aliens.DeathFrames,
		Scored: true,
	})

	campaignEntry, ok := components.Campaign.First(ecs.World)
	if !ok {
		return
	}
	campaign := components.Campaign.Get(campaignEntry)
	campaign.Engine.Forget(alienActor{entry: e})
	AwardKill(components.Score.Get(campaignEntry), points)

	particles := cfg.Explosion.Particles
	if boss {
		particles = cfg.Explosion.BossParticles
	}
	factory.CreateExplosion(ecs, cx, cy, factory.AlienStyle(alien.Type).Color, particles, campaign.Rand)
	if campaign.Shake && !boss {
		TriggerScreenShake(ecs, cfg.Camera.KillShake, cfg.Camera.KillShakeFrames)
	}

	if kind, drop := RollBonusDrop(campaign.Rand, campaign.PowerUps); drop {
		factory.CreateBonus(ecs, kind, cx, cy)
	}
}
