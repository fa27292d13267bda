package systems

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/automoto/starlane/components"
	cfg "github.com/automoto/starlane/config"
	"github.com/automoto/starlane/systems/factory"
)

func TestScreenShakeDecaysAndEnds(t *testing.T) {
	e := ecs.NewECS(donburi.NewWorld())
	camera := factory.CreateCamera(e)

	TriggerScreenShake(e, 8, 10)
	require.True(t, camera.HasComponent(components.ScreenShake))

	UpdateCamera(e)
	x, y := CameraOffset(e)
	assert.NotZero(t, x+y)

	for i := 0; i < 9; i++ {
		UpdateCamera(e)
	}
	assert.False(t, camera.HasComponent(components.ScreenShake))

	UpdateCamera(e)
	x, y = CameraOffset(e)
	assert.Zero(t, x)
	assert.Zero(t, y)
}

func TestWeakerShakeKeepsStronger(t *testing.T) {
	e := ecs.NewECS(donburi.NewWorld())
	camera := factory.CreateCamera(e)

	TriggerScreenShake(e, 12, 40)
	TriggerScreenShake(e, 3, 10)
	shake := components.ScreenShake.Get(camera)
	assert.Equal(t, 12.0, shake.Intensity)
	assert.Equal(t, 40, shake.Duration)

	// A fading shake is replaced by a fresh one
	shake.Elapsed = 39
	TriggerScreenShake(e, 3, 10)
	assert.Equal(t, 3.0, shake.Intensity)
	assert.Zero(t, shake.Elapsed)
}

func TestShakeWithoutCamera(t *testing.T) {
	e := ecs.NewECS(donburi.NewWorld())
	TriggerScreenShake(e, 8, 10)
	UpdateCamera(e)
	x, y := CameraOffset(e)
	assert.Zero(t, x)
	assert.Zero(t, y)
}

func TestExplosionParticlesExpire(t *testing.T) {
	e := ecs.NewECS(donburi.NewWorld())
	factory.CreateExplosion(e, 100, 100, cfg.Orange, 12, rand.New(rand.NewSource(1)))
	require.Equal(t, 12, countEntries(e.World, components.Particle))

	UpdateEffects(e)
	moved := 0
	components.Particle.Each(e.World, func(p *donburi.Entry) {
		pos := components.Particle.Get(p).Position
		if pos.X != 100 || pos.Y != 100 {
			moved++
		}
	})
	assert.Equal(t, 12, moved)

	for i := 0; i < cfg.Explosion.Life; i++ {
		UpdateEffects(e)
	}
	assert.Zero(t, countEntries(e.World, components.Particle))
}

func TestPlaySFXQueuesOncePerFrame(t *testing.T) {
	e := ecs.NewECS(donburi.NewWorld())
	PlaySFX(e, cfg.SoundAlienShot)
	PlaySFX(e, cfg.SoundAlienShot)
	PlaySFX(e, cfg.SoundHit)

	assert.Equal(t, []cfg.SoundID{cfg.SoundAlienShot, cfg.SoundHit}, GetOrCreateAudio(e).PendingSFX)
}

func TestPlaySFXQueueIsCapped(t *testing.T) {
	e := ecs.NewECS(donburi.NewWorld())
	for id := cfg.SoundPlayerShot; id <= cfg.SoundMenuSelect; id++ {
		PlaySFX(e, id)
	}
	assert.LessOrEqual(t, len(GetOrCreateAudio(e).PendingSFX), cfg.Audio.MaxPending)
}

func TestDebugLinesWithoutCampaign(t *testing.T) {
	e := newTestECS()
	lines := DebugLines(e)
	require.Len(t, lines, 2)
	assert.Contains(t, lines[1], "aliens 0")
}
