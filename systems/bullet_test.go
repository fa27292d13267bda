package systems

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/automoto/starlane/components"
	cfg "github.com/automoto/starlane/config"
	"github.com/automoto/starlane/leveldata"
)

func TestStepBullet(t *testing.T) {
	straight := &components.BulletData{Kind: components.BulletStraight, Speed: -9}
	x, y := StepBullet(straight, 10, 100)
	assert.Equal(t, 10.0, x)
	assert.Equal(t, 91.0, y)

	aimed := &components.BulletData{Kind: components.BulletAimed, VX: 3, VY: 4}
	x, y = StepBullet(aimed, 0, 0)
	assert.Equal(t, 3.0, x)
	assert.Equal(t, 4.0, y)

	// Angle 0 is straight down
	down := &components.BulletData{Kind: components.BulletSpread, Speed: 4}
	x, y = StepBullet(down, 0, 0)
	assert.InDelta(t, 0, x, 1e-9)
	assert.InDelta(t, 4, y, 1e-9)

	side := &components.BulletData{Kind: components.BulletSpread, Speed: 4, Angle: math.Pi / 2}
	x, y = StepBullet(side, 0, 0)
	assert.InDelta(t, 4, x, 1e-9)
	assert.InDelta(t, 0, y, 1e-9)
}

func TestAlienVolleyByCategory(t *testing.T) {
	large := AlienVolley(leveldata.MustAlienType("alien_02_large"), 100, 100, 100, 500, true)
	require.Len(t, large, cfg.Bullet.SpreadCount)
	for _, s := range large {
		assert.Equal(t, components.BulletSpread, s.Kind)
		assert.Equal(t, components.OwnerAlien, s.Owner)
	}
	// Fan is symmetric around straight down
	assert.InDelta(t, 0, large[0].Angle+large[len(large)-1].Angle, 1e-9)

	boss := AlienVolley(leveldata.MustAlienType("boss_01"), 100, 100, 100, 500, true)
	assert.Len(t, boss, cfg.Bullet.RingCount)
}

func TestSmallAlienAimsAtPlayer(t *testing.T) {
	shots := AlienVolley(leveldata.MustAlienType("alien_01_small"), 100, 100, 100+30, 100+40, true)
	require.Len(t, shots, 1)
	s := shots[0]
	assert.Equal(t, components.BulletAimed, s.Kind)
	assert.InDelta(t, cfg.Bullet.AlienSpeed*0.6, s.VX, 1e-9)
	assert.InDelta(t, cfg.Bullet.AlienSpeed*0.8, s.VY, 1e-9)
}

func TestSmallAlienFiresDownWithoutPlayer(t *testing.T) {
	shots := AlienVolley(leveldata.MustAlienType("alien_01_small"), 100, 100, 0, 0, false)
	require.Len(t, shots, 1)
	assert.Equal(t, components.BulletStraight, shots[0].Kind)
	assert.Positive(t, shots[0].Speed)
}

func TestPlayerVolley(t *testing.T) {
	assert.Equal(t, []float64{0}, PlayerVolley(false))
	assert.Equal(t, []float64{-cfg.Bullet.DoubleOffset, cfg.Bullet.DoubleOffset}, PlayerVolley(true))
}
