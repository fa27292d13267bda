package systems

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/automoto/starlane/components"
	cfg "github.com/automoto/starlane/config"
)

func TestPickBonusDrawsEveryKind(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	seen := map[components.BonusKind]int{}
	for i := 0; i < 2000; i++ {
		seen[PickBonus(rng)]++
	}

	for k := components.BonusKind(0); k < components.BonusKindCount; k++ {
		assert.Positive(t, seen[k], k.String())
	}
	// Score carries the heaviest weight
	assert.Greater(t, seen[components.BonusScore], seen[components.BonusExtraLife])
}

func TestRollBonusDropFrequency(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	for i := 0; i < 100; i++ {
		_, drop := RollBonusDrop(rng, 0)
		assert.False(t, drop)
	}
	for i := 0; i < 100; i++ {
		_, drop := RollBonusDrop(rng, 1)
		assert.True(t, drop)
	}
}

func TestApplyBonus(t *testing.T) {
	player := &components.PlayerData{SpeedFactor: 1}
	lives := &components.LivesData{Lives: 5, MaxLives: 5}
	score := freshScore()

	ApplyBonus(components.BonusExtraLife, player, lives, score)
	assert.Equal(t, 5, lives.Lives, "capped at max")

	ApplyBonus(components.BonusScore, player, lives, score)
	assert.Equal(t, cfg.Bonus.ScoreValue, score.Score)

	ApplyBonus(components.BonusDoubleShot, player, lives, score)
	assert.Equal(t, cfg.Bonus.Duration, player.DoubleShot)

	ApplyBonus(components.BonusSpeed, player, lives, score)
	assert.Equal(t, cfg.Bonus.SpeedFactor, player.SpeedFactor)

	ApplyBonus(components.BonusMultiplier, player, lives, score)
	assert.Equal(t, cfg.Bonus.MultiplierFactor, score.Multiplier)
}

func TestPowerUpsRunOut(t *testing.T) {
	player := &components.PlayerData{SpeedFactor: 1}
	ApplyBonus(components.BonusSpeed, player, &components.LivesData{}, freshScore())
	ApplyBonus(components.BonusDoubleShot, player, &components.LivesData{}, freshScore())

	tickPowerUps(player, cfg.Bonus.Duration)
	assert.Zero(t, player.DoubleShot)
	assert.Zero(t, player.SpeedBoost)
	assert.Equal(t, 1.0, player.SpeedFactor)
}
