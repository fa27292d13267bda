package systems

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/automoto/starlane/components"
	cfg "github.com/automoto/starlane/config"
)

func freshScore() *components.ScoreData {
	return &components.ScoreData{Multiplier: 1, LevelMultiplier: 1}
}

func TestAwardKillBuildsCombo(t *testing.T) {
	s := freshScore()

	assert.Equal(t, 100, AwardKill(s, 100))
	assert.Equal(t, 110, AwardKill(s, 100))
	assert.Equal(t, 120, AwardKill(s, 100))
	assert.Equal(t, 330, s.Score)
	assert.Equal(t, 3, s.Combo)
	assert.Equal(t, 3, s.Kills)
	assert.Equal(t, 330, s.HighScore)
}

func TestComboResetsAfterTimeout(t *testing.T) {
	s := freshScore()
	AwardKill(s, 100)
	AwardKill(s, 100)

	TickScore(s, cfg.Score.ComboTimeout+time.Millisecond)
	assert.Zero(t, s.Combo)
	assert.Equal(t, 100, AwardKill(s, 100))
}

func TestMultipliersStack(t *testing.T) {
	s := freshScore()
	s.LevelMultiplier = cfg.Score.BonusLevelMultiplier
	ActivateMultiplier(s, 2, time.Second)

	assert.Equal(t, 100*2*cfg.Score.BonusLevelMultiplier, AwardKill(s, 100))
}

func TestMultiplierExpires(t *testing.T) {
	s := freshScore()
	ActivateMultiplier(s, 2, time.Second)

	TickScore(s, 500*time.Millisecond)
	assert.Equal(t, 2, s.Multiplier)
	TickScore(s, 600*time.Millisecond)
	assert.Equal(t, 1, s.Multiplier)
	assert.Zero(t, s.MultiplierLeft)
}

func TestHighScoreNeverDrops(t *testing.T) {
	s := freshScore()
	s.HighScore = 5000

	AddScore(s, 200)
	assert.Equal(t, 200, s.Score)
	assert.Equal(t, 5000, s.HighScore)
}

func TestExtraLifeThresholds(t *testing.T) {
	every := cfg.Player.ExtraLifeEvery
	lives := &components.LivesData{Lives: 2, MaxLives: 5, NextExtraAt: every}

	assert.Zero(t, AwardExtraLives(lives, every-1))
	assert.Equal(t, 1, AwardExtraLives(lives, every))
	assert.Equal(t, 3, lives.Lives)
	assert.Equal(t, 2*every, lives.NextExtraAt)

	// A big jump passes two thresholds at once
	assert.Equal(t, 2, AwardExtraLives(lives, 3*every+10))
	assert.Equal(t, 5, lives.Lives)

	// At the cap the threshold still moves on
	assert.Zero(t, AwardExtraLives(lives, 4*every))
	assert.Equal(t, 5, lives.Lives)
	assert.Equal(t, 5*every, lives.NextExtraAt)
}

func TestExtraLivesDisabled(t *testing.T) {
	lives := &components.LivesData{Lives: 1, MaxLives: 5}
	assert.Zero(t, AwardExtraLives(lives, 1_000_000))
}
