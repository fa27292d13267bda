package leveldata

import (
	"bytes"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testRNG() *rand.Rand {
	return rand.New(rand.NewSource(12345))
}

func TestGeneratorIsDeterministic(t *testing.T) {
	a, err := NewGenerator(testRNG()).Generate(42)
	require.NoError(t, err)
	b, err := NewGenerator(testRNG()).Generate(42)
	require.NoError(t, err)

	assert.Equal(t, a.Groups.Items(), b.Groups.Items())
	assert.Equal(t, a.Difficulty, b.Difficulty)
}

func TestGeneratorBands(t *testing.T) {
	gen := NewGenerator(testRNG())
	for level := 1; level <= CampaignLength; level++ {
		l, err := gen.Generate(level)
		require.NoError(t, err)

		band, ok := bandFor(level)
		require.True(t, ok)
		assert.GreaterOrEqual(t, l.Difficulty, band.minDiff)
		assert.LessOrEqual(t, l.Difficulty, band.maxDiff)
		assert.InDelta(t, 1+0.1*float64(l.Difficulty), l.BackgroundSpeed, 1e-9)
		assert.Equal(t, IsBonusLevel(level), l.HasEffect(EffectBonusMultiplier))

		for _, g := range l.Groups.Items() {
			assert.Positive(t, g.Count)
			assert.Positive(t, g.Health)
			assert.GreaterOrEqual(t, g.ShootInterval, 0.5)
			assert.True(t, g.Formation.Valid())
			assert.True(t, g.Movement.Valid())
			if !g.AlienType.IsBoss() {
				assert.GreaterOrEqual(t, g.AlienType.Number, band.minType)
				assert.LessOrEqual(t, g.AlienType.Number, band.maxType)
			}
		}
	}

	_, err := gen.Generate(CampaignLength + 1)
	assert.Error(t, err)
}

func TestGeneratorBossLevel(t *testing.T) {
	l, err := NewGenerator(testRNG()).Generate(50)
	require.NoError(t, err)

	require.NotNil(t, l.Boss)
	assert.Equal(t, "boss_02", l.Boss.Type)
	assert.Equal(t, 100, l.Boss.Health)
	assert.False(t, l.HasEffect(EffectBonusMultiplier))

	groups := l.Groups.Items()
	require.Len(t, groups, 3)
	assert.True(t, groups[0].AlienType.IsBoss())
	assert.Equal(t, 1, groups[0].Count)
	assert.Equal(t, MovementHold, groups[0].Movement)
}

func TestGeneratedLevelsLoad(t *testing.T) {
	gen := NewGenerator(testRNG())
	files := map[string]string{}
	for level := 1; level <= 30; level++ {
		l, err := gen.Generate(level)
		require.NoError(t, err)
		var buf bytes.Buffer
		require.NoError(t, Encode(&buf, l))
		files[FileName(level)] = buf.String()
	}

	repo := testRepo(files)
	for level := 1; level <= 30; level++ {
		_, err := repo.Load(level)
		assert.NoError(t, err, "level %d", level)
	}
}

func TestSpeedAndShootInterval(t *testing.T) {
	assert.InDelta(t, 1.5, Speed(CategorySmall, 3), 1e-9)
	assert.InDelta(t, 1.0, Speed(CategoryLarge, 2), 1e-9)
	assert.InDelta(t, 1.6, Speed(CategoryBoss, 10), 1e-9)

	assert.InDelta(t, 2.8, ShootInterval(CategorySmall, 1), 1e-9)
	assert.InDelta(t, 0.5, ShootInterval(CategoryBoss, 10), 1e-9)
}
