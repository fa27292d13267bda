package assets

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/automoto/starlane/leveldata"
)

func TestEmbeddedCampaignLoads(t *testing.T) {
	repo := leveldata.NewRepository(EmbeddedLevels(), ".")
	levels, err := repo.Available()
	require.NoError(t, err)
	require.NotEmpty(t, levels)

	for i, n := range levels {
		assert.Equal(t, i+1, n, "levels are numbered without gaps")
		desc, err := repo.Load(n)
		require.NoError(t, err, "level %d", n)
		assert.Equal(t, n, desc.Number)
		assert.Positive(t, desc.Groups.Len(), "level %d", n)
	}
}

func TestBuiltInCampaignRunsPastTheFiles(t *testing.T) {
	campaign := Levels("")
	levels, err := campaign.Files.Available()
	require.NoError(t, err)
	last := levels[len(levels)-1]
	require.Less(t, last, leveldata.BossEvery)

	next, err := campaign.Load(last + 1)
	require.NoError(t, err)
	assert.Equal(t, last+1, next.Number)

	boss, err := campaign.Load(leveldata.BossEvery)
	require.NoError(t, err)
	assert.NotNil(t, boss.Boss)

	_, err = campaign.Load(leveldata.CampaignLength + 1)
	assert.ErrorIs(t, err, leveldata.ErrNotFound)
}

func TestLevelsDirServesFilesOnly(t *testing.T) {
	_, err := Levels(t.TempDir()).Load(1)
	assert.ErrorIs(t, err, leveldata.ErrNotFound)
}

func TestEmbeddedArena(t *testing.T) {
	arena, err := Arena("arena/arena.tmx")
	require.NoError(t, err)
	require.NotNil(t, arena.PlayLeft)
	require.NotNil(t, arena.PlayRight)
	assert.Less(t, *arena.PlayLeft, *arena.PlayRight)
}
