package leveldata

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAlienType(t *testing.T) {
	tests := []struct {
		id       string
		category Category
		number   int
		subtype  int
		points   int
		health   int
	}{
		{"alien_01", CategorySmall, 1, 1, 100, 1},
		{"alien_03_small_2", CategorySmall, 3, 2, 300, 3},
		{"alien_05_large", CategoryLarge, 5, 1, 1000, 10},
		{"ALIEN_02_LARGE_1", CategoryLarge, 2, 1, 400, 4},
		{"boss_04", CategoryBoss, 4, 1, 4000, 40},
	}

	for _, tt := range tests {
		t.Run(tt.id, func(t *testing.T) {
			at, err := ParseAlienType(tt.id)
			require.NoError(t, err)
			assert.Equal(t, tt.category, at.Category)
			assert.Equal(t, tt.number, at.Number)
			assert.Equal(t, tt.subtype, at.Subtype)
			assert.Equal(t, tt.points, at.Points())
			assert.Equal(t, tt.health, at.BaseHealth())
			assert.Equal(t, tt.category == CategoryBoss, at.IsBoss())
		})
	}
}

func TestParseAlienTypeRejects(t *testing.T) {
	for _, id := range []string{"", "alien", "alien_xx", "alien_00", "alien_26", "ghost_01",
		"alien_01_medium", "alien_01_small_3", "boss_01_large", "alien_01_small_1_extra"} {
		_, err := ParseAlienType(id)
		assert.Error(t, err, id)
	}
}

func TestEnumParsingIgnoresCase(t *testing.T) {
	f, err := ParseFormation(" Diamond ")
	require.NoError(t, err)
	assert.Equal(t, FormationDiamond, f)

	e, err := ParseEntryPoint("RIGHT_TOP")
	require.NoError(t, err)
	assert.Equal(t, EntryRightTop, e)
	assert.True(t, e.Side())
	assert.False(t, EntryTopLeft.Side())

	m, err := ParseMovement("Teleport")
	require.NoError(t, err)
	assert.Equal(t, MovementTeleport, m)

	_, err = ParseMovement("moonwalk")
	assert.Error(t, err)
}

func TestEnumCatalogues(t *testing.T) {
	assert.Len(t, Formations(), 8)
	assert.Len(t, EntryPoints(), 5)
	assert.Len(t, Movements(), 10)

	for _, m := range Movements() {
		back, err := ParseMovement(m.String())
		require.NoError(t, err)
		assert.Equal(t, m, back)
	}
}

func TestEnumJSON(t *testing.T) {
	data, err := json.Marshal(struct {
		F Formation  `json:"f"`
		E EntryPoint `json:"e"`
		M Movement   `json:"m"`
	}{FormationStar, EntryTopRight, MovementReserved})
	require.NoError(t, err)
	assert.JSONEq(t, `{"f":"star","e":"top_right","m":"reserved"}`, string(data))

	_, err = json.Marshal(Formation(42))
	assert.Error(t, err)
}
