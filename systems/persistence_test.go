package systems

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMergeProgressNeverMovesBackwards(t *testing.T) {
	saved := SavedGameProgress{Level: 7, BestLevel: 7, HighScore: 12000}

	assert.Equal(t, SavedGameProgress{Level: 7, BestLevel: 7, HighScore: 15000},
		mergeProgress(saved, SavedGameProgress{Level: 3, BestLevel: 3, HighScore: 15000}))
	assert.Equal(t, SavedGameProgress{Level: 9, BestLevel: 9, HighScore: 12000},
		mergeProgress(saved, SavedGameProgress{Level: 9, BestLevel: 9, HighScore: 100}))
}

func TestBestLevelSurvivesNewGame(t *testing.T) {
	saved := SavedGameProgress{Level: 12, BestLevel: 12, HighScore: 5000}

	cleared := clearedProgress(saved)
	assert.Zero(t, cleared.Level)
	assert.Equal(t, 12, cleared.BestLevel)
	assert.Equal(t, 5000, cleared.HighScore)

	// A new run reaching level 2 resumes there without lowering the record
	next := mergeProgress(cleared, SavedGameProgress{Level: 2, BestLevel: 2})
	assert.Equal(t, 2, next.Level)
	assert.Equal(t, 12, next.BestLevel)
}

func TestProgressWithoutPersistence(t *testing.T) {
	// Nothing is opened in tests, so every call is a no-op
	p, err := LoadGameProgress()
	assert.NoError(t, err)
	assert.Nil(t, p)
	assert.NoError(t, SaveGameProgress(4, 100))
	assert.NoError(t, ClearGameProgress())
	assert.Zero(t, HighScore())
}
