package systems

import (
	"encoding/json"
	"log"

	"github.com/quasilyte/gdata"
)

const progressKey = "progress"

// SavedGameProgress is the campaign state stored on disk
type SavedGameProgress struct {
	Level     int `json:"level"`     // Where Continue resumes, 0 = fresh start
	BestLevel int `json:"bestLevel"` // Furthest level ever reached
	HighScore int `json:"highScore"` // Best score across runs
}

var gdataManager *gdata.Manager

// InitPersistence initializes the gdata manager for progress storage
func InitPersistence() error {
	m, err := gdata.Open(gdata.Config{
		AppName: "starlane",
	})
	if err != nil {
		return err
	}
	gdataManager = m
	return nil
}

// LoadGameProgress returns the saved progress, or nil when there is none.
func LoadGameProgress() (*SavedGameProgress, error) {
	var progress SavedGameProgress
	found, err := loadItem(progressKey, &progress)
	if err != nil || !found {
		return nil, err
	}
	return &progress, nil
}

// SaveGameProgress records the level reached and the high score. Neither
// value ever moves backwards.
func SaveGameProgress(level, highScore int) error {
	progress := SavedGameProgress{Level: level, BestLevel: level, HighScore: highScore}
	if saved, _ := LoadGameProgress(); saved != nil {
		progress = mergeProgress(*saved, progress)
	}
	return saveItem(progressKey, progress)
}

func mergeProgress(saved, next SavedGameProgress) SavedGameProgress {
	return SavedGameProgress{
		Level:     max(saved.Level, next.Level),
		BestLevel: max(saved.BestLevel, next.BestLevel, next.Level),
		HighScore: max(saved.HighScore, next.HighScore),
	}
}

// HighScore returns the saved high score, 0 without persistence.
func HighScore() int {
	if p, _ := LoadGameProgress(); p != nil {
		return p.HighScore
	}
	return 0
}

// ClearGameProgress forgets where Continue resumes but keeps the records.
func ClearGameProgress() error {
	saved, err := LoadGameProgress()
	if err != nil || saved == nil {
		return err
	}
	return saveItem(progressKey, clearedProgress(*saved))
}

func clearedProgress(p SavedGameProgress) SavedGameProgress {
	p.Level = 0
	return p
}

// loadItem decodes the JSON item under key into v. Without persistence, or
// when nothing was saved yet, it reports false.
func loadItem(key string, v any) (bool, error) {
	if gdataManager == nil {
		return false, nil
	}
	data, err := gdataManager.LoadItem(key)
	if err != nil {
		log.Printf("Warning: Could not load %s: %v", key, err)
		return false, nil
	}
	if len(data) == 0 {
		return false, nil
	}
	if err := json.Unmarshal(data, v); err != nil {
		log.Printf("Warning: Could not parse saved %s: %v", key, err)
		return false, err
	}
	return true, nil
}

func saveItem(key string, v any) error {
	if gdataManager == nil {
		return nil
	}
	data, err := json.Marshal(v)
	if err != nil {
		return err
	}
	if err := gdataManager.SaveItem(key, data); err != nil {
		log.Printf("Warning: Could not save %s: %v", key, err)
		return err
	}
	return nil
}
