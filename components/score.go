package components

import (
	"time"

	"github.com/yohamta/donburi"
)

// ScoreData is the running score of the current campaign.
type ScoreData struct {
	Score     int
	HighScore int
	Combo     int
	// Time since the last kill; the combo resets once it passes the timeout
	SinceKill time.Duration

	Multiplier     int
	MultiplierLeft time.Duration
	// Level-wide factor, 3 on bonus levels
	LevelMultiplier int
	Kills           int
}

var Score = donburi.NewComponentType[ScoreData]()
