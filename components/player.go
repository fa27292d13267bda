package components

import (
	"time"

	"github.com/yohamta/donburi"
)

type PlayerData struct {
	InvulnFrames int // Invulnerability frames timer
	FireCooldown int
	DoubleShot   time.Duration // Remaining double-shot time
	SpeedBoost   time.Duration
	SpeedFactor  float64
}

var Player = donburi.NewComponentType[PlayerData]()
