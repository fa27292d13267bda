package components

import (
	cfg "github.com/automoto/starlane/config"
	"github.com/yohamta/donburi"
)

// AudioData queues the sound effects raised during a frame (singleton component)
type AudioData struct {
	PendingSFX []cfg.SoundID
}

var Audio = donburi.NewComponentType[AudioData]()
