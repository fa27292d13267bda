package components

import "github.com/yohamta/donburi"

type HealthData struct {
	Current int
	Max     int
}

// FlashData tints an entity for a few frames after it takes a hit.
type FlashData struct {
	Frames int
}

var Health = donburi.NewComponentType[HealthData]()
var Flash = donburi.NewComponentType[FlashData]()
