package components

import "github.com/yohamta/donburi"

type LivesData struct {
	Lives    int
	MaxLives int
	// Score at which the next extra life is awarded, 0 = never
	NextExtraAt int
}

var Lives = donburi.NewComponentType[LivesData]()
