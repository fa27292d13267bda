package tags

import "github.com/yohamta/donburi"

var (
	Player = donburi.NewTag().SetName("Player")
	Alien  = donburi.NewTag().SetName("Alien")
	Bullet = donburi.NewTag().SetName("Bullet")
	Bonus  = donburi.NewTag().SetName("Bonus")
)

// Resolv tags for collision
const (
	ResolvPlayer     = "Player"
	ResolvAlien      = "Alien"
	ResolvPlayerShot = "PlayerShot"
	ResolvAlienShot  = "AlienShot"
	ResolvBonus      = "Bonus"
)
