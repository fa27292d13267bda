package components

import "github.com/yohamta/donburi"

// BulletKind is the closed set of projectile variants.
type BulletKind int

const (
	BulletStraight BulletKind = iota // Fixed vertical speed
	BulletAimed                      // Fixed velocity chosen at fire time
	BulletSpread                     // Angle and speed, angle 0 is straight down
)

func (k BulletKind) String() string {
	switch k {
	case BulletStraight:
		return "straight"
	case BulletAimed:
		return "aimed"
	case BulletSpread:
		return "spread"
	}
	return "unknown"
}

type BulletOwner int

const (
	OwnerPlayer BulletOwner = iota
	OwnerAlien
)

type BulletData struct {
	Kind   BulletKind
	Owner  BulletOwner
	Speed  float64 // Straight and spread
	Angle  float64 // Spread
	VX, VY float64 // Aimed
	Damage int
}

var Bullet = donburi.NewComponentType[BulletData]()
