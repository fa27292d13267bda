package components

import "github.com/yohamta/donburi"

// BonusKind identifies the power-up carried by a falling bonus.
type BonusKind int

const (
	BonusExtraLife BonusKind = iota
	BonusScore
	BonusDoubleShot
	BonusSpeed
	BonusMultiplier
	BonusKindCount
)

func (k BonusKind) String() string {
	switch k {
	case BonusExtraLife:
		return "extra_life"
	case BonusScore:
		return "score"
	case BonusDoubleShot:
		return "double_shot"
	case BonusSpeed:
		return "speed"
	case BonusMultiplier:
		return "multiplier"
	}
	return "unknown"
}

type BonusData struct {
	Kind  BonusKind
	Speed float64
}

var Bonus = donburi.NewComponentType[BonusData]()
