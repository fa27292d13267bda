package systems

import (
	"math/rand"

	"github.com/automoto/starlane/components"
	cfg "github.com/automoto/starlane/config"
	"github.com/automoto/starlane/systems/factory"
	"github.com/automoto/starlane/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

type bonusWeight struct {
	kind   components.BonusKind
	weight int
}

func bonusTable() []bonusWeight {
	return []bonusWeight{
		{components.BonusExtraLife, cfg.Bonus.WeightExtraLife},
		{components.BonusScore, cfg.Bonus.WeightScore},
		{components.BonusDoubleShot, cfg.Bonus.WeightDoubleShot},
		{components.BonusSpeed, cfg.Bonus.WeightSpeed},
		{components.BonusMultiplier, cfg.Bonus.WeightMultiplier},
	}
}

// PickBonus draws a bonus kind from the weighted table.
func PickBonus(rng *rand.Rand) components.BonusKind {
	table := bonusTable()
	total := 0
	for _, b := range table {
		total += max(b.weight, 0)
	}
	if total == 0 {
		return components.BonusScore
	}

	n := rng.Intn(total)
	for _, b := range table {
		if b.weight <= 0 {
			continue
		}
		if n < b.weight {
			return b.kind
		}
		n -= b.weight
	}
	return components.BonusScore
}

// RollBonusDrop decides whether a kill drops a bonus, given the level's
// power-up frequency in [0, 1].
func RollBonusDrop(rng *rand.Rand, frequency float64) (components.BonusKind, bool) {
	if frequency <= 0 || rng.Float64() >= frequency {
		return 0, false
	}
	return PickBonus(rng), true
}

// ApplyBonus hands a collected bonus to the player.
func ApplyBonus(kind components.BonusKind, player *components.PlayerData, lives *components.LivesData, score *components.ScoreData) {
	switch kind {
	case components.BonusExtraLife:
		lives.Lives = min(lives.Lives+1, lives.MaxLives)
	case components.BonusScore:
		AddScore(score, cfg.Bonus.ScoreValue)
	case components.BonusDoubleShot:
		player.DoubleShot = cfg.Bonus.Duration
	case components.BonusSpeed:
		player.SpeedBoost = cfg.Bonus.Duration
		player.SpeedFactor = cfg.Bonus.SpeedFactor
	case components.BonusMultiplier:
		ActivateMultiplier(score, cfg.Bonus.MultiplierFactor, cfg.Bonus.Duration)
	}
}

// UpdateBonuses lets dropped bonuses fall and discards the ones that leave
// the screen.
func UpdateBonuses(ecs *ecs.ECS) {
	var gone []*donburi.Entry
	tags.Bonus.Each(ecs.World, func(e *donburi.Entry) {
		bonus := components.Bonus.Get(e)
		obj := components.Object.Get(e)
		obj.Y += bonus.Speed
		if obj.Y > float64(cfg.C.Height) {
			gone = append(gone, e)
		}
	})
	for _, e := range gone {
		factory.Destroy(ecs, e)
	}
}
