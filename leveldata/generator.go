package leveldata

import (
	"fmt"
	"math/rand"
)

// CampaignLength is the number of levels the generator produces by default.
const CampaignLength = 250

// Level cadence for special levels.
const (
	BossEvery  = 25
	BonusEvery = 10
)

type difficultyBand struct {
	first, last      int
	minDiff, maxDiff int
	minType, maxType int
}

var difficultyBands = []difficultyBand{
	{1, 25, 1, 3, 1, 5},
	{26, 50, 2, 4, 4, 8},
	{51, 100, 3, 5, 7, 12},
	{101, 150, 4, 7, 10, 15},
	{151, 200, 6, 8, 13, 20},
	{201, 250, 7, 10, 15, 25},
}

var groupBehaviorChance = map[Formation]float64{
	FormationLine:    0.4,
	FormationV:       0.6,
	FormationCircle:  0.7,
	FormationDiamond: 0.8,
	FormationWave:    0.5,
}

// Generator builds campaign levels from the difficulty bands. The same seed
// always yields the same campaign.
type Generator struct {
	rng *rand.Rand
}

// NewGenerator returns a generator drawing from rng.
func NewGenerator(rng *rand.Rand) *Generator {
	return &Generator{rng: rng}
}

func (g *Generator) between(lo, hi int) int {
	return lo + g.rng.Intn(hi-lo+1)
}

func bandFor(level int) (difficultyBand, bool) {
	for _, b := range difficultyBands {
		if level >= b.first && level <= b.last {
			return b, true
		}
	}
	return difficultyBand{}, false
}

// IsBossLevel reports whether a level ends in a boss fight.
func IsBossLevel(level int) bool { return level%BossEvery == 0 }

// IsBonusLevel reports whether a level carries the bonus score multiplier.
func IsBonusLevel(level int) bool { return level%BonusEvery == 0 && !IsBossLevel(level) }

// Generate builds one level.
func (g *Generator) Generate(level int) (*LevelDescriptor, error) {
	band, ok := bandFor(level)
	if !ok {
		return nil, fmt.Errorf("generate level %d: outside campaign 1-%d", level, CampaignLength)
	}

	diff := g.between(band.minDiff, band.maxDiff)
	desc := &LevelDescriptor{
		Number:           level,
		Name:             fmt.Sprintf("Level %d", level),
		Difficulty:       diff,
		BackgroundSpeed:  1.0 + float64(diff)*0.1,
		MusicTrack:       fmt.Sprintf("level_%d", g.between(1, 5)),
		SpecialEffects:   []string{},
		PowerUpFrequency: DefaultPowerUpFrequency,
		MinimumClearTime: DefaultMinimumClearTime,
	}

	var groups []GroupDescriptor
	switch {
	case IsBossLevel(level):
		bossNum := level / BossEvery
		bossType := MustAlienType(fmt.Sprintf("boss_%02d", bossNum))
		groups = append(groups, GroupDescriptor{
			AlienType:     bossType,
			Count:         1,
			Formation:     FormationLine,
			EntryPoint:    EntryTopCenter,
			Path:          g.path(EntryTopCenter, diff),
			Movement:      MovementHold,
			Speed:         0.8,
			Health:        bossType.BaseHealth(),
			ShootInterval: 1.0,
		})
		for i := 0; i < 2; i++ {
			num := g.between(band.minType, band.maxType)
			groups = append(groups, g.group(num, CategorySmall, g.between(2, 4), diff))
		}
		desc.Boss = &BossDescriptor{
			Type:   bossType.ID,
			Health: 50 + bossNum*25,
			Speed:  0.8,
		}
		for i, n := 0, g.between(2, 4+level/50); i < n; i++ {
			desc.Boss.AttackPatterns = append(desc.Boss.AttackPatterns, bossAttacks[i%len(bossAttacks)])
		}

	default:
		if IsBonusLevel(level) {
			desc.SpecialEffects = append(desc.SpecialEffects, EffectBonusMultiplier)
		}
		for i, n := 0, g.between(2, 4+diff); i < n; i++ {
			num := g.between(band.minType, band.maxType)
			cat := CategorySmall
			if g.rng.Intn(2) == 1 {
				cat = CategoryLarge
			}
			count := g.between(3, 8+diff)
			if cat == CategoryLarge {
				count = max(1, count/2)
			}
			groups = append(groups, g.group(num, cat, count, diff))
		}
	}

	desc.Groups = NewGroupQueue(groups...)
	return desc, nil
}

var bossAttacks = []string{"spread", "aimed", "ring", "sweep", "burst", "rain"}

func (g *Generator) group(num int, cat Category, count, diff int) GroupDescriptor {
	id := fmt.Sprintf("alien_%02d_%s", num, cat)
	t := MustAlienType(id)

	formations := []Formation{FormationLine, FormationV, FormationCircle, FormationDiamond, FormationWave}
	if diff > 5 {
		formations = append(formations, FormationCross, FormationSpiral, FormationStar)
	}
	f := formations[g.rng.Intn(len(formations))]
	entry := g.entryPoint(diff)

	return GroupDescriptor{
		AlienType:     t,
		Count:         count,
		Formation:     f,
		Spacing:       float64(g.between(30, 50)),
		EntryPoint:    entry,
		Path:          g.path(entry, diff),
		Movement:      g.movement(diff),
		Speed:         Speed(cat, diff),
		Health:        t.BaseHealth(),
		ShootInterval: ShootInterval(cat, diff),
		GroupBehavior: g.rng.Float64() < groupChance(f, diff),
	}
}

func groupChance(f Formation, diff int) float64 {
	base, ok := groupBehaviorChance[f]
	if !ok {
		base = 0.3
	}
	return base + float64(diff)*0.05
}

// Speed is the per-tick speed of an alien of a category at a difficulty.
func Speed(cat Category, diff int) float64 {
	mod := 1.2
	switch cat {
	case CategoryLarge:
		mod = 0.8
	case CategoryBoss:
		mod = 0.6
	}
	return mod + 0.1*float64(diff)
}

// ShootInterval is the seconds between shots, never below half a second.
func ShootInterval(cat Category, diff int) float64 {
	mod := 1.0
	switch cat {
	case CategoryLarge:
		mod = 0.8
	case CategoryBoss:
		mod = 0.5
	}
	return max(0.5, 3.0*mod-0.2*float64(diff))
}

func (g *Generator) entryPoint(diff int) EntryPoint {
	if diff > 7 {
		if g.rng.Intn(2) == 0 {
			return EntryTopLeft
		}
		return EntryTopRight
	}
	all := EntryPoints()
	return all[g.rng.Intn(len(all))]
}

func (g *Generator) movement(diff int) Movement {
	patterns := []Movement{MovementStraight}
	if diff > 3 {
		patterns = append(patterns, MovementZigzag, MovementWave)
	}
	if diff > 5 {
		patterns = append(patterns, MovementCircular, MovementSwarm)
	}
	if diff > 7 {
		patterns = append(patterns, MovementRandom)
	}
	return patterns[g.rng.Intn(len(patterns))]
}

func (g *Generator) path(entry EntryPoint, diff int) []PathPoint {
	var pts []PathPoint
	switch entry {
	case EntryTopCenter:
		pts = append(pts, PathPoint{X: g.rng.Float64()})
	case EntryTopLeft:
		pts = append(pts, PathPoint{X: 0})
	case EntryTopRight:
		pts = append(pts, PathPoint{X: 1})
	case EntryLeftTop:
		pts = append(pts, PathPoint{X: 0, Y: g.rng.Float64() * 0.3})
	case EntryRightTop:
		pts = append(pts, PathPoint{X: 1, Y: g.rng.Float64() * 0.3})
	}

	for i, n := 0, 2+diff/2; i < n; i++ {
		p := PathPoint{X: g.rng.Float64(), Y: g.rng.Float64() * 0.7}
		if diff > 5 {
			p.WaitTime = g.rng.Float64() * float64(diff) * 0.5
			p.Shoot = g.rng.Float64() < 0.2+float64(diff)*0.05
		} else {
			p.WaitTime = g.rng.Float64() * 2
			p.Shoot = g.rng.Float64() < 0.3
		}
		pts = append(pts, p)
	}

	return append(pts, PathPoint{X: g.rng.Float64()})
}
