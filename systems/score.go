package systems

import (
	"time"

	"github.com/automoto/starlane/components"
	cfg "github.com/automoto/starlane/config"
	"github.com/automoto/starlane/tags"
	"github.com/yohamta/donburi/ecs"
)

// AwardKill adds the points for a destroyed alien and returns what was added.
// The active multipliers scale the base value and every kill inside the combo
// window adds another ComboStep of it on top.
func AwardKill(s *components.ScoreData, points int) int {
	if s.SinceKill > cfg.Score.ComboTimeout {
		s.Combo = 0
	}

	base := points * max(s.Multiplier, 1) * max(s.LevelMultiplier, 1)
	bonus := int(float64(base) * float64(s.Combo) * cfg.Score.ComboStep)
	total := base + bonus

	s.Score += total
	s.Combo++
	s.Kills++
	s.SinceKill = 0
	if s.Score > s.HighScore {
		s.HighScore = s.Score
	}
	return total
}

// AddScore adds flat points outside the combo chain.
func AddScore(s *components.ScoreData, points int) {
	s.Score += points
	if s.Score > s.HighScore {
		s.HighScore = s.Score
	}
}

// ActivateMultiplier stacks a timed score multiplier.
func ActivateMultiplier(s *components.ScoreData, factor int, d time.Duration) {
	s.Multiplier = max(s.Multiplier, 1) * factor
	s.MultiplierLeft = d
}

// TickScore advances the combo and multiplier timers.
func TickScore(s *components.ScoreData, dt time.Duration) {
	s.SinceKill += dt
	if s.Combo > 0 && s.SinceKill > cfg.Score.ComboTimeout {
		s.Combo = 0
	}

	if s.MultiplierLeft > 0 {
		s.MultiplierLeft -= dt
		if s.MultiplierLeft <= 0 {
			s.Multiplier = 1
			s.MultiplierLeft = 0
		}
	}
}

// AwardExtraLives grants a life for every threshold the score has passed,
// up to the cap, and reports how many were granted.
func AwardExtraLives(lives *components.LivesData, score int) int {
	granted := 0
	for lives.NextExtraAt > 0 && score >= lives.NextExtraAt {
		if lives.Lives < lives.MaxLives {
			lives.Lives++
			granted++
		}
		lives.NextExtraAt += cfg.Player.ExtraLifeEvery
	}
	return granted
}

func UpdateScore(ecs *ecs.ECS) {
	entry, ok := components.Score.First(ecs.World)
	if !ok {
		return
	}
	score := components.Score.Get(entry)
	TickScore(score, tickDuration())

	if playerEntry, ok := tags.Player.First(ecs.World); ok {
		if AwardExtraLives(components.Lives.Get(playerEntry), score.Score) > 0 {
			PlaySFX(ecs, cfg.SoundBonus)
		}
	}
}

func tickDuration() time.Duration {
	return time.Second / time.Duration(max(cfg.C.TPS, 1))
}
