package systems

import (
	"errors"
	"fmt"
	"log"
	"math/rand"

	"github.com/automoto/starlane/components"
	cfg "github.com/automoto/starlane/config"
	"github.com/automoto/starlane/formation"
	"github.com/automoto/starlane/gamemath"
	"github.com/automoto/starlane/leveldata"
	"github.com/automoto/starlane/movement"
	"github.com/automoto/starlane/systems/factory"
	"github.com/automoto/starlane/tags"
	"github.com/automoto/starlane/wave"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var errInvalidAlienType = errors.New("invalid alien type")

// alienActor exposes an alien entity to the orchestrator and the movement
// engine. Positions are the top-left corner of the collision object.
type alienActor struct {
	entry *donburi.Entry
}

func (a alienActor) Position() (float64, float64) {
	obj := components.Object.Get(a.entry)
	return obj.X, obj.Y
}

func (a alienActor) SetPosition(x, y float64) {
	obj := components.Object.Get(a.entry)
	obj.X, obj.Y = x, y
}

func (a alienActor) Size() (float64, float64) {
	obj := components.Object.Get(a.entry)
	return obj.W, obj.H
}

func (a alienActor) Speed() float64 {
	return components.Alien.Get(a.entry).Speed
}

// Alive turns false as soon as the death sequence starts, before the entity
// itself is removed.
func (a alienActor) Alive() bool {
	if !a.entry.Valid() || a.entry.HasComponent(components.Death) {
		return false
	}
	return components.Health.Get(a.entry).Current > 0
}

// alienFactory builds aliens as ECS entities for the orchestrator.
type alienFactory struct {
	ecs *ecs.ECS
}

func (f alienFactory) Create(t leveldata.AlienType, x, y float64, p wave.SpawnParams) (wave.Actor, error) {
	if t.ID == "" || t.Number < 1 {
		return nil, fmt.Errorf("%w: %q", errInvalidAlienType, t.ID)
	}
	e := factory.CreateAlien(f.ecs, t, x, y, factory.AlienParams{
		Level: p.Level,
		Group: p.Group,
		Index: p.Index,
	})
	return alienActor{entry: e}, nil
}

func (f alienFactory) Size(t leveldata.AlienType) (float64, float64) {
	style := factory.AlienStyle(t)
	return style.Width, style.Height
}

// Discard destroys an alien the orchestrator did not keep. Both engines
// forget it, since donburi hands the same entry out again for a later alien.
func (f alienFactory) Discard(a wave.Actor) {
	actor, ok := a.(alienActor)
	if !ok {
		return
	}
	if entry, ok := components.Campaign.First(f.ecs.World); ok {
		campaign := components.Campaign.Get(entry)
		for _, engine := range []*movement.Engine{campaign.Engine, campaign.GroupEngine} {
			if engine != nil {
				engine.Forget(actor)
			}
		}
	}
	factory.Destroy(f.ecs, actor.entry)
}

// CampaignOptions configure a new campaign.
type CampaignOptions struct {
	Levels     wave.LevelSource
	Layout     *formation.Layout
	StartLevel int
	HighScore  int
	Rand       *rand.Rand
}

// NewCampaign creates the campaign entity and loads the first level. A level
// that fails to load leaves the campaign halted; the error is returned so the
// caller can report it.
func NewCampaign(ecs *ecs.ECS, opts CampaignOptions) (*donburi.Entry, error) {
	rng := opts.Rand
	if rng == nil {
		rng = rand.New(rand.NewSource(1))
	}

	groupEngine := movement.NewEngine(rng)
	orchestrator, err := wave.New(wave.Options{
		Levels:          opts.Levels,
		Factory:         alienFactory{ecs: ecs},
		Viewport:        screenViewport,
		PlayArea:        cfg.PlayArea,
		Player:          movement.PlayerFunc(func() (float64, float64, bool) { return playerCentre(ecs) }),
		Engine:          groupEngine,
		Layout:          opts.Layout,
		InterGroupDelay: cfg.Wave.InterGroupDelay,
		LevelTransition: cfg.Wave.LevelTransition,
		OnLevelLoaded:   func(l *leveldata.LevelDescriptor) { onLevelLoaded(ecs, l) },
		OnLevelComplete: func(level int) { onLevelComplete(ecs, level) },
	})
	if err != nil {
		return nil, fmt.Errorf("create campaign: %w", err)
	}

	entry := factory.CreateCampaign(ecs, components.CampaignData{
		Orchestrator: orchestrator,
		Engine:       movement.NewEngine(rng),
		GroupEngine:  groupEngine,
		Rand:         rng,
	}, opts.HighScore)

	start := max(opts.StartLevel, 1)
	if err := orchestrator.LoadLevel(start); err != nil {
		components.Campaign.Get(entry).Finished = true
		return entry, err
	}
	return entry, nil
}

func onLevelLoaded(ecs *ecs.ECS, l *leveldata.LevelDescriptor) {
	entry, ok := components.Campaign.First(ecs.World)
	if !ok {
		return
	}
	campaign := components.Campaign.Get(entry)
	score := components.Score.Get(entry)

	campaign.Level = l.Number
	campaign.PowerUps = l.PowerUpFrequency
	campaign.Bonus = l.HasEffect(leveldata.EffectBonusMultiplier)
	campaign.Shake = l.HasEffect(leveldata.EffectScreenShake)

	score.LevelMultiplier = 1
	subtitle := l.Name
	if campaign.Bonus {
		score.LevelMultiplier = cfg.Score.BonusLevelMultiplier
		subtitle = fmt.Sprintf("%s - BONUS x%d", l.Name, cfg.Score.BonusLevelMultiplier)
	}
	if l.Boss != nil {
		subtitle = fmt.Sprintf("%s - WARNING: %s", l.Name, l.Boss.Type)
	}

	factory.CreateBanner(ecs, fmt.Sprintf("LEVEL %d", l.Number), subtitle)
	PlaySFX(ecs, cfg.SoundLevelStart)
	_ = SaveGameProgress(l.Number, score.HighScore)
}

func onLevelComplete(ecs *ecs.ECS, level int) {
	factory.CreateBanner(ecs, fmt.Sprintf("LEVEL %d CLEAR", level), "")
	if entry, ok := components.Score.First(ecs.World); ok {
		_ = SaveGameProgress(level+1, components.Score.Get(entry).HighScore)
	}
}

// UpdateCampaign advances the orchestrator by one tick.
func UpdateCampaign(ecs *ecs.ECS) {
	entry, ok := components.Campaign.First(ecs.World)
	if !ok {
		return
	}
	campaign := components.Campaign.Get(entry)
	if campaign.Finished {
		return
	}

	campaign.Orchestrator.Update(tickDuration())
	campaign.Elapsed += tickDuration().Seconds()

	if campaign.Orchestrator.Halted() {
		log.Printf("Campaign finished at level %d", campaign.Orchestrator.Level())
		campaign.Finished = true
	}
}

// IsRunOver reports whether the player is out of lives or the campaign has
// run out of levels.
func IsRunOver(ecs *ecs.ECS) bool {
	if entry, ok := components.Campaign.First(ecs.World); ok && components.Campaign.Get(entry).Finished {
		return true
	}
	entry, ok := tags.Player.First(ecs.World)
	if !ok {
		return true
	}
	return components.Lives.Get(entry).Lives <= 0
}

// CampaignResult returns the figures shown on the game over screen.
func CampaignResult(ecs *ecs.ECS) components.GameOverData {
	var result components.GameOverData
	if entry, ok := components.Campaign.First(ecs.World); ok {
		campaign := components.Campaign.Get(entry)
		score := components.Score.Get(entry)
		result.Level = campaign.Level
		result.Score = score.Score
		result.HighScore = score.HighScore
		// Running out of level files ends the campaign with a win
		result.Victory = campaign.Finished && campaign.Orchestrator != nil &&
			errors.Is(campaign.Orchestrator.Err(), leveldata.ErrNotFound) &&
			campaign.Orchestrator.Level() > campaign.Level
	}
	return result
}

func screenViewport() gamemath.Viewport {
	return gamemath.Viewport{W: float64(cfg.C.Width), H: float64(cfg.C.Height)}
}

// playerCentre returns the centre of the player ship, if there is one.
func playerCentre(ecs *ecs.ECS) (float64, float64, bool) {
	entry, ok := tags.Player.First(ecs.World)
	if !ok || entry.HasComponent(components.Death) {
		return 0, 0, false
	}
	x, y := components.Object.Get(entry).Centre()
	return x, y, true
}
