package factory

import (
	"github.com/automoto/starlane/archetypes"
	"github.com/automoto/starlane/components"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateCampaign spawns the singleton holding the orchestrator and the score.
func CreateCampaign(ecs *ecs.ECS, data components.CampaignData, highScore int) *donburi.Entry {
	c := archetypes.Campaign.Spawn(ecs)
	components.Campaign.SetValue(c, data)
	components.Score.SetValue(c, components.ScoreData{
		HighScore:       highScore,
		Multiplier:      1,
		LevelMultiplier: 1,
	})
	return c
}
