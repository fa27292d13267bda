package factory

import (
	"github.com/automoto/starlane/archetypes"
	"github.com/automoto/starlane/components"
	cfg "github.com/automoto/starlane/config"
	"github.com/automoto/starlane/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreatePlayer places the ship at the bottom centre of the screen.
func CreatePlayer(ecs *ecs.ECS) *donburi.Entry {
	player := archetypes.Player.Spawn(ecs)

	x := float64(cfg.C.Width)/2 - cfg.Player.Width/2
	y := float64(cfg.C.Height) - cfg.Player.Height - cfg.Player.BottomMargin
	obj := resolv.NewObject(x, y, cfg.Player.Width, cfg.Player.Height, tags.ResolvPlayer)
	obj.Data = player
	components.Object.SetValue(player, components.ObjectData{Object: obj})
	addToSpace(ecs, obj)

	components.Player.SetValue(player, components.PlayerData{
		SpeedFactor: 1,
	})
	components.Lives.SetValue(player, components.LivesData{
		Lives:       cfg.Player.StartingLives,
		MaxLives:    cfg.Player.StartingLives + 2,
		NextExtraAt: cfg.Player.ExtraLifeEvery,
	})

	return player
}
