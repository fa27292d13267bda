package systems

import (
	"time"

	"github.com/automoto/starlane/components"
	cfg "github.com/automoto/starlane/config"
	"github.com/automoto/starlane/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func UpdatePlayer(ecs *ecs.ECS) {
	playerEntry, ok := tags.Player.First(ecs.World)
	if !ok {
		return
	}
	input := getOrCreateInput(ecs)
	player := components.Player.Get(playerEntry)
	obj := components.Object.Get(playerEntry)

	movePlayer(player, obj.Object,
		GetAction(input, cfg.ActionMoveLeft).Pressed,
		GetAction(input, cfg.ActionMoveRight).Pressed,
	)

	if player.FireCooldown > 0 {
		player.FireCooldown--
	}
	if GetAction(input, cfg.ActionFire).Pressed && player.FireCooldown == 0 {
		cx, _ := obj.Centre()
		firePlayerShots(ecs, cx, obj.Y, player.DoubleShot > 0)
		player.FireCooldown = cfg.Player.FireCooldown
	}

	tickPowerUps(player, tickDuration())

	// Decrement invulnerability timer
	if player.InvulnFrames > 0 {
		player.InvulnFrames--
	}
	if flash := components.Flash.Get(playerEntry); flash.Frames > 0 {
		flash.Frames--
	}
}

// movePlayer slides the ship along its lane, inside the play area.
func movePlayer(player *components.PlayerData, obj *resolv.Object, left, right bool) {
	speed := cfg.Player.Speed * max(player.SpeedFactor, 1)
	if left {
		obj.X -= speed
	}
	if right {
		obj.X += speed
	}
	obj.X = cfg.PlayArea.ClampX(obj.X, obj.W, float64(cfg.C.Width))
}

func tickPowerUps(player *components.PlayerData, dt time.Duration) {
	if player.DoubleShot > 0 {
		player.DoubleShot = max(player.DoubleShot-dt, 0)
	}
	if player.SpeedBoost > 0 {
		player.SpeedBoost -= dt
		if player.SpeedBoost <= 0 {
			player.SpeedBoost = 0
			player.SpeedFactor = 1
		}
	}
}

// HitPlayer costs the player a life unless the ship is still invulnerable.
// It reports whether the hit landed.
func HitPlayer(e *donburi.Entry) bool {
	player := components.Player.Get(e)
	if player.InvulnFrames > 0 || cfg.Debug.GodMode {
		return false
	}
	lives := components.Lives.Get(e)
	lives.Lives = max(lives.Lives-1, 0)
	player.InvulnFrames = cfg.Player.InvulnFrames
	components.Flash.Get(e).Frames = cfg.Player.InvulnFrames
	return true
}
