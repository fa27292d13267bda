package systems

import (
	"testing"

	"github.com/solarlune/resolv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/automoto/starlane/components"
	cfg "github.com/automoto/starlane/config"
	"github.com/automoto/starlane/systems/factory"
	"github.com/automoto/starlane/tags"
)

func newTestECS() *ecs.ECS {
	e := ecs.NewECS(donburi.NewWorld())
	factory.CreateSpace(e, cfg.C.Width, cfg.C.Height, 16, 16)
	factory.CreatePlayer(e)
	return e
}

func TestMovePlayerStaysInPlayArea(t *testing.T) {
	left, right := cfg.PlayArea.Bounds(float64(cfg.C.Width))
	player := &components.PlayerData{SpeedFactor: 1}

	obj := resolv.NewObject(left+1, 500, cfg.Player.Width, cfg.Player.Height)
	movePlayer(player, obj, true, false)
	assert.Equal(t, left, obj.X)

	obj.X = right - obj.W - 1
	movePlayer(player, obj, false, true)
	assert.Equal(t, right-obj.W, obj.X)
}

func TestMovePlayerSpeedBoost(t *testing.T) {
	player := &components.PlayerData{SpeedFactor: 1.5}
	obj := resolv.NewObject(400, 500, cfg.Player.Width, cfg.Player.Height)

	movePlayer(player, obj, false, true)
	assert.InDelta(t, 400+cfg.Player.Speed*1.5, obj.X, 1e-9)
}

func TestHitPlayerRespectsInvulnerability(t *testing.T) {
	e := newTestECS()
	playerEntry, ok := tags.Player.First(e.World)
	require.True(t, ok)

	assert.True(t, HitPlayer(playerEntry))
	assert.Equal(t, cfg.Player.StartingLives-1, components.Lives.Get(playerEntry).Lives)
	assert.False(t, HitPlayer(playerEntry), "invulnerable right after a hit")

	components.Player.Get(playerEntry).InvulnFrames = 0
	cfg.Debug.GodMode = true
	defer func() { cfg.Debug.GodMode = false }()
	assert.False(t, HitPlayer(playerEntry))
}

func TestPlayerBulletDamagesAlien(t *testing.T) {
	e := newTestECS()
	alienType := testAlienType()
	alien := factory.CreateAlien(e, alienType, 200, 200, factory.AlienParams{Level: 1, Group: testGroup(1, 2)})
	cx, cy := components.Object.Get(alien).Centre()
	bullet := factory.CreateBullet(e, cx, cy, components.BulletData{
		Kind:   components.BulletStraight,
		Owner:  components.OwnerPlayer,
		Speed:  -cfg.Bullet.PlayerSpeed,
		Damage: 1,
	})

	UpdateCollisions(e)

	assert.Equal(t, 1, components.Health.Get(alien).Current)
	assert.Equal(t, cfg.Aliens.HitFlashFrames, components.Flash.Get(alien).Frames)
	assert.False(t, bullet.Valid(), "spent bullet removed")
}

func TestAlienBulletMissesDistantPlayer(t *testing.T) {
	e := newTestECS()
	bullet := factory.CreateBullet(e, 10, 10, components.BulletData{
		Kind:  components.BulletStraight,
		Owner: components.OwnerAlien,
		Speed: cfg.Bullet.AlienSpeed,
	})

	UpdateCollisions(e)

	playerEntry, _ := tags.Player.First(e.World)
	assert.Equal(t, cfg.Player.StartingLives, components.Lives.Get(playerEntry).Lives)
	assert.True(t, bullet.Valid())
}
