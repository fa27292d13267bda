package systems

import (
	"github.com/automoto/starlane/components"
	cfg "github.com/automoto/starlane/config"
	"github.com/automoto/starlane/gamemath"
	"github.com/automoto/starlane/leveldata"
	"github.com/automoto/starlane/movement"
	"github.com/solarlune/resolv"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// holdLine is where stationary aliens stop after entering, as a fraction of
// the screen height.
const holdLine = 0.1

// UpdateAliens moves aliens outside group behavior, descends stationary ones
// onto the screen and fires every alien whose shot timer ran out.
func UpdateAliens(ecs *ecs.ECS) {
	campaignEntry, ok := components.Campaign.First(ecs.World)
	if !ok {
		return
	}
	campaign := components.Campaign.Get(campaignEntry)
	view := screenViewport()
	dt := tickDuration().Seconds()
	player := movement.PlayerFunc(func() (float64, float64, bool) { return playerCentre(ecs) })

	type volley struct {
		t      leveldata.AlienType
		cx, cy float64
	}
	var volleys []volley

	components.Alien.Each(ecs.World, func(e *donburi.Entry) {
		if e.HasComponent(components.Death) {
			return
		}
		alien := components.Alien.Get(e)
		obj := components.Object.Get(e)
		alien.Clock += dt

		if flash := components.Flash.Get(e); flash.Frames > 0 {
			flash.Frames--
		}

		shoot := false
		// Group-behavior aliens never carry a path, and a stationary alien
		// holds wherever its path ends.
		switch {
		case alien.OnPath():
			shoot = FollowPath(alien, obj.Object, dt, view)
			movement.WrapAndClamp([]movement.Actor{alienActor{entry: e}}, view, cfg.PlayArea)
		case isStationary(alien.Movement):
			enterHoldLine(obj.Object, alien.Speed, view)
		case alien.GroupBehavior:
			// The orchestrator moves the whole group
		default:
			campaign.Engine.Advance(alien.Movement, []movement.Actor{alienActor{entry: e}},
				alien.Clock, view, cfg.PlayArea, player)
		}

		if alien.ShootInterval > 0 {
			alien.ShootTimer -= dt
			if alien.ShootTimer <= 0 {
				alien.ShootTimer = alien.ShootInterval
				shoot = true
			}
		}
		// Only aliens on screen fire
		if shoot && obj.Y >= 0 {
			cx, _ := obj.Centre()
			volleys = append(volleys, volley{t: alien.Type, cx: cx, cy: obj.Y + obj.H})
		}
	})

	for _, v := range volleys {
		fireAlienVolley(ecs, v.t, v.cx, v.cy)
	}
}

func isStationary(m leveldata.Movement) bool {
	return m == leveldata.MovementHold || m == leveldata.MovementReserved
}

// enterHoldLine brings a stationary alien down from its formation row until
// it is on screen.
func enterHoldLine(obj *resolv.Object, speed float64, view gamemath.Viewport) {
	line := view.H * holdLine
	if obj.Y >= line {
		return
	}
	obj.Y = min(obj.Y+max(speed, 1), line)
}

// FollowPath moves an alien one tick along its waypoints. Each leg is a pair
// of tweens from the current position to the next waypoint, scaled to the
// viewport. It returns true on arriving at a waypoint marked to shoot.
func FollowPath(alien *components.AlienData, obj *resolv.Object, dt float64, view gamemath.Viewport) bool {
	if alien.Wait > 0 {
		alien.Wait -= dt
		return false
	}

	if alien.LegX == nil {
		if alien.PathIndex >= len(alien.Path) {
			return false
		}
		p := alien.Path[alien.PathIndex]
		tx := p.X*view.W - obj.W/2
		ty := p.Y*view.H - obj.H/2

		speed := max(alien.Speed, 0.1) * float64(cfg.C.TPS)
		secs := max(gamemath.Distance(obj.X, obj.Y, tx, ty)/speed, cfg.Aliens.MinLegSeconds)
		alien.LegX = gween.New(float32(obj.X), float32(tx), float32(secs), ease.InOutSine)
		alien.LegY = gween.New(float32(obj.Y), float32(ty), float32(secs), ease.InOutSine)
	}

	x, doneX := alien.LegX.Update(float32(dt))
	y, doneY := alien.LegY.Update(float32(dt))
	obj.X, obj.Y = float64(x), float64(y)
	if !doneX || !doneY {
		return false
	}

	p := alien.Path[alien.PathIndex]
	alien.PathIndex++
	alien.LegX, alien.LegY = nil, nil
	alien.Wait = p.WaitTime
	return p.Shoot
}
