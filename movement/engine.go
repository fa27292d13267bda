// Package movement advances groups of aliens that move as one unit. Each
// pattern is a per-tick position update followed by the same wrap-and-clamp
// pass.
package movement

import (
	"math"
	"math/rand"

	"github.com/automoto/starlane/gamemath"
	"github.com/automoto/starlane/leveldata"
)

// Pattern tuning.
const (
	ZigzagGain        = 2.0   // lateral swing in speeds
	ZigzagFreq        = 2.0   // rad/s
	CircularRadius    = 100.0 // px
	WaveAmplitude     = 100.0 // px
	WaveFreq          = 2.0   // rad/s
	WavePhaseStep     = 3.0   // rad between neighbours
	SwarmFreq         = 3.0   // rad/s of the leader's sway
	SwarmFollowGain   = 0.5
	RandomRerollP     = 0.05
	RandomMinDown     = 0.5
	ChaseGain         = 0.5
	TeleportP         = 0.02
	TeleportMinY      = 50.0
	TeleportMaxYRatio = 0.5
)

// Actor is anything the engine can move. Implementations must be comparable
// because the engine keys per-actor state on them. An actor value that can
// outlive its alien, such as a handle to a recycled entity, has to be
// passed to Forget when the alien leaves play.
type Actor interface {
	Position() (x, y float64)
	SetPosition(x, y float64)
	Size() (w, h float64)
	Speed() float64
}

// PlayerLocator reports the player's current position. ok is false while
// there is no player to chase.
type PlayerLocator interface {
	PlayerPosition() (x, y float64, ok bool)
}

// PlayerFunc adapts a function to PlayerLocator.
type PlayerFunc func() (x, y float64, ok bool)

func (f PlayerFunc) PlayerPosition() (float64, float64, bool) { return f() }

// Engine applies movement patterns. It owns the random source and the
// per-actor velocities of the random pattern. Not safe for concurrent use.
type Engine struct {
	rng      *rand.Rand
	velocity map[Actor]gamemath.Point
}

// NewEngine returns an engine drawing from rng.
func NewEngine(rng *rand.Rand) *Engine {
	return &Engine{
		rng:      rng,
		velocity: map[Actor]gamemath.Point{},
	}
}

// Forget drops per-actor state for an actor that left play.
func (e *Engine) Forget(a Actor) {
	delete(e.velocity, a)
}

// Tracked returns the number of actors holding per-actor state.
func (e *Engine) Tracked() int { return len(e.velocity) }

// Reset drops all per-actor state.
func (e *Engine) Reset() {
	clear(e.velocity)
}

// Advance moves actors one tick under pattern. t is the elapsed time in
// seconds that drives the oscillating patterns. The player is consulted only
// by chase and may be nil. Unknown and placeholder patterns leave positions
// alone; the wrap-and-clamp pass always runs.
func (e *Engine) Advance(pattern leveldata.Movement, actors []Actor, t float64,
	view gamemath.Viewport, area gamemath.PlayArea, player PlayerLocator) {
	if len(actors) == 0 || !view.Valid() {
		return
	}

	switch pattern {
	case leveldata.MovementStraight:
		for _, a := range actors {
			x, y := a.Position()
			a.SetPosition(x, y+a.Speed())
		}

	case leveldata.MovementZigzag:
		sway := math.Sin(t * ZigzagFreq)
		for _, a := range actors {
			x, y := a.Position()
			s := a.Speed()
			a.SetPosition(x+sway*s*ZigzagGain, y+s)
		}

	case leveldata.MovementCircular:
		cx := view.W / 2
		n := float64(len(actors))
		for i, a := range actors {
			_, y := a.Position()
			angle := t + 2*math.Pi*float64(i)/n
			a.SetPosition(cx+math.Cos(angle)*CircularRadius, y+a.Speed())
		}

	case leveldata.MovementWave:
		cx := view.W / 2
		for i, a := range actors {
			_, y := a.Position()
			x := cx + math.Sin(t*WaveFreq+float64(i)*WavePhaseStep)*WaveAmplitude
			a.SetPosition(x, y+a.Speed())
		}

	case leveldata.MovementSwarm:
		leader := actors[0]
		lx, ly := leader.Position()
		ls := leader.Speed()
		lx += math.Sin(t*SwarmFreq) * ls
		ly += ls
		leader.SetPosition(lx, ly)
		for _, a := range actors[1:] {
			x, y := a.Position()
			a.SetPosition(gamemath.StepToward(x, y, lx, ly, a.Speed()*SwarmFollowGain))
		}

	case leveldata.MovementRandom:
		for _, a := range actors {
			v, ok := e.velocity[a]
			if !ok || e.rng.Float64() < RandomRerollP {
				s := a.Speed()
				v = gamemath.Point{
					X: (e.rng.Float64()*2 - 1) * s,
					Y: (RandomMinDown + e.rng.Float64()*(1-RandomMinDown)) * s,
				}
				e.velocity[a] = v
			}
			x, y := a.Position()
			a.SetPosition(x+v.X, y+v.Y)
		}

	case leveldata.MovementChase:
		if player == nil {
			break
		}
		px, py, ok := player.PlayerPosition()
		if !ok {
			break
		}
		for _, a := range actors {
			x, y := a.Position()
			a.SetPosition(gamemath.StepToward(x, y, px, py, a.Speed()*ChaseGain))
		}

	case leveldata.MovementTeleport:
		left, right := area.Bounds(view.W)
		for _, a := range actors {
			x, y := a.Position()
			if e.rng.Float64() >= TeleportP {
				a.SetPosition(x, y+a.Speed())
				continue
			}
			w, _ := a.Size()
			maxX := math.Max(left, right-w)
			maxY := math.Max(TeleportMinY, view.H*TeleportMaxYRatio)
			a.SetPosition(
				left+e.rng.Float64()*(maxX-left),
				TeleportMinY+e.rng.Float64()*(maxY-TeleportMinY),
			)
		}
	}

	WrapAndClamp(actors, view, area)
}

// WrapAndClamp moves actors that fell below the screen to just above its top
// and keeps every actor horizontally inside the play area.
func WrapAndClamp(actors []Actor, view gamemath.Viewport, area gamemath.PlayArea) {
	for _, a := range actors {
		x, y := a.Position()
		w, h := a.Size()
		if y > view.H {
			y = -h
		}
		a.SetPosition(area.ClampX(x, w, view.W), y)
	}
}
