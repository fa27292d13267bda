package movement

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/automoto/starlane/gamemath"
	"github.com/automoto/starlane/leveldata"
)

type testActor struct {
	x, y, w, h, speed float64
}

func (a *testActor) Position() (float64, float64) { return a.x, a.y }
func (a *testActor) SetPosition(x, y float64)     { a.x, a.y = x, y }
func (a *testActor) Size() (float64, float64)     { return a.w, a.h }
func (a *testActor) Speed() float64               { return a.speed }

var (
	view = gamemath.Viewport{W: 800, H: 600}
	band = gamemath.PlayArea{Left: 0.115, Right: 0.885}
)

func testRNG() *rand.Rand {
	return rand.New(rand.NewSource(12345))
}

func group(n int, speed float64) ([]*testActor, []Actor) {
	concrete := make([]*testActor, n)
	actors := make([]Actor, n)
	for i := range concrete {
		concrete[i] = &testActor{x: 100 + float64(i)*40, y: 10, w: 16, h: 16, speed: speed}
		actors[i] = concrete[i]
	}
	return concrete, actors
}

func TestAdvanceStraight(t *testing.T) {
	e := NewEngine(testRNG())
	concrete, actors := group(3, 2)

	e.Advance(leveldata.MovementStraight, actors, 0, view, band, nil)

	for i, a := range concrete {
		assert.Equal(t, 12.0, a.y)
		assert.Equal(t, 100+float64(i)*40, a.x)
	}
}

func TestAdvanceKeepsActorsInPlayArea(t *testing.T) {
	left, right := band.Bounds(view.W)
	patterns := []leveldata.Movement{
		leveldata.MovementStraight,
		leveldata.MovementZigzag,
		leveldata.MovementRandom,
		leveldata.MovementTeleport,
	}

	for _, p := range patterns {
		t.Run(p.String(), func(t *testing.T) {
			e := NewEngine(testRNG())
			concrete, actors := group(6, 7)
			concrete[0].x = 0
			concrete[5].x = 790

			for tick := 0; tick < 500; tick++ {
				e.Advance(p, actors, float64(tick)/60, view, band, nil)
				for _, a := range concrete {
					require.GreaterOrEqual(t, a.x, left)
					require.LessOrEqual(t, a.x+a.w, right+1e-9)
				}
			}
		})
	}
}

func TestAdvanceWrapsBelowScreen(t *testing.T) {
	player := PlayerFunc(func() (float64, float64, bool) { return 400, 300, true })

	for _, p := range leveldata.Movements() {
		t.Run(p.String(), func(t *testing.T) {
			e := NewEngine(testRNG())
			concrete, actors := group(3, 2)
			for _, a := range concrete {
				a.y = view.H + 5
			}
			// Keep teleport from firing so every actor goes through the wrap.
			e.rng = rand.New(constSource(1 << 62))

			e.Advance(p, actors, 1.5, view, band, player)

			for _, a := range concrete {
				assert.LessOrEqual(t, a.y, 0.0)
			}
		})
	}
}

// constSource always yields the same value, so Float64 is always 0.5.
type constSource int64

func (s constSource) Int63() int64 { return int64(s) }
func (s constSource) Seed(int64)   {}

func TestAdvanceChaseClosesIn(t *testing.T) {
	e := NewEngine(testRNG())
	a := &testActor{x: 0, y: 0, w: 0, h: 0, speed: 5}
	player := PlayerFunc(func() (float64, float64, bool) { return 400, 700, true })

	prev := gamemath.Distance(a.x, a.y, 400, 700)
	for tick := 0; tick < 100; tick++ {
		e.Advance(leveldata.MovementChase, []Actor{a}, float64(tick), view, band, player)
		d := gamemath.Distance(a.x, a.y, 400, 700)
		require.Less(t, d, prev, "tick %d", tick)
		prev = d
	}
}

func TestAdvanceChaseNeverOvershoots(t *testing.T) {
	e := NewEngine(testRNG())
	a := &testActor{x: 399, y: 300, speed: 10}
	player := PlayerFunc(func() (float64, float64, bool) { return 400, 300, true })

	e.Advance(leveldata.MovementChase, []Actor{a}, 0, view, band, player)
	assert.Equal(t, 400.0, a.x)
	assert.Equal(t, 300.0, a.y)
}

func TestAdvanceChaseWithoutPlayer(t *testing.T) {
	e := NewEngine(testRNG())
	a := &testActor{x: 200, y: 100, speed: 4}
	missing := PlayerFunc(func() (float64, float64, bool) { return 0, 0, false })

	e.Advance(leveldata.MovementChase, []Actor{a}, 0, view, band, missing)
	e.Advance(leveldata.MovementChase, []Actor{a}, 0, view, band, nil)
	assert.Equal(t, 200.0, a.x)
	assert.Equal(t, 100.0, a.y)
}

func TestAdvancePlaceholdersDoNotMove(t *testing.T) {
	for _, p := range []leveldata.Movement{leveldata.MovementHold, leveldata.MovementReserved, leveldata.Movement(77)} {
		e := NewEngine(testRNG())
		concrete, actors := group(2, 3)

		e.Advance(p, actors, 2, view, band, nil)

		assert.Equal(t, 100.0, concrete[0].x)
		assert.Equal(t, 10.0, concrete[0].y)
	}
}

func TestAdvanceCircularSharesCircle(t *testing.T) {
	e := NewEngine(testRNG())
	concrete, actors := group(4, 1)

	e.Advance(leveldata.MovementCircular, actors, 0, view, band, nil)

	assert.InDelta(t, 500, concrete[0].x, 1e-9)
	assert.InDelta(t, 400, concrete[1].x, 1e-9)
	assert.InDelta(t, 300, concrete[2].x, 1e-9)
	for _, a := range concrete {
		assert.Equal(t, 11.0, a.y)
	}
}

func TestAdvanceSwarmFollowsLeader(t *testing.T) {
	e := NewEngine(testRNG())
	concrete, actors := group(3, 4)
	before := gamemath.Distance(concrete[2].x, concrete[2].y, concrete[0].x, concrete[0].y)

	e.Advance(leveldata.MovementSwarm, actors, 0, view, band, nil)

	assert.Equal(t, 14.0, concrete[0].y)
	after := gamemath.Distance(concrete[2].x, concrete[2].y, concrete[0].x, concrete[0].y)
	assert.Less(t, after, before)
}

func TestRandomVelocityIsForgotten(t *testing.T) {
	e := NewEngine(testRNG())
	_, actors := group(2, 3)

	e.Advance(leveldata.MovementRandom, actors, 0, view, band, nil)
	assert.Len(t, e.velocity, 2)

	e.Forget(actors[0])
	assert.Len(t, e.velocity, 1)
	assert.Equal(t, 1, e.Tracked())
	e.Reset()
	assert.Empty(t, e.velocity)
}

func TestAdvanceSkipsInvalidViewport(t *testing.T) {
	e := NewEngine(testRNG())
	concrete, actors := group(1, 3)

	e.Advance(leveldata.MovementStraight, actors, 0, gamemath.Viewport{}, band, nil)
	assert.Equal(t, 10.0, concrete[0].y)
}
