package wave

import (
	"bytes"
	"errors"
	"fmt"
	"log"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/automoto/starlane/gamemath"
	"github.com/automoto/starlane/leveldata"
	"github.com/automoto/starlane/movement"
)

const tick = time.Second / 60

type fakeActor struct {
	x, y  float64
	speed float64
	alive bool
	stuck bool // next Position call panics
}

func (a *fakeActor) Position() (float64, float64) {
	if a.stuck {
		a.stuck = false
		panic("position unavailable")
	}
	return a.x, a.y
}

func (a *fakeActor) SetPosition(x, y float64) { a.x, a.y = x, y }
func (a *fakeActor) Size() (float64, float64) { return 16, 16 }
func (a *fakeActor) Speed() float64           { return a.speed }
func (a *fakeActor) Alive() bool              { return a.alive }

type fakeFactory struct {
	created   []*fakeActor
	discarded []Actor
	failAt    int // member index that fails, -1 never
	panics    bool
	panicAt   int // member index that panics, 0 never
}

func (f *fakeFactory) Create(t leveldata.AlienType, x, y float64, p SpawnParams) (Actor, error) {
	if f.panics {
		panic("factory exploded")
	}
	if f.panicAt > 0 && p.Index == f.panicAt {
		panic("factory exploded")
	}
	if p.Index == f.failAt {
		return nil, errors.New("no sprite")
	}
	a := &fakeActor{x: x, y: y, speed: p.Group.Speed, alive: true}
	f.created = append(f.created, a)
	return a, nil
}

func (f *fakeFactory) Size(leveldata.AlienType) (float64, float64) { return 16, 16 }

func (f *fakeFactory) Discard(a Actor) { f.discarded = append(f.discarded, a) }

func (f *fakeFactory) killAll() {
	for _, a := range f.created {
		a.alive = false
	}
}

type fakeLevels map[int][]leveldata.GroupDescriptor

func (l fakeLevels) Load(n int) (*leveldata.LevelDescriptor, error) {
	groups, ok := l[n]
	if !ok {
		return nil, &leveldata.LoadError{Level: n, Err: leveldata.ErrNotFound}
	}
	return &leveldata.LevelDescriptor{
		Number: n,
		Name:   fmt.Sprintf("Level %d", n),
		Groups: leveldata.NewGroupQueue(groups...),
	}, nil
}

func lineGroup(count int) leveldata.GroupDescriptor {
	return leveldata.GroupDescriptor{
		AlienType:  leveldata.MustAlienType("alien_01_small_1"),
		Count:      count,
		Formation:  leveldata.FormationLine,
		Spacing:    40,
		EntryPoint: leveldata.EntryTopCenter,
		Movement:   leveldata.MovementStraight,
		Speed:      2,
		Health:     1,
	}
}

func newTestOrchestrator(t *testing.T, levels fakeLevels, f *fakeFactory) *Orchestrator {
	t.Helper()
	o, err := New(Options{
		Levels:          levels,
		Factory:         f,
		Viewport:        func() gamemath.Viewport { return gamemath.Viewport{W: 800, H: 600} },
		PlayArea:        gamemath.PlayArea{Left: 0.115, Right: 0.885},
		InterGroupDelay: 3 * time.Second,
	})
	require.NoError(t, err)
	return o
}

func run(o *Orchestrator, d time.Duration) {
	for elapsed := time.Duration(0); elapsed < d; elapsed += tick {
		o.Update(tick)
	}
}

func TestLoadLevelSpawnsFirstGroup(t *testing.T) {
	f := &fakeFactory{failAt: -1}
	o := newTestOrchestrator(t, fakeLevels{1: {lineGroup(4), lineGroup(2)}}, f)

	require.NoError(t, o.LoadLevel(1))

	assert.Equal(t, StateActive, o.State())
	assert.Equal(t, 1, o.ActiveGroups())
	assert.Equal(t, 1, o.Remaining())
	require.Len(t, f.created, 4)
	for i, a := range f.created {
		assert.InDelta(t, 340+40*float64(i), a.x, 1e-9)
		assert.InDelta(t, -50, a.y, 1e-9)
	}
}

func TestNextGroupWaitsForDelay(t *testing.T) {
	f := &fakeFactory{failAt: -1}
	o := newTestOrchestrator(t, fakeLevels{1: {lineGroup(1), lineGroup(1)}}, f)
	require.NoError(t, o.LoadLevel(1))
	require.Len(t, f.created, 1)

	f.killAll()
	o.Update(tick)
	assert.Equal(t, StateCleared, o.State())
	assert.Equal(t, 0, o.ActiveGroups())

	run(o, 3*time.Second-10*tick)
	assert.Len(t, f.created, 1, "spawned before the delay elapsed")
	assert.Equal(t, StateCleared, o.State())

	run(o, 20*tick)
	assert.Len(t, f.created, 2)
	assert.Equal(t, StateActive, o.State())
	assert.Equal(t, 0, o.Remaining())
}

func TestEmptyLevelIsCompleteImmediately(t *testing.T) {
	f := &fakeFactory{failAt: -1}
	o := newTestOrchestrator(t, fakeLevels{1: {}}, f)

	require.NoError(t, o.LoadLevel(1))
	assert.True(t, o.IsLevelComplete())
	assert.Equal(t, StateLevelComplete, o.State())
}

func TestLevelCompletesAfterLastGroupAndAdvances(t *testing.T) {
	f := &fakeFactory{failAt: -1}
	var completed []int
	var loaded []int

	o, err := New(Options{
		Levels:          fakeLevels{1: {lineGroup(2)}, 2: {lineGroup(3)}},
		Factory:         f,
		Viewport:        func() gamemath.Viewport { return gamemath.Viewport{W: 800, H: 600} },
		PlayArea:        gamemath.PlayArea{Left: 0.115, Right: 0.885},
		InterGroupDelay: time.Second,
		OnLevelComplete: func(level int) { completed = append(completed, level) },
		OnLevelLoaded:   func(l *leveldata.LevelDescriptor) { loaded = append(loaded, l.Number) },
	})
	require.NoError(t, err)
	require.NoError(t, o.LoadLevel(1))

	f.killAll()
	o.Update(tick)
	assert.False(t, o.IsLevelComplete(), "still inside the delay window")

	run(o, time.Second+10*tick)
	assert.Equal(t, []int{1}, completed)
	assert.Equal(t, []int{1, 2}, loaded)
	assert.Equal(t, 2, o.Level())
	assert.Equal(t, StateActive, o.State())
	assert.Len(t, f.created, 5)
}

func TestLevelTransitionHoldsCompletedLevel(t *testing.T) {
	f := &fakeFactory{failAt: -1}
	o, err := New(Options{
		Levels:          fakeLevels{1: {}, 2: {lineGroup(1)}},
		Factory:         f,
		Viewport:        func() gamemath.Viewport { return gamemath.Viewport{W: 800, H: 600} },
		PlayArea:        gamemath.PlayArea{Left: 0.115, Right: 0.885},
		LevelTransition: 2 * time.Second,
	})
	require.NoError(t, err)
	require.NoError(t, o.LoadLevel(1))

	run(o, time.Second)
	assert.Equal(t, 1, o.Level())
	assert.Equal(t, StateLevelComplete, o.State())

	run(o, 2*time.Second)
	assert.Equal(t, 2, o.Level())
	assert.Len(t, f.created, 1)
}

func TestMissingNextLevelHalts(t *testing.T) {
	f := &fakeFactory{failAt: -1}
	o := newTestOrchestrator(t, fakeLevels{1: {}}, f)
	require.NoError(t, o.LoadLevel(1))

	o.Update(tick)

	assert.True(t, o.Halted())
	assert.Equal(t, StateHalted, o.State())
	assert.Equal(t, 2, o.Level())

	assert.NotPanics(t, func() { run(o, time.Second) })
	assert.ErrorIs(t, o.SpawnNextGroup(), ErrHalted)
}

func TestLoadLevelFailure(t *testing.T) {
	o := newTestOrchestrator(t, fakeLevels{}, &fakeFactory{failAt: -1})

	err := o.LoadLevel(5)
	require.Error(t, err)
	assert.ErrorIs(t, err, leveldata.ErrNotFound)
	assert.True(t, o.Halted())
}

func TestSpawnFailureKeepsGroupQueued(t *testing.T) {
	f := &fakeFactory{failAt: 2}
	o := newTestOrchestrator(t, fakeLevels{1: {lineGroup(4)}}, f)

	require.NoError(t, o.LoadLevel(1))
	assert.Equal(t, 1, o.Remaining())
	assert.Equal(t, 0, o.ActiveGroups())
	assert.Len(t, f.discarded, 2, "members created before the failure are handed back")

	var spawnErr *SpawnError
	err := o.SpawnNextGroup()
	require.ErrorAs(t, err, &spawnErr)
	assert.Equal(t, 2, spawnErr.Index)

	f.failAt = -1
	o.Update(tick)
	assert.Equal(t, 0, o.Remaining())
	assert.Equal(t, 1, o.ActiveGroups())
}

func TestPanicsAreContained(t *testing.T) {
	f := &fakeFactory{failAt: -1, panics: true}
	o := newTestOrchestrator(t, fakeLevels{1: {lineGroup(2)}}, f)

	assert.NotPanics(t, func() { _ = o.LoadLevel(1) })
	assert.NotPanics(t, func() { o.Update(tick) })
	assert.Error(t, o.SpawnNextGroup())
	assert.Equal(t, 1, o.Remaining())
}

func TestFactoryPanicHandsBackBuiltMembers(t *testing.T) {
	f := &fakeFactory{failAt: -1, panicAt: 1}
	o := newTestOrchestrator(t, fakeLevels{1: {lineGroup(3)}}, f)

	require.NoError(t, o.LoadLevel(1))
	require.Len(t, f.created, 1)
	assert.Equal(t, []Actor{f.created[0]}, f.discarded)
	assert.Equal(t, 1, o.Remaining())

	var spawnErr *SpawnError
	require.ErrorAs(t, o.SpawnNextGroup(), &spawnErr)
	assert.Equal(t, 1, spawnErr.Index)
	assert.Len(t, f.discarded, 2)

	f.panicAt = 0
	o.Update(tick)
	require.Len(t, f.created, 5)
	require.Len(t, o.Groups(), 1)
	assert.Len(t, o.Groups()[0].Actors(), 3)
	assert.Equal(t, 0, o.Remaining())
}

func TestSpawnRetriesLogOnce(t *testing.T) {
	var buf bytes.Buffer
	log.SetOutput(&buf)
	t.Cleanup(func() { log.SetOutput(os.Stderr) })

	f := &fakeFactory{failAt: 0}
	o := newTestOrchestrator(t, fakeLevels{1: {lineGroup(2), lineGroup(2)}}, f)
	require.NoError(t, o.LoadLevel(1))
	run(o, time.Second)
	assert.Equal(t, 1, strings.Count(buf.String(), "no sprite"))

	f.failAt = -1
	o.Update(tick)
	require.Equal(t, 1, o.ActiveGroups())

	// A later failure starts a new streak
	f.killAll()
	f.failAt = 0
	run(o, 4*time.Second)
	assert.Equal(t, 2, strings.Count(buf.String(), "no sprite"))
	assert.Equal(t, 1, o.Remaining())
}

func TestSpawnWithoutViewportRetries(t *testing.T) {
	f := &fakeFactory{failAt: -1}
	size := gamemath.Viewport{}
	o, err := New(Options{
		Levels:   fakeLevels{1: {lineGroup(3)}},
		Factory:  f,
		Viewport: func() gamemath.Viewport { return size },
		PlayArea: gamemath.PlayArea{Left: 0.115, Right: 0.885},
	})
	require.NoError(t, err)
	require.NoError(t, o.LoadLevel(1))
	assert.Equal(t, StateIdle, o.State())
	assert.Empty(t, f.created)

	size = gamemath.Viewport{W: 800, H: 600}
	o.Update(tick)
	assert.Len(t, f.created, 3)
}

func TestGroupBehaviourMovesLiveMembers(t *testing.T) {
	f := &fakeFactory{failAt: -1}
	g := lineGroup(3)
	g.GroupBehavior = true

	o, err := New(Options{
		Levels:   fakeLevels{1: {g}},
		Factory:  f,
		Viewport: func() gamemath.Viewport { return gamemath.Viewport{W: 800, H: 600} },
		PlayArea: gamemath.PlayArea{Left: 0.115, Right: 0.885},
		Engine:   movement.NewEngine(nil),
	})
	require.NoError(t, err)
	require.NoError(t, o.LoadLevel(1))

	f.created[1].alive = false
	o.Update(tick)

	assert.InDelta(t, -48, f.created[0].y, 1e-9)
	assert.InDelta(t, -50, f.created[1].y, 1e-9, "dead members are not moved")
	assert.InDelta(t, -48, f.created[2].y, 1e-9)
	require.Len(t, o.Groups(), 1)
	assert.Len(t, o.Groups()[0].Actors(), 2)
}

func TestRecoveredMovePanicMovesGroupsOnce(t *testing.T) {
	f := &fakeFactory{failAt: -1}
	g := lineGroup(1)
	g.GroupBehavior = true

	o, err := New(Options{
		Levels:   fakeLevels{1: {g, g}},
		Factory:  f,
		Viewport: func() gamemath.Viewport { return gamemath.Viewport{W: 800, H: 600} },
		PlayArea: gamemath.PlayArea{Left: 0.115, Right: 0.885},
		Engine:   movement.NewEngine(nil),
	})
	require.NoError(t, err)
	require.NoError(t, o.LoadLevel(1))
	require.NoError(t, o.SpawnNextGroup())
	require.Equal(t, 2, o.ActiveGroups())

	first, second := f.created[0], f.created[1]
	first.alive = false
	second.stuck = true
	assert.NotPanics(t, func() { o.Update(tick) })
	assert.Equal(t, 1, o.ActiveGroups())
	assert.InDelta(t, -50, second.y, 1e-9)

	o.Update(tick)
	assert.InDelta(t, -48, second.y, 1e-9, "moved once per tick")
	assert.Equal(t, 1, o.ActiveGroups())
}

func TestIndependentGroupsAreNotMoved(t *testing.T) {
	f := &fakeFactory{failAt: -1}
	o, err := New(Options{
		Levels:   fakeLevels{1: {lineGroup(2)}},
		Factory:  f,
		Viewport: func() gamemath.Viewport { return gamemath.Viewport{W: 800, H: 600} },
		PlayArea: gamemath.PlayArea{Left: 0.115, Right: 0.885},
		Engine:   movement.NewEngine(nil),
	})
	require.NoError(t, err)
	require.NoError(t, o.LoadLevel(1))

	run(o, time.Second)
	assert.InDelta(t, -50, f.created[0].y, 1e-9)
}

func TestNewValidatesOptions(t *testing.T) {
	_, err := New(Options{})
	assert.Error(t, err)

	_, err = New(Options{
		Levels:   fakeLevels{},
		Factory:  &fakeFactory{},
		Viewport: func() gamemath.Viewport { return gamemath.Viewport{} },
		PlayArea: gamemath.PlayArea{Left: 0.9, Right: 0.1},
	})
	assert.Error(t, err)
}
