// Package wave sequences the groups of a level: it spawns each group at its
// formation, watches it until every member is gone, waits out the
// inter-group delay and moves on to the next group and the next level.
package wave

import (
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/automoto/starlane/formation"
	"github.com/automoto/starlane/gamemath"
	"github.com/automoto/starlane/leveldata"
	"github.com/automoto/starlane/movement"
)

// DefaultInterGroupDelay separates the clear of one group from the spawn of
// the next.
const DefaultInterGroupDelay = 3 * time.Second

var (
	ErrNoLevel    = errors.New("no level loaded")
	ErrQueueEmpty = errors.New("no groups left to spawn")
	ErrHalted     = errors.New("campaign halted")
)

// State is the orchestrator's position in the spawn cycle.
type State int

const (
	StateIdle State = iota
	StateSpawning
	StateActive
	StateCleared
	StateLevelComplete
	StateHalted
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateSpawning:
		return "spawning"
	case StateActive:
		return "active"
	case StateCleared:
		return "cleared"
	case StateLevelComplete:
		return "level_complete"
	case StateHalted:
		return "halted"
	}
	return fmt.Sprintf("State(%d)", int(s))
}

// Actor is a spawned alien as seen by the orchestrator. Liveness is owned by
// whoever damages the actor; the orchestrator only reads it.
type Actor interface {
	movement.Actor
	Alive() bool
}

// SpawnParams carries the group settings a factory needs for one member.
type SpawnParams struct {
	Level int
	Group leveldata.GroupDescriptor
	Index int
}

// Factory builds actors. The orchestrator never destroys what it creates.
type Factory interface {
	Create(t leveldata.AlienType, x, y float64, p SpawnParams) (Actor, error)
	Size(t leveldata.AlienType) (w, h float64)
}

// Discarder is implemented by factories that can take back actors of a group
// whose spawn failed part way.
type Discarder interface {
	Discard(a Actor)
}

// LevelSource loads levels by number. *leveldata.Repository implements it.
type LevelSource interface {
	Load(level int) (*leveldata.LevelDescriptor, error)
}

// SpawnError reports a group that could not be spawned. The group stays queued.
type SpawnError struct {
	Level int
	Type  leveldata.AlienType
	Index int // member that failed, -1 for placement failures
	Err   error
}

func (e *SpawnError) Error() string {
	if e.Index < 0 {
		return fmt.Sprintf("spawn %s in level %d: %v", e.Type, e.Level, e.Err)
	}
	return fmt.Sprintf("spawn %s #%d in level %d: %v", e.Type, e.Index, e.Level, e.Err)
}

func (e *SpawnError) Unwrap() error { return e.Err }

// Options configure an Orchestrator. Levels, Factory and Viewport are
// required.
type Options struct {
	Levels   LevelSource
	Factory  Factory
	Viewport func() gamemath.Viewport
	PlayArea gamemath.PlayArea
	Player   movement.PlayerLocator
	Engine   *movement.Engine
	Layout   *formation.Layout

	InterGroupDelay time.Duration
	// LevelTransition holds the completed level before the next one loads.
	LevelTransition time.Duration

	OnLevelLoaded   func(l *leveldata.LevelDescriptor)
	OnLevelComplete func(level int)
}

// ActiveGroup is a spawned group that still has live members.
type ActiveGroup struct {
	Type          leveldata.AlienType
	Pattern       leveldata.Movement
	GroupBehavior bool
	actors        []Actor
}

// Actors returns the members that were alive at the last update.
func (g *ActiveGroup) Actors() []Actor {
	out := make([]Actor, len(g.actors))
	copy(out, g.actors)
	return out
}

// Orchestrator drives one campaign. All methods run on the game loop
// goroutine.
type Orchestrator struct {
	opts   Options
	layout formation.Layout

	level  int
	desc   *leveldata.LevelDescriptor
	active []*ActiveGroup

	clock       time.Duration
	pending     bool
	clearedAt   time.Duration
	complete    bool
	completedAt time.Duration
	spawning    bool
	retrying    bool // logged the current run of spawn failures
	halted      bool
	err         error
}

// New validates opts and returns an orchestrator with no level loaded.
func New(opts Options) (*Orchestrator, error) {
	switch {
	case opts.Levels == nil:
		return nil, errors.New("wave: nil level source")
	case opts.Factory == nil:
		return nil, errors.New("wave: nil actor factory")
	case opts.Viewport == nil:
		return nil, errors.New("wave: nil viewport query")
	case !opts.PlayArea.Valid():
		return nil, fmt.Errorf("wave: %w", formation.ErrBadPlayArea)
	case opts.InterGroupDelay < 0 || opts.LevelTransition < 0:
		return nil, errors.New("wave: negative delay")
	}
	if opts.InterGroupDelay == 0 {
		opts.InterGroupDelay = DefaultInterGroupDelay
	}

	o := &Orchestrator{opts: opts, layout: formation.DefaultLayout()}
	if opts.Layout != nil {
		o.layout = *opts.Layout
	}
	return o, nil
}

func (o *Orchestrator) recoverAs(op string, err *error) {
	r := recover()
	if r == nil {
		return
	}
	log.Printf("Error: %s panicked in level %d: %v", op, o.level, r)
	if err != nil {
		*err = fmt.Errorf("%s: panic: %v", op, r)
	}
}

// LoadLevel replaces the current level with level n and spawns its first
// group. Actors of the previous level are left to their owners. A load
// failure halts the campaign.
func (o *Orchestrator) LoadLevel(n int) (err error) {
	defer o.recoverAs("load level", &err)

	o.active = nil
	o.pending = false
	o.retrying = false
	o.complete = false
	o.desc = nil
	o.level = n
	if o.opts.Engine != nil {
		o.opts.Engine.Reset()
	}

	desc, err := o.opts.Levels.Load(n)
	if err != nil {
		o.halted = true
		o.err = err
		log.Printf("Error loading level %d, campaign halted: %v", n, err)
		return err
	}
	if desc.Groups == nil {
		desc.Groups = leveldata.NewGroupQueue()
	}
	o.desc = desc
	o.halted = false
	o.err = nil
	log.Printf("Loaded level %d %q: %d groups", n, desc.Name, desc.Groups.Len())

	if o.opts.OnLevelLoaded != nil {
		o.opts.OnLevelLoaded(desc)
	}

	if desc.Groups.Len() > 0 {
		if err := o.spawnNext(); err != nil {
			log.Printf("Error spawning first group of level %d: %v", n, err)
			o.retrying = true
		}
	}
	return nil
}

// SpawnNextGroup places the next queued group and hands it to the factory.
// On failure the group stays queued.
func (o *Orchestrator) SpawnNextGroup() (err error) {
	defer o.recoverAs("spawn group", &err)
	return o.spawnNext()
}

func (o *Orchestrator) spawnNext() error {
	if o.halted {
		return ErrHalted
	}
	if o.desc == nil {
		return ErrNoLevel
	}
	g, ok := o.desc.Groups.Peek()
	if !ok {
		return ErrQueueEmpty
	}

	o.spawning = true
	defer func() { o.spawning = false }()

	w, _ := o.opts.Factory.Size(g.AlienType)
	pts, err := formation.Spawn(g, o.opts.Viewport(), o.opts.PlayArea, o.layout, w)
	if err != nil {
		return &SpawnError{Level: o.level, Type: g.AlienType, Index: -1, Err: err}
	}

	actors := make([]Actor, 0, len(pts))
	for i, p := range pts {
		a, err := o.create(g, p, i)
		if err != nil {
			o.discard(actors)
			return &SpawnError{Level: o.level, Type: g.AlienType, Index: i, Err: err}
		}
		actors = append(actors, a)
	}

	o.desc.Groups.Pop()
	o.active = append(o.active, &ActiveGroup{
		Type:          g.AlienType,
		Pattern:       g.Movement,
		GroupBehavior: g.GroupBehavior,
		actors:        actors,
	})
	o.pending = false
	return nil
}

// create builds one member. A panicking factory is reported as an error so
// the members already built still go back through discard.
func (o *Orchestrator) create(g leveldata.GroupDescriptor, p gamemath.Point, i int) (a Actor, err error) {
	defer func() {
		if r := recover(); r != nil {
			a, err = nil, fmt.Errorf("factory panic: %v", r)
		}
	}()
	a, err = o.opts.Factory.Create(g.AlienType, p.X, p.Y, SpawnParams{Level: o.level, Group: g, Index: i})
	if err == nil && a == nil {
		err = errors.New("factory returned no actor")
	}
	return a, err
}

func (o *Orchestrator) discard(actors []Actor) {
	d, ok := o.opts.Factory.(Discarder)
	if !ok {
		return
	}
	for _, a := range actors {
		d.Discard(a)
	}
}

// Update advances the orchestrator by dt: it prunes dead members, moves
// group-behaviour groups, spawns the next group once the delay after a clear
// has passed, and moves to the next level when the current one is done.
func (o *Orchestrator) Update(dt time.Duration) {
	defer o.recoverAs("update", nil)

	if o.halted || o.desc == nil {
		return
	}
	o.clock += dt

	if o.complete {
		if o.clock-o.completedAt >= o.opts.LevelTransition {
			o.advance()
		}
		return
	}

	o.pruneAndMove()

	if len(o.active) > 0 {
		return
	}

	if o.pending && o.clock-o.clearedAt < o.opts.InterGroupDelay {
		return
	}

	if o.desc.Groups.Len() > 0 {
		err := o.spawnNext()
		if err != nil && !o.retrying {
			log.Printf("Error: %v, retrying", err)
		}
		o.retrying = err != nil
		return
	}

	o.pending = false
	o.complete = true
	o.completedAt = o.clock
	log.Printf("Level %d complete", o.level)
	if o.opts.OnLevelComplete != nil {
		o.opts.OnLevelComplete(o.level)
	}
	if o.opts.LevelTransition == 0 {
		o.advance()
	}
}

// pruneAndMove drops dead members and cleared groups, then moves the
// group-behaviour groups. o.active is settled before any actor is moved.
func (o *Orchestrator) pruneAndMove() {
	kept := make([]*ActiveGroup, 0, len(o.active))
	for _, g := range o.active {
		live := make([]Actor, 0, len(g.actors))
		for _, a := range g.actors {
			if a.Alive() {
				live = append(live, a)
			} else if o.opts.Engine != nil {
				o.opts.Engine.Forget(a)
			}
		}
		g.actors = live

		if len(live) == 0 {
			o.pending = true
			o.clearedAt = o.clock
			continue
		}
		kept = append(kept, g)
	}
	o.active = kept

	if o.opts.Engine == nil {
		return
	}
	for _, g := range o.active {
		if !g.GroupBehavior {
			continue
		}
		movers := make([]movement.Actor, len(g.actors))
		for i, a := range g.actors {
			movers[i] = a
		}
		o.opts.Engine.Advance(g.Pattern, movers, o.clock.Seconds(),
			o.opts.Viewport(), o.opts.PlayArea, o.opts.Player)
	}
}

func (o *Orchestrator) advance() {
	// LoadLevel logs and halts on failure.
	_ = o.LoadLevel(o.level + 1)
}

// IsLevelComplete reports whether the loaded level has nothing queued,
// nothing alive and no delay pending.
func (o *Orchestrator) IsLevelComplete() bool {
	if o.desc == nil {
		return false
	}
	return o.complete || (o.desc.Groups.Len() == 0 && len(o.active) == 0 && !o.pending)
}

// State reports the current state.
func (o *Orchestrator) State() State {
	switch {
	case o.halted:
		return StateHalted
	case o.spawning:
		return StateSpawning
	case o.desc == nil:
		return StateIdle
	case o.IsLevelComplete():
		return StateLevelComplete
	case len(o.active) > 0:
		return StateActive
	case o.pending:
		return StateCleared
	}
	return StateIdle
}

// Level returns the current level number.
func (o *Orchestrator) Level() int { return o.level }

// Descriptor returns the loaded level, nil when none is loaded.
func (o *Orchestrator) Descriptor() *leveldata.LevelDescriptor { return o.desc }

// ActiveGroups returns the number of groups with live members.
func (o *Orchestrator) ActiveGroups() int { return len(o.active) }

// Groups returns the active groups.
func (o *Orchestrator) Groups() []*ActiveGroup {
	out := make([]*ActiveGroup, len(o.active))
	copy(out, o.active)
	return out
}

// Remaining returns the number of groups still queued.
func (o *Orchestrator) Remaining() int {
	if o.desc == nil {
		return 0
	}
	return o.desc.Groups.Len()
}

// Halted reports whether the campaign stopped because a level failed to load.
func (o *Orchestrator) Halted() bool { return o.halted }

// Err returns the load error that halted the campaign, if any. Running past
// the last level file halts with leveldata.ErrNotFound.
func (o *Orchestrator) Err() error { return o.err }
