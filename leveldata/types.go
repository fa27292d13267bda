// Package leveldata loads the declarative level files that drive a campaign.
// It has no dependencies on ebitengine, donburi, or resolv. Pure data only.
package leveldata

// PathPoint is a waypoint relative to the screen, both axes in [0, 1].
type PathPoint struct {
	X        float64 `json:"x"`
	Y        float64 `json:"y"`
	WaitTime float64 `json:"wait_time"`
	Shoot    bool    `json:"shoot"`
}

// GroupDescriptor describes one wave of identical-role aliens.
type GroupDescriptor struct {
	AlienType     AlienType
	Count         int
	Formation     Formation
	Spacing       float64
	EntryPoint    EntryPoint
	Path          []PathPoint
	Movement      Movement
	Speed         float64
	Health        int
	ShootInterval float64 // seconds
	GroupBehavior bool    // move in unison under the movement engine
}

// BossDescriptor is the optional boss of a level.
type BossDescriptor struct {
	Type           string   `json:"type"`
	Health         int      `json:"health"`
	Speed          float64  `json:"speed"`
	AttackPatterns []string `json:"attack_patterns,omitempty"`
}

// LevelDescriptor is one loaded level. Everything but Groups is immutable after
// load; Groups shrinks as the orchestrator spawns.
type LevelDescriptor struct {
	Number           int
	Name             string
	Difficulty       int // 1-10
	Groups           *GroupQueue
	Boss             *BossDescriptor
	BackgroundSpeed  float64
	MusicTrack       string
	SpecialEffects   []string
	PowerUpFrequency float64 // 0-1
	MinimumClearTime float64 // seconds, advisory
}

// HasEffect reports whether the level carries the given special-effect tag.
func (l *LevelDescriptor) HasEffect(tag string) bool {
	for _, e := range l.SpecialEffects {
		if e == tag {
			return true
		}
	}
	return false
}

// Level effects understood by the game.
const (
	EffectBonusMultiplier = "bonus_multiplier"
	EffectScreenShake     = "screen_shake"
)

// GroupQueue is the FIFO of groups still to spawn in a level.
type GroupQueue struct {
	groups []GroupDescriptor
}

// NewGroupQueue returns a queue holding groups in spawn order.
func NewGroupQueue(groups ...GroupDescriptor) *GroupQueue {
	q := &GroupQueue{groups: make([]GroupDescriptor, len(groups))}
	copy(q.groups, groups)
	return q
}

// Len returns the number of queued groups. A nil queue is empty.
func (q *GroupQueue) Len() int {
	if q == nil {
		return 0
	}
	return len(q.groups)
}

// Peek returns the next group without consuming it.
func (q *GroupQueue) Peek() (GroupDescriptor, bool) {
	if q.Len() == 0 {
		return GroupDescriptor{}, false
	}
	return q.groups[0], true
}

// Pop removes and returns the next group.
func (q *GroupQueue) Pop() (GroupDescriptor, bool) {
	g, ok := q.Peek()
	if !ok {
		return g, false
	}
	q.groups[0] = GroupDescriptor{}
	q.groups = q.groups[1:]
	return g, true
}

// Items returns a copy of the queued groups.
func (q *GroupQueue) Items() []GroupDescriptor {
	if q == nil {
		return nil
	}
	out := make([]GroupDescriptor, len(q.groups))
	copy(out, q.groups)
	return out
}
