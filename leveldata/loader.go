package leveldata

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"math"
	"path"
	"sort"
	"strconv"
	"strings"
)

var (
	// ErrNotFound means the level file does not exist. Callers treat it as
	// the end of the campaign.
	ErrNotFound = errors.New("level not found")
	// ErrParse means the level file exists but is malformed.
	ErrParse = errors.New("malformed level")
)

// LoadError reports a level that could not be loaded.
type LoadError struct {
	Level int
	Err   error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("load level %03d: %v", e.Level, e.Err)
}

func (e *LoadError) Unwrap() error { return e.Err }

// Defaults applied to optional level fields.
const (
	DefaultDifficulty       = 1
	DefaultBackgroundSpeed  = 1.0
	DefaultPowerUpFrequency = 0.2
	DefaultMinimumClearTime = 30.0
	MaxDifficulty           = 10
)

// FileName returns the file name of a level, e.g. "007.json".
func FileName(level int) string {
	return fmt.Sprintf("%03d.json", level)
}

// Repository reads level files keyed by zero-padded level number. It takes an
// fs.FS so callers can pass embed.FS (game) or os.DirFS (tools).
type Repository struct {
	fsys fs.FS
	dir  string
}

// NewRepository returns a repository reading <dir>/NNN.json from fsys.
func NewRepository(fsys fs.FS, dir string) *Repository {
	return &Repository{fsys: fsys, dir: dir}
}

// Path returns the slash-separated path of a level inside the repository FS.
func (r *Repository) Path(level int) string {
	return path.Join(r.dir, FileName(level))
}

// Load reads and validates one level.
func (r *Repository) Load(level int) (*LevelDescriptor, error) {
	if level < 1 {
		return nil, &LoadError{Level: level, Err: ErrNotFound}
	}

	data, err := fs.ReadFile(r.fsys, r.Path(level))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, &LoadError{Level: level, Err: ErrNotFound}
		}
		return nil, &LoadError{Level: level, Err: fmt.Errorf("read %s: %w", r.Path(level), err)}
	}

	desc, err := Decode(bytes.NewReader(data))
	if err != nil {
		return nil, &LoadError{Level: level, Err: err}
	}
	if desc.Number != level {
		return nil, &LoadError{
			Level: level,
			Err:   fmt.Errorf("%w: level_number %d in %s", ErrParse, desc.Number, FileName(level)),
		}
	}
	return desc, nil
}

// Available lists the level numbers present in the repository, ascending.
func (r *Repository) Available() ([]int, error) {
	pattern := path.Join(r.dir, "*.json")
	matches, err := fs.Glob(r.fsys, pattern)
	if err != nil {
		return nil, fmt.Errorf("glob %s: %w", pattern, err)
	}

	levels := make([]int, 0, len(matches))
	for _, m := range matches {
		stem := strings.TrimSuffix(path.Base(m), ".json")
		n, err := strconv.Atoi(stem)
		if err != nil || n < 1 {
			continue
		}
		levels = append(levels, n)
	}
	sort.Ints(levels)
	return levels, nil
}

// levelFile is the on-disk shape of a level. Pointer fields are required.
type levelFile struct {
	LevelNumber      *int            `json:"level_number"`
	Name             string          `json:"name"`
	Difficulty       *int            `json:"difficulty,omitempty"`
	AlienGroups      []groupFile     `json:"alien_groups"`
	BossData         *BossDescriptor `json:"boss_data,omitempty"`
	BackgroundSpeed  *float64        `json:"background_speed,omitempty"`
	MusicTrack       string          `json:"music_track,omitempty"`
	SpecialEffects   []string        `json:"special_effects"`
	PowerUpFrequency *float64        `json:"power_up_frequency,omitempty"`
	MinimumClearTime *float64        `json:"minimum_clear_time,omitempty"`
}

type groupFile struct {
	AlienType       *AlienType  `json:"alien_type"`
	Count           *int        `json:"count"`
	Formation       *Formation  `json:"formation"`
	Spacing         *float64    `json:"spacing"`
	EntryPoint      *EntryPoint `json:"entry_point"`
	Path            []PathPoint `json:"path"`
	MovementPattern *Movement   `json:"movement_pattern"`
	Speed           *float64    `json:"speed"`
	Health          *int        `json:"health,omitempty"`
	Life            *int        `json:"life,omitempty"`
	ShootInterval   *float64    `json:"shoot_interval"`
	GroupBehavior   bool        `json:"group_behavior"`
}

func parseErr(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrParse, fmt.Sprintf(format, args...))
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// Decode parses a level file. Every failure wraps ErrParse.
func Decode(r io.Reader) (*LevelDescriptor, error) {
	var f levelFile
	if err := json.NewDecoder(r).Decode(&f); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrParse, err)
	}

	if f.LevelNumber == nil {
		return nil, parseErr("missing level_number")
	}
	if *f.LevelNumber < 1 {
		return nil, parseErr("level_number %d is not positive", *f.LevelNumber)
	}
	if f.AlienGroups == nil {
		return nil, parseErr("missing alien_groups")
	}

	desc := &LevelDescriptor{
		Number:           *f.LevelNumber,
		Name:             f.Name,
		Difficulty:       DefaultDifficulty,
		Boss:             f.BossData,
		BackgroundSpeed:  DefaultBackgroundSpeed,
		MusicTrack:       f.MusicTrack,
		SpecialEffects:   f.SpecialEffects,
		PowerUpFrequency: DefaultPowerUpFrequency,
		MinimumClearTime: DefaultMinimumClearTime,
	}
	if desc.Name == "" {
		desc.Name = fmt.Sprintf("Level %d", desc.Number)
	}
	if desc.SpecialEffects == nil {
		desc.SpecialEffects = []string{}
	}

	if f.Difficulty != nil {
		if *f.Difficulty < 1 || *f.Difficulty > MaxDifficulty {
			return nil, parseErr("difficulty %d outside 1-%d", *f.Difficulty, MaxDifficulty)
		}
		desc.Difficulty = *f.Difficulty
	}
	if f.BackgroundSpeed != nil {
		if !finite(*f.BackgroundSpeed) || *f.BackgroundSpeed < 0 {
			return nil, parseErr("background_speed %v is negative", *f.BackgroundSpeed)
		}
		desc.BackgroundSpeed = *f.BackgroundSpeed
	}
	if f.PowerUpFrequency != nil {
		if !finite(*f.PowerUpFrequency) || *f.PowerUpFrequency < 0 || *f.PowerUpFrequency > 1 {
			return nil, parseErr("power_up_frequency %v outside 0-1", *f.PowerUpFrequency)
		}
		desc.PowerUpFrequency = *f.PowerUpFrequency
	}
	if f.MinimumClearTime != nil {
		desc.MinimumClearTime = *f.MinimumClearTime
	}

	groups := make([]GroupDescriptor, 0, len(f.AlienGroups))
	for i, gf := range f.AlienGroups {
		g, err := gf.descriptor()
		if err != nil {
			return nil, fmt.Errorf("alien_groups[%d]: %w", i, err)
		}
		groups = append(groups, g)
	}
	desc.Groups = NewGroupQueue(groups...)

	return desc, nil
}

func (gf groupFile) descriptor() (GroupDescriptor, error) {
	switch {
	case gf.AlienType == nil:
		return GroupDescriptor{}, parseErr("missing alien_type")
	case gf.Count == nil:
		return GroupDescriptor{}, parseErr("missing count")
	case gf.Formation == nil:
		return GroupDescriptor{}, parseErr("missing formation")
	case gf.Spacing == nil:
		return GroupDescriptor{}, parseErr("missing spacing")
	case gf.EntryPoint == nil:
		return GroupDescriptor{}, parseErr("missing entry_point")
	case gf.MovementPattern == nil:
		return GroupDescriptor{}, parseErr("missing movement_pattern")
	case gf.Speed == nil:
		return GroupDescriptor{}, parseErr("missing speed")
	case gf.Health == nil && gf.Life == nil:
		return GroupDescriptor{}, parseErr("missing health")
	case gf.ShootInterval == nil:
		return GroupDescriptor{}, parseErr("missing shoot_interval")
	}

	health := gf.Life
	if gf.Health != nil {
		health = gf.Health
	}

	g := GroupDescriptor{
		AlienType:     *gf.AlienType,
		Count:         *gf.Count,
		Formation:     *gf.Formation,
		Spacing:       *gf.Spacing,
		EntryPoint:    *gf.EntryPoint,
		Path:          gf.Path,
		Movement:      *gf.MovementPattern,
		Speed:         *gf.Speed,
		Health:        *health,
		ShootInterval: *gf.ShootInterval,
		GroupBehavior: gf.GroupBehavior,
	}

	if g.Count < 1 {
		return g, parseErr("count %d is not positive", g.Count)
	}
	if g.Health < 1 {
		return g, parseErr("health %d is not positive", g.Health)
	}
	if !finite(g.Spacing) || g.Spacing < 0 {
		return g, parseErr("spacing %v is negative", g.Spacing)
	}
	if !finite(g.Speed) || g.Speed < 0 {
		return g, parseErr("speed %v is negative", g.Speed)
	}
	if !finite(g.ShootInterval) || g.ShootInterval < 0 {
		return g, parseErr("shoot_interval %v is negative", g.ShootInterval)
	}
	for i, p := range g.Path {
		if p.X < 0 || p.X > 1 || p.Y < 0 || p.Y > 1 {
			return g, parseErr("path[%d] (%v, %v) outside 0-1", i, p.X, p.Y)
		}
		if p.WaitTime < 0 {
			return g, parseErr("path[%d] wait_time %v is negative", i, p.WaitTime)
		}
	}
	if g.Path == nil {
		g.Path = []PathPoint{}
	}
	return g, nil
}

// Encode writes a level in the on-disk format, groups in queue order.
func Encode(w io.Writer, l *LevelDescriptor) error {
	number := l.Number
	difficulty := l.Difficulty
	bg := l.BackgroundSpeed
	freq := l.PowerUpFrequency
	clear := l.MinimumClearTime

	f := levelFile{
		LevelNumber:      &number,
		Name:             l.Name,
		Difficulty:       &difficulty,
		BossData:         l.Boss,
		BackgroundSpeed:  &bg,
		MusicTrack:       l.MusicTrack,
		SpecialEffects:   l.SpecialEffects,
		PowerUpFrequency: &freq,
		MinimumClearTime: &clear,
		AlienGroups:      []groupFile{},
	}
	if f.SpecialEffects == nil {
		f.SpecialEffects = []string{}
	}

	for _, g := range l.Groups.Items() {
		g := g
		f.AlienGroups = append(f.AlienGroups, groupFile{
			AlienType:       &g.AlienType,
			Count:           &g.Count,
			Formation:       &g.Formation,
			Spacing:         &g.Spacing,
			EntryPoint:      &g.EntryPoint,
			Path:            g.Path,
			MovementPattern: &g.Movement,
			Speed:           &g.Speed,
			Health:          &g.Health,
			ShootInterval:   &g.ShootInterval,
			GroupBehavior:   g.GroupBehavior,
		})
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(&f); err != nil {
		return fmt.Errorf("encode level %03d: %w", l.Number, err)
	}
	return nil
}
