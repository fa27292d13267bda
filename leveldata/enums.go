package leveldata

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Formation is the geometric arrangement a group spawns in.
type Formation int

const (
	FormationLine Formation = iota
	FormationV
	FormationCircle
	FormationDiamond
	FormationWave
	FormationCross
	FormationSpiral
	FormationStar
	formationCount
)

var formationNames = [formationCount]string{
	"line", "v", "circle", "diamond", "wave", "cross", "spiral", "star",
}

// EntryPoint is the named anchor a group's formation is translated to.
type EntryPoint int

const (
	EntryTopCenter EntryPoint = iota
	EntryTopLeft
	EntryTopRight
	EntryLeftTop
	EntryRightTop
	entryPointCount
)

var entryPointNames = [entryPointCount]string{
	"top_center", "top_left", "top_right", "left_top", "right_top",
}

// Movement is the per-tick position update rule of a group.
type Movement int

const (
	MovementStraight Movement = iota
	MovementZigzag
	MovementCircular
	MovementWave
	MovementSwarm
	MovementRandom
	MovementChase
	MovementTeleport
	// MovementHold and MovementReserved are placeholders: they never move an
	// actor, the wrap-and-clamp pass still applies.
	MovementHold
	MovementReserved
	movementCount
)

var movementNames = [movementCount]string{
	"straight", "zigzag", "circular", "wave", "swarm",
	"random", "chase", "teleport", "hold", "reserved",
}

// movementAliases maps legacy pattern names found in generated campaigns.
var movementAliases = map[string]Movement{
	"boss": MovementHold,
}

func parseName(names []string, s string) (int, bool) {
	s = strings.ToLower(strings.TrimSpace(s))
	for i, n := range names {
		if n == s {
			return i, true
		}
	}
	return 0, false
}

func enumString(kind string, names []string, v int) string {
	if v < 0 || v >= len(names) {
		return fmt.Sprintf("%s(%d)", kind, v)
	}
	return names[v]
}

func (f Formation) String() string { return enumString("Formation", formationNames[:], int(f)) }
func (e EntryPoint) String() string {
	return enumString("EntryPoint", entryPointNames[:], int(e))
}
func (m Movement) String() string { return enumString("Movement", movementNames[:], int(m)) }

// Valid reports whether f is one of the known formation kinds.
func (f Formation) Valid() bool { return f >= 0 && f < formationCount }

// Valid reports whether e is one of the known entry points.
func (e EntryPoint) Valid() bool { return e >= 0 && e < entryPointCount }

// Valid reports whether m is one of the known movement patterns.
func (m Movement) Valid() bool { return m >= 0 && m < movementCount }

// Side reports whether the entry point approaches from a screen side.
func (e EntryPoint) Side() bool { return e == EntryLeftTop || e == EntryRightTop }

// ParseFormation parses a formation name, ignoring case.
func ParseFormation(s string) (Formation, error) {
	if i, ok := parseName(formationNames[:], s); ok {
		return Formation(i), nil
	}
	return 0, fmt.Errorf("unknown formation %q", s)
}

// ParseEntryPoint parses an entry point name, ignoring case.
func ParseEntryPoint(s string) (EntryPoint, error) {
	if i, ok := parseName(entryPointNames[:], s); ok {
		return EntryPoint(i), nil
	}
	return 0, fmt.Errorf("unknown entry point %q", s)
}

// ParseMovement parses a movement pattern name, ignoring case.
func ParseMovement(s string) (Movement, error) {
	if i, ok := parseName(movementNames[:], s); ok {
		return Movement(i), nil
	}
	if m, ok := movementAliases[strings.ToLower(strings.TrimSpace(s))]; ok {
		return m, nil
	}
	return 0, fmt.Errorf("unknown movement pattern %q", s)
}

// Formations lists every formation kind in declaration order.
func Formations() []Formation {
	out := make([]Formation, formationCount)
	for i := range out {
		out[i] = Formation(i)
	}
	return out
}

// EntryPoints lists every entry point in declaration order.
func EntryPoints() []EntryPoint {
	out := make([]EntryPoint, entryPointCount)
	for i := range out {
		out[i] = EntryPoint(i)
	}
	return out
}

// Movements lists every movement pattern in declaration order.
func Movements() []Movement {
	out := make([]Movement, movementCount)
	for i := range out {
		out[i] = Movement(i)
	}
	return out
}

func marshalEnum(valid bool, s string) ([]byte, error) {
	if !valid {
		return nil, fmt.Errorf("cannot marshal %s", s)
	}
	return json.Marshal(s)
}

func unmarshalEnumString(data []byte) (string, error) {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return "", err
	}
	return s, nil
}

func (f Formation) MarshalJSON() ([]byte, error) { return marshalEnum(f.Valid(), f.String()) }

func (f *Formation) UnmarshalJSON(data []byte) error {
	s, err := unmarshalEnumString(data)
	if err != nil {
		return err
	}
	v, err := ParseFormation(s)
	if err != nil {
		return err
	}
	*f = v
	return nil
}

func (e EntryPoint) MarshalJSON() ([]byte, error) { return marshalEnum(e.Valid(), e.String()) }

func (e *EntryPoint) UnmarshalJSON(data []byte) error {
	s, err := unmarshalEnumString(data)
	if err != nil {
		return err
	}
	v, err := ParseEntryPoint(s)
	if err != nil {
		return err
	}
	*e = v
	return nil
}

func (m Movement) MarshalJSON() ([]byte, error) { return marshalEnum(m.Valid(), m.String()) }

func (m *Movement) UnmarshalJSON(data []byte) error {
	s, err := unmarshalEnumString(data)
	if err != nil {
		return err
	}
	v, err := ParseMovement(s)
	if err != nil {
		return err
	}
	*m = v
	return nil
}
