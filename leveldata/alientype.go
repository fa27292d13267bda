package leveldata

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// Category is the size class of an alien. It scales points, health, sprite
// size and fire pattern.
type Category int

const (
	CategorySmall Category = iota
	CategoryLarge
	CategoryBoss
)

func (c Category) String() string {
	switch c {
	case CategorySmall:
		return "small"
	case CategoryLarge:
		return "large"
	case CategoryBoss:
		return "boss"
	}
	return fmt.Sprintf("Category(%d)", int(c))
}

// MaxAlienNumber is the highest sprite/type number a campaign uses.
const MaxAlienNumber = 25

// AlienType is a parsed alien type identifier such as "alien_03_large_2" or
// "boss_04".
type AlienType struct {
	ID       string
	Category Category
	Number   int
	Subtype  int
}

// ParseAlienType parses alien_<NN>[_<small|large>[_<sub>]] or boss_<NN>.
func ParseAlienType(id string) (AlienType, error) {
	parts := strings.Split(strings.ToLower(strings.TrimSpace(id)), "_")
	if len(parts) < 2 {
		return AlienType{}, fmt.Errorf("alien type %q: want <alien|boss>_<number>", id)
	}

	n, err := strconv.Atoi(parts[1])
	if err != nil || n < 1 || n > MaxAlienNumber {
		return AlienType{}, fmt.Errorf("alien type %q: bad number %q", id, parts[1])
	}

	t := AlienType{ID: id, Number: n, Subtype: 1}
	switch parts[0] {
	case "boss":
		if len(parts) != 2 {
			return AlienType{}, fmt.Errorf("alien type %q: boss takes no category", id)
		}
		t.Category = CategoryBoss
		return t, nil
	case "alien":
	default:
		return AlienType{}, fmt.Errorf("alien type %q: unknown prefix %q", id, parts[0])
	}

	if len(parts) > 4 {
		return AlienType{}, fmt.Errorf("alien type %q: too many parts", id)
	}
	if len(parts) >= 3 {
		switch parts[2] {
		case "small":
			t.Category = CategorySmall
		case "large":
			t.Category = CategoryLarge
		default:
			return AlienType{}, fmt.Errorf("alien type %q: unknown category %q", id, parts[2])
		}
	}
	if len(parts) == 4 {
		sub, err := strconv.Atoi(parts[3])
		if err != nil || sub < 1 || sub > 2 {
			return AlienType{}, fmt.Errorf("alien type %q: bad subtype %q", id, parts[3])
		}
		t.Subtype = sub
	}
	return t, nil
}

// MustAlienType is ParseAlienType for identifiers known at compile time.
func MustAlienType(id string) AlienType {
	t, err := ParseAlienType(id)
	if err != nil {
		panic(err)
	}
	return t
}

func (t AlienType) String() string { return t.ID }

// IsBoss reports whether the type spawns a single boss actor.
func (t AlienType) IsBoss() bool { return t.Category == CategoryBoss }

func (t AlienType) categoryScale() int {
	switch t.Category {
	case CategoryLarge:
		return 2
	case CategoryBoss:
		return 10
	}
	return 1
}

// Points is the score awarded for destroying one alien of this type.
func (t AlienType) Points() int {
	return t.Number * 100 * t.categoryScale()
}

// BaseHealth is the default hit points of this type before level overrides.
func (t AlienType) BaseHealth() int {
	return t.Number * t.categoryScale()
}

func (t AlienType) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.ID)
}

func (t *AlienType) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	v, err := ParseAlienType(s)
	if err != nil {
		return err
	}
	*t = v
	return nil
}
