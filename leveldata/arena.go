package leveldata

import (
	"fmt"
	"io/fs"

	"github.com/lafriks/go-tiled"
)

// Object group names read from the arena map.
const (
	ArenaPlayAreaGroup    = "PlayArea"
	ArenaEntryPointsGroup = "EntryPoints"
)

// AnchorSpec places an entry anchor relative to the screen:
// x = XFrac*width, y = YFrac*height + YOffset.
type AnchorSpec struct {
	XFrac       float64
	YFrac       float64
	YOffset     float64
	Compression float64 // horizontal spread factor, 1 = none
}

// Arena is the layout authored in the arena TMX map. Nil fields mean the map
// did not define them and callers should keep their defaults.
type Arena struct {
	Width, Height float64
	PlayLeft      *float64
	PlayRight     *float64
	Anchors       map[EntryPoint]AnchorSpec
}

// LoadArena parses a Tiled map whose PlayArea object group holds one rectangle
// and whose EntryPoints object group holds points named after entry points.
// Objects above the map (negative y) keep their pixel offset, everything else
// becomes a fraction of the map size.
func LoadArena(fsys fs.FS, tmxPath string) (*Arena, error) {
	m, err := tiled.LoadFile(tmxPath, tiled.WithFileSystem(fsys))
	if err != nil {
		return nil, fmt.Errorf("load TMX %s: %w", tmxPath, err)
	}

	arena := &Arena{
		Width:   float64(m.Width * m.TileWidth),
		Height:  float64(m.Height * m.TileHeight),
		Anchors: map[EntryPoint]AnchorSpec{},
	}
	if arena.Width <= 0 || arena.Height <= 0 {
		return nil, fmt.Errorf("arena %s has no size", tmxPath)
	}

	for _, og := range m.ObjectGroups {
		switch og.Name {
		case ArenaPlayAreaGroup:
			if len(og.Objects) == 0 {
				continue
			}
			o := og.Objects[0]
			left := o.X / arena.Width
			right := (o.X + o.Width) / arena.Width
			if left <= 0 || left >= right || right >= 1 {
				return nil, fmt.Errorf("arena %s: play area %.3f-%.3f outside 0-1", tmxPath, left, right)
			}
			arena.PlayLeft = &left
			arena.PlayRight = &right

		case ArenaEntryPointsGroup:
			for _, o := range og.Objects {
				entry, err := ParseEntryPoint(o.Name)
				if err != nil {
					return nil, fmt.Errorf("arena %s: %w", tmxPath, err)
				}
				spec := AnchorSpec{XFrac: o.X / arena.Width, Compression: 1}
				if o.Y < 0 {
					spec.YOffset = o.Y
				} else {
					spec.YFrac = o.Y / arena.Height
				}
				if c := o.Properties.GetFloat("compression"); c > 0 {
					spec.Compression = c
				}
				arena.Anchors[entry] = spec
			}
		}
	}

	return arena, nil
}
