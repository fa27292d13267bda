package formation

import (
	"errors"
	"fmt"

	"github.com/automoto/starlane/gamemath"
	"github.com/automoto/starlane/leveldata"
)

// SideCompression is the horizontal spread kept by formations entering from a
// screen side.
const SideCompression = 0.2

var (
	ErrUnknownEntry = errors.New("unknown entry point")
	ErrBadPlayArea  = errors.New("play area must satisfy 0 < left < right < 1")
)

// Layout holds the anchor of every entry point.
type Layout struct {
	anchors map[leveldata.EntryPoint]leveldata.AnchorSpec
}

// DefaultLayout returns the stock anchors: top entries 50 px above the screen
// at 50%, 20% and 80% of the width, side entries at 10% and 90% of the width
// and 20% of the height.
func DefaultLayout() Layout {
	top := func(x float64) leveldata.AnchorSpec {
		return leveldata.AnchorSpec{XFrac: x, YOffset: OriginY, Compression: 1}
	}
	side := func(x float64) leveldata.AnchorSpec {
		return leveldata.AnchorSpec{XFrac: x, YFrac: 0.2, Compression: SideCompression}
	}
	return Layout{anchors: map[leveldata.EntryPoint]leveldata.AnchorSpec{
		leveldata.EntryTopCenter: top(0.5),
		leveldata.EntryTopLeft:   top(0.2),
		leveldata.EntryTopRight:  top(0.8),
		leveldata.EntryLeftTop:   side(0.1),
		leveldata.EntryRightTop:  side(0.9),
	}}
}

// LayoutFromArena overlays the anchors authored in an arena map on the
// default layout. Side entries keep side compression unless the map sets one.
func LayoutFromArena(a *leveldata.Arena) Layout {
	l := DefaultLayout()
	if a == nil {
		return l
	}
	for entry, spec := range a.Anchors {
		if entry.Side() && spec.Compression == 1 {
			spec.Compression = SideCompression
		}
		l.anchors[entry] = spec
	}
	return l
}

// Anchor is an entry point resolved against a screen size.
type Anchor struct {
	X, Y        float64
	Compression float64
}

// Resolve returns the anchor of an entry point for the given screen size.
func Resolve(entry leveldata.EntryPoint, view gamemath.Viewport, layout Layout) (Anchor, error) {
	if !view.Valid() {
		return Anchor{}, ErrNoViewport
	}
	spec, ok := layout.anchors[entry]
	if !ok {
		return Anchor{}, fmt.Errorf("%w: %s", ErrUnknownEntry, entry)
	}
	c := spec.Compression
	if c <= 0 {
		c = 1
	}
	return Anchor{
		X:           spec.XFrac * view.W,
		Y:           spec.YFrac*view.H + spec.YOffset,
		Compression: c,
	}, nil
}

// Place translates formation points from their screen-centred origin to the
// entry anchor, compresses the horizontal spread and clamps each member of
// the given width into the play area. The input slice is not modified.
func Place(pts []gamemath.Point, entry leveldata.EntryPoint, view gamemath.Viewport,
	area gamemath.PlayArea, layout Layout, width float64) ([]gamemath.Point, error) {
	if !area.Valid() {
		return nil, ErrBadPlayArea
	}
	anchor, err := Resolve(entry, view, layout)
	if err != nil {
		return nil, err
	}

	cx := view.W / 2
	out := make([]gamemath.Point, len(pts))
	for i, p := range pts {
		x := anchor.X + (p.X-cx)*anchor.Compression
		out[i] = gamemath.Point{
			X: area.ClampX(x, width, view.W),
			Y: anchor.Y + (p.Y - OriginY),
		}
	}
	return out, nil
}

// Spawn solves a group's formation and places it at the group's entry point.
func Spawn(g leveldata.GroupDescriptor, view gamemath.Viewport, area gamemath.PlayArea,
	layout Layout, width float64) ([]gamemath.Point, error) {
	if !view.Valid() {
		return nil, ErrNoViewport
	}
	return Place(Solve(g.Formation, g.Count, g.Spacing, view.W), g.EntryPoint, view, area, layout, width)
}
