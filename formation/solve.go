// Package formation computes where the members of a group spawn: the shape of
// the formation and its translation to an entry anchor inside the play area.
package formation

import (
	"errors"
	"fmt"
	"log"
	"math"

	"github.com/automoto/starlane/gamemath"
	"github.com/automoto/starlane/leveldata"
)

// Formations are laid out around the screen centre on this row, just above
// the visible area.
const OriginY = -50.0

// FallbackSpacing is used by the fallback line when the requested spacing is
// unusable.
const FallbackSpacing = 40.0

// Shape constants.
const (
	waveStep   = 0.5 // radians between members of a wave
	spiralStep = 0.5 // radians between members of a spiral
	starOuter  = 2.0 // star outer radius in spacings
	starInner  = 1.0 // star inner radius in spacings
)

var (
	ErrEmptyFormation = errors.New("formation has no members")
	ErrBadSpacing     = errors.New("spacing is not a finite non-negative number")
	ErrNoViewport     = errors.New("screen width unavailable")
	ErrUnknownKind    = errors.New("unknown formation kind")
)

// Solve returns count spawn points for a formation centred on screenWidth/2
// at OriginY. It never fails: bad input is logged and degrades to a single
// row line. A non-positive count is logged and yields no points.
func Solve(kind leveldata.Formation, count int, spacing, screenWidth float64) []gamemath.Point {
	if count <= 0 {
		log.Printf("Warning: formation %s x%d: %v", kind, count, ErrEmptyFormation)
		return []gamemath.Point{}
	}
	pts, err := solve(kind, count, spacing, screenWidth)
	if err == nil {
		return pts
	}
	log.Printf("Warning: formation %s x%d: %v, falling back to line", kind, count, err)
	return fallback(count, spacing, screenWidth)
}

func solve(kind leveldata.Formation, count int, spacing, screenWidth float64) ([]gamemath.Point, error) {
	switch {
	case count <= 0:
		return nil, ErrEmptyFormation
	case math.IsNaN(spacing) || math.IsInf(spacing, 0) || spacing < 0:
		return nil, ErrBadSpacing
	case !(screenWidth > 0) || math.IsInf(screenWidth, 0):
		return nil, ErrNoViewport
	}

	cx := screenWidth / 2
	pts := make([]gamemath.Point, count)

	switch kind {
	case leveldata.FormationLine:
		line(pts, cx, spacing)

	case leveldata.FormationV:
		for i := range pts {
			arm := float64(i / 2)
			x := cx + arm*spacing
			if i%2 == 1 {
				x = cx - (arm+1)*spacing
			}
			pts[i] = gamemath.Point{X: x, Y: OriginY + arm*spacing}
		}

	case leveldata.FormationCircle:
		r := CircleRadius(count, spacing)
		for i := range pts {
			a := 2 * math.Pi * float64(i) / float64(count)
			pts[i] = gamemath.Point{X: cx + r*math.Cos(a), Y: OriginY + r*math.Sin(a)}
		}

	case leveldata.FormationDiamond:
		size := int(math.Ceil(math.Sqrt(float64(count))))
		for i := range pts {
			row, col := i/size, i%size
			inRow := min(size, count-row*size)
			offset := float64(col) - float64(inRow-1)/2
			pts[i] = gamemath.Point{X: cx + offset*spacing, Y: OriginY + float64(row)*spacing}
		}

	case leveldata.FormationWave:
		line(pts, cx, spacing)
		for i := range pts {
			pts[i].Y = OriginY + math.Sin(float64(i)*waveStep)*spacing
		}

	case leveldata.FormationCross:
		mid := count / 2
		armY := OriginY - float64(mid)*spacing/2
		for i := range pts {
			if i < mid {
				pts[i] = gamemath.Point{X: cx, Y: OriginY - float64(i)*spacing}
				continue
			}
			pts[i] = gamemath.Point{X: cx + float64(i-mid-count/4)*spacing, Y: armY}
		}

	case leveldata.FormationSpiral:
		a := spacing / (2 * math.Pi)
		for i := range pts {
			theta := float64(i) * spiralStep
			r := a * theta
			pts[i] = gamemath.Point{X: cx + r*math.Cos(theta), Y: OriginY + r*math.Sin(theta)}
		}

	case leveldata.FormationStar:
		for i := range pts {
			a := 2 * math.Pi * float64(i) / float64(count)
			r := starInner * spacing
			if i%2 == 0 {
				r = starOuter * spacing
			}
			pts[i] = gamemath.Point{X: cx + r*math.Cos(a), Y: OriginY + r*math.Sin(a)}
		}

	default:
		return nil, fmt.Errorf("%w: %d", ErrUnknownKind, int(kind))
	}

	return pts, nil
}

// line centres count points on cx, spacing apart, at OriginY.
func line(pts []gamemath.Point, cx, spacing float64) {
	start := cx - float64(len(pts)-1)*spacing/2
	for i := range pts {
		pts[i] = gamemath.Point{X: start + float64(i)*spacing, Y: OriginY}
	}
}

func fallback(count int, spacing, screenWidth float64) []gamemath.Point {
	if math.IsNaN(spacing) || math.IsInf(spacing, 0) || spacing < 0 {
		spacing = FallbackSpacing
	}
	cx := 0.0
	if screenWidth > 0 && !math.IsInf(screenWidth, 0) {
		cx = screenWidth / 2
	}
	pts := make([]gamemath.Point, count)
	line(pts, cx, spacing)
	return pts
}

// CircleRadius is the radius of a circle formation: its circumference is
// count*spacing.
func CircleRadius(count int, spacing float64) float64 {
	return spacing * float64(count) / (2 * math.Pi)
}
