package gamemath

// ClampFloat clamps v to [lo, hi]. If hi < lo, lo wins.
func ClampFloat(v, lo, hi float64) float64 {
	if v > hi {
		v = hi
	}
	if v < lo {
		v = lo
	}
	return v
}

// Viewport is the current screen size in pixels.
type Viewport struct {
	W, H float64
}

// Valid reports whether the viewport has a usable size.
func (v Viewport) Valid() bool {
	return v.W > 0 && v.H > 0
}

// PlayArea is the horizontal band actors live in, as fractions of the screen
// width. A valid band satisfies 0 < Left < Right < 1.
type PlayArea struct {
	Left  float64
	Right float64
}

// Valid reports whether the band is well formed.
func (a PlayArea) Valid() bool {
	return a.Left > 0 && a.Left < a.Right && a.Right < 1
}

// Bounds returns the band's left and right edges in pixels for a screen width.
func (a PlayArea) Bounds(screenWidth float64) (left, right float64) {
	return a.Left * screenWidth, a.Right * screenWidth
}

// ClampX clamps the left edge of a box of width w so that the whole box stays
// inside the band. Boxes wider than the band are pinned to the left edge.
func (a PlayArea) ClampX(x, w, screenWidth float64) float64 {
	left, right := a.Bounds(screenWidth)
	return ClampFloat(x, left, right-w)
}
