package components

import (
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// BannerData is the fading "LEVEL N" overlay.
type BannerData struct {
	Title    string
	Subtitle string
	Fade     *gween.Sequence
	Alpha    float32
}

var Banner = donburi.NewComponentType[BannerData]()

// StarData is one point of the scrolling background.
type StarData struct {
	X, Y  float64
	Size  float64
	Speed float64
}

var Star = donburi.NewComponentType[StarData]()
