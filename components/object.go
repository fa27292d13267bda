package components

import (
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

type ObjectData struct {
	*resolv.Object
}

// Centre returns the midpoint of the object's rectangle.
func (o *ObjectData) Centre() (float64, float64) {
	return o.X + o.W/2, o.Y + o.H/2
}

// Overlaps is an exact rectangle test. Space checks only report shared cells.
func (o *ObjectData) Overlaps(other *resolv.Object) bool {
	return o.X < other.X+other.W && other.X < o.X+o.W &&
		o.Y < other.Y+other.H && other.Y < o.Y+o.H
}

var Object = donburi.NewComponentType[ObjectData]()

// Space holds the single resolv space every collidable object lives in.
var Space = donburi.NewComponentType[resolv.Space]()
