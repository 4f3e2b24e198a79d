package components

import (
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	dmath "github.com/yohamta/donburi/features/math"
)

type ObjectData struct {
	*resolv.Object
}

// Center returns the middle of the collision box.
func (o *ObjectData) Center() dmath.Vec2 {
	return dmath.NewVec2(o.X+o.W/2, o.Y+o.H/2)
}

// SetCenter moves the collision box so its middle sits on p and refreshes
// its broadphase cells.
func (o *ObjectData) SetCenter(p dmath.Vec2) {
	o.X = p.X - o.W/2
	o.Y = p.Y - o.H/2
	if o.Space != nil {
		o.Update()
	}
}

var Object = donburi.NewComponentType[ObjectData]()
