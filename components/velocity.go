package components

import (
	"github.com/yohamta/donburi"
	dmath "github.com/yohamta/donburi/features/math"
)

// VelocityData is measured in world units per second. Entities without it are
// treated as stationary by the resolver.
type VelocityData struct {
	X, Y float64
}

func (v VelocityData) Vec() dmath.Vec2 {
	return dmath.Vec2{X: v.X, Y: v.Y}
}

func VelocityFrom(v dmath.Vec2) VelocityData {
	return VelocityData{X: v.X, Y: v.Y}
}

var Velocity = donburi.NewComponentType[VelocityData]()
