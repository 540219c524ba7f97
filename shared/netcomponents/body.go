package netcomponents

import "github.com/yohamta/donburi"

// NetPositionData is a body's center in world units, y up.
type NetPositionData struct {
	X, Y float64
}

// NetVelocityData is in world units per second.
type NetVelocityData struct {
	X, Y float64
}

var (
	NetPosition = donburi.NewComponentType[NetPositionData]()
	NetVelocity = donburi.NewComponentType[NetVelocityData]()
)

func lerp(from, to, t float64) float64 {
	return from + (to-from)*t
}

// LerpNetPosition is the client-side interpolation between two snapshots.
func LerpNetPosition(from, to NetPositionData, t float64) *NetPositionData {
	return &NetPositionData{X: lerp(from.X, to.X, t), Y: lerp(from.Y, to.Y, t)}
}

func LerpNetVelocity(from, to NetVelocityData, t float64) *NetVelocityData {
	return &NetVelocityData{X: lerp(from.X, to.X, t), Y: lerp(from.Y, to.Y, t)}
}
