package components

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

// CameraData is the world point drawn at the center of the screen.
type CameraData struct {
	Position   math.Vec2
	LookAheadX float64 // Current smoothed X offset for look-ahead
}

// ToScreen maps a world point (y up) to screen pixels (y down).
func (c *CameraData) ToScreen(x, y float64, width, height int) (sx, sy float32) {
	return float32(x - c.Position.X + float64(width)/2), float32(c.Position.Y - y + float64(height)/2)
}

var Camera = donburi.NewComponentType[CameraData]()
