package components

import (
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// ObjectData mirrors a solid into the resolv space used for spatial queries
// outside the physics tick (safe-ground search on respawn).
type ObjectData struct {
	*resolv.Object
}

var Object = donburi.NewComponentType[ObjectData]()

// SpaceData is the resolv space plus the world point mapped to its (0, 0).
// resolv cells start at zero and grow downwards, the world is centered on the
// origin with y up.
type SpaceData struct {
	*resolv.Space
	OriginX float64 // world x of the space's left edge
	OriginY float64 // world y of the space's top edge
}

// ToSpace converts a world-space box given by its center and size into the
// top-left corner resolv expects.
func (s *SpaceData) ToSpace(cx, cy, w, h float64) (x, y float64) {
	return cx - w/2 - s.OriginX, s.OriginY - (cy + h/2)
}

// ToWorld converts a resolv top-left corner back to a world-space center.
func (s *SpaceData) ToWorld(x, y, w, h float64) (cx, cy float64) {
	return x + w/2 + s.OriginX, s.OriginY - y - h/2
}

var Space = donburi.NewComponentType[SpaceData]()
