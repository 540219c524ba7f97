package components

import (
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// LiftData drives a vertically moving solid. The two tweens are the up and
// down legs; Leg selects the running one.
type LiftData struct {
	Legs  [2]*gween.Tween
	Leg   int
	BaseY float64
}

var Lift = donburi.NewComponentType[LiftData]()
