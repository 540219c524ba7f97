package game

import (
	"github.com/automoto/boxcollide/components"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/filter"
)

var lifts = donburi.NewQuery(filter.Contains(
	components.Lift,
	components.Position,
	components.Velocity,
))

// UpdateLifts advances each lift's tween and sets the vertical velocity that
// will carry it to the tween's position during the physics tick. Lifts never
// move horizontally.
func UpdateLifts(w donburi.World, dt float64) {
	if dt <= 0 {
		return
	}
	lifts.Each(w, func(e *donburi.Entry) {
		lift := components.Lift.Get(e)
		pos := components.Position.Get(e)
		vel := components.Velocity.Get(e)

		target, done := lift.Legs[lift.Leg].Update(float32(dt))
		if done {
			lift.Leg = (lift.Leg + 1) % len(lift.Legs)
			lift.Legs[lift.Leg].Reset()
		}
		vel.X = 0
		vel.Y = (float64(target) - pos.Y) / dt
	})
}
