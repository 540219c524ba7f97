package factory

import (
	"github.com/automoto/boxcollide/archetypes"
	"github.com/automoto/boxcollide/components"
	"github.com/automoto/boxcollide/hbox"
	"github.com/automoto/boxcollide/shared/leveldata"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
)

// CreateLift creates a solid that moves up by Travel and back down again,
// easing in and out at each end.
func CreateLift(w donburi.World, l leveldata.Lift) *donburi.Entry {
	lift := archetypes.Lift.Spawn(w)

	cx, cy := l.Center()
	components.Position.SetValue(lift, components.PositionData{X: cx, Y: cy})
	components.StaticTx.SetValue(lift, components.SingleStaticTx(components.StaticTxSolid, hbox.New(l.W, l.H)))

	bottom, top := float32(cy), float32(cy+l.Travel)
	secs := float32(l.Seconds)
	components.Lift.SetValue(lift, components.LiftData{
		Legs: [2]*gween.Tween{
			gween.New(bottom, top, secs, ease.InOutQuad),
			gween.New(top, bottom, secs, ease.InOutQuad),
		},
		BaseY: cy,
	})
	mirror(w, lift, cx, cy, l.W, l.H)

	return lift
}
