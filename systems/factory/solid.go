package factory

import (
	"github.com/automoto/boxcollide/archetypes"
	"github.com/automoto/boxcollide/components"
	"github.com/automoto/boxcollide/hbox"
	"github.com/automoto/boxcollide/shared/leveldata"
	"github.com/yohamta/donburi"
)

// CreateSolid creates a stationary solid transmitter from a level rectangle.
func CreateSolid(w donburi.World, r leveldata.Rect) *donburi.Entry {
	solid := archetypes.Solid.Spawn(w)

	cx, cy := r.Center()
	components.Position.SetValue(solid, components.PositionData{X: cx, Y: cy})
	components.StaticTx.SetValue(solid, components.SingleStaticTx(components.StaticTxSolid, hbox.New(r.W, r.H)))
	mirror(w, solid, cx, cy, r.W, r.H)

	return solid
}

// CreateSpikes creates a trigger region that sends players back to safe
// ground.
func CreateSpikes(w donburi.World, r leveldata.Rect) *donburi.Entry {
	spikes := archetypes.Spikes.Spawn(w)

	cx, cy := r.Center()
	components.Position.SetValue(spikes, components.PositionData{X: cx, Y: cy})
	components.Triggers.Tx.SetValue(spikes, components.SingleTriggerTx(components.TriggerTxSpikes, hbox.New(r.W, r.H)))

	return spikes
}
