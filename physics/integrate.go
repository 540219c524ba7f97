package physics

import (
	"github.com/automoto/boxcollide/components"
	"github.com/yohamta/donburi"
)

// Reset empties both stores and every participant's key list.
func (p *Pipeline[RxK, TxK, C]) Reset(w donburi.World) {
	p.Statics.Clear()
	p.TriggerColls.Clear()
	p.staticRxs.Each(w, func(e *donburi.Entry) {
		rx := components.StaticRx.Get(e)
		rx.CollKeys = rx.CollKeys[:0]
	})
	p.staticTxs.Each(w, func(e *donburi.Entry) {
		tx := components.StaticTx.Get(e)
		tx.CollKeys = tx.CollKeys[:0]
	})
	p.triggerRxs.Each(w, func(e *donburi.Entry) {
		rx := p.Triggers.Rx.Get(e)
		rx.CollKeys = rx.CollKeys[:0]
	})
	p.triggerTxs.Each(w, func(e *donburi.Entry) {
		tx := p.Triggers.Tx.Get(e)
		tx.CollKeys = tx.CollKeys[:0]
	})
}

// MoveUninteresting integrates bodies that take part in no static role and
// receive no triggers. Trigger transmitters without other roles move here.
func (p *Pipeline[RxK, TxK, C]) MoveUninteresting(w donburi.World) {
	dt := p.dt()
	p.uninteresting.Each(w, func(e *donburi.Entry) {
		pos := components.Position.Get(e)
		vel := components.Velocity.Get(e)
		pos.X += vel.X * dt
		pos.Y += vel.Y * dt
	})
}

// MoveStaticTxs integrates solid transmitters. Only the vertical component is
// applied; a horizontal component is an invariant violation.
func (p *Pipeline[RxK, TxK, C]) MoveStaticTxs(w donburi.World) {
	dt := p.dt()
	p.staticTxMover.Each(w, func(e *donburi.Entry) {
		pos := components.Position.Get(e)
		pos.Y += components.Velocity.Get(e).Y * dt
	})
}
