package physics

import (
	"github.com/automoto/boxcollide/collisions"
	"github.com/automoto/boxcollide/components"
	"github.com/yohamta/donburi"
)

// PopulateKeys appends every record's key to its receiver and transmitter.
// Participants removed since the record was made are skipped.
func (p *Pipeline[RxK, TxK, C]) PopulateKeys(w donburi.World) {
	p.Statics.Each(func(key collisions.Key, rec collisions.StaticRec) {
		if e, ok := entryWith(w, rec.RxCtrl, components.StaticRx); ok {
			rx := components.StaticRx.Get(e)
			rx.CollKeys = append(rx.CollKeys, key)
		}
		if e, ok := entryWith(w, rec.TxCtrl, components.StaticTx); ok {
			tx := components.StaticTx.Get(e)
			tx.CollKeys = append(tx.CollKeys, key)
		}
	})
	p.TriggerColls.Each(func(key collisions.Key, rec collisions.TriggerRec[RxK, TxK]) {
		if e, ok := entryWith(w, rec.RxCtrl, p.Triggers.Rx); ok {
			rx := p.Triggers.Rx.Get(e)
			rx.CollKeys = append(rx.CollKeys, key)
		}
		if e, ok := entryWith(w, rec.TxCtrl, p.Triggers.Tx); ok {
			tx := p.Triggers.Tx.Get(e)
			tx.CollKeys = append(tx.CollKeys, key)
		}
	})
}

// UpdateIPos refreshes whole-pixel positions after the tick.
func (p *Pipeline[RxK, TxK, C]) UpdateIPos(w donburi.World) {
	p.ipos.Each(w, func(e *donburi.Entry) {
		ip := components.IPosition.Get(e)
		ip.Last = ip.Cur
		ip.Cur = components.Position.Get(e).Rounded()
	})
}

func entryWith(w donburi.World, ent donburi.Entity, ct donburi.IComponentType) (*donburi.Entry, bool) {
	if !w.Valid(ent) {
		return nil, false
	}
	e := w.Entry(ent)
	if !e.HasComponent(ct) {
		return nil, false
	}
	return e, true
}
