// Package physics moves bodies and resolves axis-aligned box collisions once
// per tick.
//
// A tick runs in a fixed order:
//
//  1. Reset clears both record stores and every participant's key list.
//  2. MoveUninteresting and MoveStaticTxs integrate bodies that never get
//     pushed.
//  3. MoveInteresting inches every receiver along x, then y, resolving
//     collisions after each step.
//  4. PopulateKeys hands each record's key to its receiver and transmitter.
//
// Tick runs all of them; hosts with their own scheduler can call the phases
// directly as long as they keep that order.
package physics

import (
	"time"

	"github.com/automoto/boxcollide/bullettime"
	"github.com/automoto/boxcollide/collisions"
	"github.com/automoto/boxcollide/components"
	"github.com/automoto/boxcollide/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/filter"
)

type Pipeline[RxK, TxK components.TriggerKind, C bullettime.Class] struct {
	Time         *bullettime.BulletTime[C]
	Triggers     components.TriggerTypes[RxK, TxK]
	Statics      *collisions.StaticColls
	TriggerColls *collisions.TriggerColls[RxK, TxK]
	Commands     *Commands

	// DeltaPerInch is the largest single step taken while inching.
	DeltaPerInch float64

	uninteresting *donburi.Query
	staticTxMover *donburi.Query
	interesting   *donburi.Query
	staticRxs     *donburi.Query
	staticTxs     *donburi.Query
	triggerRxs    *donburi.Query
	triggerTxs    *donburi.Query
	ipos          *donburi.Query

	velNoPos        *donburi.Query
	bothStaticRoles *donburi.Query
	movingStaticTx  *donburi.Query
}

func New[RxK, TxK components.TriggerKind, C bullettime.Class](
	triggers components.TriggerTypes[RxK, TxK],
	bt *bullettime.BulletTime[C],
) *Pipeline[RxK, TxK, C] {
	if bt == nil {
		bt = bullettime.New[C]()
	}
	inch := config.Physics.DeltaPerInch
	if inch <= 0 {
		inch = 1
	}
	return &Pipeline[RxK, TxK, C]{
		Time:         bt,
		Triggers:     triggers,
		Statics:      collisions.NewStaticColls(),
		TriggerColls: collisions.NewTriggerColls[RxK, TxK](),
		Commands:     &Commands{},
		DeltaPerInch: inch,

		uninteresting: donburi.NewQuery(filter.And(
			filter.Contains(components.Position, components.Velocity),
			filter.Not(filter.Or(
				filter.Contains(components.StaticRx),
				filter.Contains(components.StaticTx),
				filter.Contains(triggers.Rx),
			)),
		)),
		staticTxMover: donburi.NewQuery(filter.And(
			filter.Contains(components.Position, components.Velocity, components.StaticTx),
			filter.Not(filter.Contains(components.StaticRx)),
		)),
		interesting: donburi.NewQuery(filter.And(
			filter.Contains(components.Position),
			filter.Not(filter.Contains(components.StaticTx)),
			filter.Or(
				filter.Contains(components.StaticRx),
				filter.Contains(triggers.Rx),
			),
		)),
		staticRxs:  donburi.NewQuery(filter.Contains(components.StaticRx)),
		staticTxs:  donburi.NewQuery(filter.Contains(components.StaticTx)),
		triggerRxs: donburi.NewQuery(filter.Contains(triggers.Rx)),
		triggerTxs: donburi.NewQuery(filter.Contains(triggers.Tx)),
		ipos:       donburi.NewQuery(filter.Contains(components.Position, components.IPosition)),

		velNoPos: donburi.NewQuery(filter.And(
			filter.Contains(components.Velocity),
			filter.Not(filter.Contains(components.Position)),
		)),
		bothStaticRoles: donburi.NewQuery(filter.Contains(components.StaticRx, components.StaticTx)),
		movingStaticTx:  donburi.NewQuery(filter.Contains(components.StaticTx, components.Velocity)),
	}
}

// Tick runs one full physics tick using the current Time delta. Deferred
// commands queued since the previous tick are applied first.
func (p *Pipeline[RxK, TxK, C]) Tick(w donburi.World) {
	p.Commands.Flush(w)
	p.Reset(w)
	p.CheckInvariants(w)
	p.MoveUninteresting(w)
	p.MoveStaticTxs(w)
	p.MoveInteresting(w)
	p.PopulateKeys(w)
	p.UpdateIPos(w)
}

// Step advances the time source by real and runs a tick.
func (p *Pipeline[RxK, TxK, C]) Step(w donburi.World, real time.Duration) {
	p.Time.Tick(real)
	p.Tick(w)
}

func (p *Pipeline[RxK, TxK, C]) dt() float64 {
	return p.Time.DeltaSecs()
}
