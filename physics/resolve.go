package physics

import (
	"math"
	"sort"

	"github.com/automoto/boxcollide/collisions"
	"github.com/automoto/boxcollide/components"
	"github.com/automoto/boxcollide/hbox"
	"github.com/automoto/boxcollide/shared/gamemath"
	"github.com/yohamta/donburi"
	dmath "github.com/yohamta/donburi/features/math"
)

// body is the scratch state of the receiver being resolved. It is written
// back to the entity only after all inching is done.
type body[RxK components.TriggerKind] struct {
	entity donburi.Entity
	pos    components.PositionData
	vel    dmath.Vec2
	srx    *components.StaticRxData
	trx    *components.TriggerRxData[RxK]
}

type candidate struct {
	entry *donburi.Entry
	comp  components.StaticTxComp
	box   hbox.HBox
	area  float64
}

// MoveInteresting resolves every receiver, one at a time. Each receiver sees
// transmitters where they are right now, including anything moved earlier in
// this pass.
func (p *Pipeline[RxK, TxK, C]) MoveInteresting(w donburi.World) {
	var movers, stxs, ttxs []*donburi.Entry
	p.interesting.Each(w, func(e *donburi.Entry) { movers = append(movers, e) })
	p.staticTxs.Each(w, func(e *donburi.Entry) {
		if e.HasComponent(components.Position) {
			stxs = append(stxs, e)
		}
	})
	p.triggerTxs.Each(w, func(e *donburi.Entry) {
		if e.HasComponent(components.Position) {
			ttxs = append(ttxs, e)
		}
	})

	dt := p.dt()
	for _, e := range movers {
		b := body[RxK]{
			entity: e.Entity(),
			pos:    *components.Position.Get(e),
			vel:    velocityOf(e),
		}
		if e.HasComponent(components.StaticRx) {
			b.srx = components.StaticRx.Get(e)
		}
		if e.HasComponent(p.Triggers.Rx) {
			b.trx = p.Triggers.Rx.Get(e)
		}

		// Resolve once at rest so overlapping stationary bodies separate.
		p.resolve(&b, stxs, ttxs)
		p.inch(&b, stxs, ttxs, dt, axisX)
		p.inch(&b, stxs, ttxs, dt, axisY)

		*components.Position.Get(e) = b.pos
		if e.HasComponent(components.Velocity) {
			*components.Velocity.Get(e) = components.VelocityFrom(b.vel)
		}
	}
}

type axis int

const (
	axisX axis = iota
	axisY
)

func (b *body[RxK]) velOn(a axis) float64 {
	if a == axisX {
		return b.vel.X
	}
	return b.vel.Y
}

func (b *body[RxK]) nudge(a axis, d float64) {
	if a == axisX {
		b.pos.X += d
	} else {
		b.pos.Y += d
	}
}

// inch moves the body along one axis in steps of at most DeltaPerInch,
// resolving after each step. The distance budget is fixed from the velocity
// at the start of the phase, but a collision that slows the body shortens it.
func (p *Pipeline[RxK, TxK, C]) inch(b *body[RxK], stxs, ttxs []*donburi.Entry, dt float64, a axis) {
	maxInch := math.Abs(b.velOn(a)) * dt
	if math.IsNaN(maxInch) || math.IsInf(maxInch, 0) {
		return
	}
	moved := 0.0
	for {
		limit := math.Min(maxInch, math.Abs(b.velOn(a)))
		step := math.Min(p.DeltaPerInch, limit-moved)
		// Negated so NaN also ends the phase.
		if !(moved < limit) || !(step > 0) {
			return
		}
		moved += step
		b.nudge(a, gamemath.Signum(b.velOn(a))*step)
		p.resolve(b, stxs, ttxs)
	}
}

func (p *Pipeline[RxK, TxK, C]) resolve(b *body[RxK], stxs, ttxs []*donburi.Entry) {
	if b.srx != nil {
		p.resolveStatics(b, stxs)
	}
	if b.trx != nil {
		p.resolveTriggers(b, ttxs)
	}
}

func (p *Pipeline[RxK, TxK, C]) resolveStatics(b *body[RxK], stxs []*donburi.Entry) {
	for _, rxComp := range b.srx.Comps {
		myBox := rxComp.HBox.Translated(b.pos.X, b.pos.Y)

		var cands []candidate
		for _, tx := range stxs {
			if tx.Entity() == b.entity {
				continue
			}
			txPos := components.Position.Get(tx)
			for _, txComp := range components.StaticTx.Get(tx).Comps {
				box := txComp.HBox.Translated(txPos.X, txPos.Y)
				if !myBox.Overlaps(box) {
					continue
				}
				cands = append(cands, candidate{
					entry: tx,
					comp:  txComp,
					box:   box,
					area:  myBox.AreaOverlapping(box),
				})
			}
		}
		// Deepest penetration first.
		sort.SliceStable(cands, func(i, j int) bool {
			return cands[i].area > cands[j].area
		})

		for _, c := range cands {
			push, ok := myBox.PushOut(c.box)
			if !ok {
				// An earlier push already separated this pair.
				continue
			}
			txVel := velocityOf(c.entry)
			perp, par := gamemath.Decompose(b.vel, push)
			if push.Y != 0 {
				perp.Y -= txVel.Y
			}
			rec := collisions.StaticRec{
				Push:   push,
				RxPos:  b.pos,
				RxPerp: perp,
				RxPar:  par,
				RxCtrl: b.entity,
				RxKind: rxComp.Kind,
				RxHBox: rxComp.HBox.Marker(),
				TxPos:  *components.Position.Get(c.entry),
				TxCtrl: c.entry.Entity(),
				TxKind: c.comp.Kind,
				TxHBox: c.comp.HBox.Marker(),
			}

			switch rxComp.Kind {
			case components.StaticRxDefault:
				p.Statics.Insert(rec)
				b.pos = b.pos.Translated(push)
				myBox = myBox.Translated(push.X, push.Y)
				b.vel = par.Add(dmath.Vec2{Y: txVel.Y})
				if perp.Dot(&push) > 0 {
					b.vel = b.vel.Add(perp)
				}
			case components.StaticRxObserve:
				p.Statics.Insert(rec)
			}
		}
	}
}

func (p *Pipeline[RxK, TxK, C]) resolveTriggers(b *body[RxK], ttxs []*donburi.Entry) {
	for _, rxComp := range b.trx.Comps {
		myBox := rxComp.HBox.Translated(b.pos.X, b.pos.Y)
		for _, tx := range ttxs {
			if tx.Entity() == b.entity {
				continue
			}
			txPos := *components.Position.Get(tx)
			for _, txComp := range p.Triggers.Tx.Get(tx).Comps {
				if !myBox.Overlaps(txComp.HBox.Translated(txPos.X, txPos.Y)) {
					continue
				}
				p.TriggerColls.Insert(collisions.TriggerRec[RxK, TxK]{
					RxPos:  b.pos,
					RxCtrl: b.entity,
					RxKind: rxComp.Kind,
					RxHBox: rxComp.HBox.Marker(),
					TxPos:  txPos,
					TxCtrl: tx.Entity(),
					TxKind: txComp.Kind,
					TxHBox: txComp.HBox.Marker(),
				})
			}
		}
	}
}

// velocityOf returns the entity's velocity, or zero when it has none.
func velocityOf(e *donburi.Entry) dmath.Vec2 {
	if !e.HasComponent(components.Velocity) {
		return dmath.Vec2{}
	}
	return components.Velocity.Get(e).Vec()
}
