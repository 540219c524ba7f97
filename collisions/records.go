// Package collisions holds the per-tick collision record stores filled by the
// physics pipeline and read by gameplay code.
package collisions

import (
	"github.com/automoto/boxcollide/components"
	"github.com/automoto/boxcollide/hbox"
	"github.com/yohamta/donburi"
	dmath "github.com/yohamta/donburi/features/math"
)

// Key addresses one record within the current tick. Keys restart at zero
// every tick, so a key kept past its tick may name an unrelated record.
type Key = components.CollKey

// StaticRec is a collision between a static receiver and a solid transmitter.
type StaticRec struct {
	// Push is the push that was (Default) or would have been (Observe)
	// applied to the receiver.
	Push dmath.Vec2
	// RxPos is the receiver's position at the time of the collision.
	RxPos components.PositionData
	// RxPerp is the receiver's velocity along the push normal, before the
	// collision, relative to the transmitter's vertical motion.
	RxPerp dmath.Vec2
	// RxPar is the rest of the receiver's velocity before the collision.
	RxPar  dmath.Vec2
	RxCtrl donburi.Entity
	RxKind components.StaticRxKind
	RxHBox hbox.Marker
	TxPos  components.PositionData
	TxCtrl donburi.Entity
	TxKind components.StaticTxKind
	TxHBox hbox.Marker
}

func (r StaticRec) RxMarker() hbox.Marker { return r.RxHBox }
func (r StaticRec) TxMarker() hbox.Marker { return r.TxHBox }

// TriggerRec is an overlap between a trigger receiver and a trigger
// transmitter. Triggers never move anything, so there is no push data.
type TriggerRec[RxK, TxK components.TriggerKind] struct {
	RxPos  components.PositionData
	RxCtrl donburi.Entity
	RxKind RxK
	RxHBox hbox.Marker
	TxPos  components.PositionData
	TxCtrl donburi.Entity
	TxKind TxK
	TxHBox hbox.Marker
}

func (r TriggerRec[RxK, TxK]) RxMarker() hbox.Marker { return r.RxHBox }
func (r TriggerRec[RxK, TxK]) TxMarker() hbox.Marker { return r.TxHBox }

// Marked is implemented by both record types.
type Marked interface {
	RxMarker() hbox.Marker
	TxMarker() hbox.Marker
}

// ByRxHBox groups records by the receiver hitbox that produced them,
// preserving input order within each group.
func ByRxHBox[R Marked](recs []R) map[hbox.Marker][]R {
	out := make(map[hbox.Marker][]R)
	for _, rec := range recs {
		m := rec.RxMarker()
		out[m] = append(out[m], rec)
	}
	return out
}

// ByTxHBox groups records by the transmitter hitbox that produced them.
func ByTxHBox[R Marked](recs []R) map[hbox.Marker][]R {
	out := make(map[hbox.Marker][]R)
	for _, rec := range recs {
		m := rec.TxMarker()
		out[m] = append(out[m], rec)
	}
	return out
}
