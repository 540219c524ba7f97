package components

import (
	"github.com/automoto/boxcollide/hbox"
	"github.com/yohamta/donburi"
)

// CollKey addresses one collision record inside the current tick. Keys are
// handed out sequentially and are meaningless once the tick is over.
type CollKey uint32

type StaticRxKind int

const (
	// StaticRxDefault pushes the receiver out of solids and zeroes its velocity
	// along the collision normal.
	StaticRxDefault StaticRxKind = iota
	// StaticRxObserve only records collisions.
	StaticRxObserve
)

func (k StaticRxKind) String() string {
	switch k {
	case StaticRxDefault:
		return "Default"
	case StaticRxObserve:
		return "Observe"
	}
	return "Unknown"
}

type StaticTxKind int

const (
	// StaticTxSolid stops receivers.
	StaticTxSolid StaticTxKind = iota
)

func (k StaticTxKind) String() string {
	if k == StaticTxSolid {
		return "Solid"
	}
	return "Unknown"
}

type StaticRxComp struct {
	Kind StaticRxKind
	HBox hbox.HBox
}

// StaticRxData marks an entity as a solid-collision receiver. CollKeys holds
// the keys of every static record this entity took part in during the
// current tick.
type StaticRxData struct {
	Comps    []StaticRxComp
	CollKeys []CollKey
}

func NewStaticRx(comps ...StaticRxComp) StaticRxData {
	return StaticRxData{Comps: comps}
}

func SingleStaticRx(kind StaticRxKind, box hbox.HBox) StaticRxData {
	return NewStaticRx(StaticRxComp{Kind: kind, HBox: box})
}

var StaticRx = donburi.NewComponentType[StaticRxData]()

type StaticTxComp struct {
	Kind StaticTxKind
	HBox hbox.HBox
}

// StaticTxData marks an entity as a solid transmitter. Transmitters are moved
// but never pushed; a moving transmitter must only move vertically.
type StaticTxData struct {
	Comps    []StaticTxComp
	CollKeys []CollKey
}

func NewStaticTx(comps ...StaticTxComp) StaticTxData {
	return StaticTxData{Comps: comps}
}

func SingleStaticTx(kind StaticTxKind, box hbox.HBox) StaticTxData {
	return NewStaticTx(StaticTxComp{Kind: kind, HBox: box})
}

// THBoxes returns the transmitter's hitboxes translated to pos.
func (s *StaticTxData) THBoxes(pos PositionData) []hbox.HBox {
	out := make([]hbox.HBox, 0, len(s.Comps))
	for _, comp := range s.Comps {
		out = append(out, comp.HBox.Translated(pos.X, pos.Y))
	}
	return out
}

var StaticTx = donburi.NewComponentType[StaticTxData]()
