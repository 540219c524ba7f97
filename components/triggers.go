package components

import (
	"github.com/automoto/boxcollide/hbox"
	"github.com/yohamta/donburi"
)

// TriggerKind is satisfied by any host-defined kind enumeration. Kinds are
// copied by value and used as map keys.
type TriggerKind interface {
	comparable
}

type TriggerRxComp[K TriggerKind] struct {
	Kind K
	HBox hbox.HBox
}

// TriggerRxData receives non-physical overlap detections.
type TriggerRxData[K TriggerKind] struct {
	Comps    []TriggerRxComp[K]
	CollKeys []CollKey
}

func NewTriggerRx[K TriggerKind](comps ...TriggerRxComp[K]) TriggerRxData[K] {
	return TriggerRxData[K]{Comps: comps}
}

func SingleTriggerRx[K TriggerKind](kind K, box hbox.HBox) TriggerRxData[K] {
	return NewTriggerRx(TriggerRxComp[K]{Kind: kind, HBox: box})
}

type TriggerTxComp[K TriggerKind] struct {
	Kind K
	HBox hbox.HBox
}

// TriggerTxData is detected by trigger receivers but never reacts itself.
type TriggerTxData[K TriggerKind] struct {
	Comps    []TriggerTxComp[K]
	CollKeys []CollKey
}

func NewTriggerTx[K TriggerKind](comps ...TriggerTxComp[K]) TriggerTxData[K] {
	return TriggerTxData[K]{Comps: comps}
}

func SingleTriggerTx[K TriggerKind](kind K, box hbox.HBox) TriggerTxData[K] {
	return NewTriggerTx(TriggerTxComp[K]{Kind: kind, HBox: box})
}

// TriggerTypes holds the donburi component types for one pair of trigger kind
// enumerations. Create it once per game and share it between the factories
// that attach triggers and the physics pipeline that reads them.
type TriggerTypes[RxK, TxK TriggerKind] struct {
	Rx *donburi.ComponentType[TriggerRxData[RxK]]
	Tx *donburi.ComponentType[TriggerTxData[TxK]]
}

func NewTriggerTypes[RxK, TxK TriggerKind]() TriggerTypes[RxK, TxK] {
	return TriggerTypes[RxK, TxK]{
		Rx: donburi.NewComponentType[TriggerRxData[RxK]](),
		Tx: donburi.NewComponentType[TriggerTxData[TxK]](),
	}
}
