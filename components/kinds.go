package components

// TriggerRxKind enumerates the trigger receivers used by the demo game.
type TriggerRxKind int

const (
	TriggerRxPlayer TriggerRxKind = iota
)

func (k TriggerRxKind) String() string {
	if k == TriggerRxPlayer {
		return "Player"
	}
	return "Unknown"
}

// TriggerTxKind enumerates the trigger transmitters used by the demo game.
type TriggerTxKind int

const (
	TriggerTxSpikes TriggerTxKind = iota
)

func (k TriggerTxKind) String() string {
	if k == TriggerTxSpikes {
		return "Spikes"
	}
	return "Unknown"
}

// Triggers are the component types for the demo game's trigger kinds.
var Triggers = NewTriggerTypes[TriggerRxKind, TriggerTxKind]()

// TimeClass is the demo game's bullet-time class.
type TimeClass int

const (
	TimeNormal TimeClass = iota
	TimeSlow
)

func (c TimeClass) Factor() float64 {
	if c == TimeSlow {
		return 0.1
	}
	return 1
}
