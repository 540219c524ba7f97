package components

import "github.com/yohamta/donburi"

// PlayerInputData is the control state for one player for the current tick.
// The local game fills it from the keyboard; the server fills it from network
// messages.
type PlayerInputData struct {
	Direction   float64 // -1..1 horizontal intent
	Jump        bool    // held
	JumpPressed bool    // pressed this tick
	Sequence    uint32  // last applied client sequence
}

var PlayerInput = donburi.NewComponentType[PlayerInputData]()
