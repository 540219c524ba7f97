package netcomponents

import "github.com/yohamta/donburi"

// NetContactsData summarizes what a body touched during the last server tick.
type NetContactsData struct {
	Statics  int // static collision records involving the body
	Triggers int // trigger records involving the body
	OnGround bool
	Deaths   int
	InputSeq uint32 // last input applied, for client reconciliation
}

var NetContacts = donburi.NewComponentType[NetContactsData]()
