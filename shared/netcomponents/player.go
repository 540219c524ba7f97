package netcomponents

import "github.com/yohamta/donburi"

// NetPlayerData names the player a synced entity belongs to. It matches the
// ID sent back in messages.JoinAccepted.
type NetPlayerData struct {
	ID   string
	Name string
}

var NetPlayer = donburi.NewComponentType[NetPlayerData]()
