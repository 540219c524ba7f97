package tags

import "github.com/yohamta/donburi"

var (
	Player = donburi.NewTag().SetName("Player")
	Solid  = donburi.NewTag().SetName("Solid")
	Lift   = donburi.NewTag().SetName("Lift")
	Spikes = donburi.NewTag().SetName("Spikes")
)

// Resolv tags for the spatial mirror
const (
	ResolvSolid = "solid"
	ResolvProbe = "probe"
)
