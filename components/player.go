package components

import (
	"github.com/automoto/boxcollide/hbox"
	"github.com/yohamta/donburi"
)

type PlayerData struct {
	Facing    int // -1 left, 1 right
	OnGround  bool
	Deaths    int
	LastSafeX float64 // Last position where player was safely grounded
	LastSafeY float64
}

var Player = donburi.NewComponentType[PlayerData]()

// Player hitbox markers
const (
	MarkerBody hbox.Marker = iota
	MarkerFeet
)
