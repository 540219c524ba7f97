package game

import (
	"log"

	"github.com/automoto/boxcollide/components"
	cfg "github.com/automoto/boxcollide/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/filter"
)

var (
	hazardous = donburi.NewQuery(filter.Contains(
		components.Player,
		components.Position,
		components.Velocity,
		components.Triggers.Rx,
	))
	spikes = donburi.NewQuery(filter.Contains(components.Position, components.Triggers.Tx))
)

// RespawnOnSpikes sends every player touching spikes back to safe ground near
// where it last stood, or to the level spawn when there is none. It returns
// the number of players moved.
func RespawnOnSpikes(w donburi.World, p *Physics) int {
	var hit []*donburi.Entry
	hazardous.Each(w, func(e *donburi.Entry) {
		if touchingSpikes(e, p) {
			hit = append(hit, e)
		}
	})

	for _, e := range hit {
		player := components.Player.Get(e)
		x, y, ok := FindNearestSafeGround(w, player.LastSafeX, player.LastSafeY, cfg.Player.Width, cfg.Player.Height)
		if !ok {
			x, y = levelSpawn(w)
		}
		*components.Position.Get(e) = components.PositionData{X: x, Y: y}
		*components.Velocity.Get(e) = components.VelocityData{}
		player.OnGround = false
		player.Deaths++
		log.Printf("[game] player %v hit spikes, respawned at (%.0f, %.0f)", e.Entity(), x, y)
	}
	return len(hit)
}

func levelSpawn(w donburi.World) (x, y float64) {
	if e, ok := components.Level.First(w); ok {
		if lvl := components.Level.Get(e).Level; lvl != nil {
			sp := lvl.PrimarySpawn()
			return sp.X, sp.Y
		}
	}
	return 0, 0
}
