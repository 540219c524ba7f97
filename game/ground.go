package game

import (
	"github.com/automoto/boxcollide/collisions"
	"github.com/automoto/boxcollide/components"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/filter"
)

var grounded = donburi.NewQuery(filter.Contains(
	components.Player,
	components.Position,
	components.StaticRx,
))

// UpdateGrounded reads this tick's static records. A player stands on
// something when the feet sensor touches a solid. Grounded positions away
// from hazards become the player's respawn point.
func UpdateGrounded(w donburi.World, p *Physics) {
	grounded.Each(w, func(e *donburi.Entry) {
		player := components.Player.Get(e)
		recs := p.Statics.GetMany(components.StaticRx.Get(e).CollKeys)
		feet := collisions.ByRxHBox(recs)[components.MarkerFeet]

		player.OnGround = false
		for _, rec := range feet {
			if rec.TxKind == components.StaticTxSolid {
				player.OnGround = true
				break
			}
		}

		if player.OnGround && !touchingSpikes(e, p) {
			pos := components.Position.Get(e)
			player.LastSafeX, player.LastSafeY = pos.X, pos.Y
		}
	})
}

func touchingSpikes(e *donburi.Entry, p *Physics) bool {
	if !e.HasComponent(p.Triggers.Rx) {
		return false
	}
	for _, rec := range p.TriggerColls.GetMany(p.Triggers.Rx.Get(e).CollKeys) {
		if rec.TxKind == components.TriggerTxSpikes {
			return true
		}
	}
	return false
}
