package core

import (
	"github.com/automoto/boxcollide/components"
	"github.com/automoto/boxcollide/game"
	"github.com/automoto/boxcollide/shared/netcomponents"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/filter"
)

var netBodies = donburi.NewQuery(filter.Contains(
	components.Position,
	netcomponents.NetPosition,
	netcomponents.NetVelocity,
	netcomponents.NetContacts,
))

// syncNet copies the authoritative physics state into the synced components.
func (s *Server) syncNet() {
	netBodies.Each(s.world, func(e *donburi.Entry) {
		copyToNet(e, s.physics)
	})
}

func copyToNet(e *donburi.Entry, p *game.Physics) {
	pos := components.Position.Get(e)
	netcomponents.NetPosition.SetValue(e, netcomponents.NetPositionData{X: pos.X, Y: pos.Y})

	var vel components.VelocityData
	if e.HasComponent(components.Velocity) {
		vel = *components.Velocity.Get(e)
	}
	netcomponents.NetVelocity.SetValue(e, netcomponents.NetVelocityData{X: vel.X, Y: vel.Y})

	var contacts netcomponents.NetContactsData
	if e.HasComponent(components.StaticRx) {
		contacts.Statics = len(components.StaticRx.Get(e).CollKeys)
	}
	if e.HasComponent(p.Triggers.Rx) {
		contacts.Triggers = len(p.Triggers.Rx.Get(e).CollKeys)
	}
	if e.HasComponent(components.Player) {
		player := components.Player.Get(e)
		contacts.OnGround = player.OnGround
		contacts.Deaths = player.Deaths
	}
	if e.HasComponent(components.PlayerInput) {
		contacts.InputSeq = components.PlayerInput.Get(e).Sequence
	}
	netcomponents.NetContacts.SetValue(e, contacts)
}
