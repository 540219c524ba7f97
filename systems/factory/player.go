package factory

import (
	"fmt"

	"github.com/automoto/boxcollide/archetypes"
	"github.com/automoto/boxcollide/components"
	cfg "github.com/automoto/boxcollide/config"
	"github.com/automoto/boxcollide/hbox"
	"github.com/yohamta/donburi"
)

// CreatePlayer creates a player body at (x, y). The same box is used for solid
// collisions and for triggers. id keys the player in snapshots. extra lets
// the server attach network components at creation.
func CreatePlayer(w donburi.World, id string, x, y float64, extra ...donburi.IComponentType) *donburi.Entry {
	player := archetypes.Player.Spawn(w, extra...)

	pos := components.PositionData{X: x, Y: y}
	components.Position.SetValue(player, pos)
	components.IPosition.SetValue(player, components.NewIPosition(pos))

	body := hbox.New(cfg.Player.Width, cfg.Player.Height).WithMarker(components.MarkerBody)
	components.StaticRx.SetValue(player, components.NewStaticRx(
		components.StaticRxComp{Kind: components.StaticRxDefault, HBox: body},
		// Thin sensor under the body; records ground contact without pushing.
		components.StaticRxComp{
			Kind: components.StaticRxObserve,
			HBox: hbox.New(cfg.Player.Width-2, 2).
				WithOffset(0, -cfg.Player.Height/2-1).
				WithMarker(components.MarkerFeet),
		},
	))
	components.Triggers.Rx.SetValue(player, components.SingleTriggerRx(components.TriggerRxPlayer, body))

	components.Player.SetValue(player, components.PlayerData{
		Facing:    1,
		LastSafeX: x,
		LastSafeY: y,
	})
	if id == "" {
		id = fmt.Sprintf("player-%d", player.Entity().Id())
	}
	components.Persistent.SetValue(player, components.PersistentData{ID: id})

	return player
}
