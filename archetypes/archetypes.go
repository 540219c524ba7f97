package archetypes

import (
	"github.com/automoto/boxcollide/components"
	"github.com/automoto/boxcollide/tags"
	"github.com/yohamta/donburi"
)

var (
	Solid = newArchetype(
		tags.Solid,
		components.Position,
		components.StaticTx,
		components.Object,
	)
	Lift = newArchetype(
		tags.Lift,
		components.Position,
		components.Velocity,
		components.StaticTx,
		components.Lift,
		components.Object,
	)
	Spikes = newArchetype(
		tags.Spikes,
		components.Position,
		components.Triggers.Tx,
	)
	Player = newArchetype(
		tags.Player,
		components.Player,
		components.PlayerInput,
		components.Position,
		components.IPosition,
		components.Velocity,
		components.StaticRx,
		components.Triggers.Rx,
		components.Persistent,
	)
	Space = newArchetype(
		components.Space,
	)
	Level = newArchetype(
		components.Level,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

// Spawn creates an entity with the archetype's components plus any extras.
func (a *archetype) Spawn(w donburi.World, cs ...donburi.IComponentType) *donburi.Entry {
	all := make([]donburi.IComponentType, 0, len(a.components)+len(cs))
	all = append(all, a.components...)
	all = append(all, cs...)
	return w.Entry(w.Create(all...))
}
