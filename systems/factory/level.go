package factory

import (
	"fmt"
	"log"

	"github.com/automoto/boxcollide/archetypes"
	"github.com/automoto/boxcollide/components"
	"github.com/automoto/boxcollide/shared/leveldata"
	"github.com/yohamta/donburi"
)

// CreateLevel populates w from lvl: the level entity, the resolv mirror,
// solids, spikes and lifts. Players are spawned separately.
func CreateLevel(w donburi.World, lvl *leveldata.Level) *donburi.Entry {
	level := archetypes.Level.Spawn(w)
	components.Level.SetValue(level, components.LevelData{Level: lvl})

	CreateSpace(w, lvl)
	for _, r := range lvl.Solids {
		CreateSolid(w, r)
	}
	for _, r := range lvl.Spikes {
		CreateSpikes(w, r)
	}
	for _, l := range lvl.Lifts {
		CreateLift(w, l)
	}

	log.Printf("[level] %s: %d solids, %d spikes, %d lifts, %d spawns",
		lvl.Name, len(lvl.Solids), len(lvl.Spikes), len(lvl.Lifts), len(lvl.Spawns))
	return level
}

// SpawnPlayers creates one player per spawn point, in spawn index order.
func SpawnPlayers(w donburi.World, lvl *leveldata.Level, count int) []*donburi.Entry {
	if len(lvl.Spawns) == 0 {
		log.Printf("[level] %s has no spawn points, using the origin", lvl.Name)
	}
	players := make([]*donburi.Entry, 0, count)
	for i := 0; i < count; i++ {
		sp := leveldata.SpawnPoint{}
		if len(lvl.Spawns) > 0 {
			sp = lvl.Spawns[i%len(lvl.Spawns)]
		}
		players = append(players, CreatePlayer(w, fmt.Sprintf("player-%d", i), sp.X, sp.Y))
	}
	return players
}
