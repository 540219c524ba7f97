package components

import "github.com/yohamta/donburi"

// PersistentData marks an entity whose physics state is written to snapshots.
// ID must be stable across runs.
type PersistentData struct {
	ID string
}

var Persistent = donburi.NewComponentType[PersistentData]()
