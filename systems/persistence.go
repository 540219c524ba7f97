package systems

import (
	"encoding/json"
	"log"

	cfg "github.com/automoto/boxcollide/config"
	"github.com/automoto/boxcollide/game"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/quasilyte/gdata"
	"github.com/yohamta/donburi/ecs"
)

const quickSaveItem = "quicksave"

var gdataManager *gdata.Manager

// InitPersistence opens the save storage. Saving is disabled when it fails.
func InitPersistence() error {
	if cfg.Debug.SkipPersistence {
		return nil
	}
	m, err := gdata.Open(gdata.Config{
		AppName: "boxcollide",
	})
	if err != nil {
		return err
	}
	gdataManager = m
	return nil
}

// SaveSnapshot writes the world's persistent bodies to the quick save slot.
func SaveSnapshot(snap game.Snapshot) error {
	if gdataManager == nil {
		return nil
	}
	data, err := json.Marshal(snap)
	if err != nil {
		return err
	}
	return gdataManager.SaveItem(quickSaveItem, data)
}

// LoadSnapshot reads the quick save slot. It returns nil when nothing was
// saved yet.
func LoadSnapshot() (*game.Snapshot, error) {
	if gdataManager == nil {
		return nil, nil
	}
	data, err := gdataManager.LoadItem(quickSaveItem)
	if err != nil {
		return nil, err
	}
	if len(data) == 0 {
		return nil, nil
	}
	var snap game.Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return nil, err
	}
	return &snap, nil
}

// UpdatePersistence handles quick save (F5) and quick load (F9).
func UpdatePersistence(e *ecs.ECS) {
	if inpututil.IsKeyJustPressed(ebiten.KeyF5) {
		snap := game.TakeSnapshot(e.World)
		if err := SaveSnapshot(snap); err != nil {
			log.Printf("[persistence] Warning: Could not save: %v", err)
			return
		}
		log.Printf("[persistence] saved %d bodies", len(snap.Bodies))
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyF9) {
		snap, err := LoadSnapshot()
		if err != nil {
			log.Printf("[persistence] Warning: Could not load: %v", err)
			return
		}
		if snap == nil {
			log.Printf("[persistence] nothing saved yet")
			return
		}
		n, err := snap.Restore(e.World)
		if err != nil {
			log.Printf("[persistence] Warning: Could not restore: %v", err)
			return
		}
		log.Printf("[persistence] restored %d bodies", n)
	}
}
