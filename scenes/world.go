package scenes

import (
	"log"
	"sync"

	"github.com/automoto/boxcollide/assets"
	"github.com/automoto/boxcollide/components"
	cfg "github.com/automoto/boxcollide/config"
	"github.com/automoto/boxcollide/systems"
	"github.com/automoto/boxcollide/systems/factory"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

const layerDefault ecs.LayerID = iota

type SceneChanger interface {
	ChangeScene(scene interface{})
}

// WorldScene runs one level with a single local player.
type WorldScene struct {
	ecs          *ecs.ECS
	sim          *systems.Sim
	sceneChanger SceneChanger
	level        string
	watcher      *cfg.Watcher
	configPath   string
	once         sync.Once
}

// NewWorldScene creates a scene for the named embedded level. When watcher is
// set, configPath is reloaded whenever the file changes.
func NewWorldScene(sc SceneChanger, level string, watcher *cfg.Watcher, configPath string) *WorldScene {
	return &WorldScene{
		sceneChanger: sc,
		level:        level,
		watcher:      watcher,
		configPath:   configPath,
	}
}

func (ws *WorldScene) Update() {
	ws.once.Do(ws.configure)

	if ws.watcher != nil && ws.watcher.Poll() {
		if err := cfg.LoadOverrides(ws.configPath); err != nil {
			log.Printf("[config] reload %s: %v", ws.configPath, err)
		} else {
			log.Printf("[config] reloaded %s", ws.configPath)
		}
	}

	// Restart the level from scratch.
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		ws.sceneChanger.ChangeScene(NewWorldScene(ws.sceneChanger, ws.level, ws.watcher, ws.configPath))
		return
	}

	ws.ecs.Update()
}

func (ws *WorldScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(cfg.Backdrop)

	if ws.ecs == nil {
		return
	}
	ws.ecs.Draw(screen)
}

func (ws *WorldScene) configure() {
	lvl, err := assets.LoadLevel(ws.level)
	if err != nil {
		panic("failed to load level: " + err.Error())
	}

	ws.sim = systems.NewSim()
	e := ecs.NewECS(donburi.NewWorld())

	e.AddSystem(ws.sim.UpdateInput)
	e.AddSystem(systems.UpdatePersistence)
	e.AddSystem(ws.sim.UpdatePhysics)
	e.AddSystem(systems.UpdateCamera)

	e.AddRenderer(layerDefault, systems.DrawLevel)
	e.AddRenderer(layerDefault, systems.DrawPlayers)
	e.AddRenderer(layerDefault, ws.sim.DrawHitboxes)
	e.AddRenderer(layerDefault, ws.sim.DrawHUD)

	ws.ecs = e

	factory.CreateLevel(e.World, lvl)
	players := factory.SpawnPlayers(e.World, lvl, 1)

	camera := e.World.Entry(e.World.Create(components.Camera))
	if len(players) > 0 {
		pos := components.Position.Get(players[0])
		components.Camera.SetValue(camera, components.CameraData{Position: pos.Vec()})
	}
}
