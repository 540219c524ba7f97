package systems

import (
	"time"

	"github.com/automoto/boxcollide/bullettime"
	"github.com/automoto/boxcollide/components"
	"github.com/automoto/boxcollide/game"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi/ecs"
)

// Sim owns the physics pipeline of one scene. Its methods are ecs systems and
// renderers, so the scene registers them directly.
type Sim struct {
	Physics *game.Physics
}

func NewSim() *Sim {
	return &Sim{Physics: game.NewPhysics(bullettime.New[components.TimeClass]())}
}

// frameTime is the real time covered by one ebitengine update.
func frameTime() time.Duration {
	tps := ebiten.TPS()
	if tps <= 0 {
		tps = ebiten.DefaultTPS
	}
	return time.Second / time.Duration(tps)
}

// UpdatePhysics advances gameplay and the collision pipeline by one frame.
func (s *Sim) UpdatePhysics(e *ecs.ECS) {
	game.Update(e.World, s.Physics, frameTime())
}
