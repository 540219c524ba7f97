// Package game holds the demo's gameplay rules. Everything here runs on a
// donburi.World without ebitengine, so the desktop game, the terminal viewer
// and the headless server share one implementation.
package game

import (
	"time"

	"github.com/automoto/boxcollide/bullettime"
	"github.com/automoto/boxcollide/components"
	"github.com/automoto/boxcollide/physics"
	"github.com/yohamta/donburi"
)

// Physics is the pipeline instantiated with the demo's kinds.
type Physics = physics.Pipeline[components.TriggerRxKind, components.TriggerTxKind, components.TimeClass]

func NewPhysics(bt *bullettime.BulletTime[components.TimeClass]) *Physics {
	return physics.New(components.Triggers, bt)
}

// Update advances the world by one frame of real time. Control, gravity and
// lifts use the scaled delta so bullet time slows everything uniformly.
func Update(w donburi.World, p *Physics, real time.Duration) {
	p.Time.Tick(real)
	dt := p.Time.DeltaSecs()

	ApplyControl(w, dt)
	ApplyGravity(w, dt)
	UpdateLifts(w, dt)

	p.Tick(w)

	UpdateGrounded(w, p)
	RespawnOnSpikes(w, p)
	SyncSpace(w)
}
