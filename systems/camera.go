package systems

import (
	"math"

	"github.com/automoto/boxcollide/components"
	"github.com/automoto/boxcollide/tags"
	"github.com/yohamta/donburi/ecs"
)

const (
	lookAheadDistance  = 80.0
	lookAheadSmoothing = 0.05
	followSmoothing    = 0.15
)

// UpdateCamera eases the camera towards the local player, looking ahead in
// the direction the player faces.
func UpdateCamera(e *ecs.ECS) {
	cameraEntry, ok := components.Camera.First(e.World)
	if !ok {
		return
	}
	camera := components.Camera.Get(cameraEntry)

	playerEntry, ok := tags.Player.First(e.World)
	if !ok {
		return
	}
	pos := components.Position.Get(playerEntry)
	player := components.Player.Get(playerEntry)
	vel := components.Velocity.Get(playerEntry)

	// Freeze the look-ahead while idle so the view does not drift.
	if math.Abs(vel.X) > 1 {
		target := float64(player.Facing) * lookAheadDistance
		camera.LookAheadX += (target - camera.LookAheadX) * lookAheadSmoothing
	}

	camera.Position.X += (pos.X + camera.LookAheadX - camera.Position.X) * followSmoothing
	camera.Position.Y += (pos.Y - camera.Position.Y) * followSmoothing
}
