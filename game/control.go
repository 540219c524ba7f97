package game

import (
	"github.com/automoto/boxcollide/components"
	cfg "github.com/automoto/boxcollide/config"
	"github.com/automoto/boxcollide/shared/gamemath"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/filter"
)

var players = donburi.NewQuery(filter.Contains(
	components.Player,
	components.PlayerInput,
	components.Position,
	components.Velocity,
))

// ApplyControl turns each player's input into velocity. Horizontal speed
// approaches the target at a fixed acceleration; jumping needs ground
// contact from the previous tick.
func ApplyControl(w donburi.World, dt float64) {
	players.Each(w, func(e *donburi.Entry) {
		in := components.PlayerInput.Get(e)
		player := components.Player.Get(e)
		vel := components.Velocity.Get(e)

		dir := gamemath.ClampSpeed(in.Direction, 1)
		vel.X = gamemath.Approach(vel.X, dir*cfg.Player.MoveSpeed, cfg.Player.Acceleration*dt)
		if dir != 0 {
			player.Facing = int(gamemath.Signum(dir))
		}

		if in.JumpPressed && player.OnGround {
			vel.Y = cfg.Player.JumpSpeed
			player.OnGround = false
		}
		in.JumpPressed = false
	})
}

// ApplyGravity accelerates players downwards up to the terminal speed.
func ApplyGravity(w donburi.World, dt float64) {
	players.Each(w, func(e *donburi.Entry) {
		vel := components.Velocity.Get(e)
		vel.Y += cfg.Physics.Gravity * dt
		if vel.Y < -cfg.Physics.MaxFallSpeed {
			vel.Y = -cfg.Physics.MaxFallSpeed
		}
	})
}

func searchRadius() float64 {
	if cfg.Player.SafeRadius > 0 {
		return cfg.Player.SafeRadius
	}
	return 8 * searchStep
}
