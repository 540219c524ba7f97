package systems

import (
	"log"

	"github.com/automoto/boxcollide/components"
	cfg "github.com/automoto/boxcollide/config"
	"github.com/automoto/boxcollide/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/yohamta/donburi/ecs"
)

var (
	leftKeys  = []ebiten.Key{ebiten.KeyArrowLeft, ebiten.KeyA}
	rightKeys = []ebiten.Key{ebiten.KeyArrowRight, ebiten.KeyD}
	jumpKeys  = []ebiten.Key{ebiten.KeySpace, ebiten.KeyArrowUp, ebiten.KeyW}
)

func anyPressed(keys []ebiten.Key) bool {
	for _, k := range keys {
		if ebiten.IsKeyPressed(k) {
			return true
		}
	}
	return false
}

func anyJustPressed(keys []ebiten.Key) bool {
	for _, k := range keys {
		if inpututil.IsKeyJustPressed(k) {
			return true
		}
	}
	return false
}

// UpdateInput polls the keyboard into the local player's input component.
// Must run before UpdatePhysics.
func (s *Sim) UpdateInput(e *ecs.ECS) {
	if inpututil.IsKeyJustPressed(ebiten.KeyH) {
		cfg.Debug.DrawHitboxes = !cfg.Debug.DrawHitboxes
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyB) {
		s.Physics.Time.AddEffect(components.TimeSlow, cfg.BulletTime.Seconds)
		log.Printf("[input] bullet time for %.1fs", cfg.BulletTime.Seconds)
	}

	playerEntry, ok := tags.Player.First(e.World)
	if !ok {
		return
	}
	in := components.PlayerInput.Get(playerEntry)

	in.Direction = 0
	if anyPressed(leftKeys) {
		in.Direction--
	}
	if anyPressed(rightKeys) {
		in.Direction++
	}
	in.Jump = anyPressed(jumpKeys)
	// Latched until consumed so a press between ticks is never lost.
	if anyJustPressed(jumpKeys) {
		in.JumpPressed = true
	}
	in.Sequence++
}
