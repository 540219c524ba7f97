package systems

import (
	"image/color"

	"github.com/automoto/boxcollide/components"
	cfg "github.com/automoto/boxcollide/config"
	"github.com/automoto/boxcollide/hbox"
	"github.com/automoto/boxcollide/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/filter"
)

var (
	solidColor  = color.RGBA{R: 70, G: 74, B: 90, A: 255}
	liftColor   = color.RGBA{R: 90, G: 110, B: 150, A: 255}
	spikesColor = color.RGBA{R: 200, G: 40, B: 40, A: 255}
	playerColor = color.RGBA{R: 240, G: 200, B: 80, A: 255}
)

var (
	solids = donburi.NewQuery(filter.Contains(components.StaticTx, components.Position))
	spikes = donburi.NewQuery(filter.Contains(tags.Spikes, components.Position))
)

// boxRect returns the screen rectangle of a world box, or false when it is
// entirely off screen.
func boxRect(camera *components.CameraData, box hbox.HBox, width, height int) (x, y, w, h float32, visible bool) {
	x, y = camera.ToScreen(box.MinX(), box.MaxY(), width, height)
	size := box.Size()
	w, h = float32(size.X), float32(size.Y)
	visible = x+w >= 0 && y+h >= 0 && x <= float32(width) && y <= float32(height)
	return
}

func cameraOf(e *ecs.ECS) (*components.CameraData, bool) {
	cameraEntry, ok := components.Camera.First(e.World)
	if !ok {
		return nil, false
	}
	return components.Camera.Get(cameraEntry), true
}

// DrawLevel fills solids, lifts and spikes.
func DrawLevel(e *ecs.ECS, screen *ebiten.Image) {
	camera, ok := cameraOf(e)
	if !ok {
		return
	}
	width, height := screen.Bounds().Dx(), screen.Bounds().Dy()

	solids.Each(e.World, func(entry *donburi.Entry) {
		clr := solidColor
		if entry.HasComponent(tags.Lift) {
			clr = liftColor
		}
		tx := components.StaticTx.Get(entry)
		for _, box := range tx.THBoxes(*components.Position.Get(entry)) {
			if x, y, w, h, ok := boxRect(camera, box, width, height); ok {
				vector.DrawFilledRect(screen, x, y, w, h, clr, false)
			}
		}
	})

	spikes.Each(e.World, func(entry *donburi.Entry) {
		pos := components.Position.Get(entry)
		for _, comp := range components.Triggers.Tx.Get(entry).Comps {
			if x, y, w, h, ok := boxRect(camera, comp.HBox.Translated(pos.X, pos.Y), width, height); ok {
				vector.DrawFilledRect(screen, x, y, w, h, spikesColor, false)
			}
		}
	})
}

// DrawPlayers draws each player's body box.
func DrawPlayers(e *ecs.ECS, screen *ebiten.Image) {
	camera, ok := cameraOf(e)
	if !ok {
		return
	}
	width, height := screen.Bounds().Dx(), screen.Bounds().Dy()

	tags.Player.Each(e.World, func(entry *donburi.Entry) {
		pos := components.Position.Get(entry)
		for _, comp := range components.StaticRx.Get(entry).Comps {
			if comp.HBox.Marker() != components.MarkerBody {
				continue
			}
			if x, y, w, h, ok := boxRect(camera, comp.HBox.Translated(pos.X, pos.Y), width, height); ok {
				vector.DrawFilledRect(screen, x, y, w, h, playerColor, false)
			}
		}
	})
}

// DrawHitboxes outlines every receiver box. Boxes that took part in a
// collision this tick are drawn red, the rest green.
func (s *Sim) DrawHitboxes(e *ecs.ECS, screen *ebiten.Image) {
	if !cfg.Debug.DrawHitboxes {
		return
	}
	camera, ok := cameraOf(e)
	if !ok {
		return
	}
	width, height := screen.Bounds().Dx(), screen.Bounds().Dy()

	components.StaticRx.Each(e.World, func(entry *donburi.Entry) {
		if !entry.HasComponent(components.Position) {
			return
		}
		pos := components.Position.Get(entry)
		rx := components.StaticRx.Get(entry)
		hit := make(map[hbox.Marker]bool, len(rx.Comps))
		for _, rec := range s.Physics.Statics.GetMany(rx.CollKeys) {
			hit[rec.RxHBox] = true
		}
		for _, comp := range rx.Comps {
			clr := cfg.Green
			if hit[comp.HBox.Marker()] {
				clr = cfg.Red
			}
			if x, y, w, h, ok := boxRect(camera, comp.HBox.Translated(pos.X, pos.Y), width, height); ok {
				vector.StrokeRect(screen, x, y, w, h, 1, clr, false)
			}
		}
	})

	components.Triggers.Tx.Each(e.World, func(entry *donburi.Entry) {
		if !entry.HasComponent(components.Position) {
			return
		}
		pos := components.Position.Get(entry)
		for _, comp := range components.Triggers.Tx.Get(entry).Comps {
			if x, y, w, h, ok := boxRect(camera, comp.HBox.Translated(pos.X, pos.Y), width, height); ok {
				vector.StrokeRect(screen, x, y, w, h, 1, cfg.Orange, false)
			}
		}
	})
}
