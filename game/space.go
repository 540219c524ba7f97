package game

import (
	"math"

	"github.com/automoto/boxcollide/components"
	"github.com/automoto/boxcollide/hbox"
	"github.com/automoto/boxcollide/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/filter"
)

const (
	searchStep    = 32.0
	maxDropHeight = 256.0
)

var mirrored = donburi.NewQuery(filter.Contains(
	components.Object,
	components.Position,
	components.StaticTx,
))

// SyncSpace moves the resolv mirror of every solid to where the physics tick
// left it. Only lifts actually move.
func SyncSpace(w donburi.World) {
	spaceEntry, ok := components.Space.First(w)
	if !ok {
		return
	}
	space := components.Space.Get(spaceEntry)
	mirrored.Each(w, func(e *donburi.Entry) {
		obj := components.Object.Get(e).Object
		if obj == nil {
			return
		}
		pos := components.Position.Get(e)
		x, y := space.ToSpace(pos.X, pos.Y, obj.W, obj.H)
		if x == obj.X && y == obj.Y {
			return
		}
		obj.X, obj.Y = x, y
		obj.Update()
	})
}

// overlapping narrows resolv's cell-level broad phase down to the objects
// whose rectangles actually overlap the probe moved by (dx, dy).
func overlapping(probe *resolv.Object, dx, dy float64, tags ...string) []*resolv.Object {
	c := probe.Check(dx, dy, tags...)
	if c == nil {
		return nil
	}
	x, y := probe.X+dx, probe.Y+dy
	var out []*resolv.Object
	for _, o := range c.Objects {
		if x < o.X+o.W && x+probe.W > o.X && y < o.Y+o.H && y+probe.H > o.Y {
			out = append(out, o)
		}
	}
	return out
}

// IsPositionSafe reports whether a w by h body centered at (x, y) would stand
// on solid ground without overlapping solids or spikes.
func IsPositionSafe(world donburi.World, x, y, w, h float64) bool {
	spaceEntry, ok := components.Space.First(world)
	if !ok {
		return false
	}
	space := components.Space.Get(spaceEntry)

	sx, sy := space.ToSpace(x, y, w, h)
	probe := resolv.NewObject(sx, sy, w, h, tags.ResolvProbe)
	space.Add(probe)
	defer space.Remove(probe)

	if len(overlapping(probe, 0, 0, tags.ResolvSolid)) > 0 {
		return false
	}
	if len(overlapping(probe, 0, 2, tags.ResolvSolid)) == 0 {
		return false
	}
	return !overlapsSpikes(world, hbox.New(w, h).Translated(x, y))
}

// FindNearestSafeGround searches columns outwards from (startX, startY),
// dropping a w by h probe in each until it lands on a solid, and returns the
// first landing spot that is safe. The start column is tried first.
func FindNearestSafeGround(world donburi.World, startX, startY, w, h float64) (x, y float64, found bool) {
	spaceEntry, ok := components.Space.First(world)
	if !ok {
		return 0, 0, false
	}
	space := components.Space.Get(spaceEntry)

	// Reuse the same objects for all checks to avoid allocations. column
	// spans the probe plus everything it could fall onto.
	probe := resolv.NewObject(0, 0, w, h, tags.ResolvProbe)
	column := resolv.NewObject(0, 0, w, h+maxDropHeight, tags.ResolvProbe)
	space.Add(probe, column)
	defer space.Remove(probe, column)

	land := func(cx float64) (float64, float64, bool) {
		probe.X, probe.Y = space.ToSpace(cx, startY, w, h)
		if len(overlapping(probe, 0, 0, tags.ResolvSolid)) > 0 {
			return 0, 0, false
		}
		column.X, column.Y = probe.X, probe.Y

		bottom := probe.Y + probe.H
		top := math.Inf(1)
		for _, o := range overlapping(column, 0, 0, tags.ResolvSolid) {
			if o.Y >= bottom && o.Y < top {
				top = o.Y
			}
		}
		if math.IsInf(top, 1) {
			return 0, 0, false
		}
		lx, ly := space.ToWorld(probe.X, top-probe.H, w, h)
		if overlapsSpikes(world, hbox.New(w, h).Translated(lx, ly)) {
			return 0, 0, false
		}
		return lx, ly, true
	}

	if lx, ly, ok := land(startX); ok {
		return lx, ly, true
	}
	radius := searchRadius()
	for dist := searchStep; dist <= radius; dist += searchStep {
		for _, dir := range []float64{-1, 1} {
			if lx, ly, ok := land(startX + dist*dir); ok {
				return lx, ly, true
			}
		}
	}
	return 0, 0, false
}

func overlapsSpikes(w donburi.World, box hbox.HBox) bool {
	hit := false
	spikes.Each(w, func(e *donburi.Entry) {
		if hit {
			return
		}
		pos := components.Position.Get(e)
		for _, comp := range components.Triggers.Tx.Get(e).Comps {
			if comp.Kind == components.TriggerTxSpikes && box.Overlaps(comp.HBox.Translated(pos.X, pos.Y)) {
				hit = true
				return
			}
		}
	})
	return hit
}
