package factory

import (
	"math"

	"github.com/automoto/boxcollide/archetypes"
	"github.com/automoto/boxcollide/components"
	"github.com/automoto/boxcollide/shared/leveldata"
	"github.com/automoto/boxcollide/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

const (
	spaceCellSize = 8
	spaceMargin   = 512.0
)

// CreateSpace creates the resolv mirror sized to cover every solid and lift
// of the level plus a margin for the respawn search.
func CreateSpace(w donburi.World, lvl *leveldata.Level) *donburi.Entry {
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	grow := func(r leveldata.Rect) {
		minX = math.Min(minX, r.X)
		minY = math.Min(minY, r.Y)
		maxX = math.Max(maxX, r.X+r.W)
		maxY = math.Max(maxY, r.Y+r.H)
	}
	for _, r := range lvl.Solids {
		grow(r)
	}
	for _, l := range lvl.Lifts {
		grow(l.Rect)
		grow(leveldata.Rect{X: l.X, Y: l.Y - l.Travel, W: l.W, H: l.H})
	}
	if math.IsInf(minX, 1) {
		minX, minY, maxX, maxY = 0, 0, 0, 0
	}

	// Tiled y grows downwards like resolv's, so the top edge in world space is
	// -minY.
	originX := minX - spaceMargin
	originY := -(minY - spaceMargin)
	width := int(math.Ceil(maxX-minX+2*spaceMargin)) + spaceCellSize
	height := int(math.Ceil(maxY-minY+2*spaceMargin)) + spaceCellSize

	space := archetypes.Space.Spawn(w)
	components.Space.SetValue(space, components.SpaceData{
		Space:   resolv.NewSpace(width, height, spaceCellSize, spaceCellSize),
		OriginX: originX,
		OriginY: originY,
	})
	return space
}

// mirror creates a resolv object for a world-space box and adds it to the
// space if there is one.
func mirror(w donburi.World, owner *donburi.Entry, cx, cy, width, height float64) {
	spaceEntry, ok := components.Space.First(w)
	if !ok {
		return
	}
	space := components.Space.Get(spaceEntry)
	x, y := space.ToSpace(cx, cy, width, height)

	obj := resolv.NewObject(x, y, width, height, tags.ResolvSolid)
	obj.SetShape(resolv.NewRectangle(0, 0, width, height))
	obj.Data = owner // Link for O(1) lookup
	components.Object.SetValue(owner, components.ObjectData{Object: obj})
	space.Add(obj)
}
