// Package hbox implements the axis-aligned hitbox used by the collision
// pipeline. A box is described by its size and a center offset in
// entity-local space; callers translate it by the owner's position before
// testing it against anything.
package hbox

import (
	"math"

	dmath "github.com/yohamta/donburi/features/math"
)

// Marker tags a hitbox so that records can tell apart the boxes of a single
// entity (feet vs. body, for example). It is copied along on translation.
type Marker uint32

const MarkerDefault Marker = 0

type HBox struct {
	offset dmath.Vec2
	size   dmath.Vec2
	marker Marker
}

// New returns a w by h box centered on the owner's position.
func New(w, h float64) HBox {
	return HBox{size: dmath.Vec2{X: w, Y: h}}
}

func (b HBox) WithOffset(x, y float64) HBox {
	b.offset = dmath.Vec2{X: x, Y: y}
	return b
}

func (b HBox) WithMarker(m Marker) HBox {
	b.marker = m
	return b
}

func (b HBox) Marker() Marker     { return b.marker }
func (b HBox) Size() dmath.Vec2   { return b.size }
func (b HBox) Center() dmath.Vec2 { return b.offset }

func (b HBox) MinX() float64 { return b.offset.X - b.size.X/2 }
func (b HBox) MaxX() float64 { return b.offset.X + b.size.X/2 }
func (b HBox) MinY() float64 { return b.offset.Y - b.size.Y/2 }
func (b HBox) MaxY() float64 { return b.offset.Y + b.size.Y/2 }

// Translated returns the box moved by (x, y).
func (b HBox) Translated(x, y float64) HBox {
	b.offset = dmath.Vec2{X: b.offset.X + x, Y: b.offset.Y + y}
	return b
}

// Overlaps reports whether the interiors of b and o intersect. Boxes that only
// share an edge do not overlap.
func (b HBox) Overlaps(o HBox) bool {
	return b.MinX() < o.MaxX() && b.MaxX() > o.MinX() &&
		b.MinY() < o.MaxY() && b.MaxY() > o.MinY()
}

// PushOut returns the minimum translation that moves b out of o, or false if
// the boxes do not overlap. Ties between axes go to the horizontal axis.
func (b HBox) PushOut(o HBox) (dmath.Vec2, bool) {
	if !b.Overlaps(o) {
		return dmath.Vec2{}, false
	}

	right := o.MaxX() - b.MinX()
	left := b.MaxX() - o.MinX()
	up := o.MaxY() - b.MinY()
	down := b.MaxY() - o.MinY()

	push := dmath.Vec2{X: right}
	best := right
	if left < best {
		best = left
		push = dmath.Vec2{X: -left}
	}
	if up < best {
		best = up
		push = dmath.Vec2{Y: up}
	}
	if down < best {
		push = dmath.Vec2{Y: -down}
	}
	return push, true
}

// AreaOverlapping returns the area of the intersection of b and o. The result
// is only meaningful when the boxes overlap.
func (b HBox) AreaOverlapping(o HBox) float64 {
	w := math.Min(b.MaxX(), o.MaxX()) - math.Max(b.MinX(), o.MinX())
	h := math.Min(b.MaxY(), o.MaxY()) - math.Max(b.MinY(), o.MinY())
	return w * h
}
