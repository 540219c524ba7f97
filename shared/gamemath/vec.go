package gamemath

import (
	"math"

	dmath "github.com/yohamta/donburi/features/math"
)

// NormalizeOrZero returns the unit vector of v, or the zero vector when v has
// no usable length. dmath's Normalized hands short vectors back unchanged.
func NormalizeOrZero(v dmath.Vec2) dmath.Vec2 {
	l := v.Magnitude()
	if l == 0 || math.IsNaN(l) || math.IsInf(l, 0) {
		return dmath.Vec2{}
	}
	return v.DivScalar(l)
}

// Decompose splits v into the component along normal (perp) and the
// remainder (par). A zero normal yields a zero perp and par == v.
func Decompose(v, normal dmath.Vec2) (perp, par dmath.Vec2) {
	n := NormalizeOrZero(normal)
	perp = n.MulScalar(v.Dot(&n))
	return perp, v.Sub(perp)
}

// Signum returns -1 or 1 matching the sign bit of f.
func Signum(f float64) float64 {
	return math.Copysign(1, f)
}
