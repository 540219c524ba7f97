package gamemath

import (
	"math"
	"testing"

	dmath "github.com/yohamta/donburi/features/math"
)

func vec(x, y float64) dmath.Vec2 { return dmath.NewVec2(x, y) }

func TestDecompose(t *testing.T) {
	tests := []struct {
		name string
		v, n [2]float64
		perp [2]float64
		par  [2]float64
	}{
		{"falling onto floor", [2]float64{3, -10}, [2]float64{0, 2}, [2]float64{0, -10}, [2]float64{3, 0}},
		{"into wall", [2]float64{5, 1}, [2]float64{-0.5, 0}, [2]float64{5, 0}, [2]float64{0, 1}},
		{"zero normal", [2]float64{5, 1}, [2]float64{0, 0}, [2]float64{0, 0}, [2]float64{5, 1}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			perp, par := Decompose(vec(tt.v[0], tt.v[1]), vec(tt.n[0], tt.n[1]))
			if perp != vec(tt.perp[0], tt.perp[1]) || par != vec(tt.par[0], tt.par[1]) {
				t.Errorf("Decompose = %v, %v; want %v, %v", perp, par, tt.perp, tt.par)
			}
		})
	}
}

func TestNormalizeOrZero(t *testing.T) {
	if got := NormalizeOrZero(vec(math.Inf(1), 0)); got != vec(0, 0) {
		t.Errorf("infinite vector normalised to %v", got)
	}
	if got := NormalizeOrZero(vec(0, -4)); got != vec(0, -1) {
		t.Errorf("NormalizeOrZero = %v, want (0, -1)", got)
	}
}

func TestSignum(t *testing.T) {
	if Signum(-3) != -1 || Signum(2) != 1 || Signum(0) != 1 {
		t.Error("Signum mismatch")
	}
}

func TestApproach(t *testing.T) {
	tests := []struct{ cur, target, step, want float64 }{
		{0, 10, 3, 3},
		{9, 10, 3, 10},
		{0, -10, 4, -4},
		{-8, -10, 4, -10},
		{5, 5, 1, 5},
	}
	for _, tt := range tests {
		if got := Approach(tt.cur, tt.target, tt.step); got != tt.want {
			t.Errorf("Approach(%v, %v, %v) = %v, want %v", tt.cur, tt.target, tt.step, got, tt.want)
		}
	}
}
