package netcomponents

import "testing"

func TestLerp(t *testing.T) {
	tests := []struct {
		name string
		t    float64
		want float64
	}{
		{"start", 0, 10},
		{"middle", 0.5, 15},
		{"end", 1, 20},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pos := LerpNetPosition(NetPositionData{X: 10, Y: -10}, NetPositionData{X: 20, Y: -20}, tt.t)
			if pos.X != tt.want || pos.Y != -tt.want {
				t.Errorf("position = %+v, want (%v, %v)", *pos, tt.want, -tt.want)
			}
			vel := LerpNetVelocity(NetVelocityData{X: 10}, NetVelocityData{X: 20}, tt.t)
			if vel.X != tt.want || vel.Y != 0 {
				t.Errorf("velocity = %+v, want (%v, 0)", *vel, tt.want)
			}
		})
	}
}
