package hbox

import (
	"math"
	"testing"
)

func TestOverlaps(t *testing.T) {
	cases := []struct {
		name string
		a, b HBox
		want bool
	}{
		{"same", New(10, 10), New(10, 10), true},
		{"edge_touching", New(10, 10), New(10, 10).Translated(10, 0), false},
		{"corner_touching", New(10, 10), New(10, 10).Translated(10, 10), false},
		{"partial", New(10, 10), New(10, 10).Translated(9, 0), true},
		{"apart", New(10, 10), New(4, 4).Translated(0, 20), false},
		{"contained", New(100, 100), New(2, 2).Translated(3, -3), true},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := c.a.Overlaps(c.b); got != c.want {
				t.Fatalf("Overlaps = %v, want %v", got, c.want)
			}
			if got := c.b.Overlaps(c.a); got != c.want {
				t.Fatalf("Overlaps is not symmetric")
			}
		})
	}
}

func TestPushOut(t *testing.T) {
	ground := New(800, 72).Translated(0, -300)

	cases := []struct {
		name   string
		box    HBox
		wantX  float64
		wantY  float64
		wantOK bool
	}{
		{"sunk_into_ground", New(36, 36).Translated(0, -247), 0, 1, true},
		{"resting_on_ground", New(36, 36).Translated(0, -246), 0, 0, false},
		{"into_left_wall_face", New(36, 36).Translated(-417, -290), -1, 0, true},
		{"below_ground", New(36, 36).Translated(0, -353), 0, -1, true},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			push, ok := c.box.PushOut(ground)
			if ok != c.wantOK {
				t.Fatalf("ok = %v, want %v", ok, c.wantOK)
			}
			if math.Abs(push.X-c.wantX) > 1e-9 || math.Abs(push.Y-c.wantY) > 1e-9 {
				t.Fatalf("push = %+v, want (%v, %v)", push, c.wantX, c.wantY)
			}
			if ok && c.box.Translated(push.X, push.Y).Overlaps(ground) {
				t.Fatalf("box still overlaps after push")
			}
		})
	}
}

func TestAreaOverlapping(t *testing.T) {
	a := New(10, 10)
	if got := a.AreaOverlapping(New(10, 10).Translated(5, 0)); got != 50 {
		t.Fatalf("half overlap area = %v, want 50", got)
	}
	if got := a.AreaOverlapping(New(2, 2)); got != 4 {
		t.Fatalf("contained area = %v, want 4", got)
	}
}

func TestTranslatedKeepsMarkerAndSize(t *testing.T) {
	b := New(4, 6).WithOffset(1, 2).WithMarker(7)
	moved := b.Translated(10, -10)

	if moved.Marker() != 7 {
		t.Fatalf("marker = %d, want 7", moved.Marker())
	}
	if moved.Size() != b.Size() {
		t.Fatalf("size changed on translation")
	}
	if c := moved.Center(); c.X != 11 || c.Y != -8 {
		t.Fatalf("center = %+v, want (11, -8)", c)
	}
	if moved.MinX() != 9 || moved.MaxY() != -5 {
		t.Fatalf("bounds = %v..%v, want 9..-5", moved.MinX(), moved.MaxY())
	}
}
