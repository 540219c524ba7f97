//go:build !release

package physics

import (
	"errors"
	"testing"

	"github.com/automoto/boxcollide/components"
	"github.com/automoto/boxcollide/hbox"
	"github.com/yohamta/donburi"
)

func TestInvariantViolationsPanic(t *testing.T) {
	tests := []struct {
		name  string
		setup func(w donburi.World)
	}{
		{
			name: "velocity without position",
			setup: func(w donburi.World) {
				w.Create(components.Velocity)
			},
		},
		{
			name: "both static roles",
			setup: func(w donburi.World) {
				e := w.Entry(w.Create(components.Position, components.StaticRx, components.StaticTx))
				components.StaticRx.SetValue(e, components.SingleStaticRx(components.StaticRxDefault, hbox.New(1, 1)))
				components.StaticTx.SetValue(e, components.SingleStaticTx(components.StaticTxSolid, hbox.New(1, 1)))
			},
		},
		{
			name: "horizontally moving transmitter",
			setup: func(w donburi.World) {
				e := spawnSolid(w, 0, 0, 10, 10)
				e.AddComponent(components.Velocity)
				components.Velocity.SetValue(e, components.VelocityData{X: 5})
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := donburi.NewWorld()
			p := newPipeline()
			tt.setup(w)

			defer func() {
				r := recover()
				if r == nil {
					t.Fatal("expected panic")
				}
				err, ok := r.(error)
				var inv *InvariantError
				if !ok || !errors.As(err, &inv) {
					t.Fatalf("panic value %v is not an *InvariantError", r)
				}
			}()
			p.Tick(w)
		})
	}
}

func TestVerticalTransmitterIsValid(t *testing.T) {
	w := donburi.NewWorld()
	p := newPipeline()
	e := spawnSolid(w, 0, 0, 10, 10)
	e.AddComponent(components.Velocity)
	components.Velocity.SetValue(e, components.VelocityData{Y: 60})

	p.Tick(w) // must not panic
	if y := components.Position.Get(e).Y; y <= 0 {
		t.Errorf("transmitter did not move up, y = %v", y)
	}
}
