//go:build release

package physics

import (
	"bytes"
	"log"
	"math"
	"os"
	"strings"
	"testing"

	"github.com/automoto/boxcollide/components"
	"github.com/yohamta/donburi"
)

func captureLog(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	log.SetOutput(&buf)
	t.Cleanup(func() { log.SetOutput(os.Stderr) })
	reported.Range(func(k, _ any) bool {
		reported.Delete(k)
		return true
	})
	return &buf
}

func TestReleaseViolationsLogOnce(t *testing.T) {
	buf := captureLog(t)
	w := donburi.NewWorld()
	p := newPipeline()
	w.Create(components.Velocity)
	w.Create(components.Velocity)

	for i := 0; i < 3; i++ {
		p.Tick(w)
	}
	if n := strings.Count(buf.String(), "has Velocity but no Position"); n != 1 {
		t.Errorf("violation logged %d times, want 1:\n%s", n, buf.String())
	}
}

func TestReleaseSkipsVelocityWithoutPosition(t *testing.T) {
	captureLog(t)
	w := donburi.NewWorld()
	p := newPipeline()
	orphan := w.Entry(w.Create(components.Velocity))
	components.Velocity.SetValue(orphan, components.VelocityData{X: 10, Y: 10})
	body := spawnBody(w, components.StaticRxDefault, 0, 0, 60, 0)

	p.Tick(w)
	if orphan.HasComponent(components.Position) {
		t.Error("orphan velocity gained a position")
	}
	if x := components.Position.Get(body).X; math.Abs(x-60*p.Time.DeltaSecs()) > eps {
		t.Errorf("healthy body x = %v, want %v", x, 60*p.Time.DeltaSecs())
	}
}

func TestReleaseTransmitterMovesVerticallyOnly(t *testing.T) {
	buf := captureLog(t)
	w := donburi.NewWorld()
	p := newPipeline()
	e := spawnSolid(w, 0, 0, 10, 10)
	e.AddComponent(components.Velocity)
	components.Velocity.SetValue(e, components.VelocityData{X: 60, Y: 60})

	p.Tick(w)
	pos := components.Position.Get(e)
	if pos.X != 0 {
		t.Errorf("transmitter moved horizontally to x = %v", pos.X)
	}
	if want := 60 * p.Time.DeltaSecs(); math.Abs(pos.Y-want) > eps {
		t.Errorf("transmitter y = %v, want %v", pos.Y, want)
	}
	if !strings.Contains(buf.String(), "StaticTx moves horizontally") {
		t.Error("violation was not logged")
	}
}
