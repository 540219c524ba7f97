package factory

import (
	"math"
	"testing"

	"github.com/automoto/boxcollide/components"
	"github.com/automoto/boxcollide/shared/leveldata"
	"github.com/automoto/boxcollide/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/filter"
)

func testLevel() *leveldata.Level {
	return &leveldata.Level{
		Name:   "test",
		Solids: []leveldata.Rect{{X: -400, Y: 264, W: 800, H: 72}, {X: 100, Y: 100, W: 50, H: 20}},
		Spikes: []leveldata.Rect{{X: 0, Y: 248, W: 32, H: 16}},
		Lifts:  []leveldata.Lift{{Rect: leveldata.Rect{X: 200, Y: 240, W: 64, H: 16}, Travel: 100, Seconds: 2}},
		Spawns: []leveldata.SpawnPoint{{X: 0, Y: 0}},
	}
}

func count(w donburi.World, tag donburi.IComponentType) int {
	return donburi.NewQuery(filter.Contains(tag)).Count(w)
}

func TestCreateLevel(t *testing.T) {
	w := donburi.NewWorld()
	CreateLevel(w, testLevel())

	if n := count(w, tags.Solid); n != 2 {
		t.Errorf("solids = %d, want 2", n)
	}
	if n := count(w, tags.Spikes); n != 1 {
		t.Errorf("spikes = %d, want 1", n)
	}
	if n := count(w, tags.Lift); n != 1 {
		t.Errorf("lifts = %d, want 1", n)
	}
	if _, ok := components.Level.First(w); !ok {
		t.Error("no level entity")
	}
}

func TestSolidPlacement(t *testing.T) {
	w := donburi.NewWorld()
	CreateSpace(w, testLevel())
	ground := CreateSolid(w, leveldata.Rect{X: -400, Y: 264, W: 800, H: 72})

	pos := components.Position.Get(ground)
	if pos.X != 0 || pos.Y != -300 {
		t.Errorf("ground center = %+v, want (0, -300)", *pos)
	}
	box := components.StaticTx.Get(ground).THBoxes(*pos)[0]
	if box.MaxY() != -264 {
		t.Errorf("ground top = %v, want -264", box.MaxY())
	}

	obj := components.Object.Get(ground).Object
	if obj == nil {
		t.Fatal("solid was not mirrored into the space")
	}
	spaceEntry, _ := components.Space.First(w)
	space := components.Space.Get(spaceEntry)
	cx, cy := space.ToWorld(obj.X, obj.Y, obj.W, obj.H)
	if math.Abs(cx) > 1e-9 || math.Abs(cy+300) > 1e-9 {
		t.Errorf("mirror maps back to (%v, %v), want (0, -300)", cx, cy)
	}
	if obj.X < 0 || obj.Y < 0 {
		t.Errorf("mirror at (%v, %v) lies outside the space", obj.X, obj.Y)
	}
}

func TestCreatePlayer(t *testing.T) {
	w := donburi.NewWorld()
	p := CreatePlayer(w, "", 10, 20)

	rx := components.StaticRx.Get(p)
	if len(rx.Comps) != 2 {
		t.Fatalf("player has %d static hitboxes, want body and feet", len(rx.Comps))
	}
	if rx.Comps[0].Kind != components.StaticRxDefault || rx.Comps[1].Kind != components.StaticRxObserve {
		t.Errorf("kinds = %v, %v", rx.Comps[0].Kind, rx.Comps[1].Kind)
	}
	feet := rx.Comps[1].HBox
	if feet.Marker() != components.MarkerFeet || feet.MaxY() != -18 {
		t.Errorf("feet sensor marker %v top %v, want feet below the body", feet.Marker(), feet.MaxY())
	}
	if id := components.Persistent.Get(p).ID; id == "" {
		t.Error("player has no persistent id")
	}
	if ip := components.IPosition.Get(p); ip.Cur.X != 10 || ip.Cur.Y != 20 {
		t.Errorf("IPosition = %+v", *ip)
	}
}

func TestSpawnPlayers(t *testing.T) {
	w := donburi.NewWorld()
	lvl := testLevel()
	lvl.Spawns = append(lvl.Spawns, leveldata.SpawnPoint{X: 50, Y: 5, Index: 1})

	players := SpawnPlayers(w, lvl, 3)
	if len(players) != 3 {
		t.Fatalf("players = %d", len(players))
	}
	if x := components.Position.Get(players[1]).X; x != 50 {
		t.Errorf("second player x = %v, want 50", x)
	}
	if x := components.Position.Get(players[2]).X; x != 0 {
		t.Errorf("third player wraps to first spawn, got x = %v", x)
	}
	if components.Persistent.Get(players[0]).ID == components.Persistent.Get(players[1]).ID {
		t.Error("players share a persistent id")
	}
}
