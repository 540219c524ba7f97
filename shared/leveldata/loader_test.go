package leveldata

import (
	"testing"
	"testing/fstest"
)

const testTMX = `<?xml version="1.0" encoding="UTF-8"?>
<map version="1.10" orientation="orthogonal" renderorder="right-down" width="10" height="5" tilewidth="16" tileheight="16" infinite="0">
 <objectgroup id="1" name="Solids">
  <object id="1" x="-400" y="264" width="800" height="72"/>
 </objectgroup>
 <objectgroup id="2" name="Spikes">
  <object id="2" x="10" y="20" width="30" height="10"/>
 </objectgroup>
 <objectgroup id="3" name="Lifts">
  <object id="3" x="0" y="100" width="64" height="16">
   <properties>
    <property name="travel" type="int" value="40"/>
   </properties>
  </object>
 </objectgroup>
 <objectgroup id="4" name="PlayerSpawn">
  <object id="4" x="50" y="0">
   <properties><property name="spawnIndex" type="int" value="1"/></properties>
   <point/>
  </object>
  <object id="5" x="-50" y="-10">
   <properties><property name="spawnIndex" type="int" value="0"/></properties>
   <point/>
  </object>
 </objectgroup>
</map>
`

func testFS() fstest.MapFS {
	return fstest.MapFS{
		"levels/one.tmx": {Data: []byte(testTMX)},
		"levels/two.tmx": {Data: []byte(testTMX)},
	}
}

func TestLoad(t *testing.T) {
	lvl, err := Load(testFS(), "levels/one.tmx")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if lvl.Name != "one" {
		t.Errorf("Name = %q, want one", lvl.Name)
	}
	if lvl.MapWidth != 160 || lvl.MapHeight != 80 {
		t.Errorf("map size = %dx%d, want 160x80", lvl.MapWidth, lvl.MapHeight)
	}
	if len(lvl.Solids) != 1 {
		t.Fatalf("len(Solids) = %d, want 1", len(lvl.Solids))
	}
	x, y := lvl.Solids[0].Center()
	if x != 0 || y != -300 {
		t.Errorf("ground center = (%v, %v), want (0, -300)", x, y)
	}
	if len(lvl.Spikes) != 1 {
		t.Errorf("len(Spikes) = %d, want 1", len(lvl.Spikes))
	}

	if len(lvl.Lifts) != 1 {
		t.Fatalf("len(Lifts) = %d, want 1", len(lvl.Lifts))
	}
	if lvl.Lifts[0].Travel != 40 {
		t.Errorf("lift travel = %v, want 40", lvl.Lifts[0].Travel)
	}
	if lvl.Lifts[0].Seconds != defaultLiftSeconds {
		t.Errorf("lift seconds = %v, want default %v", lvl.Lifts[0].Seconds, defaultLiftSeconds)
	}

	if len(lvl.Spawns) != 2 {
		t.Fatalf("len(Spawns) = %d, want 2", len(lvl.Spawns))
	}
	sp := lvl.PrimarySpawn()
	if sp.Index != 0 || sp.X != -50 || sp.Y != 10 {
		t.Errorf("PrimarySpawn = %+v, want index 0 at (-50, 10)", sp)
	}
}

func TestLoadMissing(t *testing.T) {
	if _, err := Load(testFS(), "levels/nope.tmx"); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestLoadAll(t *testing.T) {
	levels, names, err := LoadAll(testFS(), "levels")
	if err != nil {
		t.Fatalf("LoadAll: %v", err)
	}
	if len(names) != 2 || names[0] != "one" || names[1] != "two" {
		t.Errorf("names = %v, want [one two]", names)
	}
	if levels["two"] == nil {
		t.Error("level two missing from map")
	}

	if _, _, err := LoadAll(testFS(), "empty"); err == nil {
		t.Error("expected error for directory without levels")
	}
}

func TestRectCenter(t *testing.T) {
	tests := []struct {
		name  string
		r     Rect
		wantX float64
		wantY float64
	}{
		{"origin point", Rect{}, 0, 0},
		{"below origin", Rect{X: 0, Y: 10, W: 20, H: 20}, 10, -20},
		{"above origin", Rect{X: -10, Y: -30, W: 20, H: 20}, 0, 20},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			x, y := tt.r.Center()
			if x != tt.wantX || y != tt.wantY {
				t.Errorf("Center() = (%v, %v), want (%v, %v)", x, y, tt.wantX, tt.wantY)
			}
		})
	}
}
