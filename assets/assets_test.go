package assets

import "testing"

func TestDemoLevel(t *testing.T) {
	lvl, err := LoadLevel(DemoLevel)
	if err != nil {
		t.Fatalf("LoadLevel: %v", err)
	}
	if len(lvl.Solids) == 0 {
		t.Error("demo level has no solids")
	}
	if len(lvl.Spawns) == 0 {
		t.Error("demo level has no spawn")
	}
	if len(lvl.Lifts) == 0 {
		t.Error("demo level has no lift")
	}
}

func TestLoadLevels(t *testing.T) {
	levels, names, err := LoadLevels()
	if err != nil {
		t.Fatalf("LoadLevels: %v", err)
	}
	if len(names) == 0 || levels[DemoLevel] == nil {
		t.Errorf("names = %v, want demo present", names)
	}
}
