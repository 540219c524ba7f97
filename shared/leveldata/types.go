// Package leveldata parses TMX levels into plain rectangles. It has no
// dependencies on ebitengine, donburi, or resolv, so the headless server and
// the terminal viewer can load the same files as the game.
//
// Tiled measures y downwards from the top-left corner of the map while the
// physics world measures y upwards from the origin. Rect.Center does the
// conversion.
package leveldata

// Level holds all collision-relevant data parsed from a TMX level file.
type Level struct {
	Name      string
	MapWidth  int
	MapHeight int
	Solids    []Rect
	Spikes    []Rect
	Lifts     []Lift
	Spawns    []SpawnPoint
}

// Rect is an axis-aligned rectangle in Tiled coordinates (top-left origin,
// y down).
type Rect struct {
	X, Y, W, H float64
}

// Center returns the rectangle's center in world coordinates (y up).
func (r Rect) Center() (x, y float64) {
	return r.X + r.W/2, -(r.Y + r.H/2)
}

// Lift is a solid platform that travels vertically between its starting
// position and Travel units above it, taking Seconds for each leg.
type Lift struct {
	Rect
	Travel  float64
	Seconds float64
}

// SpawnPoint is a player spawn location in world coordinates.
type SpawnPoint struct {
	X, Y  float64
	Index int
}

// PrimarySpawn returns the spawn with the lowest index, or the origin when
// the level has none.
func (l *Level) PrimarySpawn() SpawnPoint {
	if len(l.Spawns) == 0 {
		return SpawnPoint{}
	}
	return l.Spawns[0]
}
