package leveldata

import (
	"fmt"
	"io/fs"
	"path/filepath"
	"sort"
	"strings"

	"github.com/lafriks/go-tiled"
)

// Object group names recognised in level files.
const (
	GroupSolids = "Solids"
	GroupSpikes = "Spikes"
	GroupLifts  = "Lifts"
	GroupSpawn  = "PlayerSpawn"
)

const (
	defaultLiftTravel  = 96
	defaultLiftSeconds = 2
)

// Load parses a TMX file. It takes an fs.FS so callers can pass embed.FS
// (game) or os.DirFS (server, tools).
func Load(fsys fs.FS, tmxPath string) (*Level, error) {
	levelMap, err := tiled.LoadFile(tmxPath, tiled.WithFileSystem(fsys))
	if err != nil {
		return nil, fmt.Errorf("load TMX %s: %w", tmxPath, err)
	}

	lvl := &Level{
		Name:      strings.TrimSuffix(filepath.Base(tmxPath), ".tmx"),
		MapWidth:  levelMap.Width * levelMap.TileWidth,
		MapHeight: levelMap.Height * levelMap.TileHeight,
	}

	for _, og := range levelMap.ObjectGroups {
		for _, o := range og.Objects {
			r := Rect{X: o.X, Y: o.Y, W: o.Width, H: o.Height}
			switch og.Name {
			case GroupSolids:
				if r.W <= 0 || r.H <= 0 {
					return nil, fmt.Errorf("%s: solid %d has no area", tmxPath, o.ID)
				}
				lvl.Solids = append(lvl.Solids, r)
			case GroupSpikes:
				lvl.Spikes = append(lvl.Spikes, r)
			case GroupLifts:
				lift := Lift{
					Rect:    r,
					Travel:  float64(o.Properties.GetInt("travel")),
					Seconds: float64(o.Properties.GetInt("seconds")),
				}
				if lift.Travel == 0 {
					lift.Travel = defaultLiftTravel
				}
				if lift.Seconds <= 0 {
					lift.Seconds = defaultLiftSeconds
				}
				lvl.Lifts = append(lvl.Lifts, lift)
			case GroupSpawn:
				// Spawn objects are points; a sized object spawns at its center.
				x, y := r.Center()
				lvl.Spawns = append(lvl.Spawns, SpawnPoint{
					X:     x,
					Y:     y,
					Index: o.Properties.GetInt("spawnIndex"),
				})
			}
		}
	}

	sort.SliceStable(lvl.Spawns, func(i, j int) bool {
		return lvl.Spawns[i].Index < lvl.Spawns[j].Index
	})

	return lvl, nil
}

// LoadAll discovers all .tmx files in levelsDir within fsys, loads each, and
// returns a map keyed by stem name plus a sorted list of names.
func LoadAll(fsys fs.FS, levelsDir string) (map[string]*Level, []string, error) {
	pattern := levelsDir + "/*.tmx"
	matches, err := fs.Glob(fsys, pattern)
	if err != nil {
		return nil, nil, fmt.Errorf("glob %s: %w", pattern, err)
	}
	if len(matches) == 0 {
		return nil, nil, fmt.Errorf("no .tmx files found in %s", levelsDir)
	}

	levels := make(map[string]*Level, len(matches))
	names := make([]string, 0, len(matches))

	for _, path := range matches {
		lvl, err := Load(fsys, path)
		if err != nil {
			return nil, nil, fmt.Errorf("load %s: %w", path, err)
		}
		levels[lvl.Name] = lvl
		names = append(names, lvl.Name)
	}

	sort.Strings(names)
	return levels, names, nil
}
