// Package assets embeds the level files shipped with the game.
package assets

import (
	"embed"
	"fmt"
	"io/fs"

	"github.com/automoto/boxcollide/shared/leveldata"
)

const (
	LevelsDir = "levels"
	DemoLevel = "demo"
)

//go:embed all:levels
var assetFS embed.FS

// FS exposes the embedded files, rooted above the levels directory.
func FS() fs.FS {
	return assetFS
}

// LoadLevel loads one embedded level by stem name.
func LoadLevel(name string) (*leveldata.Level, error) {
	lvl, err := leveldata.Load(assetFS, fmt.Sprintf("%s/%s.tmx", LevelsDir, name))
	if err != nil {
		return nil, fmt.Errorf("level %q: %w", name, err)
	}
	return lvl, nil
}

// LoadLevels loads every embedded level.
func LoadLevels() (map[string]*leveldata.Level, []string, error) {
	return leveldata.LoadAll(assetFS, LevelsDir)
}
