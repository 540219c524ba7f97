package components

import (
	"github.com/automoto/boxcollide/shared/leveldata"
	"github.com/yohamta/donburi"
)

type LevelData struct {
	Level *leveldata.Level
}

var Level = donburi.NewComponentType[LevelData]()
