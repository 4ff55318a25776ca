package components

import (
	"github.com/automoto/doomerang-walls/shared/wallgeom"
	"github.com/yohamta/donburi"
)

type LevelData struct {
	Name     string
	Width    int // tiles
	Height   int // tiles
	Geometry *wallgeom.Geometry
}

var Level = donburi.NewComponentType[LevelData]()
