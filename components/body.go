package components

import (
	"github.com/automoto/doomerang-walls/shared/wallgeom"
	"github.com/yohamta/donburi"
)

// BodyData links an entity to its compiled collision body.
type BodyData struct {
	Body  *wallgeom.CollisionBody
	Index int // Position in the level's Geometry.Bodies
}

var Body = donburi.NewComponentType[BodyData]()
