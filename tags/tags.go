package tags

import "github.com/yohamta/donburi"

var (
	Wall     = donburi.NewTag().SetName("Wall")
	Boundary = donburi.NewTag().SetName("Boundary")
)

// Resolv tags for physics collision
const (
	ResolvSolid    = "solid"
	ResolvWall     = "wall"
	ResolvBoundary = "boundary"
)
