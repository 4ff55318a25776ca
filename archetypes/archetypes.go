package archetypes

import (
	"github.com/automoto/doomerang-walls/components"
	"github.com/automoto/doomerang-walls/tags"
	"github.com/yohamta/donburi"
)

var (
	Wall = newArchetype(
		tags.Wall,
		components.Body,
		components.Object,
	)
	Boundary = newArchetype(
		tags.Boundary,
		components.Body,
		components.Object,
	)
	Space = newArchetype(
		components.Space,
	)
	Level = newArchetype(
		components.Level,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(world donburi.World, cs ...donburi.IComponentType) *donburi.Entry {
	all := make([]donburi.IComponentType, 0, len(a.components)+len(cs))
	all = append(append(all, a.components...), cs...)
	return world.Entry(world.Create(all...))
}
