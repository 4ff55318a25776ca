package core

import (
	"fmt"
	"log"
	"math"
	"os"

	"github.com/automoto/doomerang-walls/archetypes"
	"github.com/automoto/doomerang-walls/components"
	"github.com/automoto/doomerang-walls/config"
	"github.com/automoto/doomerang-walls/shared/leveldata"
	"github.com/automoto/doomerang-walls/shared/wallgeom"
	"github.com/automoto/doomerang-walls/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// ServerLevel holds a level's compiled wall geometry, the collision space
// built from it and the entities owning each body.
type ServerLevel struct {
	Name     string
	Data     *leveldata.LevelData
	Geometry *wallgeom.Geometry
	Space    *resolv.Space
	World    donburi.World

	proj projection
}

// NewServerLevel compiles the level's wall grid and inserts every body into
// a fresh resolv.Space. The space is only published once compilation has
// fully succeeded.
func NewServerLevel(data *leveldata.LevelData, geo config.GeometryConfig) (*ServerLevel, error) {
	if data.TileWidth <= 0 || data.TileHeight <= 0 {
		return nil, fmt.Errorf("level %s: invalid tile size %dx%d", data.Name, data.TileWidth, data.TileHeight)
	}
	if !(geo.BoundaryMargin > 0) || math.IsInf(geo.BoundaryMargin, 1) {
		return nil, fmt.Errorf("level %s: boundary margin %v px: %w", data.Name, geo.BoundaryMargin, wallgeom.ErrInvalidMargin)
	}
	if geo.SpaceCellSize <= 0 {
		return nil, fmt.Errorf("level %s: invalid space cell size %d", data.Name, geo.SpaceCellSize)
	}

	// The margin is given in pixels; the smaller tile side keeps it at least
	// that wide on both axes.
	tile := float64(min(data.TileWidth, data.TileHeight))
	margin := geo.BoundaryMargin / tile

	geometry, err := wallgeom.Compile(data.Grid, wallgeom.Options{Margin: margin})
	if err != nil {
		return nil, fmt.Errorf("level %s: %w", data.Name, err)
	}

	proj := projection{
		tileW:  float64(data.TileWidth),
		tileH:  float64(data.TileHeight),
		margin: margin,
		height: geometry.Height,
	}

	world := donburi.NewWorld()

	spaceEntry := archetypes.Space.Spawn(world)
	spaceW, spaceH := proj.spaceSize(geometry.Width)
	components.Space.Set(spaceEntry, resolv.NewSpace(spaceW, spaceH, geo.SpaceCellSize, geo.SpaceCellSize))
	space := components.Space.Get(spaceEntry)

	levelEntry := archetypes.Level.Spawn(world)
	components.Level.SetValue(levelEntry, components.LevelData{
		Name:     data.Name,
		Width:    geometry.Width,
		Height:   geometry.Height,
		Geometry: geometry,
	})

	for i := range geometry.Bodies {
		addBody(world, space, proj, geometry, i)
	}

	stats := geometry.Stats()
	log.Printf("[level] loaded %s: %d wall cells, %d runs, %d rects, %d blobs, %d bodies, %dx%d map",
		data.Name, stats.WallCells, stats.Runs, stats.Rects, stats.Blobs, stats.Bodies,
		data.MapWidth, data.MapHeight)

	return &ServerLevel{
		Name:     data.Name,
		Data:     data,
		Geometry: geometry,
		Space:    space,
		World:    world,
		proj:     proj,
	}, nil
}

// addBody spawns the entity for body i and one static resolv object per
// shape. resolv objects carry a single shape, so a body becomes several
// objects sharing the entity as their Data.
func addBody(world donburi.World, space *resolv.Space, proj projection, geometry *wallgeom.Geometry, i int) {
	body := &geometry.Bodies[i]

	var entry *donburi.Entry
	objTags := []string{tags.ResolvSolid}
	switch body.Kind {
	case wallgeom.BodyBoundary:
		entry = archetypes.Boundary.Spawn(world)
		objTags = append(objTags, tags.ResolvBoundary)
	default:
		entry = archetypes.Wall.Spawn(world)
		objTags = append(objTags, tags.ResolvWall)
	}

	objects := make([]*resolv.Object, 0, len(body.Shapes))
	for s := range body.Shapes {
		x, y, w, h := proj.box(body.WorldBounds(s))
		obj := resolv.NewObject(x, y, w, h, objTags...)
		obj.SetShape(resolv.NewRectangle(0, 0, w, h))
		obj.Data = entry // Link for O(1) lookup
		space.Add(obj)
		objects = append(objects, obj)
	}

	components.Body.SetValue(entry, components.BodyData{Body: body, Index: i})
	components.Object.SetValue(entry, components.ObjectData{Objects: objects})
}

// SpawnPosition returns spawn point i in space pixels.
func (l *ServerLevel) SpawnPosition(i int) (x, y float64, ok bool) {
	if i < 0 || i >= len(l.Data.SpawnPoints) {
		return 0, 0, false
	}
	sp := l.Data.SpawnPoints[i]
	x, y = l.proj.mapPixel(sp.X, sp.Y)
	return x, y, true
}

// BodyAt returns the compiled body owning a resolv object from this level's
// space.
func BodyAt(obj *resolv.Object) (*wallgeom.CollisionBody, bool) {
	entry, ok := obj.Data.(*donburi.Entry)
	if !ok || !entry.Valid() || !entry.HasComponent(components.Body) {
		return nil, false
	}
	return components.Body.Get(entry).Body, true
}

// LoadAllServerLevels loads all .tmx levels from the given assets directory,
// returning a map of ServerLevel keyed by stem name plus a sorted name list.
func LoadAllServerLevels(assetsDir string, lc config.LevelConfig, gc config.GeometryConfig) (map[string]*ServerLevel, []string, error) {
	dataMap, names, err := leveldata.LoadAllLevels(os.DirFS(assetsDir), lc)
	if err != nil {
		return nil, nil, fmt.Errorf("load all levels: %w", err)
	}

	levels := make(map[string]*ServerLevel, len(names))
	for _, name := range names {
		level, err := NewServerLevel(dataMap[name], gc)
		if err != nil {
			return nil, nil, fmt.Errorf("build level: %w", err)
		}
		levels[name] = level
	}

	return levels, names, nil
}
