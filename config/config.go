package config

// LevelConfig names the TMX layers, tile properties and object groups the
// level loader reads.
type LevelConfig struct {
	LevelsDir string // Directory of .tmx files, relative to the assets root

	// Tile layers scanned for walls. Empty scans every tile layer; when
	// layers disagree the later layer wins.
	WallLayers []string

	WallProperty   string // Integer tileset property: 0 open, 1 full block, 2 inset block
	LightXProperty string // Float tileset property: light offset inside the tile
	LightYProperty string
	SpawnGroup     string // Object group holding player spawn points
	SpawnIndexKey  string // Integer object property ordering spawn points
}

// UsesLayer reports whether the tile layer with this name carries walls.
func (c LevelConfig) UsesLayer(name string) bool {
	if len(c.WallLayers) == 0 {
		return true
	}
	for _, l := range c.WallLayers {
		if l == name {
			return true
		}
	}
	return false
}

// GeometryConfig controls how compiled wall geometry is placed into the
// collision space.
type GeometryConfig struct {
	BoundaryMargin float64 // World units (pixels) the boundary frame extends past the map
	SpaceCellSize  int     // resolv.Space cell size in pixels
}

// Global configuration instances
var Level LevelConfig
var Geometry GeometryConfig

func init() {
	Level = LevelConfig{
		LevelsDir:      "levels",
		WallLayers:     nil,
		WallProperty:   "wall",
		LightXProperty: "lightx",
		LightYProperty: "lighty",
		SpawnGroup:     "PlayerSpawn",
		SpawnIndexKey:  "spawnIndex",
	}

	Geometry = GeometryConfig{
		BoundaryMargin: 100,
		SpaceCellSize:  16,
	}
}
