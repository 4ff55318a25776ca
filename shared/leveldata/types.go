// Package leveldata provides TMX level parsing shared between client and server.
// It has no dependencies on ebitengine, donburi, or resolv; pure data only.
package leveldata

// WallKind is the value of a tile's wall property. Anything above Open is
// impassable; the exact kind only matters to the lighting code.
type WallKind int

const (
	Open       WallKind = 0
	FullBlock  WallKind = 1
	InsetBlock WallKind = 2 // Diagonal/decorative block inset from the cell edges
)

// Cell addresses a tile in grid units, row 0 at the bottom.
type Cell struct {
	X, Y int
}

// LevelData holds everything collision and lighting need from a TMX level.
type LevelData struct {
	Name string
	Grid *TileGrid

	// ShadowCasters maps every wall cell to its kind.
	ShadowCasters map[Cell]WallKind
	Lights        []Light
	SpawnPoints   []SpawnPoint

	TileWidth  int
	TileHeight int
	MapWidth   int // pixels
	MapHeight  int // pixels
}

// Light is a light source placed by a light tile, in grid units (y up).
type Light struct {
	X, Y float64
}

// SpawnPoint represents a player spawn location, in map pixels as authored
// in Tiled (y down from the top of the map).
type SpawnPoint struct {
	X, Y  float64
	Index int
}
