package leveldata

import (
	"errors"
	"fmt"
)

var (
	// ErrOutOfBounds is returned for cells outside the grid.
	ErrOutOfBounds = errors.New("cell out of bounds")
	ErrInvalidSize = errors.New("invalid grid size")
)

// TileGrid stores one WallKind per cell, bottom row first.
type TileGrid struct {
	Width  int
	Height int
	kinds  []WallKind
}

// NewTileGrid returns an all-open grid. Negative sizes are rejected.
func NewTileGrid(width, height int) (*TileGrid, error) {
	if width < 0 || height < 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidSize, width, height)
	}
	return &TileGrid{
		Width:  width,
		Height: height,
		kinds:  make([]WallKind, width*height),
	}, nil
}

func (g *TileGrid) index(x, y int) int {
	return y*g.Width + x
}

func (g *TileGrid) inBounds(x, y int) bool {
	return x >= 0 && x < g.Width && y >= 0 && y < g.Height
}

// Kind returns the wall kind of cell (x, y).
func (g *TileGrid) Kind(x, y int) (WallKind, error) {
	if !g.inBounds(x, y) {
		return Open, fmt.Errorf("%w: (%d,%d) in %dx%d grid", ErrOutOfBounds, x, y, g.Width, g.Height)
	}
	i := g.index(x, y)
	if i >= len(g.kinds) {
		return Open, fmt.Errorf("%w: (%d,%d) past %d stored cells", ErrOutOfBounds, x, y, len(g.kinds))
	}
	return g.kinds[i], nil
}

// Set stores the wall kind of cell (x, y).
func (g *TileGrid) Set(x, y int, kind WallKind) error {
	if !g.inBounds(x, y) {
		return fmt.Errorf("%w: (%d,%d) in %dx%d grid", ErrOutOfBounds, x, y, g.Width, g.Height)
	}
	g.kinds[g.index(x, y)] = kind
	return nil
}

// Size and IsWall let the grid feed the wall geometry compiler directly.
func (g *TileGrid) Size() (int, int) {
	return g.Width, g.Height
}

func (g *TileGrid) IsWall(x, y int) (bool, error) {
	k, err := g.Kind(x, y)
	if err != nil {
		return false, err
	}
	return k > Open, nil
}

// WallCells counts cells that are not open.
func (g *TileGrid) WallCells() int {
	n := 0
	for _, k := range g.kinds {
		if k > Open {
			n++
		}
	}
	return n
}
