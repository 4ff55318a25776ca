package wallgeom

import "fmt"

// Grid is the wall sampler the compiler reads. Row 0 is the bottom row.
type Grid interface {
	Size() (width, height int)
	// IsWall reports whether cell (x, y) is impassable. It must return an
	// error rather than guess for cells it cannot answer for.
	IsWall(x, y int) (bool, error)
}

func gridSize(g Grid) (int, int, error) {
	w, h := g.Size()
	if w < 0 || h < 0 {
		return 0, 0, fmt.Errorf("%w: size %dx%d", ErrMalformedGrid, w, h)
	}
	return w, h, nil
}

func sample(g Grid, x, y int) (bool, error) {
	wall, err := g.IsWall(x, y)
	if err != nil {
		return false, fmt.Errorf("%w: cell (%d,%d): %w", ErrMalformedGrid, x, y, err)
	}
	return wall, nil
}
