package wallgeom

import (
	"fmt"
	"math/rand"
)

// textGrid is a grid written as top-down rows: '#' is a wall, anything else
// is open.
type textGrid struct {
	w, h  int
	cells []bool // bottom-up, row-major
}

func gridOf(rows ...string) *textGrid {
	g := &textGrid{h: len(rows)}
	if len(rows) > 0 {
		g.w = len(rows[0])
	}
	g.cells = make([]bool, g.w*g.h)
	for i, row := range rows {
		y := g.h - i - 1
		for x, c := range row {
			g.cells[y*g.w+x] = c == '#'
		}
	}
	return g
}

func randomGrid(rng *rand.Rand, w, h int, density float64) *textGrid {
	g := &textGrid{w: w, h: h, cells: make([]bool, w*h)}
	for i := range g.cells {
		g.cells[i] = rng.Float64() < density
	}
	return g
}

func (g *textGrid) Size() (int, int) { return g.w, g.h }

func (g *textGrid) IsWall(x, y int) (bool, error) {
	if x < 0 || x >= g.w || y < 0 || y >= g.h {
		return false, fmt.Errorf("cell (%d,%d) outside %dx%d", x, y, g.w, g.h)
	}
	return g.cells[y*g.w+x], nil
}

// brokenGrid claims a size but cannot answer for some cells.
type brokenGrid struct {
	w, h  int
	badAt Point
}

func (g brokenGrid) Size() (int, int) { return g.w, g.h }

func (g brokenGrid) IsWall(x, y int) (bool, error) {
	if x == g.badAt.X && y == g.badAt.Y {
		return false, fmt.Errorf("no tile data")
	}
	return true, nil
}

// rasterize counts how many rects cover each cell.
func rasterize(w, h int, rects []Rect) []int {
	counts := make([]int, w*h)
	for _, r := range rects {
		for y := r.Start.Y; y < r.End.Y; y++ {
			for x := r.Start.X; x < r.End.X; x++ {
				counts[y*w+x]++
			}
		}
	}
	return counts
}

func rect(x0, y0, x1, y1 int) Rect {
	return Rect{Start: Point{X: x0, Y: y0}, End: Point{X: x1, Y: y1}}
}
