// Package wallgeom compiles a grid of wall cells into static collision
// geometry: horizontal runs merged into tall rectangles, grouped into
// connected blobs, one body per blob, plus a frame of four boxes around the
// map. It knows nothing about any physics engine; callers adapt the bodies.
//
// All coordinates are tile-grid units with row 0 at the bottom of the map.
package wallgeom

import (
	"fmt"
	"sort"
)

// Point is a cell corner in tile-grid units.
type Point struct {
	X, Y int
}

// Rect covers the cells [Start.X, End.X) x [Start.Y, End.Y). It is a plain
// value and is used directly as a map key.
type Rect struct {
	Start, End Point
}

func (r Rect) Width() int { return r.End.X - r.Start.X }
func (r Rect) Height() int { return r.End.Y - r.Start.Y }
func (r Rect) Area() int { return r.Width() * r.Height() }

func (r Rect) String() string {
	return fmt.Sprintf("(%d,%d)-(%d,%d)", r.Start.X, r.Start.Y, r.End.X, r.End.Y)
}

// sortTopDown orders rects by descending Start.Y, then ascending Start.X.
func sortTopDown(rects []Rect) {
	sort.Slice(rects, func(i, j int) bool {
		a, b := rects[i], rects[j]
		if a.Start.Y != b.Start.Y {
			return a.Start.Y > b.Start.Y
		}
		return a.Start.X < b.Start.X
	})
}

// sortBottomUp orders rects by ascending Start.Y, then ascending Start.X.
func sortBottomUp(rects []Rect) {
	sort.Slice(rects, func(i, j int) bool {
		a, b := rects[i], rects[j]
		if a.Start.Y != b.Start.Y {
			return a.Start.Y < b.Start.Y
		}
		return a.Start.X < b.Start.X
	})
}
