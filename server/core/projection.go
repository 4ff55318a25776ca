package core

import (
	"math"

	"github.com/automoto/doomerang-walls/shared/wallgeom"
)

// projection maps tile-grid coordinates (y up, origin at the map's
// bottom-left corner) to space pixels (y down, origin at the top-left
// corner of the boundary frame).
type projection struct {
	tileW, tileH float64
	margin       float64 // tiles
	height       int     // tiles
}

// box returns the pixel rectangle covering the grid-space box min-max.
func (p projection) box(min, max wallgeom.Vec2) (x, y, w, h float64) {
	x = (min.X + p.margin) * p.tileW
	y = (float64(p.height) + p.margin - max.Y) * p.tileH
	w = (max.X - min.X) * p.tileW
	h = (max.Y - min.Y) * p.tileH
	return x, y, w, h
}

// mapPixel converts a point authored in map pixels (y down from the map's
// top edge) to space pixels.
func (p projection) mapPixel(x, y float64) (float64, float64) {
	return x + p.margin*p.tileW, y + p.margin*p.tileH
}

// spaceSize is the pixel size of the map plus the frame on both sides.
func (p projection) spaceSize(width int) (int, int) {
	w := math.Ceil((float64(width) + 2*p.margin) * p.tileW)
	h := math.Ceil((float64(p.height) + 2*p.margin) * p.tileH)
	return int(w), int(h)
}
