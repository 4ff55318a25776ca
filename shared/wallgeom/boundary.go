package wallgeom

import (
	"fmt"
	"math"
)

// FrameBodies is the number of bodies BoundaryFrame emits.
const FrameBodies = 4

func checkMargin(margin float64) error {
	if math.IsNaN(margin) || math.IsInf(margin, 0) || margin <= 0 {
		return fmt.Errorf("%w: %v", ErrInvalidMargin, margin)
	}
	return nil
}

// BoundaryFrame returns four static boxes framing the map (0,0)-(width,height)
// out to margin on every side: top, bottom, left, right. Strips overlap at
// the corners so the union is the whole frame with no seams.
func BoundaryFrame(width, height int, margin float64) ([]CollisionBody, error) {
	if err := checkMargin(margin); err != nil {
		return nil, err
	}
	if width < 0 || height < 0 {
		return nil, fmt.Errorf("%w: size %dx%d", ErrMalformedGrid, width, height)
	}

	w, h, m := float64(width), float64(height), margin
	boxes := [FrameBodies][4]float64{
		{-m, h, w + m, h + m}, // top
		{-m, -m, w + m, 0},    // bottom
		{-m, -m, 0, h + m},    // left
		{w, -m, w + m, h + m}, // right
	}

	bodies := make([]CollisionBody, 0, FrameBodies)
	for _, b := range boxes {
		anchor := Vec2{X: b[0], Y: b[1]}
		bodies = append(bodies, CollisionBody{
			Kind:   BodyBoundary,
			Anchor: anchor,
			Shapes: []Shape{boxShape(b[0], b[1], b[2], b[3], anchor, CategoryBoundary)},
		})
	}
	return bodies, nil
}
