package wallgeom

import "errors"

var (
	// ErrMalformedGrid means the grid reported impossible dimensions or
	// failed to answer for a cell inside its own bounds.
	ErrMalformedGrid = errors.New("wallgeom: malformed grid")

	// ErrInvalidMargin rejects boundary margins that are NaN, infinite or not
	// positive.
	ErrInvalidMargin = errors.New("wallgeom: invalid boundary margin")
)
