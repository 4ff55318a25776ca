package wallgeom

// DefaultMargin is the reference boundary margin of 100 world units. The
// compiler measures margins in the grid's own units, so the default only
// means 100 world units when one grid unit is one world unit. Grids in tile
// units should pass worldMargin / tileSize instead.
const DefaultMargin = 100.0

// Options tunes a compilation.
type Options struct {
	// Margin is how far the boundary frame extends past the map on every
	// side, in the same units as the grid. Zero means DefaultMargin.
	Margin float64
}

// Geometry is the complete output of one compilation. It is not modified
// after Compile returns.
type Geometry struct {
	Width, Height int
	WallCells     int

	// Runs are the one-cell-tall horizontal runs, row-major.
	Runs []Rect
	// Rects are the vertically merged rects, top-down.
	Rects []Rect
	Blobs []Blob

	// Bodies holds one body per blob, in blob order, followed by the
	// FrameBodies boundary bodies.
	Bodies []CollisionBody
}

// BlobBodies returns the bodies built from blobs.
func (g *Geometry) BlobBodies() []CollisionBody {
	return g.Bodies[:len(g.Blobs)]
}

// BoundaryBodies returns the frame bodies.
func (g *Geometry) BoundaryBodies() []CollisionBody {
	return g.Bodies[len(g.Blobs):]
}

// Stats summarises a compilation.
type Stats struct {
	WallCells int `json:"wall_cells"`
	Runs      int `json:"runs"`
	Rects     int `json:"rects"`
	Blobs     int `json:"blobs"`
	Shapes    int `json:"shapes"`
	Bodies    int `json:"bodies"`
}

func (g *Geometry) Stats() Stats {
	s := Stats{
		WallCells: g.WallCells,
		Runs:      len(g.Runs),
		Rects:     len(g.Rects),
		Blobs:     len(g.Blobs),
		Bodies:    len(g.Bodies),
	}
	for _, b := range g.Bodies {
		s.Shapes += len(b.Shapes)
	}
	return s
}

// Compile runs the whole pipeline over g: row runs, vertical merge, blobs,
// bodies and the boundary frame. Any failure aborts with no partial output.
func Compile(g Grid, opts Options) (*Geometry, error) {
	margin := opts.Margin
	if margin == 0 {
		margin = DefaultMargin
	}
	if err := checkMargin(margin); err != nil {
		return nil, err
	}

	w, h, err := gridSize(g)
	if err != nil {
		return nil, err
	}

	runs, err := ExtractRuns(g)
	if err != nil {
		return nil, err
	}
	rects := MergeVertical(runs)
	blobs := BuildBlobs(rects)

	frame, err := BoundaryFrame(w, h, margin)
	if err != nil {
		return nil, err
	}

	geo := &Geometry{
		Width:  w,
		Height: h,
		Runs:   runs,
		Rects:  rects,
		Blobs:  blobs,
		Bodies: append(CompileBodies(blobs), frame...),
	}
	for _, r := range runs {
		geo.WallCells += r.Area()
	}
	return geo, nil
}
