package wallgeom

// runState is the row scanner's only state: whether a run is open and the
// column it opened at.
type runState struct {
	inRun    bool
	runStart int
}

// step feeds cell x of row y to the scanner and returns the run it closes,
// if any.
func (s *runState) step(x, y int, wall bool) (Rect, bool) {
	switch {
	case wall && !s.inRun:
		s.inRun = true
		s.runStart = x
	case !wall && s.inRun:
		s.inRun = false
		return runRect(s.runStart, x, y), true
	}
	return Rect{}, false
}

// finish closes a run still open at the end of a row of the given width.
func (s *runState) finish(width, y int) (Rect, bool) {
	if !s.inRun {
		return Rect{}, false
	}
	s.inRun = false
	return runRect(s.runStart, width, y), true
}

func runRect(x0, x1, y int) Rect {
	return Rect{Start: Point{X: x0, Y: y}, End: Point{X: x1, Y: y + 1}}
}

// ScanRow returns the maximal horizontal runs of wall cells in row y, left to
// right, each one cell tall.
func ScanRow(g Grid, y int) ([]Rect, error) {
	w, _, err := gridSize(g)
	if err != nil {
		return nil, err
	}
	return scanRow(g, w, y, nil)
}

func scanRow(g Grid, width, y int, out []Rect) ([]Rect, error) {
	var s runState
	for x := 0; x < width; x++ {
		wall, err := sample(g, x, y)
		if err != nil {
			return nil, err
		}
		if r, ok := s.step(x, y, wall); ok {
			out = append(out, r)
		}
	}
	if r, ok := s.finish(width, y); ok {
		out = append(out, r)
	}
	return out, nil
}

// ExtractRuns scans every row bottom to top and returns all runs in row-major
// order.
func ExtractRuns(g Grid) ([]Rect, error) {
	w, h, err := gridSize(g)
	if err != nil {
		return nil, err
	}
	var runs []Rect
	for y := 0; y < h; y++ {
		if runs, err = scanRow(g, w, y, runs); err != nil {
			return nil, err
		}
	}
	return runs, nil
}
