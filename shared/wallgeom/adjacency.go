package wallgeom

import "sort"

// Touches reports whether r2 sits directly on top of r with overlapping
// x-spans. Rects in the same row are never adjacent walls: they would have
// been one run.
func Touches(r, r2 Rect) bool {
	if r.End.Y != r2.Start.Y {
		return false
	}
	return !(r.End.X <= r2.Start.X || r2.End.X <= r.Start.X)
}

// Adjacency lists, for each rect, the rects touching it from above or below.
// It is symmetric.
type Adjacency map[Rect][]Rect

// BuildAdjacency computes the touching relation over rects. Neighbour lists
// come out in a fixed order for a fixed input set.
func BuildAdjacency(rects []Rect) Adjacency {
	sorted := make([]Rect, len(rects))
	copy(sorted, rects)
	sortTopDown(sorted)

	adj := make(Adjacency, len(sorted))
	for _, r := range sorted {
		if _, ok := adj[r]; !ok {
			adj[r] = nil
		}

		// Everything resting on r starts at r.End.Y, which is one contiguous
		// band of the descending order.
		i := sort.Search(len(sorted), func(i int) bool {
			return sorted[i].Start.Y <= r.End.Y
		})
		for ; i < len(sorted) && sorted[i].Start.Y == r.End.Y; i++ {
			up := sorted[i]
			if Touches(r, up) {
				adj[r] = append(adj[r], up)
				adj[up] = append(adj[up], r)
			}
		}
	}
	return adj
}
