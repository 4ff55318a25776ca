package wallgeom

// Blob is a maximal set of rects connected through Touches. Rects are ordered
// by ascending Start.Y, then ascending Start.X; the first one is the anchor.
type Blob struct {
	Rects []Rect
}

// Anchor returns the rect the blob's body is positioned at.
func (b Blob) Anchor() Rect {
	return b.Rects[0]
}

// BuildBlobs partitions rects into connected components. Blobs are returned
// in the order of their anchors.
func BuildBlobs(rects []Rect) []Blob {
	adj := BuildAdjacency(rects)

	seeds := make([]Rect, len(rects))
	copy(seeds, rects)
	sortBottomUp(seeds)

	visited := make(map[Rect]bool, len(seeds))
	var blobs []Blob
	for _, seed := range seeds {
		if visited[seed] {
			continue
		}
		visited[seed] = true

		var members []Rect
		queue := []Rect{seed}
		for len(queue) > 0 {
			r := queue[0]
			queue = queue[1:]
			members = append(members, r)
			for _, n := range adj[r] {
				if !visited[n] {
					visited[n] = true
					queue = append(queue, n)
				}
			}
		}

		sortBottomUp(members)
		blobs = append(blobs, Blob{Rects: members})
	}
	return blobs
}
