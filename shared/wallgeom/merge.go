package wallgeom

// spanKey finds a rect by the row it starts on and its x-span.
type spanKey struct {
	x0, x1, y0 int
}

func keyOf(r Rect) spanKey {
	return spanKey{x0: r.Start.X, x1: r.End.X, y0: r.Start.Y}
}

// MergeVertical stacks rects with identical x-spans that sit directly on top
// of each other into single taller rects. Each input rect ends up in exactly
// one output rect. The result is ordered by descending Start.Y, then
// ascending Start.X.
func MergeVertical(runs []Rect) []Rect {
	remaining := make(map[spanKey]Rect, len(runs))
	for _, r := range runs {
		remaining[keyOf(r)] = r
	}

	// Sorted top-down, so popping from the end walks rows bottom-up and each
	// rect only ever grows into rects that are still unclaimed.
	stack := make([]Rect, len(runs))
	copy(stack, runs)
	sortTopDown(stack)

	merged := make([]Rect, 0, len(runs))
	for len(stack) > 0 {
		r := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		k := keyOf(r)
		if cur, ok := remaining[k]; !ok || cur != r {
			continue
		}
		delete(remaining, k)

		for {
			above := spanKey{x0: r.Start.X, x1: r.End.X, y0: r.End.Y}
			next, ok := remaining[above]
			if !ok {
				break
			}
			delete(remaining, above)
			r.End.Y = next.End.Y
		}
		merged = append(merged, r)
	}

	sortTopDown(merged)
	return merged
}
