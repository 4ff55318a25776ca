package wallgeom

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTouches(t *testing.T) {
	base := rect(2, 0, 5, 2)
	for _, tc := range []struct {
		name string
		up   Rect
		want bool
	}{
		{name: "overlapping above", up: rect(4, 2, 8, 3), want: true},
		{name: "contained above", up: rect(3, 2, 4, 3), want: true},
		{name: "corner only on the right", up: rect(5, 2, 6, 3), want: false},
		{name: "corner only on the left", up: rect(0, 2, 2, 3), want: false},
		{name: "gap above", up: rect(2, 3, 5, 4), want: false},
		{name: "same rows", up: rect(6, 0, 7, 2), want: false},
	} {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, Touches(base, tc.up))
		})
	}

	require.False(t, Touches(rect(4, 2, 8, 3), base), "direction matters")
}

func TestBuildAdjacency(t *testing.T) {
	bottom := rect(0, 0, 3, 1)
	left := rect(0, 1, 1, 3)
	right := rect(2, 1, 3, 3)
	lone := rect(5, 5, 6, 6)

	adj := BuildAdjacency([]Rect{lone, left, bottom, right})

	require.ElementsMatch(t, []Rect{left, right}, adj[bottom])
	require.Equal(t, []Rect{bottom}, adj[left])
	require.Equal(t, []Rect{bottom}, adj[right])
	require.Contains(t, adj, lone)
	require.Empty(t, adj[lone])
}

func TestBuildAdjacency_Symmetric(t *testing.T) {
	rects := mergeGrid(t,
		"#.##.#",
		"######",
		"##..##",
		".####.",
	)
	adj := BuildAdjacency(rects)
	require.Len(t, adj, len(rects))
	for r, ns := range adj {
		for _, n := range ns {
			require.Contains(t, adj[n], r, "%v -> %v", r, n)
		}
	}
}
