package wallgeom

// Vec2 is a position in tile-grid units.
type Vec2 struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

func (v Vec2) Add(o Vec2) Vec2 { return Vec2{X: v.X + o.X, Y: v.Y + o.Y} }
func (v Vec2) Sub(o Vec2) Vec2 { return Vec2{X: v.X - o.X, Y: v.Y - o.Y} }

// Category is a collision category bit.
type Category uint32

const (
	CategoryWall Category = 1 << iota
	CategoryBoundary
)

// BodyKind tells blob bodies from the boundary frame.
type BodyKind int

const (
	BodyBlob BodyKind = iota
	BodyBoundary
)

func (k BodyKind) String() string {
	switch k {
	case BodyBlob:
		return "blob"
	case BodyBoundary:
		return "boundary"
	}
	return "unknown"
}

// MarshalText encodes the kind by name.
func (k BodyKind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// Shape is a convex quad in body-local coordinates, wound
// (x0,y0) (x1,y0) (x1,y1) (x0,y1).
type Shape struct {
	Verts    [4]Vec2  `json:"verts"`
	Category Category `json:"category"`
}

// Bounds returns the local bounding box of the shape.
func (s Shape) Bounds() (min, max Vec2) {
	min, max = s.Verts[0], s.Verts[0]
	for _, v := range s.Verts[1:] {
		if v.X < min.X {
			min.X = v.X
		}
		if v.Y < min.Y {
			min.Y = v.Y
		}
		if v.X > max.X {
			max.X = v.X
		}
		if v.Y > max.Y {
			max.Y = v.Y
		}
	}
	return min, max
}

// CollisionBody is one static body: an anchor plus shapes relative to it.
type CollisionBody struct {
	Kind   BodyKind `json:"kind"`
	Anchor Vec2     `json:"anchor"`
	Shapes []Shape  `json:"shapes"`
}

// WorldBounds returns the bounding box of shape i in grid coordinates.
func (b CollisionBody) WorldBounds(i int) (min, max Vec2) {
	min, max = b.Shapes[i].Bounds()
	return min.Add(b.Anchor), max.Add(b.Anchor)
}

func boxShape(x0, y0, x1, y1 float64, anchor Vec2, cat Category) Shape {
	return Shape{
		Verts: [4]Vec2{
			Vec2{X: x0, Y: y0}.Sub(anchor),
			Vec2{X: x1, Y: y0}.Sub(anchor),
			Vec2{X: x1, Y: y1}.Sub(anchor),
			Vec2{X: x0, Y: y1}.Sub(anchor),
		},
		Category: cat,
	}
}

func rectShape(r Rect, anchor Vec2) Shape {
	return boxShape(
		float64(r.Start.X), float64(r.Start.Y),
		float64(r.End.X), float64(r.End.Y),
		anchor, CategoryWall,
	)
}

// CompileBodies emits one body per blob, anchored at the start corner of the
// blob's first rect, with one wall shape per member rect.
func CompileBodies(blobs []Blob) []CollisionBody {
	bodies := make([]CollisionBody, 0, len(blobs))
	for _, b := range blobs {
		a := b.Anchor().Start
		anchor := Vec2{X: float64(a.X), Y: float64(a.Y)}
		shapes := make([]Shape, 0, len(b.Rects))
		for _, r := range b.Rects {
			shapes = append(shapes, rectShape(r, anchor))
		}
		bodies = append(bodies, CollisionBody{
			Kind:   BodyBlob,
			Anchor: anchor,
			Shapes: shapes,
		})
	}
	return bodies
}
