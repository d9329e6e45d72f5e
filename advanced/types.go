package advanced

// Every geometric value here is a plain value. Edges and triangles hold copies
// of their points, so nothing aliases and nothing needs to be cloned before it
// is handed to another triangle.

type Point struct {
	X float64
	Y float64
}

func NewPoint(x, y float64) Point {
	return Point{X: x, Y: y}
}

// An edge keeps the order its endpoints were given in, but geometric checks
// treat it as undirected.
type Edge struct {
	V1 Point
	V2 Point
}

func NewEdge(v1, v2 Point) Edge {
	return Edge{V1: v1, V2: v2}
}

// Whether the edge joins a and b, in either direction.
func (e Edge) Connects(a, b Point) bool {
	return (e.V1 == a && e.V2 == b) || (e.V1 == b && e.V2 == a)
}

// The circumcenter and circumradius are derived when the triangle is built and
// can only be read afterwards. Build triangles with NewTriangle (or one of the
// helpers wrapping it); a zero Triangle has no meaningful circumcircle.
type Triangle struct {
	Vertices [3]Point
	Edges    [3]Edge

	circumcenter Point
	circumradius float64
}
