package advanced

import "math"

// Build a triangle and derive its circumcircle. This performs no validation:
// collinear vertices make the circumcenter formula divide by zero, leaving
// infinite or NaN coordinates in the result. Use ValidTriangle when the input
// is not already known to be good.
//
// By convention edges[i] joins vertices[i] and vertices[i+1 mod 3]. Nothing
// here checks that; see EdgesMatchVertices.
func NewTriangle(vertices [3]Point, edges [3]Edge) Triangle {
	circumcenter := circumcenterOf(vertices[0], vertices[1], vertices[2])
	return Triangle{
		Vertices:     vertices,
		Edges:        edges,
		circumcenter: circumcenter,
		circumradius: DistanceBetween(circumcenter, vertices[0]),
	}
}

// Build a triangle with the conventional consecutive edges a→b, b→c, c→a.
func TriangleFromVertices(a, b, c Point) Triangle {
	return NewTriangle(
		[3]Point{a, b, c},
		[3]Edge{NewEdge(a, b), NewEdge(b, c), NewEdge(c, a)},
	)
}

// Like NewTriangle, but panics with a KernelError if the vertices are not
// finite, are collinear, or if the edges don't join the vertices in order.
func ValidTriangle(vertices [3]Point, edges [3]Edge) Triangle {
	for i, v := range vertices {
		if !isFinite(v) {
			fatal(ErrNonFinitePoint, "vertex %d is %v", i, v)
		}
	}
	t := NewTriangle(vertices, edges)
	if t.IsDegenerate() {
		fatal(ErrDegenerateTriangle, "vertices %v have signed area %g", vertices, t.SignedArea())
	}
	if !t.EdgesMatchVertices() {
		fatal(ErrMismatchedEdges, "edges %v for vertices %v", edges, vertices)
	}
	return t
}

// Cartesian circumscribed circle formula. See
// https://en.wikipedia.org/wiki/Circumscribed_circle#Cartesian_coordinates
func circumcenterOf(a, b, c Point) Point {
	d := 2 * (a.X*(b.Y-c.Y) + b.X*(c.Y-a.Y) + c.X*(a.Y-b.Y))

	a2 := a.X*a.X + a.Y*a.Y
	b2 := b.X*b.X + b.Y*b.Y
	c2 := c.X*c.X + c.Y*c.Y

	x := a2*(b.Y-c.Y) + b2*(c.Y-a.Y) + c2*(a.Y-b.Y)
	y := a2*(c.X-b.X) + b2*(a.X-c.X) + c2*(b.X-a.X)

	return Point{X: x / d, Y: y / d}
}

func (t Triangle) Circumcenter() Point {
	return t.circumcenter
}

func (t Triangle) Circumradius() float64 {
	return t.circumradius
}

// Whether p lies strictly inside the circumcircle. Points exactly on the circle
// are outside, so a triangulator never has to break ties between cocircular
// points.
func (t Triangle) CircumcircleContains(p Point) bool {
	return DistanceBetween(t.circumcenter, p) < t.circumradius
}

// Counterclockwise triangles have positive area, clockwise ones negative.
func (t Triangle) SignedArea() float64 {
	return orientation(t.Vertices[0], t.Vertices[1], t.Vertices[2]) / 2
}

// A triangle is degenerate when its area is negligible relative to the square
// of its longest edge, so the check means the same thing at any scale. A
// triangle with coincident vertices or a non-finite circumcenter is always
// degenerate.
func (t Triangle) IsDegenerate() bool {
	if !isFinite(t.circumcenter) {
		return true
	}
	longest := 0.0
	for i, v := range t.Vertices {
		longest = math.Max(longest, DistanceBetween(v, t.Vertices[CircularIndex(i+1, 3)]))
	}
	if longest == 0 {
		return true
	}
	return math.Abs(t.SignedArea())/(longest*longest) < Tolerance
}

func (t Triangle) EdgesMatchVertices() bool {
	for i, edge := range t.Edges {
		if !edge.Connects(t.Vertices[i], t.Vertices[CircularIndex(i+1, 3)]) {
			return false
		}
	}
	return true
}

// Whether p lies strictly inside the triangle. Works for either winding.
func (t Triangle) Contains(p Point) bool {
	sign := 1.0
	if t.SignedArea() < 0 {
		sign = -1
	}
	for i := range t.Vertices {
		a := t.Vertices[i]
		b := t.Vertices[CircularIndex(i+1, 3)]
		if sign*orientation(a, b, p) <= 0 {
			return false
		}
	}
	return true
}
