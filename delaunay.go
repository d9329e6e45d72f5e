// Geometric predicates for planar Delaunay triangulation.
//
// This package provides the primitives an incremental (Bowyer-Watson)
// triangulator is built on: points, edges, and triangles with their
// circumscribed circles, the strict circumcircle containment test, and the
// super-triangle used to seed the triangulation.
//
// All arithmetic is ordinary float64 arithmetic. The functions here validate
// their input and report problems as errors. The advanced package exposes the
// same operations without validation for use in hot loops.
package delaunay

import "github.com/osuushi/delaunay/advanced"

type Point = advanced.Point
type Edge = advanced.Edge
type Triangle = advanced.Triangle

var (
	ErrDegenerateTriangle = advanced.ErrDegenerateTriangle
	ErrMismatchedEdges    = advanced.ErrMismatchedEdges
	ErrEmptyInput         = advanced.ErrEmptyInput
	ErrNonFinitePoint     = advanced.ErrNonFinitePoint
)

func NewPoint(x, y float64) Point {
	return advanced.NewPoint(x, y)
}

func NewEdge(v1, v2 Point) Edge {
	return advanced.NewEdge(v1, v2)
}

func DistanceBetween(a, b Point) float64 {
	return advanced.DistanceBetween(a, b)
}

// Build a triangle from three vertices and the three edges joining them in
// order (edges[i] joins vertices[i] and vertices[(i+1)%3]).
//
// Collinear vertices have no circumcircle, and are reported as
// ErrDegenerateTriangle. NaN or infinite coordinates are reported as
// ErrNonFinitePoint. Edges that don't follow the vertices are reported as
// ErrMismatchedEdges. Use errors.Is to test for either.
func NewTriangle(vertices [3]Point, edges [3]Edge) (result *Triangle, err error) {
	defer func() {
		recoveredErr := advanced.HandlePanicRecover(recover())
		if recoveredErr != nil {
			result = nil
			err = recoveredErr
		}
	}()
	triangle := advanced.ValidTriangle(vertices, edges)
	return &triangle, nil
}

// Build a triangle that strictly contains all of the given points. This is the
// seed triangle for an incremental triangulation. At least one point is
// required; otherwise ErrEmptyInput is returned. Points with NaN or infinite
// coordinates are reported as ErrNonFinitePoint.
func EnclosingTriangle(points ...Point) (result *Triangle, err error) {
	defer func() {
		recoveredErr := advanced.HandlePanicRecover(recover())
		if recoveredErr != nil {
			result = nil
			err = recoveredErr
		}
	}()
	triangle := advanced.ValidEnclosingTriangle(points)
	return &triangle, nil
}
