package advanced

const (
	// Distance the bounding box is pushed out before the super-triangle is
	// built. Points on the raw box would otherwise land on a triangle edge.
	EnclosingPadding = 1.0
	// How far past the padded box the right angle's legs extend, as a multiple
	// of the box's width and height.
	EnclosingStretch = 2.0
)

// Build a super-triangle that strictly contains every point, for seeding an
// incremental (Bowyer-Watson) triangulation.
//
// The triangle is a right triangle with its right angle at the bottom left
// corner of the padded bounding box. Its legs run EnclosingStretch box widths
// (heights) past the far side of the box, so the hypotenuse passes well clear
// of the box's top right corner. Because the padding is a fixed distance, even
// a single point gets a triangle with positive area.
//
// Panics with a KernelError wrapping ErrEmptyInput if points is empty.
func EnclosingTriangle(points []Point) Triangle {
	if len(points) == 0 {
		fatal(ErrEmptyInput, "cannot enclose %d points", len(points))
	}

	bounds := BoundsOf(points).Pad(EnclosingPadding)
	width := EnclosingStretch * bounds.Width()
	height := EnclosingStretch * bounds.Height()

	bottomLeft := NewPoint(bounds.MinX, bounds.MinY)
	bottomRight := NewPoint(bounds.MaxX+width, bounds.MinY)
	topLeft := NewPoint(bounds.MinX, bounds.MaxY+height)

	return NewTriangle(
		[3]Point{bottomLeft, bottomRight, topLeft},
		[3]Edge{
			NewEdge(bottomLeft, bottomRight),
			NewEdge(bottomRight, topLeft),
			NewEdge(topLeft, bottomLeft),
		},
	)
}

// Like EnclosingTriangle, but panics with a KernelError wrapping
// ErrNonFinitePoint if any point has a NaN or infinite coordinate. Such a
// point would otherwise leak into the bounds and leave the triangle without a
// usable circumcircle.
func ValidEnclosingTriangle(points []Point) Triangle {
	for i, p := range points {
		if !isFinite(p) {
			fatal(ErrNonFinitePoint, "point %d is %v", i, p)
		}
	}
	return EnclosingTriangle(points)
}
