package advanced

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnclosingTriangle(t *testing.T) {
	points := []Point{{0, 0}, {1, 1}}
	vertices := [3]Point{{-1, -1}, {8, -1}, {-1, 8}}

	triangle := EnclosingTriangle(points)
	assert.Equal(t, vertices, triangle.Vertices)
	assert.Equal(t, [3]Edge{
		{vertices[0], vertices[1]},
		{vertices[1], vertices[2]},
		{vertices[2], vertices[0]},
	}, triangle.Edges)
	assertEncloses(t, triangle, points)
}

func TestEnclosingTriangle_SinglePoint(t *testing.T) {
	points := []Point{{3, -4}}
	triangle := EnclosingTriangle(points)
	// The padded box is 2x2, so the legs run 4 past it
	assert.Equal(t, [3]Point{{2, -5}, {8, -5}, {2, 1}}, triangle.Vertices)
	assertEncloses(t, triangle, points)
}

func TestEnclosingTriangle_RepeatedPoints(t *testing.T) {
	points := []Point{{7, 7}, {7, 7}, {7, 7}}
	assertEncloses(t, EnclosingTriangle(points), points)
}

func TestEnclosingTriangle_CollinearPoints(t *testing.T) {
	horizontal := []Point{{-5, 0}, {0, 0}, {5, 0}}
	assertEncloses(t, EnclosingTriangle(horizontal), horizontal)

	vertical := []Point{{0, -5}, {0, 0}, {0, 5}}
	assertEncloses(t, EnclosingTriangle(vertical), vertical)

	diagonal := []Point{{0, 0}, {1, 1}, {2, 2}, {3, 3}}
	assertEncloses(t, EnclosingTriangle(diagonal), diagonal)
}

func TestEnclosingTriangle_BoundingBoxCorners(t *testing.T) {
	// Every corner of the bounding box lands strictly inside
	points := []Point{{-10, -10}, {10, -10}, {10, 10}, {-10, 10}}
	assertEncloses(t, EnclosingTriangle(points), points)
}

func TestEnclosingTriangle_RandomPoints(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for i := 0; i < 50; i++ {
		scale := float64(1 + rng.Intn(1000))
		points := make([]Point, 1+rng.Intn(100))
		for j := range points {
			points[j] = Point{(rng.Float64() - 0.5) * scale, (rng.Float64() - 0.3) * scale}
		}
		assertEncloses(t, EnclosingTriangle(points), points)
	}
}

func TestEnclosingTriangle_Empty(t *testing.T) {
	err := recoverKernelError(func() {
		EnclosingTriangle(nil)
	})
	assert.ErrorIs(t, err, ErrEmptyInput)

	err = recoverKernelError(func() {
		EnclosingTriangle([]Point{})
	})
	assert.ErrorIs(t, err, ErrEmptyInput)
}

func TestValidEnclosingTriangle(t *testing.T) {
	points := []Point{{0, 0}, {1, 1}}
	var triangle Triangle
	err := recoverKernelError(func() {
		triangle = ValidEnclosingTriangle(points)
	})
	require.NoError(t, err)
	assert.Equal(t, EnclosingTriangle(points), triangle)

	for name, p := range map[string]Point{
		"NaN x":  {math.NaN(), 1},
		"NaN y":  {1, math.NaN()},
		"+Inf x": {math.Inf(1), 1},
		"-Inf y": {1, math.Inf(-1)},
	} {
		t.Run(name, func(t *testing.T) {
			err := recoverKernelError(func() {
				ValidEnclosingTriangle([]Point{{0, 0}, p})
			})
			assert.ErrorIs(t, err, ErrNonFinitePoint)
			assert.Contains(t, err.Error(), "point 1 is")
		})
	}

	err = recoverKernelError(func() {
		ValidEnclosingTriangle(nil)
	})
	assert.ErrorIs(t, err, ErrEmptyInput)
}

func TestBounds(t *testing.T) {
	bounds := BoundsOf([]Point{{1, 5}, {-2, 3}, {4, -1}})
	assert.Equal(t, Bounds{MinX: -2, MinY: -1, MaxX: 4, MaxY: 5}, bounds)
	assert.Equal(t, 6.0, bounds.Width())
	assert.Equal(t, 6.0, bounds.Height())

	padded := bounds.Pad(1)
	assert.Equal(t, Bounds{MinX: -3, MinY: -2, MaxX: 5, MaxY: 6}, padded)
	assert.True(t, padded.Contains(Point{-2, -1}))
	assert.False(t, bounds.Contains(Point{-2, -1}))
}

// Helpers

func assertEncloses(t *testing.T, triangle Triangle, points []Point) {
	t.Helper()
	require.False(t, triangle.IsDegenerate())
	require.True(t, triangle.EdgesMatchVertices())
	for _, p := range points {
		assert.True(t, triangle.Contains(p), "%v is not inside %v", p, triangle.Vertices)
		assert.True(t, triangle.CircumcircleContains(p), "%v is not inside the circumcircle", p)
	}
}
