package render

import (
	"math"
	"path/filepath"
	"testing"

	"github.com/fogleman/gg"
	"github.com/osuushi/delaunay/advanced"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testTriangle() advanced.Triangle {
	return advanced.TriangleFromVertices(
		advanced.NewPoint(0, 0),
		advanced.NewPoint(4, 0),
		advanced.NewPoint(0, 5),
	)
}

func TestDraw(t *testing.T) {
	img, err := Draw(testTriangle(), nil, Options{Scale: 10})
	require.NoError(t, err)

	bounds := img.Bounds()
	assert.Equal(t, 4*10+Padding*2, bounds.Dx())
	assert.Equal(t, 5*10+Padding*2, bounds.Dy())

	// The background is black
	r, g, b, _ := img.At(1, 1).RGBA()
	assert.Equal(t, [3]uint32{0, 0, 0}, [3]uint32{r, g, b})

	// The centroid (4/3, 5/3) is filled. The y axis is flipped.
	_, _, b, _ = img.At(Padding+13, bounds.Dy()-Padding-17).RGBA()
	assert.NotZero(t, b)
}

func TestDraw_CircumcircleGrowsCanvas(t *testing.T) {
	withoutCircle, err := Draw(testTriangle(), nil, Options{Scale: 10})
	require.NoError(t, err)
	withCircle, err := Draw(testTriangle(), nil, Options{Scale: 10, Circumcircle: true, Labels: true})
	require.NoError(t, err)

	assert.Greater(t, withCircle.Bounds().Dx(), withoutCircle.Bounds().Dx())
	assert.Greater(t, withCircle.Bounds().Dy(), withoutCircle.Bounds().Dy())
}

func TestDraw_PointsGrowCanvas(t *testing.T) {
	points := []advanced.Point{{X: 10, Y: 1}}
	img, err := Draw(testTriangle(), points, Options{Scale: 10})
	require.NoError(t, err)
	assert.Equal(t, 10*10+Padding*2, img.Bounds().Dx())
}

func TestDraw_LargeExtentsAreScaledToFit(t *testing.T) {
	for _, far := range []float64{1000, 1e17} {
		points := []advanced.Point{{X: 0, Y: 0}, {X: far, Y: far}}
		triangle := advanced.EnclosingTriangle(points)

		img, err := Draw(triangle, points, DefaultOptions())
		require.NoError(t, err, "far=%v", far)
		assert.LessOrEqual(t, img.Bounds().Dx(), MaxDimension, "far=%v", far)
		assert.LessOrEqual(t, img.Bounds().Dy(), MaxDimension, "far=%v", far)
		// The circumcircle is the larger dimension, and fills the canvas
		assert.Equal(t, MaxDimension, max(img.Bounds().Dx(), img.Bounds().Dy()), "far=%v", far)
	}
}

func TestDraw_Errors(t *testing.T) {
	_, err := Draw(testTriangle(), nil, Options{Scale: 0})
	assert.EqualError(t, err, "invalid scale 0")

	collinear := advanced.TriangleFromVertices(
		advanced.NewPoint(0, 0),
		advanced.NewPoint(1, 1),
		advanced.NewPoint(2, 2),
	)
	_, err = Draw(collinear, nil, DefaultOptions())
	assert.ErrorIs(t, err, advanced.ErrDegenerateTriangle)

	_, err = Draw(testTriangle(), []advanced.Point{{X: math.Inf(1), Y: 0}}, DefaultOptions())
	assert.Error(t, err)

	_, err = Draw(testTriangle(), nil, Options{Scale: math.NaN()})
	assert.Error(t, err)
}

func TestSavePNG(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out", "triangle.png")
	points := []advanced.Point{{X: 0, Y: 0}, {X: 1, Y: 1}}
	triangle := advanced.EnclosingTriangle(points)

	require.NoError(t, SavePNG(path, triangle, points, DefaultOptions()))

	img, err := gg.LoadPNG(path)
	require.NoError(t, err)
	assert.Greater(t, img.Bounds().Dx(), Padding*2)
}
