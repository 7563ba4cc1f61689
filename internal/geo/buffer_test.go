package geo

import (
	"math"
	"testing"

	"github.com/peterstace/simplefeatures/geom"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDisk(t *testing.T) {
	radius := 1000.0
	disk := Disk(500, -200, radius)

	ring := disk.ExteriorRing().Coordinates()
	assert.Equal(t, diskSegments+1, ring.Length())

	// Closed ring.
	first, last := ring.GetXY(0), ring.GetXY(ring.Length()-1)
	assert.Equal(t, first, last)

	// Every vertex sits on the circle.
	for i := 0; i < ring.Length(); i++ {
		xy := ring.GetXY(i)
		d := math.Hypot(xy.X-500, xy.Y+200)
		assert.InDelta(t, radius, d, 1e-6)
	}

	// A 64-gon covers almost all of the true circle's area.
	area := disk.AsGeometry().Area()
	assert.InDelta(t, math.Pi*radius*radius, area, 0.005*math.Pi*radius*radius)
}

func TestDilate(t *testing.T) {
	square := mustPolygon(t, []float64{0, 0, 10, 0, 10, 10, 0, 10, 0, 0})

	t.Run("grows the geometry", func(t *testing.T) {
		grown, err := Dilate(square, 1)
		require.NoError(t, err)

		assert.Greater(t, grown.Area(), square.Area())

		// The dilated square approaches the area of the exact buffer:
		// core + four side rectangles + four corner quarter circles.
		expected := 100.0 + 4*10.0 + math.Pi
		assert.InDelta(t, expected, grown.Area(), 0.5)
	})

	t.Run("contains the original", func(t *testing.T) {
		grown, err := Dilate(square, 1)
		require.NoError(t, err)

		inter, err := geom.Intersection(grown, square)
		require.NoError(t, err)
		assert.InDelta(t, square.Area(), inter.Area(), 1e-6)
	})

	t.Run("zero margin is a no-op", func(t *testing.T) {
		out, err := Dilate(square, 0)
		require.NoError(t, err)
		assert.Equal(t, square.Area(), out.Area())
	})

	t.Run("empty geometry passes through", func(t *testing.T) {
		out, err := Dilate(geom.Geometry{}, 1)
		require.NoError(t, err)
		assert.True(t, out.IsEmpty())
	})
}

func TestEdgeQuad(t *testing.T) {
	a := geom.XY{X: 0, Y: 0}
	b := geom.XY{X: 10, Y: 0}

	quad, ok := edgeQuad(a, b, 2)
	require.True(t, ok)
	assert.InDelta(t, 40.0, quad.AsGeometry().Area(), 1e-9)

	_, ok = edgeQuad(a, a, 2)
	assert.False(t, ok)
}

func mustPolygon(t *testing.T, coords []float64) geom.Geometry {
	t.Helper()
	ring := geom.NewLineString(geom.NewSequence(coords, geom.DimXY))
	return geom.NewPolygon([]geom.LineString{ring}).AsGeometry()
}
