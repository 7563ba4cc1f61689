package geo

import (
	"fmt"
	"math"

	"github.com/peterstace/simplefeatures/geom"
)

// diskSegments controls how finely buffer circles are approximated.
const diskSegments = 64

// Disk returns a regular polygon approximating the circle of the given
// radius around (x, y), in the same units as the inputs.
func Disk(x, y, radius float64) geom.Polygon {
	coords := make([]float64, 0, (diskSegments+1)*2)
	for i := 0; i < diskSegments; i++ {
		theta := 2 * math.Pi * float64(i) / diskSegments
		coords = append(coords, x+radius*math.Cos(theta), y+radius*math.Sin(theta))
	}
	// Close the ring on the exact first vertex.
	coords = append(coords, coords[0], coords[1])
	ring := geom.NewLineString(geom.NewSequence(coords, geom.DimXY))
	return geom.NewPolygon([]geom.LineString{ring})
}

// Dilate grows a polygonal geometry outward by the given margin in coordinate
// units: the union of the geometry with a disk at every vertex and a rectangle
// along every edge. Applied to geographic polygons with a margin in degrees
// this is an approximate buffer, not a geodesic one.
func Dilate(g geom.Geometry, margin float64) (geom.Geometry, error) {
	if g.IsEmpty() || margin <= 0 {
		return g, nil
	}

	parts := []geom.Geometry{g}
	for _, p := range polygonsOf(g) {
		rings := make([]geom.LineString, 0, p.NumInteriorRings()+1)
		rings = append(rings, p.ExteriorRing())
		for i := 0; i < p.NumInteriorRings(); i++ {
			rings = append(rings, p.InteriorRingN(i))
		}
		for _, ring := range rings {
			seq := ring.Coordinates()
			for i := 0; i+1 < seq.Length(); i++ {
				a, b := seq.GetXY(i), seq.GetXY(i+1)
				parts = append(parts, Disk(a.X, a.Y, margin).AsGeometry())
				if quad, ok := edgeQuad(a, b, margin); ok {
					parts = append(parts, quad.AsGeometry())
				}
			}
		}
	}

	dilated := parts[0]
	for _, part := range parts[1:] {
		var err error
		dilated, err = geom.Union(dilated, part)
		if err != nil {
			return geom.Geometry{}, fmt.Errorf("dilate geometry: %w", err)
		}
	}
	return dilated, nil
}

// edgeQuad builds the rectangle of half-width margin along the segment a-b.
// Degenerate (zero-length) edges report ok=false.
func edgeQuad(a, b geom.XY, margin float64) (geom.Polygon, bool) {
	dx, dy := b.X-a.X, b.Y-a.Y
	length := math.Hypot(dx, dy)
	if length == 0 {
		return geom.Polygon{}, false
	}
	nx, ny := -dy/length*margin, dx/length*margin

	coords := []float64{
		a.X + nx, a.Y + ny,
		b.X + nx, b.Y + ny,
		b.X - nx, b.Y - ny,
		a.X - nx, a.Y - ny,
		a.X + nx, a.Y + ny,
	}
	ring := geom.NewLineString(geom.NewSequence(coords, geom.DimXY))
	return geom.NewPolygon([]geom.LineString{ring}), true
}

// polygonsOf flattens a Polygon or MultiPolygon into its polygon parts.
func polygonsOf(g geom.Geometry) []geom.Polygon {
	switch g.Type() {
	case geom.TypePolygon:
		return []geom.Polygon{g.MustAsPolygon()}
	case geom.TypeMultiPolygon:
		mp := g.MustAsMultiPolygon()
		polys := make([]geom.Polygon, mp.NumPolygons())
		for i := 0; i < mp.NumPolygons(); i++ {
			polys[i] = mp.PolygonN(i)
		}
		return polys
	default:
		return nil
	}
}
