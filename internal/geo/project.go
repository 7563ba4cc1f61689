// Package geo implements the geometric core: dynamic UTM projection, metric
// disk buffers, approximate-degree dilation, and the uncertainty cone builder.
package geo

import (
	"fmt"

	"github.com/peterstace/simplefeatures/geom"
	"github.com/wroge/wgs84"
)

// Projection is a locally accurate transverse-Mercator frame: a UTM zone
// chosen from the geometry's location so metric buffering is accurate there.
type Projection struct {
	Zone     int
	Northern bool
	forward  wgs84.Func
	inverse  wgs84.Func
}

// NewProjection picks the UTM zone containing the given geographic point.
func NewProjection(lon, lat float64) Projection {
	zone := int((lon+180)/6) + 1
	if zone < 1 {
		zone = 1
	}
	if zone > 60 {
		zone = 60
	}
	northern := lat >= 0
	utm := wgs84.UTM(float64(zone), northern)
	return Projection{
		Zone:     zone,
		Northern: northern,
		forward:  wgs84.LonLat().To(utm),
		inverse:  utm.To(wgs84.LonLat()),
	}
}

// Forward converts geographic degrees to projected meters.
func (p Projection) Forward(lon, lat float64) (x, y float64) {
	x, y, _ = p.forward(lon, lat, 0)
	return x, y
}

// Inverse converts projected meters back to geographic degrees.
func (p Projection) Inverse(x, y float64) (lon, lat float64) {
	lon, lat, _ = p.inverse(x, y, 0)
	return lon, lat
}

// ForwardGeom reprojects a geographic geometry into the metric frame.
func (p Projection) ForwardGeom(g geom.Geometry) (geom.Geometry, error) {
	return transformGeometry(g, p.Forward)
}

// InverseGeom reprojects a metric-frame geometry back to geographic degrees.
func (p Projection) InverseGeom(g geom.Geometry) (geom.Geometry, error) {
	return transformGeometry(g, p.Inverse)
}

// transformGeometry applies a coordinate transform vertex by vertex. Only the
// polygonal types the cone pipeline produces are supported.
func transformGeometry(g geom.Geometry, fn func(x, y float64) (float64, float64)) (geom.Geometry, error) {
	if g.IsEmpty() {
		return g, nil
	}
	switch g.Type() {
	case geom.TypePolygon:
		return transformPolygon(g.MustAsPolygon(), fn).AsGeometry(), nil
	case geom.TypeMultiPolygon:
		mp := g.MustAsMultiPolygon()
		polys := make([]geom.Polygon, mp.NumPolygons())
		for i := 0; i < mp.NumPolygons(); i++ {
			polys[i] = transformPolygon(mp.PolygonN(i), fn)
		}
		return geom.NewMultiPolygon(polys).AsGeometry(), nil
	default:
		return geom.Geometry{}, fmt.Errorf("transform geometry: unsupported type %s", g.Type())
	}
}

func transformPolygon(p geom.Polygon, fn func(x, y float64) (float64, float64)) geom.Polygon {
	rings := make([]geom.LineString, 0, p.NumInteriorRings()+1)
	rings = append(rings, transformRing(p.ExteriorRing(), fn))
	for i := 0; i < p.NumInteriorRings(); i++ {
		rings = append(rings, transformRing(p.InteriorRingN(i), fn))
	}
	return geom.NewPolygon(rings)
}

func transformRing(ls geom.LineString, fn func(x, y float64) (float64, float64)) geom.LineString {
	seq := ls.Coordinates()
	coords := make([]float64, 0, seq.Length()*2)
	for i := 0; i < seq.Length(); i++ {
		xy := seq.GetXY(i)
		x, y := fn(xy.X, xy.Y)
		coords = append(coords, x, y)
	}
	return geom.NewLineString(geom.NewSequence(coords, geom.DimXY))
}
