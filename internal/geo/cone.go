package geo

import (
	"fmt"
	"sort"

	"github.com/peterstace/simplefeatures/geom"

	"github.com/couchcryptid/storm-cone-engine/internal/domain"
)

// MetersPerNauticalMile converts NHC radii to buffer distances.
const MetersPerNauticalMile = 1852.0

// BuildCone produces the uncertainty cone for an authoritative track:
// each fix is buffered in a locally accurate UTM frame by its basin- and
// horizon-dependent radius, consecutive buffers are bridged by their joint
// convex hull, and the bridges are unioned into one polygon in geographic
// coordinates.
//
// The pairwise-hull-then-union shape is an approximation of a continuous
// swept envelope and depends on buffer order, so fixes are always consumed
// in ascending forecast-hour order. Fewer than two buffered fixes yield an
// empty geometry with a nil error: no bridging segment exists, and callers
// must treat that as "no uncertainty geometry available".
func BuildCone(points []domain.ForecastPoint, radii domain.RadiusTable) (geom.Geometry, error) {
	if len(points) == 0 {
		return geom.Geometry{}, nil
	}

	ordered := make([]domain.ForecastPoint, len(points))
	copy(ordered, points)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].ForecastHour < ordered[j].ForecastHour
	})

	proj := trackProjection(ordered)

	var disks []geom.Geometry
	for _, p := range ordered {
		radiusNM, ok := radii.Lookup(p.Basin, p.ForecastHour)
		if !ok {
			// No published radius for this basin/horizon: the fix
			// contributes no buffer.
			continue
		}
		x, y := proj.Forward(p.Lon, p.Lat)
		disks = append(disks, Disk(x, y, radiusNM*MetersPerNauticalMile).AsGeometry())
	}
	if len(disks) < 2 {
		return geom.Geometry{}, nil
	}

	bridges := make([]geom.Geometry, 0, len(disks)-1)
	for i := 0; i+1 < len(disks); i++ {
		pair, err := geom.Union(disks[i], disks[i+1])
		if err != nil {
			return geom.Geometry{}, fmt.Errorf("bridge buffers %d-%d: %w", i, i+1, err)
		}
		bridges = append(bridges, pair.ConvexHull())
	}

	cone := bridges[0]
	for i, bridge := range bridges[1:] {
		var err error
		cone, err = geom.Union(cone, bridge)
		if err != nil {
			return geom.Geometry{}, fmt.Errorf("merge bridge %d: %w", i+1, err)
		}
	}

	return proj.InverseGeom(cone)
}

// trackProjection picks the UTM frame from the track's mean position.
func trackProjection(points []domain.ForecastPoint) Projection {
	var lon, lat float64
	for _, p := range points {
		lon += p.Lon
		lat += p.Lat
	}
	n := float64(len(points))
	return NewProjection(lon/n, lat/n)
}
