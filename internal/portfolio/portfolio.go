// Package portfolio loads the client asset portfolio and overlays storm
// cones against it.
package portfolio

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/peterstace/simplefeatures/geom"

	"github.com/couchcryptid/storm-cone-engine/internal/domain"
	"github.com/couchcryptid/storm-cone-engine/internal/geo"
)

// labelProperty is the GeoJSON feature property carrying the asset's display
// label.
const labelProperty = "Name"

// AOI is one client-owned area of interest. Buffered is the same geometry
// dilated by the portfolio's safety margin, derived once at load and reused
// for every storm in a run.
type AOI struct {
	Label      string
	ClientName string // cleaned grouping key
	Geometry   geom.Geometry
	Buffered   geom.Geometry
}

// Portfolio is the fixed asset collection for a run. Read-only after Load.
type Portfolio struct {
	aois   []AOI
	margin float64
}

// Load reads a GeoJSON FeatureCollection of asset polygons and buffers each
// by margin degrees. Any failure here is unrecoverable for the run.
func Load(path string, margin float64) (*Portfolio, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read portfolio: %w", err)
	}
	p, err := Parse(data, margin)
	if err != nil {
		return nil, fmt.Errorf("portfolio %s: %w", path, err)
	}
	return p, nil
}

// Parse builds a Portfolio from raw GeoJSON.
func Parse(data []byte, margin float64) (*Portfolio, error) {
	var fc geom.GeoJSONFeatureCollection
	if err := json.Unmarshal(data, &fc); err != nil {
		return nil, fmt.Errorf("decode portfolio geojson: %w", err)
	}
	if len(fc) == 0 {
		return nil, fmt.Errorf("portfolio contains no features")
	}

	aois := make([]AOI, 0, len(fc))
	for i, feature := range fc {
		label, ok := feature.Properties[labelProperty].(string)
		if !ok || label == "" {
			return nil, fmt.Errorf("portfolio feature %d: missing %q property", i, labelProperty)
		}
		buffered, err := geo.Dilate(feature.Geometry, margin)
		if err != nil {
			return nil, fmt.Errorf("buffer AOI %q: %w", label, err)
		}
		aois = append(aois, AOI{
			Label:      label,
			ClientName: domain.CleanLabel(label),
			Geometry:   feature.Geometry,
			Buffered:   buffered,
		})
	}
	return &Portfolio{aois: aois, margin: margin}, nil
}

// Len reports the number of assets.
func (p *Portfolio) Len() int { return len(p.aois) }

// AOIs returns the loaded assets.
func (p *Portfolio) AOIs() []AOI { return p.aois }

// Margin returns the safety margin in degrees.
func (p *Portfolio) Margin() float64 { return p.margin }

// Overlay intersects one storm cone against every buffered AOI and returns a
// row per non-empty areal intersection, carrying both the asset's and the
// storm's identity.
func (p *Portfolio) Overlay(cone domain.Cone) ([]domain.Intercept, error) {
	if cone.Geometry.IsEmpty() {
		return nil, nil
	}

	var rows []domain.Intercept
	for _, aoi := range p.aois {
		shared, err := geom.Intersection(aoi.Buffered, cone.Geometry)
		if err != nil {
			return nil, fmt.Errorf("overlay %q with storm %s: %w", aoi.Label, cone.StormName, err)
		}
		if shared.IsEmpty() {
			continue
		}
		rows = append(rows, domain.Intercept{
			AOILabel:      aoi.Label,
			ClientName:    aoi.ClientName,
			Basin:         cone.Basin,
			CycloneNumber: cone.CycloneNumber,
			StormName:     cone.StormName,
			Geometry:      shared,
		})
	}
	return rows, nil
}
