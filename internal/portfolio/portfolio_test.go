package portfolio

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/peterstace/simplefeatures/geom"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/couchcryptid/storm-cone-engine/internal/domain"
	"github.com/couchcryptid/storm-cone-engine/internal/geo"
)

// squareFeature builds a GeoJSON polygon feature centered on (lon, lat) with
// the given half-width in degrees.
func squareFeature(name string, lon, lat, half float64) string {
	return fmt.Sprintf(`{
		"type": "Feature",
		"properties": {"Name": %q},
		"geometry": {
			"type": "Polygon",
			"coordinates": [[[%[2]f, %[3]f], [%[4]f, %[3]f], [%[4]f, %[5]f], [%[2]f, %[5]f], [%[2]f, %[3]f]]]
		}
	}`, name, lon-half, lat-half, lon+half, lat+half)
}

func collection(features ...string) []byte {
	out := `{"type": "FeatureCollection", "features": [`
	for i, f := range features {
		if i > 0 {
			out += ","
		}
		out += f
	}
	return []byte(out + `]}`)
}

func TestParse(t *testing.T) {
	t.Run("loads features with cleaned labels", func(t *testing.T) {
		data := collection(
			squareFeature("Miami Office 12B Annex", -80.2, 25.8, 0.1),
			squareFeature("Port Arthur Refinery", -93.9, 29.9, 0.1),
		)

		p, err := Parse(data, 0.7)
		require.NoError(t, err)
		require.Equal(t, 2, p.Len())
		assert.Equal(t, 0.7, p.Margin())

		aois := p.AOIs()
		assert.Equal(t, "Miami Office 12B Annex", aois[0].Label)
		assert.Equal(t, "Miami", aois[0].ClientName)
		assert.Equal(t, "Port Arthur Refinery", aois[1].ClientName)
	})

	t.Run("buffered geometry is larger than the original", func(t *testing.T) {
		p, err := Parse(collection(squareFeature("Galveston", -94.8, 29.3, 0.1)), 0.5)
		require.NoError(t, err)

		aoi := p.AOIs()[0]
		assert.Greater(t, aoi.Buffered.Area(), aoi.Geometry.Area())
	})

	t.Run("missing name property", func(t *testing.T) {
		data := []byte(`{"type": "FeatureCollection", "features": [{
			"type": "Feature",
			"properties": {},
			"geometry": {"type": "Polygon", "coordinates": [[[0,0],[1,0],[1,1],[0,1],[0,0]]]}
		}]}`)

		_, err := Parse(data, 0.7)
		require.Error(t, err)
		assert.Contains(t, err.Error(), `missing "Name" property`)
	})

	t.Run("empty collection", func(t *testing.T) {
		_, err := Parse([]byte(`{"type": "FeatureCollection", "features": []}`), 0.7)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "no features")
	})

	t.Run("invalid json", func(t *testing.T) {
		_, err := Parse([]byte(`{not geojson`), 0.7)
		require.Error(t, err)
	})
}

func TestLoad(t *testing.T) {
	t.Run("reads from disk", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "portfolio.geojson")
		require.NoError(t, os.WriteFile(path, collection(squareFeature("Galveston", -94.8, 29.3, 0.1)), 0o600))

		p, err := Load(path, 0.7)
		require.NoError(t, err)
		assert.Equal(t, 1, p.Len())
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "absent.geojson"), 0.7)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "read portfolio")
	})
}

func TestOverlay(t *testing.T) {
	coneAt := func(lon, lat, half float64) domain.Cone {
		ring := geom.NewLineString(geom.NewSequence([]float64{
			lon - half, lat - half,
			lon + half, lat - half,
			lon + half, lat + half,
			lon - half, lat + half,
			lon - half, lat - half,
		}, geom.DimXY))
		return domain.Cone{
			Geometry:      geom.NewPolygon([]geom.LineString{ring}).AsGeometry(),
			Basin:         "AL",
			CycloneNumber: 9,
			StormName:     "Idalia",
			IssuedAt:      time.Date(2024, 8, 28, 12, 0, 0, 0, time.UTC),
		}
	}

	p, err := Parse(collection(
		squareFeature("Miami Office 12B Annex", -80.2, 25.8, 0.1),
		squareFeature("Seattle Depot", -122.3, 47.6, 0.1),
	), 0.2)
	require.NoError(t, err)

	t.Run("intersecting cone yields a row per touched asset", func(t *testing.T) {
		rows, err := p.Overlay(coneAt(-80.0, 25.8, 0.5))
		require.NoError(t, err)
		require.Len(t, rows, 1)

		row := rows[0]
		assert.Equal(t, "Miami Office 12B Annex", row.AOILabel)
		assert.Equal(t, "Miami", row.ClientName)
		assert.Equal(t, "AL", row.Basin)
		assert.Equal(t, 9, row.CycloneNumber)
		assert.Equal(t, "Idalia", row.StormName)
		assert.False(t, row.Geometry.IsEmpty())
		assert.Positive(t, row.Geometry.Area())
	})

	t.Run("buffer margin extends the reach of an asset", func(t *testing.T) {
		// The cone misses the raw square but clips its 0.2 degree buffer.
		rows, err := p.Overlay(coneAt(-80.2, 26.15, 0.1))
		require.NoError(t, err)
		assert.Len(t, rows, 1)
	})

	t.Run("distant cone yields nothing", func(t *testing.T) {
		rows, err := p.Overlay(coneAt(-40.0, 30.0, 1.0))
		require.NoError(t, err)
		assert.Empty(t, rows)
	})

	t.Run("empty cone geometry yields nothing", func(t *testing.T) {
		rows, err := p.Overlay(domain.Cone{})
		require.NoError(t, err)
		assert.Empty(t, rows)
	})
}

// Dilate feeds Parse; keep a direct guard that a realistic margin stays
// within the same order of magnitude as an exact buffer.
func TestBufferSanity(t *testing.T) {
	square := func() geom.Geometry {
		ring := geom.NewLineString(geom.NewSequence([]float64{0, 0, 1, 0, 1, 1, 0, 1, 0, 0}, geom.DimXY))
		return geom.NewPolygon([]geom.LineString{ring}).AsGeometry()
	}()

	grown, err := geo.Dilate(square, 0.7)
	require.NoError(t, err)
	assert.Greater(t, grown.Area(), square.Area())
	assert.Less(t, grown.Area(), 10.0)
}
