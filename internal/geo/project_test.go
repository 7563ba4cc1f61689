package geo

import (
	"testing"

	"github.com/peterstace/simplefeatures/geom"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewProjection(t *testing.T) {
	tests := []struct {
		name     string
		lon, lat float64
		zone     int
		northern bool
	}{
		{"gulf of mexico", -84.9, 23.1, 16, true},
		{"coral sea", 155.0, -18.0, 56, false},
		{"greenwich", 0.1, 51.5, 31, true},
		{"west edge clamp", -180.0, 10.0, 1, true},
		{"east edge clamp", 180.0, 10.0, 60, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewProjection(tt.lon, tt.lat)
			assert.Equal(t, tt.zone, p.Zone)
			assert.Equal(t, tt.northern, p.Northern)
		})
	}
}

func TestProjectionRoundTrip(t *testing.T) {
	positions := []struct{ lon, lat float64 }{
		{-84.9, 23.1},
		{-97.0, 27.5},
		{139.2, 15.4},
		{55.0, -20.0},
	}

	for _, pos := range positions {
		p := NewProjection(pos.lon, pos.lat)
		x, y := p.Forward(pos.lon, pos.lat)
		lon, lat := p.Inverse(x, y)

		assert.InDelta(t, pos.lon, lon, 1e-6)
		assert.InDelta(t, pos.lat, lat, 1e-6)
	}
}

func TestForwardGeomRoundTrip(t *testing.T) {
	p := NewProjection(-84.9, 23.1)
	disk := Disk(-84.9, 23.1, 0.5).AsGeometry()

	metric, err := p.ForwardGeom(disk)
	require.NoError(t, err)
	assert.Equal(t, geom.TypePolygon, metric.Type())

	back, err := p.InverseGeom(metric)
	require.NoError(t, err)

	origSeq := disk.MustAsPolygon().ExteriorRing().Coordinates()
	backSeq := back.MustAsPolygon().ExteriorRing().Coordinates()
	require.Equal(t, origSeq.Length(), backSeq.Length())
	for i := 0; i < origSeq.Length(); i++ {
		assert.InDelta(t, origSeq.GetXY(i).X, backSeq.GetXY(i).X, 1e-6)
		assert.InDelta(t, origSeq.GetXY(i).Y, backSeq.GetXY(i).Y, 1e-6)
	}
}

func TestTransformGeometryRejectsNonPolygonal(t *testing.T) {
	p := NewProjection(-84.9, 23.1)
	line := geom.NewLineString(geom.NewSequence([]float64{0, 0, 1, 1}, geom.DimXY)).AsGeometry()

	_, err := p.ForwardGeom(line)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported type")
}

func TestTransformGeometryEmptyPassthrough(t *testing.T) {
	p := NewProjection(-84.9, 23.1)

	out, err := p.ForwardGeom(geom.Geometry{})
	require.NoError(t, err)
	assert.True(t, out.IsEmpty())
}
