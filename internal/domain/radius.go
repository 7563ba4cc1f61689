package domain

// RadiusTable maps (basin, forecast hour) to a 2/3-probability circle radius
// in nautical miles. Immutable after construction.
type RadiusTable struct {
	radii map[string]map[int]float64
}

// Published horizons: 12, 24, 36, 48, 60, 72, 96, 120 hours. Any other
// horizon is a lookup miss.
var (
	atlanticRadii = map[int]float64{12: 26, 24: 41, 36: 55, 48: 70, 60: 88, 72: 102, 96: 151, 120: 220}
	eastPacRadii  = map[int]float64{12: 26, 24: 39, 36: 53, 48: 65, 60: 76, 72: 92, 96: 119, 120: 152}
	centPacRadii  = map[int]float64{12: 34, 24: 49, 36: 66, 48: 81, 60: 95, 72: 120, 96: 137, 120: 156}
)

// DefaultRadii returns the NHC forecast-error radius table. Basins without
// published statistics (WP, IO, SH, SL) reuse the Atlantic values as a
// documented approximation.
func DefaultRadii() RadiusTable {
	return RadiusTable{radii: map[string]map[int]float64{
		"AL": atlanticRadii,
		"EP": eastPacRadii,
		"CP": centPacRadii,
		"WP": atlanticRadii,
		"IO": atlanticRadii,
		"SH": atlanticRadii,
		"SL": atlanticRadii,
	}}
}

// Lookup returns the radius for a basin and forecast hour. A miss (unknown
// basin or unlisted horizon) reports ok=false; the caller must skip buffering
// that fix rather than substitute a default.
func (t RadiusTable) Lookup(basin string, forecastHour int) (float64, bool) {
	horizons, ok := t.radii[basin]
	if !ok {
		return 0, false
	}
	r, ok := horizons[forecastHour]
	return r, ok
}
