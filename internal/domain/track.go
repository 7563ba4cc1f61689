package domain

import (
	"sort"
	"time"
)

// modelPriority orders forecast sources by preference. The first source with
// any fixes in a track is the authoritative one for cone construction.
var modelPriority = []string{
	"OFCL", "OFCI", "AEMN", "AVNO", "AVNI", "AVNX", "EGRR", "EGRI", "EGR2",
	"UKM", "UKX", "UKMI", "UKXI", "UKM2", "UKX2", "HWRF", "HWFI", "HWF2",
}

// ForecastPoint is one forecast fix: a single source's predicted position and
// intensity at one horizon of one advisory.
type ForecastPoint struct {
	Basin         string    `json:"basin"`
	CycloneNumber int       `json:"cyclone_number"`
	IssuedAt      time.Time `json:"issued_at"`
	ModelNumber   string    `json:"model_number,omitempty"`
	Model         string    `json:"model"`
	ForecastHour  int       `json:"forecast_hour"`
	Lat           float64   `json:"lat"`
	Lon           float64   `json:"lon"`
	MaxWindKt     float64   `json:"max_wind_kt"`
	MinPressureMb float64   `json:"min_pressure_mb,omitempty"`

	// Extra holds trailing fields past the fixed schema, in file order.
	Extra []string `json:"extra,omitempty"`

	// StormName is the raw name token from field 27, when present.
	StormName string `json:"storm_name,omitempty"`

	// Derived at parse time.
	ValidAt     time.Time `json:"valid_at"`
	WindCat     Category  `json:"wind_category"`
	PressureCat Category  `json:"pressure_category"`
	MaxSeverity int       `json:"max_severity"`
}

// Track is the ordered set of fixes sharing basin, cyclone number, and
// issuance time, spanning all forecast sources. Immutable once parsed.
type Track struct {
	Basin         string          `json:"basin"`
	CycloneNumber int             `json:"cyclone_number"`
	IssuedAt      time.Time       `json:"issued_at"`
	Points        []ForecastPoint `json:"points"`
}

// Authoritative returns the track's fixes from the single preferred forecast
// source, sorted ascending by forecast hour. Returns nil when no preferred
// source has any fixes; callers must treat that as "no official forecast",
// not as an error.
func (t Track) Authoritative() []ForecastPoint {
	for _, model := range modelPriority {
		var pts []ForecastPoint
		for _, p := range t.Points {
			if p.Model == model {
				pts = append(pts, p)
			}
		}
		if len(pts) > 0 {
			sort.SliceStable(pts, func(i, j int) bool {
				return pts[i].ForecastHour < pts[j].ForecastHour
			})
			return pts
		}
	}
	return nil
}

// Advisory is the parsed content of one a-deck file: tracks grouped by
// issuance, plus a count of lines rejected by the drop rules.
type Advisory struct {
	Tracks  []Track `json:"tracks"`
	Dropped int     `json:"dropped"`
}

// TrackAt returns the track issued at the given time, if any.
func (a Advisory) TrackAt(issued time.Time) (Track, bool) {
	for _, t := range a.Tracks {
		if t.IssuedAt.Equal(issued) {
			return t, true
		}
	}
	return Track{}, false
}

// LastIssued returns the most recent issuance time across all tracks, or the
// zero time for an empty advisory.
func (a Advisory) LastIssued() time.Time {
	var last time.Time
	for _, t := range a.Tracks {
		if t.IssuedAt.After(last) {
			last = t.IssuedAt
		}
	}
	return last
}
