package domain

import (
	"time"

	"github.com/peterstace/simplefeatures/geom"
)

// Cone is a storm's uncertainty polygon in geographic coordinates, tagged
// with storm metadata by the caller. Computed fresh per storm per run.
type Cone struct {
	Geometry      geom.Geometry `json:"geometry"`
	Basin         string        `json:"basin"`
	CycloneNumber int           `json:"cyclone_number"`
	StormName     string        `json:"storm_name"`
	IssuedAt      time.Time     `json:"issued_at"`
	LastUpdate    time.Time     `json:"last_update"`
	Source        string        `json:"source,omitempty"` // advisory provenance
}

// Intercept is one (asset, cone) intersection row: the asset's labels, the
// storm's identity, and the shared geometry. Owned by the run and discarded
// after the report is emitted.
type Intercept struct {
	AOILabel      string        `json:"aoi_label"`
	ClientName    string        `json:"client_name"`
	Basin         string        `json:"basin"`
	CycloneNumber int           `json:"cyclone_number"`
	StormName     string        `json:"storm_name"`
	Geometry      geom.Geometry `json:"geometry"`
}
