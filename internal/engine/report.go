package engine

import (
	"time"

	"github.com/couchcryptid/storm-cone-engine/internal/domain"
)

// Outcome is a run's terminal condition. The three conditions route to
// different downstream reports: no active storms at all, active storms whose
// cones miss the portfolio, and actual impacts.
type Outcome string

const (
	OutcomeNoStorms  Outcome = "no_storms"
	OutcomeNoImpacts Outcome = "no_impacts"
	OutcomeImpacts   Outcome = "impacts"
)

// StormIssue records a per-storm processing problem that was isolated from
// the rest of the batch.
type StormIssue struct {
	Storm  string `json:"storm"`
	Reason string `json:"reason"`
}

// Report is the output of one run, published to downstream notification and
// visualization collaborators.
type Report struct {
	Outcome     Outcome   `json:"outcome"`
	AsOf        time.Time `json:"as_of"`
	GeneratedAt time.Time `json:"generated_at"`

	Storms          []string           `json:"storms,omitempty"`
	Cones           []domain.Cone      `json:"cones,omitempty"`
	Intercepts      []domain.Intercept `json:"intercepts,omitempty"`
	AffectedClients []string           `json:"affected_clients,omitempty"`
	Issues          []StormIssue       `json:"issues,omitempty"`
	DroppedRecords  int                `json:"dropped_records"`
}
