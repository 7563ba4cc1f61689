// Package engine orchestrates one batch run: discover active storms, build
// each storm's uncertainty cone, overlay the cones against the portfolio,
// classify the outcome, and publish the impact report.
package engine

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"sync/atomic"
	"time"

	"github.com/couchcryptid/storm-cone-engine/internal/domain"
	"github.com/couchcryptid/storm-cone-engine/internal/geo"
	"github.com/couchcryptid/storm-cone-engine/internal/observability"
	"github.com/couchcryptid/storm-cone-engine/internal/portfolio"
)

// StormRef identifies one storm known to the catalog.
type StormRef struct {
	Basin      string
	Number     int
	Year       int
	Name       string
	LastUpdate time.Time
	Path       string // advisory provenance
}

// Catalog lists the storms with advisory data current at a given time.
type Catalog interface {
	ActiveStorms(ctx context.Context, asOf time.Time) ([]StormRef, error)
}

// TrackSource loads a storm's parsed advisory.
type TrackSource interface {
	Advisory(ctx context.Context, ref StormRef) (domain.Advisory, error)
}

// Reporter delivers the run report to downstream collaborators.
type Reporter interface {
	Publish(ctx context.Context, report Report) error
}

// Engine runs the cone/overlay batch. Per-storm failures are isolated; only
// catalog-wide or portfolio failures abort a run.
type Engine struct {
	catalog  Catalog
	source   TrackSource
	assets   *portfolio.Portfolio
	reporter Reporter
	radii    domain.RadiusTable
	logger   *slog.Logger
	metrics  *observability.Metrics
	ranOnce  atomic.Bool
}

// New creates an Engine. Reporter may be nil to skip publishing.
func New(catalog Catalog, source TrackSource, assets *portfolio.Portfolio, reporter Reporter, logger *slog.Logger, metrics *observability.Metrics) *Engine {
	return &Engine{
		catalog:  catalog,
		source:   source,
		assets:   assets,
		reporter: reporter,
		radii:    domain.DefaultRadii(),
		logger:   logger,
		metrics:  metrics,
	}
}

// CheckReadiness returns nil once at least one run has completed.
func (e *Engine) CheckReadiness(_ context.Context) error {
	if !e.ranOnce.Load() {
		return errors.New("engine has not completed a run yet")
	}
	return nil
}

// SnapToSynoptic aligns a timestamp to the most recent forecast issuance
// hour (00, 06, 12, or 18 UTC).
func SnapToSynoptic(t time.Time) time.Time {
	t = t.UTC()
	hour := t.Hour() - t.Hour()%6
	return time.Date(t.Year(), t.Month(), t.Day(), hour, 0, 0, 0, time.UTC)
}

// Run executes one batch as of the given time (zero means now) and publishes
// the resulting report. The returned error is fatal for the run; per-storm
// problems are carried in Report.Issues instead.
func (e *Engine) Run(ctx context.Context, asOf time.Time) (Report, error) {
	start := time.Now()
	e.metrics.RunInProgress.Set(1)
	defer e.metrics.RunInProgress.Set(0)

	if asOf.IsZero() {
		asOf = domain.Now()
	}
	asOf = SnapToSynoptic(asOf)

	report := Report{AsOf: asOf}
	e.logger.Info("run started", "as_of", asOf, "portfolio_size", e.assets.Len())
	e.metrics.PortfolioSize.Set(float64(e.assets.Len()))

	storms, err := e.catalog.ActiveStorms(ctx, asOf)
	if err != nil {
		return Report{}, fmt.Errorf("list active storms: %w", err)
	}

	// Invests are not yet named storms; they never alert.
	active := storms[:0:0]
	for _, ref := range storms {
		if ref.Name == "Invest" {
			continue
		}
		active = append(active, ref)
	}

	if len(active) == 0 {
		report.Outcome = OutcomeNoStorms
		return e.finish(ctx, report, start)
	}

	for _, ref := range active {
		report.Storms = append(report.Storms, ref.Name)
	}

	for _, ref := range active {
		e.metrics.StormsProcessed.Inc()
		cone, dropped, err := e.buildCone(ctx, ref, asOf)
		report.DroppedRecords += dropped
		if err != nil {
			e.metrics.StormErrors.Inc()
			e.logger.Warn("storm skipped", "storm", ref.Name, "error", err)
			report.Issues = append(report.Issues, StormIssue{Storm: ref.Name, Reason: err.Error()})
			continue
		}
		if cone.Geometry.IsEmpty() {
			e.metrics.EmptyCones.Inc()
			e.logger.Info("no uncertainty geometry", "storm", ref.Name, "as_of", asOf)
			report.Issues = append(report.Issues, StormIssue{
				Storm:  ref.Name,
				Reason: fmt.Sprintf("no forecast uncertainty geometry at %s", asOf.Format(time.RFC3339)),
			})
			continue
		}
		e.metrics.ConesBuilt.Inc()
		report.Cones = append(report.Cones, cone)
	}

	clients := map[string]bool{}
	for _, cone := range report.Cones {
		rows, err := e.assets.Overlay(cone)
		if err != nil {
			e.metrics.StormErrors.Inc()
			e.logger.Warn("overlay failed", "storm", cone.StormName, "error", err)
			report.Issues = append(report.Issues, StormIssue{Storm: cone.StormName, Reason: err.Error()})
			continue
		}
		e.metrics.InterceptRows.Add(float64(len(rows)))
		report.Intercepts = append(report.Intercepts, rows...)
		for _, row := range rows {
			clients[row.ClientName] = true
		}
	}

	for c := range clients {
		report.AffectedClients = append(report.AffectedClients, c)
	}
	sort.Strings(report.AffectedClients)

	if len(report.Intercepts) == 0 {
		report.Outcome = OutcomeNoImpacts
	} else {
		report.Outcome = OutcomeImpacts
	}
	return e.finish(ctx, report, start)
}

// buildCone loads one storm's advisory, selects the track issued at asOf,
// and constructs its cone from the authoritative forecast source.
func (e *Engine) buildCone(ctx context.Context, ref StormRef, asOf time.Time) (domain.Cone, int, error) {
	adv, err := e.source.Advisory(ctx, ref)
	if err != nil {
		return domain.Cone{}, 0, fmt.Errorf("load advisory: %w", err)
	}

	track, ok := adv.TrackAt(asOf)
	if !ok {
		return domain.Cone{}, adv.Dropped, fmt.Errorf("no advisory data at %s", asOf.Format(time.RFC3339))
	}

	shape, err := geo.BuildCone(track.Authoritative(), e.radii)
	if err != nil {
		return domain.Cone{}, adv.Dropped, fmt.Errorf("build cone: %w", err)
	}

	return domain.Cone{
		Geometry:      shape,
		Basin:         ref.Basin,
		CycloneNumber: ref.Number,
		StormName:     ref.Name,
		IssuedAt:      asOf,
		LastUpdate:    ref.LastUpdate,
		Source:        ref.Path,
	}, adv.Dropped, nil
}

func (e *Engine) finish(ctx context.Context, report Report, start time.Time) (Report, error) {
	report.GeneratedAt = domain.Now()
	e.metrics.RecordsDropped.Add(float64(report.DroppedRecords))
	e.metrics.RunsTotal.WithLabelValues(string(report.Outcome)).Inc()
	e.metrics.RunDuration.Observe(time.Since(start).Seconds())

	if e.reporter != nil {
		if err := e.reporter.Publish(ctx, report); err != nil {
			return report, fmt.Errorf("publish report: %w", err)
		}
		e.metrics.ReportsPublished.Inc()
	}

	e.ranOnce.Store(true)
	e.logger.Info("run complete",
		"outcome", report.Outcome,
		"storms", len(report.Storms),
		"cones", len(report.Cones),
		"intercepts", len(report.Intercepts),
		"affected_clients", len(report.AffectedClients),
		"issues", len(report.Issues),
		"dropped_records", report.DroppedRecords,
	)
	return report, nil
}
