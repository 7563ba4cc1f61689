// Package advisory implements the storm catalog and track source over a
// local directory of ATCF a-deck files maintained by an upstream collector.
package advisory

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"regexp"
	"strconv"
	"time"

	"github.com/couchcryptid/storm-cone-engine/internal/domain"
	"github.com/couchcryptid/storm-cone-engine/internal/engine"
)

// fileNameRe matches a-deck file names like "aal092024.dat": basin, cyclone
// number, season year.
var fileNameRe = regexp.MustCompile(`^a(al|ep|cp|wp|io|sh|sl)(\d{2})(\d{4})\.dat$`)

// Catalog lists storms and serves parsed advisories from a directory of
// a-deck files. Parsed advisories are cached, keyed by path and mtime, since
// a run reads the same storm for cone construction and reporting.
type Catalog struct {
	dir    string
	cache  *advisoryCache
	logger *slog.Logger
}

// NewCatalog creates a Catalog over the given directory.
func NewCatalog(dir string, cacheSize int, logger *slog.Logger) *Catalog {
	return &Catalog{
		dir:    dir,
		cache:  newAdvisoryCache(cacheSize),
		logger: logger,
	}
}

// activityWindow is how far a storm's latest issuance may lag asOf and still
// count as active. A-deck updates routinely trail the synoptic hour, and a
// storm with only stale data must still reach the engine so it can surface a
// per-storm issue instead of vanishing from the run.
const activityWindow = 24 * time.Hour

// ActiveStorms returns every storm in the directory whose most recent
// advisory issuance falls within the activity window ending at asOf.
// Individual unreadable files are logged and skipped; the whole directory
// being unreadable, or every candidate file failing, is fatal.
func (c *Catalog) ActiveStorms(ctx context.Context, asOf time.Time) ([]engine.StormRef, error) {
	entries, err := os.ReadDir(c.dir)
	if err != nil {
		return nil, fmt.Errorf("read advisory dir: %w", err)
	}

	var refs []engine.StormRef
	candidates, failures := 0, 0
	for _, entry := range entries {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		m := fileNameRe.FindStringSubmatch(entry.Name())
		if entry.IsDir() || m == nil {
			continue
		}
		candidates++

		path := filepath.Join(c.dir, entry.Name())
		cached, err := c.load(path)
		if err != nil {
			failures++
			c.logger.Warn("skipping unreadable advisory", "path", path, "error", err)
			continue
		}

		lastIssued := cached.advisory.LastIssued()
		if lastIssued.Before(asOf.Add(-activityWindow)) {
			continue
		}

		number, _ := strconv.Atoi(m[2])
		year, _ := strconv.Atoi(m[3])
		refs = append(refs, engine.StormRef{
			Basin:      basinCode(m[1]),
			Number:     number,
			Year:       year,
			Name:       cached.name,
			LastUpdate: lastIssued,
			Path:       path,
		})
	}

	if candidates > 0 && failures == candidates {
		return nil, fmt.Errorf("no readable advisories in %s", c.dir)
	}
	return refs, nil
}

// Advisory returns the parsed advisory for a storm.
func (c *Catalog) Advisory(_ context.Context, ref engine.StormRef) (domain.Advisory, error) {
	cached, err := c.load(ref.Path)
	if err != nil {
		return domain.Advisory{}, err
	}
	return cached.advisory, nil
}

// load fetches a parsed advisory through the cache, re-parsing when the file
// has changed on disk.
func (c *Catalog) load(path string) (cachedAdvisory, error) {
	info, err := os.Stat(path)
	if err != nil {
		return cachedAdvisory{}, fmt.Errorf("stat advisory: %w", err)
	}
	if cached, ok := c.cache.get(path, info.ModTime()); ok {
		return cached, nil
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return cachedAdvisory{}, fmt.Errorf("read advisory: %w", err)
	}

	cached := cachedAdvisory{
		advisory: domain.ParseAdvisory(raw),
		name:     domain.InferStormName(raw),
		modTime:  info.ModTime(),
	}
	c.cache.put(path, cached)
	return cached, nil
}

func basinCode(lower string) string {
	b := [2]byte{lower[0], lower[1]}
	for i := range b {
		b[i] -= 'a' - 'A'
	}
	return string(b[:])
}
