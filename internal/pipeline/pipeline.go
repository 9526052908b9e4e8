// Package pipeline orchestrates a full run: scrape every enabled source
// concurrently, triangulate the raw records into a verified roster, then
// persist and report.
package pipeline

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rotisserie/eris"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/lemina/startup-cli/internal/config"
	"github.com/lemina/startup-cli/internal/model"
	"github.com/lemina/startup-cli/internal/scraper"
	"github.com/lemina/startup-cli/internal/store"
	"github.com/lemina/startup-cli/internal/triangulate"
)

// Pipeline wires scrapers, the triangulation engine and the store.
type Pipeline struct {
	cfg      *config.Config
	registry *scraper.Registry
	store    store.Store
}

// Options control a single run.
type Options struct {
	// DryRun skips persistence; raw snapshots and the report are still
	// written.
	DryRun bool

	// Sources restricts the run to the named sources. Empty means every
	// enabled source from config.
	Sources []string
}

// New creates a Pipeline. The store may be nil only for dry runs.
func New(cfg *config.Config, registry *scraper.Registry, st store.Store) *Pipeline {
	return &Pipeline{cfg: cfg, registry: registry, store: st}
}

// RunReport is the outcome of one pipeline run.
type RunReport struct {
	RunID     string        `yaml:"run_id"`
	StartedAt time.Time     `yaml:"started_at"`
	Duration  time.Duration `yaml:"duration"`
	DryRun    bool          `yaml:"dry_run"`

	RawCounts map[string]int `yaml:"raw_counts"`
	Failed    []string       `yaml:"failed_sources,omitempty"`

	Companies     int            `yaml:"companies"`
	FundingRounds int            `yaml:"funding_rounds"`
	Updates       int            `yaml:"updates"`
	Skipped       int            `yaml:"skipped"`
	Verification  map[string]int `yaml:"verification"`
	Sectors       map[string]int `yaml:"sectors"`
	AvgQuality    float64        `yaml:"avg_quality"`
}

// Run executes scrape, triangulate and persist for one run.
func (p *Pipeline) Run(ctx context.Context, opts Options) (*RunReport, error) {
	runID := uuid.NewString()
	start := time.Now()
	log := zap.L().With(zap.String("run_id", runID))
	log.Info("pipeline: starting run", zap.Bool("dry_run", opts.DryRun))

	sources := opts.Sources
	if len(sources) == 0 {
		sources = p.cfg.Scrapers.Enabled()
	}
	if len(sources) == 0 {
		return nil, eris.New("pipeline: no sources enabled")
	}
	scrapers, err := p.registry.Select(sources)
	if err != nil {
		return nil, err
	}

	raw, failed := p.scrapeAll(ctx, scrapers)

	result := triangulate.New().Process(raw)

	report := &RunReport{
		RunID:         runID,
		StartedAt:     start.UTC(),
		DryRun:        opts.DryRun,
		RawCounts:     rawCounts(raw),
		Failed:        failed,
		Companies:     len(result.Companies),
		FundingRounds: len(result.FundingRounds),
		Updates:       len(result.Updates),
		Skipped:       result.Skipped,
		Verification:  verificationBreakdown(result.Companies),
		Sectors:       sectorBreakdown(result.Companies),
		AvgQuality:    avgQuality(result.Companies),
	}

	if !opts.DryRun {
		if p.store == nil {
			return nil, eris.New("pipeline: no store configured")
		}
		stats, err := p.store.SaveResult(ctx, result)
		if err != nil {
			return nil, eris.Wrap(err, "pipeline: persist result")
		}
		log.Info("pipeline: persisted result",
			zap.Int("companies", stats.Companies),
			zap.Int("funding_rounds", stats.FundingRounds),
			zap.Int("updates", stats.Updates),
		)
	}

	report.Duration = time.Since(start)
	log.Info("pipeline: run complete",
		zap.Int("companies", report.Companies),
		zap.Int("skipped", report.Skipped),
		zap.Strings("failed_sources", report.Failed),
		zap.Duration("duration", report.Duration),
	)
	return report, nil
}

// scrapeAll runs every scraper concurrently, bounded by max_workers.
// A failed source contributes an empty record list and is reported; it
// never aborts the run, since triangulation of the remaining sources is
// still worth having.
func (p *Pipeline) scrapeAll(ctx context.Context, scrapers []scraper.Scraper) (map[string][]model.RawRecord, []string) {
	var (
		mu     sync.Mutex
		raw    = make(map[string][]model.RawRecord, len(scrapers))
		failed []string
	)

	workers := p.cfg.Global.MaxWorkers
	if workers <= 0 {
		workers = 4
	}

	g, gCtx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for _, s := range scrapers {
		g.Go(func() error {
			maxPages := 1
			if src, ok := p.cfg.Scrapers.Source(s.Name()); ok && src.MaxPages > 0 {
				maxPages = src.MaxPages
			}

			records, err := s.Scrape(gCtx, maxPages)
			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				zap.L().Warn("pipeline: source failed",
					zap.String("source", s.Name()),
					zap.Error(err),
				)
				raw[s.Name()] = nil
				failed = append(failed, s.Name())
				return nil
			}
			raw[s.Name()] = records

			if dir := p.rawDir(); dir != "" {
				if path, err := scraper.SaveRaw(dir, s.Name(), records); err != nil {
					zap.L().Warn("pipeline: raw snapshot failed",
						zap.String("source", s.Name()),
						zap.Error(err),
					)
				} else {
					zap.L().Debug("pipeline: raw snapshot written",
						zap.String("path", path),
					)
				}
			}
			return nil
		})
	}

	_ = g.Wait()
	return raw, failed
}

func (p *Pipeline) rawDir() string {
	if p.cfg.Global.DataDir == "" {
		return ""
	}
	return p.cfg.Global.DataDir + "/raw"
}

// Triangulate runs only the triangulation stage over already-scraped
// records, persisting unless dry-run.
func (p *Pipeline) Triangulate(ctx context.Context, raw map[string][]model.RawRecord, dryRun bool) (*triangulate.Result, error) {
	result := triangulate.New().Process(raw)

	if !dryRun {
		if p.store == nil {
			return nil, eris.New("pipeline: no store configured")
		}
		if _, err := p.store.SaveResult(ctx, result); err != nil {
			return nil, eris.Wrap(err, "pipeline: persist result")
		}
	}
	return result, nil
}

func rawCounts(raw map[string][]model.RawRecord) map[string]int {
	counts := make(map[string]int, len(raw))
	for source, records := range raw {
		counts[source] = len(records)
	}
	return counts
}

func verificationBreakdown(companies []*model.Company) map[string]int {
	counts := make(map[string]int)
	for _, c := range companies {
		counts[c.VerificationStatus]++
	}
	return counts
}

func sectorBreakdown(companies []*model.Company) map[string]int {
	counts := make(map[string]int)
	for _, c := range companies {
		sector := c.Sector
		if sector == "" {
			sector = "other"
		}
		counts[sector]++
	}
	return counts
}

func avgQuality(companies []*model.Company) float64 {
	if len(companies) == 0 {
		return 0
	}
	sum := 0
	for _, c := range companies {
		sum += c.DataQualityScore
	}
	return float64(sum) / float64(len(companies))
}
