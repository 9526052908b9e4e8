// Package triangulate cross-references raw company records from multiple
// sources into a single deduplicated, verified roster plus derived funding
// and news events.
//
// The engine is single-threaded and deterministic: it consumes a completed
// source → records mapping (never a stream) and folds records into an
// ordered entity arena where later merges depend on earlier state.
package triangulate

import (
	"sort"

	"go.uber.org/zap"

	"github.com/lemina/startup-cli/internal/model"
)

// Result is the engine's output boundary toward the persistence layer.
type Result struct {
	Companies     []*model.Company      `json:"companies"`
	FundingRounds []model.FundingRound  `json:"funding_rounds"`
	Updates       []model.CompanyUpdate `json:"company_updates"`

	// Skipped counts raw records dropped during conversion (missing name).
	// Reported as an observability signal, never a failure.
	Skipped int `json:"skipped"`
}

// Engine deduplicates and cross-verifies raw records.
type Engine struct {
	arena *arena
}

// New creates a triangulation engine.
func New() *Engine {
	return &Engine{arena: newArena()}
}

// Process runs the full triangulation pass: resolve and merge every raw
// record into canonical entities, extract funding/update events, then score
// each finalized entity. Scoring runs only after all merges because the
// corroboration bonus reads the final source count.
func (e *Engine) Process(raw map[string][]model.RawRecord) *Result {
	zap.L().Info("triangulation: starting", zap.Int("sources", len(raw)))

	res := &Result{}

	// Map iteration order is randomized in Go; process sources in sorted
	// order so entity insertion order (and with it first-match resolution)
	// is reproducible across runs.
	for _, source := range sortedSources(raw) {
		for _, rec := range raw[source] {
			if rec.Name == "" {
				res.Skipped++
				zap.L().Debug("triangulation: skipped record without name",
					zap.String("source", source))
				continue
			}
			if rec.Source == "" {
				rec.Source = source
			}
			e.absorb(rec)
		}
	}

	res.Companies = e.arena.companies()
	res.FundingRounds = extractFundingRounds(raw)
	res.Updates = extractUpdates(raw)

	scoreAll(res.Companies)

	zap.L().Info("triangulation: complete",
		zap.Int("companies", len(res.Companies)),
		zap.Int("funding_rounds", len(res.FundingRounds)),
		zap.Int("updates", len(res.Updates)),
		zap.Int("skipped", res.Skipped),
	)

	return res
}

// absorb resolves one record against the arena and either merges it into an
// existing entity or seeds a new one.
func (e *Engine) absorb(rec model.RawRecord) {
	if key, ok := e.arena.resolve(rec); ok {
		merge(e.arena.byKey[key], rec)
		zap.L().Debug("triangulation: merged record",
			zap.String("name", rec.Name),
			zap.String("entity_key", key),
		)
		return
	}

	key := entityKey(rec)
	e.arena.add(key, model.NewCompany(rec))
	zap.L().Debug("triangulation: new entity",
		zap.String("name", rec.Name),
		zap.String("entity_key", key),
	)
}

func sortedSources(raw map[string][]model.RawRecord) []string {
	sources := make([]string, 0, len(raw))
	for s := range raw {
		sources = append(sources, s)
	}
	sort.Strings(sources)
	return sources
}
