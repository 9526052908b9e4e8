package store

import (
	"context"

	"github.com/lemina/startup-cli/internal/triangulate"
)

// Stats summarizes one persistence pass.
type Stats struct {
	Companies     int `json:"companies"`
	FundingRounds int `json:"funding_rounds"`
	Updates       int `json:"updates"`
}

// Store defines the persistence interface for triangulated results.
type Store interface {
	// SaveResult upserts companies by name and appends funding rounds
	// and updates, joining each event to its company id.
	SaveResult(ctx context.Context, result *triangulate.Result) (*Stats, error)

	// CountByVerification returns company counts per verification tier.
	CountByVerification(ctx context.Context) (map[string]int, error)

	// Lifecycle
	Migrate(ctx context.Context) error
	Close() error
}
