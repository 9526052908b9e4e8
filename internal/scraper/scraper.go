// Package scraper collects raw company mentions from Nigerian tech news
// sources. Each source implements Scraper and registers itself in a
// Registry; the pipeline selects enabled sources from config and runs
// them concurrently.
package scraper

import (
	"context"

	"github.com/rotisserie/eris"

	"github.com/lemina/startup-cli/internal/model"
)

// Scraper defines the interface each news source must implement.
type Scraper interface {
	// Name returns the unique source identifier (e.g., "techcabal").
	Name() string

	// BaseURL returns the listing URL the scraper starts from.
	BaseURL() string

	// Scrape walks up to maxPages listing pages, follows article links,
	// and returns one raw record per Nigerian startup article.
	Scrape(ctx context.Context, maxPages int) ([]model.RawRecord, error)
}

// Registry maps scraper names to their implementations.
type Registry struct {
	scrapers map[string]Scraper
	order    []string // insertion order for deterministic iteration
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		scrapers: make(map[string]Scraper),
	}
}

// Register adds a scraper to the registry.
func (r *Registry) Register(s Scraper) {
	name := s.Name()
	r.scrapers[name] = s
	r.order = append(r.order, name)
}

// Get returns a scraper by name.
func (r *Registry) Get(name string) (Scraper, error) {
	s, ok := r.scrapers[name]
	if !ok {
		return nil, eris.Errorf("scraper: unknown source %q", name)
	}
	return s, nil
}

// Select returns the named scrapers, or all of them in registration
// order when names is empty.
func (r *Registry) Select(names []string) ([]Scraper, error) {
	if len(names) == 0 {
		return r.All(), nil
	}
	var result []Scraper
	for _, name := range names {
		s, err := r.Get(name)
		if err != nil {
			return nil, err
		}
		result = append(result, s)
	}
	return result, nil
}

// All returns every registered scraper in registration order.
func (r *Registry) All() []Scraper {
	result := make([]Scraper, 0, len(r.order))
	for _, name := range r.order {
		result = append(result, r.scrapers[name])
	}
	return result
}

// Names returns the registered scraper names in registration order.
func (r *Registry) Names() []string {
	names := make([]string, len(r.order))
	copy(names, r.order)
	return names
}
