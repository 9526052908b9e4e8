package main

import (
	"context"
	"time"

	"github.com/rotisserie/eris"

	"github.com/lemina/startup-cli/internal/config"
	"github.com/lemina/startup-cli/internal/fetcher"
	"github.com/lemina/startup-cli/internal/scraper"
	"github.com/lemina/startup-cli/internal/store"
)

func initStore(ctx context.Context) (store.Store, error) {
	switch cfg.Store.Driver {
	case "sqlite":
		path := cfg.Store.Path
		if path == "" {
			path = "lemina.db"
		}
		return store.NewSQLite(path)
	case "postgres":
		if cfg.Store.DatabaseURL == "" {
			return nil, eris.New("postgres driver requires store.database_url (LEMINA_STORE_DATABASE_URL)")
		}
		return store.NewPostgres(ctx, cfg.Store.DatabaseURL, nil)
	default:
		return nil, eris.Errorf("unsupported store driver: %s", cfg.Store.Driver)
	}
}

func newRegistry(c *config.Config) *scraper.Registry {
	f := fetcher.NewHTTPFetcher(fetcher.HTTPOptions{
		UserAgent:    c.Global.UserAgent,
		Timeout:      time.Duration(c.Fetch.TimeoutSecs) * time.Second,
		MaxRetries:   c.Fetch.MaxRetries,
		CacheTTL:     time.Duration(c.Fetch.CacheTTLMins) * time.Minute,
		SkipRobots:   c.Fetch.SkipRobots,
		RateLimiters: fetcher.DefaultRateLimiters(),
	})

	reg := scraper.NewRegistry()
	reg.Register(scraper.NewTechCabal(f))
	reg.Register(scraper.NewTechpoint(f))
	return reg
}
