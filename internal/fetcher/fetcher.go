package fetcher

import (
	"context"
	"errors"
)

// ErrRobotsDisallowed is returned when a page is blocked by robots.txt.
var ErrRobotsDisallowed = errors.New("disallowed by robots.txt")

// Fetcher defines the interface for downloading remote pages.
type Fetcher interface {
	// FetchPage fetches the URL and returns the body as a string.
	FetchPage(ctx context.Context, url string) (string, error)
}
