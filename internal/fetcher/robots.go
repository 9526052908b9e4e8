package fetcher

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"sync"
	"time"

	"github.com/temoto/robotstxt"
	"go.uber.org/zap"
)

// Robots checks robots.txt compliance, caching the parsed rules per host.
type Robots struct {
	mu        sync.RWMutex
	byHost    map[string]*robotstxt.RobotsData
	client    *http.Client
	userAgent string
}

// NewRobots creates a robots.txt checker.
func NewRobots(userAgent string, timeout time.Duration) *Robots {
	return &Robots{
		byHost:    make(map[string]*robotstxt.RobotsData),
		client:    &http.Client{Timeout: timeout},
		userAgent: userAgent,
	}
}

// Allowed reports whether the URL may be fetched under the host's
// robots.txt. A missing or unfetchable robots.txt allows by default:
// politeness must not turn into an availability dependency.
func (r *Robots) Allowed(ctx context.Context, rawURL string) bool {
	parsed, err := url.Parse(rawURL)
	if err != nil || parsed.Host == "" {
		return true
	}

	data := r.robotsFor(ctx, parsed)
	if data == nil {
		return true
	}

	return data.TestAgent(parsed.Path, r.userAgent)
}

func (r *Robots) robotsFor(ctx context.Context, parsed *url.URL) *robotstxt.RobotsData {
	r.mu.RLock()
	data, cached := r.byHost[parsed.Host]
	r.mu.RUnlock()
	if cached {
		return data
	}

	robotsURL := fmt.Sprintf("%s://%s/robots.txt", parsed.Scheme, parsed.Host)
	data = r.fetch(ctx, robotsURL)

	r.mu.Lock()
	r.byHost[parsed.Host] = data
	r.mu.Unlock()

	return data
}

func (r *Robots) fetch(ctx context.Context, robotsURL string) *robotstxt.RobotsData {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, robotsURL, nil)
	if err != nil {
		return nil
	}
	req.Header.Set("User-Agent", r.userAgent)

	resp, err := r.client.Do(req)
	if err != nil {
		zap.L().Debug("robots: fetch failed, allowing by default",
			zap.String("url", robotsURL), zap.Error(err))
		return nil
	}
	defer func() { _ = resp.Body.Close() }()

	data, err := robotstxt.FromResponse(resp)
	if err != nil {
		zap.L().Debug("robots: parse failed, allowing by default",
			zap.String("url", robotsURL), zap.Error(err))
		return nil
	}
	return data
}
