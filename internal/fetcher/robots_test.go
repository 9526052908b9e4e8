package fetcher

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRobots_AllowedAndDisallowed(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("User-agent: *\nDisallow: /admin/\n"))
	}))
	defer srv.Close()

	r := NewRobots("startup-cli-test/1.0", 5*time.Second)
	ctx := context.Background()

	assert.True(t, r.Allowed(ctx, srv.URL+"/news/some-article"))
	assert.False(t, r.Allowed(ctx, srv.URL+"/admin/settings"))
}

func TestRobots_AllowsWhenUnfetchable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	srv.Close() // connection refused for every request

	r := NewRobots("startup-cli-test/1.0", time.Second)
	assert.True(t, r.Allowed(context.Background(), srv.URL+"/anything"))
}

func TestRobots_CachesPerHost(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		_, _ = w.Write([]byte("User-agent: *\nAllow: /\n"))
	}))
	defer srv.Close()

	r := NewRobots("startup-cli-test/1.0", 5*time.Second)
	ctx := context.Background()

	r.Allowed(ctx, srv.URL+"/a")
	r.Allowed(ctx, srv.URL+"/b")
	assert.Equal(t, int32(1), calls.Load())
}

func TestRobots_MalformedURLAllowed(t *testing.T) {
	r := NewRobots("startup-cli-test/1.0", time.Second)
	assert.True(t, r.Allowed(context.Background(), "://not a url"))
}
