package repository

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/eugenenazirov/licenses-generator/internal/config"
)

const (
	defaultTimeout     = 10 * time.Second
	defaultConcurrency = 4
	defaultRateRPS     = 5.0
	defaultRateBurst   = 5
)

// Result is the outcome of probing one repository.
type Result struct {
	config.RepositoryEntry
	Reachable  bool
	StatusCode int
	Latency    time.Duration
	Err        error
}

// CheckerOption configures NewChecker.
type CheckerOption func(*Checker)

// WithHTTPClient overrides the HTTP client used for probes.
func WithHTTPClient(client *http.Client) CheckerOption {
	return func(c *Checker) {
		if client != nil {
			c.client = client
		}
	}
}

// WithRateLimit throttles probes to rps requests per second. A non-positive rps disables throttling.
func WithRateLimit(rps float64, burst int) CheckerOption {
	return func(c *Checker) {
		c.limiter = newTokenBucketLimiter(rps, burst)
	}
}

// WithConcurrency bounds the number of probes in flight.
func WithConcurrency(n int) CheckerOption {
	return func(c *Checker) {
		if n > 0 {
			c.concurrency = n
		}
	}
}

// WithTimeout bounds each individual probe.
func WithTimeout(d time.Duration) CheckerOption {
	return func(c *Checker) {
		if d > 0 {
			c.timeout = d
		}
	}
}

// Checker probes repository base URLs over HTTP.
type Checker struct {
	client      *http.Client
	limiter     rateLimiter
	concurrency int
	timeout     time.Duration
	logger      *zap.Logger
}

// NewChecker constructs a Checker with the provided options.
func NewChecker(logger *zap.Logger, opts ...CheckerOption) *Checker {
	if logger == nil {
		logger = zap.NewNop()
	}
	c := &Checker{
		client:      http.DefaultClient,
		limiter:     newTokenBucketLimiter(defaultRateRPS, defaultRateBurst),
		concurrency: defaultConcurrency,
		timeout:     defaultTimeout,
		logger:      logger,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Check probes every entry and returns results in input order. Probe failures
// are reported per result; Check itself never fails.
func (c *Checker) Check(ctx context.Context, entries []config.RepositoryEntry) []Result {
	results := make([]Result, len(entries))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(c.concurrency)

	for i, entry := range entries {
		results[i].RepositoryEntry = entry
		g.Go(func() error {
			results[i] = c.probe(ctx, entry)
			return nil
		})
	}
	_ = g.Wait()

	return results
}

// probe waits for a rate-limit token and issues one HEAD request, retrying as GET on 405.
func (c *Checker) probe(ctx context.Context, entry config.RepositoryEntry) Result {
	result := Result{RepositoryEntry: entry}

	if err := c.limiter.Wait(ctx); err != nil {
		result.Err = err
		return result
	}

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	start := time.Now()
	status, err := c.request(ctx, http.MethodHead, entry.URL)
	if err == nil && status == http.StatusMethodNotAllowed {
		status, err = c.request(ctx, http.MethodGet, entry.URL)
	}
	result.Latency = time.Since(start)

	if err != nil {
		result.Err = err
		c.logger.Warn("repository probe failed",
			zap.String("repository", entry.Name),
			zap.String("url", entry.URL),
			zap.Error(err),
		)
		return result
	}

	result.StatusCode = status
	result.Reachable = status < http.StatusBadRequest
	c.logger.Debug("repository probed",
		zap.String("repository", entry.Name),
		zap.String("url", entry.URL),
		zap.Int("status", status),
		zap.Duration("latency", result.Latency),
	)
	return result
}

// request performs a body-less request and returns the response status code.
func (c *Checker) request(ctx context.Context, method, url string) (int, error) {
	req, err := http.NewRequestWithContext(ctx, method, url, nil)
	if err != nil {
		return 0, fmt.Errorf("build %s request: %w", method, err)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return 0, fmt.Errorf("%s %s: %w", method, url, err)
	}
	_ = resp.Body.Close()

	return resp.StatusCode, nil
}
