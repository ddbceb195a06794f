// Package parcel looks up Austin parcel records by address: parcel
// geometry and size, base zoning, and historic-district membership. A
// failed or partial lookup degrades to a best-effort estimated Property
// rather than an error; retry and backoff are the caller's concern.
package parcel

import (
	"context"
	"net/http"
	"time"

	"golang.org/x/time/rate"
)

// Client resolves an address into a Property-shaped parcel record.
type Client interface {
	// Lookup runs the parcel -> zoning -> historic-district chain.
	Lookup(ctx context.Context, address string) (*Record, error)
}

// Record is the merged outcome of the lookup chain.
type Record struct {
	Address     string
	ParcelID    string
	LotAreaSqFt float64
	Width       float64 // 0 when the layer carries no dimensions
	Depth       float64
	ZoningCode  string
	Historic    bool
	Source      string // "parcel_api" or "estimated"
	Matched     bool
}

// Option configures the client.
type Option func(*client)

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *client) { c.httpClient = hc }
}

// WithBaseURL points the client at a different feature-service root. Used
// by tests and by deployments that proxy the city endpoints.
func WithBaseURL(u string) Option {
	return func(c *client) { c.baseURL = u }
}

// WithRateLimit sets the requests-per-second limit for city API calls.
func WithRateLimit(rps float64) Option {
	return func(c *client) { c.limiter = rate.NewLimiter(rate.Limit(rps), int(rps)) }
}

type client struct {
	httpClient *http.Client
	baseURL    string
	limiter    *rate.Limiter
}

// defaultBaseURL is the City of Austin open-data feature service root.
const defaultBaseURL = "https://services.austintexas.gov/gis/rest/services"

// NewClient creates a parcel lookup Client.
func NewClient(opts ...Option) Client {
	c := &client{
		httpClient: &http.Client{Timeout: 30 * time.Second},
		baseURL:    defaultBaseURL,
		limiter:    rate.NewLimiter(10, 10), // city endpoints throttle hard past ~10 req/s
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}
