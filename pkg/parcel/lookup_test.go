package parcel

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// layerServer fakes the three feature layers. A nil handler for a layer
// returns an empty feature set.
func layerServer(t *testing.T, handlers map[string]http.HandlerFunc) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		parts := strings.Split(strings.Trim(r.URL.Path, "/"), "/")
		require.Len(t, parts, 2)
		layer := parts[0]
		if h, ok := handlers[layer]; ok {
			h(w, r)
			return
		}
		fmt.Fprint(w, `{"features":[]}`)
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestLookupFullChain(t *testing.T) {
	t.Parallel()

	srv := layerServer(t, map[string]http.HandlerFunc{
		"parcels": func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "2204 Alta Vista Ave", r.URL.Query().Get("address"))
			fmt.Fprint(w, `{"features":[{"attributes":{
				"parcel_id":"0123456789",
				"situs_address":"2204 ALTA VISTA AVE",
				"lot_sqft":14500,
				"lot_width":140,
				"lot_depth":103.6}}]}`)
		},
		"zoning": func(w http.ResponseWriter, r *http.Request) {
			fmt.Fprint(w, `{"features":[{"attributes":{"zoning_ztype":"SF-3"}}]}`)
		},
		"historic": func(w http.ResponseWriter, r *http.Request) {
			fmt.Fprint(w, `{"features":[{"attributes":{"district_name":"Travis Heights"}}]}`)
		},
	})

	c := NewClient(WithBaseURL(srv.URL))
	rec, err := c.Lookup(context.Background(), "2204 Alta Vista Ave")
	require.NoError(t, err)

	assert.True(t, rec.Matched)
	assert.Equal(t, "parcel_api", rec.Source)
	assert.Equal(t, "0123456789", rec.ParcelID)
	assert.Equal(t, 14500.0, rec.LotAreaSqFt)
	assert.Equal(t, 140.0, rec.Width)
	assert.Equal(t, 103.6, rec.Depth)
	assert.Equal(t, "SF-3", rec.ZoningCode)
	assert.True(t, rec.Historic)
}

func TestLookupNoParcelMatchDegrades(t *testing.T) {
	t.Parallel()

	srv := layerServer(t, nil) // every layer empty

	c := NewClient(WithBaseURL(srv.URL))
	rec, err := c.Lookup(context.Background(), "99 Nowhere Ln")
	require.NoError(t, err)

	assert.False(t, rec.Matched)
	assert.Equal(t, "estimated", rec.Source)
	assert.Equal(t, "99 Nowhere Ln", rec.Address)
	assert.Zero(t, rec.LotAreaSqFt)
}

func TestLookupParcelErrorDegrades(t *testing.T) {
	t.Parallel()

	srv := layerServer(t, map[string]http.HandlerFunc{
		"parcels": func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadGateway)
		},
	})

	c := NewClient(WithBaseURL(srv.URL))
	rec, err := c.Lookup(context.Background(), "2204 Alta Vista Ave")
	require.NoError(t, err)
	assert.False(t, rec.Matched)
	assert.Equal(t, "estimated", rec.Source)
}

func TestLookupZoningMissKeepsParcel(t *testing.T) {
	t.Parallel()

	srv := layerServer(t, map[string]http.HandlerFunc{
		"parcels": func(w http.ResponseWriter, r *http.Request) {
			fmt.Fprint(w, `{"features":[{"attributes":{"parcel_id":"01","lot_sqft":9000}}]}`)
		},
		"zoning": func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		},
	})

	c := NewClient(WithBaseURL(srv.URL))
	rec, err := c.Lookup(context.Background(), "800 Elm St")
	require.NoError(t, err)

	assert.True(t, rec.Matched)
	assert.Empty(t, rec.ZoningCode)
	assert.False(t, rec.Historic)
}

func TestLookupCancelledContext(t *testing.T) {
	t.Parallel()

	srv := layerServer(t, nil)
	c := NewClient(WithBaseURL(srv.URL), WithRateLimit(1))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	rec, err := c.Lookup(ctx, "800 Elm St")
	// The parcel stage degrades on any failure, cancellation included.
	require.NoError(t, err)
	assert.False(t, rec.Matched)
}
