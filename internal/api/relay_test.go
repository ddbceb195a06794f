package api

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRelayRequiresURL(t *testing.T) {
	t.Parallel()
	srv := NewServer(nil, time.Second)

	rec := httptest.NewRecorder()
	srv.Router().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/relay", nil))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `{"error":"URL parameter is required"}`, rec.Body.String())
}

func TestRelayForwardsBodyVerbatim(t *testing.T) {
	t.Parallel()

	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain") // relay normalizes to json
		_, _ = w.Write([]byte(`{"listings":[{"price":650000}]}`))
	}))
	t.Cleanup(upstream.Close)

	srv := NewServer(nil, time.Second)
	req := httptest.NewRequest(http.MethodGet, "/relay?url="+upstream.URL, nil)
	rec := httptest.NewRecorder()
	srv.Router().ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.Equal(t, `{"listings":[{"price":650000}]}`, rec.Body.String())
}

func TestRelayUpstreamFailure(t *testing.T) {
	t.Parallel()

	// A closed server guarantees a connection error.
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	upstream.Close()

	srv := NewServer(nil, time.Second)
	req := httptest.NewRequest(http.MethodGet, "/relay?url="+upstream.URL, nil)
	rec := httptest.NewRecorder()
	srv.Router().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.JSONEq(t, `{"error":"Failed to fetch data"}`, rec.Body.String())
}

func TestRelayPassesUpstreamStatusBodies(t *testing.T) {
	t.Parallel()

	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
		_, _ = w.Write([]byte(`{"error":"upstream says no"}`))
	}))
	t.Cleanup(upstream.Close)

	srv := NewServer(nil, time.Second)
	req := httptest.NewRequest(http.MethodGet, "/relay?url="+upstream.URL, nil)
	rec := httptest.NewRecorder()
	srv.Router().ServeHTTP(rec, req)

	// Non-2xx upstreams are not fetch failures; the body still relays.
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, `{"error":"upstream says no"}`, rec.Body.String())
}
