// Package api exposes the analyzer over HTTP: a batch analyze endpoint,
// stored-run access, plot-map rendering, and the CORS relay the browser UI
// uses to reach third-party listing APIs.
package api

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"go.uber.org/zap"

	"github.com/lotworks/lotsplit/internal/analysis"
	"github.com/lotworks/lotsplit/internal/model"
	"github.com/lotworks/lotsplit/internal/plotmap"
	"github.com/lotworks/lotsplit/internal/store"
)

// Server wires the HTTP handlers to a run store.
type Server struct {
	store       store.Store
	relayClient *http.Client
}

// NewServer creates a Server. store may be nil, in which case run
// persistence endpoints return 503.
func NewServer(st store.Store, relayTimeout time.Duration) *Server {
	if relayTimeout == 0 {
		relayTimeout = 15 * time.Second
	}
	return &Server{
		store:       st,
		relayClient: &http.Client{Timeout: relayTimeout},
	}
}

// Router builds the chi router with permissive CORS; the analyzer UI is
// served from file:// or another origin.
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Content-Type"},
	}))

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	r.Post("/api/analyze", s.handleAnalyze)
	r.Get("/api/runs", s.handleListRuns)
	r.Get("/api/runs/{id}", s.handleGetRun)
	r.Get("/api/plotmap/{id}/{idx}", s.handlePlotMap)
	r.Get("/relay", s.handleRelay)

	return r
}

// handleAnalyze runs a batch and optionally persists it (persist=1).
func (s *Server) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Properties []model.Property     `json:"properties"`
		Config     model.AnalysisConfig `json:"config"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if len(req.Properties) == 0 {
		writeError(w, http.StatusBadRequest, "properties are required")
		return
	}

	results := analysis.AnalyzeBatch(r.Context(), req.Properties, req.Config)

	if r.URL.Query().Get("persist") == "1" && s.store != nil {
		run, err := s.store.SaveRun(r.Context(), req.Config.WithDefaults(), results, len(req.Properties))
		if err != nil {
			zap.L().Error("api: persist run failed", zap.Error(err))
		} else {
			w.Header().Set("X-Run-ID", run.ID)
		}
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"count":   len(results),
		"results": results,
	})
}

func (s *Server) handleListRuns(w http.ResponseWriter, r *http.Request) {
	if s.store == nil {
		writeError(w, http.StatusServiceUnavailable, "run store not configured")
		return
	}
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	runs, err := s.store.ListRuns(r.Context(), store.RunFilter{Limit: limit})
	if err != nil {
		zap.L().Error("api: list runs failed", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "list runs failed")
		return
	}
	writeJSON(w, http.StatusOK, runs)
}

func (s *Server) handleGetRun(w http.ResponseWriter, r *http.Request) {
	if s.store == nil {
		writeError(w, http.StatusServiceUnavailable, "run store not configured")
		return
	}
	run, err := s.store.GetRun(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusNotFound, "run not found")
		return
	}
	writeJSON(w, http.StatusOK, run)
}

// handlePlotMap renders the SVG sketch of one result from a stored run.
func (s *Server) handlePlotMap(w http.ResponseWriter, r *http.Request) {
	if s.store == nil {
		writeError(w, http.StatusServiceUnavailable, "run store not configured")
		return
	}
	run, err := s.store.GetRun(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusNotFound, "run not found")
		return
	}
	idx, err := strconv.Atoi(chi.URLParam(r, "idx"))
	if err != nil || idx < 0 || idx >= len(run.Results) {
		writeError(w, http.StatusNotFound, "result index out of range")
		return
	}

	res := run.Results[idx]
	svg, err := plotmap.Render(res.Property, res.Feasibility)
	if err != nil {
		writeError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}
	w.Header().Set("Content-Type", "image/svg+xml")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(svg))
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
