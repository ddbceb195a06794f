// Package store persists analysis runs. Two backends are provided: SQLite
// for single-user local work and Postgres for shared deployments, selected
// by the store.driver config key.
package store

import (
	"context"

	"github.com/lotworks/lotsplit/internal/model"
)

// RunFilter specifies criteria for listing runs.
type RunFilter struct {
	Limit  int `json:"limit,omitempty"`
	Offset int `json:"offset,omitempty"`
}

// Store defines the persistence interface for analysis runs.
type Store interface {
	// SaveRun persists a completed batch: the config used, the ranked
	// results, and the raw input row count.
	SaveRun(ctx context.Context, cfg model.AnalysisConfig, results []model.AnalysisResult, propertyCount int) (*model.Run, error)
	GetRun(ctx context.Context, runID string) (*model.Run, error)
	ListRuns(ctx context.Context, filter RunFilter) ([]model.Run, error)

	Migrate(ctx context.Context) error
	Close() error
}
