package store

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lotworks/lotsplit/internal/model"
)

func newMockStore(t *testing.T) (*PostgresStore, pgxmock.PgxPoolIface) {
	t.Helper()
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(mock.Close)
	return &PostgresStore{pool: mock}, mock
}

func TestPostgresMigrate(t *testing.T) {
	s, mock := newMockStore(t)

	mock.ExpectExec("CREATE TABLE IF NOT EXISTS runs").
		WillReturnResult(pgxmock.NewResult("CREATE", 0))

	require.NoError(t, s.Migrate(context.Background()))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresSaveRun(t *testing.T) {
	s, mock := newMockStore(t)

	mock.ExpectExec("INSERT INTO runs").
		WithArgs(pgxmock.AnyArg(), pgxmock.AnyArg(), 2, pgxmock.AnyArg(), pgxmock.AnyArg()).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	run, err := s.SaveRun(context.Background(), model.DefaultAnalysisConfig(), testResults(), 2)
	require.NoError(t, err)
	assert.NotEmpty(t, run.ID)
	assert.Equal(t, 2, run.PropertyCount)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresGetRun(t *testing.T) {
	s, mock := newMockStore(t)

	cfg := model.DefaultAnalysisConfig()
	cfgJSON, _ := json.Marshal(cfg)
	resultsJSON, _ := json.Marshal(testResults())
	created := time.Now().UTC()

	mock.ExpectQuery("SELECT id, config, property_count, results, created_at FROM runs WHERE").
		WithArgs("run-1").
		WillReturnRows(pgxmock.NewRows([]string{"id", "config", "property_count", "results", "created_at"}).
			AddRow("run-1", string(cfgJSON), 2, string(resultsJSON), created))

	run, err := s.GetRun(context.Background(), "run-1")
	require.NoError(t, err)
	assert.Equal(t, "run-1", run.ID)
	assert.Equal(t, cfg, run.Config)
	require.Len(t, run.Results, 1)
	assert.Equal(t, 85, run.Results[0].Score)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresGetRunNotFound(t *testing.T) {
	s, mock := newMockStore(t)

	mock.ExpectQuery("SELECT id, config, property_count, results, created_at FROM runs WHERE").
		WithArgs("missing").
		WillReturnRows(pgxmock.NewRows([]string{"id", "config", "property_count", "results", "created_at"}))

	_, err := s.GetRun(context.Background(), "missing")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestPostgresListRuns(t *testing.T) {
	s, mock := newMockStore(t)

	cfgJSON, _ := json.Marshal(model.DefaultAnalysisConfig())
	resultsJSON, _ := json.Marshal(testResults())

	rows := pgxmock.NewRows([]string{"id", "config", "property_count", "results", "created_at"}).
		AddRow("run-2", string(cfgJSON), 1, string(resultsJSON), time.Now().UTC()).
		AddRow("run-1", string(cfgJSON), 1, string(resultsJSON), time.Now().UTC().Add(-time.Hour))

	mock.ExpectQuery("SELECT id, config, property_count, results, created_at FROM runs").
		WithArgs(50, 0).
		WillReturnRows(rows)

	runs, err := s.ListRuns(context.Background(), RunFilter{})
	require.NoError(t, err)
	require.Len(t, runs, 2)
	assert.Equal(t, "run-2", runs[0].ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}
