package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type healthBody struct {
	Service    string `json:"service"`
	Status     string `json:"status"`
	Components map[string]struct {
		Status string `json:"status"`
	} `json:"components"`
}

func newHealthDB(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	return sqlx.NewDb(db, "sqlmock"), mock
}

func TestHealth_ReportsSubmissionsStoreUp(t *testing.T) {
	db, mock := newHealthDB(t)
	mock.ExpectPing()
	handler := NewHealthHandler(db, nil)

	rec := doJSON(newEcho(), handler.Health, http.MethodGet, "/health", "", nil)

	require.Equal(t, http.StatusOK, rec.Code)

	var body healthBody
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))

	assert.Equal(t, "leads-service", body.Service)
	assert.Equal(t, "ok", body.Status)
	assert.Equal(t, "up", body.Components["submissionsStore"].Status)
	assert.Equal(t, "disabled", body.Components["deliveryCache"].Status)
}

func TestHealth_SubmissionsStoreDownTakesStatusDown(t *testing.T) {
	db, mock := newHealthDB(t)
	mock.ExpectPing().WillReturnError(errors.New("connection refused"))
	handler := NewHealthHandler(db, nil)

	rec := doJSON(newEcho(), handler.Health, http.MethodGet, "/health", "", nil)

	require.Equal(t, http.StatusOK, rec.Code)

	var body healthBody
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))

	assert.Equal(t, "down", body.Status)
	assert.Equal(t, "down", body.Components["submissionsStore"].Status)
}

func TestHealth_NoDatabaseConfiguredIsDown(t *testing.T) {
	handler := NewHealthHandler(nil, nil)

	rec := doJSON(newEcho(), handler.Health, http.MethodGet, "/health", "", nil)

	require.Equal(t, http.StatusOK, rec.Code)

	var body healthBody
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "down", body.Status)
}
