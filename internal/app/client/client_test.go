package client

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"sensorlist/internal/app/client/config"
	"sensorlist/internal/domain/record"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/slog"
)

func newTestApp(t *testing.T, h http.HandlerFunc) *App {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)

	cfg := &config.Config{ServerAddress: srv.URL + "/", Output: "text", Timeout: 2 * time.Second}
	return New(cfg, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestApp_ListRecords(t *testing.T) {
	app := newTestApp(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/api/v1/records", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		io.WriteString(w, `{"status":"success","results":2,"notes":[{"id":1,"name":"a"},{"id":2,"name":"b"}]}`)
	})

	recs, err := app.ListRecords(context.Background())
	require.NoError(t, err)
	require.Len(t, recs, 2)
	assert.Equal(t, record.Record{ID: 2, Attributes: record.Attributes{"name": "b"}}, recs[1])
}

func TestApp_CreateRecord(t *testing.T) {
	app := newTestApp(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		body, _ := io.ReadAll(r.Body)
		assert.JSONEq(t, `{"id":1,"name":"temp-sensor"}`, string(body))
		io.WriteString(w, `{"status":"success","data":{"id":1,"name":"temp-sensor"}}`)
	})

	rec, err := app.CreateRecord(context.Background(), record.Record{ID: 1, Attributes: record.Attributes{"name": "temp-sensor"}})
	require.NoError(t, err)
	assert.Equal(t, 1, rec.ID)
	assert.Equal(t, "temp-sensor", rec.Attributes["name"])
}

func TestApp_UpdateRecord(t *testing.T) {
	app := newTestApp(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		assert.Equal(t, "/api/v1/records/3", r.URL.Path)
		body, _ := io.ReadAll(r.Body)
		assert.JSONEq(t, `{"name":"renamed"}`, string(body))
		io.WriteString(w, `{"status":"success","data":{"id":3,"name":"renamed"}}`)
	})

	rec, err := app.UpdateRecord(context.Background(), 3, record.Attributes{"name": "renamed"})
	require.NoError(t, err)
	assert.Equal(t, "renamed", rec.Attributes["name"])
}

func TestApp_Errors(t *testing.T) {
	t.Run("envelope", func(t *testing.T) {
		app := newTestApp(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNotFound)
			io.WriteString(w, `{"status":"fail","message":"Note with ID: 9 not found"}`)
		})

		_, err := app.GetRecord(context.Background(), 9)
		var apiErr *APIError
		require.True(t, errors.As(err, &apiErr))
		assert.Equal(t, http.StatusNotFound, apiErr.StatusCode)
		assert.Equal(t, "fail", apiErr.Status)
		assert.Equal(t, "Note with ID: 9 not found", apiErr.Message)
	})

	t.Run("plain body", func(t *testing.T) {
		app := newTestApp(t, func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "bad gateway", http.StatusBadGateway)
		})

		err := app.DeleteRecord(context.Background(), 1)
		var apiErr *APIError
		require.True(t, errors.As(err, &apiErr))
		assert.Equal(t, "error", apiErr.Status)
		assert.Equal(t, "bad gateway", apiErr.Message)
	})
}

func TestApp_DeleteRecord_NoContent(t *testing.T) {
	app := newTestApp(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		w.WriteHeader(http.StatusNoContent)
	})

	assert.NoError(t, app.DeleteRecord(context.Background(), 1))
}

func TestFromContext(t *testing.T) {
	_, err := FromContext(context.Background())
	assert.Error(t, err)

	app := &App{}
	got, err := FromContext(WithApp(context.Background(), app))
	require.NoError(t, err)
	assert.Same(t, app, got)
}
