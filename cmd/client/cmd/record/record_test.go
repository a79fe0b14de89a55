package record

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"sensorlist/internal/app/client"
	"sensorlist/internal/app/client/config"
	"sensorlist/internal/domain/record"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/slog"
)

func TestParseSets(t *testing.T) {
	attrs, err := parseSets([]string{"name=temp-sensor", "location=lab=2"})
	require.NoError(t, err)
	assert.Equal(t, record.Attributes{"name": "temp-sensor", "location": "lab=2"}, attrs)

	for _, bad := range [][]string{{"name"}, {"=x"}, {"id=1"}, {"a=1", "a=2"}} {
		_, err := parseSets(bad)
		assert.Error(t, err, "%v", bad)
	}
}

func runCmd(t *testing.T, h http.HandlerFunc, c *cobra.Command, args ...string) (string, error) {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)

	cfg := &config.Config{ServerAddress: srv.URL, Output: "json", Timeout: 2 * time.Second}
	app := client.New(cfg, slog.New(slog.NewTextHandler(io.Discard, nil)))

	var out bytes.Buffer
	c.SetOut(&out)
	c.SetContext(client.WithApp(context.Background(), app))
	err := c.RunE(c, args)
	return out.String(), err
}

func TestGetCmd(t *testing.T) {
	out, err := runCmd(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/records/1", r.URL.Path)
		io.WriteString(w, `{"status":"success","data":{"id":1,"name":"temp-sensor"}}`)
	}, GetCmd, "1")
	require.NoError(t, err)
	assert.JSONEq(t, `{"id":1,"name":"temp-sensor"}`, out)
}

func TestGetCmd_NotFound(t *testing.T) {
	_, err := runCmd(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		io.WriteString(w, `{"status":"fail","message":"Note with ID: 1 not found"}`)
	}, GetCmd, "1")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Note with ID: 1 not found")
}

func TestGetCmd_BadID(t *testing.T) {
	_, err := runCmd(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Fail(t, "request must not be sent")
	}, GetCmd, "abc")
	assert.Error(t, err)
}
