package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"testing"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/slog"
)

func TestLevelFor(t *testing.T) {
	assert.Equal(t, slog.LevelInfo, levelFor(200))
	assert.Equal(t, slog.LevelWarn, levelFor(404))
	assert.Equal(t, slog.LevelError, levelFor(500))
}

func TestMiddleware_LogsRequest(t *testing.T) {
	var buf bytes.Buffer
	log := slog.New(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	_, api := humatest.New(t)
	huma.Register(api, huma.Operation{
		OperationID: "ping",
		Method:      http.MethodGet,
		Path:        "/ping",
		Middlewares: huma.Middlewares{New(log).Middleware()},
	}, func(context.Context, *struct{}) (*struct{}, error) {
		return nil, huma.Error404NotFound("nope")
	})

	resp := api.Get("/ping")
	require.Equal(t, http.StatusNotFound, resp.Code)

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "WARN", entry["level"])
	assert.Equal(t, "HTTP request", entry["msg"])
	assert.Equal(t, "GET", entry["method"])
	assert.Equal(t, "/ping", entry["path"])
	assert.Equal(t, "ping", entry["operation"])
	assert.Equal(t, "http_logger", entry["component"])
	assert.EqualValues(t, 404, entry["status"])
}

type requestIDKey struct{}

// ctxHandler запоминает значение request id из контекста записи.
type ctxHandler struct {
	slog.Handler
	seen *[]any
}

func (h ctxHandler) Handle(ctx context.Context, r slog.Record) error {
	*h.seen = append(*h.seen, ctx.Value(requestIDKey{}))
	return nil
}

func (h ctxHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return ctxHandler{Handler: h.Handler.WithAttrs(attrs), seen: h.seen}
}

func TestMiddleware_PassesRequestContext(t *testing.T) {
	var seen []any
	log := slog.New(ctxHandler{Handler: slog.NewTextHandler(io.Discard, nil), seen: &seen})

	withID := func(ctx huma.Context, next func(huma.Context)) {
		next(huma.WithValue(ctx, requestIDKey{}, "req-42"))
	}

	_, api := humatest.New(t)
	huma.Register(api, huma.Operation{
		OperationID: "ping",
		Method:      http.MethodGet,
		Path:        "/ping",
		Middlewares: huma.Middlewares{withID, New(log).Middleware()},
	}, func(context.Context, *struct{}) (*struct{}, error) {
		return &struct{}{}, nil
	})

	resp := api.Get("/ping")
	require.Less(t, resp.Code, 300)
	assert.Equal(t, []any{"req-42"}, seen)
}
