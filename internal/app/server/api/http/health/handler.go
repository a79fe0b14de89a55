package health

import (
	"context"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"golang.org/x/exp/slog"
)

// Pinger проверяет доступность хранилища.
type Pinger interface {
	Ping(ctx context.Context) error
}

type Handler struct {
	db         Pinger
	log        *slog.Logger
	middleware huma.Middlewares
}

func NewHandler(db Pinger, log *slog.Logger, middleware huma.Middlewares) *Handler {
	return &Handler{
		db:         db,
		log:        log,
		middleware: middleware,
	}
}

func (h *Handler) SetupRoutes(api huma.API) {
	huma.Register(api, h.healthCheckOp(), h.healthCheck)
}

func (h *Handler) healthCheck(ctx context.Context, _ *Input) (*Output, error) {
	h.log.Debug("health check request received")

	if h.db == nil {
		return &Output{Body: Response{Status: "OK", Storage: "unknown"}}, nil
	}

	start := time.Now()
	if err := h.db.Ping(ctx); err != nil {
		h.log.Warn("storage ping failed", slog.String("error", err.Error()))
		return nil, huma.Error503ServiceUnavailable("storage unavailable: " + err.Error())
	}

	return &Output{
		Body: Response{
			Status:  "OK",
			Storage: "up",
			PingMS:  time.Since(start).Milliseconds(),
		},
	}, nil
}
