//GET    /api/v1/records       # Список записей
//POST   /api/v1/records       # Создать запись
//GET    /api/v1/records/{id}  # Получить запись
//PUT    /api/v1/records/{id}  # Обновить запись
//DELETE /api/v1/records/{id}  # Удалить запись
//GET    /api/v1/health        # Проверка хранилища
//GET    /metrics              # Prometheus

package api

import (
	"sensorlist/internal/app/server/api/http/envelope"
	healthAPI "sensorlist/internal/app/server/api/http/health"
	"sensorlist/internal/app/server/api/http/middleware"
	"sensorlist/internal/app/server/api/http/middleware/logger"
	"sensorlist/internal/app/server/api/http/middleware/metrics"
	recordAPI "sensorlist/internal/app/server/api/http/record"
	"sensorlist/internal/domain/record"
	"sensorlist/internal/infrastructure/storage"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humachi"
	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/exp/slog"
)

type Handlers struct {
	Health *healthAPI.Handler
	Record *recordAPI.Handler
}

// New создает *chi.Mux со всеми операциями через huma.Register
func New(store storage.Storage, schema record.Schema, log *slog.Logger) *chi.Mux {
	// все ошибки, в том числе от валидатора huma, отдаются в одном формате
	huma.NewError = envelope.NewError

	mux := chi.NewMux()

	config := huma.DefaultConfig("Sensor List API", "1.0.0")
	config.CreateHooks = nil

	API := humachi.New(mux, config)

	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	mux.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))

	h := handlers(store, schema, log, metrics.New(reg))
	h.Health.SetupRoutes(API)
	h.Record.SetupRoutes(API)

	return mux
}

func handlers(store storage.Storage, schema record.Schema, log *slog.Logger, m *metrics.Metrics) *Handlers {
	loggerMW := logger.New(log)
	middlewares := middleware.NewContainer()

	middlewares.Add(m.Middleware(), loggerMW.Middleware())
	healthHandler := healthAPI.NewHandler(store, log, middlewares.GetAllAndClear())

	recordService := record.NewService(store.Records(), schema, log)
	middlewares.Add(m.Middleware(), loggerMW.Middleware())
	recordHandler := recordAPI.NewHandler(recordService, schema, log, middlewares.GetAllAndClear())

	return &Handlers{
		Health: healthHandler,
		Record: recordHandler,
	}
}
