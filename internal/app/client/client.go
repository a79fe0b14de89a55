package client

import (
	"context"
	"errors"

	"sensorlist/internal/app/client/config"
	"sensorlist/internal/domain/record"

	"golang.org/x/exp/slog"
)

type App struct {
	config *config.Config
	log    *slog.Logger
	http   *httpClient
}

func New(cfg *config.Config, log *slog.Logger) *App {
	return &App{
		config: cfg,
		log:    log,
		http:   NewHTTPClient(cfg.ServerAddress, cfg.Timeout, log),
	}
}

func (a *App) Config() *config.Config {
	return a.config
}

func (a *App) CheckConnection(ctx context.Context) error {
	return a.http.HealthCheck(ctx)
}

func (a *App) ListRecords(ctx context.Context) ([]record.Record, error) {
	return a.http.ListRecords(ctx)
}

func (a *App) GetRecord(ctx context.Context, id int) (*record.Record, error) {
	return a.http.GetRecord(ctx, id)
}

func (a *App) CreateRecord(ctx context.Context, rec record.Record) (*record.Record, error) {
	return a.http.CreateRecord(ctx, rec)
}

func (a *App) UpdateRecord(ctx context.Context, id int, attrs record.Attributes) (*record.Record, error) {
	return a.http.UpdateRecord(ctx, id, attrs)
}

func (a *App) DeleteRecord(ctx context.Context, id int) error {
	return a.http.DeleteRecord(ctx, id)
}

type appKey struct{}

// WithApp кладёт приложение в контекст команды
func WithApp(ctx context.Context, app *App) context.Context {
	return context.WithValue(ctx, appKey{}, app)
}

func FromContext(ctx context.Context) (*App, error) {
	app, ok := ctx.Value(appKey{}).(*App)
	if !ok || app == nil {
		return nil, errors.New("приложение не инициализировано")
	}
	return app, nil
}
