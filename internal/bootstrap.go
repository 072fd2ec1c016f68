package internal

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/starford/boreacrutis/internal/service"
	"github.com/starford/boreacrutis/internal/storage"
	"github.com/starford/boreacrutis/internal/store"
)

func newApplication(opts []Option) (*application, error) {
	app := &application{logOut: os.Stdout}
	for _, opt := range opts {
		opt(app)
	}
	if app.config == nil {
		return nil, errors.New("config is required")
	}
	app.logger = slog.New(slog.NewJSONHandler(app.logOut, &slog.HandlerOptions{
		Level: app.config.App.LogLevel,
	}))
	slog.SetDefault(app.logger)
	return app, nil
}

// OpenProvider opens the snapshot backend named by cfg.Driver.
func OpenProvider(ctx context.Context, cfg StorageConfig) (storage.Provider, error) {
	switch cfg.Driver {
	case DriverFile:
		fs, err := storage.NewFS(cfg.Dir)
		if err != nil {
			return nil, err
		}
		return fs.Snapshot(cfg.Key), nil
	case DriverSQLite:
		return storage.OpenSQLite(cfg.SQLitePath, cfg.Key)
	case DriverRedis:
		r := storage.NewRedis(cfg.Redis.Options(), cfg.Key)
		if err := r.Ping(ctx); err != nil {
			r.Close()
			return nil, err
		}
		return r, nil
	case DriverMemory:
		return storage.NewMemory(), nil
	}
	return nil, fmt.Errorf("storage: unknown driver %q", cfg.Driver)
}

// openService wires the provider, store and service. The returned function
// releases the provider when the application opened it.
func (app *application) openService(ctx context.Context) (*service.Service, func(), error) {
	cfg := app.config
	provider, closeProvider := app.provider, func() {}
	if provider == nil {
		p, err := OpenProvider(ctx, cfg.Storage)
		if err != nil {
			return nil, nil, fmt.Errorf("init storage: %w", err)
		}
		provider = p
		closeProvider = func() {
			if err := p.Close(); err != nil {
				app.logger.Warn("close storage failed", slog.String("error", err.Error()))
			}
		}
	}

	format, err := cfg.Export.Formatter()
	if err != nil {
		closeProvider()
		return nil, nil, err
	}

	st := store.Open(ctx, provider, app.logger, time.Now().UTC())
	return service.New(st, nil, format), closeProvider, nil
}
