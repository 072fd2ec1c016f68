package internal

import (
	"io"
	"log/slog"

	"github.com/starford/boreacrutis/internal/storage"
)

// Option is a functional option for configuring the application.
type Option func(*application)

type application struct {
	config   *Config
	provider storage.Provider
	logOut   io.Writer
	logger   *slog.Logger
}

// WithConfig sets the application configuration.
func WithConfig(cfg *Config) Option {
	return func(a *application) {
		a.config = cfg
	}
}

// WithProvider overrides the snapshot provider selected by the storage
// configuration. The caller keeps ownership and closes it.
func WithProvider(p storage.Provider) Option {
	return func(a *application) {
		a.provider = p
	}
}

// WithLogOutput sets where the JSON log is written. Defaults to stdout.
func WithLogOutput(w io.Writer) Option {
	return func(a *application) {
		a.logOut = w
	}
}
