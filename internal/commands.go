package internal

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/starford/boreacrutis/internal/service"
	"github.com/starford/boreacrutis/internal/storage"
)

// ImportFile imports one markdown file into module and persists the result.
func ImportFile(ctx context.Context, module, tabID, path string, opts ...Option) (service.Imported, error) {
	m, err := service.ParseModule(module)
	if err != nil {
		return service.Imported{}, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return service.Imported{}, fmt.Errorf("read %s: %w", path, err)
	}

	app, err := newApplication(opts)
	if err != nil {
		return service.Imported{}, err
	}
	svc, closeStorage, err := app.openService(ctx)
	if err != nil {
		return service.Imported{}, err
	}
	defer closeStorage()

	imp, err := svc.Import(ctx, m, tabID, string(data))
	if err != nil {
		return service.Imported{}, err
	}
	app.logger.Info("document imported",
		slog.String("path", path),
		slog.String("module", string(imp.Module)),
		slog.String("tab_id", imp.TabID),
		slog.String("entity_id", imp.EntityID))
	return imp, nil
}

// ExportEntity writes one entity as "<safe-title>.md" into outDir, or the
// configured export directory when outDir is empty. It returns the path of
// the written file.
func ExportEntity(ctx context.Context, module, tabID, id, outDir string, opts ...Option) (string, error) {
	m, err := service.ParseModule(module)
	if err != nil {
		return "", err
	}
	app, err := newApplication(opts)
	if err != nil {
		return "", err
	}
	svc, closeStorage, err := app.openService(ctx)
	if err != nil {
		return "", err
	}
	defer closeStorage()

	exp, err := svc.Export(m, tabID, id)
	if err != nil {
		return "", err
	}
	if outDir == "" {
		outDir = app.config.Export.Dir
	}
	dir, err := storage.NewFS(outDir)
	if err != nil {
		return "", err
	}
	if err := dir.Write(exp.Filename, []byte(exp.Markdown)); err != nil {
		return "", err
	}
	return dir.Root() + string(os.PathSeparator) + exp.Filename, nil
}
