package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	_ "github.com/joho/godotenv/autoload"
	"github.com/urfave/cli/v3"

	"github.com/starford/boreacrutis/internal"
	pkgconfig "github.com/starford/boreacrutis/pkg/config"
)

// loadConfig reads the --config file over the defaults. When optional is
// set a missing file falls back to the defaults.
func loadConfig(cmd *cli.Command, optional bool) (*internal.Config, error) {
	configPath := cmd.String("config")
	cfg := internal.NewDefaultConfig()
	if optional {
		if _, err := pkgconfig.LoadOptional(configPath, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
		return cfg, nil
	}
	if err := pkgconfig.Load(configPath, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	return cfg, nil
}

func serve(ctx context.Context, cmd *cli.Command) error {
	cfg, err := loadConfig(cmd, false)
	if err != nil {
		return err
	}
	if err := internal.Run(ctx, internal.WithConfig(cfg)); err != nil {
		return fmt.Errorf("app run error: %w", err)
	}
	return nil
}

func serveMCP(ctx context.Context, cmd *cli.Command) error {
	cfg, err := loadConfig(cmd, true)
	if err != nil {
		return err
	}
	if err := internal.RunMCP(ctx, internal.WithConfig(cfg)); err != nil {
		return fmt.Errorf("mcp run error: %w", err)
	}
	return nil
}

func importDoc(ctx context.Context, cmd *cli.Command) error {
	path := cmd.Args().First()
	if path == "" {
		return fmt.Errorf("import: a markdown FILE argument is required")
	}
	cfg, err := loadConfig(cmd, true)
	if err != nil {
		return err
	}
	imp, err := internal.ImportFile(ctx, cmd.String("module"), cmd.String("tab"), path,
		internal.WithConfig(cfg), internal.WithLogOutput(os.Stderr))
	if err != nil {
		return err
	}
	fmt.Printf("imported %q into tab %s (id %s)\n", imp.Title, imp.TabID, imp.EntityID)
	return nil
}

func exportDoc(ctx context.Context, cmd *cli.Command) error {
	cfg, err := loadConfig(cmd, true)
	if err != nil {
		return err
	}
	out, err := internal.ExportEntity(ctx, cmd.String("module"), cmd.String("tab"), cmd.String("id"), cmd.String("out"),
		internal.WithConfig(cfg), internal.WithLogOutput(os.Stderr))
	if err != nil {
		return err
	}
	fmt.Println(out)
	return nil
}

func moduleFlag() *cli.StringFlag {
	return &cli.StringFlag{
		Name:     "module",
		Aliases:  []string{"m"},
		Usage:    "Target module: profiles, jobads or casestudies",
		Required: true,
	}
}

func main() {
	cmd := &cli.Command{
		Name:   "boreacrutis",
		Usage:  "Local recruitment workspace for candidate profiles, job ads and case studies",
		Action: serve,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "config",
				Aliases:     []string{"c"},
				Usage:       "Path to config file",
				DefaultText: "config/config.yaml",
				Value:       "config/config.yaml",
				Sources:     cli.EnvVars("APP_CONFIG_FILE"),
			},
		},
		Commands: []*cli.Command{
			{
				Name:   "serve",
				Usage:  "Run the HTTP API, event stream and inbox watcher",
				Action: serve,
			},
			{
				Name:   "mcp",
				Usage:  "Serve the workspace tools over MCP stdio",
				Action: serveMCP,
			},
			{
				Name:      "import",
				Usage:     "Import a markdown document into a tab",
				ArgsUsage: "FILE",
				Action:    importDoc,
				Flags: []cli.Flag{
					moduleFlag(),
					&cli.StringFlag{Name: "tab", Aliases: []string{"t"}, Usage: "Target tab id (default: active or first tab of the module)"},
				},
			},
			{
				Name:   "export",
				Usage:  "Export one profile, job ad or case study as markdown",
				Action: exportDoc,
				Flags: []cli.Flag{
					moduleFlag(),
					&cli.StringFlag{Name: "tab", Aliases: []string{"t"}, Usage: "Tab id", Required: true},
					&cli.StringFlag{Name: "id", Usage: "Entity id", Required: true},
					&cli.StringFlag{Name: "out", Aliases: []string{"o"}, Usage: "Output directory (default: export.dir)"},
				},
			},
		},
	}

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		slog.Error("application error", slog.String("error", err.Error()))
		os.Exit(1)
	}
}
