package main

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/AngelRosadoWTF/examenapi-angel/internal/pkg/database"
	"github.com/AngelRosadoWTF/examenapi-angel/internal/pkg/logging"
	"github.com/AngelRosadoWTF/examenapi-angel/internal/purchases/bootstrap"
	"github.com/AngelRosadoWTF/examenapi-angel/migrations"
	"github.com/joho/godotenv"
	"github.com/urfave/cli/v2"
	"golang.org/x/sync/errgroup"
)

const migrateFlag = "migrate"

func main() {
	// a missing .env is fine, the process environment still applies
	_ = godotenv.Load()

	app := &cli.App{
		Name:           "purchases",
		Usage:          "purchase transactions API",
		DefaultCommand: "serve",
		Commands: []*cli.Command{
			{
				Name:  "serve",
				Usage: "run the HTTP API",
				Flags: []cli.Flag{
					&cli.BoolFlag{
						Name:    migrateFlag,
						Usage:   "apply pending migrations before serving",
						EnvVars: []string{"MIGRATE_ON_START"},
					},
				},
				Action: serve,
			},
			{
				Name:   "migrate",
				Usage:  "apply pending database migrations and exit",
				Action: migrate,
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		logging.StdoutLogger.Error("command failed", "error", err.Error())
		os.Exit(1)
	}
}

func serve(c *cli.Context) error {
	cfg := bootstrap.LoadConfig()
	logger := logging.NewLogger(cfg.LogLevel)

	if c.Bool(migrateFlag) {
		if err := applyMigrations(cfg, logger); err != nil {
			return err
		}
	}

	ctx, stop := signal.NotifyContext(c.Context, os.Interrupt, syscall.SIGTERM)
	defer stop()

	app := bootstrap.NewPurchasesApp(cfg, logger)

	group, groupCtx := errgroup.WithContext(ctx)
	group.Go(func() error {
		return app.Run(groupCtx)
	})
	group.Go(func() error {
		<-groupCtx.Done()
		app.Shutdown()
		return nil
	})

	return group.Wait()
}

func migrate(_ *cli.Context) error {
	cfg := bootstrap.LoadConfig()

	return applyMigrations(cfg, logging.NewLogger(cfg.LogLevel))
}

func applyMigrations(cfg bootstrap.PurchasesConfig, logger logging.Logger) error {
	return database.MigrateDatabase(
		cfg.DbSettings.GetUrl(),
		migrations.FS,
		database.MigrationsRootFS,
		database.PgxDriverName,
		database.PostgresDialect,
		logger,
	)
}
