package database

import (
	"database/sql"
	"fmt"
	"io/fs"

	"github.com/AngelRosadoWTF/examenapi-angel/internal/pkg/logging"
	"github.com/pressly/goose/v3"

	_ "github.com/jackc/pgx/v5/stdlib"
)

const (
	PgxDriverName    = "pgx"
	PostgresDialect  = "postgres"
	MigrationsRootFS = "."
)

func MigrateDatabase(databaseUrl string, migrations fs.FS, dir, driverName, dialect string, logger logging.Logger) error {
	db, err := sql.Open(driverName, databaseUrl)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer db.Close()

	goose.SetBaseFS(migrations)
	goose.SetLogger(goose.NopLogger())

	if err := goose.SetDialect(dialect); err != nil {
		return err
	}

	if err := goose.Up(db, dir); err != nil {
		return fmt.Errorf("failed to apply migrations: %w", err)
	}

	version, err := goose.GetDBVersion(db)
	if err != nil {
		return fmt.Errorf("failed to read schema version: %w", err)
	}

	logger.Info("database migrated", "version", version)

	return nil
}
