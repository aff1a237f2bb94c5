package migrator

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/pgx/v5"
	_ "github.com/golang-migrate/migrate/v4/source/file"

	"blog-service/internal/logger"
)

type Migrator struct {
	m   *migrate.Migrate
	log *logger.Logger
}

// New opens the migration source directory against a postgres:// DSN.
func New(migrationsPath, dsn string, log *logger.Logger) (*Migrator, error) {
	m, err := migrate.New("file://"+migrationsPath, toPgx5URL(dsn))
	if err != nil {
		return nil, fmt.Errorf("failed to init migrations: %w", err)
	}
	return &Migrator{m: m, log: log}, nil
}

func (mg *Migrator) Up() error {
	if err := mg.m.Up(); err != nil {
		if errors.Is(err, migrate.ErrNoChange) {
			mg.log.Info("Migrations: no change")
			return nil
		}
		return fmt.Errorf("failed to apply migrations: %w", err)
	}
	mg.logVersion("Migrations applied")
	return nil
}

func (mg *Migrator) Down() error {
	if err := mg.m.Steps(-1); err != nil {
		if errors.Is(err, migrate.ErrNoChange) {
			mg.log.Info("Migrations: nothing to roll back")
			return nil
		}
		return fmt.Errorf("failed to roll back migration: %w", err)
	}
	mg.logVersion("Migration rolled back")
	return nil
}

func (mg *Migrator) Close() error {
	srcErr, dbErr := mg.m.Close()
	return errors.Join(srcErr, dbErr)
}

func (mg *Migrator) logVersion(msg string) {
	version, dirty, err := mg.m.Version()
	if err != nil && !errors.Is(err, migrate.ErrNilVersion) {
		mg.log.Warn("Failed to read migration version", slog.String("error", err.Error()))
		return
	}
	mg.log.Info(msg, slog.Uint64("version", uint64(version)), slog.Bool("dirty", dirty))
}

func toPgx5URL(dsn string) string {
	for _, prefix := range []string{"postgresql://", "postgres://"} {
		if strings.HasPrefix(dsn, prefix) {
			return "pgx5://" + strings.TrimPrefix(dsn, prefix)
		}
	}
	return dsn
}
