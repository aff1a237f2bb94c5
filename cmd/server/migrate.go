package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"blog-service/internal/config"
	"blog-service/internal/logger"
	"blog-service/internal/migrator"
)

var migrateCmd = &cobra.Command{
	Use:       "migrate [up|down]",
	Short:     "Apply or roll back the database schema",
	Long:      "migrate up applies every pending migration. migrate down rolls back the most recent one.",
	Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
	ValidArgs: []string{"up", "down"},
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(configPath)
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		log := logger.New(cfg.Env)

		m, err := migrator.New(cfg.Database.MigrationsPath, cfg.Database.DSN(), log)
		if err != nil {
			return err
		}
		defer func() {
			if err := m.Close(); err != nil {
				log.Error("Failed to close migrator", slog.String("error", err.Error()))
			}
		}()

		if args[0] == "down" {
			return m.Down()
		}
		return m.Up()
	},
}
