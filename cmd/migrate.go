package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dtroode/videoflix-server/database"
	"github.com/dtroode/videoflix-server/internal/config"
	"github.com/dtroode/videoflix-server/internal/logger"
)

func newMigrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Apply pending database migrations and exit",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.NewConfig()
			if err != nil {
				return err
			}
			log := logger.New(cfg.LogLevel, cfg.LogFormat)

			if err := database.Migrate(cmd.Context(), cfg.Database.DSN); err != nil {
				return fmt.Errorf("failed to migrate database: %w", err)
			}

			log.Info("migrations applied")
			return nil
		},
	}
}
