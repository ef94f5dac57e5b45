package cli

import (
	"hospital-replica-sync/cmd/bootstrap"
	"hospital-replica-sync/internal/infrastructure/database"

	"github.com/spf13/cobra"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Apply pending database migrations",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, log, err := bootstrap.Load()
		if err != nil {
			return err
		}

		db, err := database.NewPostgresConnection(cfg.DB, cfg.App.Env)
		if err != nil {
			return err
		}
		if sqlDB, err := db.DB(); err == nil {
			defer sqlDB.Close()
		}

		return database.RunMigrations(db, log)
	},
}
