package main

import (
	"errors"

	"github.com/spf13/cobra"
	"marketplace-contracts-backend/internal/database"
)

func newMigrateCmd() *cobra.Command {
	var dryRun bool

	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Apply embedded SQL migrations to DATABASE_URL",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, logger, err := bootstrap()
			if err != nil {
				return err
			}
			defer logger.Sync()

			if dryRun {
				names, err := database.Pending()
				if err != nil {
					return err
				}
				for _, name := range names {
					cmd.Println(name)
				}
				return nil
			}

			if cfg.DatabaseURL == "" {
				return errors.New("DATABASE_URL is required")
			}

			migrator, err := database.NewMigrator(cfg.DatabaseURL, logger)
			if err != nil {
				return err
			}
			defer migrator.Close()

			if err := migrator.Run(cmd.Context()); err != nil {
				return err
			}
			logger.Info("migrations completed")
			return nil
		},
	}
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "list embedded migrations without applying them")
	return cmd
}
