package cli

import (
	"errors"

	"github.com/spf13/cobra"

	"shortlink/internal/logger"
	"shortlink/internal/repository/postgres"
)

var MigrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Create the database schema and exit.",
	RunE: func(cmd *cobra.Command, args []string) error {
		log := logger.NewLogger()

		if Cfg.DatabaseDSN == "" {
			return errors.New("DATABASE_DSN is required for migrate")
		}

		if err := postgres.Migrate(cmd.Context(), Cfg.DatabaseDSN); err != nil {
			log.Error().Err(err).Msg("migration failed")
			return err
		}

		log.Info().Msg("migration completed")
		return nil
	},
}

func init() {
	RootCmd.AddCommand(MigrateCmd)
}
