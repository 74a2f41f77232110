package cli

import (
	"context"
	"fmt"

	"github.com/grishaff/LuminaShare/internal/config"
	"github.com/grishaff/LuminaShare/internal/database"
	"github.com/grishaff/LuminaShare/internal/logger"
	"github.com/jmoiron/sqlx"
	"github.com/spf13/cobra"
)

var (
	envFile string
	rootCmd = &cobra.Command{
		Use:           "luminactl",
		Short:         "Administration tool for the LuminaShare backend",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
)

func Setup() error {
	rootCmd.AddCommand(RankingCmd())
	rootCmd.AddCommand(MigrateCmd())
	rootCmd.PersistentFlags().StringVar(&envFile, "env", ".env", "optional .env file to load before reading the environment")

	return rootCmd.Execute()
}

// connect charge la configuration et ouvre la base
func connect(ctx context.Context) (*config.Config, *sqlx.DB, error) {
	cfg, err := config.LoadConfig(envFile)
	if err != nil {
		return nil, nil, fmt.Errorf("could not load config: %w", err)
	}
	if err := logger.Init(cfg.LogMode); err != nil {
		return nil, nil, err
	}

	db, err := database.ConnectPostgres(ctx, cfg)
	if err != nil {
		return nil, nil, fmt.Errorf("database connection failed: %w", err)
	}
	return cfg, db, nil
}
