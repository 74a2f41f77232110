package cli

import (
	"github.com/grishaff/LuminaShare/internal/database"
	"github.com/grishaff/LuminaShare/internal/logger"
	"github.com/spf13/cobra"
)

func MigrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Creates the users, announcements and donations tables",
		Args:  cobra.NoArgs,
		RunE:  migrate,
	}
}

func migrate(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	_, db, err := connect(ctx)
	if err != nil {
		return err
	}
	defer db.Close()

	if err := database.Migrate(ctx, db); err != nil {
		return err
	}
	logger.Success("Schema applied (%d statements)", len(database.Statements()))
	return nil
}
