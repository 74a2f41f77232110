package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	model "github.com/grishaff/LuminaShare/internal/models"
	"github.com/grishaff/LuminaShare/internal/ranking"
	"github.com/grishaff/LuminaShare/internal/store"
	"github.com/grishaff/LuminaShare/internal/utils"
	"github.com/spf13/cobra"
)

type rankingSource interface {
	store.DonationStore
	store.UserStore
}

type rankingOptions struct {
	limit          int
	announcementID string
	asJSON         bool
}

func RankingCmd() *cobra.Command {
	return rankingCmd(&rankingOptions{})
}

func rankingCmd(opts *rankingOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "ranking",
		Short: "Prints the donor leaderboard",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return printRanking(cmd, opts)
		},
	}

	cmd.Flags().IntVar(&opts.limit, "limit", 0, "Maximum number of donors (defaults to RANKING_LIMIT)")
	cmd.Flags().StringVar(&opts.announcementID, "announcement", "", "Restrict the leaderboard to one announcement id")
	cmd.Flags().BoolVar(&opts.asJSON, "json", false, "Print JSON instead of a table")

	return cmd
}

func printRanking(cmd *cobra.Command, opts *rankingOptions) error {
	ctx := cmd.Context()

	cfg, db, err := connect(ctx)
	if err != nil {
		return err
	}
	defer db.Close()

	limit := opts.limit
	if !cmd.Flags().Changed("limit") {
		limit = cfg.RankingLimit
	}

	agg := ranking.Aggregator{AnonymousName: cfg.RankingAnonymousName}
	entries, err := loadRanking(ctx, store.NewPostgres(db), agg, opts.announcementID, limit)
	if err != nil {
		return err
	}

	if opts.asJSON {
		return writeJSON(cmd.OutOrStdout(), entries)
	}
	return writeTable(cmd.OutOrStdout(), entries)
}

func loadRanking(ctx context.Context, src rankingSource, agg ranking.Aggregator, announcementID string, limit int) ([]model.LeaderboardEntry, error) {
	var (
		donations []model.DonationRecord
		users     []model.UserRecord
		err       error
	)
	if announcementID == "" {
		if donations, err = src.ListDonations(ctx); err != nil {
			return nil, err
		}
		if users, err = src.ListUsers(ctx); err != nil {
			return nil, err
		}
	} else {
		if donations, err = src.ListDonationsByAnnouncement(ctx, announcementID); err != nil {
			return nil, err
		}
		if users, err = src.ListUsersByTgIDs(ctx, utils.DonorTgIDs(donations)); err != nil {
			return nil, err
		}
	}
	return agg.Compute(donations, users, limit)
}

func writeJSON(w io.Writer, entries []model.LeaderboardEntry) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(map[string]interface{}{"ranking": entries})
}

func writeTable(w io.Writer, entries []model.LeaderboardEntry) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "RANK\tDONOR\tNAME\tUSERNAME\tSTARS\tTON\tDONATIONS")
	for i, e := range entries {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\t%s\t%d\n",
			i+1, e.DonorID, e.DisplayName, e.Username,
			e.TotalSecondary.String(), e.TotalPrimary.String(), e.DonationCount)
	}
	return tw.Flush()
}
