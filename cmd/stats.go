package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	render "github.com/reviewdesk/admitctl/internal/adapters/render/review"
	"github.com/reviewdesk/admitctl/internal/domain"
)

func newStatsCmd(app *app) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Show per-status applicant counts for the active session",
		RunE: func(cmd *cobra.Command, _ []string) error {
			var stats domain.SessionStatistics

			err := runFetchSpinner(cmd.Context(), cmd.ErrOrStderr(), "Fetching statistics...", func(ctx context.Context) error {
				var fetchErr error
				stats, fetchErr = app.admin.Statistics(ctx)
				return fetchErr
			})
			if err != nil {
				return err
			}

			if asJSON {
				return writeJSON(cmd, stats)
			}

			rendered, err := render.RenderStatistics(stats)
			if err != nil {
				return fmt.Errorf("render statistics: %w", err)
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), rendered)
			return err
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "print raw JSON instead of the chart")

	return cmd
}
