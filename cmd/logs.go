package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	render "github.com/reviewdesk/admitctl/internal/adapters/render/review"
)

func newLogsCmd(app *app) *cobra.Command {
	var (
		page    int
		perPage int
		asJSON  bool
	)

	cmd := &cobra.Command{
		Use:   "logs",
		Short: "Show the backend's activity log",
		RunE: func(cmd *cobra.Command, _ []string) error {
			result, err := app.admin.Logs(cmd.Context(), page, perPage)
			if err != nil {
				return err
			}

			if asJSON {
				return writeJSON(cmd, result)
			}

			rendered, err := render.RenderLogs(result)
			if err != nil {
				return fmt.Errorf("render logs: %w", err)
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), rendered)
			return err
		},
	}

	cmd.Flags().IntVar(&page, "page", 1, "page number")
	cmd.Flags().IntVar(&perPage, "per-page", 20, "entries per page")
	cmd.Flags().BoolVar(&asJSON, "json", false, "print raw JSON instead of a table")

	return cmd
}
