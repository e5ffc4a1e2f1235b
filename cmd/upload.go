package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	render "github.com/reviewdesk/admitctl/internal/adapters/render/review"
	"github.com/reviewdesk/admitctl/internal/domain"
)

func newUploadCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "upload <file.csv>",
		Short: "Upload a CSV of applicants into the active session",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var report domain.UploadReport

			err := runFetchSpinner(cmd.Context(), cmd.ErrOrStderr(), "Uploading applicants...", func(ctx context.Context) error {
				var uploadErr error
				report, uploadErr = app.uploads.UploadCSV(ctx, args[0])
				return uploadErr
			})
			if err != nil {
				return err
			}

			rendered, err := render.RenderUploadReport(report)
			if err != nil {
				return fmt.Errorf("render upload report: %w", err)
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), rendered)
			return err
		},
	}
}
