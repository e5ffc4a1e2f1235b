package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	render "github.com/reviewdesk/admitctl/internal/adapters/render/review"
	"github.com/reviewdesk/admitctl/internal/domain"
)

func newStatusesCmd(app *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "statuses",
		Short: "Manage the configurable review statuses",
	}

	cmd.AddCommand(
		newStatusesListCmd(app),
		newStatusesAddCmd(app),
		newStatusesUpdateCmd(app),
		newStatusesDeleteCmd(app),
	)

	return cmd
}

func newStatusesListCmd(app *app) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List review statuses in display order",
		RunE: func(cmd *cobra.Command, _ []string) error {
			statuses, err := app.admin.Statuses(cmd.Context())
			if err != nil {
				return err
			}

			if asJSON {
				return writeJSON(cmd, statuses)
			}

			rendered, err := render.RenderStatuses(statuses)
			if err != nil {
				return fmt.Errorf("render statuses: %w", err)
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), rendered)
			return err
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "print raw JSON instead of a table")

	return cmd
}

func statusFlags(cmd *cobra.Command, label *string, color *string, order *int) {
	cmd.Flags().StringVar(label, "label", "", "display label")
	cmd.Flags().StringVar(color, "color", "", "display color, e.g. #22aa55")
	cmd.Flags().IntVar(order, "order", 0, "position in the status list")
}

func newStatusesAddCmd(app *app) *cobra.Command {
	var (
		label string
		color string
		order int
	)

	cmd := &cobra.Command{
		Use:   "add <code>",
		Short: "Create a review status",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			created, err := app.admin.AddStatus(cmd.Context(), domain.ReviewStatus{
				Code:  args[0],
				Label: label,
				Color: color,
				Order: order,
			})
			if err != nil {
				return err
			}

			_, err = fmt.Fprintf(cmd.OutOrStdout(), "Created status %s\n", created.Code)
			return err
		},
	}

	statusFlags(cmd, &label, &color, &order)
	_ = cmd.MarkFlagRequired("label")

	return cmd
}

func newStatusesUpdateCmd(app *app) *cobra.Command {
	var (
		label string
		color string
		order int
	)

	cmd := &cobra.Command{
		Use:   "update <code>",
		Short: "Update a review status",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			updated, err := app.admin.UpdateStatus(cmd.Context(), domain.ReviewStatus{
				Code:  args[0],
				Label: label,
				Color: color,
				Order: order,
			})
			if err != nil {
				return err
			}

			_, err = fmt.Fprintf(cmd.OutOrStdout(), "Updated status %s\n", updated.Code)
			return err
		},
	}

	statusFlags(cmd, &label, &color, &order)

	return cmd
}

func newStatusesDeleteCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <code>",
		Short: "Delete a review status",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.admin.DeleteStatus(cmd.Context(), args[0]); err != nil {
				return err
			}

			_, err := fmt.Fprintf(cmd.OutOrStdout(), "Deleted status %s\n", args[0])
			return err
		},
	}
}
