package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	render "github.com/reviewdesk/admitctl/internal/adapters/render/review"
	"github.com/reviewdesk/admitctl/internal/domain"
)

func newApplicantsCmd(app *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "applicants",
		Short: "Browse the active session's applicants",
	}

	cmd.AddCommand(
		newApplicantsListCmd(app),
		newApplicantsShowCmd(app),
	)

	return cmd
}

func newApplicantsListCmd(app *app) *cobra.Command {
	var (
		query   string
		status  string
		page    int
		perPage int
		asJSON  bool
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List applicants, with optional search and status filter",
		RunE: func(cmd *cobra.Command, _ []string) error {
			result, err := app.reviews.Applicants(cmd.Context(), domain.ApplicantFilter{
				Query:   query,
				Status:  status,
				Page:    page,
				PerPage: perPage,
			})
			if err != nil {
				return err
			}

			if asJSON {
				return writeJSON(cmd, result)
			}

			rendered, err := render.RenderApplicants(result)
			if err != nil {
				return fmt.Errorf("render applicants: %w", err)
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), rendered)
			return err
		},
	}

	cmd.Flags().StringVarP(&query, "query", "q", "", "free-text search over name and email")
	cmd.Flags().StringVar(&status, "status", "", "only applicants with this status code")
	cmd.Flags().IntVar(&page, "page", 1, "page number")
	cmd.Flags().IntVar(&perPage, "per-page", 20, "applicants per page")
	cmd.Flags().BoolVar(&asJSON, "json", false, "print raw JSON instead of a table")

	return cmd
}

func newApplicantsShowCmd(app *app) *cobra.Command {
	var (
		institutions bool
		scores       bool
		reviews      bool
		asJSON       bool
	)

	cmd := &cobra.Command{
		Use:   "show <applicant-id>",
		Short: "Show one applicant's detail, with optional extra sections",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("parse applicant id %q: %w", args[0], err)
			}

			detail, err := app.reviews.Detail(cmd.Context(), id)
			if err != nil {
				return err
			}

			if asJSON {
				return writeJSON(cmd, detail)
			}

			rendered, err := render.RenderApplicantDetail(detail, render.DetailSections{
				Institutions: institutions,
				Scores:       scores,
				Reviews:      reviews,
			})
			if err != nil {
				return fmt.Errorf("render applicant detail: %w", err)
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), rendered)
			return err
		},
	}

	cmd.Flags().BoolVar(&institutions, "institutions", false, "include prior institutions")
	cmd.Flags().BoolVar(&scores, "scores", false, "include test scores")
	cmd.Flags().BoolVar(&reviews, "reviews", false, "include reviewer ratings and comments")
	cmd.Flags().BoolVar(&asJSON, "json", false, "print raw JSON instead of the detail view")

	return cmd
}
