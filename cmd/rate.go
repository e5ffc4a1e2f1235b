package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

func newRateCmd(app *app) *cobra.Command {
	var comment string

	cmd := &cobra.Command{
		Use:   "rate <applicant-id> <rating>",
		Short: "Rate an applicant from 1 to 5, with an optional comment",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			applicantID, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("parse applicant id %q: %w", args[0], err)
			}

			rating, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("parse rating %q: %w", args[1], err)
			}

			if err := app.reviews.Rate(cmd.Context(), applicantID, rating, comment); err != nil {
				return err
			}

			_, err = fmt.Fprintf(cmd.OutOrStdout(), "Rated applicant #%d: %d\n", applicantID, rating)
			return err
		},
	}

	cmd.Flags().StringVarP(&comment, "comment", "m", "", "review comment")

	return cmd
}
