package cmd

import "github.com/spf13/cobra"

func Execute() error {
	return newRootCmd().Execute()
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "admit",
		Short:         "admit: review academic applicants from the terminal",
		Long:          "admit is the reviewer's client for the applicant-review backend: pick an academic session, browse and rate applicants, upload CSV imports, and manage reviewer accounts and statuses.",
		SilenceUsage:  true,
		SilenceErrors: false,
	}

	app, err := wireApp()
	if err != nil {
		rootCmd.RunE = func(_ *cobra.Command, _ []string) error {
			return err
		}
		return rootCmd
	}

	rootCmd.AddCommand(
		newVersionCmd(),
		newLoginCmd(app),
		newLogoutCmd(app),
		newSessionCmd(app),
		newApplicantsCmd(app),
		newRateCmd(app),
		newStatsCmd(app),
		newLogsCmd(app),
		newUsersCmd(app),
		newStatusesCmd(app),
		newUploadCmd(app),
	)

	return rootCmd
}
