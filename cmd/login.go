package cmd

import (
	"fmt"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"
)

func newLoginCmd(app *app) *cobra.Command {
	var password string

	cmd := &cobra.Command{
		Use:   "login <username>",
		Short: "Sign in and store the API token for this profile",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if password == "" {
				var err error
				password, err = promptPassword()
				if err != nil {
					return err
				}
			}

			if err := app.auth.Login(cmd.Context(), args[0], password); err != nil {
				return err
			}

			_, err := fmt.Fprintf(cmd.OutOrStdout(), "Signed in as %s\n", args[0])
			return err
		},
	}

	cmd.Flags().StringVarP(&password, "password", "p", "", "password (prompted interactively when omitted)")

	return cmd
}

func promptPassword() (string, error) {
	var password string

	form := huh.NewForm(huh.NewGroup(
		huh.NewInput().
			Title("Password").
			EchoMode(huh.EchoModePassword).
			Value(&password),
	))

	if err := form.Run(); err != nil {
		return "", fmt.Errorf("prompt password: %w", err)
	}

	return password, nil
}

func newLogoutCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Sign out and clear local credentials and session selection",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := app.auth.Logout(cmd.Context()); err != nil {
				return err
			}

			_, err := fmt.Fprintln(cmd.OutOrStdout(), "Signed out.")
			return err
		},
	}
}
