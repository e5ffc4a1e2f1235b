package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	render "github.com/reviewdesk/admitctl/internal/adapters/render/review"
	"github.com/reviewdesk/admitctl/internal/domain"
)

func newUsersCmd(app *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "users",
		Short: "Manage reviewer and admin accounts",
	}

	cmd.AddCommand(
		newUsersListCmd(app),
		newUsersAddCmd(app),
		newUsersUpdateCmd(app),
		newUsersDisableCmd(app),
	)

	return cmd
}

func newUsersListCmd(app *app) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List user accounts",
		RunE: func(cmd *cobra.Command, _ []string) error {
			users, err := app.admin.Users(cmd.Context())
			if err != nil {
				return err
			}

			if asJSON {
				return writeJSON(cmd, users)
			}

			rendered, err := render.RenderUsers(users)
			if err != nil {
				return fmt.Errorf("render users: %w", err)
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), rendered)
			return err
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "print raw JSON instead of a table")

	return cmd
}

func newUsersAddCmd(app *app) *cobra.Command {
	var (
		username string
		fullName string
		role     string
	)

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Create a user account",
		RunE: func(cmd *cobra.Command, _ []string) error {
			created, err := app.admin.AddUser(cmd.Context(), domain.User{
				Username: username,
				FullName: fullName,
				Role:     domain.UserRole(role),
			})
			if err != nil {
				return err
			}

			_, err = fmt.Fprintf(cmd.OutOrStdout(), "Created user #%d %s\n", created.ID, created.Username)
			return err
		},
	}

	cmd.Flags().StringVar(&username, "username", "", "login name")
	cmd.Flags().StringVar(&fullName, "name", "", "display name")
	cmd.Flags().StringVar(&role, "role", string(domain.RoleReviewer), "admin or reviewer")
	_ = cmd.MarkFlagRequired("username")

	return cmd
}

func newUsersUpdateCmd(app *app) *cobra.Command {
	var (
		username string
		fullName string
		role     string
		active   bool
	)

	cmd := &cobra.Command{
		Use:   "update <user-id>",
		Short: "Update a user account",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("parse user id %q: %w", args[0], err)
			}

			updated, err := app.admin.UpdateUser(cmd.Context(), domain.User{
				ID:       id,
				Username: username,
				FullName: fullName,
				Role:     domain.UserRole(role),
				Active:   active,
			})
			if err != nil {
				return err
			}

			_, err = fmt.Fprintf(cmd.OutOrStdout(), "Updated user #%d %s\n", updated.ID, updated.Username)
			return err
		},
	}

	cmd.Flags().StringVar(&username, "username", "", "login name")
	cmd.Flags().StringVar(&fullName, "name", "", "display name")
	cmd.Flags().StringVar(&role, "role", string(domain.RoleReviewer), "admin or reviewer")
	cmd.Flags().BoolVar(&active, "active", true, "whether the account can sign in")

	return cmd
}

func newUsersDisableCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "disable <user-id>",
		Short: "Deactivate a user account without deleting it",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("parse user id %q: %w", args[0], err)
			}

			disabled, err := app.admin.DisableUser(cmd.Context(), id)
			if err != nil {
				return err
			}

			_, err = fmt.Fprintf(cmd.OutOrStdout(), "Disabled user #%d %s\n", disabled.ID, disabled.Username)
			return err
		},
	}
}
