package cmd

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"

	render "github.com/reviewdesk/admitctl/internal/adapters/render/review"
	"github.com/reviewdesk/admitctl/internal/application"
)

func newSessionCmd(app *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "session",
		Short: "Inspect and switch the active academic session",
	}

	cmd.AddCommand(
		newSessionShowCmd(app),
		newSessionListCmd(app),
		newSessionUseCmd(app),
		newSessionClearCmd(app),
	)

	return cmd
}

func newSessionShowCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show the active session, resolving it from the backend on first run",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app.sessions.Bootstrap(cmd.Context())

			selection, ok := app.sessions.Current(cmd.Context())
			rendered, err := render.RenderSelection(selection, ok)
			if err != nil {
				return fmt.Errorf("render session: %w", err)
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), rendered)
			return err
		},
	}
}

func newSessionListCmd(app *app) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List the sessions available on the backend",
		RunE: func(cmd *cobra.Command, _ []string) error {
			listings, err := app.sessions.List(cmd.Context())
			if err != nil {
				return err
			}

			if asJSON {
				return writeJSON(cmd, listings)
			}

			rendered, err := render.RenderSessions(listings)
			if err != nil {
				return fmt.Errorf("render sessions: %w", err)
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), rendered)
			return err
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "print raw JSON instead of a table")

	return cmd
}

func newSessionUseCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "use [session-id]",
		Short: "Switch to a session, interactively when no id is given",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var (
				id  int
				err error
			)

			if len(args) == 1 {
				id, err = strconv.Atoi(args[0])
				if err != nil {
					return fmt.Errorf("parse session id %q: %w", args[0], err)
				}
			} else {
				id, err = pickSession(cmd, app)
				if err != nil {
					return err
				}
			}

			switched, err := app.sessions.Switch(cmd.Context(), id)
			if err != nil {
				return err
			}

			meta := switched.Meta()
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "Switched to session #%d %s\n", switched.ID, meta.String())
			return err
		},
	}
}

func pickSession(cmd *cobra.Command, app *app) (int, error) {
	listings, err := app.sessions.List(cmd.Context())
	if err != nil {
		return 0, err
	}
	if len(listings) == 0 {
		return 0, fmt.Errorf("no sessions available to select")
	}

	options := make([]huh.Option[int], 0, len(listings))
	for _, listing := range listings {
		label := sessionOptionLabel(listing)
		options = append(options, huh.NewOption(label, listing.Session.ID))
	}

	var selected int
	form := huh.NewForm(huh.NewGroup(
		huh.NewSelect[int]().
			Title("Select a session").
			Options(options...).
			Value(&selected),
	))

	if err := form.Run(); err != nil {
		return 0, fmt.Errorf("select session: %w", err)
	}

	return selected, nil
}

func sessionOptionLabel(listing application.SessionListing) string {
	sess := listing.Session
	label := fmt.Sprintf("%s (%s, %d), %d applicants", sess.Name, sess.Campus.Label(), sess.Year, sess.ApplicantCount)
	if listing.Current {
		label += " [current]"
	}

	return label
}

func newSessionClearCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Forget the active session on this machine",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app.sessions.Clear(cmd.Context())

			_, err := fmt.Fprintln(cmd.OutOrStdout(), "Session selection cleared.")
			return err
		},
	}
}
