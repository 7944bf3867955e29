package cmd

import (
	"context"
	"fmt"

	"github.com/bnema/pwsync/internal/adapters/render/vault"
	"github.com/bnema/pwsync/internal/application"
	"github.com/bnema/pwsync/internal/domain"
	"github.com/spf13/cobra"
)

func newBindingsCmd(app *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "bindings",
		Short: "Share access with other accounts",
	}

	cmd.AddCommand(
		newBindingsListCmd(app),
		newBindingsBindCmd(app),
		newBindingsAcceptCmd(app),
		newBindingsRejectCmd(app),
		newBindingsUnbindCmd(app),
		newBindingsPermissionsCmd(app),
	)

	return cmd
}

type bindingsResult struct {
	Active  []domain.Binding `json:"active"`
	Pending []domain.Binding `json:"pending"`
}

func writeBindings(cmd *cobra.Command, app *app, asJSON bool) error {
	active, pending := app.bindings.Active(), app.bindings.Pending()
	page := vault.BindingsPage{Active: active, Pending: pending, Now: app.now()}
	return writeOutput(cmd, app, page, bindingsResult{Active: active, Pending: pending}, asJSON)
}

func newBindingsListCmd(app *app) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List active bindings and pending requests",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := requireSession(cmd, app); err != nil {
				return err
			}

			err := withSpinner(cmd, "Fetching bindings...", func(ctx context.Context) error {
				_, err := app.bindings.Fetch(ctx)
				return err
			})
			if err != nil {
				return err
			}

			return writeBindings(cmd, app, asJSON)
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Render JSON output")
	return cmd
}

func newBindingsBindCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "bind EMAIL",
		Short: "Ask another account to share credentials with you",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requireSession(cmd, app); err != nil {
				return err
			}

			id, err := app.bindings.Bind(cmd.Context(), application.BindCommand{TargetEmail: args[0]})
			if err != nil {
				return err
			}

			_, err = fmt.Fprintf(cmd.OutOrStdout(), "Binding request %s sent to %s.\n", id, args[0])
			return err
		},
	}
}

func newBindingsAcceptCmd(app *app) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "accept ID",
		Short: "Accept a pending binding request",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requireSession(cmd, app); err != nil {
				return err
			}
			if _, err := app.bindings.Fetch(cmd.Context()); err != nil {
				return err
			}

			if err := app.bindings.Accept(cmd.Context(), domain.BindingID(args[0])); err != nil {
				return err
			}

			return writeBindings(cmd, app, asJSON)
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Render JSON output")
	return cmd
}

func newBindingsRejectCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "reject ID",
		Short: "Reject a pending binding request",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requireSession(cmd, app); err != nil {
				return err
			}

			if err := app.bindings.Reject(cmd.Context(), domain.BindingID(args[0])); err != nil {
				return err
			}

			_, err := fmt.Fprintf(cmd.OutOrStdout(), "Rejected binding request %s.\n", args[0])
			return err
		},
	}
}

func newBindingsUnbindCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "unbind ID",
		Short: "Remove an active binding",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requireSession(cmd, app); err != nil {
				return err
			}

			if err := app.bindings.Unbind(cmd.Context(), domain.BindingID(args[0])); err != nil {
				return err
			}

			_, err := fmt.Fprintf(cmd.OutOrStdout(), "Removed binding %s.\n", args[0])
			return err
		},
	}
}

func newBindingsPermissionsCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "permissions ID read|write",
		Short: "Change what a bound account may do with your credentials",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requireSession(cmd, app); err != nil {
				return err
			}

			err := app.bindings.UpdatePermissions(cmd.Context(), application.PermissionsCommand{
				ID:          domain.BindingID(args[0]),
				Permissions: domain.Permission(args[1]),
			})
			if err != nil {
				return err
			}

			_, err = fmt.Fprintf(cmd.OutOrStdout(), "Binding %s now grants %s access.\n", args[0], args[1])
			return err
		},
	}
}
