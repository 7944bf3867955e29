package cmd

import (
	"context"

	"github.com/bnema/pwsync/internal/domain"
	"github.com/spf13/cobra"
)

func newSharedCmd(app *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "shared",
		Short: "Work with credentials other accounts share with you",
	}

	cmd.AddCommand(
		newSharedListCmd(app),
		newSharedUpdateCmd(app),
		newSharedSyncCmd(app),
	)

	return cmd
}

func newSharedListCmd(app *app) *cobra.Command {
	var (
		showSecrets bool
		asJSON      bool
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "Fetch and list shared credentials",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := requireSession(cmd, app); err != nil {
				return err
			}

			err := withSpinner(cmd, "Fetching shared credentials...", func(ctx context.Context) error {
				_, err := app.creds.FetchShared(ctx)
				return err
			})
			if err != nil {
				return err
			}

			return writeCredentials(cmd, app, nil, app.creds.Shared(), showSecrets, asJSON)
		},
	}

	cmd.Flags().BoolVar(&showSecrets, "show-secrets", false, "Print passwords in clear text")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Render JSON output")
	return cmd
}

func newSharedUpdateCmd(app *app) *cobra.Command {
	var (
		flags  credentialFlags
		asJSON bool
	)

	cmd := &cobra.Command{
		Use:   "update ID",
		Short: "Change a shared credential (needs write permission)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requireSession(cmd, app); err != nil {
				return err
			}

			patch := flags.patch(cmd)
			if len(patch) == 0 {
				return &domain.ValidationError{Field: "fields", Reason: "nothing to update"}
			}

			record, err := app.creds.UpdateShared(cmd.Context(), domain.CredentialID(args[0]), patch)
			if err != nil {
				return err
			}

			return writeCredentials(cmd, app, nil, []domain.Credential{record}, false, asJSON)
		},
	}

	flags.register(cmd)
	cmd.Flags().BoolVar(&asJSON, "json", false, "Render JSON output")
	return cmd
}

func newSharedSyncCmd(app *app) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "sync",
		Short: "Replace the shared collection with the server copy",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := requireSession(cmd, app); err != nil {
				return err
			}

			err := withSpinner(cmd, "Syncing shared credentials...", func(ctx context.Context) error {
				if _, err := app.creds.FetchShared(ctx); err != nil {
					return err
				}
				_, err := app.creds.SyncShared(ctx)
				return err
			})
			if err != nil {
				return err
			}

			return writeCredentials(cmd, app, nil, app.creds.Shared(), false, asJSON)
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Render JSON output")
	return cmd
}
