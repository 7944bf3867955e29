package cmd

import (
	"context"

	"github.com/bnema/pwsync/internal/adapters/render/vault"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

type refreshResult struct {
	credentialsResult
	bindingsResult
}

func newRefreshCmd(app *app) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "refresh",
		Short: "Fetch owned credentials, shared credentials and bindings together",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := requireSession(cmd, app); err != nil {
				return err
			}

			err := withSpinner(cmd, "Refreshing vault...", func(ctx context.Context) error {
				g, gctx := errgroup.WithContext(ctx)
				g.Go(func() error {
					_, err := app.creds.Fetch(gctx)
					return err
				})
				g.Go(func() error {
					_, err := app.creds.FetchShared(gctx)
					return err
				})
				g.Go(func() error {
					_, err := app.bindings.Fetch(gctx)
					return err
				})
				return g.Wait()
			})
			if err != nil {
				return err
			}

			owned, shared := app.creds.Owned(), app.creds.Shared()
			active, pending := app.bindings.Active(), app.bindings.Pending()
			now := app.now()

			pages := []vault.Page{
				vault.CredentialsPage{Owned: owned, Shared: shared, LastSync: app.creds.LastSyncTime(), Now: now},
				vault.BindingsPage{Active: active, Pending: pending, Now: now},
			}
			payload := refreshResult{
				credentialsResult: credentialsResult{Owned: maskPasswords(owned), Shared: maskPasswords(shared)},
				bindingsResult:    bindingsResult{Active: active, Pending: pending},
			}

			return writePages(cmd, app, pages, payload, asJSON)
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Render JSON output")
	return cmd
}
