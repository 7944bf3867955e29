package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/bnema/pwsync/internal/adapters/render/vault"
	"github.com/bnema/pwsync/internal/domain"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

func writeOutput(cmd *cobra.Command, app *app, page vault.Page, payload any, asJSON bool) error {
	return writePages(cmd, app, []vault.Page{page}, payload, asJSON)
}

func writePages(cmd *cobra.Command, app *app, pages []vault.Page, payload any, asJSON bool) error {
	if asJSON {
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(payload)
	}

	rendered, err := app.render(pages...)
	if err != nil {
		return fmt.Errorf("render output: %w", err)
	}

	_, err = fmt.Fprintln(cmd.OutOrStdout(), rendered)
	return err
}

// requireSession restores identity for a stored token and fails when the
// session is missing, expired or rejected.
func requireSession(cmd *cobra.Command, app *app) error {
	if !app.auth.CheckAuth(cmd.Context()) {
		return domain.ErrNotAuthenticated
	}
	return nil
}

func isTerminal(v any) bool {
	f, ok := v.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
