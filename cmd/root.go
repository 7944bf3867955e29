package cmd

import (
	"context"

	"github.com/spf13/cobra"
)

func Execute() error {
	return newRootCmd().Execute()
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "pwsync",
		Short:         "pwsync: keep a local session and sync your password vault",
		Long:          "pwsync signs in to a password server, keeps the session token in a local store, and syncs owned credentials, credentials shared with you and account bindings from the terminal.",
		SilenceUsage:  true,
		SilenceErrors: false,
	}

	app, err := wireApp(context.Background(), lazyWriter{target: rootCmd.ErrOrStderr})
	if err != nil {
		rootCmd.RunE = func(_ *cobra.Command, _ []string) error {
			return err
		}
		return rootCmd
	}

	rootCmd.AddCommand(
		newVersionCmd(),
		newLoginCmd(app),
		newRegisterCmd(app),
		newLogoutCmd(app),
		newStatusCmd(app),
		newPasswordsCmd(app),
		newSharedCmd(app),
		newBindingsCmd(app),
		newRefreshCmd(app),
	)

	return rootCmd
}
