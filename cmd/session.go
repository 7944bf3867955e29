package cmd

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/bnema/pwsync/internal/adapters/render/vault"
	"github.com/bnema/pwsync/internal/application"
	"github.com/bnema/pwsync/internal/domain"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

type sessionView struct {
	State       domain.SessionState `json:"state"`
	UserID      domain.UserID       `json:"user_id,omitempty"`
	Email       string              `json:"email,omitempty"`
	TokenExpiry *time.Time          `json:"token_expiry,omitempty"`
}

func newSessionView(session domain.Session, now time.Time) sessionView {
	view := sessionView{
		State:  session.State(now),
		UserID: session.UserID,
		Email:  session.Email,
	}
	if !session.TokenExpiry.IsZero() {
		expiry := session.TokenExpiry
		view.TokenExpiry = &expiry
	}
	return view
}

func newLoginCmd(app *app) *cobra.Command {
	var (
		email    string
		password string
		asJSON   bool
	)

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Sign in and store the session token",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			secret, err := passwordFromFlagOrPrompt(cmd, password)
			if err != nil {
				return err
			}

			session, err := app.auth.Login(cmd.Context(), application.LoginCommand{Email: email, Password: secret})
			if err != nil {
				return err
			}

			return writeSession(cmd, app, session, asJSON)
		},
	}

	cmd.Flags().StringVar(&email, "email", "", "Account email")
	cmd.Flags().StringVar(&password, "password", "", "Account password (prompted when omitted)")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Render JSON output")
	_ = cmd.MarkFlagRequired("email")

	return cmd
}

func newRegisterCmd(app *app) *cobra.Command {
	var (
		email    string
		password string
		profile  map[string]string
		asJSON   bool
	)

	cmd := &cobra.Command{
		Use:   "register",
		Short: "Create an account and sign in",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			secret, err := passwordFromFlagOrPrompt(cmd, password)
			if err != nil {
				return err
			}

			var extra map[string]any
			if len(profile) > 0 {
				extra = make(map[string]any, len(profile))
				for key, value := range profile {
					extra[key] = value
				}
			}

			session, err := app.auth.Register(cmd.Context(), application.RegisterCommand{
				Email:    email,
				Password: secret,
				Profile:  extra,
			})
			if err != nil {
				return err
			}

			return writeSession(cmd, app, session, asJSON)
		},
	}

	cmd.Flags().StringVar(&email, "email", "", "Account email")
	cmd.Flags().StringVar(&password, "password", "", "Account password (prompted when omitted)")
	cmd.Flags().StringToStringVar(&profile, "profile", nil, "Extra profile fields sent with the registration (key=value)")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Render JSON output")
	_ = cmd.MarkFlagRequired("email")

	return cmd
}

func newLogoutCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Clear the stored session",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := app.auth.Logout(cmd.Context()); err != nil {
				return err
			}
			app.creds.Clear()
			app.bindings.Clear()

			_, err := fmt.Fprintln(cmd.OutOrStdout(), "Logged out.")
			return err
		},
	}
}

func newStatusCmd(app *app) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "status",
		Short: "Show the current session",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			app.auth.CheckAuth(cmd.Context())
			return writeSession(cmd, app, app.session.Session(), asJSON)
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Render JSON output")
	return cmd
}

func writeSession(cmd *cobra.Command, app *app, session domain.Session, asJSON bool) error {
	now := app.now()
	return writeOutput(cmd, app, vault.SessionPage{Session: session, Now: now}, newSessionView(session, now), asJSON)
}

// passwordFromFlagOrPrompt reads the password without echo on a terminal and
// as a single line from piped stdin.
func passwordFromFlagOrPrompt(cmd *cobra.Command, flagValue string) (string, error) {
	if flagValue != "" {
		return flagValue, nil
	}

	in := cmd.InOrStdin()
	if f, ok := in.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		_, _ = fmt.Fprint(cmd.ErrOrStderr(), "Password: ")
		secret, err := term.ReadPassword(int(f.Fd()))
		_, _ = fmt.Fprintln(cmd.ErrOrStderr())
		if err != nil {
			return "", fmt.Errorf("read password: %w", err)
		}
		return string(secret), nil
	}

	line, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", fmt.Errorf("read password: %w", err)
	}
	return strings.TrimRight(line, "\r\n"), nil
}
