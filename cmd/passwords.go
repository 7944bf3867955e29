package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/bnema/pwsync/internal/adapters/render/vault"
	"github.com/bnema/pwsync/internal/domain"
	"github.com/spf13/cobra"
)

func newPasswordsCmd(app *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "passwords",
		Aliases: []string{"pw"},
		Short:   "Manage your own credentials",
	}

	cmd.AddCommand(
		newPasswordsListCmd(app),
		newPasswordsAddCmd(app),
		newPasswordsUpdateCmd(app),
		newPasswordsDeleteCmd(app),
		newPasswordsBatchDeleteCmd(app),
		newPasswordsSyncCmd(app),
		newPasswordsImportTextCmd(app),
		newPasswordsImportCSVCmd(app),
	)

	return cmd
}

type credentialFlags struct {
	domain   string
	username string
	password string
	url      string
	notes    string
	extra    map[string]string
}

func (f *credentialFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.domain, "domain", "", "Site the credential belongs to")
	cmd.Flags().StringVar(&f.username, "username", "", "Login name")
	cmd.Flags().StringVar(&f.password, "password", "", "Password")
	cmd.Flags().StringVar(&f.url, "url", "", "Website URL")
	cmd.Flags().StringVar(&f.notes, "notes", "", "Free-form notes")
	cmd.Flags().StringToStringVar(&f.extra, "field", nil, "Additional attribute (key=value)")
}

// patch holds only the attributes whose flags were set.
func (f *credentialFlags) patch(cmd *cobra.Command) domain.Patch {
	patch := domain.Patch{}
	set := func(flag string, key string, value string) {
		if cmd.Flags().Changed(flag) {
			patch[key] = value
		}
	}

	set("domain", "domain", f.domain)
	set("username", domain.FieldUsername, f.username)
	set("password", domain.FieldPassword, f.password)
	set("url", domain.FieldWebsiteURL, f.url)
	set("notes", domain.FieldNotes, f.notes)
	for key, value := range f.extra {
		patch[key] = value
	}

	return patch
}

func (f *credentialFlags) draft(cmd *cobra.Command) domain.CredentialDraft {
	fields := f.patch(cmd)
	delete(fields, "domain")
	return domain.CredentialDraft{Domain: strings.TrimSpace(f.domain), Fields: fields}
}

func newPasswordsListCmd(app *app) *cobra.Command {
	var (
		domainFilter string
		showSecrets  bool
		asJSON       bool
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "Fetch and list your credentials",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := requireSession(cmd, app); err != nil {
				return err
			}

			err := withSpinner(cmd, "Fetching credentials...", func(ctx context.Context) error {
				_, err := app.creds.Fetch(ctx)
				return err
			})
			if err != nil {
				return err
			}

			owned := app.creds.Owned()
			if domainFilter != "" {
				owned = ownedOnly(app.creds.ByDomain(domainFilter))
			}

			return writeCredentials(cmd, app, owned, nil, showSecrets, asJSON)
		},
	}

	cmd.Flags().StringVar(&domainFilter, "domain", "", "Only show credentials for this domain")
	cmd.Flags().BoolVar(&showSecrets, "show-secrets", false, "Print passwords in clear text")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Render JSON output")
	return cmd
}

func newPasswordsAddCmd(app *app) *cobra.Command {
	var (
		flags  credentialFlags
		asJSON bool
	)

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Store a new credential",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := requireSession(cmd, app); err != nil {
				return err
			}

			record, err := app.creds.Add(cmd.Context(), flags.draft(cmd))
			if err != nil {
				return err
			}

			return writeCredentials(cmd, app, []domain.Credential{record}, nil, false, asJSON)
		},
	}

	flags.register(cmd)
	cmd.Flags().BoolVar(&asJSON, "json", false, "Render JSON output")
	_ = cmd.MarkFlagRequired("domain")
	return cmd
}

func newPasswordsUpdateCmd(app *app) *cobra.Command {
	var (
		flags  credentialFlags
		asJSON bool
	)

	cmd := &cobra.Command{
		Use:   "update ID",
		Short: "Change attributes of one of your credentials",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requireSession(cmd, app); err != nil {
				return err
			}

			patch := flags.patch(cmd)
			if len(patch) == 0 {
				return &domain.ValidationError{Field: "fields", Reason: "nothing to update"}
			}

			record, err := app.creds.Update(cmd.Context(), domain.CredentialID(args[0]), patch)
			if err != nil {
				return err
			}

			return writeCredentials(cmd, app, []domain.Credential{record}, nil, false, asJSON)
		},
	}

	flags.register(cmd)
	cmd.Flags().BoolVar(&asJSON, "json", false, "Render JSON output")
	return cmd
}

func newPasswordsDeleteCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "delete ID",
		Short: "Delete one of your credentials",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requireSession(cmd, app); err != nil {
				return err
			}

			if err := app.creds.Delete(cmd.Context(), domain.CredentialID(args[0])); err != nil {
				return err
			}

			_, err := fmt.Fprintf(cmd.OutOrStdout(), "Deleted %s.\n", args[0])
			return err
		},
	}
}

func newPasswordsBatchDeleteCmd(app *app) *cobra.Command {
	var (
		idsJSON string
		asJSON  bool
	)

	cmd := &cobra.Command{
		Use:   "batch-delete [ID...]",
		Short: "Delete several credentials in one request",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requireSession(cmd, app); err != nil {
				return err
			}

			var raw any = args
			if idsJSON != "" {
				if len(args) > 0 {
					return &domain.ValidationError{Field: "ids", Reason: "pass ids as arguments or --ids-json, not both"}
				}
				var decoded any
				if err := json.Unmarshal([]byte(idsJSON), &decoded); err != nil {
					return &domain.ValidationError{Field: "ids", Reason: "is not valid JSON"}
				}
				raw = decoded
			}

			ids, err := domain.ParseCredentialIDs(raw)
			if err != nil {
				return err
			}

			// Load the cache first so confirmed deletions are reconciled locally.
			if _, err := app.creds.Fetch(cmd.Context()); err != nil {
				return err
			}

			outcome, err := app.creds.BatchDelete(cmd.Context(), ids)
			if err != nil {
				return err
			}

			return writeOutput(cmd, app, vault.BatchDeletePage{Outcome: outcome}, outcome, asJSON)
		},
	}

	cmd.Flags().StringVar(&idsJSON, "ids-json", "", `Ids as a JSON array, e.g. '["a", 7]'`)
	cmd.Flags().BoolVar(&asJSON, "json", false, "Render JSON output")
	return cmd
}

func newPasswordsSyncCmd(app *app) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "sync",
		Short: "Upload your cached credentials and replace them with the server copy",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := requireSession(cmd, app); err != nil {
				return err
			}

			err := withSpinner(cmd, "Syncing credentials...", func(ctx context.Context) error {
				if _, err := app.creds.Fetch(ctx); err != nil {
					return err
				}
				_, err := app.creds.Sync(ctx)
				return err
			})
			if err != nil {
				return err
			}

			return writeCredentials(cmd, app, app.creds.Owned(), nil, false, asJSON)
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Render JSON output")
	return cmd
}

func newPasswordsImportTextCmd(app *app) *cobra.Command {
	var (
		force  bool
		asJSON bool
	)

	cmd := &cobra.Command{
		Use:   "import-txt FILE",
		Short: `Import "domain username password" lines`,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requireSession(cmd, app); err != nil {
				return err
			}

			f, err := os.Open(args[0])
			if err != nil {
				return fmt.Errorf("open import file: %w", err)
			}
			defer func() { _ = f.Close() }()

			drafts, invalid, err := domain.ParseTextRecords(f)
			if err != nil {
				return fmt.Errorf("read import file: %w", err)
			}

			outcome, err := app.creds.ImportText(cmd.Context(), drafts, force)
			if err != nil {
				return err
			}
			outcome.Errors = append(invalid, outcome.Errors...)

			return writeOutput(cmd, app, vault.ImportPage{Outcome: outcome}, importView(outcome), asJSON)
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "Import records the server would skip as duplicates")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Render JSON output")
	return cmd
}

func newPasswordsImportCSVCmd(app *app) *cobra.Command {
	var (
		force  bool
		asJSON bool
	)

	cmd := &cobra.Command{
		Use:   "import-csv FILE",
		Short: "Upload a CSV export for import",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requireSession(cmd, app); err != nil {
				return err
			}

			f, err := os.Open(args[0])
			if err != nil {
				return fmt.Errorf("open import file: %w", err)
			}
			defer func() { _ = f.Close() }()

			outcome, err := app.creds.ImportCSV(cmd.Context(), domain.ImportFile{Name: filepath.Base(args[0]), Content: f}, force)
			if err != nil {
				return err
			}

			return writeOutput(cmd, app, vault.ImportPage{Outcome: outcome}, importView(outcome), asJSON)
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "Import records the server would skip as duplicates")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Render JSON output")
	return cmd
}

type importResult struct {
	ImportedCount  int      `json:"imported_count"`
	SkippedCount   int      `json:"skipped_count"`
	SkippedDetails []string `json:"skipped_details,omitempty"`
	Errors         []string `json:"errors,omitempty"`
}

func importView(outcome domain.ImportOutcome) importResult {
	return importResult{
		ImportedCount:  outcome.ImportedCount,
		SkippedCount:   outcome.SkippedCount,
		SkippedDetails: outcome.SkippedDetails,
		Errors:         outcome.Errors,
	}
}

type credentialsResult struct {
	Owned  []domain.Credential `json:"owned"`
	Shared []domain.Credential `json:"shared,omitempty"`
}

func writeCredentials(cmd *cobra.Command, app *app, owned []domain.Credential, shared []domain.Credential, showSecrets bool, asJSON bool) error {
	page := vault.CredentialsPage{
		Owned:       owned,
		Shared:      shared,
		LastSync:    app.creds.LastSyncTime(),
		Now:         app.now(),
		ShowSecrets: showSecrets,
	}

	payload := credentialsResult{Owned: owned, Shared: shared}
	if !showSecrets {
		payload = credentialsResult{Owned: maskPasswords(owned), Shared: maskPasswords(shared)}
	}

	return writeOutput(cmd, app, page, payload, asJSON)
}

func maskPasswords(records []domain.Credential) []domain.Credential {
	if records == nil {
		return nil
	}

	masked := domain.CloneCredentials(records)
	for i := range masked {
		if _, ok := masked[i].Fields[domain.FieldPassword]; ok {
			masked[i].Fields[domain.FieldPassword] = "********"
		}
	}
	return masked
}

func ownedOnly(records []domain.Credential) []domain.Credential {
	out := make([]domain.Credential, 0, len(records))
	for _, record := range records {
		if !record.Shared {
			out = append(out, record)
		}
	}
	return out
}
