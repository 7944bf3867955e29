package cmd

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/bnema/pwsync/internal/adapters/remote/remotetest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVersionCommand(t *testing.T) {
	stdout, _, err := executeCLI(t, t.TempDir(), "version")
	require.NoError(t, err)
	assert.Equal(t, "pwsync dev\n", stdout)
}

func TestStatusWithoutSession(t *testing.T) {
	newCLIServer(t)
	home := t.TempDir()

	stdout, _, err := executeCLI(t, home, "status")
	require.NoError(t, err)
	assert.Contains(t, stdout, "Not logged in.")

	stdout, _, err = executeCLI(t, home, "status", "--json")
	require.NoError(t, err)
	assert.JSONEq(t, `{"state":"anonymous"}`, stdout)
}

func TestLoginPersistsSessionAcrossInvocations(t *testing.T) {
	server := newCLIServer(t)
	server.AddUser("ada@example.com", "s3cret")
	home := t.TempDir()

	stdout, _, err := executeCLI(t, home, "login", "--email", "ada@example.com", "--password", "s3cret")
	require.NoError(t, err)
	assert.Contains(t, stdout, "authenticated")
	assert.Contains(t, stdout, "ada@example.com")

	raw, err := os.ReadFile(filepath.Join(home, ".pwsync", "session.toml"))
	require.NoError(t, err)
	assert.Contains(t, string(raw), "session/token")

	stdout, _, err = executeCLI(t, home, "status", "--json")
	require.NoError(t, err)

	var view sessionView
	require.NoError(t, json.Unmarshal([]byte(stdout), &view))
	assert.Equal(t, "authenticated", string(view.State))
	assert.Equal(t, "ada@example.com", view.Email)
	assert.NotEmpty(t, view.UserID)
	require.NotNil(t, view.TokenExpiry)
}

func TestLoginRejectsBadPassword(t *testing.T) {
	server := newCLIServer(t)
	server.AddUser("ada@example.com", "s3cret")

	_, _, err := executeCLI(t, t.TempDir(), "login", "--email", "ada@example.com", "--password", "nope")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "authentication failed")
	assert.Contains(t, err.Error(), "invalid email or password")
}

func TestLoginRequiresEmailFlag(t *testing.T) {
	newCLIServer(t)

	_, _, err := executeCLI(t, t.TempDir(), "login", "--password", "pw")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "required flag(s) \"email\" not set")
}

func TestRegisterSignsIn(t *testing.T) {
	newCLIServer(t)
	home := t.TempDir()

	_, _, err := executeCLI(t, home, "register", "--email", "new@example.com", "--password", "pw", "--profile", "display_name=New")
	require.NoError(t, err)

	stdout, _, err := executeCLI(t, home, "status")
	require.NoError(t, err)
	assert.Contains(t, stdout, "new@example.com")
}

func TestAuthenticatedCommandsRequireSession(t *testing.T) {
	newCLIServer(t)

	_, _, err := executeCLI(t, t.TempDir(), "passwords", "list")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not logged in")
}

func TestPasswordLifecycle(t *testing.T) {
	server := newCLIServer(t)
	home := loggedInHome(t, server, "ada@example.com")

	stdout, _, err := executeCLI(t, home, "passwords", "add",
		"--domain", "github.com",
		"--username", "ada",
		"--password", "hunter2",
		"--notes", "work",
	)
	require.NoError(t, err)
	assert.Contains(t, stdout, "github.com")
	assert.NotContains(t, stdout, "hunter2")

	stdout, _, err = executeCLI(t, home, "passwords", "list", "--json")
	require.NoError(t, err)
	assert.Contains(t, stdout, `"github.com"`)
	assert.NotContains(t, stdout, "hunter2")

	stdout, _, err = executeCLI(t, home, "passwords", "list", "--show-secrets")
	require.NoError(t, err)
	assert.Contains(t, stdout, "password hunter2")

	ids := server.CredentialIDs("ada@example.com")
	require.Len(t, ids, 1)

	stdout, _, err = executeCLI(t, home, "passwords", "update", ids[0], "--password", "correct-horse", "--json")
	require.NoError(t, err)
	assert.Contains(t, stdout, ids[0])

	_, _, err = executeCLI(t, home, "passwords", "update", ids[0])
	require.Error(t, err)
	assert.Contains(t, err.Error(), "nothing to update")

	stdout, _, err = executeCLI(t, home, "passwords", "delete", ids[0])
	require.NoError(t, err)
	assert.Contains(t, stdout, "Deleted "+ids[0])
	assert.Empty(t, server.CredentialIDs("ada@example.com"))
}

func TestPasswordsListFiltersByDomain(t *testing.T) {
	server := newCLIServer(t)
	home := loggedInHome(t, server, "ada@example.com")
	server.SeedCredential("ada@example.com", "github.com", map[string]any{"encrypted_username": "ada"})
	server.SeedCredential("ada@example.com", "gitlab.com", map[string]any{"encrypted_username": "ada"})

	stdout, _, err := executeCLI(t, home, "passwords", "list", "--domain", "GitHub.com")
	require.NoError(t, err)
	assert.Contains(t, stdout, "github.com")
	assert.NotContains(t, stdout, "gitlab.com")
}

func TestBatchDeleteReportsPartialFailure(t *testing.T) {
	server := newCLIServer(t)
	home := loggedInHome(t, server, "ada@example.com")
	keep := server.SeedCredential("ada@example.com", "a.com", nil)

	stdout, _, err := executeCLI(t, home, "passwords", "batch-delete", keep, "missing-id")
	require.NoError(t, err)
	assert.Contains(t, stdout, "deleted 1 records, 1 failed")
	assert.Contains(t, stdout, "record not found: missing-id")
	assert.Empty(t, server.CredentialIDs("ada@example.com"))
}

func TestBatchDeleteRejectsMalformedIDsLocally(t *testing.T) {
	server := newCLIServer(t)
	home := loggedInHome(t, server, "ada@example.com")

	tests := []struct {
		name    string
		args    []string
		wantErr string
	}{
		{name: "no ids", args: nil, wantErr: "ids must not be empty"},
		{name: "object", args: []string{"--ids-json", `{"id": 1}`}, wantErr: "must be a list of ids"},
		{name: "nested", args: []string{"--ids-json", `["a", ["b"]]`}, wantErr: "ids[1]"},
		{name: "bad json", args: []string{"--ids-json", `[`}, wantErr: "not valid JSON"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := executeCLI(t, home, append([]string{"passwords", "batch-delete"}, tt.args...)...)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}

	for _, req := range server.Requests() {
		assert.NotEqual(t, "/api/batch_delete", req.Path)
	}
}

func TestImportTextReportsInvalidLines(t *testing.T) {
	server := newCLIServer(t)
	home := loggedInHome(t, server, "ada@example.com")

	file := filepath.Join(t.TempDir(), "export.txt")
	require.NoError(t, os.WriteFile(file, []byte(strings.Join([]string{
		"github.com ada hunter2",
		"example.org bob pass with spaces",
		"broken-line",
		"",
	}, "\n")), 0o600))

	stdout, _, err := executeCLI(t, home, "passwords", "import-txt", file, "--json")
	require.NoError(t, err)

	var result importResult
	require.NoError(t, json.Unmarshal([]byte(stdout), &result))
	assert.Equal(t, 2, result.ImportedCount)
	assert.Equal(t, []string{"line 3: expected domain, username and password"}, result.Errors)
	assert.Len(t, server.CredentialIDs("ada@example.com"), 2)

	stdout, _, err = executeCLI(t, home, "passwords", "import-txt", file)
	require.NoError(t, err)
	assert.Contains(t, stdout, "imported 0, skipped 2")
}

func TestImportCSVRequiresCSVFile(t *testing.T) {
	server := newCLIServer(t)
	home := loggedInHome(t, server, "ada@example.com")

	dir := t.TempDir()
	good := filepath.Join(dir, "export.csv")
	require.NoError(t, os.WriteFile(good, []byte("domain,encrypted_username,encrypted_password\na.com,ada,pw\n"), 0o600))
	bad := filepath.Join(dir, "export.txt")
	require.NoError(t, os.WriteFile(bad, []byte("a.com ada pw\n"), 0o600))

	stdout, _, err := executeCLI(t, home, "passwords", "import-csv", good)
	require.NoError(t, err)
	assert.Contains(t, stdout, "imported 1, skipped 0")

	_, _, err = executeCLI(t, home, "passwords", "import-csv", bad)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "upload a CSV file")
}

func TestBindingFlowSharesCredentials(t *testing.T) {
	server := newCLIServer(t)
	ada := loggedInHome(t, server, "ada@example.com")
	bob := loggedInHome(t, server, "bob@example.com")
	server.SeedCredential("bob@example.com", "bob.dev", map[string]any{"encrypted_password": "b-secret"})

	stdout, _, err := executeCLI(t, ada, "bindings", "bind", "bob@example.com")
	require.NoError(t, err)
	assert.Contains(t, stdout, "sent to bob@example.com")

	stdout, _, err = executeCLI(t, bob, "bindings", "list", "--json")
	require.NoError(t, err)
	var listed bindingsResult
	require.NoError(t, json.Unmarshal([]byte(stdout), &listed))
	require.Len(t, listed.Pending, 1)
	bindingID := string(listed.Pending[0].ID)

	stdout, _, err = executeCLI(t, bob, "bindings", "accept", bindingID)
	require.NoError(t, err)
	assert.Contains(t, stdout, "with ada@example.com #"+bindingID)

	stdout, _, err = executeCLI(t, ada, "shared", "list")
	require.NoError(t, err)
	assert.Contains(t, stdout, "bob.dev")
	assert.NotContains(t, stdout, "b-secret")

	_, _, err = executeCLI(t, bob, "bindings", "permissions", bindingID, "admin")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "must be one of: read, write")

	stdout, _, err = executeCLI(t, ada, "refresh", "--json")
	require.NoError(t, err)
	assert.Contains(t, stdout, `"shared"`)
	assert.Contains(t, stdout, `"active"`)

	stdout, _, err = executeCLI(t, bob, "bindings", "unbind", bindingID)
	require.NoError(t, err)
	assert.Contains(t, stdout, "Removed binding "+bindingID)
}

func TestRefreshRendersCredentialsAndBindings(t *testing.T) {
	server := newCLIServer(t)
	home := loggedInHome(t, server, "ada@example.com")
	server.AddUser("bob@example.com", "pw")
	server.SeedCredential("ada@example.com", "github.com", map[string]any{"encrypted_username": "ada"})
	server.SeedBinding("bob@example.com", "ada@example.com", "pending", "read")

	stdout, _, err := executeCLI(t, home, "refresh")
	require.NoError(t, err)
	assert.Contains(t, stdout, "owned: 1  shared: 0")
	assert.Contains(t, stdout, "github.com")
	assert.Contains(t, stdout, "active: 0  pending: 1")
	assert.Contains(t, stdout, "from bob@example.com")
}

func TestRevokedTokenEndsSession(t *testing.T) {
	server := newCLIServer(t)
	home := loggedInHome(t, server, "ada@example.com")
	server.RevokeTokens()

	_, stderr, err := executeCLI(t, home, "passwords", "list")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not logged in")
	assert.Contains(t, stderr, `session rejected by server; run "pwsync login" to sign in again`)

	stdout, _, err := executeCLI(t, home, "status")
	require.NoError(t, err)
	assert.Contains(t, stdout, "Not logged in.")
}

func TestLogoutClearsSession(t *testing.T) {
	server := newCLIServer(t)
	home := loggedInHome(t, server, "ada@example.com")

	stdout, stderr, err := executeCLI(t, home, "logout")
	require.NoError(t, err)
	assert.Contains(t, stdout, "Logged out.")
	assert.Contains(t, stderr, "logged out; run")

	_, stderr, err = executeCLI(t, home, "logout")
	require.NoError(t, err)
	assert.Empty(t, stderr)

	stdout, _, err = executeCLI(t, home, "status", "--json")
	require.NoError(t, err)
	assert.JSONEq(t, `{"state":"anonymous"}`, stdout)
}

func TestInvalidConfigFailsEveryCommand(t *testing.T) {
	t.Setenv("PWSYNC_STORE_BACKEND", "sqlite")

	_, _, err := executeCLI(t, t.TempDir(), "status")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported store.backend")
}

func newCLIServer(t *testing.T) *remotetest.Server {
	t.Helper()

	server := remotetest.New(t)
	t.Setenv("PWSYNC_SERVER_URL", server.URL)
	return server
}

func loggedInHome(t *testing.T, server *remotetest.Server, email string) string {
	t.Helper()

	server.AddUser(email, "pw-"+email)
	home := t.TempDir()
	_, _, err := executeCLI(t, home, "login", "--email", email, "--password", "pw-"+email)
	require.NoError(t, err)
	return home
}

func executeCLI(t *testing.T, home string, args ...string) (string, string, error) {
	t.Helper()
	t.Setenv("HOME", home)

	root := newRootCmd()
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}
	root.SetOut(stdout)
	root.SetErr(stderr)
	root.SetArgs(args)

	err := root.Execute()
	return stdout.String(), stderr.String(), err
}
