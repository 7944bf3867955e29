package e2e

import (
	"bytes"
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/bnema/pwsync/internal/adapters/remote/remotetest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSmokeFlow(t *testing.T) {
	server := remotetest.New(t)
	server.AddUser("ada@example.com", "s3cret")

	home := t.TempDir()
	binaryPath := buildBinary(t)
	require.NoError(t, writeConfig(home, server.URL))

	_, stderr, err := runPwsync(t, binaryPath, home, "login", "--email", "ada@example.com", "--password", "s3cret")
	require.NoError(t, err, "stderr: %s", stderr)

	_, stderr, err = runPwsync(t, binaryPath, home, "passwords", "add", "--domain", "github.com", "--username", "ada", "--password", "hunter2")
	require.NoError(t, err, "stderr: %s", stderr)

	stdout, stderr, err := runPwsync(t, binaryPath, home, "passwords", "list")
	require.NoError(t, err, "stderr: %s", stderr)
	assert.Contains(t, stdout, "github.com")
	assert.NotContains(t, stdout, "hunter2")

	_, stderr, err = runPwsync(t, binaryPath, home, "logout")
	require.NoError(t, err, "stderr: %s", stderr)

	_, _, err = runPwsync(t, binaryPath, home, "passwords", "list")
	require.Error(t, err)
}

func buildBinary(t *testing.T) string {
	t.Helper()

	binaryPath := filepath.Join(t.TempDir(), "pwsync-e2e")
	cmd := exec.Command("go", "build", "-o", binaryPath, "./cmd/pwsync")
	cmd.Dir = repoRoot(t)

	output, err := cmd.CombinedOutput()
	require.NoError(t, err, "build pwsync binary: %s", string(output))
	return binaryPath
}

func runPwsync(t *testing.T, binaryPath, home string, args ...string) (string, string, error) {
	t.Helper()

	cmd := exec.Command(binaryPath, args...)
	cmd.Env = append(os.Environ(), "HOME="+home)

	var stdout bytes.Buffer
	var stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	return stdout.String(), stderr.String(), err
}

func repoRoot(t *testing.T) string {
	t.Helper()

	wd, err := os.Getwd()
	require.NoError(t, err)
	return filepath.Clean(filepath.Join(wd, "..", ".."))
}

func writeConfig(home string, serverURL string) error {
	configDir := filepath.Join(home, ".pwsync")
	if err := os.MkdirAll(configDir, 0o700); err != nil {
		return err
	}

	config := `[server]
url = "` + serverURL + `"
timeout = "5s"

[store]
backend = "file"
`

	return os.WriteFile(filepath.Join(configDir, "config.toml"), []byte(config), 0o600)
}
