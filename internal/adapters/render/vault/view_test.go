package vault

import (
	"strings"
	"testing"
	"time"

	"github.com/bnema/pwsync/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var now = time.Date(2026, 2, 14, 11, 0, 0, 0, time.UTC)

func TestRenderSessionStates(t *testing.T) {
	output, err := Render(SessionPage{Now: now})
	require.NoError(t, err)
	assert.Contains(t, output, "Not logged in.")

	output, err = Render(SessionPage{
		Session: domain.Session{UserID: "u-1", Email: "ada@example.com", Token: "tok", TokenExpiry: now.Add(3 * time.Hour)},
		Now:     now,
	})
	require.NoError(t, err)
	assert.Contains(t, output, "authenticated")
	assert.Contains(t, output, "ada@example.com")
	assert.Contains(t, output, "in 3 hours")
	assert.NotContains(t, output, "tok")

	output, err = Render(SessionPage{
		Session: domain.Session{UserID: "u-1", Token: "tok", TokenExpiry: now.Add(-2 * time.Hour)},
		Now:     now,
	})
	require.NoError(t, err)
	assert.Contains(t, output, "Session expired 2 hours ago.")
}

func TestRenderCredentialsMasksPasswords(t *testing.T) {
	page := CredentialsPage{
		Owned: []domain.Credential{{
			ID:     "c-1",
			Domain: "github.com",
			Fields: map[string]any{domain.FieldUsername: "ada", domain.FieldPassword: "hunter2", domain.FieldNotes: "work account"},
		}},
		Shared: []domain.Credential{{ID: "c-2", Domain: "bob.dev", Shared: true, Fields: map[string]any{}}},
		Now:    now,
	}

	output, err := Render(page)
	require.NoError(t, err)
	assert.Contains(t, output, "owned: 1  shared: 1  last sync: never")
	assert.Contains(t, output, "github.com")
	assert.Contains(t, output, "#c-1")
	assert.Contains(t, output, "user ada")
	assert.Contains(t, output, "notes work account")
	assert.Contains(t, output, "Shared with you")
	assert.NotContains(t, output, "hunter2")

	page.ShowSecrets = true
	page.LastSync = now.Add(-5 * time.Minute)
	output, err = Render(page)
	require.NoError(t, err)
	assert.Contains(t, output, "password hunter2")
	assert.Contains(t, output, "last sync: 5 minutes ago")
}

func TestRenderEmptyCredentials(t *testing.T) {
	output, err := Render(CredentialsPage{Now: now})
	require.NoError(t, err)
	assert.Contains(t, output, "No credentials.")
	assert.NotContains(t, output, "Shared with you")
}

func TestRenderBindings(t *testing.T) {
	output, err := Render(BindingsPage{
		Active: []domain.Binding{{
			ID: "b-1", Status: domain.BindingActive, Direction: domain.DirectionOutbound,
			Permissions: domain.PermissionWrite, PeerEmail: "bob@example.com", CreatedAt: now.Add(-72 * time.Hour),
		}},
		Pending: []domain.Binding{{
			ID: "b-2", Status: domain.BindingPending, Direction: domain.DirectionInbound,
			Permissions: domain.PermissionRead, PeerEmail: "carol@example.com",
		}},
		Now: now,
	})
	require.NoError(t, err)

	assert.Contains(t, output, "active: 1  pending: 1")
	assert.Contains(t, output, "with bob@example.com #b-1 [active, write, since 3 days ago]")
	assert.Contains(t, output, "from carol@example.com #b-2 [pending-inbound, read]")
}

func TestRenderBatchDeleteOutcome(t *testing.T) {
	output, err := Render(BatchDeletePage{Outcome: domain.BatchDeleteOutcome{
		DeletedCount:  2,
		FailedCount:   2,
		FailedDetails: []string{"record not found: b", "database busy"},
		Unattributed:  1,
	}})
	require.NoError(t, err)

	assert.Contains(t, output, "deleted 2 records, 2 failed")
	assert.Contains(t, output, "record not found: b")
	assert.Contains(t, output, "1 failures could not be matched to an id")
}

func TestRenderImportOutcome(t *testing.T) {
	output, err := Render(ImportPage{Outcome: domain.ImportOutcome{
		ImportedCount:  3,
		SkippedCount:   1,
		SkippedDetails: []string{"duplicate record for a.com"},
		Errors:         []string{"row 4: domain is required"},
	}})
	require.NoError(t, err)

	assert.Contains(t, output, "imported 3, skipped 1")
	assert.Contains(t, output, "skipped: duplicate record for a.com")
	assert.Contains(t, output, "error: row 4: domain is required")
}

func TestRelative(t *testing.T) {
	tests := []struct {
		at   time.Time
		want string
	}{
		{at: now.Add(30 * time.Second), want: "just now"},
		{at: now.Add(-90 * time.Minute), want: "1 hour ago"},
		{at: now.Add(25 * time.Minute), want: "in 25 minutes"},
		{at: now.Add(-49 * time.Hour), want: "2 days ago"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, relative(tt.at, now))
	}
}

func TestRenderSharedOnlySkipsOwnedSection(t *testing.T) {
	output, err := Render(CredentialsPage{
		Shared: []domain.Credential{{ID: "c-2", Domain: "bob.dev", Shared: true, Fields: map[string]any{}}},
		Now:    now,
	})
	require.NoError(t, err)
	assert.Contains(t, output, "Shared with you")
	assert.NotContains(t, output, "No credentials.")
}

func TestRenderStacksPages(t *testing.T) {
	output, err := Render(
		CredentialsPage{Now: now},
		nil,
		BindingsPage{Now: now},
	)
	require.NoError(t, err)

	credentials := strings.Index(output, "Credentials")
	bindings := strings.Index(output, "Account bindings")
	require.GreaterOrEqual(t, credentials, 0)
	assert.Greater(t, bindings, credentials)
}

func TestRenderWithoutPages(t *testing.T) {
	_, err := Render()
	require.ErrorIs(t, err, ErrNoPages)

	_, err = Render(nil)
	require.ErrorIs(t, err, ErrNoPages)
}
