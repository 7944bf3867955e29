package application

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/bnema/pwsync/internal/domain"
	"github.com/bnema/pwsync/internal/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newCacheFixture(t *testing.T) (*CredentialCache, *mocks.MockCredentialAPI, *testClock) {
	t.Helper()

	clock := newTestClock(t, epoch)
	api := mocks.NewMockCredentialAPI(t)
	return NewCredentialCache(api, clock, nil), api, clock
}

func records(ids ...string) []domain.Credential {
	out := make([]domain.Credential, 0, len(ids))
	for _, id := range ids {
		out = append(out, domain.Credential{ID: domain.CredentialID(id), Domain: id + ".com", Fields: map[string]any{}})
	}
	return out
}

func cachedIDs(in []domain.Credential) []domain.CredentialID {
	out := make([]domain.CredentialID, 0, len(in))
	for _, c := range in {
		out = append(out, c.ID)
	}
	return out
}

func seedOwned(t *testing.T, cache *CredentialCache, api *mocks.MockCredentialAPI, ids ...string) {
	t.Helper()

	api.EXPECT().ListCredentials(mockAnyContext()).Return(records(ids...), nil).Once()
	_, err := cache.Fetch(context.Background())
	require.NoError(t, err)
}

func TestCredentialCacheFetchReplacesCollection(t *testing.T) {
	cache, api, _ := newCacheFixture(t)
	seedOwned(t, cache, api, "a", "b")
	seedOwned(t, cache, api, "c")

	assert.Equal(t, []domain.CredentialID{"c"}, cachedIDs(cache.Owned()))
}

func TestCredentialCacheFetchFailureKeepsCache(t *testing.T) {
	cache, api, _ := newCacheFixture(t)
	seedOwned(t, cache, api, "a")
	api.EXPECT().ListCredentials(mockAnyContext()).Return(nil, &domain.TransportError{Op: "list credentials"}).Once()

	_, err := cache.Fetch(context.Background())
	require.ErrorIs(t, err, domain.ErrTransport)
	assert.Equal(t, []domain.CredentialID{"a"}, cachedIDs(cache.Owned()))

	failure, ok := cache.LastError()
	require.True(t, ok)
	assert.Equal(t, "fetch credentials", failure.Op)
	assert.Equal(t, epoch, failure.At)

	cache.ClearError()
	_, ok = cache.LastError()
	assert.False(t, ok)
}

func TestCredentialCacheAddAppendsServerRecord(t *testing.T) {
	cache, api, _ := newCacheFixture(t)
	draft := domain.CredentialDraft{Domain: "github.com", Fields: map[string]any{domain.FieldUsername: "ada"}}
	api.EXPECT().CreateCredential(mockAnyContext(), draft).
		Return(domain.Credential{ID: "srv-1", Domain: "github.com", Fields: map[string]any{domain.FieldUsername: "ada"}}, nil)

	created, err := cache.Add(context.Background(), draft)
	require.NoError(t, err)

	assert.Equal(t, domain.CredentialID("srv-1"), created.ID)
	assert.Equal(t, []domain.CredentialID{"srv-1"}, cachedIDs(cache.Owned()))
}

func TestCredentialCacheAddRejectsMissingDomain(t *testing.T) {
	cache, _, _ := newCacheFixture(t)

	_, err := cache.Add(context.Background(), domain.CredentialDraft{Fields: map[string]any{"x": 1}})
	require.ErrorIs(t, err, domain.ErrValidation)
	assert.Empty(t, cache.Owned())
}

func TestCredentialCacheUpdateReplacesCachedRecord(t *testing.T) {
	cache, api, _ := newCacheFixture(t)
	seedOwned(t, cache, api, "a", "b")
	patch := domain.Patch{domain.FieldNotes: "hi"}
	api.EXPECT().UpdateCredential(mockAnyContext(), domain.CredentialID("b"), patch).
		Return(domain.Credential{ID: "b", Domain: "b.com", Fields: map[string]any{domain.FieldNotes: "hi"}}, nil)

	_, err := cache.Update(context.Background(), "b", patch)
	require.NoError(t, err)

	found, ok := cache.Find("b")
	require.True(t, ok)
	assert.Equal(t, "hi", found.Field(domain.FieldNotes))
	assert.Equal(t, []domain.CredentialID{"a", "b"}, cachedIDs(cache.Owned()))
}

func TestCredentialCacheUpdateOfUncachedIDSucceeds(t *testing.T) {
	cache, api, _ := newCacheFixture(t)
	seedOwned(t, cache, api, "a")
	api.EXPECT().UpdateCredential(mockAnyContext(), domain.CredentialID("zzz"), mock.Anything).
		Return(domain.Credential{ID: "zzz", Domain: "z.com"}, nil)

	_, err := cache.Update(context.Background(), "zzz", domain.Patch{"notes": "x"})
	require.NoError(t, err)
	assert.Equal(t, []domain.CredentialID{"a"}, cachedIDs(cache.Owned()))
}

func TestCredentialCacheRequiresIDs(t *testing.T) {
	cache, _, _ := newCacheFixture(t)

	_, err := cache.Update(context.Background(), " ", domain.Patch{})
	require.ErrorIs(t, err, domain.ErrValidation)
	require.ErrorIs(t, cache.Delete(context.Background(), ""), domain.ErrValidation)
	_, err = cache.UpdateShared(context.Background(), "", domain.Patch{})
	require.ErrorIs(t, err, domain.ErrValidation)
}

func TestCredentialCacheDeleteFiltersRecord(t *testing.T) {
	cache, api, _ := newCacheFixture(t)
	seedOwned(t, cache, api, "a", "b")
	api.EXPECT().DeleteCredential(mockAnyContext(), domain.CredentialID("a")).Return(nil)

	require.NoError(t, cache.Delete(context.Background(), "a"))
	assert.Equal(t, []domain.CredentialID{"b"}, cachedIDs(cache.Owned()))
}

func TestCredentialCacheDeleteFailureKeepsRecord(t *testing.T) {
	cache, api, _ := newCacheFixture(t)
	seedOwned(t, cache, api, "a")
	api.EXPECT().DeleteCredential(mockAnyContext(), domain.CredentialID("a")).
		Return(&domain.RemoteError{Op: "delete credential", StatusCode: 404, Message: "record not found"})

	require.ErrorIs(t, cache.Delete(context.Background(), "a"), domain.ErrRemote)
	assert.Equal(t, []domain.CredentialID{"a"}, cachedIDs(cache.Owned()))
}

func TestCredentialCacheBatchDeleteValidatesBeforeRequest(t *testing.T) {
	tests := []struct {
		name string
		raw  any
	}{
		{name: "empty list", raw: []string{}},
		{name: "not a list", raw: "not-an-array"},
		{name: "nil", raw: nil},
		{name: "nested list", raw: []any{"a", []any{"b"}}},
		{name: "blank id", raw: []any{"a", " "}},
		{name: "fractional id", raw: []any{1.5}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// No expectations: any API call fails the test.
			cache, _, _ := newCacheFixture(t)

			_, err := cache.BatchDelete(context.Background(), tt.raw)
			require.ErrorIs(t, err, domain.ErrValidation)
			_, recorded := cache.LastError()
			assert.False(t, recorded)
		})
	}
}

func TestCredentialCacheBatchDeleteReconciliation(t *testing.T) {
	tests := []struct {
		name     string
		response domain.BatchDeleteOutcome
		want     []domain.CredentialID
	}{
		{
			name:     "all deleted",
			response: domain.BatchDeleteOutcome{DeletedCount: 3},
			want:     []domain.CredentialID{"d"},
		},
		{
			name: "one not found",
			response: domain.BatchDeleteOutcome{
				DeletedCount:  2,
				FailedCount:   1,
				FailedDetails: []string{"record not found: b"},
			},
			want: []domain.CredentialID{"b", "d"},
		},
		{
			name: "all failed",
			response: domain.BatchDeleteOutcome{
				FailedCount: 3,
				FailedDetails: []string{
					"record not found: a",
					"not authorized to delete: b",
					"delete failed: c - constraint violation",
				},
			},
			want: []domain.CredentialID{"a", "b", "c", "d"},
		},
		{
			name: "structured failures win",
			response: domain.BatchDeleteOutcome{
				DeletedCount:  2,
				FailedCount:   1,
				FailedDetails: []string{"something odd"},
				Failures:      []domain.ItemFailure{{ID: "c", Reason: domain.FailureNotAuthorized}},
			},
			want: []domain.CredentialID{"c", "d"},
		},
		{
			name: "unrecognised detail removes the complement of what is known",
			response: domain.BatchDeleteOutcome{
				DeletedCount:  2,
				FailedCount:   1,
				FailedDetails: []string{"database busy"},
			},
			want: []domain.CredentialID{"d"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cache, api, _ := newCacheFixture(t)
			seedOwned(t, cache, api, "a", "b", "c", "d")
			ids := []domain.CredentialID{"a", "b", "c"}
			api.EXPECT().BatchDeleteCredentials(mockAnyContext(), ids).Return(tt.response, nil)

			outcome, err := cache.BatchDelete(context.Background(), []any{"a", "b", "c"})
			require.NoError(t, err)

			assert.Equal(t, tt.want, cachedIDs(cache.Owned()))
			assert.Equal(t, ids, outcome.Requested)
		})
	}
}

func TestCredentialCacheBatchDeleteScenario(t *testing.T) {
	cache, api, _ := newCacheFixture(t)
	seedOwned(t, cache, api, "a", "b", "c")
	api.EXPECT().BatchDeleteCredentials(mockAnyContext(), []domain.CredentialID{"a", "b", "c"}).
		Return(domain.BatchDeleteOutcome{DeletedCount: 2, FailedCount: 1, FailedDetails: []string{"record not found: b"}}, nil)

	outcome, err := cache.BatchDelete(context.Background(), []string{"a", "b", "c"})
	require.NoError(t, err)

	assert.Equal(t, []domain.CredentialID{"b"}, cachedIDs(cache.Owned()))
	assert.Equal(t, []domain.ItemFailure{{ID: "b", Reason: domain.FailureNotFound}}, outcome.Failures)
	assert.Equal(t, "deleted 2 records, 1 failed", outcome.Summary())
}

func TestCredentialCacheSyncReplacesWithServerCopy(t *testing.T) {
	cache, api, clock := newCacheFixture(t)
	seedOwned(t, cache, api, "a", "b")
	clock.Advance(time.Minute)
	api.EXPECT().SyncCredentials(mockAnyContext(), mock.MatchedBy(func(sent []domain.Credential) bool {
		return len(sent) == 2 && sent[0].ID == "a" && sent[1].ID == "b"
	})).Return(records("b", "x"), nil)

	synced, err := cache.Sync(context.Background())
	require.NoError(t, err)

	assert.Len(t, synced, 2)
	assert.Equal(t, []domain.CredentialID{"b", "x"}, cachedIDs(cache.Owned()))
	assert.Equal(t, epoch.Add(time.Minute), cache.LastSyncTime())
}

func TestCredentialCacheSyncFailureKeepsCacheAndSyncTime(t *testing.T) {
	cache, api, _ := newCacheFixture(t)
	seedOwned(t, cache, api, "a")
	api.EXPECT().SyncCredentials(mockAnyContext(), mock.Anything).
		Return(nil, &domain.RemoteError{Op: "sync credentials", StatusCode: 200, Message: "response carries no serverPasswords"})

	_, err := cache.Sync(context.Background())
	require.ErrorIs(t, err, domain.ErrRemote)
	assert.Equal(t, []domain.CredentialID{"a"}, cachedIDs(cache.Owned()))
	assert.True(t, cache.LastSyncTime().IsZero())
}

func TestCredentialCacheSharedCollection(t *testing.T) {
	cache, api, _ := newCacheFixture(t)
	seedOwned(t, cache, api, "mine")
	api.EXPECT().ListShared(mockAnyContext()).Return(records("mine", "theirs"), nil)

	_, err := cache.FetchShared(context.Background())
	require.NoError(t, err)

	shared := cache.Shared()
	assert.Equal(t, []domain.CredentialID{"theirs"}, cachedIDs(shared))
	assert.True(t, shared[0].Shared)

	patch := domain.Patch{domain.FieldNotes: "edited"}
	api.EXPECT().UpdateShared(mockAnyContext(), domain.CredentialID("theirs"), patch).
		Return(domain.Credential{ID: "theirs", Domain: "theirs.com", Fields: map[string]any{domain.FieldNotes: "edited"}}, nil)

	updated, err := cache.UpdateShared(context.Background(), "theirs", patch)
	require.NoError(t, err)
	assert.True(t, updated.Shared)

	found, ok := cache.Find("theirs")
	require.True(t, ok)
	assert.Equal(t, "edited", found.Field(domain.FieldNotes))

	api.EXPECT().SyncShared(mockAnyContext(), mock.Anything).Return(records("other"), nil)
	_, err = cache.SyncShared(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []domain.CredentialID{"other"}, cachedIDs(cache.Shared()))
	assert.Equal(t, []domain.CredentialID{"mine"}, cachedIDs(cache.Owned()))
}

func TestCredentialCacheImportTextAppendsImportedOnly(t *testing.T) {
	cache, api, _ := newCacheFixture(t)
	seedOwned(t, cache, api, "a")
	drafts := make([]domain.CredentialDraft, 0, 5)
	for _, name := range []string{"p", "q", "r", "s", "t"} {
		drafts = append(drafts, domain.CredentialDraft{Domain: name + ".com"})
	}
	api.EXPECT().ImportText(mockAnyContext(), drafts, false).Return(domain.ImportOutcome{
		Imported:       records("p", "q", "r"),
		ImportedCount:  3,
		SkippedCount:   2,
		SkippedDetails: []string{"duplicate record for s.com", "duplicate record for t.com"},
	}, nil)

	outcome, err := cache.ImportText(context.Background(), drafts, false)
	require.NoError(t, err)

	assert.Equal(t, 3, outcome.ImportedCount)
	assert.Equal(t, 2, outcome.SkippedCount)
	assert.Equal(t, []domain.CredentialID{"a", "p", "q", "r"}, cachedIDs(cache.Owned()))
}

func TestCredentialCacheImportValidation(t *testing.T) {
	cache, _, _ := newCacheFixture(t)

	_, err := cache.ImportText(context.Background(), nil, false)
	require.ErrorIs(t, err, domain.ErrValidation)

	_, err = cache.ImportCSV(context.Background(), domain.ImportFile{Content: strings.NewReader("x")}, false)
	require.ErrorIs(t, err, domain.ErrValidation)

	_, err = cache.ImportCSV(context.Background(), domain.ImportFile{Name: "vault.csv"}, true)
	require.ErrorIs(t, err, domain.ErrValidation)
}

func TestCredentialCacheImportCSV(t *testing.T) {
	cache, api, _ := newCacheFixture(t)
	file := domain.ImportFile{Name: "vault.csv", Content: strings.NewReader("domain\nx.com\n")}
	api.EXPECT().ImportCSV(mockAnyContext(), file, true).Return(domain.ImportOutcome{Imported: records("x"), ImportedCount: 1}, nil)

	_, err := cache.ImportCSV(context.Background(), file, true)
	require.NoError(t, err)
	assert.Equal(t, []domain.CredentialID{"x"}, cachedIDs(cache.Owned()))
}

func TestCredentialCacheReadHelpers(t *testing.T) {
	cache, api, _ := newCacheFixture(t)
	api.EXPECT().ListCredentials(mockAnyContext()).Return([]domain.Credential{
		{ID: "1", Domain: "github.com"},
		{ID: "2", Domain: "example.org"},
		{ID: "3", Domain: "GitHub.com"},
	}, nil)
	_, err := cache.Fetch(context.Background())
	require.NoError(t, err)

	assert.Equal(t, []domain.CredentialID{"1", "3"}, cachedIDs(cache.ByDomain("github.com")))
	assert.Equal(t, []string{"GitHub.com", "example.org", "github.com"}, cache.Domains())

	_, ok := cache.Find("nope")
	assert.False(t, ok)

	cache.Clear()
	assert.Empty(t, cache.Owned())
}

func TestCredentialCacheBusyWhileRequestInFlight(t *testing.T) {
	cache, api, _ := newCacheFixture(t)
	started := make(chan struct{})
	release := make(chan struct{})
	api.EXPECT().ListCredentials(mockAnyContext()).RunAndReturn(func(context.Context) ([]domain.Credential, error) {
		close(started)
		<-release
		return nil, errors.New("boom")
	})

	done := make(chan error, 1)
	go func() {
		_, err := cache.Fetch(context.Background())
		done <- err
	}()

	<-started
	assert.True(t, cache.Busy())
	close(release)
	require.Error(t, <-done)
	assert.False(t, cache.Busy())
}
