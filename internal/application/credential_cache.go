package application

import (
	"context"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/bnema/pwsync/internal/domain"
	"github.com/bnema/pwsync/internal/logging"
	"github.com/bnema/pwsync/internal/ports"
)

// CredentialCache holds the owned and shared credential collections. Every
// mutation is applied from the server response only, after the request
// succeeded.
type CredentialCache struct {
	opTracker

	api    ports.CredentialAPI
	clock  ports.Clock
	logger *slog.Logger

	mu       sync.RWMutex
	owned    []domain.Credential
	shared   []domain.Credential
	lastSync time.Time
}

func NewCredentialCache(api ports.CredentialAPI, clock ports.Clock, logger *slog.Logger) *CredentialCache {
	if clock == nil {
		clock = ports.SystemClock{}
	}

	return &CredentialCache{
		opTracker: opTracker{clock: clock},
		api:       api,
		clock:     clock,
		logger:    logging.OrDiscard(logger),
	}
}

func (c *CredentialCache) Owned() []domain.Credential {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return domain.CloneCredentials(c.owned)
}

func (c *CredentialCache) Shared() []domain.Credential {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return domain.CloneCredentials(c.shared)
}

// Find looks the id up in the owned collection first, then in the shared one.
func (c *CredentialCache) Find(id domain.CredentialID) (domain.Credential, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	for _, collection := range [][]domain.Credential{c.owned, c.shared} {
		if i := indexOf(collection, id); i >= 0 {
			return domain.CloneCredentials(collection[i : i+1])[0], true
		}
	}
	return domain.Credential{}, false
}

func (c *CredentialCache) ByDomain(name string) []domain.Credential {
	c.mu.RLock()
	defer c.mu.RUnlock()

	var out []domain.Credential
	for _, collection := range [][]domain.Credential{c.owned, c.shared} {
		for _, record := range collection {
			if strings.EqualFold(record.Domain, name) {
				out = append(out, record)
			}
		}
	}
	return domain.CloneCredentials(out)
}

func (c *CredentialCache) Domains() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()

	all := make([]domain.Credential, 0, len(c.owned)+len(c.shared))
	all = append(all, c.owned...)
	all = append(all, c.shared...)
	return domain.SortedDomains(all)
}

// LastSyncTime is zero until a sync succeeded.
func (c *CredentialCache) LastSyncTime() time.Time {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return c.lastSync
}

// Clear drops both collections, e.g. after logout.
func (c *CredentialCache) Clear() {
	c.mu.Lock()
	c.owned = nil
	c.shared = nil
	c.lastSync = time.Time{}
	c.mu.Unlock()
}

func (c *CredentialCache) Fetch(ctx context.Context) ([]domain.Credential, error) {
	done := c.begin()
	defer done()

	records, err := c.api.ListCredentials(ctx)
	if err != nil {
		return nil, c.finish("fetch credentials", err)
	}

	c.mu.Lock()
	c.replaceOwnedLocked(records)
	c.mu.Unlock()

	return domain.CloneCredentials(records), nil
}

func (c *CredentialCache) FetchShared(ctx context.Context) ([]domain.Credential, error) {
	done := c.begin()
	defer done()

	records, err := c.api.ListShared(ctx)
	if err != nil {
		return nil, c.finish("fetch shared credentials", err)
	}

	c.mu.Lock()
	c.replaceSharedLocked(records)
	c.mu.Unlock()

	return domain.CloneCredentials(records), nil
}

func (c *CredentialCache) Add(ctx context.Context, draft domain.CredentialDraft) (domain.Credential, error) {
	if err := draft.Validate(); err != nil {
		return domain.Credential{}, err
	}

	done := c.begin()
	defer done()

	created, err := c.api.CreateCredential(ctx, draft)
	if err != nil {
		return domain.Credential{}, c.finish("add credential", err)
	}

	c.mu.Lock()
	c.owned = append(c.owned, created)
	c.shared = without(c.shared, created.ID)
	c.mu.Unlock()

	return created, nil
}

// Update patches an owned record. A record missing from the cache is still
// updated server-side and the cache is left as it was.
func (c *CredentialCache) Update(ctx context.Context, id domain.CredentialID, patch domain.Patch) (domain.Credential, error) {
	if err := requireID("id", string(id)); err != nil {
		return domain.Credential{}, err
	}

	done := c.begin()
	defer done()

	updated, err := c.api.UpdateCredential(ctx, id, patch)
	if err != nil {
		return domain.Credential{}, c.finish("update credential", err)
	}

	c.mu.Lock()
	if i := indexOf(c.owned, id); i >= 0 {
		c.owned[i] = updated
	} else {
		c.logger.Debug("updated credential is not cached", "id", id)
	}
	c.mu.Unlock()

	return updated, nil
}

func (c *CredentialCache) UpdateShared(ctx context.Context, id domain.CredentialID, patch domain.Patch) (domain.Credential, error) {
	if err := requireID("id", string(id)); err != nil {
		return domain.Credential{}, err
	}

	done := c.begin()
	defer done()

	updated, err := c.api.UpdateShared(ctx, id, patch)
	if err != nil {
		return domain.Credential{}, c.finish("update shared credential", err)
	}
	updated.Shared = true

	c.mu.Lock()
	if i := indexOf(c.shared, id); i >= 0 {
		c.shared[i] = updated
	}
	c.mu.Unlock()

	return updated, nil
}

func (c *CredentialCache) Delete(ctx context.Context, id domain.CredentialID) error {
	if err := requireID("id", string(id)); err != nil {
		return err
	}

	done := c.begin()
	defer done()

	if err := c.api.DeleteCredential(ctx, id); err != nil {
		return c.finish("delete credential", err)
	}

	c.mu.Lock()
	c.owned = without(c.owned, id)
	c.mu.Unlock()

	return nil
}

// BatchDelete accepts any decoded id list and validates it before the request.
// Only ids the server did not report as failed are dropped from the cache.
func (c *CredentialCache) BatchDelete(ctx context.Context, raw any) (domain.BatchDeleteOutcome, error) {
	ids, err := domain.ParseCredentialIDs(raw)
	if err != nil {
		return domain.BatchDeleteOutcome{}, err
	}

	done := c.begin()
	defer done()

	outcome, err := c.api.BatchDeleteCredentials(ctx, ids)
	if err != nil {
		return domain.BatchDeleteOutcome{}, c.finish("batch delete credentials", err)
	}
	outcome.Requested = ids
	outcome.AttributeFailures(outcome.Failures)
	if outcome.Unattributed > 0 {
		c.logger.Warn("batch delete failures could not be attributed", "count", outcome.Unattributed, "details", outcome.FailedDetails)
	}

	removable := outcome.Removable()
	c.mu.Lock()
	for _, id := range removable {
		c.owned = without(c.owned, id)
	}
	c.mu.Unlock()

	return outcome, nil
}

// Sync pushes the whole owned collection and replaces it with the server's copy.
func (c *CredentialCache) Sync(ctx context.Context) ([]domain.Credential, error) {
	done := c.begin()
	defer done()

	records, err := c.api.SyncCredentials(ctx, c.Owned())
	if err != nil {
		return nil, c.finish("sync credentials", err)
	}

	c.mu.Lock()
	c.replaceOwnedLocked(records)
	c.lastSync = c.clock.Now()
	c.mu.Unlock()

	return domain.CloneCredentials(records), nil
}

func (c *CredentialCache) SyncShared(ctx context.Context) ([]domain.Credential, error) {
	done := c.begin()
	defer done()

	records, err := c.api.SyncShared(ctx, c.Shared())
	if err != nil {
		return nil, c.finish("sync shared credentials", err)
	}

	c.mu.Lock()
	c.replaceSharedLocked(records)
	c.lastSync = c.clock.Now()
	c.mu.Unlock()

	return domain.CloneCredentials(records), nil
}

// ImportText appends only the records the server reports as imported.
func (c *CredentialCache) ImportText(ctx context.Context, drafts []domain.CredentialDraft, force bool) (domain.ImportOutcome, error) {
	if len(drafts) == 0 {
		return domain.ImportOutcome{}, &domain.ValidationError{Field: "records", Reason: "must not be empty"}
	}

	done := c.begin()
	defer done()

	outcome, err := c.api.ImportText(ctx, drafts, force)
	if err != nil {
		return domain.ImportOutcome{}, c.finish("import text", err)
	}

	c.appendImported(outcome)
	return outcome, nil
}

func (c *CredentialCache) ImportCSV(ctx context.Context, file domain.ImportFile, force bool) (domain.ImportOutcome, error) {
	if err := validateCommand(ImportCSVCommand{Name: file.Name, Force: force}); err != nil {
		return domain.ImportOutcome{}, err
	}
	if file.Content == nil {
		return domain.ImportOutcome{}, &domain.ValidationError{Field: "file", Reason: "is required"}
	}

	done := c.begin()
	defer done()

	outcome, err := c.api.ImportCSV(ctx, file, force)
	if err != nil {
		return domain.ImportOutcome{}, c.finish("import csv", err)
	}

	c.appendImported(outcome)
	return outcome, nil
}

func (c *CredentialCache) appendImported(outcome domain.ImportOutcome) {
	if len(outcome.Imported) != outcome.ImportedCount {
		c.logger.Warn("import count does not match returned records", "count", outcome.ImportedCount, "records", len(outcome.Imported))
	}

	c.mu.Lock()
	for _, record := range outcome.Imported {
		c.owned = append(without(c.owned, record.ID), record)
		c.shared = without(c.shared, record.ID)
	}
	c.mu.Unlock()
}

func (c *CredentialCache) replaceOwnedLocked(records []domain.Credential) {
	c.owned = domain.CloneCredentials(records)
	for _, record := range c.owned {
		c.shared = without(c.shared, record.ID)
	}
}

// replaceSharedLocked keeps the collections disjoint: an id already owned is
// not listed again as shared.
func (c *CredentialCache) replaceSharedLocked(records []domain.Credential) {
	shared := make([]domain.Credential, 0, len(records))
	for _, record := range domain.CloneCredentials(records) {
		if indexOf(c.owned, record.ID) >= 0 {
			continue
		}
		record.Shared = true
		shared = append(shared, record)
	}
	c.shared = shared
}

func indexOf(records []domain.Credential, id domain.CredentialID) int {
	for i, record := range records {
		if record.ID == id {
			return i
		}
	}
	return -1
}

func without(records []domain.Credential, id domain.CredentialID) []domain.Credential {
	i := indexOf(records, id)
	if i < 0 {
		return records
	}

	out := make([]domain.Credential, 0, len(records)-1)
	out = append(out, records[:i]...)
	return append(out, records[i+1:]...)
}
