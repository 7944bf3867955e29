package chain

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	filestore "github.com/bnema/pwsync/internal/adapters/blob/file"
	passstore "github.com/bnema/pwsync/internal/adapters/blob/pass"
	"github.com/bnema/pwsync/internal/domain"
	"github.com/bnema/pwsync/internal/logging"
	"github.com/bnema/pwsync/internal/ports"
)

// Store prefers primary and uses fallback when primary is unavailable or does
// not hold the key. Deletes go to both so a token left in the fallback cannot
// resurrect a session that was logged out.
type Store struct {
	primary  ports.BlobStore
	fallback ports.BlobStore
	logger   *slog.Logger
}

var _ ports.BlobStore = (*Store)(nil)

var (
	errNilPrimaryStore  = errors.New("primary blob store is nil")
	errNilFallbackStore = errors.New("fallback blob store is nil")
)

func NewStore(primary ports.BlobStore, fallback ports.BlobStore, logger *slog.Logger) (*Store, error) {
	if primary == nil {
		return nil, errNilPrimaryStore
	}
	if fallback == nil {
		return nil, errNilFallbackStore
	}

	return &Store{primary: primary, fallback: fallback, logger: logging.OrDiscard(logger)}, nil
}

func NewPassFirstWithFileFallback(passPrefix string, fileRoot string, logger *slog.Logger) (*Store, error) {
	return NewStore(passstore.NewStore(passPrefix), filestore.NewStore(fileRoot), logger)
}

func (s *Store) Put(ctx context.Context, key string, value string) error {
	err := s.primary.Put(ctx, key, value)
	if err == nil {
		return nil
	}
	if isContextErr(err) {
		return err
	}

	if fallbackErr := s.fallback.Put(ctx, key, value); fallbackErr != nil {
		return fmt.Errorf("primary backend put failed: %w; fallback backend put failed: %w", err, fallbackErr)
	}

	s.logger.Warn("blob stored in fallback backend", "key", key, "error", err)
	return nil
}

func (s *Store) Get(ctx context.Context, key string) (string, error) {
	value, err := s.primary.Get(ctx, key)
	if err == nil {
		return value, nil
	}
	if isContextErr(err) {
		return "", err
	}

	fallbackValue, fallbackErr := s.fallback.Get(ctx, key)
	switch {
	case fallbackErr == nil:
		return fallbackValue, nil
	case errors.Is(err, domain.ErrBlobNotFound) && errors.Is(fallbackErr, domain.ErrBlobNotFound):
		return "", fmt.Errorf("blob %q: %w", key, domain.ErrBlobNotFound)
	default:
		return "", fmt.Errorf("primary backend get failed: %w; fallback backend get failed: %w", err, fallbackErr)
	}
}

// Delete treats a key missing from either backend as already deleted.
func (s *Store) Delete(ctx context.Context, key string) error {
	err := s.primary.Delete(ctx, key)
	if isContextErr(err) {
		return err
	}

	var errs []error
	if err != nil && !errors.Is(err, domain.ErrBlobNotFound) {
		errs = append(errs, fmt.Errorf("primary backend delete failed: %w", err))
	}
	if err := s.fallback.Delete(ctx, key); err != nil && !errors.Is(err, domain.ErrBlobNotFound) {
		errs = append(errs, fmt.Errorf("fallback backend delete failed: %w", err))
	}

	return errors.Join(errs...)
}

func isContextErr(err error) bool {
	return errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
}
