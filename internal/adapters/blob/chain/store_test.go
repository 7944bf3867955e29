package chain

import (
	"context"
	"errors"
	"testing"

	"github.com/bnema/pwsync/internal/domain"
	portmocks "github.com/bnema/pwsync/internal/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const tokenKey = "session/token"

func TestStoreGetUsesPrimaryWhenItSucceeds(t *testing.T) {
	t.Parallel()

	primary := portmocks.NewMockBlobStore(t)
	fallback := portmocks.NewMockBlobStore(t)
	store := newChain(t, primary, fallback)

	primary.EXPECT().Get(mock.Anything, tokenKey).Return("from-pass", nil).Once()

	value, err := store.Get(context.Background(), tokenKey)
	require.NoError(t, err)
	assert.Equal(t, "from-pass", value)
}

func TestStoreGetFallsBackWhenPrimaryFails(t *testing.T) {
	t.Parallel()

	primary := portmocks.NewMockBlobStore(t)
	fallback := portmocks.NewMockBlobStore(t)
	store := newChain(t, primary, fallback)

	primary.EXPECT().Get(mock.Anything, tokenKey).Return("", errors.New("pass unavailable")).Once()
	fallback.EXPECT().Get(mock.Anything, tokenKey).Return("from-file", nil).Once()

	value, err := store.Get(context.Background(), tokenKey)
	require.NoError(t, err)
	assert.Equal(t, "from-file", value)
}

func TestStoreGetKeepsNotFoundWhenBothBackendsMiss(t *testing.T) {
	t.Parallel()

	primary := portmocks.NewMockBlobStore(t)
	fallback := portmocks.NewMockBlobStore(t)
	store := newChain(t, primary, fallback)

	primary.EXPECT().Get(mock.Anything, tokenKey).Return("", errors.New("pass failed")).Once()
	fallback.EXPECT().Get(mock.Anything, tokenKey).Return("", domain.ErrBlobNotFound).Once()

	_, err := store.Get(context.Background(), tokenKey)
	require.ErrorIs(t, err, domain.ErrBlobNotFound)
	assert.ErrorContains(t, err, "primary backend")
	assert.ErrorContains(t, err, "pass failed")
}

func TestStorePutFallsBackWhenPrimaryFails(t *testing.T) {
	t.Parallel()

	primary := portmocks.NewMockBlobStore(t)
	fallback := portmocks.NewMockBlobStore(t)
	store := newChain(t, primary, fallback)

	primary.EXPECT().Put(mock.Anything, tokenKey, "tok").Return(errors.New("pass failed")).Once()
	fallback.EXPECT().Put(mock.Anything, tokenKey, "tok").Return(nil).Once()

	require.NoError(t, store.Put(context.Background(), tokenKey, "tok"))
}

func TestStorePutDoesNotCallFallbackWhenPrimarySucceeds(t *testing.T) {
	t.Parallel()

	primary := portmocks.NewMockBlobStore(t)
	fallback := portmocks.NewMockBlobStore(t)
	store := newChain(t, primary, fallback)

	primary.EXPECT().Put(mock.Anything, tokenKey, "tok").Return(nil).Once()

	require.NoError(t, store.Put(context.Background(), tokenKey, "tok"))
}

func TestStoreDeleteClearsBothBackends(t *testing.T) {
	t.Parallel()

	primary := portmocks.NewMockBlobStore(t)
	fallback := portmocks.NewMockBlobStore(t)
	store := newChain(t, primary, fallback)

	primary.EXPECT().Delete(mock.Anything, tokenKey).Return(nil).Once()
	fallback.EXPECT().Delete(mock.Anything, tokenKey).Return(nil).Once()

	require.NoError(t, store.Delete(context.Background(), tokenKey))
}

func TestStoreDeleteReportsFailingBackend(t *testing.T) {
	t.Parallel()

	primary := portmocks.NewMockBlobStore(t)
	fallback := portmocks.NewMockBlobStore(t)
	store := newChain(t, primary, fallback)

	primary.EXPECT().Delete(mock.Anything, tokenKey).Return(errors.New("pass failed")).Once()
	fallback.EXPECT().Delete(mock.Anything, tokenKey).Return(nil).Once()

	err := store.Delete(context.Background(), tokenKey)
	require.Error(t, err)
	assert.ErrorContains(t, err, "primary backend delete failed")
}

func TestStoreGetDoesNotFallbackOnCanceledContextError(t *testing.T) {
	t.Parallel()

	primary := portmocks.NewMockBlobStore(t)
	fallback := portmocks.NewMockBlobStore(t)
	store := newChain(t, primary, fallback)

	primary.EXPECT().Get(mock.Anything, tokenKey).Return("", context.Canceled).Once()

	_, err := store.Get(context.Background(), tokenKey)
	require.ErrorIs(t, err, context.Canceled)
}

func TestStoreGetReadsFallbackWhenPrimaryMissesKey(t *testing.T) {
	t.Parallel()

	primary := portmocks.NewMockBlobStore(t)
	fallback := portmocks.NewMockBlobStore(t)
	store := newChain(t, primary, fallback)

	primary.EXPECT().Get(mock.Anything, tokenKey).Return("", domain.ErrBlobNotFound).Once()
	fallback.EXPECT().Get(mock.Anything, tokenKey).Return("stored-while-pass-was-down", nil).Once()

	value, err := store.Get(context.Background(), tokenKey)
	require.NoError(t, err)
	assert.Equal(t, "stored-while-pass-was-down", value)
}

func TestStoreGetReportsPlainNotFoundWhenNeitherBackendHasKey(t *testing.T) {
	t.Parallel()

	primary := portmocks.NewMockBlobStore(t)
	fallback := portmocks.NewMockBlobStore(t)
	store := newChain(t, primary, fallback)

	primary.EXPECT().Get(mock.Anything, tokenKey).Return("", domain.ErrBlobNotFound).Once()
	fallback.EXPECT().Get(mock.Anything, tokenKey).Return("", domain.ErrBlobNotFound).Once()

	_, err := store.Get(context.Background(), tokenKey)
	require.ErrorIs(t, err, domain.ErrBlobNotFound)
	assert.NotContains(t, err.Error(), "primary backend")
}

func TestStoreDeleteIgnoresMissingKeys(t *testing.T) {
	t.Parallel()

	primary := portmocks.NewMockBlobStore(t)
	fallback := portmocks.NewMockBlobStore(t)
	store := newChain(t, primary, fallback)

	primary.EXPECT().Delete(mock.Anything, tokenKey).Return(domain.ErrBlobNotFound).Once()
	fallback.EXPECT().Delete(mock.Anything, tokenKey).Return(nil).Once()

	require.NoError(t, store.Delete(context.Background(), tokenKey))
}

func TestNewStoreRejectsNilBackends(t *testing.T) {
	t.Parallel()

	_, err := NewStore(nil, portmocks.NewMockBlobStore(t), nil)
	require.ErrorIs(t, err, errNilPrimaryStore)

	_, err = NewStore(portmocks.NewMockBlobStore(t), nil, nil)
	require.ErrorIs(t, err, errNilFallbackStore)
}

func newChain(t *testing.T, primary *portmocks.MockBlobStore, fallback *portmocks.MockBlobStore) *Store {
	t.Helper()

	store, err := NewStore(primary, fallback, nil)
	require.NoError(t, err)
	return store
}
