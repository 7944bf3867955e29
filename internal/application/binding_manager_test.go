package application

import (
	"context"
	"testing"
	"time"

	"github.com/bnema/pwsync/internal/domain"
	"github.com/bnema/pwsync/internal/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newBindingFixture(t *testing.T) (*BindingManager, *mocks.MockBindingAPI, *testClock) {
	t.Helper()

	clock := newTestClock(t, epoch)
	api := mocks.NewMockBindingAPI(t)
	return NewBindingManager(api, clock, nil), api, clock
}

func seedBindings(t *testing.T, m *BindingManager, api *mocks.MockBindingAPI, set domain.BindingSet) {
	t.Helper()

	api.EXPECT().ListBindings(mockAnyContext()).Return(set, nil).Once()
	_, err := m.Fetch(context.Background())
	require.NoError(t, err)
}

func bindingIDs(in []domain.Binding) []domain.BindingID {
	out := make([]domain.BindingID, 0, len(in))
	for _, b := range in {
		out = append(out, b.ID)
	}
	return out
}

func pendingInbound(id string, requester string) domain.Binding {
	return domain.Binding{
		ID:          domain.BindingID(id),
		RequesterID: domain.UserID(requester),
		TargetID:    "me",
		Status:      domain.BindingPending,
		Direction:   domain.DirectionInbound,
		Permissions: domain.PermissionRead,
		PeerEmail:   requester + "@example.com",
	}
}

func activeBinding(id string, peer string) domain.Binding {
	return domain.Binding{
		ID:          domain.BindingID(id),
		RequesterID: "me",
		TargetID:    domain.UserID(peer),
		Status:      domain.BindingActive,
		Direction:   domain.DirectionOutbound,
		Permissions: domain.PermissionRead,
	}
}

func TestBindingManagerFetchReplacesBothCollections(t *testing.T) {
	m, api, _ := newBindingFixture(t)
	seedBindings(t, m, api, domain.BindingSet{
		Active:  []domain.Binding{activeBinding("b-1", "bob")},
		Pending: []domain.Binding{pendingInbound("b-2", "carol")},
	})
	seedBindings(t, m, api, domain.BindingSet{
		Pending: []domain.Binding{pendingInbound("b-3", "dan")},
	})

	assert.Empty(t, m.Active())
	assert.Equal(t, []domain.BindingID{"b-3"}, bindingIDs(m.Pending()))
}

func TestBindingManagerFetchDropsDuplicatePairs(t *testing.T) {
	m, api, _ := newBindingFixture(t)
	active := activeBinding("b-1", "bob")
	stale := active
	stale.ID = "b-9"
	stale.Status = domain.BindingPending

	seedBindings(t, m, api, domain.BindingSet{Active: []domain.Binding{active}, Pending: []domain.Binding{stale}})

	assert.Equal(t, []domain.BindingID{"b-1"}, bindingIDs(m.Active()))
	assert.Empty(t, m.Pending())
}

func TestBindingManagerBindDoesNotTouchPending(t *testing.T) {
	m, api, _ := newBindingFixture(t)
	api.EXPECT().ProposeBinding(mockAnyContext(), "bob@example.com").Return(domain.BindingID("b-7"), nil)

	id, err := m.Bind(context.Background(), BindCommand{TargetEmail: " bob@example.com "})
	require.NoError(t, err)

	assert.Equal(t, domain.BindingID("b-7"), id)
	assert.Empty(t, m.Pending())
}

func TestBindingManagerBindValidatesEmail(t *testing.T) {
	m, _, _ := newBindingFixture(t)

	_, err := m.Bind(context.Background(), BindCommand{TargetEmail: "bob"})

	var validationErr *domain.ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, "targetEmail", validationErr.Field)
}

func TestBindingManagerAcceptMovesEntry(t *testing.T) {
	m, api, clock := newBindingFixture(t)
	seedBindings(t, m, api, domain.BindingSet{
		Active:  []domain.Binding{activeBinding("b-1", "bob")},
		Pending: []domain.Binding{pendingInbound("b-2", "carol"), pendingInbound("b-3", "dan")},
	})
	clock.Advance(time.Minute)
	api.EXPECT().AcceptBinding(mockAnyContext(), domain.BindingID("b-2")).Return(nil)

	require.NoError(t, m.Accept(context.Background(), "b-2"))

	assert.Equal(t, []domain.BindingID{"b-3"}, bindingIDs(m.Pending()))
	assert.Equal(t, []domain.BindingID{"b-1", "b-2"}, bindingIDs(m.Active()))

	accepted, ok := m.Find("b-2")
	require.True(t, ok)
	assert.Equal(t, domain.BindingActive, accepted.Status)
	assert.Equal(t, domain.BindingStateActive, accepted.State())
	assert.Equal(t, "carol@example.com", accepted.PeerEmail)
	assert.Equal(t, epoch.Add(time.Minute), accepted.UpdatedAt)
}

func TestBindingManagerAcceptOfUncachedRequestIsNoop(t *testing.T) {
	m, api, _ := newBindingFixture(t)
	api.EXPECT().AcceptBinding(mockAnyContext(), domain.BindingID("b-5")).Return(nil)

	require.NoError(t, m.Accept(context.Background(), "b-5"))
	assert.Empty(t, m.Active())
	assert.Empty(t, m.Pending())
}

func TestBindingManagerAcceptFailureKeepsPending(t *testing.T) {
	m, api, _ := newBindingFixture(t)
	seedBindings(t, m, api, domain.BindingSet{Pending: []domain.Binding{pendingInbound("b-2", "carol")}})
	api.EXPECT().AcceptBinding(mockAnyContext(), domain.BindingID("b-2")).
		Return(&domain.RemoteError{Op: "accept binding", StatusCode: 404, Message: "binding request not found"})

	err := m.Accept(context.Background(), "b-2")
	require.ErrorIs(t, err, domain.ErrRemote)

	assert.Equal(t, []domain.BindingID{"b-2"}, bindingIDs(m.Pending()))
	failure, ok := m.LastError()
	require.True(t, ok)
	assert.Equal(t, "accept binding", failure.Op)
}

func TestBindingManagerRejectAndUnbind(t *testing.T) {
	m, api, _ := newBindingFixture(t)
	seedBindings(t, m, api, domain.BindingSet{
		Active:  []domain.Binding{activeBinding("b-1", "bob")},
		Pending: []domain.Binding{pendingInbound("b-2", "carol")},
	})
	api.EXPECT().RejectBinding(mockAnyContext(), domain.BindingID("b-2")).Return(nil)
	api.EXPECT().DeleteBinding(mockAnyContext(), domain.BindingID("b-1")).Return(nil)

	require.NoError(t, m.Reject(context.Background(), "b-2"))
	assert.Empty(t, m.Pending())
	assert.Len(t, m.Active(), 1)

	require.NoError(t, m.Unbind(context.Background(), "b-1"))
	assert.Empty(t, m.Active())
}

func TestBindingManagerUpdatePermissions(t *testing.T) {
	m, api, _ := newBindingFixture(t)
	seedBindings(t, m, api, domain.BindingSet{Active: []domain.Binding{activeBinding("b-1", "bob")}})
	api.EXPECT().UpdateBindingPermissions(mockAnyContext(), domain.BindingID("b-1"), domain.PermissionWrite).Return(nil)
	api.EXPECT().UpdateBindingPermissions(mockAnyContext(), domain.BindingID("b-8"), domain.PermissionRead).Return(nil)

	require.NoError(t, m.UpdatePermissions(context.Background(), PermissionsCommand{ID: "b-1", Permissions: "WRITE"}))
	binding, ok := m.Find("b-1")
	require.True(t, ok)
	assert.Equal(t, domain.PermissionWrite, binding.Permissions)

	require.NoError(t, m.UpdatePermissions(context.Background(), PermissionsCommand{ID: "b-8", Permissions: domain.PermissionRead}))
	_, ok = m.Find("b-8")
	assert.False(t, ok)
}

func TestBindingManagerValidation(t *testing.T) {
	m, _, _ := newBindingFixture(t)

	require.ErrorIs(t, m.Accept(context.Background(), ""), domain.ErrValidation)
	require.ErrorIs(t, m.Reject(context.Background(), ""), domain.ErrValidation)
	require.ErrorIs(t, m.Unbind(context.Background(), ""), domain.ErrValidation)

	err := m.UpdatePermissions(context.Background(), PermissionsCommand{ID: "b-1", Permissions: "admin"})
	var validationErr *domain.ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, "permissions", validationErr.Field)
	assert.Equal(t, "must be one of: read, write", validationErr.Reason)
}
