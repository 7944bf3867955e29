package application

import (
	"context"
	"log/slog"
	"strings"
	"sync"

	"github.com/bnema/pwsync/internal/domain"
	"github.com/bnema/pwsync/internal/logging"
	"github.com/bnema/pwsync/internal/ports"
)

// BindingManager caches the account's sharing relationships. Local state moves
// only after the server confirmed the transition.
type BindingManager struct {
	opTracker

	api    ports.BindingAPI
	clock  ports.Clock
	logger *slog.Logger

	mu      sync.RWMutex
	active  []domain.Binding
	pending []domain.Binding
}

func NewBindingManager(api ports.BindingAPI, clock ports.Clock, logger *slog.Logger) *BindingManager {
	if clock == nil {
		clock = ports.SystemClock{}
	}

	return &BindingManager{
		opTracker: opTracker{clock: clock},
		api:       api,
		clock:     clock,
		logger:    logging.OrDiscard(logger),
	}
}

func (m *BindingManager) Active() []domain.Binding {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return append([]domain.Binding(nil), m.active...)
}

func (m *BindingManager) Pending() []domain.Binding {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return append([]domain.Binding(nil), m.pending...)
}

func (m *BindingManager) Find(id domain.BindingID) (domain.Binding, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if i := bindingIndex(m.active, id); i >= 0 {
		return m.active[i], true
	}
	if i := bindingIndex(m.pending, id); i >= 0 {
		return m.pending[i], true
	}
	return domain.Binding{}, false
}

func (m *BindingManager) Clear() {
	m.mu.Lock()
	m.active = nil
	m.pending = nil
	m.mu.Unlock()
}

// Fetch replaces both collections with the server's view.
func (m *BindingManager) Fetch(ctx context.Context) (domain.BindingSet, error) {
	done := m.begin()
	defer done()

	set, err := m.api.ListBindings(ctx)
	if err != nil {
		return domain.BindingSet{}, m.finish("fetch bindings", err)
	}

	active, pending := domain.NormalizeBindings(set.Active, set.Pending)

	m.mu.Lock()
	m.active = active
	m.pending = pending
	m.mu.Unlock()

	return domain.BindingSet{
		Active:  append([]domain.Binding(nil), active...),
		Pending: append([]domain.Binding(nil), pending...),
	}, nil
}

// Bind proposes a binding. The new request shows up on the next Fetch.
func (m *BindingManager) Bind(ctx context.Context, cmd BindCommand) (domain.BindingID, error) {
	cmd.TargetEmail = strings.TrimSpace(cmd.TargetEmail)
	if err := validateCommand(cmd); err != nil {
		return "", err
	}

	done := m.begin()
	defer done()

	id, err := m.api.ProposeBinding(ctx, cmd.TargetEmail)
	if err != nil {
		return "", m.finish("bind account", err)
	}

	return id, nil
}

// Accept moves the matching pending entry to the active set. Nothing moves when
// the entry is not cached.
func (m *BindingManager) Accept(ctx context.Context, id domain.BindingID) error {
	if err := requireID("id", string(id)); err != nil {
		return err
	}

	done := m.begin()
	defer done()

	if err := m.api.AcceptBinding(ctx, id); err != nil {
		return m.finish("accept binding", err)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	i := bindingIndex(m.pending, id)
	if i < 0 {
		m.logger.Debug("accepted binding is not cached", "id", id)
		return nil
	}

	accepted := m.pending[i]
	accepted.Status = domain.BindingActive
	accepted.UpdatedAt = m.clock.Now()
	m.pending = withoutBinding(m.pending, id)
	m.active = append(m.active, accepted)

	return nil
}

func (m *BindingManager) Reject(ctx context.Context, id domain.BindingID) error {
	if err := requireID("id", string(id)); err != nil {
		return err
	}

	done := m.begin()
	defer done()

	if err := m.api.RejectBinding(ctx, id); err != nil {
		return m.finish("reject binding", err)
	}

	m.mu.Lock()
	m.pending = withoutBinding(m.pending, id)
	m.mu.Unlock()

	return nil
}

func (m *BindingManager) Unbind(ctx context.Context, id domain.BindingID) error {
	if err := requireID("id", string(id)); err != nil {
		return err
	}

	done := m.begin()
	defer done()

	if err := m.api.DeleteBinding(ctx, id); err != nil {
		return m.finish("unbind account", err)
	}

	m.mu.Lock()
	m.active = withoutBinding(m.active, id)
	m.mu.Unlock()

	return nil
}

// UpdatePermissions changes an active binding in place when it is cached.
func (m *BindingManager) UpdatePermissions(ctx context.Context, cmd PermissionsCommand) error {
	cmd.Permissions = domain.Permission(strings.ToLower(strings.TrimSpace(string(cmd.Permissions))))
	if err := validateCommand(cmd); err != nil {
		return err
	}

	done := m.begin()
	defer done()

	if err := m.api.UpdateBindingPermissions(ctx, cmd.ID, cmd.Permissions); err != nil {
		return m.finish("update binding permissions", err)
	}

	m.mu.Lock()
	if i := bindingIndex(m.active, cmd.ID); i >= 0 {
		m.active[i].Permissions = cmd.Permissions
		m.active[i].UpdatedAt = m.clock.Now()
	}
	m.mu.Unlock()

	return nil
}

func bindingIndex(bindings []domain.Binding, id domain.BindingID) int {
	for i, b := range bindings {
		if b.ID == id {
			return i
		}
	}
	return -1
}

func withoutBinding(bindings []domain.Binding, id domain.BindingID) []domain.Binding {
	i := bindingIndex(bindings, id)
	if i < 0 {
		return bindings
	}

	out := make([]domain.Binding, 0, len(bindings)-1)
	out = append(out, bindings[:i]...)
	return append(out, bindings[i+1:]...)
}
