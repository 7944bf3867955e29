package application

import (
	"errors"
	"sync"
	"sync/atomic"
	"time"

	"github.com/bnema/pwsync/internal/domain"
	"github.com/bnema/pwsync/internal/ports"
)

// Failure is the last failed operation of a component.
type Failure struct {
	Op  string
	Err error
	At  time.Time
}

// opTracker gives a component an in-flight counter and a last-failure slot.
// Each operation still returns its own error; the tracker only mirrors it for
// status displays.
type opTracker struct {
	clock    ports.Clock
	inFlight atomic.Int64

	mu   sync.Mutex
	last *Failure
}

func (t *opTracker) begin() func() {
	t.inFlight.Add(1)
	return func() { t.inFlight.Add(-1) }
}

// finish records err unless it is a local validation failure and returns it
// unchanged.
func (t *opTracker) finish(op string, err error) error {
	if err == nil || errors.Is(err, domain.ErrValidation) {
		return err
	}

	now := time.Now()
	if t.clock != nil {
		now = t.clock.Now()
	}

	t.mu.Lock()
	t.last = &Failure{Op: op, Err: err, At: now}
	t.mu.Unlock()

	return err
}

// Busy reports whether any operation is in flight.
func (t *opTracker) Busy() bool {
	return t.inFlight.Load() > 0
}

func (t *opTracker) LastError() (Failure, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.last == nil {
		return Failure{}, false
	}
	return *t.last, true
}

func (t *opTracker) ClearError() {
	t.mu.Lock()
	t.last = nil
	t.mu.Unlock()
}
