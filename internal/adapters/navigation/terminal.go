// Package navigation sends the user back to the login entry point once a
// session ends.
package navigation

import (
	"context"
	"fmt"
	"io"
	"sync"

	"github.com/bnema/pwsync/internal/domain"
	"github.com/bnema/pwsync/internal/ports"
)

// Terminal prints a login hint. Each reason is announced at most once per
// process.
type Terminal struct {
	out     io.Writer
	command string

	mu        sync.Mutex
	announced map[domain.SessionEndReason]bool
}

var _ ports.Navigator = (*Terminal)(nil)

func NewTerminal(out io.Writer, loginCommand string) *Terminal {
	return &Terminal{
		out:       out,
		command:   loginCommand,
		announced: map[domain.SessionEndReason]bool{},
	}
}

func (t *Terminal) RedirectToLogin(_ context.Context, reason domain.SessionEndReason) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.announced[reason] {
		return
	}
	t.announced[reason] = true

	_, _ = fmt.Fprintf(t.out, "%s; run %q to sign in again\n", message(reason), t.command)
}

func message(reason domain.SessionEndReason) string {
	switch reason {
	case domain.EndExpired:
		return "session expired"
	case domain.EndRejected:
		return "session rejected by server"
	default:
		return "logged out"
	}
}
