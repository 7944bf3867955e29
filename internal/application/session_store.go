package application

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/bnema/pwsync/internal/domain"
	"github.com/bnema/pwsync/internal/logging"
	"github.com/bnema/pwsync/internal/ports"
)

const (
	TokenBlobKey  = "session/token"
	ExpiryBlobKey = "session/token_expiry"
)

// SessionStore owns the current session. It is the only writer of the token;
// the remote gateway reads it through AccessToken and reports rejected tokens
// through HandleUnauthorized.
type SessionStore struct {
	blobs  ports.BlobStore
	nav    ports.Navigator
	clock  ports.Clock
	logger *slog.Logger

	mu      sync.RWMutex
	session domain.Session
}

var _ ports.SessionAccessor = (*SessionStore)(nil)

func NewSessionStore(blobs ports.BlobStore, nav ports.Navigator, clock ports.Clock, logger *slog.Logger) *SessionStore {
	if clock == nil {
		clock = ports.SystemClock{}
	}

	return &SessionStore{
		blobs:  blobs,
		nav:    nav,
		clock:  clock,
		logger: logging.OrDiscard(logger),
	}
}

// Restore seeds the session from the blob store. A missing token leaves the
// store anonymous; an unreadable expiry is kept as already expired so the next
// CheckAuth tears it down.
func (s *SessionStore) Restore(ctx context.Context) error {
	token, err := s.blobs.Get(ctx, TokenBlobKey)
	if err != nil {
		if errors.Is(err, domain.ErrBlobNotFound) {
			return nil
		}
		return fmt.Errorf("read session token: %w", err)
	}

	var expiry time.Time
	rawExpiry, err := s.blobs.Get(ctx, ExpiryBlobKey)
	switch {
	case err == nil:
		parsed, parseErr := time.Parse(time.RFC3339Nano, rawExpiry)
		if parseErr != nil {
			s.logger.Warn("stored token expiry is unreadable", "error", parseErr)
		} else {
			expiry = parsed
		}
	case errors.Is(err, domain.ErrBlobNotFound):
		s.logger.Warn("stored token has no expiry")
	default:
		return fmt.Errorf("read session token expiry: %w", err)
	}

	s.mu.Lock()
	s.session = domain.Session{Token: token, TokenExpiry: expiry}
	s.mu.Unlock()

	return nil
}

func (s *SessionStore) Session() domain.Session {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.session
}

// IsLoggedIn is evaluated against the clock on every call.
func (s *SessionStore) IsLoggedIn() bool {
	return s.Session().Valid(s.clock.Now())
}

func (s *SessionStore) State() domain.SessionState {
	return s.Session().State(s.clock.Now())
}

// AccessToken returns the bearer token while it has not expired.
func (s *SessionStore) AccessToken() string {
	session := s.Session()
	if !session.HasToken() || session.ExpiredAt(s.clock.Now()) {
		return ""
	}
	return session.Token
}

// Establish replaces the session wholesale and persists token and expiry. A
// persistence failure keeps the in-memory session.
func (s *SessionStore) Establish(ctx context.Context, session domain.Session) {
	s.mu.Lock()
	s.session = session
	s.mu.Unlock()

	if err := s.persist(ctx, session); err != nil {
		s.logger.Warn("persist session failed; session kept in memory only", "error", err)
	}
}

// attachUser fills in the identity of a restored session. It is ignored when
// the token changed in the meantime.
func (s *SessionStore) attachUser(token string, user domain.User) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.session.Token != token || !s.session.HasToken() {
		return false
	}
	s.session.UserID = user.ID
	if user.Email != "" {
		s.session.Email = user.Email
	}
	return true
}

// Logout clears the session and its persisted copy. It is safe to call when
// already logged out; navigation is only signalled when a session existed.
func (s *SessionStore) Logout(ctx context.Context, reason domain.SessionEndReason) error {
	s.mu.Lock()
	hadSession := s.session.HasToken() || s.session.HasUser()
	s.session = domain.Session{}
	s.mu.Unlock()

	var errs []error
	for _, key := range []string{TokenBlobKey, ExpiryBlobKey} {
		if err := s.blobs.Delete(ctx, key); err != nil && !errors.Is(err, domain.ErrBlobNotFound) {
			errs = append(errs, fmt.Errorf("delete %s: %w", key, err))
		}
	}

	if hadSession {
		s.logger.Info("session ended", "reason", reason)
		if s.nav != nil {
			s.nav.RedirectToLogin(ctx, reason)
		}
	}

	return errors.Join(errs...)
}

// HandleUnauthorized tears the session down after the server rejected its token.
func (s *SessionStore) HandleUnauthorized(ctx context.Context) {
	if err := s.Logout(ctx, domain.EndRejected); err != nil {
		s.logger.Warn("clear rejected session", "error", err)
	}
}

func (s *SessionStore) persist(ctx context.Context, session domain.Session) error {
	if err := s.blobs.Put(ctx, TokenBlobKey, session.Token); err != nil {
		return fmt.Errorf("store session token: %w", err)
	}
	if err := s.blobs.Put(ctx, ExpiryBlobKey, session.TokenExpiry.UTC().Format(time.RFC3339Nano)); err != nil {
		return fmt.Errorf("store session token expiry: %w", err)
	}
	return nil
}
