package application

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/bnema/pwsync/internal/domain"
	"github.com/bnema/pwsync/internal/logging"
	"github.com/bnema/pwsync/internal/ports"
	"golang.org/x/sync/singleflight"
)

// AuthService runs login, register and session validation against the
// remote API and records the outcome in a SessionStore.
type AuthService struct {
	opTracker

	api    ports.AuthAPI
	store  *SessionStore
	clock  ports.Clock
	logger *slog.Logger

	hydrate singleflight.Group
}

func NewAuthService(api ports.AuthAPI, store *SessionStore, clock ports.Clock, logger *slog.Logger) *AuthService {
	if clock == nil {
		clock = ports.SystemClock{}
	}

	return &AuthService{
		opTracker: opTracker{clock: clock},
		api:       api,
		store:     store,
		clock:     clock,
		logger:    logging.OrDiscard(logger),
	}
}

func (s *AuthService) Login(ctx context.Context, cmd LoginCommand) (domain.Session, error) {
	if err := validateCommand(cmd); err != nil {
		return domain.Session{}, err
	}

	done := s.begin()
	defer done()

	issuedAt := s.clock.Now()
	grant, err := s.api.Login(ctx, ports.LoginRequest{Email: strings.TrimSpace(cmd.Email), Password: cmd.Password})
	if err != nil {
		return domain.Session{}, s.finish("login", &domain.AuthenticationError{Err: err})
	}

	email := grant.Email
	if email == "" {
		email = strings.TrimSpace(cmd.Email)
	}

	return s.establish(ctx, grant, email, issuedAt), nil
}

// Register signs up and logs in. The session email comes from the request
// since the server does not echo it back.
func (s *AuthService) Register(ctx context.Context, cmd RegisterCommand) (domain.Session, error) {
	if err := validateCommand(cmd); err != nil {
		return domain.Session{}, err
	}

	done := s.begin()
	defer done()

	email := strings.TrimSpace(cmd.Email)
	issuedAt := s.clock.Now()
	grant, err := s.api.Register(ctx, ports.RegisterRequest{Email: email, Password: cmd.Password, Profile: cmd.Profile})
	if err != nil {
		return domain.Session{}, s.finish("register", &domain.AuthenticationError{Err: err})
	}

	return s.establish(ctx, grant, email, issuedAt), nil
}

func (s *AuthService) establish(ctx context.Context, grant domain.AuthGrant, email string, issuedAt time.Time) domain.Session {
	session := domain.Session{
		UserID:      grant.UserID,
		Email:       email,
		Token:       grant.Token,
		TokenExpiry: domain.ExpiryFrom(issuedAt, grant.ExpiresIn),
	}
	s.store.Establish(ctx, session)
	s.logger.Info("session established", "user_id", session.UserID, "expires_at", session.TokenExpiry)

	return session
}

// CheckAuth validates the session locally, fetching the user identity once
// when only a token was restored. It never returns an error: every failure
// ends the session and reports false.
func (s *AuthService) CheckAuth(ctx context.Context) bool {
	session := s.store.Session()

	switch session.State(s.clock.Now()) {
	case domain.SessionAnonymous:
		return false
	case domain.SessionExpired:
		s.endSession(ctx, domain.EndExpired)
		return false
	case domain.SessionAuthenticated:
		return true
	}

	done := s.begin()
	defer done()

	value, err, _ := s.hydrate.Do(session.Token, func() (any, error) {
		return s.api.FetchUser(ctx)
	})
	if err != nil {
		_ = s.finish("check auth", fmt.Errorf("fetch user: %w", err))
		s.logger.Warn("session identity could not be fetched", "error", err)
		s.endSession(ctx, domain.EndRejected)
		return false
	}

	user, ok := value.(domain.User)
	if !ok || !s.store.attachUser(session.Token, user) {
		return false
	}

	return s.store.IsLoggedIn()
}

func (s *AuthService) Logout(ctx context.Context) error {
	if err := s.store.Logout(ctx, domain.EndLoggedOut); err != nil {
		return fmt.Errorf("logout: %w", err)
	}
	return nil
}

func (s *AuthService) endSession(ctx context.Context, reason domain.SessionEndReason) {
	if err := s.store.Logout(ctx, reason); err != nil {
		s.logger.Warn("clear session", "reason", reason, "error", err)
	}
}
