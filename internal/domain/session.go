package domain

import (
	"strings"
	"time"
)

// DefaultTokenTTL applies when the server omits expires_in.
const DefaultTokenTTL = 24 * time.Hour

type UserID string

type Session struct {
	UserID      UserID
	Email       string
	Token       string
	TokenExpiry time.Time
}

type SessionState string

const (
	SessionAnonymous     SessionState = "anonymous"
	SessionAuthenticated SessionState = "authenticated"
	SessionExpired       SessionState = "expired"
	// SessionRestored holds a live token whose identity has not been fetched yet.
	SessionRestored SessionState = "restored"
)

// SessionEndReason says why a session was torn down.
type SessionEndReason string

const (
	EndLoggedOut SessionEndReason = "logged-out"
	EndExpired   SessionEndReason = "expired"
	EndRejected  SessionEndReason = "rejected"
)

func (s Session) HasToken() bool {
	return strings.TrimSpace(s.Token) != ""
}

func (s Session) HasUser() bool {
	return strings.TrimSpace(string(s.UserID)) != ""
}

func (s Session) ExpiredAt(now time.Time) bool {
	return !s.TokenExpiry.After(now)
}

// Valid is the logged-in predicate. It must be evaluated against the current
// time on every call.
func (s Session) Valid(now time.Time) bool {
	return s.HasToken() && s.HasUser() && !s.ExpiredAt(now)
}

func (s Session) State(now time.Time) SessionState {
	switch {
	case !s.HasToken():
		return SessionAnonymous
	case s.ExpiredAt(now):
		return SessionExpired
	case !s.HasUser():
		return SessionRestored
	default:
		return SessionAuthenticated
	}
}

// ExpiryFrom computes the token expiry for a grant issued at issuedAt.
func ExpiryFrom(issuedAt time.Time, expiresIn time.Duration) time.Time {
	if expiresIn <= 0 {
		expiresIn = DefaultTokenTTL
	}

	return issuedAt.Add(expiresIn)
}

type User struct {
	ID        UserID
	Email     string
	CreatedAt time.Time
}

// AuthGrant is what login and register hand back.
type AuthGrant struct {
	UserID    UserID
	Email     string
	Token     string
	ExpiresIn time.Duration
}
