// Package remotetest runs an in-memory password API for tests.
package remotetest

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

type ctxKey string

const userCtxKey ctxKey = "user"

type user struct {
	id        string
	email     string
	password  string
	createdAt time.Time
}

type storedRecord struct {
	id      string
	ownerID string
	domain  string
	fields  map[string]any
	created time.Time
	updated time.Time
}

type storedBinding struct {
	id          string
	accountA    string
	accountB    string
	status      string
	permissions string
	created     time.Time
	updated     time.Time
}

// Recorded is one request the server saw.
type Recorded struct {
	Method        string
	Path          string
	Authorization string
	RequestID     string
}

type Server struct {
	*httptest.Server

	mu        sync.Mutex
	secret    []byte
	users     map[string]*user
	byEmail   map[string]*user
	records   []*storedRecord
	bindings  []*storedBinding
	revoked   bool
	expiresIn int
	omitExp   bool
	failures  bool
	requests  []Recorded
}

// New starts a server that is closed when t finishes.
func New(t testing.TB) *Server {
	t.Helper()

	s := &Server{
		secret:    []byte("remotetest-" + uuid.NewString()),
		users:     map[string]*user{},
		byEmail:   map[string]*user{},
		expiresIn: 3600,
	}
	s.Server = httptest.NewServer(s.routes())
	t.Cleanup(s.Close)

	return s
}

func (s *Server) routes() http.Handler {
	mux := chi.NewRouter()
	mux.Use(s.record)

	mux.Post("/api/login", s.handleLogin)
	mux.Post("/api/register", s.handleRegister)

	mux.Group(func(pr chi.Router) {
		pr.Use(s.authMiddleware)
		pr.Get("/api/user", s.handleUser)

		pr.Get("/api/passwords", s.handleListPasswords)
		pr.Post("/api/passwords", s.handleCreatePassword)
		pr.Post("/api/passwords/sync", s.handleSyncPasswords)
		pr.Get("/api/passwords/shared", s.handleListShared)
		pr.Post("/api/passwords/shared/sync", s.handleSyncShared)
		pr.Put("/api/passwords/shared/{id}", s.handleUpdateShared)
		pr.Put("/api/passwords/{id}", s.handleUpdatePassword)
		pr.Delete("/api/passwords/{id}", s.handleDeletePassword)
		pr.Post("/api/batch_delete", s.handleBatchDelete)
		pr.Post("/api/txt_import", s.handleTextImport)
		pr.Post("/api/csv_import", s.handleCSVImport)

		pr.Get("/api/accounts/bindings", s.handleListBindings)
		pr.Post("/api/accounts/bind", s.handleBind)
		pr.Post("/api/accounts/bindings/{id}/accept", s.handleAcceptBinding)
		pr.Post("/api/accounts/bindings/{id}/reject", s.handleRejectBinding)
		pr.Delete("/api/accounts/bindings/{id}", s.handleUnbind)
		pr.Put("/api/accounts/bindings/{id}/permissions", s.handleBindingPermissions)
	})

	return mux
}

// AddUser registers an account and returns its id.
func (s *Server) AddUser(email, password string) string {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.addUserLocked(email, password).id
}

// TokenFor issues a valid token for an existing account.
func (s *Server) TokenFor(email string) string {
	s.mu.Lock()
	defer s.mu.Unlock()

	u, ok := s.byEmail[strings.ToLower(email)]
	if !ok {
		return ""
	}
	token, _ := s.issueToken(u.id)
	return token
}

// SeedCredential stores a record owned by email and returns its id.
func (s *Server) SeedCredential(ownerEmail, domain string, fields map[string]any) string {
	s.mu.Lock()
	defer s.mu.Unlock()

	owner := s.byEmail[strings.ToLower(ownerEmail)]
	if owner == nil {
		return ""
	}
	return s.createRecordLocked(owner.id, domain, fields).id
}

// SeedBinding links two accounts directly and returns the binding id.
func (s *Server) SeedBinding(requesterEmail, targetEmail, status, permissions string) string {
	s.mu.Lock()
	defer s.mu.Unlock()

	a := s.byEmail[strings.ToLower(requesterEmail)]
	b := s.byEmail[strings.ToLower(targetEmail)]
	if a == nil || b == nil {
		return ""
	}
	now := time.Now().UTC()
	binding := &storedBinding{id: uuid.NewString(), accountA: a.id, accountB: b.id, status: status, permissions: permissions, created: now, updated: now}
	s.bindings = append(s.bindings, binding)
	return binding.id
}

// SetExpiresIn controls the expires_in field of login and register. A
// negative value omits the field.
func (s *Server) SetExpiresIn(seconds int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.omitExp = seconds < 0
	s.expiresIn = seconds
}

// RevokeTokens makes every authenticated request fail with 401.
func (s *Server) RevokeTokens() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.revoked = true
}

// UseStructuredFailures adds a failures array to batch delete responses.
func (s *Server) UseStructuredFailures() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.failures = true
}

func (s *Server) Requests() []Recorded {
	s.mu.Lock()
	defer s.mu.Unlock()

	return append([]Recorded(nil), s.requests...)
}

// CredentialIDs lists the ids owned by email in insertion order.
func (s *Server) CredentialIDs(email string) []string {
	s.mu.Lock()
	defer s.mu.Unlock()

	owner := s.byEmail[strings.ToLower(email)]
	if owner == nil {
		return nil
	}
	var ids []string
	for _, r := range s.records {
		if r.ownerID == owner.id {
			ids = append(ids, r.id)
		}
	}
	return ids
}

func (s *Server) record(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s.mu.Lock()
		s.requests = append(s.requests, Recorded{
			Method:        r.Method,
			Path:          r.URL.Path,
			Authorization: r.Header.Get("Authorization"),
			RequestID:     r.Header.Get("X-Request-ID"),
		})
		s.mu.Unlock()
		next.ServeHTTP(w, r)
	})
}

func (s *Server) authMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		raw, ok := strings.CutPrefix(r.Header.Get("Authorization"), "Bearer ")
		if !ok || raw == "" {
			writeMessage(w, http.StatusUnauthorized, "missing token")
			return
		}

		s.mu.Lock()
		revoked := s.revoked
		s.mu.Unlock()
		if revoked {
			writeMessage(w, http.StatusUnauthorized, "token revoked")
			return
		}

		userID, err := s.parseToken(raw)
		if err != nil {
			writeMessage(w, http.StatusUnauthorized, "invalid token")
			return
		}

		s.mu.Lock()
		_, known := s.users[userID]
		s.mu.Unlock()
		if !known {
			writeMessage(w, http.StatusUnauthorized, "unknown user")
			return
		}

		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), userCtxKey, userID)))
	})
}

func (s *Server) issueToken(userID string) (string, error) {
	ttl := time.Duration(s.expiresIn) * time.Second
	if s.omitExp || ttl <= 0 {
		ttl = 24 * time.Hour
	}
	claims := jwt.MapClaims{
		"sub": userID,
		"exp": time.Now().Add(ttl).Unix(),
	}
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString(s.secret)
}

func (s *Server) parseToken(token string) (string, error) {
	parsed, err := jwt.Parse(token, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return s.secret, nil
	})
	if err != nil || !parsed.Valid {
		return "", errors.New("invalid token")
	}
	claims, ok := parsed.Claims.(jwt.MapClaims)
	if !ok {
		return "", errors.New("invalid token claims")
	}
	sub, _ := claims["sub"].(string)
	if sub == "" {
		return "", errors.New("invalid token subject")
	}
	return sub, nil
}

func (s *Server) addUserLocked(email, password string) *user {
	u := &user{id: uuid.NewString(), email: strings.ToLower(email), password: password, createdAt: time.Now().UTC()}
	s.users[u.id] = u
	s.byEmail[u.email] = u
	return u
}

func (s *Server) createRecordLocked(ownerID, domain string, fields map[string]any) *storedRecord {
	now := time.Now().UTC()
	copied := make(map[string]any, len(fields))
	for k, v := range fields {
		switch k {
		case "id", "user_id", "domain", "created_at", "updated_at":
			continue
		}
		copied[k] = v
	}
	rec := &storedRecord{id: uuid.NewString(), ownerID: ownerID, domain: domain, fields: copied, created: now, updated: now}
	s.records = append(s.records, rec)
	return rec
}

func (s *Server) findRecordLocked(id string) *storedRecord {
	for _, r := range s.records {
		if r.id == id {
			return r
		}
	}
	return nil
}

func (s *Server) deleteRecordLocked(id string) {
	kept := s.records[:0]
	for _, r := range s.records {
		if r.id != id {
			kept = append(kept, r)
		}
	}
	s.records = kept
}

func (r *storedRecord) wire() map[string]any {
	out := make(map[string]any, len(r.fields)+5)
	for k, v := range r.fields {
		out[k] = v
	}
	out["id"] = r.id
	out["user_id"] = r.ownerID
	out["domain"] = r.domain
	out["created_at"] = r.created.Format(time.RFC3339)
	out["updated_at"] = r.updated.Format(time.RFC3339)
	return out
}

func currentUser(r *http.Request) string {
	id, _ := r.Context().Value(userCtxKey).(string)
	return id
}

func decodeBody(r *http.Request, v any) error {
	return json.NewDecoder(http.MaxBytesReader(nil, r.Body, 1<<20)).Decode(v)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeMessage(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"message": message})
}
