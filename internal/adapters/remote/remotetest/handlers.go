package remotetest

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := decodeBody(r, &req); err != nil {
		writeMessage(w, http.StatusBadRequest, "invalid request body")
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	u, ok := s.byEmail[strings.ToLower(req.Email)]
	if !ok || u.password != req.Password {
		writeMessage(w, http.StatusUnauthorized, "invalid email or password")
		return
	}

	token, err := s.issueToken(u.id)
	if err != nil {
		writeMessage(w, http.StatusInternalServerError, "issue token failed")
		return
	}

	resp := map[string]any{"token": token, "user_id": u.id, "email": u.email}
	if !s.omitExp {
		resp["expires_in"] = s.expiresIn
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleRegister(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := decodeBody(r, &req); err != nil || req.Email == "" || req.Password == "" {
		writeMessage(w, http.StatusBadRequest, "email and password are required")
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.byEmail[strings.ToLower(req.Email)]; exists {
		writeMessage(w, http.StatusConflict, "email already registered")
		return
	}

	u := s.addUserLocked(req.Email, req.Password)
	token, err := s.issueToken(u.id)
	if err != nil {
		writeMessage(w, http.StatusInternalServerError, "issue token failed")
		return
	}

	resp := map[string]any{"token": token, "user_id": u.id}
	if !s.omitExp {
		resp["expires_in"] = s.expiresIn
	}
	writeJSON(w, http.StatusCreated, resp)
}

func (s *Server) handleUser(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()

	u := s.users[currentUser(r)]
	writeJSON(w, http.StatusOK, map[string]any{
		"id":         u.id,
		"email":      u.email,
		"created_at": u.createdAt.Format(time.RFC3339),
	})
}

func (s *Server) handleListPasswords(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()

	writeJSON(w, http.StatusOK, map[string]any{"passwords": s.ownedLocked(currentUser(r))})
}

func (s *Server) handleCreatePassword(w http.ResponseWriter, r *http.Request) {
	var body map[string]any
	if err := decodeBody(r, &body); err != nil {
		writeMessage(w, http.StatusBadRequest, "invalid request body")
		return
	}
	domain, _ := body["domain"].(string)
	if strings.TrimSpace(domain) == "" {
		writeMessage(w, http.StatusBadRequest, "domain is required")
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	rec := s.createRecordLocked(currentUser(r), domain, body)
	writeJSON(w, http.StatusCreated, map[string]any{"message": "created", "password": rec.wire()})
}

func (s *Server) handleUpdatePassword(w http.ResponseWriter, r *http.Request) {
	var patch map[string]any
	if err := decodeBody(r, &patch); err != nil {
		writeMessage(w, http.StatusBadRequest, "invalid request body")
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	rec := s.findRecordLocked(chi.URLParam(r, "id"))
	if rec == nil || rec.ownerID != currentUser(r) {
		writeMessage(w, http.StatusNotFound, "record not found")
		return
	}
	applyPatch(rec, patch)

	writeJSON(w, http.StatusOK, rec.wire())
}

func (s *Server) handleDeletePassword(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := chi.URLParam(r, "id")
	rec := s.findRecordLocked(id)
	if rec == nil || rec.ownerID != currentUser(r) {
		writeMessage(w, http.StatusNotFound, "record not found")
		return
	}
	s.deleteRecordLocked(id)

	writeMessage(w, http.StatusOK, "deleted")
}

func (s *Server) handleBatchDelete(w http.ResponseWriter, r *http.Request) {
	var req struct {
		PasswordIDs []string `json:"password_ids"`
	}
	if err := decodeBody(r, &req); err != nil || len(req.PasswordIDs) == 0 {
		writeMessage(w, http.StatusBadRequest, "password_ids must be a non-empty list")
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	userID := currentUser(r)
	deleted := 0
	details := []string{}
	failures := []map[string]string{}
	for _, id := range req.PasswordIDs {
		rec := s.findRecordLocked(id)
		switch {
		case rec == nil:
			details = append(details, "record not found: "+id)
			failures = append(failures, map[string]string{"id": id, "reason": "not_found"})
		case rec.ownerID != userID:
			details = append(details, "not authorized to delete: "+id)
			failures = append(failures, map[string]string{"id": id, "reason": "not_authorized"})
		default:
			s.deleteRecordLocked(id)
			deleted++
		}
	}

	resp := map[string]any{
		"deletedCount":  deleted,
		"failedCount":   len(details),
		"failedDetails": details,
	}
	if s.failures {
		resp["failures"] = failures
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleSyncPasswords(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Passwords []map[string]any `json:"passwords"`
	}
	if err := decodeBody(r, &req); err != nil {
		writeMessage(w, http.StatusBadRequest, "invalid request body")
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	userID := currentUser(r)
	for _, incoming := range req.Passwords {
		id, _ := incoming["id"].(string)
		if rec := s.findRecordLocked(id); rec != nil {
			if rec.ownerID == userID {
				applyPatch(rec, incoming)
			}
			continue
		}
		domain, _ := incoming["domain"].(string)
		if strings.TrimSpace(domain) == "" {
			continue
		}
		s.createRecordLocked(userID, domain, incoming)
	}

	writeJSON(w, http.StatusOK, map[string]any{"message": "synced", "serverPasswords": s.ownedLocked(userID)})
}

func (s *Server) handleListShared(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()

	writeJSON(w, http.StatusOK, map[string]any{"sharedPasswords": s.sharedLocked(currentUser(r))})
}

func (s *Server) handleSyncShared(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()

	writeJSON(w, http.StatusOK, map[string]any{"message": "synced", "sharedPasswords": s.sharedLocked(currentUser(r))})
}

func (s *Server) handleUpdateShared(w http.ResponseWriter, r *http.Request) {
	var patch map[string]any
	if err := decodeBody(r, &patch); err != nil {
		writeMessage(w, http.StatusBadRequest, "invalid request body")
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	userID := currentUser(r)
	rec := s.findRecordLocked(chi.URLParam(r, "id"))
	if rec == nil {
		writeMessage(w, http.StatusNotFound, "record not found")
		return
	}
	binding := s.activeBindingLocked(userID, rec.ownerID)
	if binding == nil {
		writeMessage(w, http.StatusNotFound, "record not found")
		return
	}
	if binding.permissions != "write" {
		writeMessage(w, http.StatusForbidden, "write permission required")
		return
	}
	applyPatch(rec, patch)

	writeJSON(w, http.StatusOK, map[string]any{"password": rec.wire()})
}

func (s *Server) handleTextImport(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Passwords   []map[string]any `json:"passwords"`
		ForceImport bool             `json:"forceImport"`
	}
	if err := decodeBody(r, &req); err != nil || len(req.Passwords) == 0 {
		writeMessage(w, http.StatusBadRequest, "passwords must be a non-empty list")
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	writeJSON(w, http.StatusOK, s.importLocked(currentUser(r), req.Passwords, req.ForceImport))
}

func (s *Server) handleCSVImport(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(8 << 20); err != nil {
		writeMessage(w, http.StatusBadRequest, "file not found")
		return
	}
	file, header, err := r.FormFile("file")
	if err != nil {
		writeMessage(w, http.StatusBadRequest, "file not found")
		return
	}
	defer func() { _ = file.Close() }()
	if !strings.HasSuffix(strings.ToLower(header.Filename), ".csv") {
		writeMessage(w, http.StatusBadRequest, "unsupported file type, upload a CSV file")
		return
	}
	force := strings.EqualFold(r.FormValue("forceImport"), "true")

	rows, err := readCSV(file)
	if err != nil {
		writeMessage(w, http.StatusBadRequest, err.Error())
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	writeJSON(w, http.StatusOK, s.importLocked(currentUser(r), rows, force))
}

func (s *Server) handleListBindings(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()

	userID := currentUser(r)
	active := []map[string]any{}
	pending := []map[string]any{}
	for _, b := range s.bindings {
		switch {
		case b.status == "active" && (b.accountA == userID || b.accountB == userID):
			active = append(active, s.bindingWireLocked(b, userID))
		case b.status == "pending" && (b.accountA == userID || b.accountB == userID):
			pending = append(pending, s.bindingWireLocked(b, userID))
		}
	}

	writeJSON(w, http.StatusOK, map[string]any{"bindings": active, "pendingRequests": pending})
}

func (s *Server) handleBind(w http.ResponseWriter, r *http.Request) {
	var req struct {
		TargetEmail string `json:"targetEmail"`
	}
	if err := decodeBody(r, &req); err != nil || strings.TrimSpace(req.TargetEmail) == "" {
		writeMessage(w, http.StatusBadRequest, "missing required fields")
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	userID := currentUser(r)
	target, ok := s.byEmail[strings.ToLower(req.TargetEmail)]
	if !ok {
		writeMessage(w, http.StatusNotFound, "target account does not exist")
		return
	}
	if target.id == userID {
		writeMessage(w, http.StatusBadRequest, "cannot bind your own account")
		return
	}
	for _, b := range s.bindings {
		if (b.accountA == userID && b.accountB == target.id) || (b.accountA == target.id && b.accountB == userID) {
			writeMessage(w, http.StatusConflict, "binding already exists")
			return
		}
	}

	now := time.Now().UTC()
	binding := &storedBinding{id: uuid.NewString(), accountA: userID, accountB: target.id, status: "pending", permissions: "read", created: now, updated: now}
	s.bindings = append(s.bindings, binding)

	writeJSON(w, http.StatusCreated, map[string]any{"message": "binding request sent", "binding_id": binding.id})
}

func (s *Server) handleAcceptBinding(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()

	b := s.findBindingLocked(chi.URLParam(r, "id"))
	if b == nil || b.status != "pending" || b.accountB != currentUser(r) {
		writeMessage(w, http.StatusNotFound, "binding request not found")
		return
	}
	b.status = "active"
	b.updated = time.Now().UTC()

	writeMessage(w, http.StatusOK, "binding request accepted")
}

func (s *Server) handleRejectBinding(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := chi.URLParam(r, "id")
	b := s.findBindingLocked(id)
	if b == nil || b.status != "pending" || b.accountB != currentUser(r) {
		writeMessage(w, http.StatusNotFound, "binding request not found")
		return
	}
	s.deleteBindingLocked(id)

	writeMessage(w, http.StatusOK, "binding request rejected")
}

func (s *Server) handleUnbind(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := chi.URLParam(r, "id")
	userID := currentUser(r)
	b := s.findBindingLocked(id)
	if b == nil || b.status != "active" || (b.accountA != userID && b.accountB != userID) {
		writeMessage(w, http.StatusNotFound, "binding not found")
		return
	}
	s.deleteBindingLocked(id)

	writeMessage(w, http.StatusOK, "binding removed")
}

func (s *Server) handleBindingPermissions(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Permissions string `json:"permissions"`
	}
	if err := decodeBody(r, &req); err != nil || req.Permissions == "" {
		writeMessage(w, http.StatusBadRequest, "missing required fields")
		return
	}
	if req.Permissions != "read" && req.Permissions != "write" {
		writeMessage(w, http.StatusBadRequest, "invalid permission value")
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	userID := currentUser(r)
	b := s.findBindingLocked(chi.URLParam(r, "id"))
	if b == nil || b.status != "active" || (b.accountA != userID && b.accountB != userID) {
		writeMessage(w, http.StatusNotFound, "binding not found")
		return
	}
	b.permissions = req.Permissions
	b.updated = time.Now().UTC()

	writeMessage(w, http.StatusOK, "binding permissions updated")
}

func (s *Server) ownedLocked(userID string) []map[string]any {
	out := []map[string]any{}
	for _, rec := range s.records {
		if rec.ownerID == userID {
			out = append(out, rec.wire())
		}
	}
	return out
}

func (s *Server) sharedLocked(userID string) []map[string]any {
	out := []map[string]any{}
	for _, rec := range s.records {
		if rec.ownerID == userID {
			continue
		}
		if s.activeBindingLocked(userID, rec.ownerID) != nil {
			out = append(out, rec.wire())
		}
	}
	return out
}

func (s *Server) activeBindingLocked(a, b string) *storedBinding {
	for _, binding := range s.bindings {
		if binding.status != "active" {
			continue
		}
		if (binding.accountA == a && binding.accountB == b) || (binding.accountA == b && binding.accountB == a) {
			return binding
		}
	}
	return nil
}

func (s *Server) findBindingLocked(id string) *storedBinding {
	for _, b := range s.bindings {
		if b.id == id {
			return b
		}
	}
	return nil
}

func (s *Server) deleteBindingLocked(id string) {
	kept := s.bindings[:0]
	for _, b := range s.bindings {
		if b.id != id {
			kept = append(kept, b)
		}
	}
	s.bindings = kept
}

func (s *Server) bindingWireLocked(b *storedBinding, viewer string) map[string]any {
	out := map[string]any{
		"id":             b.id,
		"account_a_id":   b.accountA,
		"account_b_id":   b.accountB,
		"binding_status": b.status,
		"permissions":    b.permissions,
		"created_at":     b.created.Format(time.RFC3339),
		"updated_at":     b.updated.Format(time.RFC3339),
	}
	if b.accountA == viewer {
		out["direction"] = "outbound"
		out["bound_account_email"] = s.users[b.accountB].email
	} else {
		out["direction"] = "inbound"
		out["requester_email"] = s.users[b.accountA].email
	}
	return out
}

func (s *Server) importLocked(userID string, rows []map[string]any, force bool) map[string]any {
	imported := []map[string]any{}
	skipped := []string{}
	errs := []string{}
	for i, row := range rows {
		domain, _ := row["domain"].(string)
		if strings.TrimSpace(domain) == "" {
			errs = append(errs, fmt.Sprintf("row %d: domain is required", i+1))
			continue
		}
		if !force && s.duplicateLocked(userID, domain, row) {
			skipped = append(skipped, fmt.Sprintf("duplicate record for %s", domain))
			continue
		}
		imported = append(imported, s.createRecordLocked(userID, domain, row).wire())
	}

	return map[string]any{
		"importedPasswords": imported,
		"importedCount":     len(imported),
		"skippedCount":      len(skipped),
		"skippedDetails":    skipped,
		"errors":            errs,
	}
}

func (s *Server) duplicateLocked(userID, domain string, row map[string]any) bool {
	username := fmt.Sprint(row["encrypted_username"])
	for _, rec := range s.records {
		if rec.ownerID == userID && rec.domain == domain && fmt.Sprint(rec.fields["encrypted_username"]) == username {
			return true
		}
	}
	return false
}

func applyPatch(rec *storedRecord, patch map[string]any) {
	for k, v := range patch {
		switch k {
		case "id", "user_id", "created_at", "updated_at":
			continue
		case "domain":
			if domain, ok := v.(string); ok && domain != "" {
				rec.domain = domain
			}
		default:
			rec.fields[k] = v
		}
	}
	rec.updated = time.Now().UTC()
}

func readCSV(r io.Reader) ([]map[string]any, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, errors.New("csv file is empty")
		}
		return nil, fmt.Errorf("read csv header: %w", err)
	}

	var rows []map[string]any
	for {
		line, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read csv row: %w", err)
		}
		row := make(map[string]any, len(header))
		for i, name := range header {
			if i < len(line) {
				row[strings.TrimSpace(name)] = line[i]
			}
		}
		rows = append(rows, row)
	}
	if len(rows) == 0 {
		return nil, errors.New("csv file has no records")
	}
	return rows, nil
}
