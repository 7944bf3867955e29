package remote

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/bnema/pwsync/internal/domain"
)

// flexString accepts ids sent either as JSON strings or numbers.
type flexString string

func (f *flexString) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	if bytes.Equal(trimmed, []byte("null")) {
		*f = ""
		return nil
	}
	if len(trimmed) > 0 && trimmed[0] == '"' {
		var s string
		if err := json.Unmarshal(trimmed, &s); err != nil {
			return err
		}
		*f = flexString(s)
		return nil
	}

	var n json.Number
	if err := json.Unmarshal(trimmed, &n); err != nil {
		return fmt.Errorf("id must be a string or number: %w", err)
	}
	*f = flexString(n.String())
	return nil
}

type credentialsRequest struct {
	Email    string         `json:"email"`
	Password string         `json:"password"`
	Profile  map[string]any `json:"-"`
}

func (r credentialsRequest) MarshalJSON() ([]byte, error) {
	payload := make(map[string]any, len(r.Profile)+2)
	for k, v := range r.Profile {
		payload[k] = v
	}
	payload["email"] = r.Email
	payload["password"] = r.Password
	return json.Marshal(payload)
}

type authResponse struct {
	Token     string       `json:"token"`
	UserID    flexString   `json:"user_id"`
	Email     string       `json:"email"`
	ExpiresIn *json.Number `json:"expires_in"`
}

func (r authResponse) grant() (domain.AuthGrant, error) {
	grant := domain.AuthGrant{
		UserID: domain.UserID(r.UserID),
		Email:  r.Email,
		Token:  r.Token,
	}
	if r.ExpiresIn != nil {
		seconds, err := r.ExpiresIn.Float64()
		if err != nil {
			return domain.AuthGrant{}, fmt.Errorf("parse expires_in: %w", err)
		}
		grant.ExpiresIn = time.Duration(seconds * float64(time.Second))
	}

	return grant, nil
}

type userResponse struct {
	ID        flexString    `json:"id"`
	Email     string        `json:"email"`
	CreatedAt string        `json:"created_at"`
	User      *userResponse `json:"user"`
}

func (r userResponse) toDomain() domain.User {
	if r.User != nil && r.ID == "" {
		return r.User.toDomain()
	}

	return domain.User{ID: domain.UserID(r.ID), Email: r.Email, CreatedAt: parseTime(r.CreatedAt)}
}

type record = map[string]any

const (
	wireID     = "id"
	wireDomain = "domain"
	wireOwner  = "user_id"
	wireShared = "shared"
)

func credentialFromWire(raw record, shared bool) domain.Credential {
	fields := make(map[string]any, len(raw))
	for k, v := range raw {
		switch k {
		case wireID, wireDomain, wireOwner, wireShared:
			continue
		}
		fields[k] = normalizeValue(v)
	}

	return domain.Credential{
		ID:      domain.CredentialID(stringify(raw[wireID])),
		Domain:  stringify(raw[wireDomain]),
		OwnerID: domain.UserID(stringify(raw[wireOwner])),
		Fields:  fields,
		Shared:  shared,
	}
}

func credentialsFromWire(raw []record, shared bool) []domain.Credential {
	out := make([]domain.Credential, 0, len(raw))
	for _, r := range raw {
		out = append(out, credentialFromWire(r, shared))
	}
	return out
}

func credentialToWire(c domain.Credential) record {
	out := make(record, len(c.Fields)+3)
	for k, v := range c.Fields {
		out[k] = v
	}
	if c.ID != "" {
		out[wireID] = string(c.ID)
	}
	out[wireDomain] = c.Domain
	if c.OwnerID != "" {
		out[wireOwner] = string(c.OwnerID)
	}
	return out
}

func credentialsToWire(in []domain.Credential) []record {
	out := make([]record, 0, len(in))
	for _, c := range in {
		out = append(out, credentialToWire(c))
	}
	return out
}

func draftToWire(d domain.CredentialDraft) record {
	out := make(record, len(d.Fields)+1)
	for k, v := range d.Fields {
		out[k] = v
	}
	out[wireDomain] = d.Domain
	return out
}

// unwrapRecord accepts either {"password": {...}} or a bare record body.
func unwrapRecord(body record) (record, error) {
	if nested, ok := body["password"].(map[string]any); ok {
		return nested, nil
	}
	if _, ok := body[wireID]; ok {
		return body, nil
	}
	return nil, fmt.Errorf("response carries no record")
}

type listResponse struct {
	Passwords       []record `json:"passwords"`
	SharedPasswords []record `json:"sharedPasswords"`
}

type syncResponse struct {
	ServerPasswords *[]record `json:"serverPasswords"`
	SharedPasswords *[]record `json:"sharedPasswords"`
}

type batchDeleteRequest struct {
	PasswordIDs []domain.CredentialID `json:"password_ids"`
}

type itemFailureWire struct {
	ID     flexString `json:"id"`
	Reason string     `json:"reason"`
	Detail string     `json:"detail,omitempty"`
}

type batchDeleteResponse struct {
	DeletedCount  int               `json:"deletedCount"`
	FailedCount   int               `json:"failedCount"`
	FailedDetails []string          `json:"failedDetails"`
	Failures      []itemFailureWire `json:"failures"`
}

func (r batchDeleteResponse) toDomain(requested []domain.CredentialID) domain.BatchDeleteOutcome {
	outcome := domain.BatchDeleteOutcome{
		Requested:     append([]domain.CredentialID(nil), requested...),
		DeletedCount:  r.DeletedCount,
		FailedCount:   r.FailedCount,
		FailedDetails: append([]string(nil), r.FailedDetails...),
	}
	for _, f := range r.Failures {
		reason := domain.FailureReason(f.Reason)
		if !reason.Valid() {
			reason = domain.FailureDeleteFailed
		}
		outcome.Failures = append(outcome.Failures, domain.ItemFailure{
			ID:     domain.CredentialID(f.ID),
			Reason: reason,
			Detail: f.Detail,
		})
	}
	return outcome
}

type importTextRequest struct {
	Passwords   []record `json:"passwords"`
	ForceImport bool     `json:"forceImport"`
}

type importResponse struct {
	ImportedPasswords []record `json:"importedPasswords"`
	ImportedCount     int      `json:"importedCount"`
	SkippedCount      int      `json:"skippedCount"`
	SkippedDetails    []any    `json:"skippedDetails"`
	Errors            []any    `json:"errors"`
}

func (r importResponse) toDomain() domain.ImportOutcome {
	return domain.ImportOutcome{
		Imported:       credentialsFromWire(r.ImportedPasswords, false),
		ImportedCount:  r.ImportedCount,
		SkippedCount:   r.SkippedCount,
		SkippedDetails: describeAll(r.SkippedDetails),
		Errors:         describeAll(r.Errors),
	}
}

type bindRequest struct {
	TargetEmail string `json:"targetEmail"`
}

type bindResponse struct {
	Message   string     `json:"message"`
	BindingID flexString `json:"binding_id"`
}

type permissionsRequest struct {
	Permissions domain.Permission `json:"permissions"`
}

type bindingWire struct {
	ID                flexString `json:"id"`
	AccountAID        flexString `json:"account_a_id"`
	AccountBID        flexString `json:"account_b_id"`
	Status            string     `json:"binding_status"`
	Permissions       string     `json:"permissions"`
	Direction         string     `json:"direction"`
	BoundAccountEmail string     `json:"bound_account_email"`
	RequesterEmail    string     `json:"requester_email"`
	CreatedAt         string     `json:"created_at"`
	UpdatedAt         string     `json:"updated_at"`
}

func (b bindingWire) toDomain(fromPendingList bool) domain.Binding {
	status := domain.BindingPending
	if strings.EqualFold(b.Status, string(domain.BindingActive)) {
		status = domain.BindingActive
	}

	direction := domain.BindingDirection(strings.ToLower(b.Direction))
	if direction != domain.DirectionInbound && direction != domain.DirectionOutbound {
		direction = domain.DirectionOutbound
		if fromPendingList || (b.BoundAccountEmail == "" && b.RequesterEmail != "") {
			direction = domain.DirectionInbound
		}
	}

	peer := b.BoundAccountEmail
	if peer == "" {
		peer = b.RequesterEmail
	}

	return domain.Binding{
		ID:          domain.BindingID(b.ID),
		RequesterID: domain.UserID(b.AccountAID),
		TargetID:    domain.UserID(b.AccountBID),
		Status:      status,
		Direction:   direction,
		Permissions: domain.Permission(strings.ToLower(b.Permissions)),
		PeerEmail:   peer,
		CreatedAt:   parseTime(b.CreatedAt),
		UpdatedAt:   parseTime(b.UpdatedAt),
	}
}

type bindingsResponse struct {
	Bindings        []bindingWire `json:"bindings"`
	PendingRequests []bindingWire `json:"pendingRequests"`
}

func (r bindingsResponse) toDomain() domain.BindingSet {
	set := domain.BindingSet{
		Active:  make([]domain.Binding, 0, len(r.Bindings)),
		Pending: make([]domain.Binding, 0, len(r.PendingRequests)),
	}
	for _, b := range r.Bindings {
		set.Active = append(set.Active, b.toDomain(false))
	}
	for _, b := range r.PendingRequests {
		set.Pending = append(set.Pending, b.toDomain(true))
	}
	return set
}

var timeLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999",
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
}

func parseTime(raw string) time.Time {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return time.Time{}
	}
	for _, layout := range timeLayouts {
		if parsed, err := time.Parse(layout, raw); err == nil {
			return parsed
		}
	}
	return time.Time{}
}

func stringify(v any) string {
	switch value := v.(type) {
	case nil:
		return ""
	case string:
		return value
	case json.Number:
		return value.String()
	default:
		return fmt.Sprint(value)
	}
}

// normalizeValue turns json.Number into int64 or float64 so callers never see
// decoder artefacts.
func normalizeValue(v any) any {
	switch value := v.(type) {
	case json.Number:
		if i, err := value.Int64(); err == nil {
			return i
		}
		if f, err := value.Float64(); err == nil {
			return f
		}
		return value.String()
	case map[string]any:
		out := make(map[string]any, len(value))
		for k, inner := range value {
			out[k] = normalizeValue(inner)
		}
		return out
	case []any:
		out := make([]any, len(value))
		for i, inner := range value {
			out[i] = normalizeValue(inner)
		}
		return out
	default:
		return v
	}
}

func describeAll(items []any) []string {
	if len(items) == 0 {
		return nil
	}
	out := make([]string, 0, len(items))
	for _, item := range items {
		switch v := item.(type) {
		case string:
			out = append(out, v)
		default:
			encoded, err := json.Marshal(normalizeValue(v))
			if err != nil {
				out = append(out, fmt.Sprint(v))
				continue
			}
			out = append(out, string(encoded))
		}
	}
	return out
}
