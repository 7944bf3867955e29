package domain

import (
	"fmt"
	"sort"
	"strings"
)

type CredentialID string

// Credential is a stored password record. Fields carries every attribute the
// server returns beyond the identifying ones.
type Credential struct {
	ID      CredentialID
	Domain  string
	OwnerID UserID
	Fields  map[string]any
	Shared  bool
}

const (
	FieldWebsiteURL = "website_url"
	FieldUsername   = "encrypted_username"
	FieldPassword   = "encrypted_password"
	FieldNotes      = "notes"
	FieldCreatedAt  = "created_at"
	FieldUpdatedAt  = "updated_at"
)

func (c Credential) Field(key string) string {
	value, ok := c.Fields[key]
	if !ok || value == nil {
		return ""
	}

	switch v := value.(type) {
	case string:
		return v
	default:
		return fmt.Sprint(v)
	}
}

// CredentialDraft is the input of add and import. It becomes a Credential only
// once the server returns the canonical record.
type CredentialDraft struct {
	Domain string
	Fields map[string]any
}

func (d CredentialDraft) Validate() error {
	if strings.TrimSpace(d.Domain) == "" {
		return &ValidationError{Field: "domain", Reason: "is required"}
	}
	for key := range d.Fields {
		if strings.TrimSpace(key) == "" {
			return &ValidationError{Field: "fields", Reason: "contains an empty attribute name"}
		}
	}

	return nil
}

// Patch is a partial update. Keys absent from the map are left untouched by the server.
type Patch map[string]any

func CloneCredentials(in []Credential) []Credential {
	if in == nil {
		return nil
	}

	out := make([]Credential, len(in))
	for i, c := range in {
		out[i] = c
		if c.Fields != nil {
			fields := make(map[string]any, len(c.Fields))
			for k, v := range c.Fields {
				fields[k] = v
			}
			out[i].Fields = fields
		}
	}

	return out
}

func SortedDomains(records []Credential) []string {
	seen := make(map[string]struct{}, len(records))
	domains := make([]string, 0, len(records))
	for _, record := range records {
		if _, ok := seen[record.Domain]; ok || record.Domain == "" {
			continue
		}
		seen[record.Domain] = struct{}{}
		domains = append(domains, record.Domain)
	}
	sort.Strings(domains)

	return domains
}

// ParseCredentialIDs turns decoded input into a batch id list. Only a sequence
// of non-empty strings or integral numbers is accepted.
func ParseCredentialIDs(raw any) ([]CredentialID, error) {
	var items []any
	switch v := raw.(type) {
	case []CredentialID:
		items = make([]any, len(v))
		for i := range v {
			items[i] = string(v[i])
		}
	case []string:
		items = make([]any, len(v))
		for i := range v {
			items[i] = v[i]
		}
	case []any:
		items = v
	default:
		return nil, &ValidationError{Field: "ids", Reason: fmt.Sprintf("must be a list of ids, got %T", raw)}
	}

	if len(items) == 0 {
		return nil, &ValidationError{Field: "ids", Reason: "must not be empty"}
	}

	ids := make([]CredentialID, 0, len(items))
	for i, item := range items {
		id, err := scalarID(item)
		if err != nil {
			return nil, &ValidationError{Field: fmt.Sprintf("ids[%d]", i), Reason: err.Error()}
		}
		ids = append(ids, id)
	}

	return ids, nil
}

func scalarID(item any) (CredentialID, error) {
	switch v := item.(type) {
	case string:
		if strings.TrimSpace(v) == "" {
			return "", fmt.Errorf("is empty")
		}
		return CredentialID(strings.TrimSpace(v)), nil
	case float64:
		if v != float64(int64(v)) {
			return "", fmt.Errorf("is not an integral id")
		}
		return CredentialID(fmt.Sprintf("%d", int64(v))), nil
	case int:
		return CredentialID(fmt.Sprintf("%d", v)), nil
	case int64:
		return CredentialID(fmt.Sprintf("%d", v)), nil
	default:
		return "", fmt.Errorf("must be a string or number, got %T", item)
	}
}
