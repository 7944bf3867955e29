package domain

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// ImportOutcome reports a bulk import. Imported holds only the records the
// server confirmed.
type ImportOutcome struct {
	Imported       []Credential
	ImportedCount  int
	SkippedCount   int
	SkippedDetails []string
	Errors         []string
}

type ImportFile struct {
	Name    string
	Content io.Reader
}

// ParseTextRecords reads one record per line as "domain username password".
// The password is everything after the username, so it may contain spaces.
// Malformed lines are reported and skipped.
func ParseTextRecords(r io.Reader) ([]CredentialDraft, []string, error) {
	var (
		drafts  []CredentialDraft
		invalid []string
	)

	scanner := bufio.NewScanner(r)
	line := 0
	for scanner.Scan() {
		line++
		text := strings.TrimSpace(scanner.Text())
		if text == "" {
			continue
		}

		parts := strings.Fields(text)
		if len(parts) < 3 {
			invalid = append(invalid, fmt.Sprintf("line %d: expected domain, username and password", line))
			continue
		}

		fields := map[string]any{
			FieldUsername: parts[1],
			FieldPassword: strings.Join(parts[2:], " "),
		}
		if strings.Contains(parts[0], ".") {
			fields[FieldWebsiteURL] = parts[0]
		}
		drafts = append(drafts, CredentialDraft{Domain: parts[0], Fields: fields})
	}
	if err := scanner.Err(); err != nil {
		return nil, nil, fmt.Errorf("read text records: %w", err)
	}

	return drafts, invalid, nil
}
