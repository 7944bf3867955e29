package domain

import (
	"fmt"
	"strings"
)

type FailureReason string

const (
	FailureNotFound      FailureReason = "not_found"
	FailureNotAuthorized FailureReason = "not_authorized"
	FailureDeleteFailed  FailureReason = "delete_failed"
)

func (r FailureReason) Valid() bool {
	switch r {
	case FailureNotFound, FailureNotAuthorized, FailureDeleteFailed:
		return true
	default:
		return false
	}
}

// ItemFailure names one batch item the server refused.
type ItemFailure struct {
	ID     CredentialID
	Reason FailureReason
	Detail string
}

var failureShapes = []struct {
	prefix string
	reason FailureReason
}{
	{prefix: "record not found: ", reason: FailureNotFound},
	{prefix: "not authorized to delete: ", reason: FailureNotAuthorized},
	{prefix: "delete failed: ", reason: FailureDeleteFailed},
}

// ParseFailureDetail recognises the three free-text failure shapes the batch
// endpoint emits. Anything else is reported as unmatched.
func ParseFailureDetail(detail string) (ItemFailure, bool) {
	trimmed := strings.TrimSpace(detail)
	for _, shape := range failureShapes {
		rest, ok := strings.CutPrefix(trimmed, shape.prefix)
		if !ok {
			continue
		}

		id, extra, _ := strings.Cut(rest, " - ")
		id = strings.TrimSpace(id)
		if id == "" {
			return ItemFailure{}, false
		}

		return ItemFailure{ID: CredentialID(id), Reason: shape.reason, Detail: strings.TrimSpace(extra)}, true
	}

	return ItemFailure{}, false
}

func (f ItemFailure) String() string {
	switch f.Reason {
	case FailureNotFound:
		return "record not found: " + string(f.ID)
	case FailureNotAuthorized:
		return "not authorized to delete: " + string(f.ID)
	default:
		if f.Detail != "" {
			return fmt.Sprintf("delete failed: %s - %s", f.ID, f.Detail)
		}
		return "delete failed: " + string(f.ID)
	}
}

// BatchDeleteOutcome is the server's account of a batch delete. The counts are
// not guaranteed to add up to the number of requested ids.
type BatchDeleteOutcome struct {
	Requested     []CredentialID
	DeletedCount  int
	FailedCount   int
	FailedDetails []string
	Failures      []ItemFailure
	// Unattributed counts failures whose id could not be recovered.
	Unattributed int
}

// Removable returns the ids the cache may drop: all requested ids when nothing
// failed, none when nothing was deleted, otherwise the requested ids minus the
// attributed failures.
func (o BatchDeleteOutcome) Removable() []CredentialID {
	if o.DeletedCount <= 0 {
		return nil
	}

	failed := make(map[CredentialID]struct{}, len(o.Failures))
	if o.FailedCount > 0 {
		for _, failure := range o.Failures {
			failed[failure.ID] = struct{}{}
		}
	}

	removable := make([]CredentialID, 0, len(o.Requested))
	for _, id := range o.Requested {
		if _, ok := failed[id]; ok {
			continue
		}
		removable = append(removable, id)
	}

	return removable
}

func (o BatchDeleteOutcome) Summary() string {
	switch {
	case o.FailedCount == 0:
		return fmt.Sprintf("deleted %d records", o.DeletedCount)
	case o.DeletedCount == 0:
		return fmt.Sprintf("failed to delete %d records", o.FailedCount)
	default:
		return fmt.Sprintf("deleted %d records, %d failed", o.DeletedCount, o.FailedCount)
	}
}

// AttributeFailures fills Failures from structured records when the server sent
// them and falls back to parsing FailedDetails otherwise. Failures naming ids
// outside the request are treated as unattributed.
func (o *BatchDeleteOutcome) AttributeFailures(structured []ItemFailure) {
	requested := make(map[CredentialID]struct{}, len(o.Requested))
	for _, id := range o.Requested {
		requested[id] = struct{}{}
	}

	candidates := append([]ItemFailure(nil), structured...)
	if len(candidates) == 0 {
		for _, detail := range o.FailedDetails {
			failure, ok := ParseFailureDetail(detail)
			if !ok {
				o.Unattributed++
				continue
			}
			candidates = append(candidates, failure)
		}
	}

	o.Failures = nil
	for _, failure := range candidates {
		if _, ok := requested[failure.ID]; !ok {
			o.Unattributed++
			continue
		}
		o.Failures = append(o.Failures, failure)
	}

	if len(o.FailedDetails) == 0 && len(o.Failures) > 0 {
		for _, failure := range o.Failures {
			o.FailedDetails = append(o.FailedDetails, failure.String())
		}
	}

	if o.FailedCount > len(o.Failures)+o.Unattributed {
		o.Unattributed = o.FailedCount - len(o.Failures)
	}
}
