package domain

import (
	"strings"
	"time"
)

type BindingID string

type BindingStatus string

const (
	BindingPending BindingStatus = "pending"
	BindingActive  BindingStatus = "active"
)

type BindingDirection string

const (
	DirectionOutbound BindingDirection = "outbound"
	DirectionInbound  BindingDirection = "inbound"
)

type BindingState string

const (
	BindingStatePendingOutbound BindingState = "pending-outbound"
	BindingStatePendingInbound  BindingState = "pending-inbound"
	BindingStateActive          BindingState = "active"
)

type Permission string

const (
	PermissionRead  Permission = "read"
	PermissionWrite Permission = "write"
)

func (p Permission) Valid() bool {
	switch p {
	case PermissionRead, PermissionWrite:
		return true
	default:
		return false
	}
}

func ParsePermission(raw string) (Permission, error) {
	permission := Permission(strings.ToLower(strings.TrimSpace(raw)))
	if !permission.Valid() {
		return "", &ValidationError{Field: "permissions", Reason: "must be read or write"}
	}

	return permission, nil
}

// Binding links a requester account to a target account.
type Binding struct {
	ID          BindingID
	RequesterID UserID
	TargetID    UserID
	Status      BindingStatus
	Direction   BindingDirection
	Permissions Permission
	PeerEmail   string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (b Binding) State() BindingState {
	if b.Status == BindingActive {
		return BindingStateActive
	}
	if b.Direction == DirectionOutbound {
		return BindingStatePendingOutbound
	}

	return BindingStatePendingInbound
}

type bindingPair struct {
	requester UserID
	target    UserID
}

// NormalizeBindings drops duplicate ids and keeps at most one live relationship
// per requester/target pair. Active entries win over pending ones.
func NormalizeBindings(active []Binding, pending []Binding) ([]Binding, []Binding) {
	seenIDs := map[BindingID]struct{}{}
	seenPairs := map[bindingPair]struct{}{}

	keep := func(in []Binding) []Binding {
		out := make([]Binding, 0, len(in))
		for _, b := range in {
			if _, ok := seenIDs[b.ID]; ok {
				continue
			}
			pair := bindingPair{requester: b.RequesterID, target: b.TargetID}
			if pair.requester != "" && pair.target != "" {
				if _, ok := seenPairs[pair]; ok {
					continue
				}
				seenPairs[pair] = struct{}{}
			}
			seenIDs[b.ID] = struct{}{}
			out = append(out, b)
		}
		return out
	}

	keptActive := keep(active)
	keptPending := keep(pending)

	return keptActive, keptPending
}

type BindingSet struct {
	Active  []Binding
	Pending []Binding
}
