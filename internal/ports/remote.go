package ports

import (
	"context"

	"github.com/bnema/pwsync/internal/domain"
)

type LoginRequest struct {
	Email    string
	Password string
}

type RegisterRequest struct {
	Email    string
	Password string
	Profile  map[string]any
}

type AuthAPI interface {
	Login(ctx context.Context, req LoginRequest) (domain.AuthGrant, error)
	Register(ctx context.Context, req RegisterRequest) (domain.AuthGrant, error)
	FetchUser(ctx context.Context) (domain.User, error)
}

type CredentialAPI interface {
	ListCredentials(ctx context.Context) ([]domain.Credential, error)
	CreateCredential(ctx context.Context, draft domain.CredentialDraft) (domain.Credential, error)
	UpdateCredential(ctx context.Context, id domain.CredentialID, patch domain.Patch) (domain.Credential, error)
	DeleteCredential(ctx context.Context, id domain.CredentialID) error
	// BatchDeleteCredentials returns the raw outcome; Failures holds structured
	// records only when the server sent them.
	BatchDeleteCredentials(ctx context.Context, ids []domain.CredentialID) (domain.BatchDeleteOutcome, error)
	SyncCredentials(ctx context.Context, records []domain.Credential) ([]domain.Credential, error)
	ListShared(ctx context.Context) ([]domain.Credential, error)
	UpdateShared(ctx context.Context, id domain.CredentialID, patch domain.Patch) (domain.Credential, error)
	SyncShared(ctx context.Context, records []domain.Credential) ([]domain.Credential, error)
	ImportText(ctx context.Context, drafts []domain.CredentialDraft, force bool) (domain.ImportOutcome, error)
	ImportCSV(ctx context.Context, file domain.ImportFile, force bool) (domain.ImportOutcome, error)
}

type BindingAPI interface {
	ListBindings(ctx context.Context) (domain.BindingSet, error)
	ProposeBinding(ctx context.Context, targetEmail string) (domain.BindingID, error)
	AcceptBinding(ctx context.Context, id domain.BindingID) error
	RejectBinding(ctx context.Context, id domain.BindingID) error
	DeleteBinding(ctx context.Context, id domain.BindingID) error
	UpdateBindingPermissions(ctx context.Context, id domain.BindingID, permission domain.Permission) error
}
