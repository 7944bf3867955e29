package remote

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strconv"

	"github.com/bnema/pwsync/internal/domain"
)

const maxImportFileBytes = 8 << 20

func (c *Client) ListCredentials(ctx context.Context) ([]domain.Credential, error) {
	var payload listResponse
	err := c.do(ctx, request{
		op:            "list credentials",
		method:        http.MethodGet,
		path:          "/api/passwords",
		authenticated: true,
	}, &payload)
	if err != nil {
		return nil, err
	}

	return credentialsFromWire(payload.Passwords, false), nil
}

func (c *Client) CreateCredential(ctx context.Context, draft domain.CredentialDraft) (domain.Credential, error) {
	return c.writeRecord(ctx, "create credential", http.MethodPost, "/api/passwords", draftToWire(draft), false)
}

func (c *Client) UpdateCredential(ctx context.Context, id domain.CredentialID, patch domain.Patch) (domain.Credential, error) {
	return c.writeRecord(ctx, "update credential", http.MethodPut, "/api/passwords/"+escapeID(string(id)), map[string]any(patch), false)
}

func (c *Client) DeleteCredential(ctx context.Context, id domain.CredentialID) error {
	return c.do(ctx, request{
		op:            "delete credential",
		method:        http.MethodDelete,
		path:          "/api/passwords/" + escapeID(string(id)),
		authenticated: true,
	}, nil)
}

func (c *Client) BatchDeleteCredentials(ctx context.Context, ids []domain.CredentialID) (domain.BatchDeleteOutcome, error) {
	var payload batchDeleteResponse
	err := c.do(ctx, request{
		op:            "batch delete credentials",
		method:        http.MethodPost,
		path:          "/api/batch_delete",
		body:          batchDeleteRequest{PasswordIDs: ids},
		authenticated: true,
	}, &payload)
	if err != nil {
		return domain.BatchDeleteOutcome{}, err
	}

	return payload.toDomain(ids), nil
}

func (c *Client) SyncCredentials(ctx context.Context, records []domain.Credential) ([]domain.Credential, error) {
	var payload syncResponse
	err := c.do(ctx, request{
		op:            "sync credentials",
		method:        http.MethodPost,
		path:          "/api/passwords/sync",
		body:          map[string]any{"passwords": credentialsToWire(records)},
		authenticated: true,
	}, &payload)
	if err != nil {
		return nil, err
	}
	if payload.ServerPasswords == nil {
		return nil, &domain.RemoteError{Op: "sync credentials", StatusCode: http.StatusOK, Message: "response carries no serverPasswords"}
	}

	return credentialsFromWire(*payload.ServerPasswords, false), nil
}

func (c *Client) ListShared(ctx context.Context) ([]domain.Credential, error) {
	var payload listResponse
	err := c.do(ctx, request{
		op:            "list shared credentials",
		method:        http.MethodGet,
		path:          "/api/passwords/shared",
		authenticated: true,
	}, &payload)
	if err != nil {
		return nil, err
	}

	return credentialsFromWire(payload.SharedPasswords, true), nil
}

func (c *Client) UpdateShared(ctx context.Context, id domain.CredentialID, patch domain.Patch) (domain.Credential, error) {
	return c.writeRecord(ctx, "update shared credential", http.MethodPut, "/api/passwords/shared/"+escapeID(string(id)), map[string]any(patch), true)
}

func (c *Client) SyncShared(ctx context.Context, records []domain.Credential) ([]domain.Credential, error) {
	var payload syncResponse
	err := c.do(ctx, request{
		op:            "sync shared credentials",
		method:        http.MethodPost,
		path:          "/api/passwords/shared/sync",
		body:          map[string]any{"passwords": credentialsToWire(records)},
		authenticated: true,
	}, &payload)
	if err != nil {
		return nil, err
	}
	if payload.SharedPasswords == nil {
		return nil, &domain.RemoteError{Op: "sync shared credentials", StatusCode: http.StatusOK, Message: "response carries no sharedPasswords"}
	}

	return credentialsFromWire(*payload.SharedPasswords, true), nil
}

func (c *Client) ImportText(ctx context.Context, drafts []domain.CredentialDraft, force bool) (domain.ImportOutcome, error) {
	records := make([]record, 0, len(drafts))
	for _, d := range drafts {
		records = append(records, draftToWire(d))
	}

	var payload importResponse
	err := c.do(ctx, request{
		op:            "import text",
		method:        http.MethodPost,
		path:          "/api/txt_import",
		body:          importTextRequest{Passwords: records, ForceImport: force},
		authenticated: true,
	}, &payload)
	if err != nil {
		return domain.ImportOutcome{}, err
	}

	return payload.toDomain(), nil
}

func (c *Client) ImportCSV(ctx context.Context, file domain.ImportFile, force bool) (domain.ImportOutcome, error) {
	if file.Content == nil {
		return domain.ImportOutcome{}, &domain.ValidationError{Field: "file", Reason: "no file selected"}
	}

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	part, err := writer.CreateFormFile("file", file.Name)
	if err != nil {
		return domain.ImportOutcome{}, fmt.Errorf("create csv form part: %w", err)
	}
	written, err := io.Copy(part, io.LimitReader(file.Content, maxImportFileBytes+1))
	if err != nil {
		return domain.ImportOutcome{}, fmt.Errorf("read csv file: %w", err)
	}
	if written > maxImportFileBytes {
		return domain.ImportOutcome{}, &domain.ValidationError{Field: "file", Reason: "exceeds 8 MiB"}
	}
	if err := writer.WriteField("forceImport", strconv.FormatBool(force)); err != nil {
		return domain.ImportOutcome{}, fmt.Errorf("write csv form field: %w", err)
	}
	if err := writer.Close(); err != nil {
		return domain.ImportOutcome{}, fmt.Errorf("close csv form: %w", err)
	}

	var payload importResponse
	err = c.do(ctx, request{
		op:            "import csv",
		method:        http.MethodPost,
		path:          "/api/csv_import",
		rawBody:       buf.Bytes(),
		contentType:   writer.FormDataContentType(),
		authenticated: true,
	}, &payload)
	if err != nil {
		return domain.ImportOutcome{}, err
	}

	return payload.toDomain(), nil
}

func (c *Client) writeRecord(ctx context.Context, op string, method string, path string, body any, shared bool) (domain.Credential, error) {
	var payload record
	err := c.do(ctx, request{
		op:            op,
		method:        method,
		path:          path,
		body:          body,
		authenticated: true,
	}, &payload)
	if err != nil {
		return domain.Credential{}, err
	}

	raw, err := unwrapRecord(payload)
	if err != nil {
		return domain.Credential{}, &domain.RemoteError{Op: op, StatusCode: http.StatusOK, Message: err.Error()}
	}

	return credentialFromWire(raw, shared), nil
}
