package remote

import (
	"context"
	"net/http"

	"github.com/bnema/pwsync/internal/domain"
)

func (c *Client) ListBindings(ctx context.Context) (domain.BindingSet, error) {
	var payload bindingsResponse
	err := c.do(ctx, request{
		op:            "list bindings",
		method:        http.MethodGet,
		path:          "/api/accounts/bindings",
		authenticated: true,
	}, &payload)
	if err != nil {
		return domain.BindingSet{}, err
	}

	return payload.toDomain(), nil
}

func (c *Client) ProposeBinding(ctx context.Context, targetEmail string) (domain.BindingID, error) {
	var payload bindResponse
	err := c.do(ctx, request{
		op:            "propose binding",
		method:        http.MethodPost,
		path:          "/api/accounts/bind",
		body:          bindRequest{TargetEmail: targetEmail},
		authenticated: true,
	}, &payload)
	if err != nil {
		return "", err
	}

	return domain.BindingID(payload.BindingID), nil
}

func (c *Client) AcceptBinding(ctx context.Context, id domain.BindingID) error {
	return c.do(ctx, request{
		op:            "accept binding",
		method:        http.MethodPost,
		path:          "/api/accounts/bindings/" + escapeID(string(id)) + "/accept",
		authenticated: true,
	}, nil)
}

func (c *Client) RejectBinding(ctx context.Context, id domain.BindingID) error {
	return c.do(ctx, request{
		op:            "reject binding",
		method:        http.MethodPost,
		path:          "/api/accounts/bindings/" + escapeID(string(id)) + "/reject",
		authenticated: true,
	}, nil)
}

func (c *Client) DeleteBinding(ctx context.Context, id domain.BindingID) error {
	return c.do(ctx, request{
		op:            "unbind account",
		method:        http.MethodDelete,
		path:          "/api/accounts/bindings/" + escapeID(string(id)),
		authenticated: true,
	}, nil)
}

func (c *Client) UpdateBindingPermissions(ctx context.Context, id domain.BindingID, permission domain.Permission) error {
	return c.do(ctx, request{
		op:            "update binding permissions",
		method:        http.MethodPut,
		path:          "/api/accounts/bindings/" + escapeID(string(id)) + "/permissions",
		body:          permissionsRequest{Permissions: permission},
		authenticated: true,
	}, nil)
}
