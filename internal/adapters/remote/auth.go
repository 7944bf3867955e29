package remote

import (
	"context"
	"errors"
	"net/http"

	"github.com/bnema/pwsync/internal/domain"
	"github.com/bnema/pwsync/internal/ports"
)

var errMissingToken = errors.New("response carries no token")

func (c *Client) Login(ctx context.Context, req ports.LoginRequest) (domain.AuthGrant, error) {
	var payload authResponse
	err := c.do(ctx, request{
		op:     "login",
		method: http.MethodPost,
		path:   "/api/login",
		body:   credentialsRequest{Email: req.Email, Password: req.Password},
	}, &payload)
	if err != nil {
		return domain.AuthGrant{}, err
	}

	return grantFrom(payload)
}

func (c *Client) Register(ctx context.Context, req ports.RegisterRequest) (domain.AuthGrant, error) {
	var payload authResponse
	err := c.do(ctx, request{
		op:     "register",
		method: http.MethodPost,
		path:   "/api/register",
		body:   credentialsRequest{Email: req.Email, Password: req.Password, Profile: req.Profile},
	}, &payload)
	if err != nil {
		return domain.AuthGrant{}, err
	}

	return grantFrom(payload)
}

func (c *Client) FetchUser(ctx context.Context) (domain.User, error) {
	var payload userResponse
	err := c.do(ctx, request{
		op:            "fetch user",
		method:        http.MethodGet,
		path:          "/api/user",
		authenticated: true,
	}, &payload)
	if err != nil {
		return domain.User{}, err
	}

	user := payload.toDomain()
	if user.ID == "" {
		return domain.User{}, &domain.RemoteError{Op: "fetch user", StatusCode: http.StatusOK, Message: "response carries no user id"}
	}

	return user, nil
}

func grantFrom(payload authResponse) (domain.AuthGrant, error) {
	grant, err := payload.grant()
	if err != nil {
		return domain.AuthGrant{}, err
	}
	if grant.Token == "" {
		return domain.AuthGrant{}, errMissingToken
	}

	return grant, nil
}
