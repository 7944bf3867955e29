package domain

import (
	"errors"
	"fmt"
)

var (
	ErrValidation       = errors.New("invalid input")
	ErrAuthentication   = errors.New("authentication failed")
	ErrUnauthorized     = errors.New("session rejected by server")
	ErrRemote           = errors.New("remote request failed")
	ErrTransport        = errors.New("server not responding")
	ErrNotAuthenticated = errors.New("not logged in")
	ErrBlobNotFound     = errors.New("blob not found")
)

type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Reason
	}
	return fmt.Sprintf("%s %s", e.Field, e.Reason)
}

func (e *ValidationError) Unwrap() error { return ErrValidation }

// AuthenticationError is a rejected login or register attempt.
type AuthenticationError struct {
	Err error
}

func (e *AuthenticationError) Error() string {
	if e.Err == nil {
		return ErrAuthentication.Error()
	}
	return fmt.Sprintf("%s: %v", ErrAuthentication, e.Err)
}

func (e *AuthenticationError) Unwrap() []error {
	if e.Err == nil {
		return []error{ErrAuthentication}
	}
	return []error{ErrAuthentication, e.Err}
}

// AuthorizationError is an unauthorized response to an authenticated request.
// The session has already been torn down when a caller sees it.
type AuthorizationError struct {
	Op         string
	StatusCode int
	Message    string
}

func (e *AuthorizationError) Error() string {
	msg := e.Message
	if msg == "" {
		msg = ErrUnauthorized.Error()
	}
	if e.Op == "" {
		return msg
	}
	return fmt.Sprintf("%s: %s", e.Op, msg)
}

func (e *AuthorizationError) Unwrap() error { return ErrUnauthorized }

type RemoteError struct {
	Op         string
	StatusCode int
	Message    string
}

func (e *RemoteError) Error() string {
	msg := e.Message
	if msg == "" {
		msg = fmt.Sprintf("%s failed", e.Op)
	}
	return fmt.Sprintf("%s: %s (status %d)", e.Op, msg, e.StatusCode)
}

func (e *RemoteError) Unwrap() error { return ErrRemote }

type TransportError struct {
	Op  string
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("%s: %s", e.Op, ErrTransport)
}

func (e *TransportError) Unwrap() []error {
	if e.Err == nil {
		return []error{ErrTransport}
	}
	return []error{ErrTransport, e.Err}
}

// IsRemoteFailure reports whether err came back from the network layer, as
// opposed to local validation.
func IsRemoteFailure(err error) bool {
	return errors.Is(err, ErrRemote) || errors.Is(err, ErrTransport) || errors.Is(err, ErrUnauthorized) || errors.Is(err, ErrAuthentication)
}
