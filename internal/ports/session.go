package ports

import (
	"context"

	"github.com/bnema/pwsync/internal/domain"
)

// SessionAccessor is the read side of the session handed to the remote
// gateway. HandleUnauthorized tears the session down after the server
// rejects its token.
type SessionAccessor interface {
	AccessToken() string
	HandleUnauthorized(ctx context.Context)
}

// Navigator sends the user back to the unauthenticated entry point.
type Navigator interface {
	RedirectToLogin(ctx context.Context, reason domain.SessionEndReason)
}
