package ports

import (
	"context"

	"github.com/taskforge/task-api/internal/core/domain"
)

// AuthService implements the credential exchange and token lifecycle.
type AuthService interface {
	// SignIn verifies an email/password pair and returns a signed access
	// token for the matching user. Unknown email and wrong password both
	// fail with domain.ErrInvalidCredentials so callers cannot tell the
	// two cases apart.
	SignIn(ctx context.Context, email, password string) (string, *domain.User, error)
	// ValidateToken checks signature and expiry, then re-resolves the
	// embedded user id. A token whose user no longer exists fails with
	// domain.ErrUnauthenticated even if the signature is valid.
	ValidateToken(ctx context.Context, raw string) (domain.Claim, error)
}

// TokenValidator is the narrow slice of AuthService the auth middleware
// depends on.
type TokenValidator interface {
	ValidateToken(ctx context.Context, raw string) (domain.Claim, error)
}
