package ports

import (
	"context"

	"github.com/profinder/marketplace-api/internal/core/domain"
)

// AuthService issues tokens and drives the password-reset flow.
type AuthService interface {
	Login(ctx context.Context, email, password string) (string, *domain.User, error)
	// RequestPasswordReset behaves identically whether or not the address
	// belongs to an account, to resist account enumeration. Mail delivery is
	// fire-and-forget; its failure never surfaces to the caller.
	RequestPasswordReset(ctx context.Context, email string) error
	ConfirmPasswordReset(ctx context.Context, token, newPassword string) error
}
