package ports

import (
	"context"

	"github.com/kalaiarasan0/farmdesk/internal/core/domain"
)

// TokenIssuer registers operators and exchanges their credentials for bearer
// tokens on the development backend.
type TokenIssuer interface {
	Register(ctx context.Context, username, password, fullName, email, role string) (*domain.User, error)
	Issue(ctx context.Context, username, password string) (*domain.Token, error)
	Verify(tokenString string) (*domain.User, error)
}
