package ports

import (
	"context"

	"github.com/kalaiarasan0/farmdesk/internal/core/domain"
)

// UserRepository stores the operator accounts of the development backend.
type UserRepository interface {
	FindByUsername(ctx context.Context, username string) (*domain.User, error)
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
}
