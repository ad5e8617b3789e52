package ports

import (
	"context"

	"github.com/kalaiarasan0/farmdesk/internal/core/domain"
)

// TokenStore persists named token slots. Load returns "" and no error for an
// empty slot.
type TokenStore interface {
	Load(ctx context.Context, key string) (string, error)
	Save(ctx context.Context, key, token string) error
	Delete(ctx context.Context, key string) error
}

// Session is the single source of truth for the bearer token.
type Session interface {
	Token(ctx context.Context) (string, error)
	Set(ctx context.Context, token string) error
	Clear(ctx context.Context) error
	State(ctx context.Context) domain.SessionState
}
