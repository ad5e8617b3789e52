package ports

import (
	"context"

	"github.com/kalaiarasan0/farmdesk/internal/core/domain"
)

// API is the transport every domain service talks through. out may be nil to
// discard the payload or a *json.RawMessage to keep it exactly as received.
type API interface {
	Get(ctx context.Context, path string, out any) error
	Post(ctx context.Context, path string, body, out any) error
	Patch(ctx context.Context, path string, body, out any) error
	Put(ctx context.Context, path string, body, out any) error
	Delete(ctx context.Context, path string, out any) error
	PostForm(ctx context.Context, path string, fields []domain.FormField, out any) error
}
