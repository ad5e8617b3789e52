package ports

import (
	"context"

	"github.com/kalaiarasan0/farmdesk/internal/core/domain"
)

// AnimalRepository persists tracked animals for the development backend.
type AnimalRepository interface {
	List(ctx context.Context, page domain.Page) ([]domain.Animal, error)
	Count(ctx context.Context) (int64, error)
	FindByID(ctx context.Context, id int) (*domain.Animal, error)
	FindByTagID(ctx context.Context, tagID string) (*domain.Animal, error)
	Create(ctx context.Context, in domain.AnimalInput) (*domain.Animal, error)
	CountByStatus(ctx context.Context) (map[string]int, error)
}

// CategoryRepository persists animal categories for the development backend.
type CategoryRepository interface {
	List(ctx context.Context, page domain.Page) ([]domain.Category, error)
	Count(ctx context.Context) (int64, error)
	FindByID(ctx context.Context, id int) (*domain.Category, error)
	Create(ctx context.Context, in domain.CategoryInput) (*domain.Category, error)
}
