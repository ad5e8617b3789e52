package memory

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/kalaiarasan0/farmdesk/internal/core/domain"
)

// window returns the [offset, offset+limit) slice bounds for n items.
func window(n int, page domain.Page) (int, int) {
	limit := page.Limit
	if limit <= 0 {
		limit = domain.DefaultPageLimit
	}
	start := page.Offset
	if start < 0 {
		start = 0
	}
	if start > n {
		start = n
	}
	end := start + limit
	if end > n {
		end = n
	}
	return start, end
}

// AnimalRepository keeps animals in insertion order. Tag ids are assigned on
// create.
type AnimalRepository struct {
	mu      sync.RWMutex
	animals []domain.Animal
	now     func() time.Time
}

func NewAnimalRepository() *AnimalRepository {
	return &AnimalRepository{now: time.Now}
}

func (r *AnimalRepository) List(_ context.Context, page domain.Page) ([]domain.Animal, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	start, end := window(len(r.animals), page)
	out := make([]domain.Animal, end-start)
	copy(out, r.animals[start:end])
	return out, nil
}

func (r *AnimalRepository) Count(context.Context) (int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return int64(len(r.animals)), nil
}

func (r *AnimalRepository) FindByID(_ context.Context, id int) (*domain.Animal, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, a := range r.animals {
		if a.ID == id {
			return &a, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (r *AnimalRepository) FindByTagID(_ context.Context, tagID string) (*domain.Animal, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, a := range r.animals {
		if strings.EqualFold(a.TagID, tagID) {
			return &a, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (r *AnimalRepository) Create(_ context.Context, in domain.AnimalInput) (*domain.Animal, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	id := len(r.animals) + 1
	a := domain.Animal{
		ID:          id,
		TagID:       fmt.Sprintf("FD-%05d", id),
		AnimalInput: in,
		CreatedAt:   r.now().UTC(),
	}
	r.animals = append(r.animals, a)
	return &a, nil
}

func (r *AnimalRepository) CountByStatus(context.Context) (map[string]int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	counts := make(map[string]int)
	for _, a := range r.animals {
		counts[a.Status]++
	}
	return counts, nil
}

// CategoryRepository keeps categories in insertion order; SKUs are unique.
type CategoryRepository struct {
	mu         sync.RWMutex
	categories []domain.Category
}

func NewCategoryRepository() *CategoryRepository {
	return &CategoryRepository{}
}

func (r *CategoryRepository) List(_ context.Context, page domain.Page) ([]domain.Category, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	start, end := window(len(r.categories), page)
	out := make([]domain.Category, end-start)
	copy(out, r.categories[start:end])
	return out, nil
}

func (r *CategoryRepository) Count(context.Context) (int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return int64(len(r.categories)), nil
}

func (r *CategoryRepository) FindByID(_ context.Context, id int) (*domain.Category, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, c := range r.categories {
		if c.ID == id {
			return &c, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (r *CategoryRepository) Create(_ context.Context, in domain.CategoryInput) (*domain.Category, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, c := range r.categories {
		if strings.EqualFold(c.SKU, in.SKU) {
			return nil, fmt.Errorf("%w: sku %s", domain.ErrConflict, in.SKU)
		}
	}
	c := domain.Category{ID: len(r.categories) + 1, CategoryInput: in}
	r.categories = append(r.categories, c)
	return &c, nil
}
