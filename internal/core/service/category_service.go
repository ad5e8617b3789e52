package service

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/kalaiarasan0/farmdesk/internal/core/domain"
	"github.com/kalaiarasan0/farmdesk/internal/core/ports"
)

const categoriesPath = "/api/v1/category"

type CategoryService struct {
	api ports.API
}

func NewCategoryService(api ports.API) *CategoryService {
	return &CategoryService{api: api}
}

func (s *CategoryService) List(ctx context.Context, page domain.Page) (json.RawMessage, error) {
	return getRaw(ctx, s.api, "list categories", withQuery(categoriesPath+"/list", page.Values()))
}

func (s *CategoryService) Count(ctx context.Context) (json.RawMessage, error) {
	return getRaw(ctx, s.api, "count categories", categoriesPath+"/count")
}

func (s *CategoryService) Search(ctx context.Context, name string) (json.RawMessage, error) {
	return getRaw(ctx, s.api, "search categories", path(categoriesPath+"/name-search", name))
}

func (s *CategoryService) ByID(ctx context.Context, id int) (json.RawMessage, error) {
	return getRaw(ctx, s.api, "get category", path(categoriesPath+"/id", itoa(id)))
}

// Update sends the full category, id included, to the update endpoint.
func (s *CategoryService) Update(ctx context.Context, c domain.Category) (json.RawMessage, error) {
	return patchRaw(ctx, s.api, "update category", categoriesPath+"/update", c)
}

func (s *CategoryService) Create(ctx context.Context, in domain.CategoryInput) (json.RawMessage, error) {
	return postRaw(ctx, s.api, "create category", categoriesPath+"/create", in)
}

func (s *CategoryService) Lookups(ctx context.Context) ([]domain.CategoryLookup, error) {
	var out []domain.CategoryLookup
	if err := s.api.Get(ctx, categoriesPath+"/lookups", &out); err != nil {
		return nil, fmt.Errorf("category lookups: %w", err)
	}
	return out, nil
}
