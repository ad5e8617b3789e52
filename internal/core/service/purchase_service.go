package service

import (
	"context"
	"encoding/json"
	"net/url"

	"github.com/kalaiarasan0/farmdesk/internal/core/domain"
	"github.com/kalaiarasan0/farmdesk/internal/core/ports"
)

const purchasesPath = "/api/v1/track/material"

// PurchaseService covers material purchases (feed, medicine, equipment).
type PurchaseService struct {
	api ports.API
}

func NewPurchaseService(api ports.API) *PurchaseService {
	return &PurchaseService{api: api}
}

func (s *PurchaseService) Create(ctx context.Context, in domain.PurchaseInput) (json.RawMessage, error) {
	return postRaw(ctx, s.api, "create purchase", purchasesPath+"/create", in)
}

// List pages through purchases, narrowed by any non-empty filter field.
func (s *PurchaseService) List(ctx context.Context, page domain.Page, f domain.PurchaseFilter) (json.RawMessage, error) {
	return getRaw(ctx, s.api, "list purchases", withQuery(purchasesPath+"/list", f.Apply(page.Values())))
}

func (s *PurchaseService) ListByDateRange(ctx context.Context, start, end string, page domain.Page) (json.RawMessage, error) {
	return s.List(ctx, page, domain.PurchaseFilter{StartDate: start, EndDate: end})
}

func (s *PurchaseService) ListByMaterial(ctx context.Context, materialID string, page domain.Page) (json.RawMessage, error) {
	return s.List(ctx, page, domain.PurchaseFilter{MaterialID: materialID})
}

func (s *PurchaseService) ListBySupplier(ctx context.Context, supplierID string, page domain.Page) (json.RawMessage, error) {
	return s.List(ctx, page, domain.PurchaseFilter{SupplierID: supplierID})
}

func (s *PurchaseService) Update(ctx context.Context, id int, in domain.PurchaseInput) (json.RawMessage, error) {
	return putRaw(ctx, s.api, "update purchase", path(purchasesPath+"/update", itoa(id)), in)
}

func (s *PurchaseService) Delete(ctx context.Context, id int) (json.RawMessage, error) {
	return deleteRaw(ctx, s.api, "delete purchase", path(purchasesPath+"/delete", itoa(id)))
}

func (s *PurchaseService) ByID(ctx context.Context, id int) (json.RawMessage, error) {
	return getRaw(ctx, s.api, "get purchase", path(purchasesPath, itoa(id)))
}

func (s *PurchaseService) Search(ctx context.Context, query string) (json.RawMessage, error) {
	return getRaw(ctx, s.api, "search purchases", withQuery(purchasesPath+"/search", url.Values{"q": {query}}))
}
