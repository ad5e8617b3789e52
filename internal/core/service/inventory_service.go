package service

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"

	"github.com/kalaiarasan0/farmdesk/internal/core/domain"
	"github.com/kalaiarasan0/farmdesk/internal/core/ports"
)

const inventoriesPath = "/api/v1/inventories"

// InventoryRow is the part of an inventory record the order form relies on.
type InventoryRow struct {
	InventoryID int     `json:"inventory_id"`
	Quantity    int     `json:"quantity"`
	UnitPrice   float64 `json:"unit_price"`
}

type InventoryService struct {
	api ports.API
}

func NewInventoryService(api ports.API) *InventoryService {
	return &InventoryService{api: api}
}

func (s *InventoryService) List(ctx context.Context, page domain.Page) (json.RawMessage, error) {
	return getRaw(ctx, s.api, "list inventories", withQuery(inventoriesPath+"/list", page.Values()))
}

func (s *InventoryService) ByCategoryName(ctx context.Context, name string) (json.RawMessage, error) {
	return getRaw(ctx, s.api, "inventory by category name", path(inventoriesPath+"/category-name", name))
}

func (s *InventoryService) ByCategoryID(ctx context.Context, categoryID int) (json.RawMessage, error) {
	return getRaw(ctx, s.api, "inventory by category", path(inventoriesPath+"/category", itoa(categoryID)))
}

// StockForCategory returns the first inventory row of a category, or nil when
// the category has none.
func (s *InventoryService) StockForCategory(ctx context.Context, categoryID int) (*InventoryRow, error) {
	var rows []InventoryRow
	if err := s.api.Get(ctx, path(inventoriesPath+"/category", itoa(categoryID)), &rows); err != nil {
		return nil, fmt.Errorf("inventory by category: %w", err)
	}
	if len(rows) == 0 {
		return nil, nil
	}
	return &rows[0], nil
}

// TrackedAnimals lists the individually tracked animals held in an inventory.
func (s *InventoryService) TrackedAnimals(ctx context.Context, inventoryID int) (json.RawMessage, error) {
	q := url.Values{"inventory_id": {itoa(inventoryID)}}
	return getRaw(ctx, s.api, "list tracked animals",
		withQuery(trackedStockPath+"/list_tracking_animal_in_master_inventory", q))
}
