package service

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"

	"github.com/kalaiarasan0/farmdesk/internal/core/domain"
	"github.com/kalaiarasan0/farmdesk/internal/core/ports"
)

const ordersPath = "/api/v1/orders"

type OrderService struct {
	api ports.API
}

func NewOrderService(api ports.API) *OrderService {
	return &OrderService{api: api}
}

func (s *OrderService) List(ctx context.Context, page domain.Page) (json.RawMessage, error) {
	return getRaw(ctx, s.api, "list orders", withQuery(ordersPath+"/list", page.Values()))
}

// Search matches order numbers and customer names.
func (s *OrderService) Search(ctx context.Context, query string, page domain.Page) (json.RawMessage, error) {
	q := page.Values()
	q.Set("q", query)
	return getRaw(ctx, s.api, "search orders", withQuery(ordersPath+"/search", q))
}

func (s *OrderService) ByID(ctx context.Context, id int) (json.RawMessage, error) {
	return getRaw(ctx, s.api, "get order", path(ordersPath, itoa(id)))
}

func (s *OrderService) Place(ctx context.Context, in domain.OrderInput) (json.RawMessage, error) {
	return postRaw(ctx, s.api, "place order", ordersPath+"/place-order", in)
}

// MapAnimal assigns a tracked animal to an order item.
func (s *OrderService) MapAnimal(ctx context.Context, animalID, orderItemID int) (json.RawMessage, error) {
	return patchRaw(ctx, s.api, "map animal", withQuery(animalsPath+"/map-animal-to-order-item", animalItemQuery(animalID, orderItemID)), nil)
}

func (s *OrderService) UnmapAnimal(ctx context.Context, animalID, orderItemID int) (json.RawMessage, error) {
	return patchRaw(ctx, s.api, "unmap animal", withQuery(animalsPath+"/un-map-animal-from-order-item", animalItemQuery(animalID, orderItemID)), nil)
}

func (s *OrderService) UpdateStatus(ctx context.Context, id int, status string) (json.RawMessage, error) {
	switch status {
	case domain.OrderPending, domain.OrderConfirmed, domain.OrderShipped, domain.OrderDelivered, domain.OrderCancelled:
	default:
		return nil, fmt.Errorf("update order status: %w: unknown status %q", domain.ErrInvalidInput, status)
	}
	q := url.Values{"payload": {status}}
	return patchRaw(ctx, s.api, "update order status", withQuery(path(ordersPath+"/status", itoa(id)), q), nil)
}

func animalItemQuery(animalID, orderItemID int) url.Values {
	return url.Values{
		"animal_id":     {itoa(animalID)},
		"order_item_id": {itoa(orderItemID)},
	}
}
