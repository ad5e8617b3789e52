package service

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/kalaiarasan0/farmdesk/internal/core/domain"
	"github.com/kalaiarasan0/farmdesk/internal/core/ports"
)

const (
	customersPath = "/api/v1/customers"
	addressesPath = "/api/v1/addresses"
)

// CustomerService covers customers, their addresses and the location lookups
// used to fill an address.
type CustomerService struct {
	api ports.API
}

func NewCustomerService(api ports.API) *CustomerService {
	return &CustomerService{api: api}
}

func (s *CustomerService) Count(ctx context.Context, f domain.CustomerFilter) (json.RawMessage, error) {
	// The count endpoint keeps its "?" even without filters.
	return getRaw(ctx, s.api, "count customers", customersPath+"/count?"+f.Apply(nil).Encode())
}

func (s *CustomerService) List(ctx context.Context, page domain.Page, f domain.CustomerFilter) (json.RawMessage, error) {
	return getRaw(ctx, s.api, "list customers", withQuery(customersPath+"/list", f.Apply(page.Values())))
}

func (s *CustomerService) Create(ctx context.Context, in domain.CustomerInput) (json.RawMessage, error) {
	return postRaw(ctx, s.api, "create customer", customersPath+"/create-customer", in)
}

func (s *CustomerService) ByID(ctx context.Context, id int) (json.RawMessage, error) {
	return getRaw(ctx, s.api, "get customer", path(customersPath+"/id", itoa(id)))
}

// Update sends a partial customer; only the fields present in patch change.
func (s *CustomerService) Update(ctx context.Context, id int, patch any) (json.RawMessage, error) {
	return patchRaw(ctx, s.api, "update customer", path(customersPath+"/id", itoa(id)), patch)
}

func (s *CustomerService) Delete(ctx context.Context, id int) (json.RawMessage, error) {
	return deleteRaw(ctx, s.api, "delete customer", path(customersPath+"/id", itoa(id)))
}

func (s *CustomerService) Lookup(ctx context.Context) (json.RawMessage, error) {
	return getRaw(ctx, s.api, "customer lookup", customersPath+"/lookup")
}

func (s *CustomerService) Addresses(ctx context.Context, customerID int) (json.RawMessage, error) {
	return getRaw(ctx, s.api, "list addresses", path(addressesPath+"/by-customer-id", itoa(customerID)))
}

func (s *CustomerService) Address(ctx context.Context, id int) (json.RawMessage, error) {
	return getRaw(ctx, s.api, "get address", path(addressesPath+"/id", itoa(id)))
}

func (s *CustomerService) CreateAddress(ctx context.Context, in domain.AddressInput) (json.RawMessage, error) {
	return postRaw(ctx, s.api, "create address", addressesPath+"/create-address", in)
}

func (s *CustomerService) UpdateAddress(ctx context.Context, id int, patch any) (json.RawMessage, error) {
	return patchRaw(ctx, s.api, "update address", path(addressesPath+"/id", itoa(id)), patch)
}

func (s *CustomerService) DeleteAddress(ctx context.Context, id int) (json.RawMessage, error) {
	return deleteRaw(ctx, s.api, "delete address", path(addressesPath+"/id", itoa(id)))
}

func (s *CustomerService) States(ctx context.Context) (json.RawMessage, error) {
	return getRaw(ctx, s.api, "list states", addressesPath+"/states")
}

func (s *CustomerService) Districts(ctx context.Context, state string) (json.RawMessage, error) {
	if state == "" {
		return nil, fmt.Errorf("list districts: %w: state is required", domain.ErrInvalidInput)
	}
	return getRaw(ctx, s.api, "list districts", path(addressesPath+"/districts", state))
}

func (s *CustomerService) Pincodes(ctx context.Context, district string) (json.RawMessage, error) {
	if district == "" {
		return nil, fmt.Errorf("list pincodes: %w: district is required", domain.ErrInvalidInput)
	}
	return getRaw(ctx, s.api, "list pincodes", path(addressesPath+"/pincodes", district))
}
