package service

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"

	"github.com/kalaiarasan0/farmdesk/internal/core/domain"
	"github.com/kalaiarasan0/farmdesk/internal/core/ports"
)

// Toast texts of the order form.
const (
	MsgFillRequired      = "Please fill all required fields"
	MsgSelectAddresses   = "Please select billing and shipping addresses"
	MsgNoInventory       = "No inventory found for this category"
	MsgOrderPlaced       = "Order placed successfully!"
	MsgOrderFailed       = "Failed to place order"
	msgExceedsStockFmt   = "Quantity cannot exceed available stock (%d)"
	MsgPurchaseQuantity  = "Quantity must be a positive integer"
	MsgPurchaseCreated   = "Purchase created successfully"
	MsgPurchaseFailed    = "Failed to create purchase"
	MsgFormDataLoadError = "Failed to load form data"
)

// OrderDraft is a single-item order being filled in.
type OrderDraft struct {
	CustomerID  int `validate:"required,gt=0"`
	CategoryID  int `validate:"required,gt=0"`
	InventoryID int `validate:"required,gt=0"`
	Quantity    int `validate:"required,gt=0"`

	BillingAddressID  int `validate:"required,gt=0"`
	ShippingAddressID int `validate:"required,gt=0"`

	UnitPrice       decimal.Decimal
	DiscountValue   decimal.Decimal
	DiscountPercent decimal.Decimal
	Tax             decimal.Decimal
	Shipping        decimal.Decimal
}

var (
	orderRequiredFields = []string{"CustomerID", "CategoryID", "InventoryID", "Quantity"}
	orderAddressFields  = []string{"BillingAddressID", "ShippingAddressID"}
)

func (d OrderDraft) Gross() decimal.Decimal {
	return decimal.NewFromInt(int64(d.Quantity)).Mul(d.UnitPrice)
}

func (d OrderDraft) Totals() domain.OrderTotals {
	return domain.ComputeOrderTotals(d.Quantity, d.UnitPrice, d.DiscountValue, d.Tax, d.Shipping)
}

// SetDiscountValue sets the discount amount and recomputes the percentage.
func (d *OrderDraft) SetDiscountValue(v decimal.Decimal) {
	d.DiscountValue = v
	d.DiscountPercent = domain.PercentFromDiscount(d.Gross(), v)
}

// SetDiscountPercent sets the percentage and recomputes the amount.
func (d *OrderDraft) SetDiscountPercent(p decimal.Decimal) {
	d.DiscountPercent = p
	d.DiscountValue = domain.DiscountFromPercent(d.Gross(), p)
}

// ShipToBilling copies the billing address into the shipping address.
func (d *OrderDraft) ShipToBilling() {
	d.ShippingAddressID = d.BillingAddressID
}

// Payload is the place-order body: one item, order-level discount zero.
func (d OrderDraft) Payload() domain.OrderInput {
	return domain.OrderInput{
		CustomerID:        d.CustomerID,
		BillingAddressID:  d.BillingAddressID,
		ShippingAddressID: d.ShippingAddressID,
		Shipping:          d.Shipping.InexactFloat64(),
		Tax:               d.Tax.InexactFloat64(),
		Discount:          0,
		Items: []domain.OrderItemInput{{
			CategoryID:      d.CategoryID,
			InventoryID:     d.InventoryID,
			Quantity:        d.Quantity,
			UnitPrice:       d.UnitPrice.InexactFloat64(),
			DiscountValue:   d.DiscountValue.InexactFloat64(),
			DiscountPercent: d.DiscountPercent.InexactFloat64(),
		}},
	}
}

// OrderLookups are the customer and category choices offered by the form.
type OrderLookups struct {
	Customers  json.RawMessage         `json:"customers"`
	Categories []domain.CategoryLookup `json:"categories"`
}

// OrderForm validates drafts, reports problems as toasts and places orders.
type OrderForm struct {
	orders     *OrderService
	inventory  *InventoryService
	customers  *CustomerService
	categories *CategoryService
	notifier   ports.Notifier
	validate   *validator.Validate
	log        zerolog.Logger
}

func NewOrderForm(
	orders *OrderService,
	inventory *InventoryService,
	customers *CustomerService,
	categories *CategoryService,
	notifier ports.Notifier,
	log zerolog.Logger,
) *OrderForm {
	return &OrderForm{
		orders:     orders,
		inventory:  inventory,
		customers:  customers,
		categories: categories,
		notifier:   notifier,
		validate:   validator.New(),
		log:        log,
	}
}

// LoadLookups fetches the customer and category choices in parallel. If
// either fails the form cannot be filled in: one error toast is emitted and
// the first error returned.
func (f *OrderForm) LoadLookups(ctx context.Context) (*OrderLookups, error) {
	var out OrderLookups
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		raw, err := f.customers.Lookup(gctx)
		out.Customers = raw
		return err
	})
	g.Go(func() error {
		cats, err := f.categories.Lookups(gctx)
		out.Categories = cats
		return err
	})
	if err := g.Wait(); err != nil {
		f.log.Error().Err(err).Msg("order form lookups failed")
		f.notifier.Emit(MsgFormDataLoadError, domain.ToastError, domain.DefaultToastDuration)
		return nil, err
	}
	return &out, nil
}

// SelectCategory loads the stock row of the chosen category into the draft.
// A category without inventory clears the draft's inventory and price and
// returns a nil row.
func (f *OrderForm) SelectCategory(ctx context.Context, d *OrderDraft, categoryID int) (*InventoryRow, error) {
	d.CategoryID = categoryID
	d.InventoryID = 0
	d.UnitPrice = decimal.Zero

	row, err := f.inventory.StockForCategory(ctx, categoryID)
	if err != nil {
		return nil, err
	}
	if row == nil {
		f.warn(MsgNoInventory)
		return nil, nil
	}
	d.InventoryID = row.InventoryID
	d.UnitPrice = decimal.NewFromFloat(row.UnitPrice)
	return row, nil
}

// Submit places the order. stock may be nil when availability is unknown.
// Validation failures return domain.ErrInvalidInput after a toast.
func (f *OrderForm) Submit(ctx context.Context, d OrderDraft, stock *InventoryRow) (json.RawMessage, error) {
	if err := f.validate.StructPartial(d, orderRequiredFields...); err != nil {
		f.warn(MsgFillRequired)
		return nil, fmt.Errorf("place order: %w: %v", domain.ErrInvalidInput, err)
	}
	if err := f.validate.StructPartial(d, orderAddressFields...); err != nil {
		f.warn(MsgSelectAddresses)
		return nil, fmt.Errorf("place order: %w: %v", domain.ErrInvalidInput, err)
	}
	if stock != nil && d.Quantity > stock.Quantity {
		msg := fmt.Sprintf(msgExceedsStockFmt, stock.Quantity)
		f.notifier.Emit(msg, domain.ToastError, domain.DefaultToastDuration)
		return nil, fmt.Errorf("place order: %w: %s", domain.ErrInvalidInput, msg)
	}

	res, err := f.orders.Place(ctx, d.Payload())
	if err != nil {
		f.log.Warn().Err(err).Int("customer_id", d.CustomerID).Msg("place order failed")
		f.notifier.Emit(MsgOrderFailed, domain.ToastError, domain.DefaultToastDuration)
		return nil, err
	}
	f.notifier.Emit(MsgOrderPlaced, domain.ToastSuccess, domain.DefaultToastDuration)
	return res, nil
}

func (f *OrderForm) warn(msg string) {
	f.notifier.Emit(msg, domain.ToastWarning, domain.DefaultToastDuration)
}
