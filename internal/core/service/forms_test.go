package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/kalaiarasan0/farmdesk/internal/core/domain"
)

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func validDraft() OrderDraft {
	return OrderDraft{
		CustomerID:        1,
		CategoryID:        2,
		InventoryID:       3,
		Quantity:          4,
		BillingAddressID:  5,
		ShippingAddressID: 5,
		UnitPrice:         dec("250"),
		Tax:               dec("18"),
		Shipping:          dec("40"),
	}
}

func newOrderForm(api *stubAPI) (*OrderForm, *toastSink) {
	sink := &toastSink{}
	return NewOrderForm(NewOrderService(api), NewInventoryService(api), NewCustomerService(api), NewCategoryService(api), sink, zerolog.Nop()), sink
}

func TestOrderDraft_DiscountSync(t *testing.T) {
	d := validDraft() // gross 1000

	d.SetDiscountPercent(dec("12.5"))
	if !d.DiscountValue.Equal(dec("125")) {
		t.Fatalf("discount value = %s", d.DiscountValue)
	}

	d.SetDiscountValue(dec("333"))
	if !d.DiscountPercent.Equal(dec("33.3")) {
		t.Fatalf("discount percent = %s", d.DiscountPercent)
	}

	totals := d.Totals()
	if !totals.Gross.Equal(dec("1000")) || !totals.Net.Equal(dec("667")) || !totals.Total.Equal(dec("725")) {
		t.Fatalf("unexpected totals %+v", totals)
	}

	empty := OrderDraft{}
	empty.SetDiscountPercent(dec("10"))
	if !empty.DiscountValue.IsZero() {
		t.Fatalf("zero gross must give zero discount")
	}
}

func TestOrderForm_Validation(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*OrderDraft)
		stock   *InventoryRow
		message string
		typ     domain.ToastType
	}{
		{"missing customer", func(d *OrderDraft) { d.CustomerID = 0 }, nil, MsgFillRequired, domain.ToastWarning},
		{"missing quantity", func(d *OrderDraft) { d.Quantity = 0 }, nil, MsgFillRequired, domain.ToastWarning},
		{"missing shipping address", func(d *OrderDraft) { d.ShippingAddressID = 0 }, nil, MsgSelectAddresses, domain.ToastWarning},
		{"over stock", func(d *OrderDraft) { d.Quantity = 9 }, &InventoryRow{Quantity: 8}, "Quantity cannot exceed available stock (8)", domain.ToastError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			api := &stubAPI{}
			form, sink := newOrderForm(api)
			d := validDraft()
			tt.mutate(&d)

			_, err := form.Submit(context.Background(), d, tt.stock)
			if !errors.Is(err, domain.ErrInvalidInput) {
				t.Fatalf("expected ErrInvalidInput, got %v", err)
			}
			if len(api.calls) != 0 {
				t.Fatalf("invalid draft must not be sent")
			}
			if len(sink.toasts) != 1 || sink.toasts[0].Message != tt.message || sink.toasts[0].Type != tt.typ {
				t.Fatalf("toasts = %+v", sink.toasts)
			}
		})
	}
}

func TestOrderForm_SubmitSuccess(t *testing.T) {
	api := &stubAPI{payload: `{"order_id":99}`}
	form, sink := newOrderForm(api)

	d := validDraft()
	d.SetDiscountPercent(dec("10"))
	res, err := form.Submit(context.Background(), d, &InventoryRow{Quantity: 4})
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	if string(res) != `{"order_id":99}` {
		t.Fatalf("unexpected result %s", res)
	}

	body, ok := api.last(t).body.(domain.OrderInput)
	if !ok {
		t.Fatalf("body is %T", api.last(t).body)
	}
	if body.Discount != 0 || len(body.Items) != 1 {
		t.Fatalf("unexpected payload %+v", body)
	}
	item := body.Items[0]
	if item.Quantity != 4 || item.UnitPrice != 250 || item.DiscountValue != 100 || item.DiscountPercent != 10 {
		t.Fatalf("unexpected item %+v", item)
	}
	if len(sink.toasts) != 1 || sink.toasts[0].Message != MsgOrderPlaced || sink.toasts[0].Type != domain.ToastSuccess {
		t.Fatalf("toasts = %+v", sink.toasts)
	}
}

func TestOrderForm_SubmitFailure(t *testing.T) {
	api := &stubAPI{err: &domain.APIError{Status: 409, Message: "Insufficient stock"}}
	form, sink := newOrderForm(api)

	if _, err := form.Submit(context.Background(), validDraft(), nil); err == nil {
		t.Fatalf("expected error")
	}
	if len(sink.toasts) != 1 || sink.toasts[0].Message != MsgOrderFailed {
		t.Fatalf("toasts = %+v", sink.toasts)
	}
}

func TestOrderForm_SelectCategory(t *testing.T) {
	api := &stubAPI{payload: `[{"inventory_id":31,"quantity":6,"unit_price":1200.5}]`}
	form, sink := newOrderForm(api)

	var d OrderDraft
	row, err := form.SelectCategory(context.Background(), &d, 4)
	if err != nil {
		t.Fatalf("select: %v", err)
	}
	if row == nil || d.InventoryID != 31 || !d.UnitPrice.Equal(dec("1200.5")) || d.CategoryID != 4 {
		t.Fatalf("draft not filled: %+v row %+v", d, row)
	}
	if len(sink.toasts) != 0 {
		t.Fatalf("unexpected toasts %+v", sink.toasts)
	}

	api.payload = `[]`
	row, err = form.SelectCategory(context.Background(), &d, 5)
	if err != nil || row != nil {
		t.Fatalf("expected no row, got %+v %v", row, err)
	}
	if d.InventoryID != 0 || !d.UnitPrice.IsZero() {
		t.Fatalf("draft should be cleared: %+v", d)
	}
	if len(sink.toasts) != 1 || sink.toasts[0].Message != MsgNoInventory {
		t.Fatalf("toasts = %+v", sink.toasts)
	}
}

func TestPurchaseForm(t *testing.T) {
	t.Run("rejects non-positive quantity", func(t *testing.T) {
		api := &stubAPI{}
		sink := &toastSink{}
		form := NewPurchaseForm(NewPurchaseService(api), sink, zerolog.Nop())

		_, err := form.Submit(context.Background(), PurchaseDraft{Quantity: 0})
		if !errors.Is(err, domain.ErrInvalidInput) || len(api.calls) != 0 {
			t.Fatalf("expected rejection, got %v", err)
		}
		if sink.toasts[0].Message != MsgPurchaseQuantity || sink.toasts[0].Type != domain.ToastWarning {
			t.Fatalf("toasts = %+v", sink.toasts)
		}
	})

	t.Run("computes totals and posts", func(t *testing.T) {
		api := &stubAPI{payload: `{"id":1}`}
		sink := &toastSink{}
		form := NewPurchaseForm(NewPurchaseService(api), sink, zerolog.Nop())
		form.now = func() time.Time { return time.Date(2024, 3, 9, 10, 0, 0, 0, time.UTC) }

		_, err := form.Submit(context.Background(), PurchaseDraft{
			MaterialName:    "Cattle feed",
			Quantity:        3,
			UnitPrice:       dec("99.99"),
			DiscountPercent: dec("10"),
		})
		if err != nil {
			t.Fatalf("submit: %v", err)
		}

		body := api.last(t).body.(domain.PurchaseInput)
		if body.PurchaseDate != "2024-03-09" {
			t.Fatalf("default date = %q", body.PurchaseDate)
		}
		if body.GrossPrice != 299.97 || body.DiscountAmount != 30 || body.TotalPrice != 269.97 {
			t.Fatalf("unexpected amounts %+v", body)
		}
		if sink.toasts[0].Message != MsgPurchaseCreated {
			t.Fatalf("toasts = %+v", sink.toasts)
		}
	})

	t.Run("failure toast", func(t *testing.T) {
		api := &stubAPI{err: errors.New("boom")}
		sink := &toastSink{}
		form := NewPurchaseForm(NewPurchaseService(api), sink, zerolog.Nop())

		if _, err := form.Submit(context.Background(), PurchaseDraft{Quantity: 1}); err == nil {
			t.Fatalf("expected error")
		}
		if sink.toasts[0].Message != MsgPurchaseFailed || sink.toasts[0].Type != domain.ToastError {
			t.Fatalf("toasts = %+v", sink.toasts)
		}
	})
}

func TestOrderForm_LoadLookups(t *testing.T) {
	api := &stubAPI{payload: `[{"category_id":1,"name":"Gir"}]`}
	form, sink := newOrderForm(api)

	got, err := form.LoadLookups(context.Background())
	if err != nil {
		t.Fatalf("lookups: %v", err)
	}
	if len(got.Categories) != 1 || got.Categories[0].Name != "Gir" || len(got.Customers) == 0 {
		t.Fatalf("unexpected lookups %+v", got)
	}
	if len(api.calls) != 2 || len(sink.toasts) != 0 {
		t.Fatalf("calls = %+v, toasts = %+v", api.calls, sink.toasts)
	}
}

func TestOrderForm_LoadLookupsFailure(t *testing.T) {
	boom := errors.New("lookup down")
	api := &stubAPI{err: boom}
	form, sink := newOrderForm(api)

	if _, err := form.LoadLookups(context.Background()); !errors.Is(err, boom) {
		t.Fatalf("expected wrapped lookup error, got %v", err)
	}
	if len(sink.toasts) != 1 || sink.toasts[0].Message != MsgFormDataLoadError || sink.toasts[0].Type != domain.ToastError {
		t.Fatalf("toasts = %+v", sink.toasts)
	}
}
