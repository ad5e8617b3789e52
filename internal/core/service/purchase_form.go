package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/kalaiarasan0/farmdesk/internal/core/domain"
	"github.com/kalaiarasan0/farmdesk/internal/core/ports"
)

// PurchaseDraft is a material purchase being filled in. Gross, discount and
// total are derived on submit.
type PurchaseDraft struct {
	MaterialName        string
	TypeOfMaterial      string
	PurchaseDate        string
	MaterialExpiryDate  string
	Notes               string
	BatchNumber         string
	Supplier            string
	MaterialDescription string

	Quantity        int
	UnitPrice       decimal.Decimal
	DiscountAmount  decimal.Decimal
	DiscountPercent decimal.Decimal
}

func (d PurchaseDraft) Totals() domain.PurchaseTotals {
	return domain.ComputePurchaseTotals(d.Quantity, d.UnitPrice, d.DiscountAmount, d.DiscountPercent)
}

// Payload fills in the derived amounts. An empty purchase date means today.
func (d PurchaseDraft) Payload(now time.Time) domain.PurchaseInput {
	t := d.Totals()
	date := d.PurchaseDate
	if date == "" {
		date = now.Format(time.DateOnly)
	}
	return domain.PurchaseInput{
		MaterialName:        d.MaterialName,
		TypeOfMaterial:      d.TypeOfMaterial,
		PurchaseDate:        date,
		Notes:               d.Notes,
		MaterialExpiryDate:  d.MaterialExpiryDate,
		Quantity:            d.Quantity,
		UnitPrice:           d.UnitPrice.InexactFloat64(),
		GrossPrice:          t.Gross.InexactFloat64(),
		DiscountAmount:      t.DiscountAmount.InexactFloat64(),
		DiscountPercentage:  t.DiscountPercent.InexactFloat64(),
		TotalPrice:          t.Total.InexactFloat64(),
		BatchNumber:         d.BatchNumber,
		Supplier:            d.Supplier,
		MaterialDescription: d.MaterialDescription,
	}
}

type PurchaseForm struct {
	purchases *PurchaseService
	notifier  ports.Notifier
	log       zerolog.Logger
	now       func() time.Time
}

func NewPurchaseForm(purchases *PurchaseService, notifier ports.Notifier, log zerolog.Logger) *PurchaseForm {
	return &PurchaseForm{purchases: purchases, notifier: notifier, log: log, now: time.Now}
}

func (f *PurchaseForm) Submit(ctx context.Context, d PurchaseDraft) (json.RawMessage, error) {
	if d.Quantity <= 0 {
		f.notifier.Emit(MsgPurchaseQuantity, domain.ToastWarning, domain.DefaultToastDuration)
		return nil, fmt.Errorf("create purchase: %w: quantity %d", domain.ErrInvalidInput, d.Quantity)
	}

	res, err := f.purchases.Create(ctx, d.Payload(f.now()))
	if err != nil {
		f.log.Warn().Err(err).Str("material", d.MaterialName).Msg("create purchase failed")
		f.notifier.Emit(MsgPurchaseFailed, domain.ToastError, domain.DefaultToastDuration)
		return nil, err
	}
	f.notifier.Emit(MsgPurchaseCreated, domain.ToastSuccess, domain.DefaultToastDuration)
	return res, nil
}
