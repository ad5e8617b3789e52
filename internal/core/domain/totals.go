package domain

import "github.com/shopspring/decimal"

var hundred = decimal.NewFromInt(100)

// OrderTotals are the derived amounts shown while an order is being drafted.
type OrderTotals struct {
	Gross decimal.Decimal `json:"gross_total"`
	Net   decimal.Decimal `json:"net_total"`
	Total decimal.Decimal `json:"order_total"`
}

// ComputeOrderTotals returns gross = qty × unit price, net = max(0, gross −
// discount) and total = net + tax + shipping.
func ComputeOrderTotals(qty int, unitPrice, discount, tax, shipping decimal.Decimal) OrderTotals {
	gross := decimal.NewFromInt(int64(qty)).Mul(unitPrice)
	net := decimal.Max(decimal.Zero, gross.Sub(discount))
	return OrderTotals{
		Gross: gross,
		Net:   net,
		Total: net.Add(tax).Add(shipping),
	}
}

// DiscountFromPercent converts a percentage of gross into an amount rounded to
// two places. A non-positive gross yields zero.
func DiscountFromPercent(gross, percent decimal.Decimal) decimal.Decimal {
	if !gross.IsPositive() {
		return decimal.Zero
	}
	return gross.Mul(percent).Div(hundred).Round(2)
}

// PercentFromDiscount converts a discount amount into a percentage of gross
// rounded to two places. A non-positive gross yields zero.
func PercentFromDiscount(gross, amount decimal.Decimal) decimal.Decimal {
	if !gross.IsPositive() {
		return decimal.Zero
	}
	return amount.Div(gross).Mul(hundred).Round(2)
}

// PurchaseTotals are the derived amounts of a material purchase.
type PurchaseTotals struct {
	Gross           decimal.Decimal
	DiscountAmount  decimal.Decimal
	DiscountPercent decimal.Decimal
	Total           decimal.Decimal
}

// ComputePurchaseTotals derives gross, discount and total for a purchase. When
// a percentage is given it wins and the amount follows the new gross;
// otherwise the percentage is derived from the amount.
func ComputePurchaseTotals(qty int, unitPrice, discountAmount, discountPercent decimal.Decimal) PurchaseTotals {
	gross := decimal.NewFromInt(int64(qty)).Mul(unitPrice).Round(2)
	amount := discountAmount
	percent := discountPercent
	if percent.IsPositive() {
		amount = DiscountFromPercent(gross, percent)
	} else {
		percent = PercentFromDiscount(gross, amount)
	}
	return PurchaseTotals{
		Gross:           gross,
		DiscountAmount:  amount.Round(2),
		DiscountPercent: percent.Round(2),
		Total:           decimal.Max(decimal.Zero, gross.Sub(amount)).Round(2),
	}
}
