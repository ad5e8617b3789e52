package domain

import (
	"net/url"
	"strconv"
	"time"
)

// DefaultPageLimit is the page size used by every list screen.
const DefaultPageLimit = 50

// Page is a limit/offset window over a list endpoint.
type Page struct {
	Limit  int
	Offset int
}

// Values renders the page as query parameters, applying defaults for a zero
// or negative limit and clamping a negative offset.
func (p Page) Values() url.Values {
	limit := p.Limit
	if limit <= 0 {
		limit = DefaultPageLimit
	}
	offset := p.Offset
	if offset < 0 {
		offset = 0
	}
	v := url.Values{}
	v.Set("limit", strconv.Itoa(limit))
	v.Set("offset", strconv.Itoa(offset))
	return v
}

// Animal statuses tracked by the dashboard.
const (
	AnimalActive = "active"
	AnimalSold   = "sold"
	AnimalDead   = "dead"
)

type AnimalInput struct {
	CategoryID      int     `json:"category_id"                validate:"required,gt=0"`
	Gender          string  `json:"gender"                     validate:"required,oneof=male female"`
	BirthDate       string  `json:"birth_date,omitempty"       validate:"omitempty,datetime=2006-01-02"`
	PurchaseDate    string  `json:"purchase_date,omitempty"    validate:"omitempty,datetime=2006-01-02"`
	Source          string  `json:"source,omitempty"`
	SourceReference string  `json:"source_reference,omitempty"`
	PurchasePrice   float64 `json:"purchase_price"             validate:"gte=0"`
	Status          string  `json:"status"                     validate:"required"`
}

// Animal is a tracked animal as the backend returns it.
type Animal struct {
	ID    int    `json:"id"`
	TagID string `json:"tag_id"`
	AnimalInput
	CreatedAt time.Time `json:"created_at"`
}

type AnimalEventInput struct {
	AnimalID   int     `json:"animal_id"             validate:"required,gt=0"`
	EventType  string  `json:"event_type"            validate:"required"`
	EventDate  string  `json:"event_date"            validate:"required"`
	MilkLitres float64 `json:"milk_litres,omitempty" validate:"gte=0"`
	Notes      string  `json:"notes,omitempty"`
}

type InventoryMovementInput struct {
	InventoryID  int    `json:"inventory_id"  validate:"required,gt=0"`
	AnimalID     int    `json:"animal_id"     validate:"required,gt=0"`
	MovementType string `json:"movement_type" validate:"required"`
	Notes        string `json:"notes,omitempty"`
}

type CategoryInput struct {
	SKU         string  `json:"sku"         validate:"required"`
	Species     string  `json:"species"     validate:"required"`
	Name        string  `json:"name"        validate:"required"`
	Description string  `json:"description,omitempty"`
	BasePrice   float64 `json:"base_price"  validate:"gte=0"`
	Specs       string  `json:"specs,omitempty"`
}

// Category is an animal product line (species + breed) sold by the farm.
type Category struct {
	ID int `json:"category_id"`
	CategoryInput
}

// CategoryLookup is the short form used by dropdowns.
type CategoryLookup struct {
	CategoryID int    `json:"category_id"`
	Name       string `json:"name"`
}

type CustomerInput struct {
	FirstName string `json:"first_name" validate:"required"`
	LastName  string `json:"last_name,omitempty"`
	Email     string `json:"email"      validate:"required,email"`
	Phone     string `json:"phone"      validate:"required"`
}

// CustomerFilter narrows customer counts and listings. CountType is one of
// "all", "name" or "phone".
type CustomerFilter struct {
	CountType string
	Name      string
	Phone     string
}

// Apply adds the non-empty filter fields to v.
func (f CustomerFilter) Apply(v url.Values) url.Values {
	if v == nil {
		v = url.Values{}
	}
	if f.CountType != "" {
		v.Set("count_type", f.CountType)
	}
	if f.Name != "" {
		v.Set("name", f.Name)
	}
	if f.Phone != "" {
		v.Set("phone", f.Phone)
	}
	return v
}

type AddressInput struct {
	CustomerID int    `json:"customer_id" validate:"required,gt=0"`
	Label      string `json:"label,omitempty"`
	Line1      string `json:"line1"       validate:"required"`
	Line2      string `json:"line2,omitempty"`
	City       string `json:"city"        validate:"required"`
	State      string `json:"state"       validate:"required"`
	PostalCode string `json:"postal_code" validate:"required"`
	Country    string `json:"country"`
}

type OrderItemInput struct {
	CategoryID      int     `json:"category_id"`
	InventoryID     int     `json:"inventory_id"`
	Quantity        int     `json:"quantity"`
	UnitPrice       float64 `json:"unit_price"`
	DiscountValue   float64 `json:"discount_value"`
	DiscountPercent float64 `json:"discount_percent"`
}

type OrderInput struct {
	CustomerID        int              `json:"customer_id"`
	BillingAddressID  int              `json:"billing_address_id"`
	ShippingAddressID int              `json:"shipping_address_id"`
	Shipping          float64          `json:"shipping"`
	Tax               float64          `json:"tax"`
	Discount          float64          `json:"discount"`
	Items             []OrderItemInput `json:"items"`
}

// Order statuses accepted by the status update endpoint.
const (
	OrderPending   = "pending"
	OrderConfirmed = "confirmed"
	OrderShipped   = "shipped"
	OrderDelivered = "delivered"
	OrderCancelled = "cancelled"
)

type PurchaseInput struct {
	MaterialName        string  `json:"material_name"`
	TypeOfMaterial      string  `json:"type_of_material"`
	PurchaseDate        string  `json:"purchase_date"`
	Notes               string  `json:"notes"`
	MaterialExpiryDate  string  `json:"material_expiry_date"`
	Quantity            int     `json:"quantity"`
	UnitPrice           float64 `json:"unit_price"`
	GrossPrice          float64 `json:"gross_price"`
	DiscountAmount      float64 `json:"discount_amount"`
	DiscountPercentage  float64 `json:"discount_percentage"`
	TotalPrice          float64 `json:"total_price"`
	BatchNumber         string  `json:"batch_number"`
	Supplier            string  `json:"supplier"`
	MaterialDescription string  `json:"material_description"`
}

// PurchaseFilter narrows the material purchase listing. Dates are YYYY-MM-DD.
type PurchaseFilter struct {
	StartDate  string
	EndDate    string
	MaterialID string
	SupplierID string
}

// Apply adds the non-empty filter fields to v.
func (f PurchaseFilter) Apply(v url.Values) url.Values {
	if v == nil {
		v = url.Values{}
	}
	if f.StartDate != "" {
		v.Set("start_date", f.StartDate)
	}
	if f.EndDate != "" {
		v.Set("end_date", f.EndDate)
	}
	if f.MaterialID != "" {
		v.Set("material_id", f.MaterialID)
	}
	if f.SupplierID != "" {
		v.Set("supplier_id", f.SupplierID)
	}
	return v
}

type OrderStatusCount struct {
	Status string `json:"status"`
	Count  int    `json:"count"`
}

type DashboardStats struct {
	TotalAnimalTypes           int                `json:"total_animal_types"`
	TrackingAnimalStatusCounts map[string]int     `json:"tracking_animal_status_counts"`
	OrderStatusCounts          []OrderStatusCount `json:"order_status_counts"`
}

// Count is the body of every /count endpoint.
type Count struct {
	Count int64 `json:"count"`
}
