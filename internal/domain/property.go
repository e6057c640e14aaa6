package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type TransactionType string

const (
	TransactionTypeLease    TransactionType = "lease"
	TransactionTypeSale     TransactionType = "sale"
	TransactionTypeHomeStay TransactionType = "homestay"
)

// ParseTransactionType maps a route/request value onto a known transaction
// type. Unknown values fall back to lease.
func ParseTransactionType(s string) TransactionType {
	switch s {
	case string(TransactionTypeSale), "Sale":
		return TransactionTypeSale
	case string(TransactionTypeHomeStay), "home-stay", "Home Stay", "HomeStay":
		return TransactionTypeHomeStay
	default:
		return TransactionTypeLease
	}
}

// Label returns the wire label used by the bulk upload API
// ("Lease", "Sale", "Home Stay").
func (t TransactionType) Label() string {
	switch t {
	case TransactionTypeSale:
		return "Sale"
	case TransactionTypeHomeStay:
		return "Home Stay"
	default:
		return "Lease"
	}
}

type PropertyStatus string

const (
	PropertyStatusDraft     PropertyStatus = "DRAFT"
	PropertyStatusPublished PropertyStatus = "PUBLISHED"
)

type Property struct {
	ID              int32           `json:"id"`
	ProjectID       int32           `json:"project_id"`
	ZoneID          int32           `json:"zone_id"`
	BlockID         int32           `json:"block_id"`
	PropertyNumber  string          `json:"property_number"`
	PropertyTypeID  int32           `json:"property_type_id"`
	TransactionType TransactionType `json:"transaction_type"`
	Bedrooms        int32           `json:"bedrooms"`
	Bathrooms       int32           `json:"bathrooms"`
	UnitSize        decimal.Decimal `json:"unit_size"`
	Furnishing      string          `json:"furnishing"`
	View            string          `json:"view"`
	Title           string          `json:"title"`
	Description     string          `json:"description"`
	Price           decimal.Decimal `json:"price"`
	CurrencyCode    string          `json:"currency_code"`
	AvailableFrom   *string         `json:"available_from,omitempty"` // YYYY-MM-DD, unset for homestay
	Status          PropertyStatus  `json:"status"`
	CreatedOn       time.Time       `json:"created_on"`
	UpdatedOn       time.Time       `json:"updated_on"`
	DeletedOn       *time.Time      `json:"deleted_on,omitempty"`
}

// PropertyFilter narrows property listings in the admin area.
type PropertyFilter struct {
	TransactionType TransactionType
	ProjectID       int32
	ZoneID          int32
	Status          PropertyStatus
	Trashed         bool // list trash instead of live properties
}
