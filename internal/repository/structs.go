package repository

import (
	"encoding/json"
	"errors"
	"time"
)

var ErrObjectNotFound = errors.New("not found")

// Package is a single purchased item registered by a client and handled at
// the warehouse. ConfirmedWeightGrams is nil until the warehouse weighs the
// package; once set it is authoritative for billing.
type Package struct {
	ID                   string    `db:"id"`
	OwnerID              string    `db:"owner_id"`
	Description          string    `db:"description"`
	Status               string    `db:"status"`
	WeightGrams          int       `db:"weight_grams"`
	ConfirmedWeightGrams *int      `db:"confirmed_weight_grams"`
	PurchasePriceCents   int64     `db:"purchase_price_cents"`
	DeclaredValueCents   int64     `db:"declared_value_cents"`
	LengthCm             int       `db:"length_cm"`
	WidthCm              int       `db:"width_cm"`
	HeightCm             int       `db:"height_cm"`
	Store                string    `db:"store"`
	OrderNumber          string    `db:"order_number"`
	InboundCarrier       string    `db:"inbound_carrier"`
	InboundTracking      string    `db:"inbound_tracking"`
	GroupID              *string   `db:"group_id"`
	CreatedAt            time.Time `db:"created_at"`
	UpdatedAt            time.Time `db:"updated_at"`
}

// ConsolidationGroup is a shipping box aggregating packages. Fee columns stay
// NULL until fees are frozen; after the group ships they are immutable.
type ConsolidationGroup struct {
	ID                    string          `db:"id"`
	OwnerID               string          `db:"owner_id"`
	Name                  string          `db:"name"`
	Notes                 string          `db:"notes"`
	ConsolidationType     string          `db:"consolidation_type"`
	Status                string          `db:"status"`
	BoxSize               *string         `db:"box_size"`
	CurrentWeightGrams    int             `db:"current_weight_grams"`
	FinalWeightGrams      *int            `db:"final_weight_grams"`
	ConsolidationFeeCents *int64          `db:"consolidation_fee_cents"`
	StorageFeeCents       *int64          `db:"storage_fee_cents"`
	FeeBreakdown          json.RawMessage `db:"fee_breakdown"`
	ExtraProtection       []string        `db:"extra_protection"`
	CustomInstructions    string          `db:"custom_instructions"`
	RemoveInvoice         bool            `db:"remove_invoice"`
	DeliveryAddressID     string          `db:"delivery_address_id"`
	CarrierID             *string         `db:"carrier_id"`
	TrackingCode          *string         `db:"tracking_code"`
	MaxItems              int             `db:"max_items"`
	OpenedAt              time.Time       `db:"opened_at"`
	ConsolidationDeadline time.Time       `db:"consolidation_deadline"`
	ShippingDeadline      time.Time       `db:"shipping_deadline"`
	ClosedAt              *time.Time      `db:"closed_at"`
	CreatedAt             time.Time       `db:"created_at"`
	UpdatedAt             time.Time       `db:"updated_at"`
}

type GroupHistoryEntry struct {
	ID        int64     `db:"id"`
	GroupID   string    `db:"group_id"`
	Status    string    `db:"status"`
	ChangedAt time.Time `db:"changed_at"`
}

type PackageHistoryEntry struct {
	ID        int64     `db:"id"`
	PackageID string    `db:"package_id"`
	Status    string    `db:"status"`
	ChangedAt time.Time `db:"changed_at"`
}

// PlatformConfig is the active platform fee configuration row.
type PlatformConfig struct {
	ID                  string `db:"id"`
	BaseFeeCents        int64  `db:"base_fee_cents"`
	PerPackageFeeCents  int64  `db:"per_package_fee_cents"`
	RepackMultiplierPct int    `db:"repack_multiplier_pct"`
	MaxItemsPerGroup    int    `db:"max_items_per_group"`
	IsActive            bool   `db:"is_active"`
}

type ProtectionService struct {
	ID               string `db:"id"`
	Code             string `db:"code"`
	Name             string `db:"name"`
	PriceCents       int64  `db:"price_cents"`
	AddedWeightGrams int    `db:"added_weight_grams"`
	IsActive         bool   `db:"is_active"`
}

// StoragePolicy prices warehouse storage. TierRates, when present, is a JSON
// object mapping box size to a per-item daily rate and takes precedence over
// the flat DailyRatePerItemCents.
type StoragePolicy struct {
	ID                    string          `db:"id"`
	DailyRatePerItemCents int64           `db:"daily_rate_per_item_cents"`
	TierRates             json.RawMessage `db:"tier_rates"`
	IsActive              bool            `db:"is_active"`
}

type Carrier struct {
	ID                 string `db:"id"`
	Code               string `db:"code"`
	Name               string `db:"name"`
	HasAPI             bool   `db:"has_api"`
	APIBaseURL         string `db:"api_base_url"`
	MarkupBP           int    `db:"markup_bp"`
	ProcessingFeeCents int64  `db:"processing_fee_cents"`
	TaxRateBP          int    `db:"tax_rate_bp"`
	StandardDays       int    `db:"standard_days"`
	ExpressDays        int    `db:"express_days"`
	IsActive           bool   `db:"is_active"`
}

// CarrierRate is one weight bracket of a carrier's rate table. The governing
// bracket for a shipment is the first row, ordered by max weight, whose
// MaxWeightGrams covers the billable weight.
type CarrierRate struct {
	ID             string `db:"id"`
	CarrierID      string `db:"carrier_id"`
	ServiceType    string `db:"service_type"`
	MaxWeightGrams int    `db:"max_weight_grams"`
	PriceCents     int64  `db:"price_cents"`
	IsActive       bool   `db:"is_active"`
}
