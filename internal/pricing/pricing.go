// Package pricing implements the consolidation fee engine: billable weight
// resolution, consolidation/storage fee calculation and freight quoting
// against carrier rate tables. All calculations are integer arithmetic on
// cents and grams so that identical inputs always produce identical output.
package pricing

import "errors"

var (
	// ErrInvalidRateConfig marks a configuration row that cannot be priced
	// against (missing or negative rate). Raised at snapshot load, never
	// during a calculation.
	ErrInvalidRateConfig = errors.New("invalid rate configuration")

	// ErrUnknownCarrier is returned when a quote names a carrier code absent
	// from the snapshot.
	ErrUnknownCarrier = errors.New("unknown carrier")

	// ErrFreightUnavailable is returned when no rate bracket covers the
	// shipment and no carrier API answer is available. Callers must surface
	// it instead of inventing a price.
	ErrFreightUnavailable = errors.New("freight pricing unavailable")
)

type BoxSize string

const (
	BoxSizeXS   BoxSize = "XS"
	BoxSizeS    BoxSize = "S"
	BoxSizeM    BoxSize = "M"
	BoxSizeL    BoxSize = "L"
	BoxSizeXL   BoxSize = "XL"
	BoxSizeXXL  BoxSize = "XXL"
	BoxSizeXXXL BoxSize = "XXXL"
)

type ConsolidationType string

const (
	TypeSimple ConsolidationType = "SIMPLE"
	TypeRepack ConsolidationType = "REPACK"
)

type ServiceType string

const (
	ServiceStandard ServiceType = "STANDARD"
	ServiceExpress  ServiceType = "EXPRESS"
)

// Well-known protection service codes. The catalog is configuration driven;
// these constants only exist for the codes the calculators reference in tests
// and seeds.
const (
	ProtectionDoubleBox  = "DOUBLE_BOX"
	ProtectionBubbleWrap = "BUBBLE_WRAP"
)

func ValidBoxSize(s BoxSize) bool {
	_, ok := boxTareGrams[s]
	return ok
}

func ValidConsolidationType(t ConsolidationType) bool {
	return t == TypeSimple || t == TypeRepack
}

func ValidServiceType(t ServiceType) bool {
	return t == ServiceStandard || t == ServiceExpress
}
