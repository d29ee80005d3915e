package pricing

import (
	"fmt"
	"sort"
)

// Snapshot is an immutable view of the platform rate configuration, fetched
// once per request and passed into every calculator call so a single quote
// never mixes two configuration states.
type Snapshot struct {
	Platform    PlatformRates
	Protections map[string]Protection
	// Storage is nil when no active storage policy exists; the fee
	// calculator then uses the degraded fallback formula.
	Storage  *StorageRates
	Carriers map[string]CarrierTable
}

type PlatformRates struct {
	BaseFeeCents        int64
	PerPackageFeeCents  int64
	RepackMultiplierPct int
	MaxItemsPerGroup    int
}

type Protection struct {
	Code             string
	PriceCents       int64
	AddedWeightGrams int
}

type StorageRates struct {
	DailyRatePerItemCents int64
	// TierRates overrides the flat rate per box size when non-empty.
	TierRates map[BoxSize]int64
}

// CarrierTable is one carrier's pricing setup: the locally configured weight
// brackets plus markup/processing/tax parameters and, optionally, an API
// endpoint that can supply the base price instead of the local table.
type CarrierTable struct {
	Code               string
	HasAPI             bool
	APIBaseURL         string
	MarkupBP           int
	ProcessingFeeCents int64
	TaxRateBP          int
	StandardDays       int
	ExpressDays        int
	Brackets           map[ServiceType][]Bracket
}

type Bracket struct {
	MaxWeightGrams int
	PriceCents     int64
}

// Validate rejects a snapshot whose rates cannot be priced against. This runs
// at load time so calculations never have to clamp or default a bad rate.
func (s *Snapshot) Validate() error {
	if s.Platform.BaseFeeCents < 0 {
		return fmt.Errorf("%w: base fee is negative (%d)", ErrInvalidRateConfig, s.Platform.BaseFeeCents)
	}
	if s.Platform.PerPackageFeeCents < 0 {
		return fmt.Errorf("%w: per-package fee is negative (%d)", ErrInvalidRateConfig, s.Platform.PerPackageFeeCents)
	}
	if s.Platform.RepackMultiplierPct < 100 {
		return fmt.Errorf("%w: repack multiplier %d%% is below 100%%", ErrInvalidRateConfig, s.Platform.RepackMultiplierPct)
	}
	if s.Platform.MaxItemsPerGroup <= 0 {
		return fmt.Errorf("%w: max items per group must be positive", ErrInvalidRateConfig)
	}

	for code, p := range s.Protections {
		if p.PriceCents < 0 {
			return fmt.Errorf("%w: protection %s has negative price", ErrInvalidRateConfig, code)
		}
		if p.AddedWeightGrams < 0 {
			return fmt.Errorf("%w: protection %s has negative weight", ErrInvalidRateConfig, code)
		}
	}

	if s.Storage != nil {
		if s.Storage.DailyRatePerItemCents < 0 {
			return fmt.Errorf("%w: storage daily rate is negative", ErrInvalidRateConfig)
		}
		for size, rate := range s.Storage.TierRates {
			if rate < 0 {
				return fmt.Errorf("%w: storage tier %s has negative rate", ErrInvalidRateConfig, size)
			}
		}
	}

	for code, c := range s.Carriers {
		if c.MarkupBP < 0 || c.TaxRateBP < 0 || c.ProcessingFeeCents < 0 {
			return fmt.Errorf("%w: carrier %s has negative pricing parameter", ErrInvalidRateConfig, code)
		}
		for svc, brackets := range c.Brackets {
			for _, b := range brackets {
				if b.MaxWeightGrams <= 0 {
					return fmt.Errorf("%w: carrier %s %s bracket has non-positive weight bound", ErrInvalidRateConfig, code, svc)
				}
				if b.PriceCents < 0 {
					return fmt.Errorf("%w: carrier %s %s bracket has negative price", ErrInvalidRateConfig, code, svc)
				}
			}
		}
	}

	return nil
}

// Normalize sorts every bracket list by weight bound so lookup can take the
// first covering bracket.
func (s *Snapshot) Normalize() {
	for _, c := range s.Carriers {
		for svc := range c.Brackets {
			brackets := c.Brackets[svc]
			sort.Slice(brackets, func(i, j int) bool {
				return brackets[i].MaxWeightGrams < brackets[j].MaxWeightGrams
			})
		}
	}
}
