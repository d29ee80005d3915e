package pricing

import "go.uber.org/zap"

// Degraded-mode storage pricing, used only when no active storage policy
// exists. Kept from the legacy pricing rules; every activation is logged so
// operations can see the platform is running without a storage policy.
const (
	fallbackStorageBaseCents    = 200
	fallbackStoragePerItemCents = 50
)

// FeeBreakdown is the itemized result of a consolidation fee calculation.
// It is shown to the customer, persisted verbatim at fee freeze and must
// reconcile with what is charged.
type FeeBreakdown struct {
	PackageCount          int              `json:"package_count"`
	BaseFeeCents          int64            `json:"base_fee_cents"`
	PerPackageFeeCents    int64            `json:"per_package_fee_cents"`
	TypeMultiplierPct     int              `json:"type_multiplier_pct"`
	ProtectionCents       map[string]int64 `json:"protection_cents,omitempty"`
	UnknownProtections    []string         `json:"unknown_protections,omitempty"`
	ConsolidationFeeCents int64            `json:"consolidation_fee_cents"`
	StorageFeeCents       int64            `json:"storage_fee_cents"`
	StorageDegraded       bool             `json:"storage_degraded,omitempty"`
}

func (b FeeBreakdown) TotalCents() int64 {
	return b.ConsolidationFeeCents + b.StorageFeeCents
}

// CalculateConsolidationFee prices the consolidation of packageCount packages
// with the given type and protection add-ons against the snapshot.
//
//	fee = (base + perPackage*count) * multiplier + protection prices
//
// An empty box still pays the base fee. Protection codes not present in the
// catalog contribute nothing and are reported in UnknownProtections so the
// caller can flag them instead of silently applying them.
func CalculateConsolidationFee(packageCount int, ctype ConsolidationType, boxSize BoxSize, protections []string, snap *Snapshot) FeeBreakdown {
	multiplierPct := 100
	if ctype == TypeRepack {
		multiplierPct = snap.Platform.RepackMultiplierPct
	}

	breakdown := FeeBreakdown{
		PackageCount:       packageCount,
		BaseFeeCents:       snap.Platform.BaseFeeCents,
		PerPackageFeeCents: snap.Platform.PerPackageFeeCents,
		TypeMultiplierPct:  multiplierPct,
	}

	fee := (snap.Platform.BaseFeeCents + snap.Platform.PerPackageFeeCents*int64(packageCount)) * int64(multiplierPct) / 100

	for _, code := range protections {
		p, ok := snap.Protections[code]
		if !ok {
			breakdown.UnknownProtections = append(breakdown.UnknownProtections, code)
			continue
		}
		if breakdown.ProtectionCents == nil {
			breakdown.ProtectionCents = make(map[string]int64)
		}
		breakdown.ProtectionCents[code] = p.PriceCents
		fee += p.PriceCents
	}

	breakdown.ConsolidationFeeCents = fee
	breakdown.StorageFeeCents, breakdown.StorageDegraded = storageFee(packageCount, boxSize, snap)
	return breakdown
}

func storageFee(packageCount int, boxSize BoxSize, snap *Snapshot) (int64, bool) {
	if snap.Storage == nil {
		zap.L().Warn("no active storage policy, applying degraded fallback storage pricing",
			zap.Int("package_count", packageCount))
		extra := packageCount - 1
		if extra < 0 {
			extra = 0
		}
		return fallbackStorageBaseCents + fallbackStoragePerItemCents*int64(extra), true
	}

	rate := snap.Storage.DailyRatePerItemCents
	if tier, ok := snap.Storage.TierRates[boxSize]; ok {
		rate = tier
	}
	return rate * int64(packageCount), false
}
