package pricing

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func feeSnapshot() *Snapshot {
	return &Snapshot{
		Platform: PlatformRates{
			BaseFeeCents:        500,
			PerPackageFeeCents:  100,
			RepackMultiplierPct: 150,
			MaxItemsPerGroup:    20,
		},
		Protections: map[string]Protection{
			ProtectionDoubleBox:  {Code: ProtectionDoubleBox, PriceCents: 500, AddedWeightGrams: 100},
			ProtectionBubbleWrap: {Code: ProtectionBubbleWrap, PriceCents: 300, AddedWeightGrams: 50},
		},
	}
}

func TestCalculateConsolidationFee_EmptyBox(t *testing.T) {
	// Empty SIMPLE box: base fee only, degraded storage floor.
	snap := feeSnapshot()

	got := CalculateConsolidationFee(0, TypeSimple, BoxSizeM, nil, snap)

	assert.Equal(t, int64(500), got.ConsolidationFeeCents)
	assert.Equal(t, int64(200), got.StorageFeeCents)
	assert.True(t, got.StorageDegraded)
	assert.Equal(t, 100, got.TypeMultiplierPct)
}

func TestCalculateConsolidationFee_Repack(t *testing.T) {
	// Three packages, REPACK at 150%: (500 + 100*3) * 1.5 = 1200.
	snap := feeSnapshot()

	got := CalculateConsolidationFee(3, TypeRepack, BoxSizeM, nil, snap)

	assert.Equal(t, int64(1200), got.ConsolidationFeeCents)
	assert.Equal(t, 150, got.TypeMultiplierPct)
	assert.Empty(t, got.UnknownProtections)
}

func TestCalculateConsolidationFee_Protections(t *testing.T) {
	// Repack of 3 plus double box (500) and bubble wrap (300): 2000.
	snap := feeSnapshot()

	got := CalculateConsolidationFee(3, TypeRepack, BoxSizeM,
		[]string{ProtectionDoubleBox, ProtectionBubbleWrap}, snap)

	assert.Equal(t, int64(2000), got.ConsolidationFeeCents)
	assert.Equal(t, int64(500), got.ProtectionCents[ProtectionDoubleBox])
	assert.Equal(t, int64(300), got.ProtectionCents[ProtectionBubbleWrap])
}

func TestCalculateConsolidationFee_UnknownProtectionFlagged(t *testing.T) {
	snap := feeSnapshot()

	got := CalculateConsolidationFee(1, TypeSimple, BoxSizeM, []string{"LASER_SHIELD"}, snap)

	assert.Equal(t, []string{"LASER_SHIELD"}, got.UnknownProtections)
	// Unknown protections contribute nothing to the fee.
	assert.Equal(t, int64(600), got.ConsolidationFeeCents)
}

func TestCalculateConsolidationFee_StoragePolicy(t *testing.T) {
	snap := feeSnapshot()
	snap.Storage = &StorageRates{DailyRatePerItemCents: 120}

	t.Run("flat rate per item", func(t *testing.T) {
		got := CalculateConsolidationFee(4, TypeSimple, BoxSizeM, nil, snap)
		assert.Equal(t, int64(480), got.StorageFeeCents)
		assert.False(t, got.StorageDegraded)
	})

	t.Run("tier rate wins for matching box size", func(t *testing.T) {
		snap.Storage.TierRates = map[BoxSize]int64{BoxSizeXL: 200}
		got := CalculateConsolidationFee(4, TypeSimple, BoxSizeXL, nil, snap)
		assert.Equal(t, int64(800), got.StorageFeeCents)
	})

	t.Run("non-matching tier falls back to flat rate", func(t *testing.T) {
		snap.Storage.TierRates = map[BoxSize]int64{BoxSizeXL: 200}
		got := CalculateConsolidationFee(4, TypeSimple, BoxSizeS, nil, snap)
		assert.Equal(t, int64(480), got.StorageFeeCents)
	})
}

func TestCalculateConsolidationFee_DegradedFallbackFormula(t *testing.T) {
	snap := feeSnapshot()

	cases := []struct {
		count int
		want  int64
	}{
		{0, 200},
		{1, 200},
		{2, 250},
		{5, 400},
	}
	for _, tc := range cases {
		got := CalculateConsolidationFee(tc.count, TypeSimple, BoxSizeM, nil, snap)
		assert.Equal(t, tc.want, got.StorageFeeCents, "count=%d", tc.count)
		assert.True(t, got.StorageDegraded)
	}
}

func TestCalculateConsolidationFee_Deterministic(t *testing.T) {
	snap := feeSnapshot()

	first := CalculateConsolidationFee(3, TypeRepack, BoxSizeL, []string{ProtectionDoubleBox}, snap)
	for i := 0; i < 50; i++ {
		got := CalculateConsolidationFee(3, TypeRepack, BoxSizeL, []string{ProtectionDoubleBox}, snap)
		assert.Equal(t, first, got)
	}
}

func TestCalculateConsolidationFee_Monotonic(t *testing.T) {
	snap := feeSnapshot()

	t.Run("adding a package never decreases the fee", func(t *testing.T) {
		prev := int64(-1)
		for n := 0; n <= 20; n++ {
			got := CalculateConsolidationFee(n, TypeRepack, BoxSizeM, nil, snap)
			assert.GreaterOrEqual(t, got.ConsolidationFeeCents, prev)
			prev = got.ConsolidationFeeCents
		}
	})

	t.Run("adding a protection never decreases the fee", func(t *testing.T) {
		base := CalculateConsolidationFee(3, TypeSimple, BoxSizeM, nil, snap)
		withWrap := CalculateConsolidationFee(3, TypeSimple, BoxSizeM, []string{ProtectionBubbleWrap}, snap)
		assert.GreaterOrEqual(t, withWrap.ConsolidationFeeCents, base.ConsolidationFeeCents)
	})
}

func TestSnapshotValidate(t *testing.T) {
	t.Run("valid snapshot passes", func(t *testing.T) {
		snap := feeSnapshot()
		assert.NoError(t, snap.Validate())
	})

	t.Run("negative base fee rejected", func(t *testing.T) {
		snap := feeSnapshot()
		snap.Platform.BaseFeeCents = -1
		assert.ErrorIs(t, snap.Validate(), ErrInvalidRateConfig)
	})

	t.Run("negative protection price rejected", func(t *testing.T) {
		snap := feeSnapshot()
		snap.Protections["BAD"] = Protection{Code: "BAD", PriceCents: -10}
		assert.ErrorIs(t, snap.Validate(), ErrInvalidRateConfig)
	})

	t.Run("negative storage rate rejected", func(t *testing.T) {
		snap := feeSnapshot()
		snap.Storage = &StorageRates{DailyRatePerItemCents: -5}
		assert.ErrorIs(t, snap.Validate(), ErrInvalidRateConfig)
	})

	t.Run("repack multiplier below 100 rejected", func(t *testing.T) {
		snap := feeSnapshot()
		snap.Platform.RepackMultiplierPct = 90
		assert.ErrorIs(t, snap.Validate(), ErrInvalidRateConfig)
	})

	t.Run("negative carrier bracket rejected", func(t *testing.T) {
		snap := feeSnapshot()
		snap.Carriers = map[string]CarrierTable{
			"abc": {Code: "abc", Brackets: map[ServiceType][]Bracket{
				ServiceStandard: {{MaxWeightGrams: 1000, PriceCents: -1}},
			}},
		}
		assert.ErrorIs(t, snap.Validate(), ErrInvalidRateConfig)
	})
}
