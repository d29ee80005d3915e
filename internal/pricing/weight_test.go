package pricing

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func intPtr(v int) *int { return &v }

func weightSnapshot() *Snapshot {
	return &Snapshot{
		Platform: PlatformRates{BaseFeeCents: 500, PerPackageFeeCents: 100, RepackMultiplierPct: 150, MaxItemsPerGroup: 20},
		Protections: map[string]Protection{
			ProtectionDoubleBox:  {Code: ProtectionDoubleBox, PriceCents: 500, AddedWeightGrams: 100},
			ProtectionBubbleWrap: {Code: ProtectionBubbleWrap, PriceCents: 300, AddedWeightGrams: 50},
		},
	}
}

func TestTareGrams(t *testing.T) {
	assert.Equal(t, 50, TareGrams(BoxSizeXS))
	assert.Equal(t, 150, TareGrams(BoxSizeM))
	assert.Equal(t, 800, TareGrams(BoxSizeXXXL))

	t.Run("unknown or unset size falls back to default", func(t *testing.T) {
		assert.Equal(t, DefaultTareGrams, TareGrams(""))
		assert.Equal(t, DefaultTareGrams, TareGrams("GIGANTIC"))
	})
}

func TestPackageWeight_ConfirmedWins(t *testing.T) {
	w := PackageWeight{DeclaredGrams: 900, ConfirmedGrams: intPtr(1100)}
	assert.Equal(t, 1100, w.BillableGrams())

	w = PackageWeight{DeclaredGrams: 900}
	assert.Equal(t, 900, w.BillableGrams())
}

func TestResolveBillableWeight(t *testing.T) {
	snap := weightSnapshot()

	t.Run("empty box weighs its tare only", func(t *testing.T) {
		got := ResolveBillableWeight(BoxSizeM, nil, nil, snap)
		assert.Equal(t, 150, got)
	})

	t.Run("additive over packages and protections", func(t *testing.T) {
		packages := []PackageWeight{
			{DeclaredGrams: 500},
			{DeclaredGrams: 300, ConfirmedGrams: intPtr(400)},
			{DeclaredGrams: 250},
		}
		protections := []string{ProtectionDoubleBox, ProtectionBubbleWrap}

		got := ResolveBillableWeight(BoxSizeL, packages, protections, snap)
		// tare 250 + packages 500+400+250 + protections 100+50
		assert.Equal(t, 1550, got)
	})

	t.Run("unknown protection adds no weight", func(t *testing.T) {
		got := ResolveBillableWeight(BoxSizeXS, nil, []string{"LASER_SHIELD"}, snap)
		assert.Equal(t, 50, got)
	})

	t.Run("adding a package never decreases the weight", func(t *testing.T) {
		packages := []PackageWeight{}
		prev := ResolveBillableWeight(BoxSizeM, packages, nil, snap)
		for i := 0; i < 10; i++ {
			packages = append(packages, PackageWeight{DeclaredGrams: 100 * (i + 1)})
			got := ResolveBillableWeight(BoxSizeM, packages, nil, snap)
			assert.GreaterOrEqual(t, got, prev)
			prev = got
		}
	})
}
