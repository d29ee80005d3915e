package pricing

// Canonical box size to tare weight table. This is the single owner of these
// constants; all call sites resolve through TareGrams.
var boxTareGrams = map[BoxSize]int{
	BoxSizeXS:   50,
	BoxSizeS:    100,
	BoxSizeM:    150,
	BoxSizeL:    250,
	BoxSizeXL:   400,
	BoxSizeXXL:  600,
	BoxSizeXXXL: 800,
}

// DefaultTareGrams is used while a group has no box size chosen yet.
const DefaultTareGrams = 200

func TareGrams(size BoxSize) int {
	if tare, ok := boxTareGrams[size]; ok {
		return tare
	}
	return DefaultTareGrams
}

// PackageWeight carries the two weight readings of a package. The warehouse
// measurement wins over the client declaration once present.
type PackageWeight struct {
	DeclaredGrams  int
	ConfirmedGrams *int
}

func (w PackageWeight) BillableGrams() int {
	if w.ConfirmedGrams != nil {
		return *w.ConfirmedGrams
	}
	return w.DeclaredGrams
}

// ResolveBillableWeight derives the weight a consolidation box is billed at:
// box tare plus the billable weight of every member package plus the added
// weight of each selected protection known to the catalog. An empty box still
// weighs its tare.
func ResolveBillableWeight(size BoxSize, packages []PackageWeight, protections []string, snap *Snapshot) int {
	total := TareGrams(size)
	for _, w := range packages {
		if g := w.BillableGrams(); g > 0 {
			total += g
		}
	}
	for _, code := range protections {
		if p, ok := snap.Protections[code]; ok {
			total += p.AddedWeightGrams
		}
	}
	return total
}
