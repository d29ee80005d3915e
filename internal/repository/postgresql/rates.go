package postgresql

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v4"

	"github.com/forwardpoint/backend/internal/consolidation"
	"github.com/forwardpoint/backend/internal/db"
	"github.com/forwardpoint/backend/internal/pricing"
	"github.com/forwardpoint/backend/internal/repository"
)

type RateRepo struct {
	db db.DB
}

func NewRateRepo(db db.DB) consolidation.RateRepository {
	return &RateRepo{db: db}
}

// LoadSnapshot assembles one consistent pricing snapshot from the active
// configuration rows. The snapshot is validated and normalized here so
// calculators downstream never see a malformed rate.
func (r *RateRepo) LoadSnapshot(ctx context.Context) (*pricing.Snapshot, error) {
	platform, err := r.loadPlatform(ctx)
	if err != nil {
		return nil, err
	}

	snap := &pricing.Snapshot{
		Platform: pricing.PlatformRates{
			BaseFeeCents:        platform.BaseFeeCents,
			PerPackageFeeCents:  platform.PerPackageFeeCents,
			RepackMultiplierPct: platform.RepackMultiplierPct,
			MaxItemsPerGroup:    platform.MaxItemsPerGroup,
		},
	}

	if snap.Protections, err = r.loadProtections(ctx); err != nil {
		return nil, err
	}
	if snap.Storage, err = r.loadStorage(ctx); err != nil {
		return nil, err
	}
	if snap.Carriers, err = r.loadCarriers(ctx); err != nil {
		return nil, err
	}

	if err := snap.Validate(); err != nil {
		return nil, err
	}
	snap.Normalize()
	return snap, nil
}

func (r *RateRepo) loadPlatform(ctx context.Context) (*repository.PlatformConfig, error) {
	var cfg repository.PlatformConfig
	err := r.db.Get(ctx, &cfg, `
        SELECT * FROM platform_config
        WHERE is_active = TRUE
        ORDER BY id DESC
        LIMIT 1
    `)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: no active platform configuration", pricing.ErrInvalidRateConfig)
		}
		return nil, err
	}
	return &cfg, nil
}

func (r *RateRepo) loadProtections(ctx context.Context) (map[string]pricing.Protection, error) {
	var rows []*repository.ProtectionService
	err := r.db.Select(ctx, &rows, "SELECT * FROM protection_services WHERE is_active = TRUE")
	if err != nil {
		return nil, err
	}

	protections := make(map[string]pricing.Protection, len(rows))
	for _, row := range rows {
		protections[row.Code] = pricing.Protection{
			Code:             row.Code,
			PriceCents:       row.PriceCents,
			AddedWeightGrams: row.AddedWeightGrams,
		}
	}
	return protections, nil
}

func (r *RateRepo) loadStorage(ctx context.Context) (*pricing.StorageRates, error) {
	var policy repository.StoragePolicy
	err := r.db.Get(ctx, &policy, `
        SELECT * FROM storage_policies
        WHERE is_active = TRUE
        ORDER BY id DESC
        LIMIT 1
    `)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			// No active policy is legal; the fee calculator degrades.
			return nil, nil
		}
		return nil, err
	}

	rates := &pricing.StorageRates{DailyRatePerItemCents: policy.DailyRatePerItemCents}
	if len(policy.TierRates) > 0 {
		if err := json.Unmarshal(policy.TierRates, &rates.TierRates); err != nil {
			return nil, fmt.Errorf("%w: malformed storage tier rates: %v", pricing.ErrInvalidRateConfig, err)
		}
	}
	return rates, nil
}

func (r *RateRepo) loadCarriers(ctx context.Context) (map[string]pricing.CarrierTable, error) {
	var carriers []*repository.Carrier
	err := r.db.Select(ctx, &carriers, "SELECT * FROM carriers WHERE is_active = TRUE")
	if err != nil {
		return nil, err
	}

	tables := make(map[string]pricing.CarrierTable, len(carriers))
	byID := make(map[string]string, len(carriers))
	for _, c := range carriers {
		byID[c.ID] = c.Code
		tables[c.Code] = pricing.CarrierTable{
			Code:               c.Code,
			HasAPI:             c.HasAPI,
			APIBaseURL:         c.APIBaseURL,
			MarkupBP:           c.MarkupBP,
			ProcessingFeeCents: c.ProcessingFeeCents,
			TaxRateBP:          c.TaxRateBP,
			StandardDays:       c.StandardDays,
			ExpressDays:        c.ExpressDays,
			Brackets:           make(map[pricing.ServiceType][]pricing.Bracket),
		}
	}

	var rates []*repository.CarrierRate
	err = r.db.Select(ctx, &rates, "SELECT * FROM carrier_rates WHERE is_active = TRUE")
	if err != nil {
		return nil, err
	}

	for _, rate := range rates {
		code, ok := byID[rate.CarrierID]
		if !ok {
			continue
		}
		table := tables[code]
		svc := pricing.ServiceType(rate.ServiceType)
		table.Brackets[svc] = append(table.Brackets[svc], pricing.Bracket{
			MaxWeightGrams: rate.MaxWeightGrams,
			PriceCents:     rate.PriceCents,
		})
		tables[code] = table
	}

	return tables, nil
}
