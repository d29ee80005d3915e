package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v4"

	"github.com/forwardpoint/backend/internal/consolidation"
	"github.com/forwardpoint/backend/internal/db"
	"github.com/forwardpoint/backend/internal/repository"
)

type GroupRepo struct {
	db db.DB
}

func NewGroupRepo(db db.DB) *GroupRepo {
	return &GroupRepo{db: db}
}

var _ consolidation.GroupRepository = (*GroupRepo)(nil)

func (r *GroupRepo) Create(ctx context.Context, group *repository.ConsolidationGroup) error {
	_, err := r.db.Exec(ctx, `
        INSERT INTO consolidation_groups (
            id, owner_id, name, notes, consolidation_type, status,
            current_weight_grams, extra_protection, custom_instructions,
            remove_invoice, delivery_address_id, max_items,
            opened_at, consolidation_deadline, shipping_deadline,
            created_at, updated_at
        ) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17)
    `, group.ID, group.OwnerID, group.Name, group.Notes, group.ConsolidationType, group.Status,
		group.CurrentWeightGrams, group.ExtraProtection, group.CustomInstructions,
		group.RemoveInvoice, group.DeliveryAddressID, group.MaxItems,
		group.OpenedAt, group.ConsolidationDeadline, group.ShippingDeadline,
		group.CreatedAt, group.UpdatedAt)
	return err
}

func (r *GroupRepo) GetByID(ctx context.Context, id string) (*repository.ConsolidationGroup, error) {
	var group repository.ConsolidationGroup
	err := r.db.Get(ctx, &group, "SELECT * FROM consolidation_groups WHERE id = $1", id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrObjectNotFound
		}
		return nil, err
	}
	return &group, nil
}

func (r *GroupRepo) GetByOwner(ctx context.Context, ownerID string, limit int) ([]*repository.ConsolidationGroup, error) {
	query := "SELECT * FROM consolidation_groups WHERE owner_id = $1 ORDER BY created_at DESC"
	args := []interface{}{ownerID}

	if limit > 0 {
		query += " LIMIT $2"
		args = append(args, limit)
	}

	var groups []*repository.ConsolidationGroup
	err := r.db.Select(ctx, &groups, query, args...)
	return groups, err
}

func (r *GroupRepo) GetByIDTx(ctx context.Context, tx db.Tx, id string) (*repository.ConsolidationGroup, error) {
	var group repository.ConsolidationGroup
	err := tx.Get(ctx, &group, "SELECT * FROM consolidation_groups WHERE id = $1 FOR UPDATE", id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrObjectNotFound
		}
		return nil, err
	}
	return &group, nil
}

func (r *GroupRepo) UpdateRequestTx(ctx context.Context, tx db.Tx, group *repository.ConsolidationGroup) error {
	_, err := tx.Exec(ctx, `
        UPDATE consolidation_groups
        SET
            box_size = $1,
            consolidation_type = $2,
            extra_protection = $3,
            custom_instructions = $4,
            remove_invoice = $5,
            carrier_id = $6,
            updated_at = now()
        WHERE id = $7
    `, group.BoxSize, group.ConsolidationType, group.ExtraProtection,
		group.CustomInstructions, group.RemoveInvoice, group.CarrierID, group.ID)
	return err
}

// UpdateStatusCASTx swaps the status only when the row still carries the
// expected one. A zero row count means a concurrent writer won the race.
func (r *GroupRepo) UpdateStatusCASTx(ctx context.Context, tx db.Tx, id, from, to string, closedAt *time.Time) (bool, error) {
	tag, err := tx.Exec(ctx, `
        UPDATE consolidation_groups
        SET
            status = $1,
            closed_at = COALESCE($2, closed_at),
            updated_at = now()
        WHERE id = $3 AND status = $4
    `, to, closedAt, id, from)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

func (r *GroupRepo) UpdateCurrentWeightTx(ctx context.Context, tx db.Tx, id string, grams int) error {
	_, err := tx.Exec(ctx, `
        UPDATE consolidation_groups
        SET current_weight_grams = $1, updated_at = now()
        WHERE id = $2
    `, grams, id)
	return err
}

// FreezeFeesTx writes the measured weight, both fee amounts and the itemized
// breakdown in one statement so the frozen set is never partially visible.
func (r *GroupRepo) FreezeFeesTx(ctx context.Context, tx db.Tx, id string, finalWeightGrams int, consolidationFeeCents, storageFeeCents int64, breakdown []byte) error {
	_, err := tx.Exec(ctx, `
        UPDATE consolidation_groups
        SET
            final_weight_grams = $1,
            consolidation_fee_cents = $2,
            storage_fee_cents = $3,
            fee_breakdown = $4,
            updated_at = now()
        WHERE id = $5
    `, finalWeightGrams, consolidationFeeCents, storageFeeCents, breakdown, id)
	return err
}

// GetAllActiveGroups returns every group that has not reached a terminal or
// shipped state, used to warm the in-memory cache at startup.
func (r *GroupRepo) GetAllActiveGroups(ctx context.Context) ([]*repository.ConsolidationGroup, error) {
	var groups []*repository.ConsolidationGroup
	err := r.db.Select(ctx, &groups, `
        SELECT * FROM consolidation_groups
        WHERE status IN ('OPEN', 'PENDING', 'IN_PROGRESS', 'READY_TO_SHIP')
        ORDER BY created_at ASC
    `)
	if err != nil {
		return nil, fmt.Errorf("failed to get active consolidation groups: %w", err)
	}
	return groups, nil
}

func (r *GroupRepo) SetTracking(ctx context.Context, id, trackingCode, carrierID string) (bool, error) {
	tag, err := r.db.Exec(ctx, `
        UPDATE consolidation_groups
        SET
            tracking_code = $1,
            carrier_id = COALESCE(NULLIF($2, ''), carrier_id),
            updated_at = now()
        WHERE id = $3 AND status IN ('IN_PROGRESS', 'READY_TO_SHIP')
    `, trackingCode, carrierID, id)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}
