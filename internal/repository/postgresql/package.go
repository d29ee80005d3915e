package postgresql

import (
	"context"
	"errors"
	"strconv"

	"github.com/jackc/pgx/v4"

	"github.com/forwardpoint/backend/internal/consolidation"
	"github.com/forwardpoint/backend/internal/db"
	"github.com/forwardpoint/backend/internal/repository"
)

type PackageRepo struct {
	db db.DB
}

func NewPackageRepo(db db.DB) consolidation.PackageRepository {
	return &PackageRepo{db: db}
}

func (r *PackageRepo) Create(ctx context.Context, pkg *repository.Package) error {
	_, err := r.db.Exec(ctx, `
        INSERT INTO packages (
            id, owner_id, description, status, weight_grams,
            purchase_price_cents, declared_value_cents,
            length_cm, width_cm, height_cm,
            store, order_number, inbound_carrier, inbound_tracking,
            created_at, updated_at
        ) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)
    `, pkg.ID, pkg.OwnerID, pkg.Description, pkg.Status, pkg.WeightGrams,
		pkg.PurchasePriceCents, pkg.DeclaredValueCents,
		pkg.LengthCm, pkg.WidthCm, pkg.HeightCm,
		pkg.Store, pkg.OrderNumber, pkg.InboundCarrier, pkg.InboundTracking,
		pkg.CreatedAt, pkg.UpdatedAt)
	return err
}

func (r *PackageRepo) GetByID(ctx context.Context, id string) (*repository.Package, error) {
	var pkg repository.Package
	err := r.db.Get(ctx, &pkg, "SELECT * FROM packages WHERE id = $1", id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrObjectNotFound
		}
		return nil, err
	}
	return &pkg, nil
}

func (r *PackageRepo) ListByOwner(ctx context.Context, ownerID, status string, limit int) ([]*repository.Package, error) {
	query := "SELECT * FROM packages WHERE owner_id = $1"
	args := []interface{}{ownerID}

	if status != "" {
		query += " AND status = $2"
		args = append(args, status)
	}

	query += " ORDER BY created_at DESC"

	if limit > 0 {
		query += " LIMIT $" + strconv.Itoa(len(args)+1)
		args = append(args, limit)
	}

	var pkgs []*repository.Package
	err := r.db.Select(ctx, &pkgs, query, args...)
	return pkgs, err
}

func (r *PackageRepo) ListByGroup(ctx context.Context, groupID string) ([]*repository.Package, error) {
	var pkgs []*repository.Package
	err := r.db.Select(ctx, &pkgs, `
        SELECT * FROM packages
        WHERE group_id = $1
        ORDER BY created_at ASC
    `, groupID)
	return pkgs, err
}

func (r *PackageRepo) GetByIDTx(ctx context.Context, tx db.Tx, id string) (*repository.Package, error) {
	var pkg repository.Package
	err := tx.Get(ctx, &pkg, "SELECT * FROM packages WHERE id = $1 FOR UPDATE", id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrObjectNotFound
		}
		return nil, err
	}
	return &pkg, nil
}

func (r *PackageRepo) ListByGroupTx(ctx context.Context, tx db.Tx, groupID string) ([]*repository.Package, error) {
	var pkgs []*repository.Package
	err := tx.Select(ctx, &pkgs, `
        SELECT * FROM packages
        WHERE group_id = $1
        ORDER BY created_at ASC
    `, groupID)
	return pkgs, err
}

func (r *PackageRepo) AttachTx(ctx context.Context, tx db.Tx, packageID, groupID string) error {
	_, err := tx.Exec(ctx, `
        UPDATE packages
        SET group_id = $1, updated_at = now()
        WHERE id = $2
    `, groupID, packageID)
	return err
}

func (r *PackageRepo) DetachTx(ctx context.Context, tx db.Tx, packageID string) error {
	_, err := tx.Exec(ctx, `
        UPDATE packages
        SET group_id = NULL, updated_at = now()
        WHERE id = $1
    `, packageID)
	return err
}

func (r *PackageRepo) DetachAllTx(ctx context.Context, tx db.Tx, groupID string) error {
	_, err := tx.Exec(ctx, `
        UPDATE packages
        SET group_id = NULL, updated_at = now()
        WHERE group_id = $1
    `, groupID)
	return err
}

func (r *PackageRepo) UpdateStatusByGroupTx(ctx context.Context, tx db.Tx, groupID, status string) error {
	_, err := tx.Exec(ctx, `
        UPDATE packages
        SET status = $1, updated_at = now()
        WHERE group_id = $2
    `, status, groupID)
	return err
}

// ConfirmArrival records the warehouse weighing. The status guard makes the
// call idempotent-safe: a second confirmation affects zero rows.
func (r *PackageRepo) ConfirmArrival(ctx context.Context, id string, confirmedWeightGrams int) (bool, error) {
	tag, err := r.db.Exec(ctx, `
        UPDATE packages
        SET
            status = 'RECEIVED',
            confirmed_weight_grams = $1,
            updated_at = now()
        WHERE id = $2 AND status = 'PENDING'
    `, confirmedWeightGrams, id)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}
