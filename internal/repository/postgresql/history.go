package postgresql

import (
	"context"
	"time"

	"github.com/forwardpoint/backend/internal/consolidation"
	"github.com/forwardpoint/backend/internal/db"
	"github.com/forwardpoint/backend/internal/repository"
)

type HistoryRepo struct {
	db db.DB
}

func NewHistoryRepo(db db.DB) consolidation.HistoryRepository {
	return &HistoryRepo{db: db}
}

func (r *HistoryRepo) AddGroupStatusTx(ctx context.Context, tx db.Tx, groupID, status string, changedAt time.Time) error {
	_, err := tx.Exec(ctx, `
        INSERT INTO group_history (
            group_id, status, changed_at
        ) VALUES ($1, $2, $3)
    `, groupID, status, changedAt)
	return err
}

func (r *HistoryRepo) AddPackageStatus(ctx context.Context, packageID, status string, changedAt time.Time) error {
	_, err := r.db.Exec(ctx, `
        INSERT INTO package_history (
            package_id, status, changed_at
        ) VALUES ($1, $2, $3)
    `, packageID, status, changedAt)
	return err
}

func (r *HistoryRepo) ListByGroup(ctx context.Context, groupID string) ([]*repository.GroupHistoryEntry, error) {
	var entries []*repository.GroupHistoryEntry
	err := r.db.Select(ctx, &entries, `
        SELECT * FROM group_history
        WHERE group_id = $1
        ORDER BY changed_at ASC
    `, groupID)
	return entries, err
}
