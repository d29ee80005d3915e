package repository

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

type TaskStatus string

const (
	TaskStatusCreated    TaskStatus = "CREATED"
	TaskStatusProcessing TaskStatus = "PROCESSING"
	TaskStatusFailed     TaskStatus = "FAILED"
	TaskStatusDone       TaskStatus = "DONE"
)

type OutboxTask struct {
	ID          uuid.UUID       `db:"id"`
	Status      TaskStatus      `db:"status"`
	Payload     json.RawMessage `db:"payload"`
	Topic       string          `db:"topic"`
	Attempts    int             `db:"attempts"`
	LastError   *string         `db:"last_error"`
	CreatedAt   time.Time       `db:"created_at"`
	UpdatedAt   time.Time       `db:"updated_at"`
	CompletedAt *time.Time      `db:"completed_at"`
}

// GroupEventPayload is the message body published for consolidation group
// lifecycle events (requested, fees frozen, shipped, cancelled). Fee fields
// are only set on events emitted at or after the fee freeze.
type GroupEventPayload struct {
	Event                 string    `json:"event"`
	GroupID               string    `json:"group_id"`
	OwnerID               string    `json:"owner_id"`
	OldStatus             string    `json:"old_status,omitempty"`
	NewStatus             string    `json:"new_status"`
	ConsolidationFeeCents int64     `json:"consolidation_fee_cents,omitempty"`
	StorageFeeCents       int64     `json:"storage_fee_cents,omitempty"`
	FinalWeightGrams      int       `json:"final_weight_grams,omitempty"`
	TrackingCode          string    `json:"tracking_code,omitempty"`
	OccurredAt            time.Time `json:"occurred_at"`
}
