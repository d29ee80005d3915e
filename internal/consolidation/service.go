//go:generate mockgen -source ./service.go -destination=./mocks/service.go -package=mock_consolidation
package consolidation

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/forwardpoint/backend/internal/db"
	"github.com/forwardpoint/backend/internal/metrics"
	"github.com/forwardpoint/backend/internal/pricing"
	"github.com/forwardpoint/backend/internal/repository"
)

const groupEventsTopic = "group_events"

type GroupRepository interface {
	Create(ctx context.Context, group *repository.ConsolidationGroup) error
	GetByID(ctx context.Context, id string) (*repository.ConsolidationGroup, error)
	GetByOwner(ctx context.Context, ownerID string, limit int) ([]*repository.ConsolidationGroup, error)
	GetByIDTx(ctx context.Context, tx db.Tx, id string) (*repository.ConsolidationGroup, error)
	UpdateRequestTx(ctx context.Context, tx db.Tx, group *repository.ConsolidationGroup) error
	UpdateStatusCASTx(ctx context.Context, tx db.Tx, id, from, to string, closedAt *time.Time) (bool, error)
	UpdateCurrentWeightTx(ctx context.Context, tx db.Tx, id string, grams int) error
	FreezeFeesTx(ctx context.Context, tx db.Tx, id string, finalWeightGrams int, consolidationFeeCents, storageFeeCents int64, breakdown []byte) error
	SetTracking(ctx context.Context, id, trackingCode, carrierID string) (bool, error)
}

type PackageRepository interface {
	Create(ctx context.Context, pkg *repository.Package) error
	GetByID(ctx context.Context, id string) (*repository.Package, error)
	ListByOwner(ctx context.Context, ownerID, status string, limit int) ([]*repository.Package, error)
	ListByGroup(ctx context.Context, groupID string) ([]*repository.Package, error)
	GetByIDTx(ctx context.Context, tx db.Tx, id string) (*repository.Package, error)
	ListByGroupTx(ctx context.Context, tx db.Tx, groupID string) ([]*repository.Package, error)
	AttachTx(ctx context.Context, tx db.Tx, packageID, groupID string) error
	DetachTx(ctx context.Context, tx db.Tx, packageID string) error
	DetachAllTx(ctx context.Context, tx db.Tx, groupID string) error
	UpdateStatusByGroupTx(ctx context.Context, tx db.Tx, groupID, status string) error
	ConfirmArrival(ctx context.Context, id string, confirmedWeightGrams int) (bool, error)
}

type HistoryRepository interface {
	AddGroupStatusTx(ctx context.Context, tx db.Tx, groupID, status string, changedAt time.Time) error
	AddPackageStatus(ctx context.Context, packageID, status string, changedAt time.Time) error
	ListByGroup(ctx context.Context, groupID string) ([]*repository.GroupHistoryEntry, error)
}

// RateRepository loads the full pricing configuration as one validated
// snapshot. Calculators only ever see a snapshot, never live config rows.
type RateRepository interface {
	LoadSnapshot(ctx context.Context) (*pricing.Snapshot, error)
}

type OutboxRepository interface {
	CreateTx(ctx context.Context, tx db.Tx, task *repository.OutboxTask) error
}

// GroupCache is the read cache for non-shipped groups. May be nil.
type GroupCache interface {
	Get(groupID string) (*repository.ConsolidationGroup, bool)
	Set(group *repository.ConsolidationGroup)
	Delete(groupID string)
}

// Service owns the consolidation lifecycle: package membership, quoting,
// the status state machine and the fee freeze.
type Service struct {
	db       db.DB
	groups   GroupRepository
	packages PackageRepository
	history  HistoryRepository
	rates    RateRepository
	outbox   OutboxRepository
	carrier  pricing.CarrierAPI
	cache    GroupCache

	timeNow func() time.Time
}

func NewService(
	database db.DB,
	groups GroupRepository,
	packages PackageRepository,
	history HistoryRepository,
	rates RateRepository,
	outbox OutboxRepository,
	carrierAPI pricing.CarrierAPI,
	cache GroupCache,
) *Service {
	return &Service{
		db:       database,
		groups:   groups,
		packages: packages,
		history:  history,
		rates:    rates,
		outbox:   outbox,
		carrier:  carrierAPI,
		cache:    cache,
		timeNow:  func() time.Time { return time.Now().UTC() },
	}
}

type DeclarePackageParams struct {
	OwnerID            string
	Description        string
	WeightGrams        int
	PurchasePriceCents int64
	DeclaredValueCents int64
	LengthCm           int
	WidthCm            int
	HeightCm           int
	Store              string
	OrderNumber        string
	InboundCarrier     string
	InboundTracking    string
}

// DeclarePackage registers a purchase the client expects to arrive at the
// warehouse.
func (s *Service) DeclarePackage(ctx context.Context, params DeclarePackageParams) (*repository.Package, error) {
	now := s.timeNow()
	pkg := &repository.Package{
		ID:                 uuid.NewString(),
		OwnerID:            params.OwnerID,
		Description:        params.Description,
		Status:             string(PackagePending),
		WeightGrams:        params.WeightGrams,
		PurchasePriceCents: params.PurchasePriceCents,
		DeclaredValueCents: params.DeclaredValueCents,
		LengthCm:           params.LengthCm,
		WidthCm:            params.WidthCm,
		HeightCm:           params.HeightCm,
		Store:              params.Store,
		OrderNumber:        params.OrderNumber,
		InboundCarrier:     params.InboundCarrier,
		InboundTracking:    params.InboundTracking,
		CreatedAt:          now,
		UpdatedAt:          now,
	}

	if err := s.packages.Create(ctx, pkg); err != nil {
		metrics.OperationErrorsTotal.WithLabelValues("declare_package").Inc()
		return nil, fmt.Errorf("service.DeclarePackage: %w", err)
	}
	if err := s.history.AddPackageStatus(ctx, pkg.ID, pkg.Status, now); err != nil {
		return nil, fmt.Errorf("service.DeclarePackage: history: %w", err)
	}

	metrics.PackagesDeclaredTotal.Inc()
	return pkg, nil
}

// ConfirmPackageArrival records the warehouse measurement and moves the
// package to RECEIVED. The confirmed weight is authoritative from here on.
func (s *Service) ConfirmPackageArrival(ctx context.Context, packageID string, confirmedWeightGrams int) (*repository.Package, error) {
	if confirmedWeightGrams <= 0 {
		return nil, fmt.Errorf("service.ConfirmPackageArrival: confirmed weight must be positive")
	}

	updated, err := s.packages.ConfirmArrival(ctx, packageID, confirmedWeightGrams)
	if err != nil {
		metrics.OperationErrorsTotal.WithLabelValues("confirm_arrival").Inc()
		return nil, fmt.Errorf("service.ConfirmPackageArrival: %w", err)
	}
	if !updated {
		return nil, ErrPackageNotPending
	}
	if err := s.history.AddPackageStatus(ctx, packageID, string(PackageReceived), s.timeNow()); err != nil {
		return nil, fmt.Errorf("service.ConfirmPackageArrival: history: %w", err)
	}

	metrics.PackagesConfirmedTotal.Inc()
	return s.packages.GetByID(ctx, packageID)
}

func (s *Service) GetPackage(ctx context.Context, packageID string) (*repository.Package, error) {
	return s.packages.GetByID(ctx, packageID)
}

func (s *Service) ListPackages(ctx context.Context, ownerID, status string, limit int) ([]*repository.Package, error) {
	return s.packages.ListByOwner(ctx, ownerID, status, limit)
}

type CreateGroupParams struct {
	OwnerID           string
	Name              string
	Notes             string
	DeliveryAddressID string
}

// CreateGroup opens an empty consolidation box for the client.
func (s *Service) CreateGroup(ctx context.Context, params CreateGroupParams) (*repository.ConsolidationGroup, error) {
	snap, err := s.loadSnapshot(ctx)
	if err != nil {
		return nil, err
	}

	now := s.timeNow()
	group := &repository.ConsolidationGroup{
		ID:                    uuid.NewString(),
		OwnerID:               params.OwnerID,
		Name:                  params.Name,
		Notes:                 params.Notes,
		ConsolidationType:     string(pricing.TypeSimple),
		Status:                string(StatusOpen),
		CurrentWeightGrams:    pricing.DefaultTareGrams,
		DeliveryAddressID:     params.DeliveryAddressID,
		MaxItems:              snap.Platform.MaxItemsPerGroup,
		OpenedAt:              now,
		ConsolidationDeadline: now.AddDate(0, 0, 30),
		ShippingDeadline:      now.AddDate(0, 0, 45),
		CreatedAt:             now,
		UpdatedAt:             now,
	}

	if err := s.groups.Create(ctx, group); err != nil {
		metrics.OperationErrorsTotal.WithLabelValues("create_group").Inc()
		return nil, fmt.Errorf("service.CreateGroup: %w", err)
	}
	if s.cache != nil {
		s.cache.Set(group)
	}
	return group, nil
}

func (s *Service) GetGroup(ctx context.Context, ownerID string, isAdmin bool, groupID string) (*repository.ConsolidationGroup, error) {
	if s.cache != nil {
		if group, ok := s.cache.Get(groupID); ok {
			if group.OwnerID != ownerID && !isAdmin {
				return nil, repository.ErrObjectNotFound
			}
			return group, nil
		}
	}

	group, err := s.groups.GetByID(ctx, groupID)
	if err != nil {
		return nil, err
	}
	if group.OwnerID != ownerID && !isAdmin {
		// Hide other users' groups instead of admitting they exist.
		return nil, repository.ErrObjectNotFound
	}
	return group, nil
}

func (s *Service) ListGroups(ctx context.Context, ownerID string, limit int) ([]*repository.ConsolidationGroup, error) {
	return s.groups.GetByOwner(ctx, ownerID, limit)
}

func (s *Service) GetGroupHistory(ctx context.Context, groupID string) ([]*repository.GroupHistoryEntry, error) {
	return s.history.ListByGroup(ctx, groupID)
}

// AddPackage attaches a RECEIVED package to an OPEN group. The membership
// check and the capacity check run inside one transaction holding the group
// row lock, so two concurrent adds cannot both squeeze past the cap.
func (s *Service) AddPackage(ctx context.Context, ownerID, groupID, packageID string) (err error) {
	tx, err := s.db.BeginTx(ctx)
	if err != nil {
		return fmt.Errorf("service.AddPackage: begin: %w", err)
	}
	defer func() {
		_ = tx.Rollback(context.Background())
	}()

	group, err := s.groups.GetByIDTx(ctx, tx, groupID)
	if err != nil {
		return fmt.Errorf("service.AddPackage: %w", err)
	}
	if group.OwnerID != ownerID {
		return ErrNotOwner
	}
	if GroupStatus(group.Status) != StatusOpen {
		return ErrGroupNotOpen
	}

	members, err := s.packages.ListByGroupTx(ctx, tx, groupID)
	if err != nil {
		return fmt.Errorf("service.AddPackage: list members: %w", err)
	}
	if len(members) >= group.MaxItems {
		metrics.TransitionConflictsTotal.Inc()
		return ErrGroupFull
	}

	pkg, err := s.packages.GetByIDTx(ctx, tx, packageID)
	if err != nil {
		return fmt.Errorf("service.AddPackage: %w", err)
	}
	if pkg.OwnerID != ownerID {
		return ErrNotOwner
	}
	if pkg.GroupID != nil {
		return ErrPackageAlreadyGrouped
	}
	if PackageStatus(pkg.Status) != PackageReceived {
		return ErrPackageNotReceived
	}

	if err := s.packages.AttachTx(ctx, tx, packageID, groupID); err != nil {
		return fmt.Errorf("service.AddPackage: attach: %w", err)
	}

	weight := memberWeight(group, append(members, pkg))
	if err := s.groups.UpdateCurrentWeightTx(ctx, tx, groupID, weight); err != nil {
		return fmt.Errorf("service.AddPackage: weight: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("service.AddPackage: commit: %w", err)
	}

	s.refreshCache(ctx, groupID)
	return nil
}

// RemovePackage detaches a package from an OPEN group.
func (s *Service) RemovePackage(ctx context.Context, ownerID, groupID, packageID string) (err error) {
	tx, err := s.db.BeginTx(ctx)
	if err != nil {
		return fmt.Errorf("service.RemovePackage: begin: %w", err)
	}
	defer func() {
		_ = tx.Rollback(context.Background())
	}()

	group, err := s.groups.GetByIDTx(ctx, tx, groupID)
	if err != nil {
		return fmt.Errorf("service.RemovePackage: %w", err)
	}
	if group.OwnerID != ownerID {
		return ErrNotOwner
	}
	if GroupStatus(group.Status) != StatusOpen {
		return ErrGroupNotOpen
	}

	pkg, err := s.packages.GetByIDTx(ctx, tx, packageID)
	if err != nil {
		return fmt.Errorf("service.RemovePackage: %w", err)
	}
	if pkg.GroupID == nil || *pkg.GroupID != groupID {
		return ErrPackageNotInGroup
	}

	if err := s.packages.DetachTx(ctx, tx, packageID); err != nil {
		return fmt.Errorf("service.RemovePackage: detach: %w", err)
	}

	members, err := s.packages.ListByGroupTx(ctx, tx, groupID)
	if err != nil {
		return fmt.Errorf("service.RemovePackage: list members: %w", err)
	}
	remaining := make([]*repository.Package, 0, len(members))
	for _, m := range members {
		if m.ID != packageID {
			remaining = append(remaining, m)
		}
	}
	if err := s.groups.UpdateCurrentWeightTx(ctx, tx, groupID, memberWeight(group, remaining)); err != nil {
		return fmt.Errorf("service.RemovePackage: weight: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("service.RemovePackage: commit: %w", err)
	}

	s.refreshCache(ctx, groupID)
	return nil
}

type QuoteParams struct {
	BoxSize     pricing.BoxSize
	Type        pricing.ConsolidationType
	Protections []string
	CarrierCode string
	Service     pricing.ServiceType
}

// Quote is the priced preview shown before the client commits.
type Quote struct {
	Fees    pricing.FeeBreakdown  `json:"fees"`
	Freight *pricing.FreightQuote `json:"freight,omitempty"`
}

// QuoteGroup prices a consolidation against one configuration snapshot. The
// result is not persisted; fees only become facts at the freeze.
func (s *Service) QuoteGroup(ctx context.Context, ownerID string, isAdmin bool, groupID string, params QuoteParams) (*Quote, error) {
	if !pricing.ValidConsolidationType(params.Type) {
		return nil, fmt.Errorf("service.QuoteGroup: invalid consolidation type %q", params.Type)
	}

	snap, err := s.loadSnapshot(ctx)
	if err != nil {
		return nil, err
	}

	group, err := s.GetGroup(ctx, ownerID, isAdmin, groupID)
	if err != nil {
		return nil, err
	}
	members, err := s.packages.ListByGroup(ctx, group.ID)
	if err != nil {
		return nil, fmt.Errorf("service.QuoteGroup: %w", err)
	}

	fees := pricing.CalculateConsolidationFee(len(members), params.Type, params.BoxSize, params.Protections, snap)
	if fees.StorageDegraded {
		metrics.DegradedStoragePricingTotal.Inc()
	}

	quote := &Quote{Fees: fees}

	if params.CarrierCode != "" {
		if !pricing.ValidServiceType(params.Service) {
			return nil, fmt.Errorf("service.QuoteGroup: invalid service type %q", params.Service)
		}
		table, ok := snap.Carriers[params.CarrierCode]
		if !ok {
			return nil, fmt.Errorf("service.QuoteGroup: %w: %s", pricing.ErrUnknownCarrier, params.CarrierCode)
		}
		weight := pricing.ResolveBillableWeight(params.BoxSize, packageWeights(members), params.Protections, snap)
		freight, err := pricing.QuoteFreight(ctx, weight, params.Service, &table, s.carrier)
		if err != nil {
			return nil, fmt.Errorf("service.QuoteGroup: %w", err)
		}
		quote.Freight = freight
	}

	metrics.QuotesComputedTotal.Inc()
	return quote, nil
}

type ConsolidateParams struct {
	BoxSize            pricing.BoxSize
	Type               pricing.ConsolidationType
	Protections        []string
	CarrierCode        string
	CustomInstructions string
	RemoveInvoice      bool
}

// RequestConsolidation closes the box: the client's selections are persisted
// and the group moves OPEN -> PENDING. An empty box is allowed.
func (s *Service) RequestConsolidation(ctx context.Context, ownerID, groupID string, params ConsolidateParams) (err error) {
	if !pricing.ValidBoxSize(params.BoxSize) {
		return ErrBoxSizeRequired
	}
	if !pricing.ValidConsolidationType(params.Type) {
		return fmt.Errorf("service.RequestConsolidation: invalid consolidation type %q", params.Type)
	}

	snap, err := s.loadSnapshot(ctx)
	if err != nil {
		return err
	}
	for _, code := range params.Protections {
		if _, ok := snap.Protections[code]; !ok {
			return fmt.Errorf("service.RequestConsolidation: unknown or inactive protection %q", code)
		}
	}

	tx, err := s.db.BeginTx(ctx)
	if err != nil {
		return fmt.Errorf("service.RequestConsolidation: begin: %w", err)
	}
	defer func() {
		_ = tx.Rollback(context.Background())
	}()

	group, err := s.groups.GetByIDTx(ctx, tx, groupID)
	if err != nil {
		return fmt.Errorf("service.RequestConsolidation: %w", err)
	}
	if group.OwnerID != ownerID {
		return ErrNotOwner
	}

	boxSize := string(params.BoxSize)
	group.BoxSize = &boxSize
	group.ConsolidationType = string(params.Type)
	group.ExtraProtection = params.Protections
	group.CustomInstructions = params.CustomInstructions
	group.RemoveInvoice = params.RemoveInvoice
	if params.CarrierCode != "" {
		carrierCode := params.CarrierCode
		group.CarrierID = &carrierCode
	}
	if err := s.groups.UpdateRequestTx(ctx, tx, group); err != nil {
		return fmt.Errorf("service.RequestConsolidation: %w", err)
	}

	if err := s.transitionTx(ctx, tx, group, StatusPending, nil); err != nil {
		return err
	}
	if err := s.enqueueEventTx(ctx, tx, group, "consolidation_requested", StatusOpen, StatusPending); err != nil {
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("service.RequestConsolidation: commit: %w", err)
	}

	s.refreshCache(ctx, groupID)
	return nil
}

// StartProcessing is the operator picking up a PENDING group.
func (s *Service) StartProcessing(ctx context.Context, groupID string) error {
	return s.adminTransition(ctx, groupID, StatusPending, StatusInProgress, "processing_started")
}

// MarkReady freezes the fees and moves the group to READY_TO_SHIP. The
// measured weight, both fee amounts and the itemized breakdown are written in
// a single update inside the transition transaction, so readers see either no
// fees or the complete frozen set.
func (s *Service) MarkReady(ctx context.Context, groupID string, measuredWeightGrams int) (err error) {
	if measuredWeightGrams <= 0 {
		return ErrFinalWeightRequired
	}

	snap, err := s.loadSnapshot(ctx)
	if err != nil {
		return err
	}

	tx, err := s.db.BeginTx(ctx)
	if err != nil {
		return fmt.Errorf("service.MarkReady: begin: %w", err)
	}
	defer func() {
		_ = tx.Rollback(context.Background())
	}()

	group, err := s.groups.GetByIDTx(ctx, tx, groupID)
	if err != nil {
		return fmt.Errorf("service.MarkReady: %w", err)
	}

	if err := s.freezeFeesTx(ctx, tx, group, snap, measuredWeightGrams); err != nil {
		return err
	}
	if err := s.transitionTx(ctx, tx, group, StatusReadyToShip, nil); err != nil {
		return err
	}
	if err := s.enqueueEventTx(ctx, tx, group, "fees_frozen", StatusInProgress, StatusReadyToShip); err != nil {
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("service.MarkReady: commit: %w", err)
	}

	s.refreshCache(ctx, groupID)
	return nil
}

// SetTracking assigns the outbound tracking code. Only valid while the group
// is being processed; a shipped group's tracking is history.
func (s *Service) SetTracking(ctx context.Context, groupID, trackingCode, carrierID string) error {
	if trackingCode == "" {
		return ErrTrackingRequired
	}

	updated, err := s.groups.SetTracking(ctx, groupID, trackingCode, carrierID)
	if err != nil {
		metrics.OperationErrorsTotal.WithLabelValues("set_tracking").Inc()
		return fmt.Errorf("service.SetTracking: %w", err)
	}
	if !updated {
		if _, err := s.groups.GetByID(ctx, groupID); err != nil {
			return err
		}
		return ErrStatusConflict
	}

	s.refreshCache(ctx, groupID)
	return nil
}

// ConfirmPayment is the external payment-succeeded signal. It gates
// READY_TO_SHIP -> SHIPPED: the group must carry a tracking code and the paid
// amount must match the frozen total exactly.
func (s *Service) ConfirmPayment(ctx context.Context, groupID string, amountCents int64) (err error) {
	tx, err := s.db.BeginTx(ctx)
	if err != nil {
		return fmt.Errorf("service.ConfirmPayment: begin: %w", err)
	}
	defer func() {
		_ = tx.Rollback(context.Background())
	}()

	group, err := s.groups.GetByIDTx(ctx, tx, groupID)
	if err != nil {
		return fmt.Errorf("service.ConfirmPayment: %w", err)
	}
	if GroupStatus(group.Status) != StatusReadyToShip {
		metrics.TransitionConflictsTotal.Inc()
		return ErrStatusConflict
	}
	if group.TrackingCode == nil || *group.TrackingCode == "" {
		return ErrTrackingRequired
	}
	if group.ConsolidationFeeCents == nil || group.StorageFeeCents == nil {
		return fmt.Errorf("service.ConfirmPayment: group %s has no frozen fees", groupID)
	}
	if total := *group.ConsolidationFeeCents + *group.StorageFeeCents; amountCents != total {
		zap.L().Warn("payment amount mismatch",
			zap.String("group_id", groupID),
			zap.Int64("expected_cents", total),
			zap.Int64("received_cents", amountCents))
		return ErrPaymentMismatch
	}

	if err := s.shipTx(ctx, tx, group, StatusReadyToShip); err != nil {
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("service.ConfirmPayment: commit: %w", err)
	}

	s.dropFromCache(groupID)
	return nil
}

// Conclude is the operator shortcut shipping a group straight from
// IN_PROGRESS. Tracking is still mandatory; fees are frozen on the way out if
// they were not already.
func (s *Service) Conclude(ctx context.Context, groupID string) (err error) {
	snap, err := s.loadSnapshot(ctx)
	if err != nil {
		return err
	}

	tx, err := s.db.BeginTx(ctx)
	if err != nil {
		return fmt.Errorf("service.Conclude: begin: %w", err)
	}
	defer func() {
		_ = tx.Rollback(context.Background())
	}()

	group, err := s.groups.GetByIDTx(ctx, tx, groupID)
	if err != nil {
		return fmt.Errorf("service.Conclude: %w", err)
	}
	if GroupStatus(group.Status) != StatusInProgress {
		metrics.TransitionConflictsTotal.Inc()
		return ErrStatusConflict
	}
	if group.TrackingCode == nil || *group.TrackingCode == "" {
		return ErrTrackingRequired
	}

	if group.ConsolidationFeeCents == nil {
		members, err := s.packages.ListByGroupTx(ctx, tx, groupID)
		if err != nil {
			return fmt.Errorf("service.Conclude: list members: %w", err)
		}
		weight := pricing.ResolveBillableWeight(boxSizeOf(group), packageWeights(members), group.ExtraProtection, snap)
		if err := s.freezeFeesTx(ctx, tx, group, snap, weight); err != nil {
			return err
		}
	}

	if err := s.shipTx(ctx, tx, group, StatusInProgress); err != nil {
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("service.Conclude: commit: %w", err)
	}

	s.dropFromCache(groupID)
	return nil
}

// MarkDelivered records carrier delivery confirmation.
func (s *Service) MarkDelivered(ctx context.Context, groupID string) (err error) {
	tx, err := s.db.BeginTx(ctx)
	if err != nil {
		return fmt.Errorf("service.MarkDelivered: begin: %w", err)
	}
	defer func() {
		_ = tx.Rollback(context.Background())
	}()

	group, err := s.groups.GetByIDTx(ctx, tx, groupID)
	if err != nil {
		return fmt.Errorf("service.MarkDelivered: %w", err)
	}
	if err := s.transitionTx(ctx, tx, group, StatusDelivered, nil); err != nil {
		return err
	}
	if err := s.packages.UpdateStatusByGroupTx(ctx, tx, groupID, string(PackageDelivered)); err != nil {
		return fmt.Errorf("service.MarkDelivered: cascade: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("service.MarkDelivered: commit: %w", err)
	}
	return nil
}

// Cancel aborts a group before shipment. Member packages are released back to
// the client's RECEIVED pool.
func (s *Service) Cancel(ctx context.Context, ownerID string, isAdmin bool, groupID string) (err error) {
	tx, err := s.db.BeginTx(ctx)
	if err != nil {
		return fmt.Errorf("service.Cancel: begin: %w", err)
	}
	defer func() {
		_ = tx.Rollback(context.Background())
	}()

	group, err := s.groups.GetByIDTx(ctx, tx, groupID)
	if err != nil {
		return fmt.Errorf("service.Cancel: %w", err)
	}
	if group.OwnerID != ownerID && !isAdmin {
		return ErrNotOwner
	}

	from := GroupStatus(group.Status)
	closedAt := s.timeNow()
	if err := s.transitionTx(ctx, tx, group, StatusCancelled, &closedAt); err != nil {
		return err
	}
	if err := s.packages.DetachAllTx(ctx, tx, groupID); err != nil {
		return fmt.Errorf("service.Cancel: release packages: %w", err)
	}
	if err := s.enqueueEventTx(ctx, tx, group, "cancelled", from, StatusCancelled); err != nil {
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("service.Cancel: commit: %w", err)
	}

	s.dropFromCache(groupID)
	return nil
}

func (s *Service) adminTransition(ctx context.Context, groupID string, from, to GroupStatus, event string) (err error) {
	tx, err := s.db.BeginTx(ctx)
	if err != nil {
		return fmt.Errorf("service.adminTransition: begin: %w", err)
	}
	defer func() {
		_ = tx.Rollback(context.Background())
	}()

	group, err := s.groups.GetByIDTx(ctx, tx, groupID)
	if err != nil {
		return fmt.Errorf("service.adminTransition: %w", err)
	}
	if err := s.transitionTx(ctx, tx, group, to, nil); err != nil {
		return err
	}
	if err := s.enqueueEventTx(ctx, tx, group, event, from, to); err != nil {
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("service.adminTransition: commit: %w", err)
	}

	s.refreshCache(ctx, groupID)
	return nil
}

// shipTx applies the SHIPPED transition plus its side effects: package
// cascade, closedAt and the outbox event.
func (s *Service) shipTx(ctx context.Context, tx db.Tx, group *repository.ConsolidationGroup, from GroupStatus) error {
	closedAt := s.timeNow()
	if err := s.transitionTx(ctx, tx, group, StatusShipped, &closedAt); err != nil {
		return err
	}
	if err := s.packages.UpdateStatusByGroupTx(ctx, tx, group.ID, string(PackageShipped)); err != nil {
		return fmt.Errorf("shipTx: cascade: %w", err)
	}
	return s.enqueueEventTx(ctx, tx, group, "shipped", from, StatusShipped)
}

// transitionTx is the single gate through which every status change passes.
// The table check catches illegal edges; the compare-and-swap catches
// concurrent writers racing over a legal edge.
func (s *Service) transitionTx(ctx context.Context, tx db.Tx, group *repository.ConsolidationGroup, to GroupStatus, closedAt *time.Time) error {
	from := GroupStatus(group.Status)
	if !CanTransition(from, to) {
		return fmt.Errorf("%w: %s -> %s", ErrIllegalTransition, from, to)
	}

	applied, err := s.groups.UpdateStatusCASTx(ctx, tx, group.ID, string(from), string(to), closedAt)
	if err != nil {
		metrics.OperationErrorsTotal.WithLabelValues("transition").Inc()
		return fmt.Errorf("transitionTx: %w", err)
	}
	if !applied {
		metrics.TransitionConflictsTotal.Inc()
		return ErrStatusConflict
	}

	if err := s.history.AddGroupStatusTx(ctx, tx, group.ID, string(to), s.timeNow()); err != nil {
		return fmt.Errorf("transitionTx: history: %w", err)
	}

	metrics.GroupTransitionsTotal.WithLabelValues(string(to)).Inc()
	zap.L().Info("group status transition",
		zap.String("group_id", group.ID),
		zap.String("from", string(from)),
		zap.String("to", string(to)))
	return nil
}

// freezeFeesTx computes the fees from the snapshot and writes final weight,
// both fee amounts and the breakdown as one atomic update.
func (s *Service) freezeFeesTx(ctx context.Context, tx db.Tx, group *repository.ConsolidationGroup, snap *pricing.Snapshot, finalWeightGrams int) error {
	members, err := s.packages.ListByGroupTx(ctx, tx, group.ID)
	if err != nil {
		return fmt.Errorf("freezeFeesTx: list members: %w", err)
	}

	fees := pricing.CalculateConsolidationFee(
		len(members),
		pricing.ConsolidationType(group.ConsolidationType),
		boxSizeOf(group),
		group.ExtraProtection,
		snap,
	)
	if fees.StorageDegraded {
		metrics.DegradedStoragePricingTotal.Inc()
	}

	breakdown, err := json.Marshal(fees)
	if err != nil {
		return fmt.Errorf("freezeFeesTx: marshal breakdown: %w", err)
	}

	if err := s.groups.FreezeFeesTx(ctx, tx, group.ID, finalWeightGrams,
		fees.ConsolidationFeeCents, fees.StorageFeeCents, breakdown); err != nil {
		return fmt.Errorf("freezeFeesTx: %w", err)
	}

	group.FinalWeightGrams = &finalWeightGrams
	group.ConsolidationFeeCents = &fees.ConsolidationFeeCents
	group.StorageFeeCents = &fees.StorageFeeCents
	return nil
}

func (s *Service) enqueueEventTx(ctx context.Context, tx db.Tx, group *repository.ConsolidationGroup, event string, from, to GroupStatus) error {
	payload := repository.GroupEventPayload{
		Event:        event,
		GroupID:      group.ID,
		OwnerID:      group.OwnerID,
		OldStatus:    string(from),
		NewStatus:    string(to),
		TrackingCode: derefString(group.TrackingCode),
		OccurredAt:   s.timeNow(),
	}
	if group.ConsolidationFeeCents != nil {
		payload.ConsolidationFeeCents = *group.ConsolidationFeeCents
	}
	if group.StorageFeeCents != nil {
		payload.StorageFeeCents = *group.StorageFeeCents
	}
	if group.FinalWeightGrams != nil {
		payload.FinalWeightGrams = *group.FinalWeightGrams
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("enqueueEventTx: marshal: %w", err)
	}
	return s.outbox.CreateTx(ctx, tx, &repository.OutboxTask{
		ID:      uuid.New(),
		Topic:   groupEventsTopic,
		Payload: body,
	})
}

func (s *Service) loadSnapshot(ctx context.Context) (*pricing.Snapshot, error) {
	snap, err := s.rates.LoadSnapshot(ctx)
	if err != nil {
		metrics.OperationErrorsTotal.WithLabelValues("load_snapshot").Inc()
		return nil, fmt.Errorf("service: load rate snapshot: %w", err)
	}
	return snap, nil
}

func (s *Service) refreshCache(ctx context.Context, groupID string) {
	if s.cache == nil {
		return
	}
	group, err := s.groups.GetByID(ctx, groupID)
	if err != nil {
		s.cache.Delete(groupID)
		return
	}
	s.cache.Set(group)
}

func (s *Service) dropFromCache(groupID string) {
	if s.cache != nil {
		s.cache.Delete(groupID)
	}
}

func boxSizeOf(group *repository.ConsolidationGroup) pricing.BoxSize {
	if group.BoxSize == nil {
		return ""
	}
	return pricing.BoxSize(*group.BoxSize)
}

func packageWeights(members []*repository.Package) []pricing.PackageWeight {
	weights := make([]pricing.PackageWeight, len(members))
	for i, m := range members {
		weights[i] = pricing.PackageWeight{
			DeclaredGrams:  m.WeightGrams,
			ConfirmedGrams: m.ConfirmedWeightGrams,
		}
	}
	return weights
}

// memberWeight keeps the group's derived running weight: tare plus member
// package weights, before any protection add-ons.
func memberWeight(group *repository.ConsolidationGroup, members []*repository.Package) int {
	total := pricing.TareGrams(boxSizeOf(group))
	for _, m := range members {
		w := pricing.PackageWeight{DeclaredGrams: m.WeightGrams, ConfirmedGrams: m.ConfirmedWeightGrams}
		total += w.BillableGrams()
	}
	return total
}

func derefString(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
