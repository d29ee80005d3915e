package consolidation

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	mock_consolidation "github.com/forwardpoint/backend/internal/consolidation/mocks"
	mock_db "github.com/forwardpoint/backend/internal/db/mocks"
	"github.com/forwardpoint/backend/internal/pricing"
	"github.com/forwardpoint/backend/internal/repository"
)

var fixedNow = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

type serviceMocks struct {
	db       *mock_db.MockDB
	tx       *mock_db.MockTx
	groups   *mock_consolidation.MockGroupRepository
	packages *mock_consolidation.MockPackageRepository
	history  *mock_consolidation.MockHistoryRepository
	rates    *mock_consolidation.MockRateRepository
	outbox   *mock_consolidation.MockOutboxRepository
}

func newTestService(t *testing.T) (*Service, serviceMocks) {
	ctrl := gomock.NewController(t)
	m := serviceMocks{
		db:       mock_db.NewMockDB(ctrl),
		tx:       mock_db.NewMockTx(ctrl),
		groups:   mock_consolidation.NewMockGroupRepository(ctrl),
		packages: mock_consolidation.NewMockPackageRepository(ctrl),
		history:  mock_consolidation.NewMockHistoryRepository(ctrl),
		rates:    mock_consolidation.NewMockRateRepository(ctrl),
		outbox:   mock_consolidation.NewMockOutboxRepository(ctrl),
	}
	svc := NewService(m.db, m.groups, m.packages, m.history, m.rates, m.outbox, nil, nil)
	svc.timeNow = func() time.Time { return fixedNow }
	return svc, m
}

// expectTx wires BeginTx to hand out the tx mock and tolerates the deferred
// rollback after commit.
func (m serviceMocks) expectTx() {
	m.db.EXPECT().BeginTx(gomock.Any()).Return(m.tx, nil)
	m.tx.EXPECT().Rollback(gomock.Any()).Return(nil).AnyTimes()
}

func testSnapshot() *pricing.Snapshot {
	return &pricing.Snapshot{
		Platform: pricing.PlatformRates{
			BaseFeeCents:        200,
			PerPackageFeeCents:  100,
			RepackMultiplierPct: 150,
			MaxItemsPerGroup:    10,
		},
		Protections: map[string]pricing.Protection{
			pricing.ProtectionBubbleWrap: {Code: pricing.ProtectionBubbleWrap, PriceCents: 300, AddedWeightGrams: 50},
		},
	}
}

func openGroup(ownerID string) *repository.ConsolidationGroup {
	return &repository.ConsolidationGroup{
		ID:                 "grp-1",
		OwnerID:            ownerID,
		ConsolidationType:  string(pricing.TypeSimple),
		Status:             string(StatusOpen),
		CurrentWeightGrams: pricing.DefaultTareGrams,
		MaxItems:           10,
	}
}

func receivedPackage(id, ownerID string, confirmedGrams int) *repository.Package {
	return &repository.Package{
		ID:                   id,
		OwnerID:              ownerID,
		Status:               string(PackageReceived),
		WeightGrams:          confirmedGrams + 500,
		ConfirmedWeightGrams: &confirmedGrams,
	}
}

func strPtr(s string) *string { return &s }

func int64Ptr(v int64) *int64 { return &v }

func TestService_DeclarePackage(t *testing.T) {
	ctx := context.Background()
	svc, m := newTestService(t)

	var created *repository.Package
	m.packages.EXPECT().Create(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, pkg *repository.Package) error {
			created = pkg
			return nil
		})
	m.history.EXPECT().AddPackageStatus(ctx, gomock.Any(), string(PackagePending), fixedNow).Return(nil)

	pkg, err := svc.DeclarePackage(ctx, DeclarePackageParams{
		OwnerID:            "user-1",
		Description:        "headphones",
		WeightGrams:        800,
		PurchasePriceCents: 12999,
	})
	require.NoError(t, err)
	assert.Equal(t, created, pkg)
	assert.Equal(t, string(PackagePending), pkg.Status)
	assert.Equal(t, "user-1", pkg.OwnerID)
	assert.Equal(t, 800, pkg.WeightGrams)
	assert.Nil(t, pkg.ConfirmedWeightGrams)
	assert.NotEmpty(t, pkg.ID)
}

func TestService_ConfirmPackageArrival(t *testing.T) {
	ctx := context.Background()

	t.Run("already confirmed", func(t *testing.T) {
		svc, m := newTestService(t)
		m.packages.EXPECT().ConfirmArrival(ctx, "pkg-1", 900).Return(false, nil)

		_, err := svc.ConfirmPackageArrival(ctx, "pkg-1", 900)
		assert.ErrorIs(t, err, ErrPackageNotPending)
	})

	t.Run("non-positive weight rejected", func(t *testing.T) {
		svc, _ := newTestService(t)
		_, err := svc.ConfirmPackageArrival(ctx, "pkg-1", 0)
		assert.Error(t, err)
	})

	t.Run("success", func(t *testing.T) {
		svc, m := newTestService(t)
		m.packages.EXPECT().ConfirmArrival(ctx, "pkg-1", 900).Return(true, nil)
		m.history.EXPECT().AddPackageStatus(ctx, "pkg-1", string(PackageReceived), fixedNow).Return(nil)
		m.packages.EXPECT().GetByID(ctx, "pkg-1").Return(receivedPackage("pkg-1", "user-1", 900), nil)

		pkg, err := svc.ConfirmPackageArrival(ctx, "pkg-1", 900)
		require.NoError(t, err)
		require.NotNil(t, pkg.ConfirmedWeightGrams)
		assert.Equal(t, 900, *pkg.ConfirmedWeightGrams)
	})
}

func TestService_AddPackage(t *testing.T) {
	ctx := context.Background()

	t.Run("full group rejects another package", func(t *testing.T) {
		svc, m := newTestService(t)
		group := openGroup("user-1")
		group.MaxItems = 2

		m.expectTx()
		m.groups.EXPECT().GetByIDTx(ctx, m.tx, "grp-1").Return(group, nil)
		m.packages.EXPECT().ListByGroupTx(ctx, m.tx, "grp-1").Return([]*repository.Package{
			receivedPackage("pkg-1", "user-1", 500),
			receivedPackage("pkg-2", "user-1", 700),
		}, nil)

		err := svc.AddPackage(ctx, "user-1", "grp-1", "pkg-3")
		assert.ErrorIs(t, err, ErrGroupFull)
	})

	t.Run("group must be open", func(t *testing.T) {
		svc, m := newTestService(t)
		group := openGroup("user-1")
		group.Status = string(StatusPending)

		m.expectTx()
		m.groups.EXPECT().GetByIDTx(ctx, m.tx, "grp-1").Return(group, nil)

		err := svc.AddPackage(ctx, "user-1", "grp-1", "pkg-1")
		assert.ErrorIs(t, err, ErrGroupNotOpen)
	})

	t.Run("only the owner can add", func(t *testing.T) {
		svc, m := newTestService(t)

		m.expectTx()
		m.groups.EXPECT().GetByIDTx(ctx, m.tx, "grp-1").Return(openGroup("someone-else"), nil)

		err := svc.AddPackage(ctx, "user-1", "grp-1", "pkg-1")
		assert.ErrorIs(t, err, ErrNotOwner)
	})

	t.Run("package must be received", func(t *testing.T) {
		svc, m := newTestService(t)
		pkg := &repository.Package{ID: "pkg-1", OwnerID: "user-1", Status: string(PackagePending), WeightGrams: 500}

		m.expectTx()
		m.groups.EXPECT().GetByIDTx(ctx, m.tx, "grp-1").Return(openGroup("user-1"), nil)
		m.packages.EXPECT().ListByGroupTx(ctx, m.tx, "grp-1").Return(nil, nil)
		m.packages.EXPECT().GetByIDTx(ctx, m.tx, "pkg-1").Return(pkg, nil)

		err := svc.AddPackage(ctx, "user-1", "grp-1", "pkg-1")
		assert.ErrorIs(t, err, ErrPackageNotReceived)
	})

	t.Run("package cannot be in two groups", func(t *testing.T) {
		svc, m := newTestService(t)
		pkg := receivedPackage("pkg-1", "user-1", 500)
		pkg.GroupID = strPtr("grp-other")

		m.expectTx()
		m.groups.EXPECT().GetByIDTx(ctx, m.tx, "grp-1").Return(openGroup("user-1"), nil)
		m.packages.EXPECT().ListByGroupTx(ctx, m.tx, "grp-1").Return(nil, nil)
		m.packages.EXPECT().GetByIDTx(ctx, m.tx, "pkg-1").Return(pkg, nil)

		err := svc.AddPackage(ctx, "user-1", "grp-1", "pkg-1")
		assert.ErrorIs(t, err, ErrPackageAlreadyGrouped)
	})

	t.Run("attaches and recomputes the running weight", func(t *testing.T) {
		svc, m := newTestService(t)
		member := receivedPackage("pkg-1", "user-1", 1000)
		newcomer := receivedPackage("pkg-2", "user-1", 800)

		m.expectTx()
		m.groups.EXPECT().GetByIDTx(ctx, m.tx, "grp-1").Return(openGroup("user-1"), nil)
		m.packages.EXPECT().ListByGroupTx(ctx, m.tx, "grp-1").Return([]*repository.Package{member}, nil)
		m.packages.EXPECT().GetByIDTx(ctx, m.tx, "pkg-2").Return(newcomer, nil)
		m.packages.EXPECT().AttachTx(ctx, m.tx, "pkg-2", "grp-1").Return(nil)
		// default tare 200 + 1000 + 800
		m.groups.EXPECT().UpdateCurrentWeightTx(ctx, m.tx, "grp-1", 2000).Return(nil)
		m.tx.EXPECT().Commit(ctx).Return(nil)

		require.NoError(t, svc.AddPackage(ctx, "user-1", "grp-1", "pkg-2"))
	})
}

func TestService_RemovePackage(t *testing.T) {
	ctx := context.Background()

	t.Run("package must belong to the group", func(t *testing.T) {
		svc, m := newTestService(t)
		pkg := receivedPackage("pkg-1", "user-1", 500)

		m.expectTx()
		m.groups.EXPECT().GetByIDTx(ctx, m.tx, "grp-1").Return(openGroup("user-1"), nil)
		m.packages.EXPECT().GetByIDTx(ctx, m.tx, "pkg-1").Return(pkg, nil)

		err := svc.RemovePackage(ctx, "user-1", "grp-1", "pkg-1")
		assert.ErrorIs(t, err, ErrPackageNotInGroup)
	})

	t.Run("detaches and recomputes the running weight", func(t *testing.T) {
		svc, m := newTestService(t)
		leaving := receivedPackage("pkg-1", "user-1", 1000)
		leaving.GroupID = strPtr("grp-1")
		staying := receivedPackage("pkg-2", "user-1", 800)
		staying.GroupID = strPtr("grp-1")

		m.expectTx()
		m.groups.EXPECT().GetByIDTx(ctx, m.tx, "grp-1").Return(openGroup("user-1"), nil)
		m.packages.EXPECT().GetByIDTx(ctx, m.tx, "pkg-1").Return(leaving, nil)
		m.packages.EXPECT().DetachTx(ctx, m.tx, "pkg-1").Return(nil)
		m.packages.EXPECT().ListByGroupTx(ctx, m.tx, "grp-1").Return([]*repository.Package{staying}, nil)
		m.groups.EXPECT().UpdateCurrentWeightTx(ctx, m.tx, "grp-1", 1000).Return(nil)
		m.tx.EXPECT().Commit(ctx).Return(nil)

		require.NoError(t, svc.RemovePackage(ctx, "user-1", "grp-1", "pkg-1"))
	})
}

func TestService_RequestConsolidation(t *testing.T) {
	ctx := context.Background()

	t.Run("box size is mandatory", func(t *testing.T) {
		svc, _ := newTestService(t)
		err := svc.RequestConsolidation(ctx, "user-1", "grp-1", ConsolidateParams{Type: pricing.TypeSimple})
		assert.ErrorIs(t, err, ErrBoxSizeRequired)
	})

	t.Run("unknown protection rejected before any write", func(t *testing.T) {
		svc, m := newTestService(t)
		m.rates.EXPECT().LoadSnapshot(ctx).Return(testSnapshot(), nil)

		err := svc.RequestConsolidation(ctx, "user-1", "grp-1", ConsolidateParams{
			BoxSize:     pricing.BoxSizeM,
			Type:        pricing.TypeSimple,
			Protections: []string{"GOLD_PLATING"},
		})
		assert.Error(t, err)
	})

	t.Run("persists selections and moves OPEN to PENDING", func(t *testing.T) {
		svc, m := newTestService(t)
		group := openGroup("user-1")

		m.rates.EXPECT().LoadSnapshot(ctx).Return(testSnapshot(), nil)
		m.expectTx()
		m.groups.EXPECT().GetByIDTx(ctx, m.tx, "grp-1").Return(group, nil)
		m.groups.EXPECT().UpdateRequestTx(ctx, m.tx, gomock.Any()).DoAndReturn(
			func(_ context.Context, _ interface{}, g *repository.ConsolidationGroup) error {
				require.NotNil(t, g.BoxSize)
				assert.Equal(t, string(pricing.BoxSizeM), *g.BoxSize)
				assert.Equal(t, string(pricing.TypeRepack), g.ConsolidationType)
				assert.Equal(t, []string{pricing.ProtectionBubbleWrap}, g.ExtraProtection)
				assert.True(t, g.RemoveInvoice)
				return nil
			})
		m.groups.EXPECT().UpdateStatusCASTx(ctx, m.tx, "grp-1", string(StatusOpen), string(StatusPending), nil).Return(true, nil)
		m.history.EXPECT().AddGroupStatusTx(ctx, m.tx, "grp-1", string(StatusPending), fixedNow).Return(nil)
		m.outbox.EXPECT().CreateTx(ctx, m.tx, gomock.Any()).DoAndReturn(
			func(_ context.Context, _ interface{}, task *repository.OutboxTask) error {
				assert.Equal(t, "group_events", task.Topic)
				assert.Contains(t, string(task.Payload), `"event":"consolidation_requested"`)
				return nil
			})
		m.tx.EXPECT().Commit(ctx).Return(nil)

		err := svc.RequestConsolidation(ctx, "user-1", "grp-1", ConsolidateParams{
			BoxSize:       pricing.BoxSizeM,
			Type:          pricing.TypeRepack,
			Protections:   []string{pricing.ProtectionBubbleWrap},
			RemoveInvoice: true,
		})
		require.NoError(t, err)
	})
}

func TestService_StartProcessing(t *testing.T) {
	ctx := context.Background()

	t.Run("illegal from OPEN", func(t *testing.T) {
		svc, m := newTestService(t)
		m.expectTx()
		m.groups.EXPECT().GetByIDTx(ctx, m.tx, "grp-1").Return(openGroup("user-1"), nil)

		err := svc.StartProcessing(ctx, "grp-1")
		assert.ErrorIs(t, err, ErrIllegalTransition)
	})

	t.Run("concurrent writer loses the swap", func(t *testing.T) {
		svc, m := newTestService(t)
		group := openGroup("user-1")
		group.Status = string(StatusPending)

		m.expectTx()
		m.groups.EXPECT().GetByIDTx(ctx, m.tx, "grp-1").Return(group, nil)
		m.groups.EXPECT().UpdateStatusCASTx(ctx, m.tx, "grp-1", string(StatusPending), string(StatusInProgress), nil).Return(false, nil)

		err := svc.StartProcessing(ctx, "grp-1")
		assert.ErrorIs(t, err, ErrStatusConflict)
	})

	t.Run("PENDING to IN_PROGRESS", func(t *testing.T) {
		svc, m := newTestService(t)
		group := openGroup("user-1")
		group.Status = string(StatusPending)

		m.expectTx()
		m.groups.EXPECT().GetByIDTx(ctx, m.tx, "grp-1").Return(group, nil)
		m.groups.EXPECT().UpdateStatusCASTx(ctx, m.tx, "grp-1", string(StatusPending), string(StatusInProgress), nil).Return(true, nil)
		m.history.EXPECT().AddGroupStatusTx(ctx, m.tx, "grp-1", string(StatusInProgress), fixedNow).Return(nil)
		m.outbox.EXPECT().CreateTx(ctx, m.tx, gomock.Any()).Return(nil)
		m.tx.EXPECT().Commit(ctx).Return(nil)

		require.NoError(t, svc.StartProcessing(ctx, "grp-1"))
	})
}

func TestService_MarkReady(t *testing.T) {
	ctx := context.Background()

	t.Run("measured weight is mandatory", func(t *testing.T) {
		svc, _ := newTestService(t)
		err := svc.MarkReady(ctx, "grp-1", 0)
		assert.ErrorIs(t, err, ErrFinalWeightRequired)
	})

	t.Run("freezes weight, fees and breakdown in one write", func(t *testing.T) {
		svc, m := newTestService(t)
		group := openGroup("user-1")
		group.Status = string(StatusInProgress)
		group.BoxSize = strPtr(string(pricing.BoxSizeM))

		m.rates.EXPECT().LoadSnapshot(ctx).Return(testSnapshot(), nil)
		m.expectTx()
		m.groups.EXPECT().GetByIDTx(ctx, m.tx, "grp-1").Return(group, nil)
		m.packages.EXPECT().ListByGroupTx(ctx, m.tx, "grp-1").Return([]*repository.Package{
			receivedPackage("pkg-1", "user-1", 1000),
			receivedPackage("pkg-2", "user-1", 800),
		}, nil)
		// simple type: 200 + 2*100 = 400; no storage policy: 200 + 50*1 = 250
		m.groups.EXPECT().FreezeFeesTx(ctx, m.tx, "grp-1", 5000, int64(400), int64(250), gomock.Any()).Return(nil)
		m.groups.EXPECT().UpdateStatusCASTx(ctx, m.tx, "grp-1", string(StatusInProgress), string(StatusReadyToShip), nil).Return(true, nil)
		m.history.EXPECT().AddGroupStatusTx(ctx, m.tx, "grp-1", string(StatusReadyToShip), fixedNow).Return(nil)
		m.outbox.EXPECT().CreateTx(ctx, m.tx, gomock.Any()).DoAndReturn(
			func(_ context.Context, _ interface{}, task *repository.OutboxTask) error {
				assert.Contains(t, string(task.Payload), `"event":"fees_frozen"`)
				assert.Contains(t, string(task.Payload), `"consolidation_fee_cents":400`)
				assert.Contains(t, string(task.Payload), `"storage_fee_cents":250`)
				return nil
			})
		m.tx.EXPECT().Commit(ctx).Return(nil)

		require.NoError(t, svc.MarkReady(ctx, "grp-1", 5000))
	})
}

func TestService_ConfirmPayment(t *testing.T) {
	ctx := context.Background()

	readyGroup := func() *repository.ConsolidationGroup {
		g := openGroup("user-1")
		g.Status = string(StatusReadyToShip)
		g.TrackingCode = strPtr("TRK-123")
		g.ConsolidationFeeCents = int64Ptr(400)
		g.StorageFeeCents = int64Ptr(250)
		return g
	}

	t.Run("only READY_TO_SHIP groups accept payment", func(t *testing.T) {
		svc, m := newTestService(t)
		m.expectTx()
		m.groups.EXPECT().GetByIDTx(ctx, m.tx, "grp-1").Return(openGroup("user-1"), nil)

		err := svc.ConfirmPayment(ctx, "grp-1", 650)
		assert.ErrorIs(t, err, ErrStatusConflict)
	})

	t.Run("tracking must be assigned first", func(t *testing.T) {
		svc, m := newTestService(t)
		group := readyGroup()
		group.TrackingCode = nil

		m.expectTx()
		m.groups.EXPECT().GetByIDTx(ctx, m.tx, "grp-1").Return(group, nil)

		err := svc.ConfirmPayment(ctx, "grp-1", 650)
		assert.ErrorIs(t, err, ErrTrackingRequired)
	})

	t.Run("amount must match the frozen total exactly", func(t *testing.T) {
		svc, m := newTestService(t)
		m.expectTx()
		m.groups.EXPECT().GetByIDTx(ctx, m.tx, "grp-1").Return(readyGroup(), nil)

		err := svc.ConfirmPayment(ctx, "grp-1", 600)
		assert.ErrorIs(t, err, ErrPaymentMismatch)
	})

	t.Run("ships and cascades to member packages", func(t *testing.T) {
		svc, m := newTestService(t)
		m.expectTx()
		m.groups.EXPECT().GetByIDTx(ctx, m.tx, "grp-1").Return(readyGroup(), nil)
		m.groups.EXPECT().UpdateStatusCASTx(ctx, m.tx, "grp-1", string(StatusReadyToShip), string(StatusShipped), &fixedNow).Return(true, nil)
		m.history.EXPECT().AddGroupStatusTx(ctx, m.tx, "grp-1", string(StatusShipped), fixedNow).Return(nil)
		m.packages.EXPECT().UpdateStatusByGroupTx(ctx, m.tx, "grp-1", string(PackageShipped)).Return(nil)
		m.outbox.EXPECT().CreateTx(ctx, m.tx, gomock.Any()).DoAndReturn(
			func(_ context.Context, _ interface{}, task *repository.OutboxTask) error {
				assert.Contains(t, string(task.Payload), `"event":"shipped"`)
				assert.Contains(t, string(task.Payload), `"tracking_code":"TRK-123"`)
				return nil
			})
		m.tx.EXPECT().Commit(ctx).Return(nil)

		require.NoError(t, svc.ConfirmPayment(ctx, "grp-1", 650))
	})
}

func TestService_Conclude(t *testing.T) {
	ctx := context.Background()

	t.Run("tracking is mandatory", func(t *testing.T) {
		svc, m := newTestService(t)
		group := openGroup("user-1")
		group.Status = string(StatusInProgress)

		m.rates.EXPECT().LoadSnapshot(ctx).Return(testSnapshot(), nil)
		m.expectTx()
		m.groups.EXPECT().GetByIDTx(ctx, m.tx, "grp-1").Return(group, nil)

		err := svc.Conclude(ctx, "grp-1")
		assert.ErrorIs(t, err, ErrTrackingRequired)
	})

	t.Run("only IN_PROGRESS groups can be concluded", func(t *testing.T) {
		svc, m := newTestService(t)
		group := openGroup("user-1")
		group.Status = string(StatusReadyToShip)

		m.rates.EXPECT().LoadSnapshot(ctx).Return(testSnapshot(), nil)
		m.expectTx()
		m.groups.EXPECT().GetByIDTx(ctx, m.tx, "grp-1").Return(group, nil)

		err := svc.Conclude(ctx, "grp-1")
		assert.ErrorIs(t, err, ErrStatusConflict)
	})

	t.Run("freezes fees on the way out when not yet frozen", func(t *testing.T) {
		svc, m := newTestService(t)
		group := openGroup("user-1")
		group.Status = string(StatusInProgress)
		group.BoxSize = strPtr(string(pricing.BoxSizeM))
		group.TrackingCode = strPtr("TRK-9")
		members := []*repository.Package{receivedPackage("pkg-1", "user-1", 1000)}

		m.rates.EXPECT().LoadSnapshot(ctx).Return(testSnapshot(), nil)
		m.expectTx()
		m.groups.EXPECT().GetByIDTx(ctx, m.tx, "grp-1").Return(group, nil)
		m.packages.EXPECT().ListByGroupTx(ctx, m.tx, "grp-1").Return(members, nil).Times(2)
		// box M tare 150 + 1000; fee 200+100=300, degraded storage 200
		m.groups.EXPECT().FreezeFeesTx(ctx, m.tx, "grp-1", 1150, int64(300), int64(200), gomock.Any()).Return(nil)
		m.groups.EXPECT().UpdateStatusCASTx(ctx, m.tx, "grp-1", string(StatusInProgress), string(StatusShipped), &fixedNow).Return(true, nil)
		m.history.EXPECT().AddGroupStatusTx(ctx, m.tx, "grp-1", string(StatusShipped), fixedNow).Return(nil)
		m.packages.EXPECT().UpdateStatusByGroupTx(ctx, m.tx, "grp-1", string(PackageShipped)).Return(nil)
		m.outbox.EXPECT().CreateTx(ctx, m.tx, gomock.Any()).Return(nil)
		m.tx.EXPECT().Commit(ctx).Return(nil)

		require.NoError(t, svc.Conclude(ctx, "grp-1"))
	})

	t.Run("keeps fees already frozen", func(t *testing.T) {
		svc, m := newTestService(t)
		group := openGroup("user-1")
		group.Status = string(StatusInProgress)
		group.TrackingCode = strPtr("TRK-9")
		group.ConsolidationFeeCents = int64Ptr(999)
		group.StorageFeeCents = int64Ptr(111)

		m.rates.EXPECT().LoadSnapshot(ctx).Return(testSnapshot(), nil)
		m.expectTx()
		m.groups.EXPECT().GetByIDTx(ctx, m.tx, "grp-1").Return(group, nil)
		m.groups.EXPECT().UpdateStatusCASTx(ctx, m.tx, "grp-1", string(StatusInProgress), string(StatusShipped), &fixedNow).Return(true, nil)
		m.history.EXPECT().AddGroupStatusTx(ctx, m.tx, "grp-1", string(StatusShipped), fixedNow).Return(nil)
		m.packages.EXPECT().UpdateStatusByGroupTx(ctx, m.tx, "grp-1", string(PackageShipped)).Return(nil)
		m.outbox.EXPECT().CreateTx(ctx, m.tx, gomock.Any()).DoAndReturn(
			func(_ context.Context, _ interface{}, task *repository.OutboxTask) error {
				assert.Contains(t, string(task.Payload), `"consolidation_fee_cents":999`)
				return nil
			})
		m.tx.EXPECT().Commit(ctx).Return(nil)

		require.NoError(t, svc.Conclude(ctx, "grp-1"))
	})
}

func TestService_Cancel(t *testing.T) {
	ctx := context.Background()

	t.Run("owner cancels an open group and packages are released", func(t *testing.T) {
		svc, m := newTestService(t)
		m.expectTx()
		m.groups.EXPECT().GetByIDTx(ctx, m.tx, "grp-1").Return(openGroup("user-1"), nil)
		m.groups.EXPECT().UpdateStatusCASTx(ctx, m.tx, "grp-1", string(StatusOpen), string(StatusCancelled), &fixedNow).Return(true, nil)
		m.history.EXPECT().AddGroupStatusTx(ctx, m.tx, "grp-1", string(StatusCancelled), fixedNow).Return(nil)
		m.packages.EXPECT().DetachAllTx(ctx, m.tx, "grp-1").Return(nil)
		m.outbox.EXPECT().CreateTx(ctx, m.tx, gomock.Any()).Return(nil)
		m.tx.EXPECT().Commit(ctx).Return(nil)

		require.NoError(t, svc.Cancel(ctx, "user-1", false, "grp-1"))
	})

	t.Run("shipped groups cannot be cancelled", func(t *testing.T) {
		svc, m := newTestService(t)
		group := openGroup("user-1")
		group.Status = string(StatusShipped)

		m.expectTx()
		m.groups.EXPECT().GetByIDTx(ctx, m.tx, "grp-1").Return(group, nil)

		err := svc.Cancel(ctx, "user-1", false, "grp-1")
		assert.ErrorIs(t, err, ErrIllegalTransition)
	})

	t.Run("strangers cannot cancel, admins can", func(t *testing.T) {
		svc, m := newTestService(t)
		m.expectTx()
		m.groups.EXPECT().GetByIDTx(ctx, m.tx, "grp-1").Return(openGroup("someone-else"), nil)

		err := svc.Cancel(ctx, "user-1", false, "grp-1")
		assert.ErrorIs(t, err, ErrNotOwner)
	})
}

func TestService_SetTracking(t *testing.T) {
	ctx := context.Background()

	t.Run("empty code rejected", func(t *testing.T) {
		svc, _ := newTestService(t)
		err := svc.SetTracking(ctx, "grp-1", "", "carrier-1")
		assert.ErrorIs(t, err, ErrTrackingRequired)
	})

	t.Run("no-op update means the group is in the wrong status", func(t *testing.T) {
		svc, m := newTestService(t)
		m.groups.EXPECT().SetTracking(ctx, "grp-1", "TRK-1", "carrier-1").Return(false, nil)
		m.groups.EXPECT().GetByID(ctx, "grp-1").Return(openGroup("user-1"), nil)

		err := svc.SetTracking(ctx, "grp-1", "TRK-1", "carrier-1")
		assert.ErrorIs(t, err, ErrStatusConflict)
	})

	t.Run("missing group surfaces as not found", func(t *testing.T) {
		svc, m := newTestService(t)
		m.groups.EXPECT().SetTracking(ctx, "grp-1", "TRK-1", "carrier-1").Return(false, nil)
		m.groups.EXPECT().GetByID(ctx, "grp-1").Return(nil, repository.ErrObjectNotFound)

		err := svc.SetTracking(ctx, "grp-1", "TRK-1", "carrier-1")
		assert.ErrorIs(t, err, repository.ErrObjectNotFound)
	})

	t.Run("success", func(t *testing.T) {
		svc, m := newTestService(t)
		m.groups.EXPECT().SetTracking(ctx, "grp-1", "TRK-1", "carrier-1").Return(true, nil)

		require.NoError(t, svc.SetTracking(ctx, "grp-1", "TRK-1", "carrier-1"))
	})
}

func TestService_GetGroup(t *testing.T) {
	ctx := context.Background()

	t.Run("owner sees the group", func(t *testing.T) {
		svc, m := newTestService(t)
		m.groups.EXPECT().GetByID(ctx, "grp-1").Return(openGroup("user-1"), nil)

		group, err := svc.GetGroup(ctx, "user-1", false, "grp-1")
		require.NoError(t, err)
		assert.Equal(t, "grp-1", group.ID)
	})

	t.Run("strangers get not found, not forbidden", func(t *testing.T) {
		svc, m := newTestService(t)
		m.groups.EXPECT().GetByID(ctx, "grp-1").Return(openGroup("someone-else"), nil)

		_, err := svc.GetGroup(ctx, "user-1", false, "grp-1")
		assert.ErrorIs(t, err, repository.ErrObjectNotFound)
	})

	t.Run("admins see everything", func(t *testing.T) {
		svc, m := newTestService(t)
		m.groups.EXPECT().GetByID(ctx, "grp-1").Return(openGroup("someone-else"), nil)

		_, err := svc.GetGroup(ctx, "user-1", true, "grp-1")
		require.NoError(t, err)
	})
}

func TestService_QuoteGroup(t *testing.T) {
	ctx := context.Background()

	t.Run("fees only", func(t *testing.T) {
		svc, m := newTestService(t)
		m.rates.EXPECT().LoadSnapshot(ctx).Return(testSnapshot(), nil)
		m.groups.EXPECT().GetByID(ctx, "grp-1").Return(openGroup("user-1"), nil)
		m.packages.EXPECT().ListByGroup(ctx, "grp-1").Return([]*repository.Package{
			receivedPackage("pkg-1", "user-1", 1000),
			receivedPackage("pkg-2", "user-1", 800),
		}, nil)

		quote, err := svc.QuoteGroup(ctx, "user-1", false, "grp-1", QuoteParams{
			BoxSize: pricing.BoxSizeM,
			Type:    pricing.TypeSimple,
		})
		require.NoError(t, err)
		assert.Equal(t, int64(400), quote.Fees.ConsolidationFeeCents)
		assert.Equal(t, int64(250), quote.Fees.StorageFeeCents)
		assert.True(t, quote.Fees.StorageDegraded)
		assert.Nil(t, quote.Freight)
	})

	t.Run("unknown carrier", func(t *testing.T) {
		svc, m := newTestService(t)
		m.rates.EXPECT().LoadSnapshot(ctx).Return(testSnapshot(), nil)
		m.groups.EXPECT().GetByID(ctx, "grp-1").Return(openGroup("user-1"), nil)
		m.packages.EXPECT().ListByGroup(ctx, "grp-1").Return(nil, nil)

		_, err := svc.QuoteGroup(ctx, "user-1", false, "grp-1", QuoteParams{
			BoxSize:     pricing.BoxSizeM,
			Type:        pricing.TypeSimple,
			CarrierCode: "nope",
			Service:     pricing.ServiceStandard,
		})
		assert.ErrorIs(t, err, pricing.ErrUnknownCarrier)
	})

	t.Run("with freight from the local table", func(t *testing.T) {
		svc, m := newTestService(t)
		snap := testSnapshot()
		snap.Carriers = map[string]pricing.CarrierTable{
			"fastship": {
				Code:               "fastship",
				MarkupBP:           1000,
				ProcessingFeeCents: 250,
				TaxRateBP:          825,
				StandardDays:       10,
				Brackets: map[pricing.ServiceType][]pricing.Bracket{
					pricing.ServiceStandard: {{MaxWeightGrams: 5000, PriceCents: 4200}},
				},
			},
		}
		m.rates.EXPECT().LoadSnapshot(ctx).Return(snap, nil)
		m.groups.EXPECT().GetByID(ctx, "grp-1").Return(openGroup("user-1"), nil)
		m.packages.EXPECT().ListByGroup(ctx, "grp-1").Return([]*repository.Package{
			receivedPackage("pkg-1", "user-1", 1000),
		}, nil)

		quote, err := svc.QuoteGroup(ctx, "user-1", false, "grp-1", QuoteParams{
			BoxSize:     pricing.BoxSizeM,
			Type:        pricing.TypeSimple,
			CarrierCode: "fastship",
			Service:     pricing.ServiceStandard,
		})
		require.NoError(t, err)
		require.NotNil(t, quote.Freight)
		assert.Equal(t, int64(4200), quote.Freight.BasePriceCents)
		assert.Equal(t, int64(5271), quote.Freight.FinalPriceCents)
		assert.Equal(t, "table", quote.Freight.Source)
	})
}

func TestService_MarkDelivered(t *testing.T) {
	ctx := context.Background()
	svc, m := newTestService(t)
	group := openGroup("user-1")
	group.Status = string(StatusShipped)

	m.expectTx()
	m.groups.EXPECT().GetByIDTx(ctx, m.tx, "grp-1").Return(group, nil)
	m.groups.EXPECT().UpdateStatusCASTx(ctx, m.tx, "grp-1", string(StatusShipped), string(StatusDelivered), nil).Return(true, nil)
	m.history.EXPECT().AddGroupStatusTx(ctx, m.tx, "grp-1", string(StatusDelivered), fixedNow).Return(nil)
	m.packages.EXPECT().UpdateStatusByGroupTx(ctx, m.tx, "grp-1", string(PackageDelivered)).Return(nil)
	m.tx.EXPECT().Commit(ctx).Return(nil)

	require.NoError(t, svc.MarkDelivered(ctx, "grp-1"))
}
