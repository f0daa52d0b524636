package telemetry_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shipdesk/backend/internal/infrastructure/telemetry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/metric/noop"
	"go.uber.org/zap"
)

func newPickingMetrics(t *testing.T, provider telemetry.BacklogMetricsProvider) *telemetry.PickingMetrics {
	t.Helper()
	pm, err := telemetry.NewPickingMetrics(telemetry.PickingMetricsConfig{
		Meter:           noop.NewMeterProvider().Meter("test"),
		Logger:          zap.NewNop(),
		BacklogProvider: provider,
	})
	require.NoError(t, err)
	return pm
}

func TestNewPickingMetrics(t *testing.T) {
	pm := newPickingMetrics(t, nil)
	require.NotNil(t, pm)
}

func TestNewPickingMetrics_NilMeter(t *testing.T) {
	pm, err := telemetry.NewPickingMetrics(telemetry.PickingMetricsConfig{
		Meter:  nil,
		Logger: zap.NewNop(),
	})

	require.Error(t, err)
	assert.Nil(t, pm)
	assert.Equal(t, "NewPickingMetrics: meter cannot be nil", err.Error())
}

func TestPickingMetrics_RecordPickListBuilt(t *testing.T) {
	pm := newPickingMetrics(t, nil)
	ctx := context.Background()

	// Should not panic
	pm.RecordPickListBuilt(ctx, uuid.New(), uuid.New(), 12*time.Millisecond)
}

func TestPickingMetrics_RecordProgressToggle(t *testing.T) {
	pm := newPickingMetrics(t, nil)
	ctx := context.Background()
	warehouseID := uuid.New()

	// Should not panic
	pm.RecordProgressToggle(ctx, warehouseID, telemetry.ToggleKindItem)
	pm.RecordProgressToggle(ctx, warehouseID, telemetry.ToggleKindOrder)
	pm.RecordProgressReset(ctx, warehouseID)
}

func TestPickingMetrics_RecordStatusUpdate(t *testing.T) {
	pm := newPickingMetrics(t, nil)
	ctx := context.Background()

	// Should not panic
	pm.RecordStatusUpdate(ctx, uuid.New(), "status")
	pm.RecordStatusUpdate(ctx, uuid.New(), "fulfillment_status")
}

func TestPickingMetrics_RecordBacklogGauges(t *testing.T) {
	pm := newPickingMetrics(t, nil)
	ctx := context.Background()

	// Should not panic
	pm.RecordOpenOrderCount(ctx, uuid.New(), uuid.New(), 12)
	pm.RecordUnitsToPick(ctx, uuid.New(), uuid.New(), 47)
}

// fakeBacklogProvider records which accounts were queried.
type fakeBacklogProvider struct {
	mu      sync.Mutex
	queried []uuid.UUID
	err     error
}

func (f *fakeBacklogProvider) GetOpenOrderCountByWarehouse(_ context.Context, accountID uuid.UUID) (map[uuid.UUID]int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	f.queried = append(f.queried, accountID)
	return map[uuid.UUID]int64{uuid.New(): 3}, nil
}

func (f *fakeBacklogProvider) GetUnitsToPickByWarehouse(_ context.Context, _ uuid.UUID) (map[uuid.UUID]int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	return map[uuid.UUID]int64{uuid.New(): 9}, nil
}

func (f *fakeBacklogProvider) queriedCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.queried)
}

type fakeAccountProvider struct {
	ids []uuid.UUID
	err error
}

func (f *fakeAccountProvider) GetActiveAccountIDs(context.Context) ([]uuid.UUID, error) {
	return f.ids, f.err
}

func TestPickingMetrics_PeriodicCollection(t *testing.T) {
	backlog := &fakeBacklogProvider{}
	pm := newPickingMetrics(t, backlog)
	defer pm.Stop()

	accounts := &fakeAccountProvider{ids: []uuid.UUID{uuid.New(), uuid.New()}}
	pm.StartPeriodicCollection(context.Background(), accounts, time.Hour)

	// Collection happens once immediately on start
	assert.Eventually(t, func() bool {
		return backlog.queriedCount() == 2
	}, time.Second, 10*time.Millisecond)
}

func TestPickingMetrics_PeriodicCollection_ProviderError(t *testing.T) {
	backlog := &fakeBacklogProvider{err: errors.New("db down")}
	pm := newPickingMetrics(t, backlog)
	defer pm.Stop()

	accounts := &fakeAccountProvider{ids: []uuid.UUID{uuid.New()}}

	// Errors are logged, not fatal
	pm.StartPeriodicCollection(context.Background(), accounts, time.Hour)
	time.Sleep(50 * time.Millisecond)
	assert.Equal(t, 0, backlog.queriedCount())
}

func TestPickingMetrics_StopIsIdempotent(t *testing.T) {
	pm := newPickingMetrics(t, nil)

	pm.Stop()
	pm.Stop()
}
