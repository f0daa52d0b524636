// Package telemetry provides OpenTelemetry integration for metrics collection.
package telemetry

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/metric"
	"go.uber.org/zap"
)

// PickingMetrics provides business metrics for the fulfillment dashboard.
// It tracks pick-list builds, pick/pack progress toggles, and open-order backlog.
type PickingMetrics struct {
	meter  metric.Meter
	logger *zap.Logger

	// Counter metrics (monotonically increasing)
	picklistBuildTotal *Counter
	progressToggles    *Counter
	progressResets     *Counter
	statusUpdateTotal  *Counter

	// Distribution metrics
	picklistBuildDuration *Histogram

	// Gauge metrics (point-in-time values)
	openOrderCount *Gauge
	unitsToPick    *Gauge

	// Periodic collector
	stopChan    chan struct{}
	stopOnce    sync.Once
	collectOnce sync.Once

	// Data provider for periodic collection
	backlogProvider BacklogMetricsProvider
}

// BacklogMetricsProvider provides order-backlog data for periodic metrics
// collection. The interface lets the telemetry layer query backlog state
// without depending on the fulfillment domain directly.
type BacklogMetricsProvider interface {
	// GetOpenOrderCountByWarehouse returns the count of non-terminal orders per warehouse for an account
	GetOpenOrderCountByWarehouse(ctx context.Context, accountID uuid.UUID) (map[uuid.UUID]int64, error)

	// GetUnitsToPickByWarehouse returns total item units on non-terminal orders per warehouse for an account
	GetUnitsToPickByWarehouse(ctx context.Context, accountID uuid.UUID) (map[uuid.UUID]int64, error)
}

// PickingMetricsConfig holds configuration for picking metrics.
type PickingMetricsConfig struct {
	Meter           metric.Meter
	Logger          *zap.Logger
	CollectInterval time.Duration // Default: 5 minutes
	BacklogProvider BacklogMetricsProvider
}

// NewPickingMetrics creates a new PickingMetrics instance.
func NewPickingMetrics(cfg PickingMetricsConfig) (*PickingMetrics, error) {
	if cfg.Meter == nil {
		return nil, ErrMeterNil
	}

	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	pm := &PickingMetrics{
		meter:           cfg.Meter,
		logger:          logger,
		stopChan:        make(chan struct{}),
		backlogProvider: cfg.BacklogProvider,
	}

	var err error

	pm.picklistBuildTotal, err = NewCounter(
		cfg.Meter,
		"shipdesk_picklist_build_total",
		"Total number of pick lists built",
		"{builds}",
	)
	if err != nil {
		return nil, err
	}

	pm.progressToggles, err = NewCounter(
		cfg.Meter,
		"shipdesk_progress_toggle_total",
		"Total number of pick/pack progress toggles",
		"{toggles}",
	)
	if err != nil {
		return nil, err
	}

	pm.progressResets, err = NewCounter(
		cfg.Meter,
		"shipdesk_progress_reset_total",
		"Total number of picking-run progress resets",
		"{resets}",
	)
	if err != nil {
		return nil, err
	}

	pm.statusUpdateTotal, err = NewCounter(
		cfg.Meter,
		"shipdesk_order_status_update_total",
		"Total number of order status updates",
		"{updates}",
	)
	if err != nil {
		return nil, err
	}

	pm.picklistBuildDuration, err = NewHistogram(cfg.Meter, HistogramOpts{
		Name:        "shipdesk_picklist_build_duration_seconds",
		Description: "Time spent building a pick list",
		Unit:        "s",
		Boundaries:  DBDurationBuckets,
	})
	if err != nil {
		return nil, err
	}

	pm.openOrderCount, err = NewGauge(
		cfg.Meter,
		"shipdesk_open_order_count",
		"Current number of orders not yet packed, shipped or delivered",
		"{orders}",
	)
	if err != nil {
		return nil, err
	}

	pm.unitsToPick, err = NewGauge(
		cfg.Meter,
		"shipdesk_units_to_pick",
		"Current item units waiting to be picked",
		"{units}",
	)
	if err != nil {
		return nil, err
	}

	return pm, nil
}

// =============================================================================
// Pick-List Metrics
// =============================================================================

// RecordPickListBuilt records one pick-list build and its duration.
// This should be called from the interface layer after a build completes.
func (pm *PickingMetrics) RecordPickListBuilt(ctx context.Context, accountID, warehouseID uuid.UUID, elapsed time.Duration) {
	pm.picklistBuildTotal.Inc(ctx,
		AttrAccountID.String(accountID.String()),
		AttrWarehouseID.String(warehouseID.String()),
	)
	pm.picklistBuildDuration.RecordDuration(ctx, elapsed,
		AttrAccountID.String(accountID.String()),
		AttrWarehouseID.String(warehouseID.String()),
	)
}

// =============================================================================
// Progress Metrics
// =============================================================================

// ToggleKind labels whether a toggle targeted an item SKU or a whole order.
type ToggleKind string

const (
	ToggleKindItem  ToggleKind = "item"
	ToggleKindOrder ToggleKind = "order"
)

// RecordProgressToggle records one pick/pack progress toggle.
func (pm *PickingMetrics) RecordProgressToggle(ctx context.Context, warehouseID uuid.UUID, kind ToggleKind) {
	pm.progressToggles.Inc(ctx,
		AttrWarehouseID.String(warehouseID.String()),
		AttrToggleKind.String(string(kind)),
	)
}

// RecordProgressReset records one picking-run reset.
func (pm *PickingMetrics) RecordProgressReset(ctx context.Context, warehouseID uuid.UUID) {
	pm.progressResets.Inc(ctx,
		AttrWarehouseID.String(warehouseID.String()),
	)
}

// RecordStatusUpdate records one order status update, labeled with the column
// that changed (status or fulfillment_status).
func (pm *PickingMetrics) RecordStatusUpdate(ctx context.Context, accountID uuid.UUID, field string) {
	pm.statusUpdateTotal.Inc(ctx,
		AttrAccountID.String(accountID.String()),
		AttrStatusField.String(field),
	)
}

// =============================================================================
// Backlog Metrics
// =============================================================================

// RecordOpenOrderCount records the current open-order backlog for a warehouse.
// This is a gauge metric that should be updated periodically.
func (pm *PickingMetrics) RecordOpenOrderCount(ctx context.Context, accountID, warehouseID uuid.UUID, count int64) {
	pm.openOrderCount.Record(ctx, count,
		AttrAccountID.String(accountID.String()),
		AttrWarehouseID.String(warehouseID.String()),
	)
}

// RecordUnitsToPick records the current unit backlog for a warehouse.
// This is a gauge metric that should be updated periodically.
func (pm *PickingMetrics) RecordUnitsToPick(ctx context.Context, accountID, warehouseID uuid.UUID, units int64) {
	pm.unitsToPick.Record(ctx, units,
		AttrAccountID.String(accountID.String()),
		AttrWarehouseID.String(warehouseID.String()),
	)
}

// =============================================================================
// Periodic Collection
// =============================================================================

// AccountProvider provides account IDs for periodic metrics collection.
type AccountProvider interface {
	GetActiveAccountIDs(ctx context.Context) ([]uuid.UUID, error)
}

// StartPeriodicCollection starts periodic collection of gauge metrics.
// It collects backlog metrics every interval (default: 5 minutes).
// This is non-blocking; use Stop() to stop collection.
func (pm *PickingMetrics) StartPeriodicCollection(ctx context.Context, accountProvider AccountProvider, interval time.Duration) {
	pm.collectOnce.Do(func() {
		if interval <= 0 {
			interval = 5 * time.Minute
		}

		go pm.runPeriodicCollection(ctx, accountProvider, interval)
	})
}

func (pm *PickingMetrics) runPeriodicCollection(ctx context.Context, accountProvider AccountProvider, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	// Collect immediately on start
	pm.collectBacklogMetrics(ctx, accountProvider)

	for {
		select {
		case <-pm.stopChan:
			pm.logger.Info("Stopping periodic picking metrics collection")
			return
		case <-ctx.Done():
			pm.logger.Info("Context cancelled, stopping periodic picking metrics collection")
			return
		case <-ticker.C:
			pm.collectBacklogMetrics(ctx, accountProvider)
		}
	}
}

func (pm *PickingMetrics) collectBacklogMetrics(ctx context.Context, accountProvider AccountProvider) {
	if pm.backlogProvider == nil {
		pm.logger.Debug("No backlog provider configured, skipping backlog metrics collection")
		return
	}

	accountIDs, err := accountProvider.GetActiveAccountIDs(ctx)
	if err != nil {
		pm.logger.Error("Failed to get account IDs for metrics collection", zap.Error(err))
		return
	}

	for _, accountID := range accountIDs {
		pm.collectAccountBacklogMetrics(ctx, accountID)
	}
}

func (pm *PickingMetrics) collectAccountBacklogMetrics(ctx context.Context, accountID uuid.UUID) {
	openByWarehouse, err := pm.backlogProvider.GetOpenOrderCountByWarehouse(ctx, accountID)
	if err != nil {
		pm.logger.Warn("Failed to get open order count for account",
			zap.String("account_id", accountID.String()),
			zap.Error(err),
		)
	} else {
		for warehouseID, count := range openByWarehouse {
			pm.RecordOpenOrderCount(ctx, accountID, warehouseID, count)
		}
	}

	unitsByWarehouse, err := pm.backlogProvider.GetUnitsToPickByWarehouse(ctx, accountID)
	if err != nil {
		pm.logger.Warn("Failed to get unit backlog for account",
			zap.String("account_id", accountID.String()),
			zap.Error(err),
		)
	} else {
		for warehouseID, units := range unitsByWarehouse {
			pm.RecordUnitsToPick(ctx, accountID, warehouseID, units)
		}
	}
}

// Stop stops the periodic collection.
func (pm *PickingMetrics) Stop() {
	pm.stopOnce.Do(func() {
		close(pm.stopChan)
	})
}

// =============================================================================
// Error Types
// =============================================================================

// ErrMeterNil is returned when meter is nil.
var ErrMeterNil = &MetricsError{Op: "NewPickingMetrics", Err: "meter cannot be nil"}

// MetricsError represents a metrics-related error.
type MetricsError struct {
	Op  string
	Err string
}

func (e *MetricsError) Error() string {
	return e.Op + ": " + e.Err
}
