package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	fulfillmentapp "github.com/shipdesk/backend/internal/application/fulfillment"
	"github.com/shipdesk/backend/internal/infrastructure/telemetry"
)

// ProgressHandler manages pick/pack progress toggles for a warehouse
type ProgressHandler struct {
	BaseHandler
	progress *fulfillmentapp.ProgressService
	metrics  *telemetry.PickingMetrics
}

// NewProgressHandler creates a new ProgressHandler. The metrics argument may
// be nil when metrics collection is disabled.
func NewProgressHandler(progress *fulfillmentapp.ProgressService, metrics *telemetry.PickingMetrics) *ProgressHandler {
	return &ProgressHandler{progress: progress, metrics: metrics}
}

// RegisterRoutes registers progress routes on the API group
func (h *ProgressHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/warehouses/:id/progress", h.GetProgress)
	rg.POST("/warehouses/:id/progress/items/:sku/toggle", h.ToggleItem)
	rg.POST("/warehouses/:id/progress/orders/:orderId/toggle", h.ToggleOrder)
	rg.DELETE("/warehouses/:id/progress", h.Reset)
}

// GetProgress returns the current pick/pack progress snapshot
func (h *ProgressHandler) GetProgress(c *gin.Context) {
	warehouseID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid warehouse ID format")
		return
	}

	h.Success(c, h.progress.Progress(c.Request.Context(), warehouseID))
}

// ToggleItem flips the picked flag for a SKU
func (h *ProgressHandler) ToggleItem(c *gin.Context) {
	warehouseID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid warehouse ID format")
		return
	}

	result, err := h.progress.ToggleItemPicked(c.Request.Context(), warehouseID, c.Param("sku"))
	if err != nil {
		h.HandleError(c, err)
		return
	}

	if h.metrics != nil {
		h.metrics.RecordProgressToggle(c.Request.Context(), warehouseID, telemetry.ToggleKindItem)
	}

	h.Success(c, result)
}

// ToggleOrder flips the packed flag for an order
func (h *ProgressHandler) ToggleOrder(c *gin.Context) {
	warehouseID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid warehouse ID format")
		return
	}

	result, err := h.progress.ToggleOrderPacked(c.Request.Context(), warehouseID, c.Param("orderId"))
	if err != nil {
		h.HandleError(c, err)
		return
	}

	if h.metrics != nil {
		h.metrics.RecordProgressToggle(c.Request.Context(), warehouseID, telemetry.ToggleKindOrder)
	}

	h.Success(c, result)
}

// Reset clears all progress for a warehouse, ending the picking run
func (h *ProgressHandler) Reset(c *gin.Context) {
	warehouseID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid warehouse ID format")
		return
	}

	if err := h.progress.Reset(c.Request.Context(), warehouseID); err != nil {
		h.HandleError(c, err)
		return
	}

	if h.metrics != nil {
		h.metrics.RecordProgressReset(c.Request.Context(), warehouseID)
	}

	h.NoContent(c)
}
