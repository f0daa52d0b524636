package handler

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	fulfillmentapp "github.com/shipdesk/backend/internal/application/fulfillment"
	"github.com/shipdesk/backend/internal/domain/fulfillment"
	"github.com/shipdesk/backend/internal/infrastructure/telemetry"
)

// PickListHandler serves the picking screen payload for a warehouse
type PickListHandler struct {
	BaseHandler
	picklists    *fulfillmentapp.PickListService
	defaultLimit int
	metrics      *telemetry.PickingMetrics
}

// NewPickListHandler creates a new PickListHandler. The metrics argument may
// be nil when metrics collection is disabled.
func NewPickListHandler(picklists *fulfillmentapp.PickListService, defaultLimit int, metrics *telemetry.PickingMetrics) *PickListHandler {
	return &PickListHandler{
		picklists:    picklists,
		defaultLimit: defaultLimit,
		metrics:      metrics,
	}
}

// RegisterRoutes registers pick-list routes on the API group
func (h *PickListHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/warehouses/:id/picklist", h.GetPickList)
	rg.GET("/warehouses/:id/counts", h.GetCounts)
}

// parseLimit maps the limit query parameter onto a limiter config.
// Absent means the configured default; "all" lifts the cap; anything else is
// treated as an operator-typed count and degrades to no cap when unusable.
func (h *PickListHandler) parseLimit(raw string) fulfillment.LimiterConfig {
	switch raw {
	case "":
		return fulfillment.FixedLimit(h.defaultLimit)
	case "all":
		return fulfillment.AllOrders()
	default:
		return fulfillment.CustomLimit(raw)
	}
}

// GetPickList returns the full picking payload for one warehouse:
// bucket counts, the capped order list, consolidated pick rows and progress.
func (h *PickListHandler) GetPickList(c *gin.Context) {
	accountID, err := getAccountID(c)
	if err != nil {
		h.Unauthorized(c, "Account identification required")
		return
	}

	warehouseID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid warehouse ID format")
		return
	}

	limit := h.parseLimit(c.Query("limit"))

	start := time.Now()
	picklist, err := h.picklists.BuildPickList(c.Request.Context(), accountID, warehouseID, limit)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	if h.metrics != nil {
		h.metrics.RecordPickListBuilt(c.Request.Context(), accountID, warehouseID, time.Since(start))
	}

	h.Success(c, picklist)
}

// GetCounts returns only the dashboard bucket counts for one warehouse
func (h *PickListHandler) GetCounts(c *gin.Context) {
	accountID, err := getAccountID(c)
	if err != nil {
		h.Unauthorized(c, "Account identification required")
		return
	}

	warehouseID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid warehouse ID format")
		return
	}

	counts, err := h.picklists.OrderCounts(c.Request.Context(), accountID, warehouseID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, counts)
}
