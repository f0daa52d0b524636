package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	fulfillmentapp "github.com/shipdesk/backend/internal/application/fulfillment"
	"github.com/shipdesk/backend/internal/infrastructure/telemetry"
)

// OrderHandler handles order listing and the status updates the packing flow
// performs
type OrderHandler struct {
	BaseHandler
	orders  *fulfillmentapp.OrderService
	metrics *telemetry.PickingMetrics
}

// NewOrderHandler creates a new OrderHandler. The metrics argument may be nil
// when metrics collection is disabled.
func NewOrderHandler(orders *fulfillmentapp.OrderService, metrics *telemetry.PickingMetrics) *OrderHandler {
	return &OrderHandler{orders: orders, metrics: metrics}
}

// RegisterRoutes registers order routes on the API group
func (h *OrderHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/warehouses/:id/orders", h.List)
	rg.PATCH("/orders/:id/status", h.UpdateStatus)
	rg.GET("/statuses", h.StatusCatalog)
}

// List returns a warehouse's orders annotated with their dashboard bucket
func (h *OrderHandler) List(c *gin.Context) {
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

	orders, err := h.orders.ListOrders(c.Request.Context(), accountID, warehouseID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.SuccessWithMeta(c, orders, int64(len(orders)))
}

// UpdateStatusRequest selects the status column to write and its new value
type UpdateStatusRequest struct {
	Field string `json:"field" binding:"required,oneof=status fulfillment_status"`
	Value string `json:"value" binding:"required,min=1,max=50"`
}

// UpdateStatus writes one status field on an order
func (h *OrderHandler) UpdateStatus(c *gin.Context) {
	accountID, err := getAccountID(c)
	if err != nil {
		h.Unauthorized(c, "Account identification required")
		return
	}

	orderID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid order ID format")
		return
	}

	var req UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.ValidationError(c, err)
		return
	}

	summary, err := h.orders.UpdateOrderStatus(c.Request.Context(), accountID, orderID, req.Field, req.Value)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	if h.metrics != nil {
		h.metrics.RecordStatusUpdate(c.Request.Context(), accountID, req.Field)
	}

	h.Success(c, summary)
}

// StatusCatalog returns the canonical status codes with display metadata
func (h *OrderHandler) StatusCatalog(c *gin.Context) {
	h.Success(c, h.orders.StatusCatalog())
}
