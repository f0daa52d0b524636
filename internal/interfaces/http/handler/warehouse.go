package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	fulfillmentapp "github.com/shipdesk/backend/internal/application/fulfillment"
	"github.com/shipdesk/backend/internal/domain/fulfillment"
	"github.com/shipdesk/backend/internal/domain/shared/valueobject"
)

// WarehouseHandler handles warehouse settings and return-label resolution
type WarehouseHandler struct {
	BaseHandler
	warehouses *fulfillmentapp.WarehouseService
	labels     *fulfillmentapp.LabelService
}

// NewWarehouseHandler creates a new WarehouseHandler
func NewWarehouseHandler(warehouses *fulfillmentapp.WarehouseService, labels *fulfillmentapp.LabelService) *WarehouseHandler {
	return &WarehouseHandler{warehouses: warehouses, labels: labels}
}

// RegisterRoutes registers warehouse routes on the API group
func (h *WarehouseHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/warehouses", h.Create)
	rg.GET("/warehouses", h.List)
	rg.GET("/warehouses/:id", h.GetByID)
	rg.PUT("/warehouses/:id/rules", h.UpdateRules)
	rg.PUT("/warehouses/:id/return-address", h.SetReturnAddress)
	rg.GET("/warehouses/:id/return-address", h.ResolveReturnAddress)
}

// CreateWarehouseRequest represents a request to register a warehouse
type CreateWarehouseRequest struct {
	Code    string              `json:"code" binding:"required,min=1,max=20"`
	Name    string              `json:"name" binding:"required,min=1,max=200"`
	Address valueobject.Address `json:"address" binding:"required"`
}

// UpdateRulesRequest carries the per-warehouse classification rules.
// An entirely empty rule set reverts the warehouse to the defaults.
type UpdateRulesRequest struct {
	ToShipStatuses    []string `json:"toShipStatuses"`
	CompletedStatuses []string `json:"completedStatuses"`
	ExcludedStatuses  []string `json:"excludedStatuses"`
	DisplayText       string   `json:"displayText" binding:"max=200"`
	IncludeCompleted  bool     `json:"includeCompleted"`
}

// SetReturnAddressRequest configures the override return address
type SetReturnAddressRequest struct {
	Address      valueobject.Address `json:"address"`
	UseDifferent bool                `json:"useDifferent"`
}

// Create registers a new warehouse
func (h *WarehouseHandler) Create(c *gin.Context) {
	accountID, err := getAccountID(c)
	if err != nil {
		h.Unauthorized(c, "Account identification required")
		return
	}

	var req CreateWarehouseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.ValidationError(c, err)
		return
	}

	warehouse, err := h.warehouses.CreateWarehouse(c.Request.Context(), accountID, fulfillmentapp.CreateWarehouseRequest{
		Code:    req.Code,
		Name:    req.Name,
		Address: req.Address,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, warehouse)
}

// List returns all warehouses for the account
func (h *WarehouseHandler) List(c *gin.Context) {
	accountID, err := getAccountID(c)
	if err != nil {
		h.Unauthorized(c, "Account identification required")
		return
	}

	warehouses, err := h.warehouses.ListWarehouses(c.Request.Context(), accountID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.SuccessWithMeta(c, warehouses, int64(len(warehouses)))
}

// GetByID returns one warehouse with its effective rules
func (h *WarehouseHandler) GetByID(c *gin.Context) {
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

	warehouse, err := h.warehouses.GetWarehouse(c.Request.Context(), accountID, warehouseID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, warehouse)
}

// UpdateRules replaces a warehouse's classification rules
func (h *WarehouseHandler) UpdateRules(c *gin.Context) {
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

	var req UpdateRulesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.ValidationError(c, err)
		return
	}

	warehouse, err := h.warehouses.UpdateRules(c.Request.Context(), accountID, warehouseID, fulfillment.Rules{
		ToShipStatuses:    req.ToShipStatuses,
		CompletedStatuses: req.CompletedStatuses,
		ExcludedStatuses:  req.ExcludedStatuses,
		DisplayText:       req.DisplayText,
		IncludeCompleted:  req.IncludeCompleted,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, warehouse)
}

// SetReturnAddress configures or removes the override return address
func (h *WarehouseHandler) SetReturnAddress(c *gin.Context) {
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

	var req SetReturnAddressRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.ValidationError(c, err)
		return
	}

	warehouse, err := h.warehouses.SetReturnAddress(c.Request.Context(), accountID, warehouseID, fulfillmentapp.SetReturnAddressRequest{
		Address:      req.Address,
		UseDifferent: req.UseDifferent,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, warehouse)
}

// ResolveReturnAddress resolves the return address for a label. An optional
// order_id query parameter supplies the store context for the display-name
// template.
func (h *WarehouseHandler) ResolveReturnAddress(c *gin.Context) {
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

	var orderID *uuid.UUID
	if raw := c.Query("order_id"); raw != "" {
		parsed, err := uuid.Parse(raw)
		if err != nil {
			h.BadRequest(c, "Invalid order ID format")
			return
		}
		orderID = &parsed
	}

	resolved, err := h.labels.ResolveReturnAddress(c.Request.Context(), accountID, warehouseID, orderID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, resolved)
}
