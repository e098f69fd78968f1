package handler

import (
	"net/http"

	"stockli/internal/apierror"
	"stockli/internal/dto"
	"stockli/internal/repository"
	"stockli/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type InventoryHandler struct{ svc service.InventoryService }

func NewInventoryHandler(svc service.InventoryService) *InventoryHandler {
	return &InventoryHandler{svc: svc}
}

// ApplyMovement godoc
// @Summary Record a stock movement
// @Tags inventory
// @Accept json
// @Produce json
// @Param body body dto.StockMovementRequest true "Movement"
// @Success 201 {object} dto.StockMovementResponse
// @Failure 409 {object} apierror.APIError
// @Router /v1/inventory/stock-movements [post]
func (h *InventoryHandler) ApplyMovement(c *gin.Context) {
	var req dto.StockMovementRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.ApplyMovement(c.Request.Context(), currentUserID(c), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

func (h *InventoryHandler) ListMovements(c *gin.Context) {
	filter := repository.StockMovementFilter{Page: 1, Limit: 50}
	if v := c.Query("product_id"); v != "" {
		pid, err := uuid.Parse(v)
		if err != nil {
			c.JSON(http.StatusBadRequest, apierror.New("Invalid product_id"))
			return
		}
		filter.ProductID = &pid
	}
	filter.MovementType = c.Query("movement_type")

	movements, total, err := h.svc.ListMovements(c.Request.Context(), filter)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": movements, "total": total})
}

func (h *InventoryHandler) LowStock(c *gin.Context) {
	items, err := h.svc.LowStock(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": items, "count": len(items)})
}
