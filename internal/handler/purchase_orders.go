package handler

import (
	"net/http"
	"time"

	"stockli/internal/dto"
	"stockli/internal/model"
	"stockli/internal/service"

	"github.com/gin-gonic/gin"
)

type PurchaseOrdersHandler struct{ svc service.PurchaseOrderService }

func NewPurchaseOrdersHandler(svc service.PurchaseOrderService) *PurchaseOrdersHandler {
	return &PurchaseOrdersHandler{svc: svc}
}

// Create godoc
// @Summary Create a purchase order
// @Tags purchase-orders
// @Accept json
// @Produce json
// @Param body body dto.CreateOrderRequest true "Order"
// @Success 201 {object} dto.CreateOrderResponse
// @Router /v1/purchase-orders [post]
func (h *PurchaseOrdersHandler) Create(c *gin.Context) {
	var req dto.CreateOrderRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.CreateOrder(c.Request.Context(), currentUserID(c), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

func (h *PurchaseOrdersHandler) Get(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	o, err := h.svc.GetOrder(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, toOrderResponse(o))
}

func (h *PurchaseOrdersHandler) List(c *gin.Context) {
	var filter dto.PurchaseOrderFilter
	if !bindQuery(c, &filter) {
		return
	}
	orders, total, err := h.svc.ListOrders(c.Request.Context(), filter)
	if err != nil {
		respondError(c, err)
		return
	}
	data := make([]dto.PurchaseOrderResponse, 0, len(orders))
	for i := range orders {
		data = append(data, *toOrderResponse(&orders[i]))
	}
	c.JSON(http.StatusOK, gin.H{"data": data, "total": total, "page": filter.Page, "limit": filter.Limit})
}

func (h *PurchaseOrdersHandler) Amend(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req dto.AmendOrderRequest
	if !bindAndValidate(c, &req) {
		return
	}
	o, err := h.svc.AmendOrder(c.Request.Context(), id, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, toOrderResponse(o))
}

func (h *PurchaseOrdersHandler) SetStatus(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req dto.SetOrderStatusRequest
	if !bindAndValidate(c, &req) {
		return
	}
	if err := h.svc.SetStatus(c.Request.Context(), currentUserID(c), id, req.Status); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *PurchaseOrdersHandler) Receive(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := h.svc.ReceiveOrder(c.Request.Context(), currentUserID(c), id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func toOrderResponse(o *model.PurchaseOrder) *dto.PurchaseOrderResponse {
	resp := &dto.PurchaseOrderResponse{
		ID:          o.ID.String(),
		PONumber:    o.PONumber,
		SupplierID:  o.SupplierID.String(),
		TotalAmount: o.TotalAmount,
		Notes:       o.Notes,
		Status:      o.Status,
		CreatedAt:   o.CreatedAt.Format(time.RFC3339),
	}
	if o.Supplier != nil {
		resp.SupplierName = o.Supplier.CompanyName
	}
	if o.ExpectedDelivery != nil {
		d := o.ExpectedDelivery.Format("2006-01-02")
		resp.ExpectedDelivery = &d
	}
	for _, it := range o.Items {
		resp.Items = append(resp.Items, dto.OrderItemResponse{
			ProductID:  it.ProductID.String(),
			Quantity:   it.Quantity,
			UnitPrice:  it.UnitPrice,
			TotalPrice: it.TotalPrice,
		})
	}
	return resp
}
