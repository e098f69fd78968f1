package handler

import (
	"net/http"

	"stockli/internal/dto"
	"stockli/internal/service"

	"github.com/gin-gonic/gin"
)

type POSHandler struct{ svc service.POSService }

func NewPOSHandler(svc service.POSService) *POSHandler { return &POSHandler{svc: svc} }

// Checkout godoc
// @Summary Complete a sale
// @Tags pos
// @Accept json
// @Produce json
// @Param body body dto.CheckoutRequest true "Cart"
// @Success 201 {object} dto.CheckoutResponse
// @Failure 400 {object} apierror.APIError
// @Failure 409 {object} apierror.APIError
// @Router /v1/pos/transactions [post]
func (h *POSHandler) Checkout(c *gin.Context) {
	var req dto.CheckoutRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Checkout(c.Request.Context(), currentUserID(c), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

func (h *POSHandler) GetTransaction(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	t, err := h.svc.GetTransaction(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, t)
}

func (h *POSHandler) ListTransactions(c *gin.Context) {
	var filter dto.TransactionFilter
	if !bindQuery(c, &filter) {
		return
	}
	txns, total, err := h.svc.ListTransactions(c.Request.Context(), filter)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": txns, "total": total, "page": filter.Page, "limit": filter.Limit})
}

func (h *POSHandler) Refund(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := h.svc.RefundTransaction(c.Request.Context(), currentUserID(c), id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *POSHandler) ListPaymentMethods(c *gin.Context) {
	methods, err := h.svc.ListPaymentMethods(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, methods)
}
