package handler

import (
	"net/http"

	"stylehub-be/internal/order"

	"github.com/gin-gonic/gin"
)

type OrderHandler struct {
	svc order.Service
}

func NewOrderHandler(svc order.Service) *OrderHandler {
	return &OrderHandler{svc: svc}
}

type updateStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

type updatePaymentRequest struct {
	PaymentStatus string `json:"payment_status" binding:"required"`
}

// Create handles POST /api/orders: the cart checkout.
func (h *OrderHandler) Create(c *gin.Context) {
	userID, ok := authedUser(c)
	if !ok {
		return
	}

	var input order.CreateOrderInput
	if err := c.ShouldBindJSON(&input); err != nil {
		badRequest(c, "invalid request body")
		return
	}

	o, err := h.svc.CreateOrder(c.Request.Context(), userID, input)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, o)
}

// List handles GET /api/orders, scoped to the caller.
func (h *OrderHandler) List(c *gin.Context) {
	userID, ok := authedUser(c)
	if !ok {
		return
	}

	orders, err := h.svc.GetOrders(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"orders": orders})
}

// Get handles GET /api/orders/:id. Orders owned by other users read as 404.
func (h *OrderHandler) Get(c *gin.Context) {
	userID, ok := authedUser(c)
	if !ok {
		return
	}

	orderID, ok := pathID(c, "id")
	if !ok {
		return
	}

	o, err := h.svc.GetOrder(c.Request.Context(), userID, orderID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, o)
}

// UpdateStatus handles PUT /api/orders/:id/status. Owners may only cancel,
// and only while the order is pending or confirmed.
func (h *OrderHandler) UpdateStatus(c *gin.Context) {
	userID, ok := authedUser(c)
	if !ok {
		return
	}

	orderID, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req updateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "status is required")
		return
	}

	o, err := h.svc.UpdateOrderStatus(c.Request.Context(), userID, orderID, req.Status)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, o)
}

// UpdatePayment handles PUT /api/orders/:id/payment.
func (h *OrderHandler) UpdatePayment(c *gin.Context) {
	userID, ok := authedUser(c)
	if !ok {
		return
	}

	orderID, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req updatePaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "payment_status is required")
		return
	}

	o, err := h.svc.UpdatePaymentStatus(c.Request.Context(), userID, orderID, req.PaymentStatus)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, o)
}
