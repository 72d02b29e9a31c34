package handler

import (
	"net/http"

	"stylehub-be/internal/cart"
	"stylehub-be/internal/middleware"

	"github.com/gin-gonic/gin"
)

type CartHandler struct {
	svc cart.Service
}

func NewCartHandler(svc cart.Service) *CartHandler {
	return &CartHandler{svc: svc}
}

type addItemRequest struct {
	ProductID uint `json:"product_id" binding:"required"`
	Quantity  int  `json:"quantity"`
}

type updateItemRequest struct {
	Quantity *int `json:"quantity" binding:"required"`
}

// Get handles GET /api/cart. The cart is created on first access.
func (h *CartHandler) Get(c *gin.Context) {
	userID, ok := authedUser(c)
	if !ok {
		return
	}

	crt, err := h.svc.GetOrCreateCart(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, crt)
}

// AddItem handles POST /api/cart/items.
func (h *CartHandler) AddItem(c *gin.Context) {
	userID, ok := authedUser(c)
	if !ok {
		return
	}

	var req addItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "invalid request body")
		return
	}
	if req.Quantity == 0 {
		req.Quantity = 1
	}

	crt, err := h.svc.AddItem(c.Request.Context(), userID, req.ProductID, req.Quantity)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, crt)
}

// UpdateItem handles PUT /api/cart/items/:id. Quantity zero removes the line.
func (h *CartHandler) UpdateItem(c *gin.Context) {
	userID, ok := authedUser(c)
	if !ok {
		return
	}

	itemID, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req updateItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "quantity is required")
		return
	}

	crt, err := h.svc.UpdateItemQuantity(c.Request.Context(), userID, itemID, *req.Quantity)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, crt)
}

// RemoveItem handles DELETE /api/cart/items/:id.
func (h *CartHandler) RemoveItem(c *gin.Context) {
	userID, ok := authedUser(c)
	if !ok {
		return
	}

	itemID, ok := pathID(c, "id")
	if !ok {
		return
	}

	crt, err := h.svc.RemoveItem(c.Request.Context(), userID, itemID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, crt)
}

// authedUser pulls the authenticated user id out of the request context.
// The auth middleware guarantees it is set on protected routes.
func authedUser(c *gin.Context) (uint, bool) {
	userID, ok := middleware.GetUserIDFromContext(c.Request.Context())
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
		return 0, false
	}
	return userID, true
}
