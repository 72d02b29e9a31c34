package handler

import (
	"errors"
	"net/http"

	"stylehub-be/internal/cart"
	"stylehub-be/internal/logger"
	"stylehub-be/internal/order"
	"stylehub-be/internal/product"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// respondError maps a domain error to its HTTP status. Unrecognized errors
// are logged and reported as a plain 500 so storage details never leak.
func respondError(c *gin.Context, err error) {
	var stockErr *order.InsufficientStockError
	if errors.As(err, &stockErr) {
		c.JSON(http.StatusBadRequest, gin.H{"error": stockErr.Error()})
		return
	}

	switch {
	case errors.Is(err, product.ErrProductNotFound),
		errors.Is(err, cart.ErrCartItemNotFound),
		errors.Is(err, order.ErrOrderNotFound),
		errors.Is(err, order.ErrCartEmpty):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})

	case errors.Is(err, product.ErrNameRequired),
		errors.Is(err, product.ErrInvalidPrice),
		errors.Is(err, product.ErrInvalidStock),
		errors.Is(err, product.ErrInvalidRating),
		errors.Is(err, cart.ErrInvalidQuantity),
		errors.Is(err, order.ErrShippingAddressRequired),
		errors.Is(err, order.ErrInvalidStatus),
		errors.Is(err, order.ErrInvalidPaymentStatus):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})

	case errors.Is(err, order.ErrInvalidTransition):
		c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})

	default:
		logger.FromCtx(c.Request.Context()).Error("request failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}

func badRequest(c *gin.Context, msg string) {
	c.JSON(http.StatusBadRequest, gin.H{"error": msg})
}
