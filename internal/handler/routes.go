package handler

import (
	"net/http"

	"stylehub-be/internal/middleware"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes wires the REST surface onto the engine. Catalog reads are
// public, catalog writes are admin-only, cart and order routes require auth.
func RegisterRoutes(r *gin.Engine, secret []byte, ph *ProductHandler, ch *CartHandler, oh *OrderHandler) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := r.Group("/api")

	products := api.Group("/products")
	{
		products.GET("", ph.List)
		products.GET("/categories", ph.Categories)
		products.GET("/subcategories", ph.Subcategories)
		products.GET("/:id", ph.Get)

		adminOnly := products.Group("", middleware.AuthMiddleware(secret), middleware.AdminMiddleware())
		{
			adminOnly.POST("", ph.Create)
			adminOnly.PUT("/:id", ph.Update)
			adminOnly.DELETE("/:id", ph.Delete)
		}
	}

	authed := api.Group("", middleware.AuthMiddleware(secret), middleware.RateLimitMiddleware())

	cart := authed.Group("/cart")
	{
		cart.GET("", ch.Get)
		cart.POST("/items", ch.AddItem)
		cart.PUT("/items/:id", ch.UpdateItem)
		cart.DELETE("/items/:id", ch.RemoveItem)
	}

	orders := authed.Group("/orders")
	{
		orders.POST("", oh.Create)
		orders.GET("", oh.List)
		orders.GET("/:id", oh.Get)
		orders.PUT("/:id/status", oh.UpdateStatus)
		orders.PUT("/:id/payment", oh.UpdatePayment)
	}
}
