package handler

import (
	"net/http"
	"strconv"

	"stylehub-be/internal/product"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

type ProductHandler struct {
	svc product.Service
}

func NewProductHandler(svc product.Service) *ProductHandler {
	return &ProductHandler{svc: svc}
}

// List handles GET /api/products with optional filters and pagination.
func (h *ProductHandler) List(c *gin.Context) {
	opts := product.ListOptions{}

	for _, f := range []struct {
		key  string
		dest **string
	}{
		{"category", &opts.Category},
		{"subcategory", &opts.Subcategory},
		{"style", &opts.Style},
		{"color", &opts.Color},
		{"search", &opts.Search},
	} {
		if v := c.Query(f.key); v != "" {
			s := v
			*f.dest = &s
		}
	}

	for _, f := range []struct {
		key  string
		dest **decimal.Decimal
	}{
		{"min_price", &opts.MinPrice},
		{"max_price", &opts.MaxPrice},
	} {
		if v := c.Query(f.key); v != "" {
			d, err := decimal.NewFromString(v)
			if err != nil {
				badRequest(c, "invalid "+f.key)
				return
			}
			*f.dest = &d
		}
	}

	opts.Page, _ = strconv.Atoi(c.DefaultQuery("page", "1"))
	opts.PerPage, _ = strconv.Atoi(c.DefaultQuery("per_page", "20"))

	products, total, err := h.svc.ListProducts(c.Request.Context(), opts)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"products": products,
		"total":    total,
		"page":     opts.Page,
		"per_page": opts.PerPage,
	})
}

func (h *ProductHandler) Get(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	p, err := h.svc.GetProduct(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, p)
}

func (h *ProductHandler) Create(c *gin.Context) {
	var input product.NewProductInput
	if err := c.ShouldBindJSON(&input); err != nil {
		badRequest(c, "invalid request body")
		return
	}

	p, err := h.svc.CreateProduct(c.Request.Context(), input)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, p)
}

func (h *ProductHandler) Update(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	var input product.UpdateProductInput
	if err := c.ShouldBindJSON(&input); err != nil {
		badRequest(c, "invalid request body")
		return
	}

	p, err := h.svc.UpdateProduct(c.Request.Context(), id, input)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, p)
}

func (h *ProductHandler) Delete(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	if err := h.svc.DeleteProduct(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "product deleted"})
}

func (h *ProductHandler) Categories(c *gin.Context) {
	categories, err := h.svc.Categories(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"categories": categories})
}

func (h *ProductHandler) Subcategories(c *gin.Context) {
	subcategories, err := h.svc.Subcategories(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"subcategories": subcategories})
}

// pathID parses a numeric path parameter, answering 400 on garbage.
func pathID(c *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil {
		badRequest(c, "invalid "+name)
		return 0, false
	}
	return uint(id), true
}
