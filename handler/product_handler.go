package api

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	productpkg "github.com/ramesh-vyboina/cluck-credit-tracker/product"
)

// ProductHandler bundles dependencies for product-related HTTP handlers.
type ProductHandler struct {
	service productpkg.Service
}

func NewProductHandler(svc productpkg.Service) *ProductHandler {
	return &ProductHandler{service: svc}
}

type createProductPayload struct {
	Name  string  `json:"name" binding:"required"`
	Price float64 `json:"price" binding:"required"`
}

func (h *ProductHandler) CreateProduct() gin.HandlerFunc {
	return func(c *gin.Context) {
		var p createProductPayload
		if err := c.ShouldBindJSON(&p); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request payload", "detail": err.Error()})
			return
		}
		ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
		defer cancel()
		created, err := h.service.CreateProduct(ctx, productpkg.CreateProductRequest{Name: p.Name, Price: p.Price})
		if err != nil {
			switch {
			case errors.Is(err, productpkg.ErrNameTaken):
				c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
			case errors.Is(err, productpkg.ErrInvalidPrice):
				c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			default:
				c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create product", "detail": err.Error()})
			}
			return
		}
		c.JSON(http.StatusOK, created)
	}
}

func (h *ProductHandler) ListProducts() gin.HandlerFunc {
	return func(c *gin.Context) {
		skip, limit := pagination(c)
		ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
		defer cancel()
		list, err := h.service.ListProducts(ctx, skip, limit)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list products", "detail": err.Error()})
			return
		}
		c.JSON(http.StatusOK, list)
	}
}

type updatePricePayload struct {
	Price float64 `json:"price" binding:"required"`
}

// UpdatePrice changes the current unit price. Past sales keep their totals.
func (h *ProductHandler) UpdatePrice() gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := idParam(c)
		if !ok {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid product id"})
			return
		}
		var p updatePricePayload
		if err := c.ShouldBindJSON(&p); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request payload", "detail": err.Error()})
			return
		}
		ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
		defer cancel()
		updated, err := h.service.UpdatePrice(ctx, id, p.Price)
		if err != nil {
			switch {
			case errors.Is(err, productpkg.ErrNotFound):
				c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			case errors.Is(err, productpkg.ErrInvalidPrice):
				c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			default:
				c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update price", "detail": err.Error()})
			}
			return
		}
		c.JSON(http.StatusOK, updated)
	}
}
