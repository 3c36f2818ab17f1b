package api

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	supplierpkg "github.com/ramesh-vyboina/cluck-credit-tracker/supplier"
)

// SupplierHandler bundles dependencies for supplier and purchase handlers.
type SupplierHandler struct {
	service supplierpkg.Service
}

func NewSupplierHandler(svc supplierpkg.Service) *SupplierHandler {
	return &SupplierHandler{service: svc}
}

type createSupplierPayload struct {
	Name    string `json:"name" binding:"required"`
	Contact string `json:"contact"`
}

func (h *SupplierHandler) CreateSupplier() gin.HandlerFunc {
	return func(c *gin.Context) {
		var p createSupplierPayload
		if err := c.ShouldBindJSON(&p); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request payload", "detail": err.Error()})
			return
		}
		ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
		defer cancel()
		created, err := h.service.CreateSupplier(ctx, supplierpkg.CreateSupplierRequest{Name: p.Name, Contact: p.Contact})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create supplier", "detail": err.Error()})
			return
		}
		c.JSON(http.StatusOK, created)
	}
}

func (h *SupplierHandler) ListSuppliers() gin.HandlerFunc {
	return func(c *gin.Context) {
		skip, limit := pagination(c)
		ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
		defer cancel()
		list, err := h.service.ListSuppliers(ctx, skip, limit)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list suppliers", "detail": err.Error()})
			return
		}
		c.JSON(http.StatusOK, list)
	}
}

type recordPurchasePayload struct {
	SupplierID uint       `json:"supplier_id" binding:"required"`
	Quantity   float64    `json:"quantity" binding:"required"`
	TotalCost  float64    `json:"total_cost" binding:"required"`
	Date       *time.Time `json:"date"`
}

// RecordPurchase records stock bought from a supplier; 404 if the supplier
// does not exist.
func (h *SupplierHandler) RecordPurchase() gin.HandlerFunc {
	return func(c *gin.Context) {
		var p recordPurchasePayload
		if err := c.ShouldBindJSON(&p); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request payload", "detail": err.Error()})
			return
		}
		req := supplierpkg.RecordPurchaseRequest{
			SupplierID: p.SupplierID,
			Quantity:   p.Quantity,
			TotalCost:  p.TotalCost,
		}
		if p.Date != nil {
			req.Date = *p.Date
		}
		ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
		defer cancel()
		created, err := h.service.RecordPurchase(ctx, req)
		if err != nil {
			switch {
			case errors.Is(err, supplierpkg.ErrNotFound):
				c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			default:
				c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to record purchase", "detail": err.Error()})
			}
			return
		}
		c.JSON(http.StatusOK, created)
	}
}

func (h *SupplierHandler) ListPurchases() gin.HandlerFunc {
	return func(c *gin.Context) {
		skip, limit := pagination(c)
		ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
		defer cancel()
		list, err := h.service.ListPurchases(ctx, skip, limit)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list purchases", "detail": err.Error()})
			return
		}
		c.JSON(http.StatusOK, list)
	}
}
